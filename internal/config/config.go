package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Aircraft string        `yaml:"aircraft"`
	Sim      SimConfig     `yaml:"sim"`
	Metrics  MetricsConfig `yaml:"metrics"`
}

type SimConfig struct {
	Dt         time.Duration  `yaml:"dt"`
	Duration   time.Duration  `yaml:"duration"`
	AltitudeM  float64        `yaml:"altitude_m"`
	AirspeedMs float64        `yaml:"airspeed_ms"`
	Controls   ControlsConfig `yaml:"controls"`
}

// ControlsConfig holds fixed control-surface deflections applied for the
// whole run, in radians.
type ControlsConfig struct {
	ElevatorRad float64 `yaml:"elevator_rad"`
	AileronRad  float64 `yaml:"aileron_rad"`
	RudderRad   float64 `yaml:"rudder_rad"`
}

type MetricsConfig struct {
	Enable bool   `yaml:"enable"`
	Addr   string `yaml:"addr"`
}

func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}

	if cfg.Aircraft == "" {
		return Config{}, fmt.Errorf("aircraft is required")
	}
	if cfg.Sim.AirspeedMs < 0 {
		return Config{}, fmt.Errorf("sim.airspeed_ms must be >= 0")
	}

	// Simulation defaults.
	if cfg.Sim.Dt <= 0 {
		cfg.Sim.Dt = 10 * time.Millisecond
	}
	if cfg.Sim.Duration <= 0 {
		cfg.Sim.Duration = 30 * time.Second
	}
	if cfg.Sim.AltitudeM == 0 {
		cfg.Sim.AltitudeM = 1000
	}
	if cfg.Sim.AirspeedMs == 0 {
		cfg.Sim.AirspeedMs = 100
	}

	if cfg.Metrics.Enable && cfg.Metrics.Addr == "" {
		cfg.Metrics.Addr = "127.0.0.1:8086"
	}

	return cfg, nil
}
