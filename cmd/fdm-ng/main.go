package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fdm-ng/internal/aero"
	"fdm-ng/internal/aircraft"
	"fdm-ng/internal/atmosphere"
	"fdm-ng/internal/config"
	"fdm-ng/internal/fdm"
	"fdm-ng/internal/geometry"
	"fdm-ng/internal/telemetry"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "./dev.yaml", "Path to YAML config")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	model, err := aircraft.Load(cfg.Aircraft)
	if err != nil {
		log.Fatalf("aircraft load failed: %v", err)
	}

	body, err := fdm.NewBody(model)
	if err != nil {
		log.Fatalf("mass model init failed: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if cfg.Metrics.Enable {
		go func() {
			log.Printf("metrics listening on %s", cfg.Metrics.Addr)
			if err := telemetry.Serve(cfg.Metrics.Addr); err != nil {
				log.Printf("metrics server stopped: %v", err)
			}
		}()
	}

	log.Printf("fdm-ng starting: aircraft=%q dt=%s duration=%s", model.Name, cfg.Sim.Dt, cfg.Sim.Duration)

	// Level start at the configured altitude and airspeed (world z is down).
	st := fdm.State{
		Position: geometry.Vec3{Z: -cfg.Sim.AltitudeM},
		Velocity: geometry.Vec3{X: cfg.Sim.AirspeedMs},
		Attitude: geometry.IdentityQuat(),
	}

	dt := cfg.Sim.Dt.Seconds()
	steps := int(cfg.Sim.Duration / cfg.Sim.Dt)
	logEvery := int(time.Second / cfg.Sim.Dt)
	if logEvery < 1 {
		logEvery = 1
	}

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			log.Printf("fdm-ng interrupted at t=%.2fs", float64(i)*dt)
			return
		default:
		}

		altitude := -st.Position.Z
		density := atmosphere.Density(altitude)
		air := aero.AirDataFrom(st.BodyVelocity(), density)

		fs := aero.FlightState{
			Alpha:    air.Alpha,
			Beta:     air.Beta,
			P:        st.Rates.X,
			Q:        st.Rates.Y,
			R:        st.Rates.Z,
			Elevator: cfg.Sim.Controls.ElevatorRad,
			Aileron:  cfg.Sim.Controls.AileronRad,
			Rudder:   cfg.Sim.Controls.RudderRad,
			Airspeed: air.Airspeed,
		}
		forceBody, momentBody := aero.Evaluate(model, fs, density)

		forceWorld := st.Attitude.Rotate(forceBody).Add(geometry.Vec3{Z: body.Mass * fdm.Gravity})
		st.Step(body, forceWorld, momentBody, dt)

		if i%logEvery == 0 {
			telemetry.Publish(air.Airspeed, air.Alpha, air.Beta, altitude, density, forceBody, momentBody)
			log.Printf("t=%6.2fs alt=%7.1fm v=%6.1fm/s alpha=%+.4frad beta=%+.4frad",
				float64(i)*dt, altitude, air.Airspeed, air.Alpha, air.Beta)
		}
	}

	log.Printf("fdm-ng done: alt=%.1fm v=%.1fm/s", -st.Position.Z, st.Velocity.Norm())
}
