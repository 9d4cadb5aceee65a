// Package telemetry exposes the run loop's state as Prometheus gauges.
// Library packages stay metrics-free; only cmd/fdm-ng publishes here.
package telemetry

import (
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fdm-ng/internal/geometry"
)

var (
	airspeedGauge = prometheus.NewGauge(prometheus.GaugeOpts{Name: "fdm_airspeed_mps"})
	alphaGauge    = prometheus.NewGauge(prometheus.GaugeOpts{Name: "fdm_alpha_rad"})
	betaGauge     = prometheus.NewGauge(prometheus.GaugeOpts{Name: "fdm_beta_rad"})
	altitudeGauge = prometheus.NewGauge(prometheus.GaugeOpts{Name: "fdm_altitude_meters"})
	densityGauge  = prometheus.NewGauge(prometheus.GaugeOpts{Name: "fdm_air_density_kg_per_m3"})

	forceGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fdm_aero_force_newton",
			Help: "Body-axis aerodynamic force components",
		},
		[]string{"axis"},
	)
	momentGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fdm_aero_moment_newton_meters",
			Help: "Body-axis aerodynamic moment components",
		},
		[]string{"axis"},
	)
)

func init() {
	prometheus.MustRegister(
		airspeedGauge,
		alphaGauge,
		betaGauge,
		altitudeGauge,
		densityGauge,
		forceGauge,
		momentGauge,
	)
}

// Publish updates all gauges from one simulation step.
func Publish(airspeed, alpha, beta, altitude, density float64, force, moment geometry.Vec3) {
	airspeedGauge.Set(airspeed)
	alphaGauge.Set(alpha)
	betaGauge.Set(beta)
	altitudeGauge.Set(altitude)
	densityGauge.Set(density)

	forceGauge.WithLabelValues("x").Set(force.X)
	forceGauge.WithLabelValues("y").Set(force.Y)
	forceGauge.WithLabelValues("z").Set(force.Z)
	momentGauge.WithLabelValues("roll").Set(moment.X)
	momentGauge.WithLabelValues("pitch").Set(moment.Y)
	momentGauge.WithLabelValues("yaw").Set(moment.Z)
}

// Serve starts the Prometheus scrape endpoint on addr. It blocks; run it
// in a goroutine.
func Serve(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.Serve(ln, mux)
}
