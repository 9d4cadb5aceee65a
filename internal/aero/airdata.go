package aero

import (
	"math"

	"fdm-ng/internal/geometry"
)

// AirData is the flow condition derived from a body-frame relative
// velocity (airspeed minus wind, expressed in body axes).
type AirData struct {
	Airspeed        float64 // m/s
	Alpha           float64 // rad
	Beta            float64 // rad
	Density         float64 // kg/m^3
	DynamicPressure float64 // Pa
}

// AirDataFrom computes airspeed, flow angles and dynamic pressure from a
// body-frame relative velocity. Below AirspeedEpsilon the flow angles are
// undefined and reported as zero, matching the rate policy in BuildUp.
func AirDataFrom(relVel geometry.Vec3, density float64) AirData {
	v := relVel.Norm()
	var alpha, beta float64
	if v > AirspeedEpsilon {
		alpha = math.Atan2(relVel.Z, relVel.X)
		beta = math.Asin(relVel.Y / v)
	}
	return AirData{
		Airspeed:        v,
		Alpha:           alpha,
		Beta:            beta,
		Density:         density,
		DynamicPressure: 0.5 * density * v * v,
	}
}
