// Package atmosphere supplies the air density input for aerodynamic
// evaluation. The model is an exponential decay with a fixed scale
// height, which is adequate for the altitude band the coefficient data
// was identified in.
package atmosphere

import "math"

const (
	// SeaLevelDensity is the ISA sea-level air density, kg/m^3.
	SeaLevelDensity = 1.225
	// ScaleHeight is the exponential decay constant, m.
	ScaleHeight = 8500.0
)

// Density returns air density at the given geometric altitude in meters.
func Density(altMeters float64) float64 {
	return SeaLevelDensity * math.Exp(-altMeters/ScaleHeight)
}
