// Package aero implements the aerodynamic coefficient buildup and the
// conversion of its output into body-axis forces and moments.
//
// The buildup is a fixed-form polynomial in angle of attack, sideslip,
// nondimensionalized body rates and control deflections, parameterized by
// an aircraft.Model. It is a curve fit: it is only as good as the
// identification envelope of the underlying data, and evaluation outside
// that envelope extrapolates silently. No clamping is applied.
//
// Everything in this package is a pure function over value inputs.
// Evaluations against a shared Model are safe to run concurrently.
package aero

// FlightState is the instantaneous flight condition supplied by the
// caller on every evaluation. Angles and deflections in radians, rates in
// rad/s, airspeed in m/s.
type FlightState struct {
	Alpha    float64 // angle of attack
	Beta     float64 // sideslip
	P        float64 // body roll rate
	Q        float64 // body pitch rate
	R        float64 // body yaw rate
	Elevator float64
	Aileron  float64
	Rudder   float64
	Airspeed float64 // true airspeed, >= 0
}

// Coefficients is the dimensionless buildup output. Drag, SideForce and
// Lift are wind-axis force coefficients; Roll, Pitch and Yaw are body-axis
// moment coefficients.
type Coefficients struct {
	Drag      float64
	SideForce float64
	Lift      float64
	Roll      float64
	Pitch     float64
	Yaw       float64
}

// AirspeedEpsilon is the airspeed below which the nondimensional rates
// phat, qhat and rhat are defined as zero instead of evaluated. This
// avoids the division by airspeed at standstill; it is a policy choice,
// not a physical statement about near-zero-speed aerodynamics.
const AirspeedEpsilon = 1e-3 // m/s
