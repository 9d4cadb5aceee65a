package aero

import (
	"math"

	"fdm-ng/internal/aircraft"
	"fdm-ng/internal/geometry"
)

// Forces dimensionalizes the coefficients and rotates the wind-axis force
// components into body axes. qbar is the dynamic pressure (Pa).
//
// The wind-axis forces are D = qbar*S*cD (along the velocity vector),
// Y = qbar*S*cY and L = qbar*S*cL. The body-axis force is the wind-to-body
// rotation (sideslip about the intermediate axis, then angle of attack)
// applied to (-D, Y, -L); at alpha = beta = 0 this reduces to
// (-D, Y, -L) directly. Moments are already body-axis quantities and only
// need the qbar*S*{b, c, b} scaling.
func Forces(m aircraft.Model, c Coefficients, alpha, beta, qbar float64) (force, moment geometry.Vec3) {
	qS := qbar * m.WingArea
	drag := qS * c.Drag
	side := qS * c.SideForce
	lift := qS * c.Lift

	ca, sa := math.Cos(alpha), math.Sin(alpha)
	cb, sb := math.Cos(beta), math.Sin(beta)

	force = geometry.Vec3{
		X: ca*cb*(-drag) - ca*sb*side + sa*lift,
		Y: sb*(-drag) + cb*side,
		Z: sa*cb*(-drag) - sa*sb*side - ca*lift,
	}
	moment = geometry.Vec3{
		X: qS * m.WingSpan * c.Roll,
		Y: qS * m.MAC * c.Pitch,
		Z: qS * m.WingSpan * c.Yaw,
	}
	return force, moment
}

// Evaluate runs the full buildup for one flight state: dynamic pressure
// from the supplied air density, coefficient polynomials, then the
// body-axis force and moment vectors. Pure; callers may invoke it at
// arbitrary rate and from concurrent goroutines sharing one Model.
func Evaluate(m aircraft.Model, st FlightState, density float64) (force, moment geometry.Vec3) {
	qbar := 0.5 * density * st.Airspeed * st.Airspeed
	c := BuildUp(m, st)
	return Forces(m, c, st.Alpha, st.Beta, qbar)
}
