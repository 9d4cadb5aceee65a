package aero

import "fdm-ng/internal/aircraft"

// BuildUp evaluates the six coefficient polynomials for the given flight
// state. Deterministic and side-effect-free: identical inputs produce
// bit-identical outputs.
func BuildUp(m aircraft.Model, st FlightState) Coefficients {
	// Nondimensional rates. Zeroed below the epsilon, see AirspeedEpsilon.
	var pHat, qHat, rHat float64
	if st.Airspeed > AirspeedEpsilon {
		pHat = st.P * m.WingSpan / (2 * st.Airspeed)
		qHat = st.Q * m.MAC / (2 * st.Airspeed)
		rHat = st.R * m.WingSpan / (2 * st.Airspeed)
	}

	a := st.Alpha
	a2 := a * a
	a3 := a2 * a
	a4 := a2 * a2
	b := st.Beta
	b2 := b * b
	b3 := b2 * b

	c := m.Coefficients

	d := c.Drag
	drag := d.Zero +
		d.Alpha*a +
		d.AlphaQ*a*qHat +
		d.AlphaDeltaE*a*st.Elevator +
		d.Alpha2*a2 +
		d.Alpha2Q*a2*qHat +
		d.Alpha2DeltaE*a2*st.Elevator +
		d.Alpha3*a3 +
		d.Alpha3Q*a3*qHat +
		d.Alpha4*a4

	y := c.SideForce
	side := y.Beta*b +
		y.P*pHat +
		y.R*rHat +
		y.DeltaA*st.Aileron +
		y.DeltaR*st.Rudder

	l := c.Lift
	lift := l.Zero +
		l.Alpha*a +
		l.Q*qHat +
		l.DeltaE*st.Elevator +
		l.AlphaQ*a*qHat +
		l.Alpha2*a2 +
		l.Alpha3*a3 +
		l.Alpha4*a4

	rl := c.Roll
	roll := rl.Beta*b +
		rl.P*pHat +
		rl.R*rHat +
		rl.DeltaA*st.Aileron +
		rl.DeltaR*st.Rudder

	p := c.Pitch
	pitch := p.Zero +
		p.Alpha*a +
		p.Q*qHat +
		p.DeltaE*st.Elevator +
		p.AlphaQ*a*qHat +
		p.Alpha2Q*a2*qHat +
		p.Alpha2DeltaE*a2*st.Elevator +
		p.Alpha3Q*a3*qHat +
		p.Alpha3DeltaE*a3*st.Elevator +
		p.Alpha4*a4

	n := c.Yaw
	yaw := n.Beta*b +
		n.P*pHat +
		n.R*rHat +
		n.DeltaA*st.Aileron +
		n.DeltaR*st.Rudder +
		n.Beta2*b2 +
		n.Beta3*b3

	return Coefficients{
		Drag:      drag,
		SideForce: side,
		Lift:      lift,
		Roll:      roll,
		Pitch:     pitch,
		Yaw:       yaw,
	}
}
