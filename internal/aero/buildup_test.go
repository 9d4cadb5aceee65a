package aero

import (
	"math"
	"testing"

	"fdm-ng/internal/aircraft"
)

func almostEq(t *testing.T, got, want, tol float64, name string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s=%v want %v (tol %v)", name, got, want, tol)
	}
}

func TestBuildUp_ZeroStateIsBiasOnly(t *testing.T) {
	m := aircraft.F4Phantom()
	c := BuildUp(m, FlightState{Airspeed: 100})

	if c.Drag != m.Coefficients.Drag.Zero {
		t.Fatalf("cD=%v want bias %v", c.Drag, m.Coefficients.Drag.Zero)
	}
	if c.Lift != m.Coefficients.Lift.Zero {
		t.Fatalf("cL=%v want bias %v", c.Lift, m.Coefficients.Lift.Zero)
	}
	if c.Pitch != m.Coefficients.Pitch.Zero {
		t.Fatalf("cm=%v want bias %v", c.Pitch, m.Coefficients.Pitch.Zero)
	}
	if c.SideForce != 0 || c.Roll != 0 || c.Yaw != 0 {
		t.Fatalf("lateral coefficients nonzero at zero state: cY=%v cl=%v cn=%v",
			c.SideForce, c.Roll, c.Yaw)
	}
}

func TestBuildUp_YawOddInSideslip(t *testing.T) {
	// The F-4 set has c_n_beta2 = 0, so with rates and lateral controls
	// zero the yaw coefficient must be an odd function of sideslip.
	m := aircraft.F4Phantom()
	if m.Coefficients.Yaw.Beta2 != 0 {
		t.Fatalf("precondition failed: c_n_beta2=%v want 0", m.Coefficients.Yaw.Beta2)
	}

	for _, beta := range []float64{0.01, 0.05, 0.12, 0.3} {
		pos := BuildUp(m, FlightState{Beta: beta, Airspeed: 150})
		neg := BuildUp(m, FlightState{Beta: -beta, Airspeed: 150})
		almostEq(t, pos.Yaw, -neg.Yaw, 1e-15, "cn odd symmetry")
	}
}

func TestBuildUp_NearZeroAirspeedZeroesRates(t *testing.T) {
	m := aircraft.F4Phantom()
	alpha := 0.2
	st := FlightState{
		Alpha:    alpha,
		P:        1.5,
		Q:        -2.0,
		R:        0.7,
		Airspeed: AirspeedEpsilon / 10,
	}
	c := BuildUp(m, st)

	// With phat=qhat=rhat=0 and no sideslip or controls, drag reduces to
	// the pure alpha polynomial.
	d := m.Coefficients.Drag
	a2 := alpha * alpha
	a3 := a2 * alpha
	a4 := a2 * a2
	want := d.Zero + d.Alpha*alpha + d.Alpha2*a2 + d.Alpha3*a3 + d.Alpha4*a4
	if c.Drag != want {
		t.Fatalf("cD=%v want %v (rate terms must vanish below epsilon)", c.Drag, want)
	}
	if c.SideForce != 0 || c.Roll != 0 || c.Yaw != 0 {
		t.Fatalf("rate-only lateral terms leaked through: cY=%v cl=%v cn=%v",
			c.SideForce, c.Roll, c.Yaw)
	}
}

func TestBuildUp_F4CruisePoint(t *testing.T) {
	// alpha=0.1 rad, no rates or controls, V=200 m/s. The expected values
	// are the term-by-term sums of the alpha polynomial with F-4 data.
	m := aircraft.F4Phantom()
	c := BuildUp(m, FlightState{Alpha: 0.1, Airspeed: 200})

	wantDrag := 0.031 + 0.280*0.1 + (-1.818)*0.01 + 22.27*0.001 + (-29.81)*0.0001
	wantLift := 0.105 + 1.519*0.1 + 9.90*0.01 + (-12.71)*0.001 + (-12.91)*0.0001
	almostEq(t, c.Drag, wantDrag, 1e-12, "cD")
	almostEq(t, c.Lift, wantLift, 1e-12, "cL")

	// Sanity on magnitude: both sit in the usual subsonic band.
	if c.Drag < 0.05 || c.Drag > 0.07 {
		t.Fatalf("cD=%v outside plausible band", c.Drag)
	}
	if c.Lift < 0.3 || c.Lift > 0.4 {
		t.Fatalf("cL=%v outside plausible band", c.Lift)
	}
}

func TestBuildUp_Deterministic(t *testing.T) {
	m := aircraft.TwinOtter()
	st := FlightState{
		Alpha: 0.07, Beta: -0.02,
		P: 0.1, Q: -0.05, R: 0.02,
		Elevator: -0.1, Aileron: 0.03, Rudder: -0.01,
		Airspeed: 62.5,
	}

	first := BuildUp(m, st)
	for i := 0; i < 100; i++ {
		if got := BuildUp(m, st); got != first {
			t.Fatalf("iteration %d: %+v want bit-identical %+v", i, got, first)
		}
	}
}

func TestBuildUp_AllPresetsFinite(t *testing.T) {
	// The polynomials extrapolate silently; they must still produce finite
	// numbers well outside the identification envelope.
	states := []FlightState{
		{Alpha: 1.2, Beta: 0.8, Airspeed: 30},
		{Alpha: -0.5, Beta: -0.6, P: 3, Q: 3, R: 3, Airspeed: 5},
		{Elevator: 0.5, Aileron: 0.5, Rudder: 0.5, Airspeed: 400},
	}
	for _, m := range []aircraft.Model{
		aircraft.F4Phantom(),
		aircraft.TwinOtter(),
		aircraft.GenericTransport(),
	} {
		for _, st := range states {
			c := BuildUp(m, st)
			for name, v := range map[string]float64{
				"cD": c.Drag, "cY": c.SideForce, "cL": c.Lift,
				"cl": c.Roll, "cm": c.Pitch, "cn": c.Yaw,
			} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("%s: %s=%v for state %+v", m.Name, name, v, st)
				}
			}
		}
	}
}
