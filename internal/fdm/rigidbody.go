// Package fdm integrates rigid-body motion under the forces and moments
// produced by the aerodynamic model. World axes are NED (x north, y east,
// z down); body axes are the usual airframe convention (x forward, y
// right wing, z down).
package fdm

import (
	"errors"

	"fdm-ng/internal/aircraft"
	"fdm-ng/internal/geometry"
)

// Gravity is standard gravitational acceleration, m/s^2.
const Gravity = 9.80665

// ErrSingularInertia reports an inertia tensor that cannot be inverted.
var ErrSingularInertia = errors.New("inertia tensor is singular")

// Body holds the constant mass properties of one rigid body. The inertia
// tensor carries the -Ixz product in the off-diagonal x/z slots; Ixy and
// Iyz are zero, matching the parameter record's symmetry assumption.
type Body struct {
	Mass       float64
	Inertia    geometry.Mat3
	InertiaInv geometry.Mat3
}

// NewBody assembles the inertia tensor from a parameter record and
// precomputes its inverse. The sign of Ixz is taken from the record as
// given.
func NewBody(m aircraft.Model) (Body, error) {
	inertia := geometry.Mat3{
		{m.Ixx, 0, -m.Ixz},
		{0, m.Iyy, 0},
		{-m.Ixz, 0, m.Izz},
	}
	inv, ok := inertia.Inverse()
	if !ok {
		return Body{}, ErrSingularInertia
	}
	return Body{Mass: m.Mass, Inertia: inertia, InertiaInv: inv}, nil
}

// State is the instantaneous rigid-body state. Position and Velocity are
// world-frame; Rates are body-frame angular rates (p, q, r); Attitude is
// the body-to-world rotation.
type State struct {
	Position geometry.Vec3
	Velocity geometry.Vec3
	Attitude geometry.Quat
	Rates    geometry.Vec3
}

// BodyVelocity returns the velocity expressed in body axes.
func (s State) BodyVelocity() geometry.Vec3 {
	return s.Attitude.Conj().Rotate(s.Velocity)
}

// Step advances the state by dt seconds using semi-implicit Euler:
// velocities are updated from the accelerations first, then position and
// attitude from the updated velocities. forceWorld is the net force in
// world axes; momentBody is the net moment in body axes.
func (s *State) Step(b Body, forceWorld, momentBody geometry.Vec3, dt float64) {
	acc := forceWorld.Scale(1 / b.Mass)
	angAcc := b.InertiaInv.MulVec(momentBody)

	s.Velocity = s.Velocity.Add(acc.Scale(dt))
	s.Rates = s.Rates.Add(angAcc.Scale(dt))

	s.Position = s.Position.Add(s.Velocity.Scale(dt))
	s.Attitude = geometry.QuatFromScaledAxis(s.Rates.Scale(dt)).Mul(s.Attitude).Normalize()
}

// KineticEnergy returns translational plus rotational kinetic energy.
func (s State) KineticEnergy(b Body) float64 {
	translational := 0.5 * b.Mass * s.Velocity.Dot(s.Velocity)
	rotational := 0.5 * s.Rates.Dot(b.Inertia.MulVec(s.Rates))
	return translational + rotational
}
