package geometry

import "math"

// Quat is a unit quaternion representing a rotation. A body attitude is
// stored as the body-to-world rotation.
type Quat struct{ W, X, Y, Z float64 }

// IdentityQuat returns the no-rotation quaternion.
func IdentityQuat() Quat { return Quat{W: 1} }

// QuatFromScaledAxis builds the rotation whose axis is v's direction and
// whose angle is v's magnitude in radians. The zero vector yields identity.
func QuatFromScaledAxis(v Vec3) Quat {
	angle := v.Norm()
	if angle == 0 {
		return IdentityQuat()
	}
	half := angle / 2
	s := math.Sin(half) / angle
	return Quat{W: math.Cos(half), X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Mul returns the composed rotation q * o (o applied first).
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
	}
}

// Conj returns the inverse rotation (valid for unit quaternions).
func (q Quat) Conj() Quat { return Quat{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z} }

// Normalize rescales q to unit length, countering integration drift.
func (q Quat) Normalize() Quat {
	n := math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	if n == 0 {
		return IdentityQuat()
	}
	return Quat{q.W / n, q.X / n, q.Y / n, q.Z / n}
}

// Rotate applies the rotation to v (computes q v q*).
func (q Quat) Rotate(v Vec3) Vec3 {
	// t = 2 (q.xyz x v); v' = v + w t + q.xyz x t
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}
