// Package geometry provides the small 3D value types shared by the
// aerodynamic model and the rigid-body integrator: vectors, 3x3 matrices
// and unit quaternions. All types are plain values; operations return new
// values and never mutate their receivers.
package geometry

import "math"

// Vec3 is a 3-component vector. The frame (body, world, wind) is a
// property of the call site, not of the type.
type Vec3 struct{ X, Y, Z float64 }

// Add returns the sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the difference between two vectors.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale scales a vector by a scalar.
func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Norm returns the Euclidean magnitude.
func (v Vec3) Norm() float64 { return math.Sqrt(v.Dot(v)) }
