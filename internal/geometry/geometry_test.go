package geometry

import (
	"math"
	"testing"
)

func vecAlmostEq(t *testing.T, got, want Vec3, tol float64) {
	t.Helper()
	if math.Abs(got.X-want.X) > tol || math.Abs(got.Y-want.Y) > tol || math.Abs(got.Z-want.Z) > tol {
		t.Fatalf("vec=%+v want %+v (tol %v)", got, want, tol)
	}
}

func TestVec3_Basics(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{-2, 0.5, 4}

	if got := a.Add(b); got != (Vec3{-1, 2.5, 7}) {
		t.Fatalf("Add=%+v", got)
	}
	if got := a.Sub(b); got != (Vec3{3, 1.5, -1}) {
		t.Fatalf("Sub=%+v", got)
	}
	if got := a.Dot(b); got != -2+1+12 {
		t.Fatalf("Dot=%v", got)
	}
	if got := (Vec3{3, 4, 0}).Norm(); got != 5 {
		t.Fatalf("Norm=%v want 5", got)
	}
}

func TestVec3_CrossRightHanded(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	z := Vec3{0, 0, 1}

	if got := x.Cross(y); got != z {
		t.Fatalf("x cross y = %+v want %+v", got, z)
	}
	if got := y.Cross(z); got != x {
		t.Fatalf("y cross z = %+v want %+v", got, x)
	}
	if got := y.Cross(x); got != z.Scale(-1) {
		t.Fatalf("y cross x = %+v want %+v", got, z.Scale(-1))
	}
}

func TestMat3_InverseRoundTrip(t *testing.T) {
	m := Mat3{
		{4, 0, -1},
		{0, 2, 0},
		{-1, 0, 3},
	}
	inv, ok := m.Inverse()
	if !ok {
		t.Fatalf("Inverse() reported singular for invertible matrix")
	}

	prod := m.Mul(inv)
	id := Identity3()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(prod[i][j]-id[i][j]) > 1e-12 {
				t.Fatalf("m*inv != I at [%d][%d]: %v", i, j, prod[i][j])
			}
		}
	}
}

func TestMat3_SingularInverse(t *testing.T) {
	var zero Mat3
	if _, ok := zero.Inverse(); ok {
		t.Fatalf("Inverse() of zero matrix must report singular")
	}
}

func TestQuat_RotateAboutZ(t *testing.T) {
	// 90 degrees about +z maps +x to +y.
	q := QuatFromScaledAxis(Vec3{Z: math.Pi / 2})
	got := q.Rotate(Vec3{X: 1})
	vecAlmostEq(t, got, Vec3{Y: 1}, 1e-12)
}

func TestQuat_ConjInverts(t *testing.T) {
	q := QuatFromScaledAxis(Vec3{X: 0.3, Y: -0.2, Z: 0.9})
	v := Vec3{1.5, -2, 0.25}
	vecAlmostEq(t, q.Conj().Rotate(q.Rotate(v)), v, 1e-12)
}

func TestQuat_ZeroAxisIsIdentity(t *testing.T) {
	q := QuatFromScaledAxis(Vec3{})
	if q != IdentityQuat() {
		t.Fatalf("QuatFromScaledAxis(zero)=%+v want identity", q)
	}
	v := Vec3{7, 8, 9}
	if got := q.Rotate(v); got != v {
		t.Fatalf("identity rotation moved vector: %+v", got)
	}
}
