package math

import (
	"math"
	"testing"
)

func TestIdentityMul(t *testing.T) {
	m := Translate(1, 2, 3)
	r := Identity().Mul(m)
	for i := 0; i < 16; i++ {
		if r[i] != m[i] {
			t.Errorf("identity * m should equal m, element %d: got %v, want %v", i, r[i], m[i])
		}
	}
}

func TestTranslatePoint(t *testing.T) {
	m := Translate(1, 2, 3)
	p := m.TransformPoint(Vec3{X: 10, Y: 20, Z: 30})
	want := Vec3{X: 11, Y: 22, Z: 33}
	if p != want {
		t.Errorf("expected %+v, got %+v", want, p)
	}
}

func TestScaleThenTranslate(t *testing.T) {
	// Mul applies right operand first: translate after scaling.
	m := Translate(1, 0, 0).Mul(Scale(2, 2, 2))
	p := m.TransformPoint(Vec3{X: 1, Y: 1, Z: 1})
	want := Vec3{X: 3, Y: 2, Z: 2}
	if p != want {
		t.Errorf("expected %+v, got %+v", want, p)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translate(5, 5, 5)
	d := m.TransformDirection(Vec3{X: 1, Y: 0, Z: 0})
	if d != (Vec3{X: 1}) {
		t.Errorf("direction should be unaffected by translation, got %+v", d)
	}
}

func TestTRSOrder(t *testing.T) {
	// Scale first, then rotate 90 degrees around Y, then translate.
	q := QuatFromAxisAngle(Vec3{Y: 1}, float32(math.Pi/2))
	m := TRS(Vec3{X: 10}, q, Vec3{X: 2, Y: 2, Z: 2})

	// Local point (1,0,0): scaled to (2,0,0), rotated to (0,0,-2),
	// translated to (10,0,-2).
	p := m.TransformPoint(Vec3{X: 1})
	if math.Abs(float64(p.X-10)) > 0.0001 || math.Abs(float64(p.Y)) > 0.0001 || math.Abs(float64(p.Z+2)) > 0.0001 {
		t.Errorf("expected (10, 0, -2), got (%v, %v, %v)", p.X, p.Y, p.Z)
	}
}

func TestTRSIdentity(t *testing.T) {
	m := TRS(Vec3{}, QuatIdentity(), Vec3{X: 1, Y: 1, Z: 1})
	id := Identity()
	for i := 0; i < 16; i++ {
		if math.Abs(float64(m[i]-id[i])) > 0.0001 {
			t.Errorf("identity TRS element %d: got %v, want %v", i, m[i], id[i])
		}
	}
}
