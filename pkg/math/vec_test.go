package math

import (
	"math"
	"testing"
)

func TestVec3Normalize(t *testing.T) {
	v := Vec3{X: 3, Y: 0, Z: 4}
	n := v.Normalize()
	if math.Abs(float64(n.Length()-1)) > 0.0001 {
		t.Errorf("normalized length should be 1, got %v", n.Length())
	}
	if math.Abs(float64(n.X-0.6)) > 0.0001 || math.Abs(float64(n.Z-0.8)) > 0.0001 {
		t.Errorf("expected (0.6, 0, 0.8), got (%v, %v, %v)", n.X, n.Y, n.Z)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	n := Vec3{}.Normalize()
	if n != (Vec3{}) {
		t.Errorf("zero vector should normalize to itself, got %+v", n)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{X: 1}
	y := Vec3{Y: 1}
	z := x.Cross(y)
	if z.X != 0 || z.Y != 0 || z.Z != 1 {
		t.Errorf("X cross Y should be Z, got %+v", z)
	}
}

func TestVec3Distance(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: 4, Y: 6, Z: 3}
	if d := a.Distance(b); math.Abs(float64(d-5)) > 0.0001 {
		t.Errorf("expected distance 5, got %v", d)
	}
}
