package anim

import (
	"errors"
	"math"
	"testing"
)

func mustValue(t *testing.T, s *Spline, at float32) float32 {
	t.Helper()
	v, err := s.Value(at)
	if err != nil {
		t.Fatalf("Value(%v): %v", at, err)
	}
	return v
}

func TestEmptySplineFails(t *testing.T) {
	s := &Spline{Mode: InterpLinear}
	if _, err := s.Value(0); !errors.Is(err, ErrMalformedCurve) {
		t.Errorf("empty spline should fail with ErrMalformedCurve, got %v", err)
	}
	if _, err := s.Rotation(0); !errors.Is(err, ErrMalformedCurve) {
		t.Errorf("empty rotation spline should fail with ErrMalformedCurve, got %v", err)
	}
}

func TestSingleKeyReturnsValue(t *testing.T) {
	s := scalarSpline(InterpCatmullRom, false, [2]float32{0.5, 7})
	for _, at := range []float32{0, 0.5, 1} {
		if v := mustValue(t, s, at); v != 7 {
			t.Errorf("single-key spline at t=%v: got %v, want 7", at, v)
		}
	}
}

func TestTwoKeyLinearPosition(t *testing.T) {
	s := scalarSpline(InterpLinear, false, [2]float32{0, 0}, [2]float32{1, 10})
	if v := mustValue(t, s, 0.5); v != 5 {
		t.Errorf("linear midpoint: got %v, want 5", v)
	}
}

func TestLinearBoundaryExactness(t *testing.T) {
	s := scalarSpline(InterpLinear, false, [2]float32{0, 1.5}, [2]float32{0.4, -2.25}, [2]float32{1, 8})
	for _, k := range s.Keys {
		if v := mustValue(t, s, k.Time); v != k.Value {
			t.Errorf("linear evaluation at key time %v: got %v, want exactly %v", k.Time, v, k.Value)
		}
	}
}

func TestStepColorSwitch(t *testing.T) {
	const red, blue = 1, 2
	s := scalarSpline(InterpStep, false, [2]float32{0, red}, [2]float32{0.5, blue})

	if v := mustValue(t, s, 0.49); v != red {
		t.Errorf("step at t=0.49: got %v, want red (%v)", v, red)
	}
	if v := mustValue(t, s, 0.5); v != blue {
		t.Errorf("step at t=0.5: got %v, want blue (%v)", v, blue)
	}
}

func TestStepHoldsPrecedingKey(t *testing.T) {
	s := scalarSpline(InterpStep, false, [2]float32{0, 10}, [2]float32{0.25, 20}, [2]float32{0.75, 30})

	cases := []struct{ at, want float32 }{
		{0, 10}, {0.1, 10}, {0.25, 20}, {0.5, 20}, {0.75, 30}, {1, 30},
	}
	for _, c := range cases {
		if v := mustValue(t, s, c.at); v != c.want {
			t.Errorf("step at t=%v: got %v, want %v", c.at, v, c.want)
		}
	}
}

func TestLoopWraparound(t *testing.T) {
	s := scalarSpline(InterpLinear, true, [2]float32{0, 3}, [2]float32{0.25, 7}, [2]float32{0.75, 1})

	v0 := mustValue(t, s, 0)
	v1 := mustValue(t, s, 1)
	if v0 != v1 {
		t.Errorf("loop spline at t=0 and t=1 should match exactly: %v vs %v", v0, v1)
	}
}

func TestLoopWrapSegmentBlends(t *testing.T) {
	s := scalarSpline(InterpLinear, true, [2]float32{0, 0}, [2]float32{0.5, 10})

	// The wrap segment runs from (0.5, 10) back to (0, 0) over length
	// 0.5; t=0.75 is its midpoint.
	if v := mustValue(t, s, 0.75); math.Abs(float64(v-5)) > 0.0001 {
		t.Errorf("wrap segment midpoint: got %v, want 5", v)
	}
}

func TestCatmullRomPassesThroughKeys(t *testing.T) {
	s := scalarSpline(InterpCatmullRom, false,
		[2]float32{0, 0}, [2]float32{0.25, 2}, [2]float32{0.5, -1}, [2]float32{0.75, 4}, [2]float32{1, 1})

	for _, k := range s.Keys {
		v := mustValue(t, s, k.Time)
		if math.Abs(float64(v-k.Value)) > 0.0001 {
			t.Errorf("cubic at key time %v: got %v, want %v", k.Time, v, k.Value)
		}
	}
}

func TestCatmullRomTangentContinuity(t *testing.T) {
	s := scalarSpline(InterpCatmullRom, false,
		[2]float32{0, 0}, [2]float32{0.25, 2}, [2]float32{0.5, -1}, [2]float32{0.75, 4}, [2]float32{1, 1})

	// One-sided finite-difference slopes on both sides of each interior
	// key must agree: no velocity corner.
	const h = 1e-3
	for _, keyTime := range []float32{0.25, 0.5, 0.75} {
		at := mustValue(t, s, keyTime)
		left := (at - mustValue(t, s, keyTime-h)) / h
		right := (mustValue(t, s, keyTime+h) - at) / h
		if math.Abs(float64(left-right)) > 0.05 {
			t.Errorf("tangent discontinuity at key %v: left slope %v, right slope %v", keyTime, left, right)
		}
	}
}

func TestBezierTimeHandlesEase(t *testing.T) {
	// Flat value handles with time handles pulled toward the segment
	// middle: slow out of the first key, slow into the last.
	s := &Spline{Mode: InterpBezier, Keys: []Keyframe{
		{Time: 0, Value: 0, OutTime: 0.5},
		{Time: 1, Value: 10, InTime: 0.5},
	}}

	early := mustValue(t, s, 0.1)
	late := mustValue(t, s, 0.9)
	if early >= 1 {
		t.Errorf("eased start should lag linear, got %v at t=0.1", early)
	}
	if late <= 9 {
		t.Errorf("eased end should lead linear, got %v at t=0.9", late)
	}
	if v := mustValue(t, s, 0.5); math.Abs(float64(v-5)) > 0.1 {
		t.Errorf("symmetric ease midpoint: got %v, want ~5", v)
	}
}

func TestBezierZeroHandlesMatchLinear(t *testing.T) {
	// With zero easing offsets the time and value cubics share the same
	// basis and the mode degenerates to a linear ramp.
	s := scalarSpline(InterpBezier, false, [2]float32{0, 0}, [2]float32{1, 10})
	for u := float32(0.1); u < 1; u += 0.2 {
		if v := mustValue(t, s, u); math.Abs(float64(v-u*10)) > 0.01 {
			t.Errorf("zero-handle bezier at t=%v: got %v, want ~%v", u, v, u*10)
		}
	}
}

func TestBezierKeyBoundaries(t *testing.T) {
	s := &Spline{Mode: InterpBezier, Keys: []Keyframe{
		{Time: 0, Value: 2, OutTime: 0.3, OutValue: 1},
		{Time: 1, Value: 8, InTime: 0.2, InValue: 0.5},
	}}

	if v := mustValue(t, s, 0); math.Abs(float64(v-2)) > 0.01 {
		t.Errorf("eased curve at first key: got %v, want ~2", v)
	}
	if v := mustValue(t, s, 1); math.Abs(float64(v-8)) > 0.01 {
		t.Errorf("eased curve at last key: got %v, want ~8", v)
	}
}

func TestSolveBezierTimeStaysInDomain(t *testing.T) {
	// For any monotonic control configuration the solved parameter must
	// land in [0,1].
	for _, x1 := range []float32{0, 0.1, 0.4, 0.9, 1} {
		for _, x2 := range []float32{0, 0.2, 0.6, 1} {
			for u := float32(0); u <= 1; u += 0.05 {
				p := solveBezierTime(x1, x2, u)
				if p < 0 || p > 1 {
					t.Fatalf("solver left domain: x1=%v x2=%v u=%v -> p=%v", x1, x2, u, p)
				}
			}
		}
	}
}

func TestSolveBezierTimeInvertsCurve(t *testing.T) {
	const x1, x2 = 0.42, 0.58
	for u := float32(0.05); u < 1; u += 0.1 {
		p := solveBezierTime(x1, x2, u)
		if got := bezierTime(x1, x2, p); math.Abs(float64(got-u)) > 0.001 {
			t.Errorf("x(solve(u)) should round-trip: u=%v, got %v", u, got)
		}
	}
}

func TestEvaluationIsDeterministic(t *testing.T) {
	splines := []*Spline{
		scalarSpline(InterpStep, false, [2]float32{0, 1}, [2]float32{0.5, 2}),
		scalarSpline(InterpLinear, true, [2]float32{0, 3}, [2]float32{0.6, -1}),
		scalarSpline(InterpCatmullRom, false, [2]float32{0, 0}, [2]float32{0.3, 2}, [2]float32{0.7, -3}, [2]float32{1, 1}),
		{Mode: InterpBezier, Keys: []Keyframe{
			{Time: 0, Value: 0, OutTime: 0.25, OutValue: 2},
			{Time: 1, Value: 10, InTime: 0.25, InValue: 2},
		}},
	}

	for si, s := range splines {
		for u := float32(0); u <= 1; u += 0.01 {
			a := mustValue(t, s, u)
			b := mustValue(t, s, u)
			if a != b {
				t.Fatalf("spline %d at t=%v: repeated evaluation differs (%v vs %v)", si, u, a, b)
			}
		}
	}
}

func TestValidate(t *testing.T) {
	empty := &Spline{}
	if err := empty.Validate(); !errors.Is(err, ErrMalformedCurve) {
		t.Errorf("empty spline should fail validation, got %v", err)
	}

	unsorted := scalarSpline(InterpLinear, false, [2]float32{0.5, 0}, [2]float32{0.2, 1})
	if err := unsorted.Validate(); !errors.Is(err, ErrMalformedCurve) {
		t.Errorf("unsorted spline should fail validation, got %v", err)
	}

	ok := scalarSpline(InterpLinear, false, [2]float32{0, 0}, [2]float32{1, 1})
	if err := ok.Validate(); err != nil {
		t.Errorf("sorted spline should validate, got %v", err)
	}
}
