package anim

import (
	"math"
	"testing"
)

func scalarSpline(mode Interp, loop bool, keys ...[2]float32) *Spline {
	s := &Spline{Mode: mode, Loop: loop}
	for _, k := range keys {
		s.Keys = append(s.Keys, Keyframe{Time: k[0], Value: k[1]})
	}
	return s
}

func TestLocateBracketing(t *testing.T) {
	s := scalarSpline(InterpLinear, false, [2]float32{0, 0}, [2]float32{0.25, 1}, [2]float32{0.5, 2}, [2]float32{1, 3})

	seg := s.locate(0.3)
	if seg.I1 != 1 || seg.I2 != 2 {
		t.Errorf("expected bracket keys 1,2, got %d,%d", seg.I1, seg.I2)
	}
	wantU := (0.3 - 0.25) / 0.25
	if math.Abs(float64(seg.U)-wantU) > 0.0001 {
		t.Errorf("expected u=%v, got %v", wantU, seg.U)
	}
}

func TestLocateGathersFourKeys(t *testing.T) {
	s := scalarSpline(InterpCatmullRom, false, [2]float32{0, 0}, [2]float32{0.25, 1}, [2]float32{0.5, 2}, [2]float32{1, 3})

	seg := s.locate(0.3)
	if seg.I0 != 0 || seg.I3 != 3 {
		t.Errorf("expected outer neighbors 0,3, got %d,%d", seg.I0, seg.I3)
	}
}

func TestLocateClampsBeforeFirst(t *testing.T) {
	s := scalarSpline(InterpLinear, false, [2]float32{0.2, 0}, [2]float32{0.8, 1})

	seg := s.locate(0)
	if seg.I1 != 0 || seg.U != 0 {
		t.Errorf("query before first key should clamp to start, got I1=%d U=%v", seg.I1, seg.U)
	}
}

func TestLocateClampsPastLast(t *testing.T) {
	s := scalarSpline(InterpLinear, false, [2]float32{0, 0}, [2]float32{0.5, 1}, [2]float32{0.8, 2})

	seg := s.locate(2)
	if seg.I1 != 1 || seg.I2 != 2 || seg.U != 1 {
		t.Errorf("query past last key should clamp to end, got I1=%d I2=%d U=%v", seg.I1, seg.I2, seg.U)
	}
}

func TestLocateLoopWrapSegment(t *testing.T) {
	s := scalarSpline(InterpLinear, true, [2]float32{0.2, 0}, [2]float32{0.5, 1}, [2]float32{0.9, 2})

	// 0.05 sits in the wrap segment from key 2 (t=0.9) back to key 0
	// (t=0.2), whose length is (1 + 0.2 - 0.9) mod 1 = 0.3.
	seg := s.locate(0.05)
	if seg.I1 != 2 || seg.I2 != 0 {
		t.Errorf("expected wrap bracket 2,0, got %d,%d", seg.I1, seg.I2)
	}
	if math.Abs(float64(seg.U)-0.5) > 0.0001 {
		t.Errorf("expected u=0.5 in wrap segment, got %v", seg.U)
	}
	if seg.I0 != 1 || seg.I3 != 1 {
		t.Errorf("expected modulo-wrapped neighbors 1,1, got %d,%d", seg.I0, seg.I3)
	}
}

func TestLocateLoopWrapsPeriod(t *testing.T) {
	s := scalarSpline(InterpLinear, true, [2]float32{0, 0}, [2]float32{0.5, 1})

	a := s.locate(0.25)
	b := s.locate(1.25)
	if a != b {
		t.Errorf("query times one period apart should locate identically: %+v vs %+v", a, b)
	}
}
