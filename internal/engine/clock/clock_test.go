package clock

import "testing"

func TestManualClock(t *testing.T) {
	var m Manual
	if m.Now() != 0 {
		t.Errorf("fresh manual clock should read 0, got %v", m.Now())
	}

	m.Set(2.5)
	if m.Now() != 2.5 {
		t.Errorf("after Set(2.5): got %v", m.Now())
	}

	m.Advance(0.5)
	if m.Now() != 3.0 {
		t.Errorf("after Advance(0.5): got %v", m.Now())
	}
}

func TestSystemClockBeforeStart(t *testing.T) {
	var s System
	if s.Now() != 0 {
		t.Errorf("unstarted system clock should read 0, got %v", s.Now())
	}
}

func TestSystemClockAdvances(t *testing.T) {
	var s System
	s.Start()
	if s.Now() < 0 {
		t.Error("system clock should never run backwards from its start")
	}
}
