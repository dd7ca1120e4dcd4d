// Package clock provides the external time sources playback synchronizes
// to. The evaluator itself is a pure function of time; whoever owns the
// frame loop picks a clock and feeds its reading into evaluation, so
// visual playback stays exactly in step with the source.
package clock

import "time"

// Clock reports elapsed playback time in seconds.
type Clock interface {
	Now() float64
}

// Manual is a clock advanced explicitly by the caller. Used by tests and
// offline evaluation, where time must be an exact input rather than a
// measurement.
type Manual struct {
	t float64
}

// Now returns the current manual time.
func (m *Manual) Now() float64 {
	return m.t
}

// Set moves the clock to an absolute time.
func (m *Manual) Set(t float64) {
	m.t = t
}

// Advance moves the clock forward by dt seconds.
func (m *Manual) Advance(dt float64) {
	m.t += dt
}

// System measures wall-clock time since Start was called.
type System struct {
	start time.Time
}

// Start begins counting from now.
func (s *System) Start() {
	s.start = time.Now()
}

// Now returns seconds elapsed since Start.
func (s *System) Now() float64 {
	if s.start.IsZero() {
		return 0
	}
	return time.Since(s.start).Seconds()
}
