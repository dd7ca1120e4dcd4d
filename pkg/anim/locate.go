package anim

import "math"

// segment identifies the four consecutive keys around a query time and the
// normalized parameter within the bracketing pair. I1 and I2 bracket the
// query; I0 and I3 are their outer neighbors, clamped at the ends of a
// non-looping spline and wrapped modulo the key count for a looping one.
// Four keys are always gathered even for modes that need only two, so
// every mode evaluates through the same interface.
type segment struct {
	I0, I1, I2, I3 int
	U              float32
}

// locate finds the bracketing keyframes for t. Authored splines typically
// hold under ~20 keys, so a linear scan beats a binary search on locality
// and keeps the wrap handling straightforward.
func (s *Spline) locate(t float32) segment {
	n := len(s.Keys)
	if n == 1 {
		return segment{}
	}

	if s.Loop {
		return s.locateLoop(t, n)
	}

	first := s.Keys[0].Time
	last := s.Keys[n-1].Time
	if t <= first {
		return segment{I0: 0, I1: 0, I2: 1, I3: clampIndex(2, n)}
	}
	if t >= last {
		return segment{I0: clampIndex(n-3, n), I1: n - 2, I2: n - 1, I3: n - 1, U: 1}
	}

	// First key whose time exceeds the query.
	next := 1
	for next < n && s.Keys[next].Time <= t {
		next++
	}
	i1 := next - 1
	span := s.Keys[next].Time - s.Keys[i1].Time
	var u float32
	if span > 0 {
		u = (t - s.Keys[i1].Time) / span
	}
	return segment{
		I0: clampIndex(i1-1, n),
		I1: i1,
		I2: next,
		I3: clampIndex(next+1, n),
		U:  u,
	}
}

// locateLoop wraps the query time modulo the period. The segment between
// the last and first key spans the wrap point, so its length is computed
// as (1 + delta) mod 1.
func (s *Spline) locateLoop(t float32, n int) segment {
	t -= float32(math.Floor(float64(t)))

	// First key whose time exceeds the wrapped query; if none, the query
	// sits in the wrap segment back to key 0.
	next := 0
	for next < n && s.Keys[next].Time <= t {
		next++
	}
	i1 := (next - 1 + n) % n
	i2 := next % n

	span := s.Keys[i2].Time - s.Keys[i1].Time
	if span <= 0 {
		span += 1
	}
	delta := t - s.Keys[i1].Time
	if delta < 0 {
		delta += 1
	}
	var u float32
	if span > 0 {
		u = delta / span
	}
	return segment{
		I0: (i1 - 1 + n) % n,
		I1: i1,
		I2: i2,
		I3: (i1 + 2) % n,
		U:  u,
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
