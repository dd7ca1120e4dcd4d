// Package anim implements evaluation of authored keyframe splines: four
// interpolation modes for scalar channels plus shortest-arc variants for
// rotation channels. Evaluation is pure and deterministic; the same spline
// and query time always produce bit-identical results.
package anim

import (
	"errors"
	"fmt"

	"github.com/solar-nl/prism/pkg/math"
)

// Interp selects the interpolation mode of a spline.
type Interp uint8

const (
	// InterpStep holds each keyframe's value until the next key.
	InterpStep Interp = iota
	// InterpLinear blends linearly between bracketing keys; rotation
	// channels use shortest-arc slerp instead of component lerp.
	InterpLinear
	// InterpCatmullRom passes through every key with tangents derived
	// from the neighboring keys; rotation channels use squad.
	InterpCatmullRom
	// InterpBezier shapes time through a cubic eased by per-key control
	// handles, then blends values on a cubic Bezier.
	InterpBezier
)

// ErrMalformedCurve reports a spline that cannot be evaluated. It indicates
// corrupt authored content and is surfaced to the caller rather than being
// papered over with a default value.
var ErrMalformedCurve = errors.New("anim: malformed curve")

// Keyframe is a single authored key. Scalar splines read Value, rotation
// splines read Rotation. The In/Out pairs are easing control offsets in
// normalized segment units, used only by InterpBezier: Out shapes the
// segment leaving this key, In the segment arriving at it.
type Keyframe struct {
	Time     float32
	Value    float32
	Rotation math.Quat

	InTime   float32
	InValue  float32
	OutTime  float32
	OutValue float32
}

// Spline is an immutable authored curve: keyframes sorted ascending by
// time, an interpolation mode and a loop flag. Times are clip-normalized;
// a looping spline has period 1 and wraps query times modulo that period,
// a non-looping spline clamps to [first key, last key].
type Spline struct {
	Keys []Keyframe
	Mode Interp
	Loop bool
}

// Validate checks the structural invariants of authored content: at least
// one keyframe, times sorted strictly ascending.
func (s *Spline) Validate() error {
	if len(s.Keys) == 0 {
		return fmt.Errorf("%w: no keyframes", ErrMalformedCurve)
	}
	for i := 1; i < len(s.Keys); i++ {
		if s.Keys[i].Time <= s.Keys[i-1].Time {
			return fmt.Errorf("%w: keys %d and %d out of order (%v >= %v)",
				ErrMalformedCurve, i-1, i, s.Keys[i-1].Time, s.Keys[i].Time)
		}
	}
	return nil
}
