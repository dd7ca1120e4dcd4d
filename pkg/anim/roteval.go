package anim

import "github.com/solar-nl/prism/pkg/math"

// Rotation evaluates a rotation spline at the given clip-normalized time.
// Linear mode blends with shortest-arc slerp rather than component lerp:
// component-wise blending of quaternions produces non-uniform angular
// speed and can swing through the longer rotational direction. Cubic mode
// uses squad, the spherical analogue of Catmull-Rom, built from derived
// inner control rotations. Returns ErrMalformedCurve for an empty spline.
func (s *Spline) Rotation(t float32) (math.Quat, error) {
	if len(s.Keys) == 0 {
		return math.QuatIdentity(), ErrMalformedCurve
	}
	if len(s.Keys) == 1 {
		return s.Keys[0].Rotation, nil
	}

	seg := s.locate(t)
	q1 := s.Keys[seg.I1].Rotation
	q2 := s.Keys[seg.I2].Rotation

	switch s.Mode {
	case InterpStep:
		if seg.U >= 1 {
			return q2, nil
		}
		return q1, nil

	case InterpLinear:
		return q1.Slerp(q2, seg.U), nil

	case InterpCatmullRom:
		q0 := s.Keys[seg.I0].Rotation
		q3 := s.Keys[seg.I3].Rotation
		a := math.SquadIntermediate(q0, q1, q2)
		b := math.SquadIntermediate(q1, q2, q3)
		return math.Squad(q1, a, b, q2, seg.U), nil

	case InterpBezier:
		// Rotation keys carry time handles only; ease the parameter and
		// blend on the shortest arc.
		k1 := &s.Keys[seg.I1]
		k2 := &s.Keys[seg.I2]
		p := easedParameter(k1, k2, seg.U)
		return q1.Slerp(q2, p), nil
	}

	return q1, nil
}
