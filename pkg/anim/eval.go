package anim

// Fixed iteration counts for the eased-time root-finder. Convergence
// checking would make the iteration count depend on floating-point
// rounding, which breaks bit-reproducibility across machines.
const (
	easeBisectIters = 8
	easeNewtonIters = 4
)

// Value evaluates a scalar spline at the given clip-normalized time.
// Returns ErrMalformedCurve for a spline with no keyframes.
func (s *Spline) Value(t float32) (float32, error) {
	if len(s.Keys) == 0 {
		return 0, ErrMalformedCurve
	}
	if len(s.Keys) == 1 {
		return s.Keys[0].Value, nil
	}

	seg := s.locate(t)
	k0 := &s.Keys[seg.I0]
	k1 := &s.Keys[seg.I1]
	k2 := &s.Keys[seg.I2]
	k3 := &s.Keys[seg.I3]

	switch s.Mode {
	case InterpStep:
		// The key immediately preceding t; at the clamped end of a
		// non-looping spline that is the final key.
		if seg.U >= 1 {
			return k2.Value, nil
		}
		return k1.Value, nil

	case InterpLinear:
		return k1.Value + (k2.Value-k1.Value)*seg.U, nil

	case InterpCatmullRom:
		return catmullRom(k0.Value, k1.Value, k2.Value, k3.Value, seg.U), nil

	case InterpBezier:
		p := easedParameter(k1, k2, seg.U)
		return bezierValue(k1, k2, p), nil
	}

	return k1.Value, nil
}

// catmullRom evaluates the uniform Catmull-Rom basis: the curve passes
// exactly through p1 and p2, with tangents (p2-p0)/2 and (p3-p1)/2.
func catmullRom(p0, p1, p2, p3, u float32) float32 {
	u2 := u * u
	u3 := u2 * u
	return 0.5 * (2*p1 +
		(-p0+p2)*u +
		(2*p0-5*p1+4*p2-p3)*u2 +
		(-p0+3*p1-3*p2+p3)*u3)
}

// easedParameter converts the raw segment parameter u into eased time by
// inverting the time-domain cubic shaped by k1's outgoing and k2's
// incoming control handles. The cubic's time axis runs 0..1 with inner
// control abscissae derived from the handle time offsets.
func easedParameter(k1, k2 *Keyframe, u float32) float32 {
	x1 := clamp01(k1.OutTime)
	x2 := clamp01(1 - k2.InTime)
	return solveBezierTime(x1, x2, u)
}

// bezierValue blends the two key values and their derived tangent handles
// with the cubic Bernstein basis at the (eased) parameter p.
func bezierValue(k1, k2 *Keyframe, p float32) float32 {
	y0 := k1.Value
	y1 := k1.Value + k1.OutValue
	y2 := k2.Value - k2.InValue
	y3 := k2.Value

	mp := 1 - p
	mp2 := mp * mp
	p2 := p * p
	return mp2*mp*y0 + 3*mp2*p*y1 + 3*mp*p2*y2 + p2*p*y3
}

// solveBezierTime finds p in [0,1] with x(p) = u, where x is the cubic
// Bezier through (0, x1, x2, 1). There is no closed form suitable for
// production use, so the root is bracketed with a fixed number of
// bisection steps and refined with fixed Newton-Raphson steps on the
// analytic derivative. If refinement escapes [0,1] the raw parameter is
// returned, degrading curve fidelity instead of extrapolating.
func solveBezierTime(x1, x2, u float32) float32 {
	var lo, hi float32 = 0, 1
	for i := 0; i < easeBisectIters; i++ {
		mid := (lo + hi) * 0.5
		if bezierTime(x1, x2, mid) < u {
			lo = mid
		} else {
			hi = mid
		}
	}

	p := (lo + hi) * 0.5
	for i := 0; i < easeNewtonIters; i++ {
		d := bezierTimeDeriv(x1, x2, p)
		if d == 0 {
			break
		}
		p -= (bezierTime(x1, x2, p) - u) / d
	}

	if p < 0 || p > 1 {
		return u
	}
	return p
}

// bezierTime evaluates the time cubic through (0, x1, x2, 1) at p.
func bezierTime(x1, x2, p float32) float32 {
	mp := 1 - p
	return 3*mp*mp*p*x1 + 3*mp*p*p*x2 + p*p*p
}

// bezierTimeDeriv is the analytic derivative of bezierTime.
func bezierTimeDeriv(x1, x2, p float32) float32 {
	mp := 1 - p
	return 3*mp*mp*x1 + 6*mp*p*(x2-x1) + 3*p*p*(1-x2)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
