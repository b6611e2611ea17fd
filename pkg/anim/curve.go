package anim

// Curve remaps normalized time t in [0, 1] to eased progress in [0, 1].
// Curves must map 0 to 0 and 1 to 1; monotonic curves keep tween output
// monotonic between retargets.
type Curve func(t float64) float64

// Linear applies no easing.
func Linear(t float64) float64 {
	return clamp01(t)
}

// EaseOutQuad decelerates toward the end: 1 - (1-t)^2.
func EaseOutQuad(t float64) float64 {
	t = clamp01(t)
	return 1 - (1-t)*(1-t)
}

// EaseInOutCubic accelerates through the first half and decelerates through
// the second.
func EaseInOutCubic(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 1 + u*u*u/2
}

// FastOutSlowIn is the standard material motion curve, a cubic bezier with
// control points (0.4, 0) and (0.2, 1). It is the default curve for all
// halo widgets.
var FastOutSlowIn = CubicBezier(0.4, 0, 0.2, 1)

// bezierEpsilon bounds the parametric solve error in CubicBezier.
const bezierEpsilon = 1e-6

// CubicBezier builds an easing curve from a unit cubic bezier with control
// points (x1, y1) and (x2, y2), anchored at (0,0) and (1,1). The returned
// curve solves the bezier parameter for a given time x by bisection, then
// evaluates the y polynomial at that parameter.
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	eval := func(a, b, t float64) float64 {
		// Cubic bezier polynomial for one axis with anchors at 0 and 1.
		u := 1 - t
		return 3*u*u*t*a + 3*u*t*t*b + t*t*t
	}

	return func(t float64) float64 {
		t = clamp01(t)
		if t == 0 || t == 1 {
			return t
		}

		lo, hi := 0.0, 1.0
		for hi-lo > bezierEpsilon {
			mid := (lo + hi) / 2
			if eval(x1, x2, mid) < t {
				lo = mid
			} else {
				hi = mid
			}
		}
		return eval(y1, y2, (lo+hi)/2)
	}
}

// clamp01 clamps v to the [0, 1] range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
