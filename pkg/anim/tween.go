package anim

import "time"

// Tween interpolates a value from a start point to a target over a fixed
// duration, remapping elapsed time through an easing curve. It is an explicit
// state machine: Retarget begins a new interpolation from the current
// interpolated value, Advance moves time forward, Value reads the current
// position.
//
// A Tween never jumps: retargeting mid-flight restarts from wherever the
// value currently is, not from the old endpoint.
type Tween struct {
	start    float64
	end      float64
	elapsed  time.Duration
	duration time.Duration
	curve    Curve
}

// NewTween creates a tween resting at initial. The tween is complete until
// the first Retarget.
func NewTween(initial float64, duration time.Duration, curve Curve) *Tween {
	if curve == nil {
		curve = FastOutSlowIn
	}
	return &Tween{
		start:    initial,
		end:      initial,
		elapsed:  duration,
		duration: duration,
		curve:    curve,
	}
}

// Retarget starts a new interpolation toward target. The start point is the
// current interpolated value, so an in-flight animation redirects smoothly.
// Retargeting to the current end value is a no-op.
func (t *Tween) Retarget(target float64) {
	if target == t.end {
		return
	}
	t.start = t.Value()
	t.end = target
	t.elapsed = 0
}

// Advance moves the tween forward by dt. Negative deltas are ignored.
func (t *Tween) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	t.elapsed += dt
	if t.elapsed > t.duration {
		t.elapsed = t.duration
	}
}

// Value returns the current interpolated value.
func (t *Tween) Value() float64 {
	if t.Done() {
		return t.end
	}
	frac := t.curve(float64(t.elapsed) / float64(t.duration))
	return t.start + (t.end-t.start)*frac
}

// Target returns the value the tween is heading toward.
func (t *Tween) Target() float64 {
	return t.end
}

// Done reports whether the interpolation has reached its target.
func (t *Tween) Done() bool {
	return t.duration <= 0 || t.elapsed >= t.duration
}

// Jump snaps the tween to value with no animation.
func (t *Tween) Jump(value float64) {
	t.start = value
	t.end = value
	t.elapsed = t.duration
}
