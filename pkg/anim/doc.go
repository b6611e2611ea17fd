// Package anim provides the interpolation primitives behind halo's animated
// widgets: easing curves, a duration-based tween state machine, a repeating
// cycle driver for indeterminate loops, weighted tween sequences, and an
// optional spring interpolator.
//
// Everything here is frame-driven and single-threaded: callers advance state
// with elapsed wall time (typically from a Bubble Tea tick) and read the
// current value back. Nothing in this package schedules its own callbacks.
//
// # Tween Usage
//
//	tw := anim.NewTween(0, time.Second, anim.FastOutSlowIn)
//	tw.Retarget(75)            // animate from wherever we are to 75
//	tw.Advance(16 * time.Millisecond)
//	v := tw.Value()            // interpolated, clamped to [start, end] span
//
// # Indeterminate Loops
//
// A Driver produces a repeating normalized clock, and a Sequence maps that
// clock across weighted segments:
//
//	d := anim.NewDriver(2 * time.Second)
//	seq := anim.NewSequence(
//		anim.Segment{From: 0, To: 450, Weight: 1},
//		anim.Segment{From: 450, To: 1080, Weight: 1},
//	)
//	d.Advance(dt)
//	angle := seq.At(d.T())
package anim
