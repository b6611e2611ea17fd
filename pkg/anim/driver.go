package anim

import "time"

// Driver is a repeating normalized clock for indeterminate animations. It
// cycles from 0 to 1 over its period and wraps around indefinitely until the
// owner stops advancing it.
type Driver struct {
	period  time.Duration
	elapsed time.Duration
	running bool
}

// NewDriver creates a stopped driver with the given cycle period.
func NewDriver(period time.Duration) *Driver {
	return &Driver{period: period}
}

// Start begins (or resumes) the cycle from zero.
func (d *Driver) Start() {
	d.elapsed = 0
	d.running = true
}

// Stop halts the cycle. T returns 0 while stopped.
func (d *Driver) Stop() {
	d.running = false
	d.elapsed = 0
}

// Running reports whether the driver is cycling.
func (d *Driver) Running() bool {
	return d.running
}

// Advance moves the clock forward by dt, wrapping at the period boundary.
// Advancing a stopped driver is a no-op.
func (d *Driver) Advance(dt time.Duration) {
	if !d.running || dt <= 0 || d.period <= 0 {
		return
	}
	d.elapsed = (d.elapsed + dt) % d.period
}

// T returns the current cycle position in [0, 1).
func (d *Driver) T() float64 {
	if !d.running || d.period <= 0 {
		return 0
	}
	return float64(d.elapsed) / float64(d.period)
}
