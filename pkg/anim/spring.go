package anim

import "github.com/charmbracelet/harmonica"

// Default spring parameters, matching the feel of the bubbles progress bar.
const (
	SpringFrequency = 18.0
	SpringDamping   = 1.0
)

// Spring interpolates toward a target using damped harmonic motion instead
// of a fixed duration and curve. Used by the linear widget's spring mode;
// motion speed depends on distance rather than a deadline.
type Spring struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

// NewSpring creates a spring stepping at the given frames per second.
// Frequency controls speed, damping controls bounce (1.0 = no overshoot).
func NewSpring(fps int, frequency, damping float64) *Spring {
	return &Spring{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// Retarget points the spring at a new resting position.
func (s *Spring) Retarget(target float64) {
	s.target = target
}

// Jump snaps the spring to value and kills its velocity.
func (s *Spring) Jump(value float64) {
	s.pos = value
	s.vel = 0
	s.target = value
}

// Step advances the simulation one frame and returns the new position.
func (s *Spring) Step() float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	return s.pos
}

// Value returns the current position without advancing.
func (s *Spring) Value() float64 {
	return s.pos
}

// Settled reports whether the spring has effectively come to rest at its
// target.
func (s *Spring) Settled() bool {
	const eps = 1e-3
	dist := s.pos - s.target
	if dist < 0 {
		dist = -dist
	}
	vel := s.vel
	if vel < 0 {
		vel = -vel
	}
	return dist < eps && vel < eps
}
