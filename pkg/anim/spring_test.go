package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpringConvergesToTarget(t *testing.T) {
	s := NewSpring(60, SpringFrequency, SpringDamping)
	s.Retarget(1)

	for i := 0; i < 600; i++ {
		s.Step()
	}

	assert.InDelta(t, 1, s.Value(), 1e-3)
	assert.True(t, s.Settled())
}

func TestSpringJump(t *testing.T) {
	s := NewSpring(60, SpringFrequency, SpringDamping)
	s.Retarget(1)
	s.Step()
	s.Step()

	s.Jump(0.5)
	assert.Equal(t, 0.5, s.Value())
	assert.True(t, s.Settled())
}

func TestSpringMovesTowardTarget(t *testing.T) {
	s := NewSpring(60, SpringFrequency, SpringDamping)
	s.Retarget(1)

	prev := s.Value()
	for i := 0; i < 10; i++ {
		v := s.Step()
		assert.Greater(t, v, prev, "step %d", i)
		prev = v
	}
}
