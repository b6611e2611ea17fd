package widget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCircularValidation(t *testing.T) {
	bad := -1.0
	assert.Panics(t, func() {
		NewCircular(CircularConfig{Value: &bad})
	})
}

func TestCircularUsesFixedStroke(t *testing.T) {
	c := NewCircular(CircularConfig{})
	assert.Equal(t, DefaultCircularStroke, c.ring.stroke)
	assert.False(t, c.ring.backwards, "no direction knob on the standard indicator")
}

func TestCircularDelegates(t *testing.T) {
	v := 25.0
	c := NewCircular(CircularConfig{Value: &v, Label: "Load"})

	assert.Equal(t, "Load", c.SemanticLabel())
	assert.Equal(t, "25%", c.SemanticValue())
	assert.False(t, c.Indeterminate())

	got, ok := c.Value()
	require.True(t, ok)
	assert.Equal(t, 25.0, got)
}

func TestCircularIndeterminateLoop(t *testing.T) {
	c := NewCircular(CircularConfig{})
	cmd := c.Start()
	require.NotNil(t, cmd)
	require.True(t, c.Indeterminate())

	first := c.View()
	at := time.Now().Add(300 * time.Millisecond)
	c, _ = c.Update(FrameMsg{id: c.ring.id, tag: c.ring.tag, at: at})
	c, _ = c.Update(FrameMsg{id: c.ring.id, tag: c.ring.tag, at: at.Add(300 * time.Millisecond)})
	second := c.View()

	assert.NotEqual(t, first, second, "loop animation changes the frame")
}

func TestCircularStop(t *testing.T) {
	c := NewCircular(CircularConfig{})
	c.Start()
	c.Stop()
	assert.False(t, c.ring.driver.Running())
}
