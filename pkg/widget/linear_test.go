package widget

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLinearValidation(t *testing.T) {
	bad := 150.0
	assert.Panics(t, func() {
		NewLinear(LinearConfig{Value: &bad})
	})

	ok := 50.0
	assert.NotPanics(t, func() {
		NewLinear(LinearConfig{Value: &ok})
	})
}

func TestLinearDefaults(t *testing.T) {
	l := NewLinear(LinearConfig{})
	assert.Equal(t, DefaultLinearWidth, l.width)
	assert.Equal(t, DefaultFPS, l.fps)
	assert.True(t, l.Indeterminate())
}

func TestLinearDeterminateViewWidth(t *testing.T) {
	v := 50.0
	l := NewLinear(LinearConfig{Value: &v, Width: 20})

	// Count bar cells rather than raw length; the renderer may emit color
	// escape sequences around them.
	cells := 0
	for _, r := range l.View() {
		if r == BarFilled || r == BarEmpty {
			cells++
		}
	}
	assert.Equal(t, 20, cells, "bar fills the configured width")
}

func TestLinearShowPercent(t *testing.T) {
	v := 37.0
	l := NewLinear(LinearConfig{Value: &v, Width: 10, ShowPercent: true})
	assert.Contains(t, l.View(), "37%")
}

func TestLinearLabelAboveBar(t *testing.T) {
	v := 10.0
	l := NewLinear(LinearConfig{Value: &v, Label: "Sync"})
	lines := strings.Split(l.View(), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Sync")
}

func TestLinearConstructedValueRendersImmediately(t *testing.T) {
	// A value supplied at construction is the resting position, not a tween
	// target: no animation plays on mount.
	v := 60.0
	l := NewLinear(LinearConfig{Value: &v})
	got, ok := l.Value()
	require.True(t, ok)
	assert.Equal(t, 60.0, got)

	cmd := l.Start()
	assert.Nil(t, cmd, "nothing to animate at rest")
}

func TestLinearTweensBetweenValues(t *testing.T) {
	v := 0.0
	l := NewLinear(LinearConfig{Value: &v, Duration: 500 * time.Millisecond, FPS: 50})

	cmd := l.SetValue(100)
	require.NotNil(t, cmd)

	at := time.Now()
	prev := 0.0
	for i := 0; i < 50 && l.running; i++ {
		at = at.Add(20 * time.Millisecond)
		l, _ = l.Update(FrameMsg{id: l.id, tag: l.tag, at: at})
		cur, ok := l.Value()
		require.True(t, ok)
		assert.GreaterOrEqual(t, cur, prev-1e-9)
		prev = cur
	}
	final, _ := l.Value()
	assert.Equal(t, 100.0, final)
}

func TestLinearSpringConverges(t *testing.T) {
	v := 0.0
	l := NewLinear(LinearConfig{Value: &v, Spring: true, FPS: 60})

	cmd := l.SetValue(100)
	require.NotNil(t, cmd)

	at := time.Now()
	for i := 0; i < 600 && l.running; i++ {
		at = at.Add(time.Second / 60)
		l, _ = l.Update(FrameMsg{id: l.id, tag: l.tag, at: at})
	}
	final, ok := l.Value()
	require.True(t, ok)
	assert.InDelta(t, 100, final, 0.5)
	assert.False(t, l.running, "spring settles and frames stop")
}

func TestLinearIndeterminateBandMoves(t *testing.T) {
	l := NewLinear(LinearConfig{Width: 20})
	cmd := l.Start()
	require.NotNil(t, cmd)

	first := l.View()
	at := time.Now().Add(500 * time.Millisecond)
	l, _ = l.Update(FrameMsg{id: l.id, tag: l.tag, at: at})
	l, _ = l.Update(FrameMsg{id: l.id, tag: l.tag, at: at.Add(500 * time.Millisecond)})
	second := l.View()

	assert.NotEqual(t, first, second, "band position advances with the cycle")
}

func TestLinearModeTransitions(t *testing.T) {
	l := NewLinear(LinearConfig{})
	l.Start()
	require.True(t, l.driver.Running())

	l.SetValue(30)
	assert.False(t, l.Indeterminate())
	assert.False(t, l.driver.Running())

	l.ClearValue()
	assert.True(t, l.Indeterminate())
	assert.True(t, l.driver.Running())
}

func TestLinearSemantics(t *testing.T) {
	v := 88.0
	l := NewLinear(LinearConfig{Value: &v, Label: "Copy"})
	assert.Equal(t, "Copy", l.SemanticLabel())
	assert.Equal(t, "88%", l.SemanticValue())

	l.ClearValue()
	assert.Equal(t, "", l.SemanticValue())
}
