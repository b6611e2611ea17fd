package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDriverStoppedByDefault(t *testing.T) {
	d := NewDriver(2 * time.Second)
	assert.False(t, d.Running())
	assert.Equal(t, 0.0, d.T())

	d.Advance(time.Second)
	assert.Equal(t, 0.0, d.T(), "advancing a stopped driver is a no-op")
}

func TestDriverCycles(t *testing.T) {
	d := NewDriver(2 * time.Second)
	d.Start()

	d.Advance(500 * time.Millisecond)
	assert.InDelta(t, 0.25, d.T(), 1e-9)

	d.Advance(time.Second)
	assert.InDelta(t, 0.75, d.T(), 1e-9)

	// Wraps at the period boundary.
	d.Advance(time.Second)
	assert.InDelta(t, 0.25, d.T(), 1e-9)
}

func TestDriverStopResets(t *testing.T) {
	d := NewDriver(time.Second)
	d.Start()
	d.Advance(300 * time.Millisecond)

	d.Stop()
	assert.False(t, d.Running())
	assert.Equal(t, 0.0, d.T())
}

func TestDriverRestartFromZero(t *testing.T) {
	d := NewDriver(time.Second)
	d.Start()
	d.Advance(700 * time.Millisecond)
	d.Start()
	assert.Equal(t, 0.0, d.T())
}

func TestSequenceTwoSegments(t *testing.T) {
	// The ring's indeterminate start-angle sequence.
	seq := NewSequence(
		Segment{From: 0, To: 450, Weight: 1},
		Segment{From: 450, To: 1080, Weight: 1},
	)

	tests := []struct {
		name     string
		t        float64
		expected float64
	}{
		{"cycle start", 0, 0},
		{"quarter", 0.25, 225},
		{"segment boundary", 0.5, 450},
		{"three quarters", 0.75, 765},
		{"cycle end", 1, 1080},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, seq.At(tt.t), 1e-9)
		})
	}
}

func TestSequenceUpDown(t *testing.T) {
	// The ring's indeterminate sweep sequence rises then falls.
	seq := NewSequence(
		Segment{From: 0, To: 180, Weight: 1},
		Segment{From: 180, To: 0, Weight: 1},
	)

	assert.InDelta(t, 0, seq.At(0), 1e-9)
	assert.InDelta(t, 90, seq.At(0.25), 1e-9)
	assert.InDelta(t, 180, seq.At(0.5), 1e-9)
	assert.InDelta(t, 90, seq.At(0.75), 1e-9)
	assert.InDelta(t, 0, seq.At(1), 1e-9)
}

func TestSequenceUnevenWeights(t *testing.T) {
	seq := NewSequence(
		Segment{From: 0, To: 10, Weight: 3},
		Segment{From: 10, To: 20, Weight: 1},
	)

	assert.InDelta(t, 5, seq.At(0.375), 1e-9, "midpoint of the 3-weight leg")
	assert.InDelta(t, 10, seq.At(0.75), 1e-9, "leg boundary")
	assert.InDelta(t, 15, seq.At(0.875), 1e-9, "midpoint of the 1-weight leg")
}

func TestSequenceEdgeCases(t *testing.T) {
	empty := NewSequence()
	assert.Equal(t, 0.0, empty.At(0.5))

	dropped := NewSequence(Segment{From: 0, To: 10, Weight: 0})
	assert.Equal(t, 0.0, dropped.At(0.5), "zero-weight segments are dropped")

	single := NewSequence(Segment{From: 2, To: 4, Weight: 1})
	assert.InDelta(t, 2, single.At(-1), 1e-9, "input clamped low")
	assert.InDelta(t, 4, single.At(2), 1e-9, "input clamped high")
}

func TestSequenceSegmentCurve(t *testing.T) {
	seq := NewSequence(Segment{From: 0, To: 100, Weight: 1, Curve: EaseOutQuad})
	assert.InDelta(t, 75, seq.At(0.5), 1e-9)
}
