package widget

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/halo-tui/halo/pkg/anim"
)

// DefaultCircularStroke is the circular indicator's stroke width in dots.
const DefaultCircularStroke = 4.0

// CircularConfig configures a Circular indicator.
type CircularConfig struct {
	Value          *float64       // nil for indeterminate; else [0, 100]
	Color          lipgloss.Color // default ColorAccent
	TrackColor     lipgloss.Color // default ColorTrack
	Size           int            // bounding box in dots; min and default 36
	Label          string
	ValueFormatter func(float64) string
	Duration       time.Duration
	Curve          anim.Curve
	FPS            int
}

// Circular is the standard circular indicator: the ring painter with a
// fixed 4-dot stroke and the conventional spin direction. Use Ring directly
// when the stroke width or direction needs to vary.
type Circular struct {
	ring Ring
}

// NewCircular creates a circular indicator. Panics if the configured value
// lies outside [0, 100].
func NewCircular(cfg CircularConfig) Circular {
	return Circular{ring: NewRing(RingConfig{
		Value:          cfg.Value,
		Color:          cfg.Color,
		TrackColor:     cfg.TrackColor,
		StrokeWidth:    DefaultCircularStroke,
		Size:           cfg.Size,
		Label:          cfg.Label,
		ValueFormatter: cfg.ValueFormatter,
		Duration:       cfg.Duration,
		Curve:          cfg.Curve,
		FPS:            cfg.FPS,
	})}
}

// Start kicks off the animation for the current mode.
func (c *Circular) Start() tea.Cmd {
	return c.ring.Start()
}

// SetValue switches to determinate display, tweening toward v.
func (c *Circular) SetValue(v float64) tea.Cmd {
	return c.ring.SetValue(v)
}

// ClearValue switches to the indeterminate loop.
func (c *Circular) ClearValue() tea.Cmd {
	return c.ring.ClearValue()
}

// Stop tears the animation down.
func (c *Circular) Stop() {
	c.ring.Stop()
}

// Update advances the animation on this widget's frame messages.
func (c Circular) Update(msg tea.Msg) (Circular, tea.Cmd) {
	ring, cmd := c.ring.Update(msg)
	c.ring = ring
	return c, cmd
}

// View renders the indicator.
func (c Circular) View() string {
	return c.ring.View()
}

// Indeterminate reports whether the indicator is looping.
func (c Circular) Indeterminate() bool {
	return c.ring.Indeterminate()
}

// Value returns the current interpolated value and whether it is
// determinate.
func (c Circular) Value() (float64, bool) {
	return c.ring.Value()
}

// SemanticLabel returns the accessibility label, unchanged.
func (c Circular) SemanticLabel() string {
	return c.ring.SemanticLabel()
}

// SemanticValue returns the formatted value string, or "" while
// indeterminate.
func (c Circular) SemanticValue() string {
	return c.ring.SemanticValue()
}
