package widget

import (
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/halo-tui/halo/pkg/anim"
	"github.com/halo-tui/halo/pkg/canvas"
)

// Ring geometry constants.
const (
	// SweepEpsilon keeps the background track just short of a full turn;
	// a true full-turn arc is degenerate in some 2D APIs and draws nothing.
	SweepEpsilon = 0.001

	// FullSweep is the near-complete turn a 100% ring covers, in radians.
	FullSweep = 2*math.Pi - SweepEpsilon

	// MinRingSize is the smallest bounding box a ring renders in, in dots.
	MinRingSize = 36

	// DefaultRingStroke is the default stroke width in dots.
	DefaultRingStroke = 4.5

	// DefaultCycleDuration is one full indeterminate loop.
	DefaultCycleDuration = 2 * time.Second
)

// Indeterminate loop shape: the start angle spins through two legs while
// the sweep grows then shrinks, producing the rotating-arc illusion.
// Angles in degrees; each leg takes half the cycle.
var (
	ringStartSeq = anim.NewSequence(
		anim.Segment{From: 0, To: 450, Weight: 1},
		anim.Segment{From: 450, To: 1080, Weight: 1},
	)
	ringSweepSeq = anim.NewSequence(
		anim.Segment{From: 0, To: 180, Weight: 1},
		anim.Segment{From: 180, To: 0, Weight: 1},
	)
)

// DeterminateSweep maps a progress value in [0, 100] to the foreground arc
// sweep in radians. Out-of-range values (tween overshoot) are clamped, not
// rejected.
func DeterminateSweep(value float64) float64 {
	frac := value / 100
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return frac * FullSweep
}

// IndeterminateAngles computes the rotating arc's start and sweep angles in
// degrees at cycle position t in [0, 1). Backwards flips the spin
// direction; the start angle is then shifted by -90 so the cycle anchors at
// the top of the circle.
func IndeterminateAngles(t float64, backwards bool) (startDeg, sweepDeg float64) {
	startDeg = ringStartSeq.At(t)
	if backwards {
		startDeg = -startDeg
	}
	startDeg -= 90
	return startDeg, ringSweepSeq.At(t)
}

// validateValue enforces the construction precondition on determinate
// values.
func validateValue(v float64) {
	if v < 0 || v > 100 {
		panic(fmt.Sprintf("halo: progress value %v outside [0, 100]", v))
	}
}

// paintRing issues the frame's arc operations: a butt-capped background
// track over the near-full turn, then a round-capped foreground arc. A nil
// value paints the indeterminate frame for cycle position t; a non-nil
// value paints the determinate sweep and ignores t.
func paintRing(surface canvas.Surface, size float64, value *float64, color, track lipgloss.Color, strokeWidth float64, backwards bool, t float64) {
	center := size / 2
	radius := (size-strokeWidth)/2 - 1
	if radius < 1 {
		radius = 1
	}
	const topStart = -math.Pi / 2

	surface.StrokeArc(canvas.Arc{
		CenterX: center,
		CenterY: center,
		Radius:  radius,
		Start:   topStart,
		Sweep:   FullSweep,
		Stroke:  canvas.Stroke{Width: strokeWidth, Cap: canvas.CapButt, Color: track},
	})

	var start, sweep float64
	if value != nil {
		start = topStart
		sweep = DeterminateSweep(*value)
	} else {
		startDeg, sweepDeg := IndeterminateAngles(t, backwards)
		start = startDeg * math.Pi / 180
		sweep = sweepDeg * math.Pi / 180
	}

	surface.StrokeArc(canvas.Arc{
		CenterX: center,
		CenterY: center,
		Radius:  radius,
		Start:   start,
		Sweep:   sweep,
		Stroke:  canvas.Stroke{Width: strokeWidth, Cap: canvas.CapRound, Color: color},
	})
}

// RingConfig configures a Ring. Zero values take the documented defaults.
type RingConfig struct {
	Value          *float64       // nil for indeterminate; else [0, 100]
	Color          lipgloss.Color // progress arc; default ColorAccent
	TrackColor     lipgloss.Color // background track; default ColorTrack
	StrokeWidth    float64        // dots; default 4.5
	Backwards      bool           // spin the indeterminate arc the other way
	Size           int            // bounding box in dots; min and default 36
	Label          string         // accessibility label, passed through
	ValueFormatter func(float64) string
	Duration       time.Duration // determinate tween; default 1s
	CycleDuration  time.Duration // indeterminate loop; default 2s
	Curve          anim.Curve    // default anim.FastOutSlowIn
	FPS            int
}

// Ring is the custom ring indicator: a background track plus a foreground
// arc that either sweeps to a tweened determinate value or loops a
// two-phase rotating animation while indeterminate.
type Ring struct {
	id  int
	tag int
	fps int

	color     lipgloss.Color
	track     lipgloss.Color
	stroke    float64
	backwards bool
	size      int
	label     string
	format    func(float64) string

	hasValue bool
	tween    *anim.Tween
	driver   *anim.Driver

	running  bool
	lastTick time.Time

	cache *ringCache
}

// ringCache holds the last painted frame. It sits behind a pointer so the
// cache survives the value-receiver copies Bubble Tea models go through.
type ringCache struct {
	frame  string
	value  float64
	valid  bool
	paints int
}

// NewRing creates a ring from cfg. It panics if the configured value lies
// outside [0, 100]; an out-of-range value is a caller bug, not input to
// recover from.
func NewRing(cfg RingConfig) Ring {
	if cfg.Value != nil {
		validateValue(*cfg.Value)
	}
	if cfg.Color == "" {
		cfg.Color = ColorAccent
	}
	if cfg.TrackColor == "" {
		cfg.TrackColor = ColorTrack
	}
	if cfg.StrokeWidth <= 0 {
		cfg.StrokeWidth = DefaultRingStroke
	}
	if cfg.Size < MinRingSize {
		cfg.Size = MinRingSize
	}
	if cfg.Duration == 0 {
		cfg.Duration = DefaultTweenDuration
	}
	if cfg.CycleDuration == 0 {
		cfg.CycleDuration = DefaultCycleDuration
	}
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultFPS
	}
	if cfg.ValueFormatter == nil {
		cfg.ValueFormatter = func(v float64) string {
			return fmt.Sprintf("%.0f%%", v)
		}
	}

	r := Ring{
		id:        nextID(),
		fps:       cfg.FPS,
		color:     cfg.Color,
		track:     cfg.TrackColor,
		stroke:    cfg.StrokeWidth,
		backwards: cfg.Backwards,
		size:      cfg.Size,
		label:     cfg.Label,
		format:    cfg.ValueFormatter,
		driver:    anim.NewDriver(cfg.CycleDuration),
		cache:     &ringCache{},
	}

	if cfg.Value != nil {
		r.hasValue = true
		r.tween = anim.NewTween(*cfg.Value, cfg.Duration, cfg.Curve)
	} else {
		r.tween = anim.NewTween(0, cfg.Duration, cfg.Curve)
	}
	return r
}

// Start kicks off whatever animation the current mode needs: the repeating
// loop when indeterminate, nothing when determinate and at rest.
func (r *Ring) Start() tea.Cmd {
	if !r.hasValue {
		r.driver.Start()
		return r.startFrames()
	}
	if !r.tween.Done() {
		return r.startFrames()
	}
	return nil
}

// SetValue switches to determinate display and tweens toward v from
// wherever the ring currently is. Panics if v lies outside [0, 100].
func (r *Ring) SetValue(v float64) tea.Cmd {
	validateValue(v)

	if !r.hasValue {
		// Leaving the loop: stop the driver, enter the static state.
		r.driver.Stop()
		r.hasValue = true
	}
	r.cache.valid = false
	r.tween.Retarget(v)

	if r.tween.Done() {
		r.stopFrames()
		return nil
	}
	if r.running {
		return nil
	}
	return r.startFrames()
}

// ClearValue switches to the indeterminate loop.
func (r *Ring) ClearValue() tea.Cmd {
	if !r.hasValue && r.driver.Running() {
		return nil
	}
	r.hasValue = false
	r.cache.valid = false
	r.driver.Start()
	if r.running {
		return nil
	}
	return r.startFrames()
}

// Stop tears the animation down. Pending frame messages become stale and
// are dropped; no callbacks survive teardown.
func (r *Ring) Stop() {
	r.driver.Stop()
	r.stopFrames()
}

func (r *Ring) startFrames() tea.Cmd {
	r.running = true
	r.tag++
	r.lastTick = time.Time{}
	return frame(r.id, r.tag, r.fps)
}

func (r *Ring) stopFrames() {
	if !r.running {
		return
	}
	r.running = false
	r.tag++
}

// Update advances the animation on this ring's frame messages.
func (r Ring) Update(msg tea.Msg) (Ring, tea.Cmd) {
	fm, ok := msg.(FrameMsg)
	if !ok || fm.id != r.id || fm.tag != r.tag || !r.running {
		return r, nil
	}

	dt := frameDelta(r.lastTick, fm.at, r.fps)
	r.lastTick = fm.at

	if !r.hasValue {
		r.driver.Advance(dt)
		return r, frame(r.id, r.tag, r.fps)
	}

	r.tween.Advance(dt)
	if r.tween.Done() {
		r.running = false
		r.tag++
		return r, nil
	}
	return r, frame(r.id, r.tag, r.fps)
}

// View renders the ring. Indeterminate frames repaint every call;
// determinate frames are cached and reused until the value changes.
func (r Ring) View() string {
	if r.hasValue {
		v := r.tween.Value()
		if r.cache.valid && r.cache.value == v {
			return r.cache.frame
		}
	}

	grid := canvas.NewGrid(
		(r.size+canvas.DotsPerCellX-1)/canvas.DotsPerCellX,
		(r.size+canvas.DotsPerCellY-1)/canvas.DotsPerCellY,
	)

	var value *float64
	if r.hasValue {
		v := r.tween.Value()
		value = &v
	}
	paintRing(grid, float64(r.size), value, r.color, r.track, r.stroke, r.backwards, r.driver.T())
	r.cache.paints++

	out := grid.Render()
	if r.label != "" {
		labelStyle := lipgloss.NewStyle().Foreground(ColorMuted)
		line := r.label
		if s := r.SemanticValue(); s != "" {
			line += " " + s
		}
		out = lipgloss.JoinVertical(lipgloss.Center, out, labelStyle.Render(line))
	}

	if r.hasValue {
		r.cache.frame = out
		r.cache.value = r.tween.Value()
		r.cache.valid = true
	}
	return out
}

// Indeterminate reports whether the ring is in its looping state.
func (r Ring) Indeterminate() bool {
	return !r.hasValue
}

// Value returns the current interpolated value and whether the ring is
// determinate.
func (r Ring) Value() (float64, bool) {
	if !r.hasValue {
		return 0, false
	}
	return r.tween.Value(), true
}

// SemanticLabel returns the accessibility label, unchanged.
func (r Ring) SemanticLabel() string {
	return r.label
}

// SemanticValue returns the formatted value string for the semantics layer,
// or "" while indeterminate.
func (r Ring) SemanticValue() string {
	if !r.hasValue {
		return ""
	}
	return r.format(r.tween.Value())
}
