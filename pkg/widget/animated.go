package widget

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/halo-tui/halo/pkg/anim"
)

// RenderFunc receives the current animated value each frame. ok is false in
// indeterminate mode, in which case value is meaningless. Callers must
// render from the value they are handed, not from the raw target they set;
// re-applying the external target bypasses the tween and no animation is
// observed.
type RenderFunc func(value float64, ok bool) string

// AnimatedConfig configures the value-tweening wrapper.
type AnimatedConfig struct {
	Duration time.Duration // tween length per target change; default 1s
	Curve    anim.Curve    // easing; default anim.FastOutSlowIn
	FPS      int           // frame rate; default DefaultFPS
}

// DefaultTweenDuration is the tween length used when a config leaves
// Duration zero.
const DefaultTweenDuration = time.Second

// Animated tweens an optional target value and feeds the interpolated value
// to a render callback. A nil target (ClearValue) passes straight through
// as indeterminate with no interpolation state; setting a value animates
// from the previously rendered value (0 if none) to the target.
type Animated struct {
	id       int
	tag      int
	fps      int
	tween    *anim.Tween
	render   RenderFunc
	hasValue bool
	running  bool
	lastTick time.Time
}

// NewAnimated creates a wrapper in the indeterminate state.
func NewAnimated(render RenderFunc, cfg AnimatedConfig) Animated {
	duration := cfg.Duration
	if duration == 0 {
		duration = DefaultTweenDuration
	}
	fps := cfg.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	return Animated{
		id:     nextID(),
		fps:    fps,
		tween:  anim.NewTween(0, duration, cfg.Curve),
		render: render,
	}
}

// SetValue points the wrapper at a new target value and returns the command
// that keeps frames flowing. Setting the current target again is a no-op.
func (a *Animated) SetValue(v float64) tea.Cmd {
	wasAnimating := a.running
	a.hasValue = true
	a.tween.Retarget(v)

	if a.tween.Done() || wasAnimating {
		return nil
	}
	a.running = true
	a.tag++
	a.lastTick = time.Time{}
	return frame(a.id, a.tag, a.fps)
}

// ClearValue switches to indeterminate display. Any in-flight interpolation
// stops; the tween holds its last rendered value so a later SetValue
// animates from there.
func (a *Animated) ClearValue() {
	a.hasValue = false
	a.stop()
}

// Stop tears down frame scheduling. In-flight frame messages become stale
// and are dropped on arrival.
func (a *Animated) Stop() {
	a.stop()
}

func (a *Animated) stop() {
	if !a.running {
		return
	}
	a.running = false
	a.tag++
}

// Update advances the animation on matching frame messages.
func (a Animated) Update(msg tea.Msg) (Animated, tea.Cmd) {
	fm, ok := msg.(FrameMsg)
	if !ok || fm.id != a.id || fm.tag != a.tag || !a.running {
		return a, nil
	}

	a.tween.Advance(frameDelta(a.lastTick, fm.at, a.fps))
	a.lastTick = fm.at

	if a.tween.Done() {
		a.running = false
		a.tag++
		return a, nil
	}
	return a, frame(a.id, a.tag, a.fps)
}

// View renders via the callback: interpolated value when determinate,
// ok=false when indeterminate.
func (a Animated) View() string {
	if a.render == nil {
		return ""
	}
	if !a.hasValue {
		return a.render(0, false)
	}
	return a.render(a.tween.Value(), true)
}

// Value returns the current interpolated value and whether the wrapper is
// determinate.
func (a Animated) Value() (float64, bool) {
	if !a.hasValue {
		return 0, false
	}
	return a.tween.Value(), true
}

// Animating reports whether an interpolation is in flight.
func (a Animated) Animating() bool {
	return a.running
}
