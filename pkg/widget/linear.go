package widget

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/halo-tui/halo/pkg/anim"
)

// Linear bar characters.
const (
	BarFilled = '█'
	BarEmpty  = '░'
)

// DefaultLinearWidth is the bar width in cells.
const DefaultLinearWidth = 40

// LinearConfig configures a Linear indicator.
type LinearConfig struct {
	Value          *float64       // nil for indeterminate; else [0, 100]
	Width          int            // bar width in cells; default 40
	SolidColor     lipgloss.Color // solid fill; zero value selects the default gradient
	TrackColor     lipgloss.Color // unfilled portion; default ColorTrack
	Spring         bool           // spring smoothing instead of a fixed-duration tween
	ShowPercent    bool           // append the percentage after the bar
	Label          string
	ValueFormatter func(float64) string
	Duration       time.Duration // tween length; default 1s
	CycleDuration  time.Duration // indeterminate band loop; default 2s
	Curve          anim.Curve
	FPS            int
}

// Linear is the horizontal indicator. Determinate fill renders through the
// bubbles progress primitive; the indeterminate mode slides a block band
// across the track.
type Linear struct {
	id  int
	tag int
	fps int

	bar         progress.Model
	width       int
	track       lipgloss.Color
	bandColor   lipgloss.Color
	showPercent bool
	label       string
	format      func(float64) string

	useSpring bool
	spring    *anim.Spring
	tween     *anim.Tween
	driver    *anim.Driver

	hasValue bool
	running  bool
	lastTick time.Time
}

// NewLinear creates a linear indicator. Panics if the configured value lies
// outside [0, 100].
func NewLinear(cfg LinearConfig) Linear {
	if cfg.Value != nil {
		validateValue(*cfg.Value)
	}
	if cfg.Width <= 0 {
		cfg.Width = DefaultLinearWidth
	}
	if cfg.TrackColor == "" {
		cfg.TrackColor = ColorTrack
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

	opts := []progress.Option{
		progress.WithWidth(cfg.Width),
		progress.WithoutPercentage(),
	}
	bandColor := ColorAccent
	if cfg.SolidColor != "" {
		opts = append(opts, progress.WithSolidFill(string(cfg.SolidColor)))
		bandColor = cfg.SolidColor
	} else {
		opts = append(opts, progress.WithDefaultGradient())
	}

	bar := progress.New(opts...)
	bar.EmptyColor = string(cfg.TrackColor)

	l := Linear{
		id:          nextID(),
		fps:         cfg.FPS,
		bar:         bar,
		width:       cfg.Width,
		track:       cfg.TrackColor,
		bandColor:   bandColor,
		showPercent: cfg.ShowPercent,
		label:       cfg.Label,
		format:      cfg.ValueFormatter,
		useSpring:   cfg.Spring,
		driver:      anim.NewDriver(cfg.CycleDuration),
		tween:       anim.NewTween(0, cfg.Duration, cfg.Curve),
		spring:      anim.NewSpring(cfg.FPS, anim.SpringFrequency, anim.SpringDamping),
	}

	if cfg.Value != nil {
		l.hasValue = true
		l.tween.Jump(*cfg.Value)
		l.spring.Jump(*cfg.Value)
	}
	return l
}

// Start kicks off the animation for the current mode.
func (l *Linear) Start() tea.Cmd {
	if !l.hasValue {
		l.driver.Start()
		return l.startFrames()
	}
	if l.animating() {
		return l.startFrames()
	}
	return nil
}

// SetValue switches to determinate display and animates toward v. Panics if
// v lies outside [0, 100].
func (l *Linear) SetValue(v float64) tea.Cmd {
	validateValue(v)

	if !l.hasValue {
		l.driver.Stop()
		l.hasValue = true
	}
	l.tween.Retarget(v)
	l.spring.Retarget(v)

	if !l.animating() {
		l.stopFrames()
		return nil
	}
	if l.running {
		return nil
	}
	return l.startFrames()
}

// ClearValue switches to the indeterminate sliding band.
func (l *Linear) ClearValue() tea.Cmd {
	if !l.hasValue && l.driver.Running() {
		return nil
	}
	l.hasValue = false
	l.driver.Start()
	if l.running {
		return nil
	}
	return l.startFrames()
}

// Stop tears the animation down.
func (l *Linear) Stop() {
	l.driver.Stop()
	l.stopFrames()
}

func (l *Linear) animating() bool {
	if l.useSpring {
		return !l.spring.Settled()
	}
	return !l.tween.Done()
}

func (l *Linear) startFrames() tea.Cmd {
	l.running = true
	l.tag++
	l.lastTick = time.Time{}
	return frame(l.id, l.tag, l.fps)
}

func (l *Linear) stopFrames() {
	if !l.running {
		return
	}
	l.running = false
	l.tag++
}

// Update advances the animation on this widget's frame messages.
func (l Linear) Update(msg tea.Msg) (Linear, tea.Cmd) {
	fm, ok := msg.(FrameMsg)
	if !ok || fm.id != l.id || fm.tag != l.tag || !l.running {
		return l, nil
	}

	dt := frameDelta(l.lastTick, fm.at, l.fps)
	l.lastTick = fm.at

	if !l.hasValue {
		l.driver.Advance(dt)
		return l, frame(l.id, l.tag, l.fps)
	}

	if l.useSpring {
		l.spring.Step()
	} else {
		l.tween.Advance(dt)
	}
	if !l.animating() {
		l.running = false
		l.tag++
		return l, nil
	}
	return l, frame(l.id, l.tag, l.fps)
}

// View renders the bar, with the optional label above it.
func (l Linear) View() string {
	var bar string
	if l.hasValue {
		bar = l.bar.ViewAs(l.currentValue() / 100)
		if l.showPercent {
			pctStyle := lipgloss.NewStyle().Foreground(ColorMuted)
			bar += pctStyle.Render(fmt.Sprintf(" %3.0f%%", l.currentValue()))
		}
	} else {
		bar = l.viewBand()
	}

	if l.label == "" {
		return bar
	}
	labelStyle := lipgloss.NewStyle().Foreground(ColorMuted)
	return labelStyle.Render(l.label) + "\n" + bar
}

// viewBand renders the indeterminate frame: a filled band one quarter of
// the track wide, sliding from fully off the left edge to fully off the
// right over one cycle.
func (l Linear) viewBand() string {
	band := l.width / 4
	if band < 1 {
		band = 1
	}

	// The band travels width + 2*band cells so it enters and exits cleanly.
	travel := l.width + 2*band
	head := int(l.driver.T()*float64(travel)) - band

	filled := lipgloss.NewStyle().Foreground(l.bandColor)
	empty := lipgloss.NewStyle().Foreground(l.track)

	var b strings.Builder
	for i := 0; i < l.width; i++ {
		if i >= head && i < head+band {
			b.WriteString(filled.Render(string(BarFilled)))
		} else {
			b.WriteString(empty.Render(string(BarEmpty)))
		}
	}
	return b.String()
}

func (l Linear) currentValue() float64 {
	if l.useSpring {
		v := l.spring.Value()
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		return v
	}
	return l.tween.Value()
}

// Indeterminate reports whether the bar is sliding its band.
func (l Linear) Indeterminate() bool {
	return !l.hasValue
}

// Value returns the current interpolated value and whether it is
// determinate.
func (l Linear) Value() (float64, bool) {
	if !l.hasValue {
		return 0, false
	}
	return l.currentValue(), true
}

// SemanticLabel returns the accessibility label, unchanged.
func (l Linear) SemanticLabel() string {
	return l.label
}

// SemanticValue returns the formatted value string, or "" while
// indeterminate.
func (l Linear) SemanticValue() string {
	if !l.hasValue {
		return ""
	}
	return l.format(l.currentValue())
}
