package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/halo-tui/halo/internal/config"
	"github.com/halo-tui/halo/internal/errors"
	"github.com/halo-tui/halo/internal/logger"
	"github.com/halo-tui/halo/pkg/widget"
)

// valueStep is how far up/down move the demo value, in percent.
const valueStep = 5.0

var (
	demoTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(widget.ColorAccent)
	demoHelpStyle  = lipgloss.NewStyle().Foreground(widget.ColorMuted)
)

// demoModel hosts one widget kind full screen and maps a few keys onto the
// widget's control surface.
type demoModel struct {
	kind string
	cfg  config.Config
	log  logger.Logger

	ring   widget.Ring
	circ   widget.Circular
	linear widget.Linear

	value         float64
	indeterminate bool
	backwards     bool

	width  int
	height int

	// initCmd carries the first frame command. Starting happens at
	// construction because Init runs on a copy Bubble Tea discards.
	initCmd tea.Cmd
}

func newDemoModel(kind string, cfg config.Config) demoModel {
	m := demoModel{
		kind:          kind,
		cfg:           cfg,
		log:           logger.Default(),
		value:         25,
		indeterminate: true,
	}
	m.buildWidget()
	m.initCmd = m.startWidget()
	return m
}

// buildWidget constructs the hosted widget from the model's current state.
// The ring rebuilds on direction changes, so this runs more than once.
func (m *demoModel) buildWidget() {
	var value *float64
	if !m.indeterminate {
		v := m.value
		value = &v
	}

	switch m.kind {
	case kindRing:
		m.ring = widget.NewRing(widget.RingConfig{
			Value:         value,
			Color:         lipgloss.Color(m.cfg.Color),
			TrackColor:    lipgloss.Color(m.cfg.TrackColor),
			Backwards:     m.backwards,
			Size:          m.cfg.RingSize,
			Label:         "demo",
			Duration:      m.cfg.Duration,
			CycleDuration: m.cfg.CycleDuration,
			FPS:           m.cfg.FPS,
		})
	case kindCircular:
		m.circ = widget.NewCircular(widget.CircularConfig{
			Value:      value,
			Color:      lipgloss.Color(m.cfg.Color),
			TrackColor: lipgloss.Color(m.cfg.TrackColor),
			Size:       m.cfg.RingSize,
			Label:      "demo",
			Duration:   m.cfg.Duration,
			FPS:        m.cfg.FPS,
		})
	case kindLinear:
		m.linear = widget.NewLinear(widget.LinearConfig{
			Value:         value,
			Width:         m.cfg.BarWidth,
			TrackColor:    lipgloss.Color(m.cfg.TrackColor),
			ShowPercent:   true,
			Label:         "demo",
			Duration:      m.cfg.Duration,
			CycleDuration: m.cfg.CycleDuration,
			FPS:           m.cfg.FPS,
		})
	}
}

func (m demoModel) Init() tea.Cmd {
	return m.initCmd
}

func (m *demoModel) startWidget() tea.Cmd {
	switch m.kind {
	case kindRing:
		return m.ring.Start()
	case kindCircular:
		return m.circ.Start()
	default:
		return m.linear.Start()
	}
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.stopWidget()
			return m, tea.Quit

		case "up":
			return m.setValue(m.value + valueStep)

		case "down":
			return m.setValue(m.value - valueStep)

		case "i":
			if m.indeterminate {
				return m.setValue(m.value)
			}
			m.indeterminate = true
			var cmd tea.Cmd
			switch m.kind {
			case kindRing:
				cmd = m.ring.ClearValue()
			case kindCircular:
				cmd = m.circ.ClearValue()
			default:
				cmd = m.linear.ClearValue()
			}
			return m, cmd

		case "b":
			if m.kind != kindRing {
				return m, nil
			}
			// Direction is fixed at construction, so flip it by rebuilding.
			m.ring.Stop()
			m.backwards = !m.backwards
			m.log.Debug("ring direction: backwards=%v", m.backwards)
			m.buildWidget()
			return m, m.startWidget()
		}

	default:
		var cmd tea.Cmd
		switch m.kind {
		case kindRing:
			m.ring, cmd = m.ring.Update(msg)
		case kindCircular:
			m.circ, cmd = m.circ.Update(msg)
		default:
			m.linear, cmd = m.linear.Update(msg)
		}
		return m, cmd
	}

	return m, nil
}

// setValue clamps and applies a determinate value to the hosted widget.
func (m demoModel) setValue(v float64) (tea.Model, tea.Cmd) {
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	m.value = v
	m.indeterminate = false

	var cmd tea.Cmd
	switch m.kind {
	case kindRing:
		cmd = m.ring.SetValue(v)
	case kindCircular:
		cmd = m.circ.SetValue(v)
	default:
		cmd = m.linear.SetValue(v)
	}
	return m, cmd
}

func (m *demoModel) stopWidget() {
	switch m.kind {
	case kindRing:
		m.ring.Stop()
	case kindCircular:
		m.circ.Stop()
	default:
		m.linear.Stop()
	}
}

func (m demoModel) widgetView() string {
	switch m.kind {
	case kindRing:
		return m.ring.View()
	case kindCircular:
		return m.circ.View()
	default:
		return m.linear.View()
	}
}

func (m demoModel) View() string {
	help := "up/down value · i indeterminate · q quit"
	if m.kind == kindRing {
		help = "up/down value · i indeterminate · b direction · q quit"
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		demoTitleStyle.Render("halo · "+m.kind),
		"",
		m.widgetView(),
		"",
		demoHelpStyle.Render(help),
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	return body
}

// runDemo runs the full-screen preview program until the user quits.
func runDemo(kind string, cfg config.Config) error {
	m := newDemoModel(kind, cfg)
	// Seed the size; resize events keep it current afterwards.
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		m.width, m.height = w, h
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerm,
			"Demo terminated unexpectedly",
			"Check the terminal supports the alternate screen")
	}
	return nil
}
