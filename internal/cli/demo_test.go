package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halo-tui/halo/internal/config"
	"github.com/halo-tui/halo/internal/errors"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestDemoRejectsUnknownWidget(t *testing.T) {
	err := Demo("spiral")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrWidget))
}

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
}

func TestDemoModelStartsIndeterminate(t *testing.T) {
	for _, kind := range []string{kindRing, kindCircular, kindLinear} {
		t.Run(kind, func(t *testing.T) {
			m := newDemoModel(kind, config.Default())
			assert.True(t, m.indeterminate)
			assert.NotNil(t, m.Init(), "Init schedules the first frame")
		})
	}
}

func TestDemoModelValueKeys(t *testing.T) {
	m := newDemoModel(kindRing, config.Default())
	_ = m.Init()

	next, cmd := m.Update(keyMsg("up"))
	dm := next.(demoModel)
	assert.False(t, dm.indeterminate, "adjusting the value leaves indeterminate mode")
	assert.Equal(t, 30.0, dm.value)
	assert.Nil(t, cmd, "frames are already flowing from Init")
}

func TestDemoModelValueClamps(t *testing.T) {
	m := newDemoModel(kindLinear, config.Default())
	_ = m.Init()
	m.value = 2

	next, _ := m.Update(keyMsg("down"))
	assert.Equal(t, 0.0, next.(demoModel).value)

	m.value = 98
	next, _ = m.Update(keyMsg("up"))
	assert.Equal(t, 100.0, next.(demoModel).value)
}

func TestDemoModelIndeterminateToggle(t *testing.T) {
	m := newDemoModel(kindCircular, config.Default())
	_ = m.Init()

	next, _ := m.Update(keyMsg("up"))
	m = next.(demoModel)
	require.False(t, m.indeterminate)

	next, _ = m.Update(keyMsg("i"))
	m = next.(demoModel)
	assert.True(t, m.indeterminate)
	assert.True(t, m.circ.Indeterminate())
}

func TestDemoModelDirectionToggleRingOnly(t *testing.T) {
	m := newDemoModel(kindRing, config.Default())
	_ = m.Init()

	next, cmd := m.Update(keyMsg("b"))
	assert.True(t, next.(demoModel).backwards)
	assert.NotNil(t, cmd, "rebuilt ring schedules frames")

	lin := newDemoModel(kindLinear, config.Default())
	_ = lin.Init()
	next, _ = lin.Update(keyMsg("b"))
	assert.False(t, next.(demoModel).backwards)
}

func TestDemoModelViewContainsHelp(t *testing.T) {
	m := newDemoModel(kindRing, config.Default())
	view := m.View()
	assert.Contains(t, view, "b direction")

	lin := newDemoModel(kindLinear, config.Default())
	assert.NotContains(t, lin.View(), "b direction")
}

func TestDemoModelCentersWithinWindow(t *testing.T) {
	m := newDemoModel(kindLinear, config.Default())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	view := next.(demoModel).View()
	assert.Len(t, strings.Split(view, "\n"), 24)
}
