package widget

import "github.com/charmbracelet/lipgloss"

// Default colors, as ANSI codes for terminal compatibility.
const (
	ColorAccent  lipgloss.Color = "4" // Blue: foreground progress
	ColorTrack   lipgloss.Color = "8" // Gray (bright black): background track
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorMuted   lipgloss.Color = "8" // Gray: labels, secondary text
)

// Status symbols for labels rendered next to indicators.
const (
	SymbolComplete = "●"
	SymbolFail     = "✗"
	SymbolWorking  = "◐"
)
