// Package canvas provides the 2D drawing surface halo widgets paint on: a
// braille dot grid addressed in "dot" units (2 per cell horizontally, 4
// vertically) with per-cell color, rendered to lipgloss-styled lines.
//
// Coordinates follow screen convention: x grows right, y grows down, so a
// positive sweep angle runs clockwise and -90 degrees points at the top of
// a circle.
package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dots per terminal cell in each axis.
const (
	DotsPerCellX = 2
	DotsPerCellY = 4
)

// LineCap selects how arc stroke endpoints are finished.
type LineCap int

const (
	// CapButt ends the stroke flush at the endpoint.
	CapButt LineCap = iota
	// CapRound caps the stroke with a half-disc at each endpoint.
	CapRound
)

// Stroke describes how an arc is drawn: band width in dots, endpoint cap,
// and color.
type Stroke struct {
	Width float64
	Cap   LineCap
	Color lipgloss.Color
}

// Arc is a single arc-stroke operation. Center and Radius are in dot units;
// angles are radians, measured from the positive x axis, clockwise.
type Arc struct {
	CenterX float64
	CenterY float64
	Radius  float64
	Start   float64
	Sweep   float64
	Stroke  Stroke
}

// Surface is the drawing interface the painters target. The grid below is
// the production implementation; tests substitute a Recorder.
type Surface interface {
	StrokeArc(a Arc)
}

// Grid is a braille-dot canvas of w by h terminal cells. Each cell holds up
// to 8 dots and one foreground color; the last stroke to touch a cell wins
// the color.
type Grid struct {
	width  int // cells
	height int // cells
	masks  []uint8
	colors []lipgloss.Color
}

// NewGrid creates an empty grid of the given size in cells.
func NewGrid(widthCells, heightCells int) *Grid {
	if widthCells < 1 {
		widthCells = 1
	}
	if heightCells < 1 {
		heightCells = 1
	}
	return &Grid{
		width:  widthCells,
		height: heightCells,
		masks:  make([]uint8, widthCells*heightCells),
		colors: make([]lipgloss.Color, widthCells*heightCells),
	}
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// DotWidth returns the drawable width in dots.
func (g *Grid) DotWidth() int { return g.width * DotsPerCellX }

// DotHeight returns the drawable height in dots.
func (g *Grid) DotHeight() int { return g.height * DotsPerCellY }

// Clear erases all dots and colors.
func (g *Grid) Clear() {
	for i := range g.masks {
		g.masks[i] = 0
		g.colors[i] = ""
	}
}

// brailleBits maps (dot x, dot y) within a cell to its bit in the braille
// block (U+2800 offsets).
var brailleBits = [DotsPerCellX][DotsPerCellY]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// Set turns on the dot at (x, y) in dot coordinates with the given color.
// Out-of-bounds dots are ignored.
func (g *Grid) Set(x, y int, color lipgloss.Color) {
	if x < 0 || y < 0 || x >= g.DotWidth() || y >= g.DotHeight() {
		return
	}
	cell := (y/DotsPerCellY)*g.width + x/DotsPerCellX
	g.masks[cell] |= brailleBits[x%DotsPerCellX][y%DotsPerCellY]
	g.colors[cell] = color
}

// Render returns the grid as newline-joined styled lines. Empty cells render
// as spaces so the output is rectangular.
func (g *Grid) Render() string {
	var lines []string
	for row := 0; row < g.height; row++ {
		var b strings.Builder
		for col := 0; col < g.width; col++ {
			cell := row*g.width + col
			mask := g.masks[cell]
			if mask == 0 {
				b.WriteRune(' ')
				continue
			}
			ch := string(rune(0x2800 + int(mask)))
			if c := g.colors[cell]; c != "" {
				ch = lipgloss.NewStyle().Foreground(c).Render(ch)
			}
			b.WriteString(ch)
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}
