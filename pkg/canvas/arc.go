package canvas

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// StrokeArc rasterizes an arc stroke onto the grid. The stroke is a radial
// band [radius - width/2, radius + width/2] swept between the arc's angles;
// round caps add a disc at each endpoint. Zero and negative sweeps draw
// nothing.
func (g *Grid) StrokeArc(a Arc) {
	if a.Sweep <= 0 || a.Radius <= 0 {
		return
	}

	half := a.Stroke.Width / 2
	if half < 0.5 {
		half = 0.5
	}

	inner := a.Radius - half
	if inner < 0 {
		inner = 0
	}
	outer := a.Radius + half

	// Step the band at sub-dot resolution so thick strokes have no holes.
	for r := inner; r <= outer; r += 0.5 {
		rr := r
		if rr < 1 {
			rr = 1
		}
		dTheta := 0.5 / rr
		for theta := a.Start; theta <= a.Start+a.Sweep; theta += dTheta {
			x, y := dotAt(a.CenterX, a.CenterY, r, theta)
			g.Set(x, y, a.Stroke.Color)
		}
		// Close the far edge exactly at the sweep boundary.
		x, y := dotAt(a.CenterX, a.CenterY, r, a.Start+a.Sweep)
		g.Set(x, y, a.Stroke.Color)
	}

	if a.Stroke.Cap == CapRound {
		g.fillDisc(a.CenterX+a.Radius*math.Cos(a.Start), a.CenterY+a.Radius*math.Sin(a.Start), half, a.Stroke.Color)
		end := a.Start + a.Sweep
		g.fillDisc(a.CenterX+a.Radius*math.Cos(end), a.CenterY+a.Radius*math.Sin(end), half, a.Stroke.Color)
	}
}

// dotAt converts polar coordinates around a center to integer dot
// coordinates.
func dotAt(cx, cy, r, theta float64) (int, int) {
	x := cx + r*math.Cos(theta)
	y := cy + r*math.Sin(theta)
	return int(math.Round(x)), int(math.Round(y))
}

// fillDisc fills a solid disc, used for round stroke caps.
func (g *Grid) fillDisc(cx, cy, r float64, color lipgloss.Color) {
	if r < 0.5 {
		r = 0.5
	}
	minX := int(math.Floor(cx - r))
	maxX := int(math.Ceil(cx + r))
	minY := int(math.Floor(cy - r))
	maxY := int(math.Ceil(cy + r))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r*r {
				g.Set(x, y, color)
			}
		}
	}
}
