// Package canvas exposes a continuous-coordinate drawing surface backed by a
// braille dot grid. A user-specified domain/range rectangle is mapped
// linearly onto the grid and line segments are rasterized onto it.
package canvas

import (
	"errors"
	"fmt"
	"math"

	"github.com/brianbland/termplot/pkg/braille"
)

// DefaultMarkerRadius is the dot radius drawn around isolated point markers.
// Zero means a point sets exactly one dot.
const DefaultMarkerRadius = 0

// ErrInterval is returned for a degenerate or inverted domain or range.
var ErrInterval = errors.New("canvas: invalid interval")

// Canvas owns one dot grid plus the domain/range pair defining the mapping
// from data coordinates onto it. Data y grows upward while grid rows grow
// downward, so the y mapping is inverted.
type Canvas struct {
	grid         *braille.Grid
	xmin, xmax   float64
	ymin, ymax   float64
	xs, ys       Scale
	markerRadius int
}

// New creates a canvas of width x height terminal cells covering the data
// rectangle [xmin, xmax] x [ymin, ymax]. The backing grid holds
// width*2 x height*4 dots.
func New(width, height int, xmin, xmax, ymin, ymax float64) (*Canvas, error) {
	if xmin >= xmax {
		return nil, fmt.Errorf("%w: domain [%g, %g]", ErrInterval, xmin, xmax)
	}
	if ymin >= ymax {
		return nil, fmt.Errorf("%w: range [%g, %g]", ErrInterval, ymin, ymax)
	}
	grid, err := braille.New(width*braille.CellWidth, height*braille.CellHeight)
	if err != nil {
		return nil, err
	}
	return &Canvas{
		grid:         grid,
		xmin:         xmin,
		xmax:         xmax,
		ymin:         ymin,
		ymax:         ymax,
		xs:           NewScale(xmin, xmax, 0, float64(grid.Width()-1)),
		ys:           NewScale(ymin, ymax, 0, float64(grid.Height()-1)),
		markerRadius: DefaultMarkerRadius,
	}, nil
}

// Grid returns the backing dot grid.
func (c *Canvas) Grid() *braille.Grid { return c.grid }

// DotWidth returns the drawing width in dots.
func (c *Canvas) DotWidth() int { return c.grid.Width() }

// DotHeight returns the drawing height in dots.
func (c *Canvas) DotHeight() int { return c.grid.Height() }

// SetMarkerRadius sets the dot radius drawn around point markers.
func (c *Canvas) SetMarkerRadius(r int) {
	if r < 0 {
		r = 0
	}
	c.markerRadius = r
}

// MapPoint maps data coordinates to dot coordinates. xmin maps to dot
// column 0 and xmax to the last column, exactly; y is inverted. The result
// may lie outside the grid when the data point is outside the domain/range:
// drawing such dots is a silent no-op rather than an error, since clipping
// is a legitimate use case. Coordinates far outside the window saturate one
// dot past the grid edge rather than overflowing the int conversion.
func (c *Canvas) MapPoint(x, y float64) (int, int) {
	px, py := c.mapFloat(x, y)
	return boundDot(px, c.grid.Width()), boundDot(py, c.grid.Height())
}

// mapFloat maps data coordinates to unrounded, unclamped dot coordinates.
func (c *Canvas) mapFloat(x, y float64) (float64, float64) {
	px := c.xs.Project(x)
	py := float64(c.grid.Height()-1) - c.ys.Project(y)
	return px, py
}

// boundDot rounds a dot coordinate, saturating out-of-window values to one
// dot beyond the grid edge.
func boundDot(v float64, size int) int {
	if !(v > -1) { // also catches NaN
		return -1
	}
	if v > float64(size) {
		return size
	}
	return int(math.Round(v))
}

// DrawLine rasterizes the segment from (x0, y0) to (x1, y1) in data
// coordinates, setting every dot on the discrete path between the mapped
// endpoints inclusive. The segment is clipped against the grid box first,
// so the rasterization cost is bounded by the grid size no matter how far
// outside the window the data lies. A nil color sets plain dots.
func (c *Canvas) DrawLine(x0, y0, x1, y1 float64, color *braille.Color) {
	px0, py0 := c.mapFloat(x0, y0)
	px1, py1 := c.mapFloat(x1, y1)
	for _, v := range [...]float64{px0, py0, px1, py1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return
		}
	}
	w := float64(c.grid.Width() - 1)
	h := float64(c.grid.Height() - 1)
	cx0, cy0, cx1, cy1, ok := clipSegment(px0, py0, px1, py1, w, h)
	if !ok {
		return
	}
	c.drawDotLine(
		int(math.Round(cx0)), int(math.Round(cy0)),
		int(math.Round(cx1)), int(math.Round(cy1)),
		color,
	)
}

// clipSegment clips the segment (x0, y0)-(x1, y1) against the box
// [0, xmax] x [0, ymax] using the Liang-Barsky parametric test. ok is false
// when the segment lies entirely outside the box.
func clipSegment(x0, y0, x1, y1, xmax, ymax float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	t0, t1 := 0.0, 1.0
	dx, dy := x1-x0, y1-y0

	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return false
			}
			if r > t0 {
				t0 = r
			}
			return true
		}
		if r < t0 {
			return false
		}
		if r < t1 {
			t1 = r
		}
		return true
	}

	if !clip(-dx, x0) || !clip(dx, xmax-x0) || !clip(-dy, y0) || !clip(dy, ymax-y0) {
		return 0, 0, 0, 0, false
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

// DrawPoint rasterizes a single data point, plus a fixed-radius diamond
// cluster of dots around it when a marker radius is configured.
func (c *Canvas) DrawPoint(x, y float64, color *braille.Color) {
	dx, dy := c.MapPoint(x, y)
	c.setDot(dx, dy, color)
	for ox := -c.markerRadius; ox <= c.markerRadius; ox++ {
		for oy := -c.markerRadius; oy <= c.markerRadius; oy++ {
			if abs(ox)+abs(oy) > c.markerRadius || (ox == 0 && oy == 0) {
				continue
			}
			c.setDot(dx+ox, dy+oy, color)
		}
	}
}

func (c *Canvas) setDot(x, y int, color *braille.Color) {
	if color != nil {
		c.grid.SetColored(x, y, *color)
		return
	}
	c.grid.Set(x, y)
}

// drawDotLine draws a segment between two dot coordinates using Bresenham's
// algorithm. The symmetric error form handles steep and shallow slopes
// without a major-axis swap; a degenerate segment sets a single dot.
func (c *Canvas) drawDotLine(x0, y0, x1, y1 int, color *braille.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		c.setDot(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
