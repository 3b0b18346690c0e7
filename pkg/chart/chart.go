// Package chart orchestrates shapes against one shared canvas: it owns the
// target domain/range, the character-grid dimensions, and the list of
// plotted (shape, color) entries, and assembles the final text frame.
package chart

import (
	"errors"
	"fmt"
	"math"

	"github.com/brianbland/termplot/pkg/braille"
	"github.com/brianbland/termplot/pkg/canvas"
	"github.com/brianbland/termplot/pkg/shape"
)

// Default viewport: 60x15 terminal cells (120x60 dots) over [-10, 10].
const (
	DefaultWidth  = 60
	DefaultHeight = 15
	DefaultXMin   = -10.0
	DefaultXMax   = 10.0
)

// ErrConfiguration is returned for invalid grid dimensions, a degenerate
// domain or range, or a plot call that cannot establish a domain. It is
// surfaced at the call that triggered it and never silently corrected.
var ErrConfiguration = errors.New("chart: invalid configuration")

// Plot is the capability of layering shapes onto a chart's shared canvas.
// Each call rasterizes one shape and returns the chart for chaining.
type Plot interface {
	LinePlot(s shape.Shape) *Chart
	LineColorPlot(s shape.Shape, color braille.Color) *Chart
}

type entry struct {
	shape shape.Shape
	color *braille.Color
}

// Chart accumulates shapes onto one canvas and renders them as a text frame.
// Charts are not safe for concurrent use; callers must serialize access.
type Chart struct {
	width  int // terminal cells
	height int

	xmin, xmax float64
	ymin, ymax float64
	hasDomain  bool
	hasRange   bool
	autoDomain bool
	autoRange  bool

	markerRadius int
	border       bool
	axes         bool
	xLabel       LabelFormatter
	yLabel       LabelFormatter

	canvas  *canvas.Canvas
	entries []entry
	err     error
}

var _ Plot = (*Chart)(nil)

// New creates a chart of width x height terminal cells over the x interval
// [xmin, xmax]. The y range is derived incrementally from the plotted data.
func New(width, height int, xmin, xmax float64) (*Chart, error) {
	c, err := newChart(width, height)
	if err != nil {
		return nil, err
	}
	if err := c.setDomain(xmin, xmax); err != nil {
		return nil, err
	}
	c.autoRange = true
	return c, nil
}

// NewWithYRange creates a chart with both the domain and the range fixed by
// the caller. Data outside the range is clipped, never an error.
func NewWithYRange(width, height int, xmin, xmax, ymin, ymax float64) (*Chart, error) {
	c, err := New(width, height, xmin, xmax)
	if err != nil {
		return nil, err
	}
	if ymin >= ymax {
		return nil, fmt.Errorf("%w: range [%g, %g]", ErrConfiguration, ymin, ymax)
	}
	c.ymin, c.ymax = ymin, ymax
	c.hasRange = true
	c.autoRange = false
	return c, nil
}

// NewAuto creates a chart whose domain and range are both derived from the
// first plotted shape's data extent. Plotting an unbounded shape (a
// Continuous function) first is a configuration error.
func NewAuto(width, height int) (*Chart, error) {
	c, err := newChart(width, height)
	if err != nil {
		return nil, err
	}
	c.autoDomain = true
	c.autoRange = true
	return c, nil
}

// Default returns a chart with the default viewport.
func Default() *Chart {
	c, err := New(DefaultWidth, DefaultHeight, DefaultXMin, DefaultXMax)
	if err != nil {
		// Defaults are statically valid.
		panic(err)
	}
	return c
}

func newChart(width, height int) (*Chart, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: grid %dx%d must be positive", ErrConfiguration, width, height)
	}
	return &Chart{
		width:  width,
		height: height,
		xLabel: DefaultLabelFormatter,
		yLabel: DefaultLabelFormatter,
	}, nil
}

func (c *Chart) setDomain(xmin, xmax float64) error {
	if xmin >= xmax || math.IsNaN(xmin) || math.IsNaN(xmax) {
		return fmt.Errorf("%w: domain [%g, %g]", ErrConfiguration, xmin, xmax)
	}
	c.xmin, c.xmax = xmin, xmax
	c.hasDomain = true
	return nil
}

// Err returns the first configuration error recorded by a plot call, if any.
func (c *Chart) Err() error { return c.err }

// Width returns the chart width in terminal cells.
func (c *Chart) Width() int { return c.width }

// Height returns the chart height in terminal cells, excluding the label row.
func (c *Chart) Height() int { return c.height }

// Domain returns the current x interval.
func (c *Chart) Domain() (xmin, xmax float64) { return c.xmin, c.xmax }

// Range returns the current y interval.
func (c *Chart) Range() (ymin, ymax float64) { return c.ymin, c.ymax }

// SetMarkerRadius sets the dot radius drawn around isolated point markers.
func (c *Chart) SetMarkerRadius(r int) *Chart {
	c.markerRadius = r
	if c.canvas != nil {
		c.canvas.SetMarkerRadius(r)
	}
	return c
}

// SetBorder toggles a dotted border rectangle around the rendered grid.
func (c *Chart) SetBorder(on bool) *Chart {
	c.border = on
	return c
}

// SetAxes toggles dotted zero-axis lines, drawn when 0 lies inside the
// respective interval.
func (c *Chart) SetAxes(on bool) *Chart {
	c.axes = on
	return c
}

// SetXLabelFormat overrides the x axis tick label formatter.
func (c *Chart) SetXLabelFormat(f LabelFormatter) *Chart {
	if f != nil {
		c.xLabel = f
	}
	return c
}

// SetYLabelFormat overrides the y axis tick label formatter.
func (c *Chart) SetYLabelFormat(f LabelFormatter) *Chart {
	if f != nil {
		c.yLabel = f
	}
	return c
}

// dotColumns returns the horizontal sampling resolution in dots.
func (c *Chart) dotColumns() int { return c.width * braille.CellWidth }

// LinePlot rasterizes a shape onto the shared canvas without color and
// returns the chart for chaining. Shapes plotted later are layered on top
// of earlier ones; overlapping dots simply remain set.
func (c *Chart) LinePlot(s shape.Shape) *Chart {
	return c.plot(s, nil)
}

// LineColorPlot rasterizes a shape with a foreground color. When two draws
// touch the same dot the last written color wins.
func (c *Chart) LineColorPlot(s shape.Shape, color braille.Color) *Chart {
	return c.plot(s, &color)
}

// plot is the single mutation point for the shared canvas. The first call
// establishes any auto-derived domain/range from the shape's own extent;
// later calls extend an auto range as a running min/max fold. If the fold
// grows the range, previously plotted entries are replayed onto a fresh
// grid at the new mapping so that plot order never changes final geometry.
func (c *Chart) plot(s shape.Shape, color *braille.Color) *Chart {
	if c.err != nil {
		return c
	}

	if !c.hasDomain {
		xmin, xmax, ok := shape.XExtent(s)
		if !ok {
			c.err = fmt.Errorf("%w: shape has no inherent x extent and no domain was set", ErrConfiguration)
			return c
		}
		if xmin == xmax {
			// A single-column point set still needs a drawable interval.
			xmin, xmax = xmin-1, xmax+1
		}
		if err := c.setDomain(xmin, xmax); err != nil {
			c.err = err
			return c
		}
	}

	rangeChanged := false
	if ymin, ymax, ok := shape.YExtent(s, c.xmin, c.xmax, c.dotColumns()); ok && c.autoRange {
		if ymin == ymax {
			ymin, ymax = ymin-1, ymax+1
		}
		if !c.hasRange {
			c.ymin, c.ymax = ymin, ymax
			c.hasRange = true
			rangeChanged = true
		} else if ymin < c.ymin || ymax > c.ymax {
			c.ymin = math.Min(c.ymin, ymin)
			c.ymax = math.Max(c.ymax, ymax)
			rangeChanged = true
		}
	}

	c.entries = append(c.entries, entry{shape: s, color: color})

	if c.canvas == nil || rangeChanged {
		if err := c.rebuild(); err != nil {
			c.err = err
		}
		return c
	}
	c.draw(c.entries[len(c.entries)-1])
	return c
}

// rebuild replaces the canvas and replays every recorded entry at the
// current domain/range mapping.
func (c *Chart) rebuild() error {
	if !c.hasRange {
		// Nothing plotted so far produced a finite y value; keep a unit
		// range so clipped or empty charts still render a labeled frame.
		c.ymin, c.ymax = 0, 1
	}
	cv, err := canvas.New(c.width, c.height, c.xmin, c.xmax, c.ymin, c.ymax)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	cv.SetMarkerRadius(c.markerRadius)
	c.canvas = cv
	for _, e := range c.entries {
		c.draw(e)
	}
	return nil
}

// draw rasterizes one entry onto the canvas.
func (c *Chart) draw(e entry) {
	switch v := e.shape.(type) {
	case shape.Continuous:
		c.drawContinuous(v, e.color)
	case shape.Lines:
		c.drawSegments(shape.Sample(v, c.xmin, c.xmax, c.dotColumns()), e.color)
	case shape.Steps:
		pts := shape.Sample(v, c.xmin, c.xmax, c.dotColumns())
		c.drawSegments(shape.StairPoints(pts), e.color)
	case shape.Points:
		for _, p := range shape.Sample(v, c.xmin, c.xmax, c.dotColumns()) {
			c.canvas.DrawPoint(p.X, p.Y, e.color)
		}
	case shape.Bars:
		for _, p := range shape.Sample(v, c.xmin, c.xmax, c.dotColumns()) {
			c.canvas.DrawLine(p.X, 0, p.X, p.Y, e.color)
		}
	}
}

// drawContinuous samples the function once per dot column and connects
// adjacent finite samples. A NaN or infinite sample breaks the run, leaving
// a gap rather than bridging across it.
func (c *Chart) drawContinuous(f shape.Continuous, color *braille.Color) {
	columns := c.dotColumns()
	prevOK := false
	var prev shape.Point
	for i := 0; i < columns; i++ {
		x := c.xmin
		if columns > 1 {
			x = c.xmin + (c.xmax-c.xmin)*float64(i)/float64(columns-1)
		}
		y := f(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			prevOK = false
			continue
		}
		cur := shape.Point{X: x, Y: y}
		if prevOK {
			c.canvas.DrawLine(prev.X, prev.Y, cur.X, cur.Y, color)
		} else {
			c.canvas.DrawLine(cur.X, cur.Y, cur.X, cur.Y, color)
		}
		prev, prevOK = cur, true
	}
}

// drawSegments connects consecutive points with line segments.
func (c *Chart) drawSegments(pts []shape.Point, color *braille.Color) {
	if len(pts) == 1 {
		c.canvas.DrawPoint(pts[0].X, pts[0].Y, color)
		return
	}
	for i := 1; i < len(pts); i++ {
		c.canvas.DrawLine(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, color)
	}
}
