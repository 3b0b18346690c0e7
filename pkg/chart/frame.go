package chart

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/brianbland/termplot/pkg/braille"
)

// LabelFormatter converts an axis tick value into its display text.
type LabelFormatter func(float64) string

// DefaultLabelFormatter formats tick values to three significant digits.
func DefaultLabelFormatter(v float64) string {
	return fmt.Sprintf("%.3g", v)
}

// Frame is a rendered chart: a rectangular block of height+1 rows by
// gutter+width cells. Grid glyphs come from the Unicode braille block;
// color annotations ride on the cells rather than being embedded as control
// sequences, so any color-capable sink can re-render them.
type Frame struct {
	rows [][]braille.Cell
}

// Rows returns the frame cells, one slice per terminal row.
func (f *Frame) Rows() [][]braille.Cell { return f.rows }

// Lines returns the plain text rows without color.
func (f *Frame) Lines() []string {
	lines := make([]string, len(f.rows))
	for i, row := range f.rows {
		var b strings.Builder
		for _, c := range row {
			b.WriteRune(c.Rune)
		}
		lines[i] = b.String()
	}
	return lines
}

// String returns the plain text frame joined by newlines.
func (f *Frame) String() string {
	return strings.Join(f.Lines(), "\n")
}

// Render finalizes the chart into a frame: the dot grid body, a left gutter
// sized to the widest y tick label, and a bottom row of x tick labels.
// It is read-only with respect to the accumulated canvas state and
// idempotent: re-rendering an unmodified chart yields identical output.
// Decorations (zero axes, border) are drawn into a clone of the grid.
func (c *Chart) Render() (*Frame, error) {
	if c.err != nil {
		return nil, c.err
	}
	if c.canvas == nil {
		if !c.hasDomain {
			return nil, fmt.Errorf("%w: no domain established and nothing plotted", ErrConfiguration)
		}
		if err := c.rebuild(); err != nil {
			return nil, err
		}
	}

	grid := c.canvas.Grid().Clone()
	c.decorate(grid)

	yMinLabel := c.yLabel(c.ymin)
	yMaxLabel := c.yLabel(c.ymax)
	gutter := utf8.RuneCountInString(yMinLabel)
	if n := utf8.RuneCountInString(yMaxLabel); n > gutter {
		gutter = n
	}
	gutter++ // separating space

	body := grid.Cells()
	rows := make([][]braille.Cell, 0, len(body)+1)
	for i, gridRow := range body {
		label := ""
		switch i {
		case 0:
			label = yMaxLabel
		case len(body) - 1:
			label = yMinLabel
		}
		row := make([]braille.Cell, 0, gutter+len(gridRow))
		row = append(row, textCells(pad(label, gutter-1)+" ")...)
		row = append(row, gridRow...)
		rows = append(rows, row)
	}
	rows = append(rows, c.xLabelRow(gutter))

	return &Frame{rows: rows}, nil
}

// Display renders the chart and prints its plain text to stdout. It may be
// called repeatedly with identical output as long as no plot calls
// intervene. For colored output, pass the rendered frame to a color-capable
// sink instead.
func (c *Chart) Display() error {
	f, err := c.Render()
	if err != nil {
		return err
	}
	fmt.Println(f.String())
	return nil
}

// Nice displays the chart with a dotted border rectangle around the grid.
func (c *Chart) Nice() error {
	c.SetBorder(true)
	return c.Display()
}

// xLabelRow builds the bottom label row: xmin aligned under the first grid
// column, xmax right-aligned under the last.
func (c *Chart) xLabelRow(gutter int) []braille.Cell {
	width := gutter + c.width
	runes := make([]rune, width)
	for i := range runes {
		runes[i] = ' '
	}

	left := []rune(c.xLabel(c.xmin))
	for i, r := range left {
		if gutter+i < width {
			runes[gutter+i] = r
		}
	}
	right := []rune(c.xLabel(c.xmax))
	start := width - len(right)
	if start < gutter {
		start = gutter
	}
	for i, r := range right {
		if start+i < width {
			runes[start+i] = r
		}
	}
	return textCells(string(runes))
}

// decorate draws the optional zero-axis lines and border onto a grid clone.
// Lines are dotted (every third dot) so they read as guides, not data.
func (c *Chart) decorate(g *braille.Grid) {
	if c.axes {
		if c.xmin <= 0 && c.xmax >= 0 {
			col, _ := c.canvas.MapPoint(0, c.ymin)
			vline(g, col)
		}
		if c.ymin <= 0 && c.ymax >= 0 {
			_, row := c.canvas.MapPoint(c.xmin, 0)
			hline(g, row)
		}
	}
	if c.border {
		vline(g, 0)
		vline(g, g.Width()-1)
		hline(g, 0)
		hline(g, g.Height()-1)
	}
}

func vline(g *braille.Grid, x int) {
	for y := 0; y < g.Height(); y++ {
		if y%3 == 0 {
			g.Set(x, y)
		}
	}
}

func hline(g *braille.Grid, y int) {
	for x := 0; x < g.Width(); x++ {
		if x%3 == 0 {
			g.Set(x, y)
		}
	}
}

func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}

func textCells(s string) []braille.Cell {
	cells := make([]braille.Cell, 0, len(s))
	for _, r := range s {
		cells = append(cells, braille.Cell{Rune: r})
	}
	return cells
}
