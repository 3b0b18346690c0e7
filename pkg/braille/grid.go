// Package braille implements a sub-character dot grid that serializes into
// Unicode braille pattern glyphs. Each terminal cell covers a 2x4 block of
// independently settable dots, optionally carrying a foreground color.
package braille

import (
	"errors"
	"fmt"
	"strings"
)

// CellWidth and CellHeight are the dot dimensions of one terminal cell.
const (
	CellWidth  = 2
	CellHeight = 4
)

// brailleBase is the empty pattern U+2800; set dots are OR-ed in as bit flags.
const brailleBase = 0x2800

// brailleBits maps a dot position within a cell (row, column) to its bit in
// the Unicode braille block. This layout is a compatibility contract: it must
// match the standard 8-dot braille encoding exactly.
var brailleBits = [CellHeight][CellWidth]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// ErrGridSize is returned when grid dimensions do not describe a whole
// number of braille cells.
var ErrGridSize = errors.New("braille: invalid grid size")

// Color is an RGB foreground color attached to a dot.
type Color struct {
	R, G, B uint8
}

// Hex returns the color as a #rrggbb string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Cell is one serialized terminal cell: a braille glyph plus the optional
// color of its first-set colored dot. A nil Color means uncolored.
type Cell struct {
	Rune  rune
	Color *Color
}

// Grid is a fixed-size dot matrix. Dots are addressed in [0,width) x
// [0,height) with the origin at the top-left; out-of-range coordinates are
// silently ignored so rasterized paths may cross outside the visible window.
// A Grid is never resized after construction.
type Grid struct {
	width  int
	height int
	dots   []bool
	colors []*Color
}

// New creates a grid of the given dot dimensions. Width must be a positive
// multiple of CellWidth and height a positive multiple of CellHeight.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d must be positive", ErrGridSize, width, height)
	}
	if width%CellWidth != 0 {
		return nil, fmt.Errorf("%w: width %d not divisible by %d", ErrGridSize, width, CellWidth)
	}
	if height%CellHeight != 0 {
		return nil, fmt.Errorf("%w: height %d not divisible by %d", ErrGridSize, height, CellHeight)
	}
	return &Grid{
		width:  width,
		height: height,
		dots:   make([]bool, width*height),
		colors: make([]*Color, width*height),
	}, nil
}

// Width returns the grid width in dots.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in dots.
func (g *Grid) Height() int { return g.height }

// Columns returns the grid width in terminal cells.
func (g *Grid) Columns() int { return g.width / CellWidth }

// Rows returns the grid height in terminal cells.
func (g *Grid) Rows() int { return g.height / CellHeight }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Set marks the dot at (x, y). Out-of-range coordinates are a no-op.
func (g *Grid) Set(x, y int) {
	if !g.inBounds(x, y) {
		return
	}
	g.dots[y*g.width+x] = true
}

// Unset clears the dot at (x, y) and drops its color. Out-of-range
// coordinates are a no-op. Clearing only ever happens through this call;
// overlapping draws accumulate rather than overwrite.
func (g *Grid) Unset(x, y int) {
	if !g.inBounds(x, y) {
		return
	}
	i := y*g.width + x
	g.dots[i] = false
	g.colors[i] = nil
}

// SetColored marks the dot at (x, y) and records its foreground color.
// If multiple draws touch the same dot the last written color wins.
func (g *Grid) SetColored(x, y int, c Color) {
	if !g.inBounds(x, y) {
		return
	}
	i := y*g.width + x
	g.dots[i] = true
	g.colors[i] = &Color{c.R, c.G, c.B}
}

// Get reports whether the dot at (x, y) is set. Out-of-range dots read as
// unset.
func (g *Grid) Get(x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	return g.dots[y*g.width+x]
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		width:  g.width,
		height: g.height,
		dots:   make([]bool, len(g.dots)),
		colors: make([]*Color, len(g.colors)),
	}
	copy(c.dots, g.dots)
	for i, col := range g.colors {
		if col != nil {
			cc := *col
			c.colors[i] = &cc
		}
	}
	return c
}

// cell serializes the 2x4 dot block whose top-left dot is (x, y).
// The cell color is the color of the first set colored dot in scan order
// (row-major), so repeated serialization is deterministic.
func (g *Grid) cell(x, y int) Cell {
	glyph := rune(brailleBase)
	var color *Color
	for dy := 0; dy < CellHeight; dy++ {
		for dx := 0; dx < CellWidth; dx++ {
			i := (y+dy)*g.width + (x + dx)
			if !g.dots[i] {
				continue
			}
			glyph |= brailleBits[dy][dx]
			if color == nil && g.colors[i] != nil {
				c := *g.colors[i]
				color = &c
			}
		}
	}
	return Cell{Rune: glyph, Color: color}
}

// Cells serializes the grid into rows of terminal cells. The result is a
// pure function of the current grid state: calling it twice on an unmodified
// grid yields identical output, and the returned rows are fresh slices the
// caller may keep.
func (g *Grid) Cells() [][]Cell {
	rows := make([][]Cell, g.Rows())
	for r := range rows {
		row := make([]Cell, g.Columns())
		for c := range row {
			row[c] = g.cell(c*CellWidth, r*CellHeight)
		}
		rows[r] = row
	}
	return rows
}

// String returns the glyph rows joined by newlines, without color.
func (g *Grid) String() string {
	var b strings.Builder
	for r, row := range g.Cells() {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			b.WriteRune(c.Rune)
		}
	}
	return b.String()
}
