package braille

import (
	"errors"
	"strings"
	"testing"
)

func TestNewValidatesDimensions(t *testing.T) {
	cases := []struct {
		name   string
		width  int
		height int
		ok     bool
	}{
		{"minimal cell", 2, 4, true},
		{"default viewport", 120, 60, true},
		{"zero width", 0, 4, false},
		{"negative height", 2, -4, false},
		{"width not divisible by 2", 3, 8, false},
		{"height not divisible by 4", 4, 6, false},
	}

	for _, tc := range cases {
		g, err := New(tc.width, tc.height)
		if tc.ok {
			if err != nil {
				t.Errorf("%s: New(%d, %d) failed: %v", tc.name, tc.width, tc.height, err)
			}
			continue
		}
		if err == nil {
			t.Errorf("%s: New(%d, %d) should have failed", tc.name, tc.width, tc.height)
		}
		if !errors.Is(err, ErrGridSize) {
			t.Errorf("%s: expected ErrGridSize, got %v", tc.name, err)
		}
		if g != nil {
			t.Errorf("%s: expected nil grid on error", tc.name)
		}
	}
}

func TestSetAndGet(t *testing.T) {
	g, err := New(4, 8)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	g.Set(1, 2)
	if !g.Get(1, 2) {
		t.Error("dot (1,2) should be set")
	}
	if g.Get(0, 0) {
		t.Error("dot (0,0) should be unset")
	}

	g.Unset(1, 2)
	if g.Get(1, 2) {
		t.Error("dot (1,2) should be cleared after Unset")
	}
}

func TestOutOfRangeIsSilentlyIgnored(t *testing.T) {
	g, err := New(4, 8)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// None of these may panic or alter in-range state.
	g.Set(-1, 0)
	g.Set(0, -1)
	g.Set(4, 0)
	g.Set(0, 8)
	g.SetColored(100, 100, Color{R: 255})
	g.Unset(-5, -5)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.Get(x, y) {
				t.Fatalf("dot (%d,%d) set by out-of-range write", x, y)
			}
		}
	}
	if g.Get(-1, 0) || g.Get(4, 8) {
		t.Error("out-of-range reads should report unset")
	}
}

func TestGlyphEncoding(t *testing.T) {
	cases := []struct {
		name string
		dots [][2]int
		want rune
	}{
		{"empty", nil, '⠀'},
		{"dot 1", [][2]int{{0, 0}}, '⠁'},
		{"dot 4", [][2]int{{1, 0}}, '⠈'},
		{"left column", [][2]int{{0, 0}, {0, 1}, {0, 2}, {0, 3}}, '⡇'},
		{"right column", [][2]int{{1, 0}, {1, 1}, {1, 2}, {1, 3}}, '⢸'},
		{"bottom row", [][2]int{{0, 3}, {1, 3}}, '⣀'},
		{"full cell", [][2]int{
			{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}, {1, 2}, {0, 3}, {1, 3},
		}, '⣿'},
	}

	for _, tc := range cases {
		g, err := New(2, 4)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		for _, d := range tc.dots {
			g.Set(d[0], d[1])
		}
		got := g.Cells()[0][0].Rune
		if got != tc.want {
			t.Errorf("%s: expected %q (U+%04X), got %q (U+%04X)", tc.name, tc.want, tc.want, got, got)
		}
	}
}

func TestCellColorFirstSetWins(t *testing.T) {
	g, err := New(2, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	red := Color{R: 255}
	blue := Color{B: 255}

	// Scan order is row-major within the cell, so the dot at (1,0) is
	// visited before the dot at (0,1) regardless of draw order.
	g.SetColored(0, 1, blue)
	g.SetColored(1, 0, red)

	cell := g.Cells()[0][0]
	if cell.Color == nil {
		t.Fatal("cell should carry a color")
	}
	if *cell.Color != red {
		t.Errorf("expected first-set color %v, got %v", red, *cell.Color)
	}
}

func TestDotColorLastWriteWins(t *testing.T) {
	g, err := New(2, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	g.SetColored(0, 0, Color{R: 255})
	g.SetColored(0, 0, Color{G: 255})

	cell := g.Cells()[0][0]
	if cell.Color == nil {
		t.Fatal("cell should carry a color")
	}
	if (*cell.Color != Color{G: 255}) {
		t.Errorf("expected last written color, got %v", *cell.Color)
	}
}

func TestUncoloredCells(t *testing.T) {
	g, err := New(4, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	g.Set(0, 0)
	cells := g.Cells()[0]
	if cells[0].Color != nil {
		t.Error("cell with only plain dots should be uncolored")
	}
	if cells[1].Color != nil {
		t.Error("empty cell should be uncolored")
	}
}

func TestSerializationIsIdempotent(t *testing.T) {
	g, err := New(8, 8)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	g.Set(0, 0)
	g.SetColored(5, 3, Color{R: 10, G: 100, B: 200})

	first := g.String()
	second := g.String()
	if first != second {
		t.Errorf("String() not idempotent:\n%q\n%q", first, second)
	}

	rows := strings.Split(first, "\n")
	if len(rows) != g.Rows() {
		t.Errorf("expected %d rows, got %d", g.Rows(), len(rows))
	}
	for i, row := range rows {
		if len([]rune(row)) != g.Columns() {
			t.Errorf("row %d: expected %d glyphs, got %d", i, g.Columns(), len([]rune(row)))
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g, err := New(4, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	g.SetColored(1, 1, Color{R: 1})

	c := g.Clone()
	c.Set(0, 0)
	c.SetColored(1, 1, Color{B: 2})

	if g.Get(0, 0) {
		t.Error("mutating the clone changed the original grid")
	}
	orig := g.Cells()[0][0]
	if orig.Color == nil || (*orig.Color != Color{R: 1}) {
		t.Error("clone mutation leaked into original colors")
	}
}

func TestColorHex(t *testing.T) {
	c := Color{R: 0xe0, G: 0x80, B: 0xff}
	if c.Hex() != "#e080ff" {
		t.Errorf("expected #e080ff, got %s", c.Hex())
	}
}
