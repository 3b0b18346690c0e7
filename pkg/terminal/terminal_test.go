package terminal

import (
	"strings"
	"testing"

	"github.com/brianbland/termplot/pkg/braille"
)

type stubFrame struct {
	rows [][]braille.Cell
}

func (f stubFrame) Rows() [][]braille.Cell { return f.rows }

func TestSprintUncolored(t *testing.T) {
	frame := stubFrame{rows: [][]braille.Cell{
		{{Rune: '⣿'}, {Rune: '⣿'}},
		{{Rune: ' '}, {Rune: '⠁'}},
	}}

	got := Sprint(frame)
	expected := "⣿⣿\n ⠁\n"
	if got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestSprintColoredPreservesGlyphs(t *testing.T) {
	red := &braille.Color{R: 255}
	frame := stubFrame{rows: [][]braille.Cell{
		{{Rune: '⠉', Color: red}, {Rune: '⠉', Color: red}, {Rune: '⣀'}},
	}}

	got := Sprint(frame)
	for _, r := range []rune{'⠉', '⣀'} {
		if !strings.ContainsRune(got, r) {
			t.Errorf("expected output to contain %q, got %q", r, got)
		}
	}
}

func TestFprintWritesAllRows(t *testing.T) {
	frame := stubFrame{rows: [][]braille.Cell{
		{{Rune: 'a'}},
		{{Rune: 'b'}},
		{{Rune: 'c'}},
	}}

	var sb strings.Builder
	if err := Fprint(&sb, frame); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lines := strings.Count(sb.String(), "\n"); lines != 3 {
		t.Errorf("expected 3 lines, got %d", lines)
	}
}
