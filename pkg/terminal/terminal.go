// Package terminal writes rendered frames to a terminal, applying ANSI
// colors to the cells that carry them.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/brianbland/termplot/pkg/braille"
)

// Frame is any rendered grid of cells, such as *chart.Frame.
type Frame interface {
	Rows() [][]braille.Cell
}

// Render writes the frame to standard output.
func Render(f Frame) error {
	return Fprint(os.Stdout, f)
}

// Fprint writes the frame to w. Runs of cells sharing a color are styled
// as a single span so the output stays compact.
func Fprint(w io.Writer, f Frame) error {
	var sb strings.Builder
	for _, row := range f.Rows() {
		sb.WriteString(renderRow(row))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	if err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	return nil
}

// Sprint returns the frame as a single string with trailing newline,
// colored the same way Fprint colors it.
func Sprint(f Frame) string {
	var sb strings.Builder
	for _, row := range f.Rows() {
		sb.WriteString(renderRow(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func renderRow(row []braille.Cell) string {
	var sb strings.Builder
	var run strings.Builder
	var runColor *braille.Color

	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runColor == nil {
			sb.WriteString(run.String())
		} else {
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(runColor.Hex()))
			sb.WriteString(style.Render(run.String()))
		}
		run.Reset()
	}

	for _, cell := range row {
		if !sameColor(runColor, cell.Color) {
			flush()
			runColor = cell.Color
		}
		run.WriteRune(cell.Rune)
	}
	flush()
	return sb.String()
}

func sameColor(a, b *braille.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
