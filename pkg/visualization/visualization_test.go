package visualization

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/brianbland/termplot/pkg/braille"
	"github.com/brianbland/termplot/pkg/shape"
)

func TestExportPNG(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "sine.png")

	g := NewGenerator()
	err := g.ExportPNG(filename, -10, 10,
		Series{Name: "sin", Shape: shape.Continuous(math.Sin)},
		Series{Name: "cos", Shape: shape.Continuous(math.Cos), Color: &braille.Color{R: 255}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(filename)
	if err != nil {
		t.Fatalf("expected chart file to exist: %v", err)
	}
	if info.Size() == 0 {
		t.Errorf("expected chart file to be non-empty")
	}
}

func TestExportPNGScatter(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "scatter.png")

	pts := shape.Points{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 1}, {X: 3, Y: 4}}
	err := NewGenerator().ExportPNG(filename, -1, 4, Series{Name: "pts", Shape: pts})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filename); err != nil {
		t.Errorf("expected chart file to exist: %v", err)
	}
}

func TestExportPNGErrors(t *testing.T) {
	g := NewGenerator()

	if err := g.ExportPNG("out.png", -10, 10); err == nil {
		t.Errorf("expected error for empty series list")
	}
	if err := g.ExportPNG("out.png", 10, -10, Series{Shape: shape.Continuous(math.Sin)}); err == nil {
		t.Errorf("expected error for inverted interval")
	}

	nan := shape.Continuous(func(float64) float64 { return math.NaN() })
	if err := g.ExportPNG("out.png", -10, 10, Series{Shape: nan}); err == nil {
		t.Errorf("expected error for series with no finite values")
	}
}
