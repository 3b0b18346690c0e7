package visualization

import (
	"github.com/brianbland/termplot/pkg/braille"
	"github.com/brianbland/termplot/pkg/shape"
)

// Series pairs a shape with a display name and an optional stroke color.
type Series struct {
	Name  string
	Shape shape.Shape
	Color *braille.Color
}

// ChartExporter defines the interface for exporting plots to image files
type ChartExporter interface {
	ExportPNG(filename string, xmin, xmax float64, series ...Series) error
}

// Generator implements ChartExporter interface
type Generator struct {
	widthPx  int
	heightPx int
	samples  int
}

// NewGenerator creates a new chart exporter with default image dimensions
func NewGenerator() *Generator {
	return &Generator{
		widthPx:  1200,
		heightPx: 800,
		samples:  512,
	}
}

// SetSize overrides the output image dimensions in pixels.
func (g *Generator) SetSize(widthPx, heightPx int) *Generator {
	g.widthPx = widthPx
	g.heightPx = heightPx
	return g
}
