// Package demo provides a registry of built-in demonstration charts
// showing each of the supported plot styles.
package demo

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/brianbland/termplot/pkg/braille"
	"github.com/brianbland/termplot/pkg/chart"
	"github.com/brianbland/termplot/pkg/shape"
)

// Demo describes a named demonstration chart
type Demo struct {
	Name        string
	Description string
	Build       func() (*chart.Chart, error)
}

// Generator handles the creation of demonstration charts
type Generator struct {
	width  int
	height int
}

// NewGenerator creates a new demo generator
func NewGenerator() *Generator {
	return &Generator{width: chart.DefaultWidth, height: chart.DefaultHeight}
}

// SetSize overrides the chart dimensions in terminal cells.
func (g *Generator) SetSize(width, height int) *Generator {
	g.width = width
	g.height = height
	return g
}

// GenerateAll returns every demo, sorted by name.
func (g *Generator) GenerateAll() []Demo {
	demos := []Demo{
		{
			Name:        "trig",
			Description: "Overlaid cosine and half-amplitude sine waves",
			Build:       g.generateTrig,
		},
		{
			Name:        "rainbow",
			Description: "Concentric colored arcs",
			Build:       g.generateRainbow,
		},
		{
			Name:        "scatter",
			Description: "Sparse colored point markers",
			Build:       g.generateScatter,
		},
		{
			Name:        "stairs",
			Description: "A staircase with its linear interpolation",
			Build:       g.generateStairs,
		},
		{
			Name:        "histogram",
			Description: "Bucketed noise drawn as bars",
			Build:       g.generateHistogram,
		},
	}
	sort.Slice(demos, func(i, j int) bool { return demos[i].Name < demos[j].Name })
	return demos
}

// GetByName returns the demo with the given name.
func (g *Generator) GetByName(name string) (*Demo, error) {
	var available []string
	for _, d := range g.GenerateAll() {
		if d.Name == name {
			demo := d
			return &demo, nil
		}
		available = append(available, d.Name)
	}
	return nil, fmt.Errorf("unknown demo %q (available: %s)", name, strings.Join(available, ", "))
}

func (g *Generator) generateTrig() (*chart.Chart, error) {
	c, err := chart.NewWithYRange(g.width, g.height, -5, 5, -1.5, 1.5)
	if err != nil {
		return nil, err
	}
	c.SetAxes(true).
		LineColorPlot(shape.Continuous(math.Cos), braille.Color{R: 255, G: 85}).
		LineColorPlot(shape.Continuous(func(x float64) float64 { return math.Sin(x) / 2 }), braille.Color{G: 170, B: 255})
	return c, c.Err()
}

func (g *Generator) generateRainbow() (*chart.Chart, error) {
	c, err := chart.NewWithYRange(g.width, g.height, -8, 8, 0, 8)
	if err != nil {
		return nil, err
	}

	colors := []braille.Color{
		{R: 255},
		{R: 255, G: 165},
		{R: 255, G: 255},
		{G: 255},
		{B: 255},
		{R: 238, G: 130, B: 238},
	}
	for i, color := range colors {
		radius := 7 - float64(i)
		arc := shape.Continuous(func(x float64) float64 {
			return math.Sqrt(radius*radius - x*x)
		})
		c.LineColorPlot(arc, color)
	}
	return c, c.Err()
}

func (g *Generator) generateScatter() (*chart.Chart, error) {
	c, err := chart.New(g.width, g.height, 0, 10)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(42))
	var reds, blues shape.Points
	for i := 0; i < 12; i++ {
		reds = append(reds, shape.Point{X: rng.Float64() * 10, Y: rng.Float64() * 10})
		blues = append(blues, shape.Point{X: rng.Float64() * 10, Y: rng.Float64() * 10})
	}

	c.SetMarkerRadius(1).
		LineColorPlot(reds, braille.Color{R: 255, G: 85}).
		LineColorPlot(blues, braille.Color{G: 85, B: 255})
	return c, c.Err()
}

func (g *Generator) generateStairs() (*chart.Chart, error) {
	c, err := chart.New(g.width, g.height, 0, 6)
	if err != nil {
		return nil, err
	}

	pts := []shape.Point{
		{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0.5},
		{X: 3, Y: 2.5}, {X: 4, Y: 2}, {X: 5, Y: 4}, {X: 6, Y: 3},
	}
	c.LineColorPlot(shape.Steps(pts), braille.Color{R: 255, G: 255}).
		LineColorPlot(shape.Interpolate(pts), braille.Color{R: 85, G: 85, B: 255})
	return c, c.Err()
}

func (g *Generator) generateHistogram() (*chart.Chart, error) {
	c, err := chart.New(g.width, g.height, 0, 10)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(7))
	data := make([]shape.Point, 512)
	for i := range data {
		data[i] = shape.Point{Y: rng.NormFloat64()*2 + 5}
	}

	bars := shape.Bars(shape.Histogram(data, 0, 10, 20))
	c.LinePlot(bars)
	return c, c.Err()
}
