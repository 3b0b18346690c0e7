// Package visualization exports plotted series to PNG image files, mirroring
// what the terminal renders at a resolution suited for sharing.
package visualization

import (
	"fmt"
	"math"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/brianbland/termplot/pkg/shape"
)

// ExportPNG renders the given series over [xmin, xmax] and writes the result
// to filename as a PNG image.
func (g *Generator) ExportPNG(filename string, xmin, xmax float64, series ...Series) error {
	if len(series) == 0 {
		return fmt.Errorf("no series to export")
	}
	if xmin >= xmax {
		return fmt.Errorf("export interval [%g, %g] is not increasing", xmin, xmax)
	}

	var chartSeries []chart.Series
	for i, s := range series {
		cs, err := g.buildSeries(s, i, xmin, xmax)
		if err != nil {
			return err
		}
		chartSeries = append(chartSeries, cs)
	}

	graph := chart.Chart{
		Width:  g.widthPx,
		Height: g.heightPx,
		XAxis: chart.XAxis{
			Name: "x",
		},
		YAxis: chart.YAxis{
			Name: "y",
		},
		Series: chartSeries,
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	return nil
}

func (g *Generator) buildSeries(s Series, index int, xmin, xmax float64) (chart.Series, error) {
	name := s.Name
	if name == "" {
		name = fmt.Sprintf("series %d", index+1)
	}

	var pts []shape.Point
	switch sh := s.Shape.(type) {
	case shape.Continuous:
		pts = shape.Sample(sh, xmin, xmax, g.samples)
	case shape.Steps:
		pts = shape.StairPoints(shape.Sample(sh, xmin, xmax, g.samples))
	default:
		pts = shape.Sample(sh, xmin, xmax, g.samples)
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("series %q has no drawable points over [%g, %g]", name, xmin, xmax)
	}

	xs := make([]float64, 0, len(pts))
	ys := make([]float64, 0, len(pts))
	for _, p := range pts {
		if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			continue
		}
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}
	if len(xs) == 0 {
		return nil, fmt.Errorf("series %q has no finite values over [%g, %g]", name, xmin, xmax)
	}

	style := chart.Style{StrokeWidth: 2}
	if s.Color != nil {
		style.StrokeColor = drawing.Color{R: s.Color.R, G: s.Color.G, B: s.Color.B, A: 255}
	}
	if _, scatter := s.Shape.(shape.Points); scatter {
		style.StrokeWidth = chart.Disabled
		style.DotWidth = 4
		if s.Color != nil {
			style.DotColor = drawing.Color{R: s.Color.R, G: s.Color.G, B: s.Color.B, A: 255}
		}
	}

	return chart.ContinuousSeries{
		Name:    name,
		XValues: xs,
		YValues: ys,
		Style:   style,
	}, nil
}
