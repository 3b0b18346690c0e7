package main

import (
	"fmt"
	"os"

	"github.com/brianbland/termplot/pkg/braille"
	"github.com/brianbland/termplot/pkg/chart"
	"github.com/brianbland/termplot/pkg/config"
	"github.com/brianbland/termplot/pkg/demo"
	"github.com/brianbland/termplot/pkg/expression"
	"github.com/brianbland/termplot/pkg/terminal"
	"github.com/brianbland/termplot/pkg/visualization"
)

func main() {
	parser := config.NewParser()
	opts, err := parser.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if opts.ShowHelp {
		parser.ShowDetailedHelp()
		return
	}

	if opts.Demo != "" {
		if err := runDemo(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runFormula(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runFormula compiles the formula and plots it according to the options.
func runFormula(opts *config.Options) error {
	prog, err := expression.Compile(opts.Formula)
	if err != nil {
		return err
	}

	if opts.Live {
		return runLive(opts, prog)
	}

	c, err := newChart(opts)
	if err != nil {
		return err
	}
	c.LineColorPlot(prog.Shape(), braille.Color{R: 85, G: 255, B: 85})

	frame, err := c.Render()
	if err != nil {
		return err
	}
	if err := terminal.Render(frame); err != nil {
		return err
	}

	if opts.Export != "" {
		g := visualization.NewGenerator()
		err := g.ExportPNG(opts.Export, opts.XMin, opts.XMax, visualization.Series{
			Name:  opts.Formula,
			Shape: prog.Shape(),
		})
		if err != nil {
			return err
		}
		fmt.Printf("\nChart exported to %s\n", opts.Export)
	}

	return nil
}

// runLive redraws the formula with t bound to the elapsed seconds.
func runLive(opts *config.Options, prog *expression.Program) error {
	return terminal.Live(opts.Interval, func(elapsed float64) (terminal.Frame, error) {
		c, err := newChart(opts)
		if err != nil {
			return nil, err
		}
		c.LineColorPlot(prog.ShapeAt(elapsed), braille.Color{R: 85, G: 255, B: 85})
		return c.Render()
	})
}

// runDemo renders a named demo gallery.
func runDemo(opts *config.Options) error {
	generator := demo.NewGenerator().SetSize(opts.Width, opts.Height)

	d, err := generator.GetByName(opts.Demo)
	if err != nil {
		return err
	}

	c, err := d.Build()
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s\n\n", d.Name, d.Description)
	frame, err := c.Render()
	if err != nil {
		return err
	}
	return terminal.Render(frame)
}

// newChart builds a chart from the configured viewport.
func newChart(opts *config.Options) (*chart.Chart, error) {
	var c *chart.Chart
	var err error
	if opts.HasYRange() {
		c, err = chart.NewWithYRange(opts.Width, opts.Height, opts.XMin, opts.XMax, opts.YMin, opts.YMax)
	} else {
		c, err = chart.New(opts.Width, opts.Height, opts.XMin, opts.XMax)
	}
	if err != nil {
		return nil, err
	}
	c.SetAxes(opts.Axes).SetBorder(opts.Border).SetMarkerRadius(opts.MarkerRadius)
	return c, nil
}
