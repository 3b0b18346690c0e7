// Package config parses and validates the command-line options for the
// termplot binary.
package config

import (
	"flag"
	"fmt"
	"math"
	"time"
)

// Options holds the resolved command-line configuration.
type Options struct {
	Formula string // Expression to plot, in terms of x (and t in live mode)
	Demo    string // Named demo gallery to show instead of a formula

	XMin float64 // X-axis start value
	XMax float64 // X-axis end value
	YMin float64 // Y-axis start value (NaN = derive from data)
	YMax float64 // Y-axis end value (NaN = derive from data)

	Width  int // Chart width in terminal cells
	Height int // Chart height in terminal cells

	MarkerRadius int  // Dot radius around isolated point markers
	Axes         bool // Draw dotted zero-axis lines
	Border       bool // Draw a dotted border rectangle

	Live     bool          // Redraw continuously with elapsed time bound to t
	Interval time.Duration // Redraw interval in live mode

	Export string // Write the plotted series to this PNG file

	ShowHelp bool
}

// HasYRange reports whether both y bounds were supplied.
func (o *Options) HasYRange() bool {
	return !math.IsNaN(o.YMin) && !math.IsNaN(o.YMax)
}

// Default returns the built-in option values: a 60x15 cell viewport over
// [-10, 10] with an auto-derived y range.
func Default() Options {
	return Options{
		XMin:     -10,
		XMax:     10,
		YMin:     math.NaN(),
		YMax:     math.NaN(),
		Width:    60,
		Height:   15,
		Axes:     true,
		Interval: 50 * time.Millisecond,
	}
}

// Parser handles command-line flag parsing
type Parser struct {
	opts    *Options
	flagSet *flag.FlagSet
}

// NewParser creates a new configuration parser
func NewParser() *Parser {
	opts := Default()
	return &Parser{
		opts:    &opts,
		flagSet: flag.NewFlagSet("termplot", flag.ContinueOnError),
	}
}

// RegisterFlags registers all command-line flags
func (p *Parser) RegisterFlags() {
	p.flagSet.Float64Var(&p.opts.XMin, "xmin", p.opts.XMin, "X-axis start value")
	p.flagSet.Float64Var(&p.opts.XMax, "xmax", p.opts.XMax, "X-axis end value")
	p.flagSet.Float64Var(&p.opts.YMin, "ymin", p.opts.YMin, "Y-axis start value (default: derived from data)")
	p.flagSet.Float64Var(&p.opts.YMax, "ymax", p.opts.YMax, "Y-axis end value (default: derived from data)")
	p.flagSet.IntVar(&p.opts.Width, "width", p.opts.Width, "Chart width in terminal cells")
	p.flagSet.IntVar(&p.opts.Height, "height", p.opts.Height, "Chart height in terminal cells")
	p.flagSet.IntVar(&p.opts.MarkerRadius, "marker-radius", p.opts.MarkerRadius, "Dot radius around point markers")
	p.flagSet.BoolVar(&p.opts.Axes, "axes", p.opts.Axes, "Draw dotted zero-axis lines")
	p.flagSet.BoolVar(&p.opts.Border, "border", p.opts.Border, "Draw a dotted border around the chart")
	p.flagSet.BoolVar(&p.opts.Live, "live", p.opts.Live, "Redraw continuously with elapsed seconds bound to t")
	p.flagSet.DurationVar(&p.opts.Interval, "interval", p.opts.Interval, "Redraw interval in live mode")
	p.flagSet.StringVar(&p.opts.Export, "export", p.opts.Export, "Also write the plot to this PNG file")
	p.flagSet.StringVar(&p.opts.Demo, "demo", p.opts.Demo, "Show a named demo gallery instead of a formula")
	p.flagSet.BoolVar(&p.opts.ShowHelp, "help", p.opts.ShowHelp, "Show detailed help")
}

// Parse parses command-line arguments and returns the options. The first
// non-flag argument is the formula.
func (p *Parser) Parse(args []string) (*Options, error) {
	p.RegisterFlags()

	if err := p.flagSet.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	p.opts.Formula = p.flagSet.Arg(0)

	if p.opts.ShowHelp {
		return p.opts, nil
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return p.opts, nil
}

// Validate validates the configuration parameters
func (p *Parser) Validate() error {
	o := p.opts

	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("chart size %dx%d must be positive", o.Width, o.Height)
	}

	if o.XMin >= o.XMax {
		return fmt.Errorf("xmin (%g) must be less than xmax (%g)", o.XMin, o.XMax)
	}

	if math.IsNaN(o.YMin) != math.IsNaN(o.YMax) {
		return fmt.Errorf("ymin and ymax must be specified together")
	}
	if o.HasYRange() && o.YMin >= o.YMax {
		return fmt.Errorf("ymin (%g) must be less than ymax (%g)", o.YMin, o.YMax)
	}

	if o.MarkerRadius < 0 {
		return fmt.Errorf("marker radius (%d) must not be negative", o.MarkerRadius)
	}

	if o.Live {
		if o.Interval <= 0 {
			return fmt.Errorf("interval (%s) must be positive", o.Interval)
		}
		if o.Export != "" {
			return fmt.Errorf("live mode cannot be combined with export")
		}
	}

	if o.Formula == "" && o.Demo == "" {
		return fmt.Errorf("either a formula argument or a demo name is required")
	}
	if o.Formula != "" && o.Demo != "" {
		return fmt.Errorf("a formula argument cannot be combined with a demo")
	}

	return nil
}

// ShowDetailedHelp displays comprehensive help information
func (p *Parser) ShowDetailedHelp() {
	fmt.Println("termplot - plot formulas and data as braille charts in the terminal")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  termplot [flags] FORMULA")
	fmt.Println("  termplot -demo=<name>")
	fmt.Println()
	fmt.Println("The formula is an expression over x, e.g. \"sin(x) / x\".")
	fmt.Println("In live mode it may also use t, the elapsed time in seconds.")
	fmt.Println()
	fmt.Println("FLAGS:")
	p.flagSet.PrintDefaults()
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  termplot \"sin(x) / x\"")
	fmt.Println("  termplot -xmin=-5 -xmax=5 \"cos(x)\"")
	fmt.Println("  termplot -ymin=-1 -ymax=1 -width=90 -height=20 \"tanh(x)\"")
	fmt.Println("  termplot -live \"sin(x + t)\"")
	fmt.Println("  termplot -export=plot.png \"x * x\"")
	fmt.Println("  termplot -demo=trig")
}
