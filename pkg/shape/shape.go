// Package shape defines the data sources a chart can rasterize and how each
// one materializes into drawable points over a given domain.
package shape

import "math"

// Point is an (x, y) pair in data-domain units.
type Point struct {
	X float64
	Y float64
}

// Shape is the closed set of plottable data variants. The variant set is
// small and fixed; charts dispatch over it with a type switch.
type Shape interface {
	shape()
}

// Continuous is a real-valued function sampled once per dot column across
// the chart domain.
type Continuous func(x float64) float64

// Lines is an ordered point sequence connected by straight segments.
type Lines []Point

// Points is a set of discrete unconnected markers.
type Points []Point

// Steps is an ordered point sequence connected in staircase fashion.
type Steps []Point

// Bars is a series of (position, value) pairs rendered as vertical bars
// down to the zero line.
type Bars []Point

func (Continuous) shape() {}
func (Lines) shape()      {}
func (Points) shape()     {}
func (Steps) shape()      {}
func (Bars) shape()       {}

// Sample materializes a shape into drawable points over [xmin, xmax].
// A Continuous shape is evaluated at one x per dot column so that visual
// resolution matches rendering resolution exactly; samples that come back
// NaN or infinite are skipped, leaving a gap. Data-backed variants return a
// copy of their points unchanged.
func Sample(s Shape, xmin, xmax float64, columns int) []Point {
	switch v := s.(type) {
	case Continuous:
		if columns < 1 {
			return nil
		}
		pts := make([]Point, 0, columns)
		for i := 0; i < columns; i++ {
			x := xmin
			if columns > 1 {
				x = xmin + (xmax-xmin)*float64(i)/float64(columns-1)
			}
			y := v(x)
			if math.IsNaN(y) || math.IsInf(y, 0) {
				continue
			}
			pts = append(pts, Point{X: x, Y: y})
		}
		return pts
	case Lines:
		return clonePoints(v)
	case Points:
		return clonePoints(v)
	case Steps:
		return clonePoints(v)
	case Bars:
		return clonePoints(v)
	}
	return nil
}

// StairPoints synthesizes the intermediate corner between each consecutive
// pair (x0,y0) -> (x1,y1) as (x1,y0), producing a staircase instead of
// diagonals.
func StairPoints(pts []Point) []Point {
	if len(pts) < 2 {
		return clonePoints(pts)
	}
	out := make([]Point, 0, 2*len(pts)-1)
	out = append(out, pts[0])
	for i := 1; i < len(pts); i++ {
		out = append(out, Point{X: pts[i].X, Y: pts[i-1].Y}, pts[i])
	}
	return out
}

// XExtent returns the x bounds of a shape's own data. A Continuous shape is
// unbounded and reports ok=false; its domain must come from the caller.
func XExtent(s Shape) (xmin, xmax float64, ok bool) {
	var pts []Point
	switch v := s.(type) {
	case Continuous:
		return 0, 0, false
	case Lines:
		pts = v
	case Points:
		pts = v
	case Steps:
		pts = v
	case Bars:
		pts = v
	}
	if len(pts) == 0 {
		return 0, 0, false
	}
	xmin, xmax = pts[0].X, pts[0].X
	for _, p := range pts[1:] {
		xmin = math.Min(xmin, p.X)
		xmax = math.Max(xmax, p.X)
	}
	return xmin, xmax, true
}

// YExtent returns the y bounds a shape covers over [xmin, xmax].
// Data-backed variants only consider points whose x lies inside the domain;
// Bars additionally cover the zero line they are drawn down to. Continuous
// shapes are sampled at the given column resolution with non-finite values
// skipped. ok is false when nothing falls inside the domain.
func YExtent(s Shape, xmin, xmax float64, columns int) (ymin, ymax float64, ok bool) {
	ymin = math.Inf(1)
	ymax = math.Inf(-1)

	switch v := s.(type) {
	case Continuous:
		for _, p := range Sample(v, xmin, xmax, columns) {
			ymin = math.Min(ymin, p.Y)
			ymax = math.Max(ymax, p.Y)
		}
	default:
		for _, p := range Sample(s, xmin, xmax, columns) {
			if p.X < xmin || p.X > xmax {
				continue
			}
			ymin = math.Min(ymin, p.Y)
			ymax = math.Max(ymax, p.Y)
		}
		if _, isBars := s.(Bars); isBars && !math.IsInf(ymin, 1) {
			ymin = math.Min(ymin, 0)
			ymax = math.Max(ymax, 0)
		}
	}

	if math.IsInf(ymin, 1) {
		return 0, 0, false
	}
	return ymin, ymax, true
}

func clonePoints(pts []Point) []Point {
	out := make([]Point, len(pts))
	copy(out, pts)
	return out
}
