package shape

import "sort"

// Histogram groups the y values of data into bins equal-width buckets over
// [min, max] and returns one (bucket start, count) point per bucket.
// Values outside the interval are ignored.
func Histogram(data []Point, min, max float64, bins int) []Point {
	if bins <= 0 || min >= max {
		return nil
	}

	counts := make([]int, bins)
	step := (max - min) / float64(bins)

	for _, p := range data {
		if p.Y < min || p.Y > max {
			continue
		}
		bucket := int((p.Y - min) / step)
		if bucket >= 0 && bucket < bins {
			counts[bucket]++
		}
	}

	out := make([]Point, bins)
	for i, n := range counts {
		out[i] = Point{X: min + float64(i)*step, Y: float64(n)}
	}
	return out
}

// Interpolate returns a Continuous shape that linearly interpolates between
// the given points. Outside the points' x extent the function extends the
// first or last y value.
func Interpolate(pts []Point) Continuous {
	sorted := clonePoints(pts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	return func(x float64) float64 {
		if len(sorted) == 0 {
			return 0
		}
		if x <= sorted[0].X {
			return sorted[0].Y
		}
		last := sorted[len(sorted)-1]
		if x >= last.X {
			return last.Y
		}
		i := sort.Search(len(sorted), func(i int) bool { return sorted[i].X >= x })
		a, b := sorted[i-1], sorted[i]
		if b.X == a.X {
			return b.Y
		}
		t := (x - a.X) / (b.X - a.X)
		return a.Y + t*(b.Y-a.Y)
	}
}
