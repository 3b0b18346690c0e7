package canvas

// Scale holds a clamped linear mapping between a data interval (domain) and
// a display interval (range).
type Scale struct {
	domainMin, domainMax float64
	rangeMin, rangeMax   float64
}

// NewScale creates a scale mapping [domainMin, domainMax] onto
// [rangeMin, rangeMax].
func NewScale(domainMin, domainMax, rangeMin, rangeMax float64) Scale {
	return Scale{
		domainMin: domainMin,
		domainMax: domainMax,
		rangeMin:  rangeMin,
		rangeMax:  rangeMax,
	}
}

// Linear translates a value from the domain to the range, clamped to the
// range endpoints.
func (s Scale) Linear(x float64) float64 {
	return clamp(s.Project(x), s.rangeMin, s.rangeMax)
}

// Project translates a value from the domain to the range without clamping.
// Values outside the domain extrapolate past the range endpoints.
func (s Scale) Project(x float64) float64 {
	p := (x - s.domainMin) / (s.domainMax - s.domainMin)
	return s.rangeMin + p*(s.rangeMax-s.rangeMin)
}

// InvLinear translates a value from the range back to the domain, clamped to
// the domain endpoints.
func (s Scale) InvLinear(r float64) float64 {
	p := (r - s.rangeMin) / (s.rangeMax - s.rangeMin)
	d := s.domainMin + p*(s.domainMax-s.domainMin)
	return clamp(d, s.domainMin, s.domainMax)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
