package scale

import (
	"math"

	"github.com/aclements/go-moremath/scale"
)

// DefaultTicks is the tick count used for nicing and tick generation when
// the caller does not ask for a specific one.
const DefaultTicks = 10

// Linear is a continuous linear scale.
//
// Domain normalization and tick placement are delegated to go-moremath;
// Linear adds the range mapping and the degenerate-domain rules.
type Linear struct {
	s      scale.Linear
	r0, r1 float64
}

// NewLinear creates a linear scale mapping [domainMin, domainMax] onto
// [rangeMin, rangeMax]. The range may be inverted (e.g. [height, 0] for a
// y axis growing upwards).
//
// If nice > 0 the domain is expanded outwards to the nearest tick boundaries
// of a tick level with at most nice major ticks.
//
// NewLinear returns an *InvalidDomainError if any bound is NaN or infinite,
// or if domainMin > domainMax.
func NewLinear(domainMin, domainMax, rangeMin, rangeMax float64, nice int) (*Linear, error) {
	if !finite(domainMin) || !finite(domainMax) {
		return nil, &InvalidDomainError{Min: domainMin, Max: domainMax, Reason: "non-finite bound"}
	}
	if !finite(rangeMin) || !finite(rangeMax) {
		return nil, &InvalidDomainError{Min: domainMin, Max: domainMax, Reason: "non-finite range"}
	}
	if domainMin > domainMax {
		return nil, &InvalidDomainError{Min: domainMin, Max: domainMax, Reason: "min greater than max"}
	}

	l := &Linear{
		s:  scale.Linear{Min: domainMin, Max: domainMax},
		r0: rangeMin,
		r1: rangeMax,
	}
	if nice > 0 && domainMin < domainMax {
		l.nice(nice)
	}
	return l, nil
}

// nice rounds the domain outwards to tick boundaries.
func (l *Linear) nice(n int) {
	l.s.Nice(scale.TickOptions{Max: n})
}

// Map maps a domain value to the range. Values outside the domain are
// extrapolated.
func (l *Linear) Map(x float64) float64 {
	if l.Degenerate() {
		return (l.r0 + l.r1) / 2
	}
	return l.r0 + l.s.Map(x)*(l.r1-l.r0)
}

// Invert maps a range value back to the domain.
func (l *Linear) Invert(y float64) float64 {
	if l.Degenerate() || l.r0 == l.r1 {
		return l.s.Min
	}
	return l.s.Min + (y-l.r0)/(l.r1-l.r0)*(l.s.Max-l.s.Min)
}

// Domain returns the (possibly niced) domain bounds.
func (l *Linear) Domain() (min, max float64) {
	return l.s.Min, l.s.Max
}

// Range returns the range bounds as given to NewLinear.
func (l *Linear) Range() (r0, r1 float64) {
	return l.r0, l.r1
}

// Degenerate reports whether the domain has zero span.
func (l *Linear) Degenerate() bool {
	return l.s.Min == l.s.Max
}

// Ticks returns at most max major tick values inside the domain, in
// increasing order. A degenerate domain has a single tick at its minimum.
func (l *Linear) Ticks(max int) []float64 {
	if l.Degenerate() {
		return []float64{l.s.Min}
	}
	if max < 1 {
		max = DefaultTicks
	}
	major, _ := l.s.Ticks(scale.TickOptions{Max: max})
	return major
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
