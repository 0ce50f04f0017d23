package scale

// Band is a discrete scale slicing a range into one equal slot per category.
//
// Each slot is Step() wide; the band drawn inside it is Bandwidth() =
// Step() * (1 - padding) wide and centered in the slot, so the gap between
// neighbouring bands is uniform.
type Band struct {
	categories []string
	index      map[string]int
	r0, r1     float64
	padding    float64
	step       float64
}

// NewBand creates a band scale over the ordered categories. padding is
// clamped to [0, 1]. Duplicate categories keep their first slot.
func NewBand(categories []string, rangeMin, rangeMax, padding float64) *Band {
	if padding < 0 {
		padding = 0
	} else if padding > 1 {
		padding = 1
	}
	b := &Band{
		categories: make([]string, 0, len(categories)),
		index:      make(map[string]int, len(categories)),
		r0:         rangeMin,
		r1:         rangeMax,
		padding:    padding,
	}
	for _, c := range categories {
		if _, dup := b.index[c]; dup {
			continue
		}
		b.index[c] = len(b.categories)
		b.categories = append(b.categories, c)
	}
	if n := len(b.categories); n > 0 {
		b.step = (rangeMax - rangeMin) / float64(n)
	}
	return b
}

// Map returns the start coordinate of the band for category. The second
// result is false if category is not in the domain, in which case the range
// start is returned.
func (b *Band) Map(category string) (float64, bool) {
	i, ok := b.index[category]
	if !ok {
		return b.r0, false
	}
	return b.r0 + b.step*float64(i) + b.step*b.padding/2, true
}

// Center returns the center coordinate of the band for category.
func (b *Band) Center(category string) (float64, bool) {
	x, ok := b.Map(category)
	return x + b.Bandwidth()/2, ok
}

// Bandwidth returns the width of a single band.
func (b *Band) Bandwidth() float64 {
	return b.step * (1 - b.padding)
}

// Step returns the width of a slot, band plus gap.
func (b *Band) Step() float64 {
	return b.step
}

// Domain returns the categories in slot order.
func (b *Band) Domain() []string {
	return b.categories
}

// Range returns the range bounds.
func (b *Band) Range() (r0, r1 float64) {
	return b.r0, b.r1
}
