package text

import (
	"unicode/utf8"

	"golang.org/x/text/width"
)

// DefaultCharWidth is the per-character advance assumed by Estimate, in
// scene units, for a 12px sans-serif label.
const DefaultCharWidth = 7

// Measurer reports the rendered width of a label in scene units.
type Measurer interface {
	Width(label string) float64
}

// Estimate is a Measurer that assumes every character has the same advance.
// Wide and fullwidth runes (CJK ideographs, fullwidth forms) count as two
// characters.
type Estimate struct {
	// CharWidth is the advance of a narrow character. Zero means
	// DefaultCharWidth.
	CharWidth float64
}

// Width implements Measurer.
func (e Estimate) Width(label string) float64 {
	cw := e.CharWidth
	if cw <= 0 {
		cw = DefaultCharWidth
	}
	return float64(Columns(label)) * cw
}

// Columns returns the number of narrow columns label occupies.
func Columns(label string) int {
	n := 0
	for i := 0; i < len(label); {
		r, size := utf8.DecodeRuneInString(label[i:])
		i += size
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

// MaxWidth returns the widest of labels according to m, or 0 if labels is
// empty.
func MaxWidth(m Measurer, labels []string) float64 {
	var max float64
	for _, l := range labels {
		if w := m.Width(l); w > max {
			max = w
		}
	}
	return max
}
