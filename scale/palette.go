package scale

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is a fixed list of categorical colors indexed by series ordinal.
// Indices wrap around, so any non-negative ordinal has a color.
type Palette []colorful.Color

// Pastel1 is the qualitative ColorBrewer Pastel1 scheme, the default palette
// for multi-series charts.
var Pastel1 = MustPalette(
	"#fbb4ae", "#b3cde3", "#ccebc5", "#decbe4", "#fed9a6",
	"#ffffcc", "#e5d8bd", "#fddaec", "#f2f2f2",
)

// Azure is the single-color palette used by plain bar charts.
var Azure = MustPalette("#0080ff")

// ParsePalette builds a palette from "#rrggbb" strings.
func ParsePalette(hex ...string) (Palette, error) {
	p := make(Palette, 0, len(hex))
	for _, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, err
		}
		p = append(p, c)
	}
	return p, nil
}

// MustPalette is like ParsePalette but panics on a malformed color.
func MustPalette(hex ...string) Palette {
	p, err := ParsePalette(hex...)
	if err != nil {
		panic("scale: " + err.Error())
	}
	return p
}

// Len returns the number of distinct colors.
func (p Palette) Len() int { return len(p) }

// Color returns the color for ordinal i. An empty palette yields black.
func (p Palette) Color(i int) color.Color {
	if len(p) == 0 {
		return color.Black
	}
	return p[wrap(i, len(p))]
}

// Hex returns the "#rrggbb" form of the color for ordinal i.
func (p Palette) Hex(i int) string {
	if len(p) == 0 {
		return "#000000"
	}
	return p[wrap(i, len(p))].Hex()
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
