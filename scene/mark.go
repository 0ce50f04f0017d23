package scene

import "time"

// Kind identifies the primitive a Mark draws.
type Kind uint8

const (
	KindRect Kind = iota
	KindPath
	KindArc
	KindCircle
	KindLabel
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindRect:
		return "Rect"
	case KindPath:
		return "Path"
	case KindArc:
		return "Arc"
	case KindCircle:
		return "Circle"
	case KindLabel:
		return "Label"
	default:
		return "Unknown"
	}
}

// Timing schedules the transition of one mark.
type Timing struct {
	Delay    time.Duration
	Duration time.Duration
}

// Datum is the data a mark was built from. Tooltip formatters read it.
type Datum struct {
	Series   string // Series or field name
	Category string // Category or record name
	Index    int    // Point index within the series
	Value    float64
	Low      float64 // Stacked band bounds
	High     float64
	X, Y     float64 // Scatter coordinates
}

// Mark is a drawable primitive with a stable identity.
//
// Key must be the same for the same logical datum across snapshots so the
// reconciler can match marks between frames.
type Mark struct {
	Key       string
	Kind      Kind
	Shape     Shape
	FillIndex int
	Opacity   float64

	// DashOffset is the stroke dash offset of a Path; a value equal to the
	// path length hides the whole stroke.
	DashOffset float64

	Datum  Datum
	Timing Timing

	// Hoverable marks are tooltip targets.
	Hoverable bool
}

// Bounds returns the bounds of the mark's shape, or an empty rectangle.
func (m Mark) Bounds() Rect {
	if m.Shape == nil {
		return EmptyRect()
	}
	return m.Shape.Bounds()
}
