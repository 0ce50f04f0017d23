package scene

import "math"

// Shape is the geometry of a mark.
type Shape interface {
	// Bounds returns the bounding rectangle in plot coordinates.
	Bounds() Rect
}

// RectShape is an axis-aligned rectangle.
type RectShape struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

// Bounds returns the rectangle itself.
func (r RectShape) Bounds() Rect {
	return Rect{MinX: r.X, MinY: r.Y, MaxX: r.X + r.Width, MaxY: r.Y + r.Height}
}

// Contains reports whether (px, py) is inside the rectangle.
func (r RectShape) Contains(px, py float64) bool {
	return px >= r.X && px <= r.X+r.Width && py >= r.Y && py <= r.Y+r.Height
}

// CircleShape is a circle.
type CircleShape struct {
	CX, CY float64
	R      float64
}

// Bounds returns the circle's bounding square.
func (c CircleShape) Bounds() Rect {
	return Rect{MinX: c.CX - c.R, MinY: c.CY - c.R, MaxX: c.CX + c.R, MaxY: c.CY + c.R}
}

// Contains reports whether (px, py) is inside the circle.
func (c CircleShape) Contains(px, py float64) bool {
	dx, dy := px-c.CX, py-c.CY
	return dx*dx+dy*dy <= c.R*c.R
}

// ArcShape is an annular sector centered on (CX, CY).
//
// Angles are in radians, measured clockwise from 12 o'clock. An InnerRadius
// of 0 gives a pie slice; a positive one gives a donut segment.
type ArcShape struct {
	CX, CY      float64
	InnerRadius float64
	OuterRadius float64
	StartAngle  float64
	EndAngle    float64
}

// PointAt returns the point at angle a and radius r.
func (a ArcShape) PointAt(angle, r float64) Point {
	return Point{X: a.CX + r*math.Sin(angle), Y: a.CY - r*math.Cos(angle)}
}

// Sweep returns EndAngle - StartAngle.
func (a ArcShape) Sweep() float64 {
	return a.EndAngle - a.StartAngle
}

// Centroid returns the midpoint of the sector at radius r, halfway between
// the start and end angles.
func (a ArcShape) Centroid(r float64) Point {
	return a.PointAt((a.StartAngle+a.EndAngle)/2, r)
}

// Contains reports whether (px, py) lies inside the sector.
func (a ArcShape) Contains(px, py float64) bool {
	dx, dy := px-a.CX, py-a.CY
	r := math.Hypot(dx, dy)
	if r < a.InnerRadius || r > a.OuterRadius {
		return false
	}
	ang := math.Atan2(dx, -dy)
	if ang < 0 {
		ang += 2 * math.Pi
	}
	lo, hi := a.StartAngle, a.EndAngle
	if lo > hi {
		lo, hi = hi, lo
	}
	return ang >= lo && ang <= hi
}

// Bounds returns the tight bounding box of the sector: its corner points
// plus every axis extreme crossed by the sweep.
func (a ArcShape) Bounds() Rect {
	b := EmptyRect()
	for _, r := range []float64{a.InnerRadius, a.OuterRadius} {
		for _, ang := range []float64{a.StartAngle, a.EndAngle} {
			p := a.PointAt(ang, r)
			b = b.UnionPoint(p.X, p.Y)
		}
	}
	lo, hi := a.StartAngle, a.EndAngle
	if lo > hi {
		lo, hi = hi, lo
	}
	for k := math.Ceil(lo / (math.Pi / 2)); k*math.Pi/2 <= hi; k++ {
		p := a.PointAt(k*math.Pi/2, a.OuterRadius)
		b = b.UnionPoint(p.X, p.Y)
	}
	return b
}

// PathShape is an open polyline stroked with Width.
type PathShape struct {
	Points []Point
	Width  float64

	// Length is the total length of the polyline, needed before a stroke
	// reveal can start.
	Length float64
}

// NewPolyline returns a PathShape through points with its length computed.
func NewPolyline(width float64, points ...Point) PathShape {
	return PathShape{Points: points, Width: width, Length: PolylineLength(points)}
}

// PolylineLength returns the summed segment lengths of points.
func PolylineLength(points []Point) float64 {
	var l float64
	for i := 1; i < len(points); i++ {
		l += math.Hypot(points[i].X-points[i-1].X, points[i].Y-points[i-1].Y)
	}
	return l
}

// Bounds returns the bounding box of the points expanded by half the
// stroke width.
func (p PathShape) Bounds() Rect {
	if len(p.Points) == 0 {
		return EmptyRect()
	}
	b := EmptyRect()
	for _, pt := range p.Points {
		b = b.UnionPoint(pt.X, pt.Y)
	}
	hw := p.Width / 2
	return Rect{MinX: b.MinX - hw, MinY: b.MinY - hw, MaxX: b.MaxX + hw, MaxY: b.MaxY + hw}
}

// Anchor is the horizontal alignment of a label relative to its position.
type Anchor uint8

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// String returns the SVG text-anchor keyword.
func (a Anchor) String() string {
	switch a {
	case AnchorMiddle:
		return "middle"
	case AnchorEnd:
		return "end"
	default:
		return "start"
	}
}

// LabelShape is a text label positioned at (X, Y).
type LabelShape struct {
	X, Y     float64
	Text     string
	Anchor   Anchor
	FontSize float64
}

// Bounds returns a zero-size rectangle at the anchor point; label extents
// depend on the host's fonts.
func (l LabelShape) Bounds() Rect {
	return Rect{MinX: l.X, MinY: l.Y, MaxX: l.X, MaxY: l.Y}
}
