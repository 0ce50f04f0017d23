package layout

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gogpu/ggchart/legend"
	"github.com/gogpu/ggchart/scale"
	"github.com/gogpu/ggchart/scene"
	"github.com/gogpu/ggchart/text"
)

// Kind selects a layout strategy.
type Kind uint8

const (
	Bar Kind = iota
	StackedBar
	Line
	Pie
	Scatter
)

var kindNames = [...]string{"bar", "stacked-bar", "line", "pie", "scatter"}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind parses a kind name as returned by String.
func ParseKind(s string) (Kind, error) {
	for i, n := range kindNames {
		if strings.EqualFold(s, n) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Transition durations per chart kind.
const (
	BarDuration   = 500 * time.Millisecond
	LineDuration  = 800 * time.Millisecond
	PieDuration   = 300 * time.Millisecond
	PointDuration = 250 * time.Millisecond
)

const (
	bandPadding  = 0.2
	legendPad    = 35 // Room for swatch and gap beside the widest label
	legendGap    = 10 // Distance from the plot edge to the legend swatch
	pointRadius  = 5
	strokeWidth  = 3
	pieMargin    = 10
	pieLabelPad  = 20
	pieLabelFont = 20
)

// Margins is the space reserved around the plot area.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// DefaultMargins returns the configured-default margins for k. Line and
// scatter charts reserve a wider right margin for their legend.
func DefaultMargins(k Kind) Margins {
	m := Margins{Top: 30, Right: 30, Bottom: 30, Left: 30}
	if k == Line || k == Scatter {
		m.Right = 80
	}
	return m
}

// FitMargins returns m with the right margin grown to fit the widest legend
// label. It never shrinks a margin.
func FitMargins(m Margins, labels []string, meas text.Measurer) Margins {
	if len(labels) == 0 {
		return m
	}
	if meas == nil {
		meas = text.Estimate{}
	}
	if need := text.MaxWidth(meas, labels) + legendPad; need > m.Right {
		m.Right = need
	}
	return m
}

// Dims are the dimensions a strategy lays out into.
type Dims struct {
	Width, Height float64
	Margins       Margins

	// InnerRadius is the hole radius of Pie charts; 0 draws a full pie.
	InnerRadius float64

	// Measurer sizes legend labels. nil uses text.Estimate.
	Measurer text.Measurer
}

// plot returns the plot area size inside m.
func (d Dims) plot(m Margins) (w, h float64) {
	w = math.Max(0, d.Width-m.Left-m.Right)
	h = math.Max(0, d.Height-m.Top-m.Bottom)
	return w, h
}

// Result is the output of a layout pass.
type Result struct {
	Marks []scene.Mark

	// XAxis and YAxis are nil for charts without axes.
	XAxis, YAxis *scene.Axis

	Legend  legend.Spec
	Palette scale.Palette

	// Margins are the effective margins after legend fitting.
	Margins Margins
	// Origin is the translation of the plot area in the host.
	Origin scene.Point
	// Plot is the plot area in plot coordinates.
	Plot scene.Rect
	// Baseline is the y coordinate rects grow from when they enter.
	Baseline float64

	// Warnings are non-fatal problems with the dataset.
	Warnings []error
}

// Strategy computes the layout of one chart kind.
type Strategy interface {
	Kind() Kind
	Compute(ds Dataset, dims Dims) (*Result, error)
}

// New returns the strategy for k.
func New(k Kind) (Strategy, error) {
	switch k {
	case Bar:
		return barLayout{}, nil
	case StackedBar:
		return stackedLayout{}, nil
	case Line:
		return lineLayout{}, nil
	case Pie:
		return pieLayout{}, nil
	case Scatter:
		return scatterLayout{}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownKind, k)
}

// newResult fills the frame shared by all cartesian layouts.
func newResult(m Margins, w, h float64) *Result {
	return &Result{
		Margins:  m,
		Origin:   scene.Point{X: m.Left, Y: m.Top},
		Plot:     scene.Rect{MaxX: w, MaxY: h},
		Baseline: h,
		Palette:  scale.Pastel1,
	}
}

// legendOrigin is the swatch anchor of the first legend row to the right of
// the plot.
func legendOrigin(m Margins, w float64) scene.Point {
	return scene.Point{X: m.Left + w + legendGap, Y: m.Top}
}

// bandAxis returns a bottom axis with one tick at the center of each band.
func bandAxis(b *scale.Band, h float64) *scene.Axis {
	ax := &scene.Axis{Orient: scene.OrientBottom, Offset: h}
	for _, c := range b.Domain() {
		pos, _ := b.Center(c)
		ax.Ticks = append(ax.Ticks, scene.Tick{Pos: pos, Label: c})
	}
	return ax
}

// linearAxis returns an axis with ticks from l. grid is the grid line length.
func linearAxis(o scene.Orient, l *scale.Linear, max int, offset, grid float64) *scene.Axis {
	ax := &scene.Axis{Orient: o, Offset: offset, Grid: grid}
	for _, v := range l.Ticks(max) {
		ax.Ticks = append(ax.Ticks, scene.Tick{Value: v, Pos: l.Map(v), Label: FormatNumber(v)})
	}
	return ax
}

// FormatNumber formats v with the shortest representation, hiding
// floating-point noise such as 0.30000000000000004.
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(math.Round(v*1e9)/1e9, 'f', -1, 64)
}

// positiveMax returns the largest of vs, never below 0.
func positiveMax(vs ...float64) float64 {
	m := 0.0
	for _, v := range vs {
		if v > m || math.IsNaN(v) {
			m = v
		}
	}
	return m
}

// checkFinite returns an InvalidDomainError if v is NaN or infinite.
func checkFinite(v float64, what string) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &scale.InvalidDomainError{Min: v, Max: v, Reason: "non-finite " + what}
	}
	return nil
}

// checkAll returns the first checkFinite error among vs.
func checkAll(vs []float64, what string) error {
	for _, v := range vs {
		if err := checkFinite(v, what); err != nil {
			return err
		}
	}
	return nil
}
