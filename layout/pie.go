package layout

import (
	"math"

	"github.com/gogpu/ggchart/legend"
	"github.com/gogpu/ggchart/scale"
	"github.com/gogpu/ggchart/scene"
)

// pieLayout partitions the full circle proportionally to the values, in
// dataset order.
type pieLayout struct{}

func (pieLayout) Kind() Kind { return Pie }

// Slice is the angular extent of one pie value, clockwise from 12 o'clock.
type Slice struct {
	StartAngle, EndAngle float64
}

// Partition returns one slice per value. Slices follow the input order (no
// sorting) and their sweeps sum to 2π when the total is positive. A zero
// total yields zero-sweep slices.
func Partition(values []float64) []Slice {
	var sum float64
	for _, v := range values {
		sum += v
	}
	k := 0.0
	if sum > 0 {
		k = 2 * math.Pi / sum
	}
	out := make([]Slice, len(values))
	a := 0.0
	for i, v := range values {
		out[i] = Slice{StartAngle: a, EndAngle: a + v*k}
		a = out[i].EndAngle
	}
	return out
}

// Percent returns value's share of sum as a percentage rounded to one
// decimal place.
func Percent(value, sum float64) float64 {
	if sum == 0 {
		return 0
	}
	return math.Round(value/sum*1000) / 10
}

func (pieLayout) Compute(ds Dataset, d Dims) (*Result, error) {
	data, ok := ds.(Categories)
	if !ok {
		return nil, ErrDatasetMismatch
	}

	values := make([]float64, len(data))
	names := make([]string, len(data))
	var sum float64
	for i, c := range data {
		if err := checkFinite(c.Value, "pie value"); err != nil {
			return nil, err
		}
		if c.Value < 0 {
			return nil, &scale.InvalidDomainError{Min: c.Value, Max: c.Value, Reason: "negative pie value " + c.Name}
		}
		values[i] = c.Value
		names[i] = c.Name
		sum += c.Value
	}

	radius := math.Min(d.Width, d.Height) / 2
	outer := math.Max(0, radius-pieMargin)
	inner := math.Min(math.Max(0, d.InnerRadius), outer)
	// Labels sit at the centroid of an arc spanning [0, radius+pad].
	labelR := (radius + pieLabelPad) / 2

	res := &Result{
		Margins: Margins{},
		Origin:  scene.Point{X: d.Width / 2, Y: d.Height / 2},
		Plot:    scene.Rect{MinX: -d.Width / 2, MinY: -d.Height / 2, MaxX: d.Width / 2, MaxY: d.Height / 2},
		Palette: scale.Pastel1,
		Legend: legend.Spec{
			Labels:      names,
			Swatch:      scene.SwatchRect,
			Origin:      scene.Point{X: 20, Y: 20},
			LabelOffset: scene.Point{X: 20, Y: 10},
		},
	}
	if len(data) == 0 {
		res.Warnings = append(res.Warnings, ErrEmptyDataset)
		return res, nil
	}

	slices := Partition(values)
	for i, c := range data {
		arc := scene.ArcShape{
			InnerRadius: inner,
			OuterRadius: outer,
			StartAngle:  slices[i].StartAngle,
			EndAngle:    slices[i].EndAngle,
		}
		res.Marks = append(res.Marks, scene.Mark{
			Key:       c.Name,
			Kind:      scene.KindArc,
			Shape:     arc,
			FillIndex: i,
			Opacity:   1,
			Datum:     scene.Datum{Category: c.Name, Index: i, Value: c.Value},
			Timing:    scene.Timing{Duration: PieDuration},
			Hoverable: true,
		})
	}
	for i, c := range data {
		arc := res.Marks[i].Shape.(scene.ArcShape)
		at := arc.Centroid(labelR)
		res.Marks = append(res.Marks, scene.Mark{
			Key:  "label:" + c.Name,
			Kind: scene.KindLabel,
			Shape: scene.LabelShape{
				X:        at.X,
				Y:        at.Y,
				Text:     FormatNumber(Percent(c.Value, sum)) + "%",
				Anchor:   scene.AnchorMiddle,
				FontSize: pieLabelFont,
			},
			FillIndex: i,
			Opacity:   1,
			Datum:     scene.Datum{Category: c.Name, Index: i, Value: c.Value},
		})
	}
	return res, nil
}
