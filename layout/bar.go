package layout

import (
	"math"

	"github.com/gogpu/ggchart/scale"
	"github.com/gogpu/ggchart/scene"
)

// barLayout draws one rect per category over a niced [0, max] value axis.
type barLayout struct{}

func (barLayout) Kind() Kind { return Bar }

func (barLayout) Compute(ds Dataset, d Dims) (*Result, error) {
	data, ok := ds.(Categories)
	if !ok {
		return nil, ErrDatasetMismatch
	}

	m := d.Margins
	w, h := d.plot(m)
	res := newResult(m, w, h)
	res.Palette = scale.Azure

	names := make([]string, len(data))
	values := make([]float64, len(data))
	for i, c := range data {
		names[i] = c.Name
		values[i] = c.Value
	}

	if err := checkAll(values, "bar value"); err != nil {
		return nil, err
	}

	x := scale.NewBand(names, 0, w, bandPadding)
	y, err := scale.NewLinear(0, positiveMax(values...), h, 0, scale.DefaultTicks)
	if err != nil {
		return nil, err
	}
	res.XAxis = bandAxis(x, h)
	res.YAxis = linearAxis(scene.OrientLeft, y, scale.DefaultTicks, 0, w)
	res.Baseline = y.Map(0)

	if len(data) == 0 {
		res.Warnings = append(res.Warnings, ErrEmptyDataset)
		return res, nil
	}

	bw := x.Bandwidth()
	for _, c := range data {
		x0, _ := x.Map(c.Name)
		top, base := y.Map(c.Value), y.Map(0)
		res.Marks = append(res.Marks, scene.Mark{
			Key:       c.Name,
			Kind:      scene.KindRect,
			Shape:     scene.RectShape{X: x0, Y: math.Min(top, base), Width: bw, Height: math.Abs(base - top)},
			Opacity:   0.8,
			Datum:     scene.Datum{Category: c.Name, Value: c.Value},
			Timing:    scene.Timing{Duration: BarDuration},
			Hoverable: true,
		})
	}
	return res, nil
}
