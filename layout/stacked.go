package layout

import (
	"math"

	"github.com/gogpu/ggchart/legend"
	"github.com/gogpu/ggchart/scale"
	"github.com/gogpu/ggchart/scene"
)

// stackedLayout stacks the fields of each record into cumulative bands.
type stackedLayout struct{}

func (stackedLayout) Kind() Kind { return StackedBar }

// Band is the cumulative [Low, High] extent of one field in one category.
type Band struct {
	Low, High float64
}

// Stack computes bands[field][record] by accumulating values in field
// order, and the per-record totals.
func Stack(values [][]float64, fields int) (bands [][]Band, totals []float64) {
	bands = make([][]Band, fields)
	for j := range bands {
		bands[j] = make([]Band, len(values))
	}
	totals = make([]float64, len(values))
	for i, row := range values {
		low := 0.0
		for j := 0; j < fields; j++ {
			high := low + row[j]
			bands[j][i] = Band{Low: low, High: high}
			low = high
		}
		totals[i] = low
	}
	return bands, totals
}

func (stackedLayout) Compute(ds Dataset, d Dims) (*Result, error) {
	recs, ok := ds.(Records)
	if !ok {
		return nil, ErrDatasetMismatch
	}

	fields, warnings := fieldNames(recs)
	m := FitMargins(d.Margins, fields, d.Measurer)
	w, h := d.plot(m)
	res := newResult(m, w, h)
	res.Warnings = warnings

	names := make([]string, len(recs))
	for i, r := range recs {
		names[i] = r.Name
	}
	values := matrix(recs, fields)
	for _, row := range values {
		if err := checkAll(row, "field value"); err != nil {
			return nil, err
		}
	}
	bands, totals := Stack(values, len(fields))

	x := scale.NewBand(names, 0, w, bandPadding)
	y, err := scale.NewLinear(0, positiveMax(totals...), h, 0, 0)
	if err != nil {
		return nil, err
	}
	res.XAxis = bandAxis(x, h)
	res.YAxis = linearAxis(scene.OrientLeft, y, scale.DefaultTicks, 0, w)
	res.Baseline = y.Map(0)
	res.Legend = legend.Spec{
		Labels:      fields,
		Swatch:      scene.SwatchRect,
		Origin:      legendOrigin(m, w),
		LabelOffset: scene.Point{X: 15, Y: 7},
	}

	if len(recs) == 0 {
		res.Warnings = append(res.Warnings, ErrEmptyDataset)
		return res, nil
	}

	bw := x.Bandwidth()
	for j, field := range fields {
		for i, r := range recs {
			b := bands[j][i]
			x0, _ := x.Map(r.Name)
			lo, hi := y.Map(b.Low), y.Map(b.High)
			res.Marks = append(res.Marks, scene.Mark{
				Key:       field + ":" + r.Name,
				Kind:      scene.KindRect,
				Shape:     scene.RectShape{X: x0, Y: math.Min(lo, hi), Width: bw, Height: math.Abs(lo - hi)},
				FillIndex: j,
				Opacity:   0.9,
				Datum:     scene.Datum{Series: field, Category: r.Name, Value: b.High - b.Low, Low: b.Low, High: b.High},
				Timing:    scene.Timing{Duration: BarDuration},
				Hoverable: true,
			})
		}
	}
	return res, nil
}
