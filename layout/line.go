package layout

import (
	"strconv"
	"time"

	"github.com/gogpu/ggchart/legend"
	"github.com/gogpu/ggchart/scale"
	"github.com/gogpu/ggchart/scene"
)

// lineLayout draws one polyline per field over the record index, with a
// point marker at every record.
type lineLayout struct{}

func (lineLayout) Kind() Kind { return Line }

func (lineLayout) Compute(ds Dataset, d Dims) (*Result, error) {
	recs, ok := ds.(Records)
	if !ok {
		return nil, ErrDatasetMismatch
	}

	fields, warnings := fieldNames(recs)
	m := FitMargins(d.Margins, fields, d.Measurer)
	w, h := d.plot(m)
	res := newResult(m, w, h)
	res.Warnings = warnings

	values := matrix(recs, fields)
	var all []float64
	for _, row := range values {
		all = append(all, row...)
	}

	if err := checkAll(all, "field value"); err != nil {
		return nil, err
	}

	n := len(recs)
	x, err := scale.NewLinear(0, float64(max(n-1, 0)), 0, w, 0)
	if err != nil {
		return nil, err
	}
	// One y domain for every field so the lines are comparable.
	top := positiveMax(all...)
	y, err := scale.NewLinear(0, top, h, 0, 0)
	if err != nil {
		return nil, err
	}

	xAxis := &scene.Axis{Orient: scene.OrientBottom, Offset: h, Grid: h}
	for i, r := range recs {
		xAxis.Ticks = append(xAxis.Ticks, scene.Tick{Value: float64(i), Pos: x.Map(float64(i)), Label: r.Name})
	}
	res.XAxis = xAxis
	res.YAxis = linearAxis(scene.OrientLeft, y, lineTicks(top), 0, w)
	res.Legend = legend.Spec{
		Labels:      fields,
		Swatch:      scene.SwatchLine,
		Origin:      legendOrigin(m, w),
		LabelOffset: scene.Point{X: 25, Y: 3},
	}

	if n == 0 {
		res.Warnings = append(res.Warnings, ErrEmptyDataset)
		return res, nil
	}

	stagger := LineDuration / time.Duration(n)
	for j, field := range fields {
		pts := make([]scene.Point, n)
		for i := range recs {
			pts[i] = scene.Point{X: x.Map(float64(i)), Y: y.Map(values[i][j])}
		}
		res.Marks = append(res.Marks, scene.Mark{
			Key:       field,
			Kind:      scene.KindPath,
			Shape:     scene.NewPolyline(strokeWidth, pts...),
			FillIndex: j,
			Opacity:   1,
			Datum:     scene.Datum{Series: field},
			Timing:    scene.Timing{Duration: LineDuration},
		})
		for i, r := range recs {
			res.Marks = append(res.Marks, scene.Mark{
				Key:       field + ":" + strconv.Itoa(i),
				Kind:      scene.KindCircle,
				Shape:     scene.CircleShape{CX: pts[i].X, CY: pts[i].Y, R: pointRadius},
				FillIndex: j,
				Opacity:   1,
				Datum:     scene.Datum{Series: field, Category: r.Name, Index: i, Value: values[i][j]},
				Timing:    scene.Timing{Delay: stagger * time.Duration(i), Duration: PointDuration},
				Hoverable: true,
			})
		}
	}
	return res, nil
}

// lineTicks is the y tick budget of a line chart: one tick per 5 units of
// the largest value, at least one.
func lineTicks(top float64) int {
	return max(1, int(top/5))
}
