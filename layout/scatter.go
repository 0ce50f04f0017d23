package layout

import (
	"strconv"

	"github.com/gogpu/ggchart/legend"
	"github.com/gogpu/ggchart/scale"
	"github.com/gogpu/ggchart/scene"
)

// scatterLayout draws one circle per point with both axes starting at 0.
type scatterLayout struct{}

func (scatterLayout) Kind() Kind { return Scatter }

func (scatterLayout) Compute(ds Dataset, d Dims) (*Result, error) {
	series, ok := ds.(Points)
	if !ok {
		return nil, ErrDatasetMismatch
	}

	names := make([]string, len(series))
	var xs, ys []float64
	for i, s := range series {
		names[i] = s.Name
		for _, p := range s.Points {
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}
	}

	if err := checkAll(xs, "x coordinate"); err != nil {
		return nil, err
	}
	if err := checkAll(ys, "y coordinate"); err != nil {
		return nil, err
	}

	m := FitMargins(d.Margins, names, d.Measurer)
	w, h := d.plot(m)
	res := newResult(m, w, h)

	x, err := scale.NewLinear(0, positiveMax(xs...), 0, w, 0)
	if err != nil {
		return nil, err
	}
	y, err := scale.NewLinear(0, positiveMax(ys...), h, 0, 0)
	if err != nil {
		return nil, err
	}
	res.XAxis = linearAxis(scene.OrientBottom, x, scale.DefaultTicks, h, h)
	res.YAxis = linearAxis(scene.OrientLeft, y, scale.DefaultTicks, 0, w)
	res.Legend = legend.Spec{
		Labels:      names,
		Swatch:      scene.SwatchCircle,
		Origin:      legendOrigin(m, w).Add(scene.Point{X: legendGap}),
		LabelOffset: scene.Point{X: 15, Y: 3},
	}

	if len(xs) == 0 {
		res.Warnings = append(res.Warnings, ErrEmptyDataset)
		return res, nil
	}

	for si, s := range series {
		for pi, p := range s.Points {
			res.Marks = append(res.Marks, scene.Mark{
				Key:       strconv.Itoa(si) + ":" + strconv.Itoa(pi),
				Kind:      scene.KindCircle,
				Shape:     scene.CircleShape{CX: x.Map(p.X), CY: y.Map(p.Y), R: pointRadius},
				FillIndex: si,
				Opacity:   1,
				Datum:     scene.Datum{Series: s.Name, Index: pi, X: p.X, Y: p.Y},
				Hoverable: true,
			})
		}
	}
	return res, nil
}
