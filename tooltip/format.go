package tooltip

import (
	"math"

	"github.com/gogpu/ggchart/layout"
	"github.com/gogpu/ggchart/scene"
)

// Formatter composes tooltip markup for a mark's datum.
type Formatter func(d scene.Datum) string

// FormatterFor returns the formatter used by charts of kind k.
func FormatterFor(k layout.Kind) Formatter {
	switch k {
	case layout.StackedBar:
		return Stacked
	case layout.Line:
		return Line
	case layout.Scatter:
		return Scatter
	default:
		return Category
	}
}

// Category formats bar and pie data as "name<br>value".
func Category(d scene.Datum) string {
	return d.Category + "<br>" + layout.FormatNumber(d.Value)
}

// Stacked formats a stacked segment as "field<br>value%", the segment
// height rounded to one decimal place.
func Stacked(d scene.Datum) string {
	v := math.Round((d.High-d.Low)*10) / 10
	return d.Series + "<br>" + layout.FormatNumber(v) + "%"
}

// Line formats a line point as "field<br>category : value".
func Line(d scene.Datum) string {
	return d.Series + "<br>" + d.Category + " : " + layout.FormatNumber(d.Value)
}

// Scatter formats a point as "series<br>x:X, y:Y".
func Scatter(d scene.Datum) string {
	return d.Series + "<br>x:" + layout.FormatNumber(d.X) + ", y:" + layout.FormatNumber(d.Y)
}
