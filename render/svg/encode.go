// Package svg encodes a chart scene as a static SVG document.
//
// The encoder draws one frame: the scene exactly as it is when Encode is
// called. Animated output is produced by encoding the scene once per
// frame.
package svg

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/gogpu/ggchart/scene"
)

// ErrDetached is returned when encoding a detached scene.
var ErrDetached = errors.New("svg: scene is detached")

const (
	fontFamily = `font-family="sans-serif"`
	fontSize   = 12
	tickSize   = 6
	axisStroke = "stroke:#000;stroke-width:1"
	gridStroke = "stroke:#ddd;stroke-width:1"
)

// Encode writes s to w as SVG.
func Encode(w io.Writer, s *scene.Scene) error {
	if s.State() == scene.Detached {
		return ErrDetached
	}
	ew := &errWriter{w: w}
	canvas := svgo.New(ew)
	canvas.Start(int(math.Ceil(s.Width)), int(math.Ceil(s.Height)), fontFamily, fmt.Sprintf(`font-size="%d"`, fontSize))

	canvas.Group(translate(s.Origin))
	if s.YAxis != nil {
		axis(canvas, s.YAxis)
	}
	if s.XAxis != nil {
		axis(canvas, s.XAxis)
	}
	for _, m := range s.Marks() {
		mark(canvas, s, m)
	}
	canvas.Gend()

	legend(canvas, s)
	tooltip(canvas, s.Tooltip)

	canvas.End()
	return ew.err
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

func translate(p scene.Point) string {
	return fmt.Sprintf(`transform="translate(%s,%s)"`, num(p.X), num(p.Y))
}

// num formats v with at most three decimals.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // no "-0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func px(v float64) int {
	return int(math.Round(v))
}

func axis(canvas *svgo.SVG, a *scene.Axis) {
	canvas.Group(axisClass(a.Orient))
	defer canvas.Gend()

	switch a.Orient {
	case scene.OrientBottom:
		if n := len(a.Ticks); n > 0 {
			canvas.Line(px(a.Ticks[0].Pos), px(a.Offset), px(a.Ticks[n-1].Pos), px(a.Offset), axisStroke)
		}
		for _, t := range a.Ticks {
			x, y := px(t.Pos), px(a.Offset)
			if a.Grid > 0 {
				canvas.Line(x, y, x, px(a.Offset-a.Grid), gridStroke)
			} else {
				canvas.Line(x, y, x, y+tickSize, axisStroke)
			}
			canvas.Text(x, y+tickSize+fontSize, t.Label, `text-anchor="middle"`)
		}
	case scene.OrientLeft:
		if n := len(a.Ticks); n > 0 {
			canvas.Line(px(a.Offset), px(a.Ticks[0].Pos), px(a.Offset), px(a.Ticks[n-1].Pos), axisStroke)
		}
		for _, t := range a.Ticks {
			x, y := px(a.Offset), px(t.Pos)
			if a.Grid > 0 {
				canvas.Line(x, y, px(a.Offset+a.Grid), y, gridStroke)
			} else {
				canvas.Line(x-tickSize, y, x, y, axisStroke)
			}
			canvas.Text(x-tickSize-3, y, t.Label, `text-anchor="end"`, `dy=".32em"`)
		}
	}
}

func axisClass(o scene.Orient) string {
	if o == scene.OrientLeft {
		return `class="axis axis-y"`
	}
	return `class="axis axis-x"`
}

func mark(canvas *svgo.SVG, s *scene.Scene, m scene.Mark) {
	fill := s.Palette.Hex(m.FillIndex)
	opacity := fmt.Sprintf(`opacity="%s"`, num(m.Opacity))
	id := fmt.Sprintf(`data-key="%s"`, attrEscape(m.Key))

	switch sh := m.Shape.(type) {
	case scene.RectShape:
		if sh.Height <= 0 || sh.Width <= 0 {
			return
		}
		canvas.Path(rectPath(sh), "fill:"+fill, opacity, id)
	case scene.ArcShape:
		d := arcPath(sh)
		if d == "" {
			return
		}
		canvas.Path(d, "fill:"+fill+";stroke:#fff;stroke-width:1", opacity, id)
	case scene.PathShape:
		d := polyline(sh.Points)
		if d == "" {
			return
		}
		canvas.Path(d,
			fmt.Sprintf("fill:none;stroke:%s;stroke-width:%s", fill, num(sh.Width)),
			fmt.Sprintf(`stroke-dasharray="%s %s"`, num(sh.Length), num(sh.Length)),
			fmt.Sprintf(`stroke-dashoffset="%s"`, num(m.DashOffset)),
			opacity, id)
	case scene.CircleShape:
		canvas.Path(circlePath(sh), "fill:"+fill, opacity, id)
	case scene.LabelShape:
		style := fmt.Sprintf(`text-anchor="%s"`, sh.Anchor)
		if sh.FontSize > 0 {
			style += fmt.Sprintf(` font-size="%s"`, num(sh.FontSize))
		}
		canvas.Text(px(sh.X), px(sh.Y), sh.Text, style, opacity)
	}
}

func rectPath(r scene.RectShape) string {
	return fmt.Sprintf("M%s %sh%sv%sh%sZ", num(r.X), num(r.Y), num(r.Width), num(r.Height), num(-r.Width))
}

func circlePath(c scene.CircleShape) string {
	r := num(c.R)
	return fmt.Sprintf("M%s %sa%s %s 0 1 0 %s 0a%s %s 0 1 0 %s 0Z",
		num(c.CX-c.R), num(c.CY), r, r, num(2*c.R), r, r, num(-2*c.R))
}

func polyline(pts []scene.Point) string {
	if len(pts) < 2 {
		return ""
	}
	var b strings.Builder
	for i, p := range pts {
		if i == 0 {
			b.WriteByte('M')
		} else {
			b.WriteByte('L')
		}
		b.WriteString(num(p.X))
		b.WriteByte(' ')
		b.WriteString(num(p.Y))
	}
	return b.String()
}

// arcPath returns the outline of an annular sector. Angles grow clockwise
// on screen, which is SVG's positive sweep direction.
func arcPath(a scene.ArcShape) string {
	sweep := a.Sweep()
	if sweep <= 0 || a.OuterRadius <= 0 {
		return ""
	}
	if sweep >= 2*math.Pi-1e-9 {
		// A single arc command cannot close a full circle.
		mid := a.StartAngle + math.Pi
		first, second := a, a
		first.EndAngle = mid
		second.StartAngle = mid
		second.EndAngle = a.StartAngle + 2*math.Pi
		return arcPath(first) + arcPath(second)
	}
	large := 0
	if sweep > math.Pi {
		large = 1
	}

	var b strings.Builder
	p0 := a.PointAt(a.StartAngle, a.OuterRadius)
	p1 := a.PointAt(a.EndAngle, a.OuterRadius)
	ro := num(a.OuterRadius)
	fmt.Fprintf(&b, "M%s %sA%s %s 0 %d 1 %s %s", num(p0.X), num(p0.Y), ro, ro, large, num(p1.X), num(p1.Y))
	if a.InnerRadius > 0 {
		q1 := a.PointAt(a.EndAngle, a.InnerRadius)
		q0 := a.PointAt(a.StartAngle, a.InnerRadius)
		ri := num(a.InnerRadius)
		fmt.Fprintf(&b, "L%s %sA%s %s 0 %d 0 %s %s", num(q1.X), num(q1.Y), ri, ri, large, num(q0.X), num(q0.Y))
	} else {
		fmt.Fprintf(&b, "L%s %s", num(a.CX), num(a.CY))
	}
	b.WriteByte('Z')
	return b.String()
}

func legend(canvas *svgo.SVG, s *scene.Scene) {
	if len(s.Legend) == 0 {
		return
	}
	canvas.Group(`class="legend"`)
	defer canvas.Gend()
	for _, e := range s.Legend {
		fill := s.Palette.Hex(e.FillIndex)
		at := e.SwatchAt
		switch e.Swatch {
		case scene.SwatchRect:
			canvas.Rect(px(at.X), px(at.Y), 10, 10, "fill:"+fill)
		case scene.SwatchLine:
			canvas.Line(px(at.X), px(at.Y), px(at.X)+20, px(at.Y), fmt.Sprintf("stroke:%s;stroke-width:3", fill))
		case scene.SwatchCircle:
			canvas.Circle(px(at.X), px(at.Y), 5, "fill:"+fill)
		}
		canvas.Text(px(e.LabelAt.X), px(e.LabelAt.Y), e.Label)
	}
}

func tooltip(canvas *svgo.SVG, t scene.Tooltip) {
	if !t.Visible {
		return
	}
	canvas.Group(`class="tooltip"`)
	defer canvas.Gend()
	canvas.Rect(px(t.X), px(t.Y), px(t.Width), px(t.Height), "fill:#fff;stroke:#000;stroke-width:1", `rx="4"`)
	for i, line := range strings.Split(t.Content, "<br>") {
		canvas.Text(px(t.X+t.Width/2), px(t.Y)+(i+1)*(fontSize+4), line, `text-anchor="middle"`)
	}
}

func attrEscape(s string) string {
	return strings.NewReplacer(`&`, "&amp;", `"`, "&quot;", `<`, "&lt;", `>`, "&gt;").Replace(s)
}
