// Package tooltip implements the hover state machine of a chart's tooltip.
//
// The tooltip is Hidden until the pointer enters a mark, then Shown at the
// mark's top-left corner. It hides again only once the pointer has left
// both the mark and the tooltip itself, so moving the cursor from a mark
// onto its tooltip does not make it flicker.
package tooltip

import "github.com/gogpu/ggchart/scene"

// State is the visibility state of the tooltip.
type State uint8

const (
	Hidden State = iota
	Shown
)

// String returns the state name.
func (s State) String() string {
	if s == Shown {
		return "Shown"
	}
	return "Hidden"
}

// Default overlay size. Scatter tooltips hold one line less and use
// ScatterHeight.
const (
	Width         = 80
	Height        = 48
	ScatterHeight = 42
)

// Controller tracks hover state for one chart. It is not safe for
// concurrent use.
type Controller struct {
	format Formatter
	origin scene.Point
	width  float64
	height float64

	state    State
	key      string
	content  string
	pos      scene.Point
	overMark bool
	overTip  bool
}

// NewController creates a hidden tooltip using format for its content.
func NewController(format Formatter) *Controller {
	if format == nil {
		format = Category
	}
	return &Controller{format: format, width: Width, height: Height}
}

// SetOrigin sets the plot origin used to convert mark bounds into host
// coordinates.
func (c *Controller) SetOrigin(p scene.Point) { c.origin = p }

// SetSize sets the overlay size.
func (c *Controller) SetSize(w, h float64) { c.width, c.height = w, h }

// EnterMark shows the tooltip for m.
func (c *Controller) EnterMark(m scene.Mark) {
	b := m.Bounds()
	if b.IsEmpty() {
		return
	}
	c.overMark = true
	c.key = m.Key
	c.content = c.format(m.Datum)
	c.pos = scene.Point{X: b.MinX, Y: b.MinY}.Add(c.origin)
	c.state = Shown
}

// LeaveMark records that the pointer left the hovered mark.
func (c *Controller) LeaveMark() {
	c.overMark = false
	c.update()
}

// EnterTooltip records that the pointer is over the tooltip itself, which
// keeps a shown tooltip up. It never shows a hidden one.
func (c *Controller) EnterTooltip() {
	if c.state == Shown {
		c.overTip = true
	}
}

// LeaveTooltip records that the pointer left the tooltip.
func (c *Controller) LeaveTooltip() {
	c.overTip = false
	c.update()
}

// Forget hides the tooltip if it belongs to key, e.g. because the mark left
// the scene.
func (c *Controller) Forget(key string) {
	if c.key == key {
		c.Reset()
	}
}

// Reset returns to the initial hidden state.
func (c *Controller) Reset() {
	c.state = Hidden
	c.key = ""
	c.content = ""
	c.pos = scene.Point{}
	c.overMark, c.overTip = false, false
}

func (c *Controller) update() {
	if !c.overMark && !c.overTip {
		c.state = Hidden
	}
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Key returns the key of the mark the tooltip was last shown for.
func (c *Controller) Key() string { return c.key }

// Content returns the tooltip markup.
func (c *Controller) Content() string { return c.content }

// Position returns the top-left corner of the tooltip in host coordinates.
func (c *Controller) Position() scene.Point { return c.pos }

// Node returns the overlay descriptor for the scene.
func (c *Controller) Node() scene.Tooltip {
	return scene.Tooltip{
		Visible: c.state == Shown,
		Content: c.content,
		X:       c.pos.X,
		Y:       c.pos.Y,
		Width:   c.width,
		Height:  c.height,
	}
}
