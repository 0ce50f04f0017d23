package scene

import "github.com/gogpu/ggchart/scale"

// State is the lifecycle state of a Scene.
type State uint8

const (
	// Uninitialized scenes have never received a dataset.
	Uninitialized State = iota
	// Live scenes hold the result of at least one pass.
	Live
	// Detached scenes have been torn down and hold nothing.
	Detached
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Live:
		return "Live"
	case Detached:
		return "Detached"
	default:
		return "Unknown"
	}
}

// Orient is the side of the plot an axis is drawn on.
type Orient uint8

const (
	OrientBottom Orient = iota
	OrientLeft
)

// Tick is one axis tick.
type Tick struct {
	Value float64 // Domain value
	Pos   float64 // Position along the axis in plot coordinates
	Label string
}

// Axis describes an axis and its grid lines.
type Axis struct {
	Orient Orient
	Ticks  []Tick

	// Offset is the position of the axis line across the axis direction,
	// e.g. the plot height for a bottom axis.
	Offset float64

	// Grid is the length of grid lines drawn from each tick across the plot;
	// 0 draws ordinary short ticks.
	Grid float64
}

// Swatch is the glyph drawn next to a legend label.
type Swatch uint8

const (
	SwatchRect Swatch = iota
	SwatchLine
	SwatchCircle
)

// LegendEntry is one row of a legend, in host coordinates.
type LegendEntry struct {
	Label     string
	FillIndex int
	Swatch    Swatch
	SwatchAt  Point // Top-left of a rect, left end of a line, center of a circle
	LabelAt   Point // Text baseline start
}

// Tooltip is the overlay node showing hover content, in host coordinates.
type Tooltip struct {
	Visible       bool
	Content       string
	X, Y          float64
	Width, Height float64
}

// Transition is the start and target state of one mark for a pass.
type Transition struct {
	From, To Mark
}

// Scene is the retained description of one chart instance.
type Scene struct {
	Width, Height float64

	// Origin is the translation of the plot area within the host surface.
	Origin Point
	// Plot is the size of the plot area; marks use plot coordinates.
	Plot Rect

	XAxis   *Axis
	YAxis   *Axis
	Legend  []LegendEntry
	Tooltip Tooltip
	Palette scale.Palette

	state   State
	marks   []Mark
	index   map[string]int
	version uint64
}

// New creates an empty, uninitialized scene for a host of the given size.
func New(width, height float64) *Scene {
	return &Scene{
		Width:  width,
		Height: height,
		index:  make(map[string]int),
	}
}

// State returns the lifecycle state.
func (s *Scene) State() State { return s.state }

// Version is incremented on every mutation. Hosts can compare it to skip
// redundant redraws.
func (s *Scene) Version() uint64 { return s.version }

// Len returns the number of marks.
func (s *Scene) Len() int { return len(s.marks) }

// Marks returns the marks in draw order. The slice is owned by the scene
// and must not be modified.
func (s *Scene) Marks() []Mark { return s.marks }

// Mark returns the mark with the given key.
func (s *Scene) Mark(key string) (Mark, bool) {
	i, ok := s.index[key]
	if !ok {
		return Mark{}, false
	}
	return s.marks[i], true
}

// Set replaces the state of an existing mark. It reports false if no mark
// has m.Key.
func (s *Scene) Set(m Mark) bool {
	i, ok := s.index[m.Key]
	if !ok {
		return false
	}
	s.marks[i] = m
	s.version++
	return true
}

// Apply installs p.Next as the scene's marks and makes the scene Live.
//
// Exiting marks are dropped at once. Entering marks are placed in their
// Initial state. Updating marks keep their identity; with morph set they
// start from their current on-screen state, otherwise they replay their
// entry from the Initial state.
//
// The returned transitions, one per mark in draw order, lead each mark from
// its installed state to its target.
func (s *Scene) Apply(p Patch, baseline float64, morph bool) []Transition {
	marks := make([]Mark, len(p.Next))
	index := make(map[string]int, len(p.Next))
	trs := make([]Transition, len(p.Next))

	for i, to := range p.Next {
		from := Initial(to, baseline)
		if morph {
			if cur, ok := s.Mark(to.Key); ok && cur.Kind == to.Kind {
				from = cur
				from.Timing = to.Timing
			}
		}
		marks[i] = from
		index[to.Key] = i
		trs[i] = Transition{From: from, To: to}
	}

	s.marks = marks
	s.index = index
	s.state = Live
	s.version++
	return trs
}

// Detach releases every mark and descriptor. A detached scene stays
// detached.
func (s *Scene) Detach() {
	s.marks = nil
	s.index = make(map[string]int)
	s.XAxis, s.YAxis = nil, nil
	s.Legend = nil
	s.Tooltip = Tooltip{}
	s.state = Detached
	s.version++
}

// HitTest returns the topmost hoverable mark containing the plot-space
// point (x, y).
func (s *Scene) HitTest(x, y float64) (Mark, bool) {
	for i := len(s.marks) - 1; i >= 0; i-- {
		m := s.marks[i]
		if !m.Hoverable {
			continue
		}
		if c, ok := m.Shape.(interface{ Contains(x, y float64) bool }); ok {
			if c.Contains(x, y) {
				return m, true
			}
			continue
		}
		b := m.Bounds()
		if x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY {
			return m, true
		}
	}
	return Mark{}, false
}
