package ggchart

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gogpu/ggchart/animate"
	"github.com/gogpu/ggchart/layout"
	"github.com/gogpu/ggchart/scene"
)

// fakeHost records mounts and holds at most one pending frame request.
type fakeHost struct {
	mounts    int
	state     scene.State
	pending   func(time.Duration)
	pendingID int
	cancels   int
	notReady  bool
}

func (h *fakeHost) Mount(s *scene.Scene) {
	h.mounts++
	h.state = s.State()
}

func (h *fakeHost) RequestFrame(fn func(time.Duration)) func() {
	h.pendingID++
	id := h.pendingID
	h.pending = fn
	return func() {
		if h.pendingID == id && h.pending != nil {
			h.pending = nil
			h.cancels++
		}
	}
}

func (h *fakeHost) Ready() bool { return !h.notReady }

// flush runs the pending frame, if any.
func (h *fakeHost) flush(now time.Duration) bool {
	fn := h.pending
	if fn == nil {
		return false
	}
	h.pending = nil
	fn(now)
	return true
}

// settle advances clock in 16ms steps until no frame is pending.
func settle(t *testing.T, h *fakeHost, clock *animate.ManualClock) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if h.pending == nil {
			return
		}
		h.flush(clock.Advance(16 * time.Millisecond))
	}
	t.Fatal("animation did not settle")
}

func newTestChart(t *testing.T, k layout.Kind, opts ...Option) (*Chart, *fakeHost, *animate.ManualClock) {
	t.Helper()
	h := &fakeHost{}
	clock := &animate.ManualClock{}
	c, err := New(h, k, append([]Option{WithClock(clock)}, opts...)...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c, h, clock
}

var barData = layout.Categories{
	{Name: "aaa", Value: 5},
	{Name: "bbb", Value: 4},
	{Name: "ccc", Value: 3},
}

func rectOf(t *testing.T, c *Chart, key string) scene.RectShape {
	t.Helper()
	m, ok := c.Scene().Mark(key)
	if !ok {
		t.Fatalf("mark %q not found", key)
	}
	r, ok := m.Shape.(scene.RectShape)
	if !ok {
		t.Fatalf("mark %q shape = %T, want RectShape", key, m.Shape)
	}
	return r
}

func TestNewHostNotReady(t *testing.T) {
	if _, err := New(nil, layout.Bar); !errors.Is(err, ErrHostNotReady) {
		t.Errorf("New(nil) error = %v, want ErrHostNotReady", err)
	}
	if _, err := New(&fakeHost{notReady: true}, layout.Bar); !errors.Is(err, ErrHostNotReady) {
		t.Errorf("New(not ready) error = %v, want ErrHostNotReady", err)
	}
	if _, err := New(&fakeHost{}, layout.Kind(99)); !errors.Is(err, layout.ErrUnknownKind) {
		t.Errorf("New(unknown kind) error = %v, want ErrUnknownKind", err)
	}
}

func TestChartStartsEmpty(t *testing.T) {
	c, h, _ := newTestChart(t, layout.Line)
	if c.Scene().Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Scene().Len())
	}
	if c.Scene().State() != scene.Uninitialized {
		t.Errorf("State() = %v, want Uninitialized", c.Scene().State())
	}
	if h.mounts != 0 {
		t.Errorf("mounts = %d, want 0", h.mounts)
	}
}

func TestBarPass(t *testing.T) {
	c, h, clock := newTestChart(t, layout.Bar)
	if err := c.Update(barData); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if h.pending == nil {
		t.Fatal("expected a frame request after the pass")
	}

	// Bars enter from the baseline.
	if r := rectOf(t, c, "aaa"); r.Height != 0 || r.Y != 300 {
		t.Errorf("initial rect = %+v, want zero height at y=300", r)
	}

	settle(t, h, clock)

	if got := c.Scene().Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	r := rectOf(t, c, "aaa")
	wantW := (600.0 - 60) / 3 * 0.8
	if math.Abs(r.Width-wantW) > 1e-9 {
		t.Errorf("bandwidth = %v, want %v", r.Width, wantW)
	}
	if math.Abs(r.Height-300) > 1e-9 || math.Abs(r.Y) > 1e-9 {
		t.Errorf("tallest bar = %+v, want full plot height", r)
	}
	if c.Animating() {
		t.Error("Animating() = true after settle")
	}
	if c.Scene().Origin != (scene.Point{X: 30, Y: 30}) {
		t.Errorf("Origin = %+v, want (30,30)", c.Scene().Origin)
	}
}

func TestUpdateIdempotent(t *testing.T) {
	c, h, clock := newTestChart(t, layout.Bar)
	if err := c.Update(barData); err != nil {
		t.Fatal(err)
	}
	settle(t, h, clock)
	before := append([]scene.Mark(nil), c.Scene().Marks()...)

	if err := c.Update(barData); err != nil {
		t.Fatal(err)
	}
	settle(t, h, clock)
	after := c.Scene().Marks()

	if len(before) != len(after) {
		t.Fatalf("mark count changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i].Key != after[i].Key || before[i].Shape != after[i].Shape {
			t.Errorf("mark %d: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestUpdateFatalKeepsScene(t *testing.T) {
	var reported []error
	c, h, clock := newTestChart(t, layout.Bar, WithErrorHandler(func(err error) {
		reported = append(reported, err)
	}))
	if err := c.Update(barData); err != nil {
		t.Fatal(err)
	}
	settle(t, h, clock)
	version := c.Scene().Version()

	err := c.Update(layout.Categories{{Name: "aaa", Value: math.NaN()}})
	var ide *InvalidDomainError
	if !errors.As(err, &ide) {
		t.Fatalf("Update(NaN) error = %v, want *InvalidDomainError", err)
	}
	if len(reported) != 1 || !errors.As(reported[0], &ide) {
		t.Errorf("reported = %v, want one InvalidDomainError", reported)
	}
	if IsWarning(err) {
		t.Error("IsWarning(InvalidDomainError) = true")
	}
	if c.Scene().Len() != 3 || c.Scene().Version() != version {
		t.Error("failed pass modified the scene")
	}
}

func TestUpdateWarnings(t *testing.T) {
	var reported []error
	c, _, _ := newTestChart(t, layout.StackedBar, WithErrorHandler(func(err error) {
		reported = append(reported, err)
	}))
	err := c.Update(layout.Records{
		{Name: "A", Fields: []layout.Field{{Name: "p1", Value: 1}, {Name: "p2", Value: 2}}},
		{Name: "B", Fields: []layout.Field{{Name: "p1", Value: 3}}},
	})
	if err != nil {
		t.Fatalf("Update() error = %v, want nil", err)
	}
	if len(reported) != 1 {
		t.Fatalf("reported %d errors, want 1", len(reported))
	}
	var ise *InconsistentSeriesError
	if !errors.As(reported[0], &ise) || ise.Record != "B" {
		t.Errorf("reported = %v, want InconsistentSeriesError for B", reported[0])
	}
	if !IsWarning(reported[0]) {
		t.Error("IsWarning() = false for inconsistent series")
	}
	// Missing p2 reads as 0 and still gets a segment.
	if _, ok := c.Scene().Mark("p2:B"); !ok {
		t.Error("mark p2:B missing")
	}
}

func TestUpdateEmptyDataset(t *testing.T) {
	var reported []error
	c, _, _ := newTestChart(t, layout.Bar, WithErrorHandler(func(err error) {
		reported = append(reported, err)
	}))
	if err := c.Update(layout.Categories{}); err != nil {
		t.Fatalf("Update(empty) error = %v", err)
	}
	if len(reported) != 1 || !errors.Is(reported[0], ErrEmptyDataset) {
		t.Errorf("reported = %v, want ErrEmptyDataset", reported)
	}
	if c.Scene().Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Scene().Len())
	}
	if c.Scene().State() != scene.Live {
		t.Errorf("State() = %v, want Live", c.Scene().State())
	}
}

func TestUpdateExit(t *testing.T) {
	c, h, clock := newTestChart(t, layout.Bar)
	if err := c.Update(barData); err != nil {
		t.Fatal(err)
	}
	settle(t, h, clock)
	if !c.PointerEnter("ccc") {
		t.Fatal("PointerEnter(ccc) = false")
	}

	if err := c.Update(barData[:2]); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Scene().Mark("ccc"); ok {
		t.Error("exited mark ccc still in scene")
	}
	if c.Scene().Tooltip.Visible {
		t.Error("tooltip of exited mark still visible")
	}
}

func TestLineUpdateSupersedes(t *testing.T) {
	c, h, clock := newTestChart(t, layout.Line)
	ds := layout.Records{
		{Name: "A", Fields: []layout.Field{{Name: "p1", Value: 10}}},
		{Name: "B", Fields: []layout.Field{{Name: "p1", Value: 20}}},
	}
	if err := c.Update(ds); err != nil {
		t.Fatal(err)
	}
	h.flush(clock.Advance(100 * time.Millisecond))
	old, ok := c.anim.Target("p1:1")
	if !ok {
		t.Fatal("no timeline for p1:1")
	}
	active := c.anim.Active()

	edited := layout.Records{
		ds[0],
		{Name: "B", Fields: []layout.Field{{Name: "p1", Value: 5}}},
	}
	if err := c.Update(edited); err != nil {
		t.Fatal(err)
	}
	next, ok := c.anim.Target("p1:1")
	if !ok {
		t.Fatal("no timeline for p1:1 after edit")
	}
	if old.Shape.(scene.CircleShape).CY == next.Shape.(scene.CircleShape).CY {
		t.Error("target geometry did not change")
	}
	if c.anim.Active() > active {
		t.Errorf("Active() = %d, want <= %d (superseded, not queued)", c.anim.Active(), active)
	}

	settle(t, h, clock)
	m, _ := c.Scene().Mark("p1:1")
	if m.Shape != next.Shape {
		t.Errorf("settled shape = %+v, want %+v", m.Shape, next.Shape)
	}
}

func TestMorph(t *testing.T) {
	c, h, clock := newTestChart(t, layout.Bar, WithMorph(true))
	if err := c.Update(barData); err != nil {
		t.Fatal(err)
	}
	settle(t, h, clock)
	prev := rectOf(t, c, "bbb")

	if err := c.Update(layout.Categories{{Name: "aaa", Value: 5}, {Name: "bbb", Value: 1}, {Name: "ccc", Value: 3}}); err != nil {
		t.Fatal(err)
	}
	if got := rectOf(t, c, "bbb"); got != prev {
		t.Errorf("morph start = %+v, want previous state %+v", got, prev)
	}
	settle(t, h, clock)
	if got := rectOf(t, c, "bbb"); got.Height >= prev.Height {
		t.Errorf("bbb height = %v, want below %v", got.Height, prev.Height)
	}
}

func TestTooltipFlow(t *testing.T) {
	c, h, clock := newTestChart(t, layout.Bar)
	if err := c.Update(barData); err != nil {
		t.Fatal(err)
	}
	settle(t, h, clock)

	if c.PointerEnter("missing") {
		t.Error("PointerEnter(missing) = true")
	}
	if !c.PointerEnter("aaa") {
		t.Fatal("PointerEnter(aaa) = false")
	}
	tip := c.Scene().Tooltip
	if !tip.Visible || tip.Content != "aaa<br>5" {
		t.Errorf("tooltip = %+v, want visible aaa<br>5", tip)
	}
	r := rectOf(t, c, "aaa")
	if tip.X != r.X+30 || tip.Y != r.Y+30 {
		t.Errorf("tooltip at (%v,%v), want (%v,%v)", tip.X, tip.Y, r.X+30, r.Y+30)
	}

	// Moving onto the tooltip keeps it up.
	c.TooltipEnter()
	c.PointerLeave("aaa")
	if !c.Scene().Tooltip.Visible {
		t.Error("tooltip hidden while pointer is over it")
	}
	c.TooltipLeave()
	if c.Scene().Tooltip.Visible {
		t.Error("tooltip visible after leaving both")
	}
}

func TestTooltipFollowsUpdatedMark(t *testing.T) {
	c, h, clock := newTestChart(t, layout.Bar)
	if err := c.Update(barData); err != nil {
		t.Fatal(err)
	}
	settle(t, h, clock)
	if !c.PointerEnter("aaa") {
		t.Fatal("PointerEnter(aaa) = false")
	}

	if err := c.Update(layout.Categories{{Name: "aaa", Value: 1}, {Name: "bbb", Value: 4}, {Name: "ccc", Value: 3}}); err != nil {
		t.Fatal(err)
	}
	tip := c.Scene().Tooltip
	if !tip.Visible || tip.Content != "aaa<br>1" {
		t.Fatalf("tooltip = %+v, want visible aaa<br>1", tip)
	}
	settle(t, h, clock)
	r := rectOf(t, c, "aaa")
	if tip.X != r.X+30 || tip.Y != r.Y+30 {
		t.Errorf("tooltip at (%v,%v), want new bar top (%v,%v)", tip.X, tip.Y, r.X+30, r.Y+30)
	}
}

func TestTooltipEnterDoesNotReshow(t *testing.T) {
	c, h, clock := newTestChart(t, layout.Bar)
	if err := c.Update(barData); err != nil {
		t.Fatal(err)
	}
	settle(t, h, clock)

	c.PointerEnter("aaa")
	c.PointerLeave("aaa")
	c.TooltipEnter()
	if c.Scene().Tooltip.Visible {
		t.Error("entering a hidden tooltip showed it")
	}
	c.TooltipLeave()
	if c.Scene().Tooltip.Visible {
		t.Error("tooltip visible after leaving it")
	}
}

func TestReorderKeepsMarks(t *testing.T) {
	var before []string
	c, h, clock := newTestChart(t, layout.Bar)
	if err := c.Update(barData); err != nil {
		t.Fatal(err)
	}
	settle(t, h, clock)
	for _, m := range c.Scene().Marks() {
		before = append(before, m.Key)
	}

	reordered := layout.Categories{barData[2], barData[0], barData[1]}
	patch := scene.Reconcile(c.Scene().Marks(), mustCompute(t, layout.Bar, reordered).Marks)
	if len(patch.Enter) != 0 || len(patch.Exit) != 0 {
		t.Errorf("reorder produced %d enter, %d exit, want none", len(patch.Enter), len(patch.Exit))
	}

	if err := c.Update(reordered); err != nil {
		t.Fatal(err)
	}
	settle(t, h, clock)
	if c.Scene().Len() != len(before) {
		t.Errorf("Len() = %d, want %d", c.Scene().Len(), len(before))
	}
	// ccc moved to the first band.
	if r := rectOf(t, c, "ccc"); r.X >= rectOf(t, c, "aaa").X {
		t.Errorf("ccc at x=%v, want left of aaa", r.X)
	}
}

func mustCompute(t *testing.T, k layout.Kind, ds layout.Dataset) *layout.Result {
	t.Helper()
	s, err := layout.New(k)
	if err != nil {
		t.Fatal(err)
	}
	res, err := s.Compute(ds, layout.Dims{Width: DefaultWidth, Height: DefaultHeight, Margins: layout.DefaultMargins(k)})
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestPointerMove(t *testing.T) {
	c, h, clock := newTestChart(t, layout.Bar)
	if err := c.Update(barData); err != nil {
		t.Fatal(err)
	}
	settle(t, h, clock)

	r := rectOf(t, c, "bbb")
	key, ok := c.PointerMove(30+r.X+r.Width/2, 30+r.Y+r.Height/2)
	if !ok || key != "bbb" {
		t.Fatalf("PointerMove() = %q, %v, want bbb", key, ok)
	}
	if !c.Scene().Tooltip.Visible {
		t.Error("tooltip hidden after PointerMove onto bbb")
	}
	if _, ok := c.PointerMove(1, 1); ok {
		t.Error("PointerMove(1,1) hit a mark")
	}
	if c.Scene().Tooltip.Visible {
		t.Error("tooltip visible after pointer left")
	}
}

func TestDetach(t *testing.T) {
	c, h, _ := newTestChart(t, layout.Bar)
	stream := NewStream[layout.Dataset]()
	c.Subscribe(stream)
	stream.Push(barData)
	if h.pending == nil {
		t.Fatal("expected a pending frame")
	}

	c.Detach()
	if h.pending != nil || h.cancels != 1 {
		t.Errorf("pending frame not cancelled (cancels=%d)", h.cancels)
	}
	if h.state != scene.Detached {
		t.Errorf("last mounted state = %v, want Detached", h.state)
	}
	if c.Scene().Len() != 0 {
		t.Errorf("Len() = %d after Detach", c.Scene().Len())
	}

	mounts := h.mounts
	stream.Push(barData)
	if h.mounts != mounts {
		t.Error("detached chart still receives snapshots")
	}
	if err := c.Update(barData); !errors.Is(err, ErrDetached) {
		t.Errorf("Update() after Detach error = %v, want ErrDetached", err)
	}
	if c.PointerEnter("aaa") {
		t.Error("PointerEnter after Detach = true")
	}
	c.Detach()
}
