package ggchart

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gogpu/ggchart/animate"
	"github.com/gogpu/ggchart/layout"
	"github.com/gogpu/ggchart/legend"
	"github.com/gogpu/ggchart/scene"
	"github.com/gogpu/ggchart/tooltip"
)

// Chart is one live chart instance bound to a host surface.
//
// Every dataset snapshot runs a reconciliation pass: the layout strategy
// computes target marks, the scene is patched by key, and the animator
// leads each mark to its target over the following frames. Passes, frames
// and pointer events are serialized by the chart's lock, so a Chart is
// safe for concurrent use.
type Chart struct {
	mu sync.Mutex

	host     Host
	kind     layout.Kind
	strategy layout.Strategy
	opts     options
	log      *slog.Logger

	scene *scene.Scene
	anim  *animate.Animator
	tip   *tooltip.Controller

	cancelFrame func()
	unsubscribe []func()
	hover       string
	passes      uint64
	detached    bool
}

// New creates a chart of kind k drawing into host.
func New(host Host, k layout.Kind, opts ...Option) (*Chart, error) {
	if host == nil {
		return nil, ErrHostNotReady
	}
	if rh, ok := host.(ReadyHost); ok && !rh.Ready() {
		return nil, ErrHostNotReady
	}
	strategy, err := layout.New(k)
	if err != nil {
		return nil, fmt.Errorf("ggchart: new chart: %w", err)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = Logger()
	}

	tip := tooltip.NewController(tooltip.FormatterFor(k))
	if k == layout.Scatter {
		tip.SetSize(tooltip.Width, tooltip.ScatterHeight)
	}

	return &Chart{
		host:     host,
		kind:     k,
		strategy: strategy,
		opts:     o,
		log:      log.With("chart", k.String()),
		scene:    scene.New(o.width, o.height),
		anim:     animate.New(o.clock, o.ease),
		tip:      tip,
	}, nil
}

// Kind returns the chart kind.
func (c *Chart) Kind() layout.Kind { return c.kind }

// Scene returns the chart's scene. It is mutated by later passes and
// frames; read it from Host.Mount or while no pass can run.
func (c *Chart) Scene() *scene.Scene { return c.scene }

// Update runs one reconciliation pass for ds.
//
// A fatal error, such as an *InvalidDomainError, aborts the pass and leaves
// the previous scene visible; it is returned and reported to the error
// handler. Dataset warnings are reported and logged but the pass completes.
func (c *Chart) Update(ds layout.Dataset) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.detached {
		return ErrDetached
	}

	res, err := c.strategy.Compute(ds, c.dims())
	if err != nil {
		err = fmt.Errorf("ggchart: %s pass: %w", c.kind, err)
		c.log.Warn("pass failed", "err", err)
		c.report(err)
		return err
	}
	for _, w := range res.Warnings {
		c.log.Warn("dataset warning", "err", w)
		c.report(w)
	}

	patch := scene.Reconcile(c.scene.Marks(), res.Marks)
	superseded := c.anim.Stop()
	trs := c.scene.Apply(patch, res.Baseline, c.opts.morph)

	sc := c.scene
	sc.Origin = res.Origin
	sc.Plot = res.Plot
	sc.XAxis = res.XAxis
	sc.YAxis = res.YAxis
	sc.Palette = res.Palette
	sc.Legend = legend.Build(res.Legend)

	for _, key := range patch.Exit {
		c.tip.Forget(key)
		if c.hover == key {
			c.hover = ""
		}
	}
	c.tip.SetOrigin(res.Origin)
	if c.hover != "" {
		// The hovered mark survived the pass; show its new datum.
		for _, m := range patch.Update {
			if m.Key == c.hover {
				c.tip.EnterMark(m)
				break
			}
		}
	}
	sc.Tooltip = c.tip.Node()

	c.anim.StartAll(trs)
	c.passes++
	c.log.Debug("pass",
		"n", c.passes,
		"enter", len(patch.Enter),
		"update", len(patch.Update),
		"exit", len(patch.Exit),
		"superseded", superseded,
		"warnings", len(res.Warnings))

	c.stepLocked()
	return nil
}

func (c *Chart) dims() layout.Dims {
	m := layout.DefaultMargins(c.kind)
	if c.opts.margins != nil {
		m = *c.opts.margins
	}
	return layout.Dims{
		Width:       c.opts.width,
		Height:      c.opts.height,
		Margins:     m,
		InnerRadius: c.opts.innerRadius,
		Measurer:    c.opts.measurer,
	}
}

func (c *Chart) report(err error) {
	if c.opts.onError != nil {
		c.opts.onError(err)
	}
}

// stepLocked evaluates the animator at the current clock time, mounts the
// scene and asks for another frame while timelines remain.
func (c *Chart) stepLocked() {
	for _, m := range c.anim.Step(c.anim.Clock().Now()) {
		c.scene.Set(m)
	}
	c.host.Mount(c.scene)
	if c.anim.Active() > 0 && c.cancelFrame == nil {
		c.cancelFrame = c.host.RequestFrame(c.frame)
	}
}

func (c *Chart) frame(now time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelFrame = nil
	if c.detached {
		return
	}
	c.log.Debug("frame", "host", now, "active", c.anim.Active())
	c.stepLocked()
}

// Animating reports whether any transition is in flight.
func (c *Chart) Animating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.anim.Active() > 0
}

// PointerEnter shows the tooltip for the mark with the given key. It
// reports false if there is no such hoverable mark.
func (c *Chart) PointerEnter(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enterLocked(key)
}

func (c *Chart) enterLocked(key string) bool {
	if c.detached {
		return false
	}
	m, ok := c.scene.Mark(key)
	if !ok || !m.Hoverable {
		return false
	}
	// Anchor to where the mark is heading, not to a mid-animation frame.
	if to, ok := c.anim.Target(key); ok {
		m = to
	}
	c.hover = key
	c.tip.EnterMark(m)
	c.syncTooltip()
	return true
}

// PointerLeave records that the pointer left the mark with the given key.
func (c *Chart) PointerLeave(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.leaveLocked(key)
}

func (c *Chart) leaveLocked(key string) {
	if c.detached || c.hover != key {
		return
	}
	c.hover = ""
	c.tip.LeaveMark()
	c.syncTooltip()
}

// PointerMove hit-tests the host-space point (x, y) and turns it into
// enter and leave events. It returns the key of the hovered mark, if any.
// Hosts that deliver per-mark events call PointerEnter and PointerLeave
// instead.
func (c *Chart) PointerMove(x, y float64) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.detached {
		return "", false
	}
	m, ok := c.scene.HitTest(x-c.scene.Origin.X, y-c.scene.Origin.Y)
	if ok && m.Key == c.hover {
		return m.Key, true
	}
	if c.hover != "" {
		c.leaveLocked(c.hover)
	}
	if !ok {
		return "", false
	}
	return m.Key, c.enterLocked(m.Key)
}

// TooltipEnter records that the pointer is over the tooltip overlay.
func (c *Chart) TooltipEnter() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.detached {
		return
	}
	c.tip.EnterTooltip()
	c.syncTooltip()
}

// TooltipLeave records that the pointer left the tooltip overlay.
func (c *Chart) TooltipLeave() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.detached {
		return
	}
	c.tip.LeaveTooltip()
	c.syncTooltip()
}

func (c *Chart) syncTooltip() {
	node := c.tip.Node()
	if node == c.scene.Tooltip {
		return
	}
	c.scene.Tooltip = node
	c.host.Mount(c.scene)
}

// Subscribe runs a pass for every snapshot pushed to s until the chart is
// detached. Pass errors go to the error handler.
func (c *Chart) Subscribe(s *Stream[layout.Dataset]) {
	cancel := s.Subscribe(func(ds layout.Dataset) {
		_ = c.Update(ds)
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.detached {
		cancel()
		return
	}
	c.unsubscribe = append(c.unsubscribe, cancel)
}

// Detach stops all animation, releases the stream subscriptions and clears
// the scene. No host callback runs after Detach returns. Detach is
// idempotent.
func (c *Chart) Detach() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.detached {
		return
	}
	c.detached = true
	stopped := c.anim.Stop()
	if c.cancelFrame != nil {
		c.cancelFrame()
		c.cancelFrame = nil
	}
	for _, cancel := range c.unsubscribe {
		cancel()
	}
	c.unsubscribe = nil
	c.hover = ""
	c.tip.Reset()
	c.scene.Detach()
	c.host.Mount(c.scene)
	c.log.Debug("detached", "stopped", stopped, "passes", c.passes)
}
