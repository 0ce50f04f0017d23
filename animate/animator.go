// Package animate drives time-parameterized transitions of scene marks.
//
// Every mark key has at most one timeline. Starting a timeline for a key
// that is already animating replaces it: the new target wins and nothing is
// queued.
package animate

import (
	"time"

	"github.com/gogpu/ggchart/scene"
)

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

type timeline struct {
	tr    scene.Transition
	start time.Duration
}

// progress returns the eased progress at now and whether the timeline has
// finished.
func (tl *timeline) progress(now time.Duration, ease Easing) (float64, bool) {
	t := now - tl.start - tl.tr.To.Timing.Delay
	if t < 0 {
		return 0, false
	}
	d := tl.tr.To.Timing.Duration
	if d <= 0 || t >= d {
		return 1, true
	}
	return ease(float64(t) / float64(d)), false
}

// Animator owns the timelines of one chart instance. It is not safe for
// concurrent use; the chart serializes access.
type Animator struct {
	clock     Clock
	ease      Easing
	timelines map[string]*timeline
	order     []string
}

// New creates an animator reading time from clock. A nil clock uses
// NewClock; a nil ease uses Linear.
func New(clock Clock, ease Easing) *Animator {
	if clock == nil {
		clock = NewClock()
	}
	if ease == nil {
		ease = Linear
	}
	return &Animator{
		clock:     clock,
		ease:      ease,
		timelines: make(map[string]*timeline),
	}
}

// Clock returns the animator's time source.
func (a *Animator) Clock() Clock { return a.clock }

// Start begins the transition of tr.To.Key at the current clock time,
// superseding any in-flight timeline for that key.
func (a *Animator) Start(tr scene.Transition) {
	key := tr.To.Key
	if _, ok := a.timelines[key]; !ok {
		a.order = append(a.order, key)
	}
	a.timelines[key] = &timeline{tr: tr, start: a.clock.Now()}
}

// StartAll starts every transition in order.
func (a *Animator) StartAll(trs []scene.Transition) {
	for _, tr := range trs {
		a.Start(tr)
	}
}

// Step evaluates every timeline at now and returns the interpolated marks,
// in start order. Timelines that reach their end return their target state
// and are removed.
func (a *Animator) Step(now time.Duration) []scene.Mark {
	if len(a.timelines) == 0 {
		return nil
	}
	out := make([]scene.Mark, 0, len(a.order))
	keep := a.order[:0]
	for _, key := range a.order {
		tl := a.timelines[key]
		t, done := tl.progress(now, a.ease)
		out = append(out, scene.Lerp(tl.tr.From, tl.tr.To, t))
		if done {
			delete(a.timelines, key)
			continue
		}
		keep = append(keep, key)
	}
	a.order = keep
	return out
}

// Progress returns the eased progress of key's timeline at now.
func (a *Animator) Progress(key string, now time.Duration) (float64, bool) {
	tl, ok := a.timelines[key]
	if !ok {
		return 0, false
	}
	t, _ := tl.progress(now, a.ease)
	return t, true
}

// Target returns the state key's timeline is heading to.
func (a *Animator) Target(key string) (scene.Mark, bool) {
	tl, ok := a.timelines[key]
	if !ok {
		return scene.Mark{}, false
	}
	return tl.tr.To, true
}

// Cancel drops key's timeline, leaving the mark where it is.
func (a *Animator) Cancel(key string) bool {
	if _, ok := a.timelines[key]; !ok {
		return false
	}
	delete(a.timelines, key)
	for i, k := range a.order {
		if k == key {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	return true
}

// Stop drops every timeline and returns how many were in flight.
func (a *Animator) Stop() int {
	n := len(a.timelines)
	clear(a.timelines)
	a.order = a.order[:0]
	return n
}

// Active returns the number of in-flight timelines.
func (a *Animator) Active() int {
	return len(a.timelines)
}
