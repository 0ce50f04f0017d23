package ggchart

import (
	"time"

	"github.com/gogpu/ggchart/scene"
)

// Host is the surface a chart draws into.
//
// Mount is called with the chart's scene after every pass and every
// animation frame, and once more after Detach with the scene in the
// Detached state; the host then releases whatever it drew. The scene is
// only valid for the duration of the call.
//
// RequestFrame schedules fn to run on the next display frame. It must not
// call fn synchronously. The returned cancel func drops a pending request
// and must be safe to call after fn has run. The chart keeps its own clock,
// so now is only used for logging.
type Host interface {
	Mount(s *scene.Scene)
	RequestFrame(fn func(now time.Duration)) (cancel func())
}

// ReadyHost is implemented by hosts that may exist before their surface is
// usable. New fails with ErrHostNotReady while Ready reports false.
type ReadyHost interface {
	Host
	Ready() bool
}
