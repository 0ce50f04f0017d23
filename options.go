package ggchart

import (
	"log/slog"

	"github.com/gogpu/ggchart/animate"
	"github.com/gogpu/ggchart/layout"
	"github.com/gogpu/ggchart/text"
)

// Default chart size.
const (
	DefaultWidth  = 600
	DefaultHeight = 360
)

// Option configures a Chart during creation.
//
// Example:
//
//	c, err := ggchart.New(host, layout.Pie,
//	    ggchart.WithSize(400, 400),
//	    ggchart.WithInnerRadius(60),
//	)
type Option func(*options)

type options struct {
	width, height float64
	margins       *layout.Margins
	innerRadius   float64
	measurer      text.Measurer
	clock         animate.Clock
	ease          animate.Easing
	morph         bool
	onError       func(error)
	logger        *slog.Logger
}

func defaultOptions() options {
	return options{
		width:    DefaultWidth,
		height:   DefaultHeight,
		measurer: text.Estimate{},
	}
}

// WithSize sets the host surface size. Non-positive values keep the
// default.
func WithSize(width, height float64) Option {
	return func(o *options) {
		if width > 0 {
			o.width = width
		}
		if height > 0 {
			o.height = height
		}
	}
}

// WithMargins overrides the default margins of the chart kind. The right
// margin still grows to fit legend labels.
func WithMargins(m layout.Margins) Option {
	return func(o *options) {
		o.margins = &m
	}
}

// WithInnerRadius sets the hole radius of Pie charts, turning them into
// donuts. Ignored by other kinds.
func WithInnerRadius(r float64) Option {
	return func(o *options) {
		if r >= 0 {
			o.innerRadius = r
		}
	}
}

// WithMeasurer sets how legend labels are measured for margin sizing.
//
// Example:
//
//	m, _ := text.NewGoRegular(12)
//	c, _ := ggchart.New(host, layout.Line, ggchart.WithMeasurer(m))
func WithMeasurer(m text.Measurer) Option {
	return func(o *options) {
		if m != nil {
			o.measurer = m
		}
	}
}

// WithClock sets the animation time source. Use an *animate.ManualClock to
// step animations deterministically.
func WithClock(c animate.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithEasing sets the transition easing. The default is animate.Linear.
func WithEasing(e animate.Easing) Option {
	return func(o *options) {
		o.ease = e
	}
}

// WithMorph makes updated marks tween from their current on-screen state
// to their new target instead of replaying their entry animation.
func WithMorph(enabled bool) Option {
	return func(o *options) {
		o.morph = enabled
	}
}

// WithErrorHandler registers fn to be told about failed passes and dataset
// warnings. Use IsWarning to tell them apart. fn runs with the chart locked
// and must not call back into the chart.
func WithErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.onError = fn
	}
}

// WithLogger sets the logger of this chart, overriding the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
