// Command chartdemo renders the sample charts of ggchart to SVG files.
//
// By default the final frame is written to -out. With -frames n the
// animation is sampled n times over its duration and written to numbered
// files next to -out.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/animate"
	"github.com/gogpu/ggchart/layout"
	"github.com/gogpu/ggchart/render/svg"
	"github.com/gogpu/ggchart/scene"
	"github.com/gogpu/ggchart/text"
)

// offlineHost queues frame requests until the demo runs them.
type offlineHost struct {
	frame func(time.Duration)
}

func (h *offlineHost) Mount(*scene.Scene) {}

func (h *offlineHost) RequestFrame(fn func(time.Duration)) func() {
	h.frame = fn
	return func() { h.frame = nil }
}

func (h *offlineHost) run(now time.Duration) bool {
	fn := h.frame
	if fn == nil {
		return false
	}
	h.frame = nil
	fn(now)
	return true
}

func main() {
	var (
		kind    = flag.String("kind", "bar", "chart kind: bar, stacked-bar, line, pie, scatter")
		width   = flag.Float64("width", ggchart.DefaultWidth, "chart width")
		height  = flag.Float64("height", ggchart.DefaultHeight, "chart height")
		inner   = flag.Float64("inner", 0, "pie inner radius")
		output  = flag.String("out", "chart.svg", "output file")
		frames  = flag.Int("frames", 0, "number of animation frames to write")
		shaped  = flag.Bool("shaped", false, "measure legend labels with Go Regular")
		hover   = flag.String("hover", "", "show the tooltip of the mark with this key")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		ggchart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	k, err := layout.ParseKind(*kind)
	if err != nil {
		log.Fatal(err)
	}

	clock := &animate.ManualClock{}
	opts := []ggchart.Option{
		ggchart.WithSize(*width, *height),
		ggchart.WithInnerRadius(*inner),
		ggchart.WithClock(clock),
		ggchart.WithErrorHandler(func(err error) {
			if ggchart.IsWarning(err) {
				log.Printf("warning: %v", err)
			}
		}),
	}
	if *shaped {
		m, err := text.NewGoRegular(12)
		if err != nil {
			log.Fatalf("Failed to load font: %v", err)
		}
		opts = append(opts, ggchart.WithMeasurer(m))
	}

	host := &offlineHost{}
	chart, err := ggchart.New(host, k, opts...)
	if err != nil {
		log.Fatal(err)
	}
	defer chart.Detach()

	stream := ggchart.NewStream[layout.Dataset]()
	chart.Subscribe(stream)
	stream.Push(sample(k))

	if *frames > 0 {
		step := total(k) / time.Duration(*frames)
		for i := 0; i < *frames; i++ {
			host.run(clock.Advance(step))
			if err := write(frameName(*output, i), chart.Scene()); err != nil {
				log.Fatalf("Failed to save: %v", err)
			}
		}
	}
	for host.run(clock.Advance(16 * time.Millisecond)) {
	}

	if *hover != "" && !chart.PointerEnter(*hover) {
		log.Printf("no hoverable mark %q", *hover)
	}
	if err := write(*output, chart.Scene()); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Chart saved to %s (%vx%v)\n", *output, *width, *height)
}

// total is the longest animation of kind k, point stagger included.
func total(k layout.Kind) time.Duration {
	switch k {
	case layout.Line:
		return layout.LineDuration + layout.PointDuration
	case layout.Pie:
		return layout.PieDuration
	case layout.Scatter:
		return 16 * time.Millisecond
	default:
		return layout.BarDuration
	}
}

func frameName(out string, i int) string {
	ext := filepath.Ext(out)
	return fmt.Sprintf("%s_%03d%s", strings.TrimSuffix(out, ext), i, ext)
}

func write(path string, s *scene.Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := svg.Encode(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
