// Package legend derives legend rows from series metadata.
//
// A legend is rebuilt wholesale on every reconciliation pass: entries keep
// series declaration order, each swatch uses the series ordinal as its
// palette index, and rows are stacked RowHeight units apart.
package legend

import "github.com/gogpu/ggchart/scene"

// RowHeight is the vertical distance between legend rows.
const RowHeight = 20

// Spec describes where and how a legend is drawn.
type Spec struct {
	Labels []string
	Swatch scene.Swatch

	// Origin is the swatch anchor of the first row in host coordinates.
	Origin scene.Point
	// LabelOffset is the label baseline position relative to the swatch
	// anchor of its row.
	LabelOffset scene.Point
}

// Build returns one entry per label, in declaration order.
func Build(s Spec) []scene.LegendEntry {
	if len(s.Labels) == 0 {
		return nil
	}
	entries := make([]scene.LegendEntry, len(s.Labels))
	for i, label := range s.Labels {
		at := scene.Point{X: s.Origin.X, Y: s.Origin.Y + float64(i*RowHeight)}
		entries[i] = scene.LegendEntry{
			Label:     label,
			FillIndex: i,
			Swatch:    s.Swatch,
			SwatchAt:  at,
			LabelAt:   at.Add(s.LabelOffset),
		}
	}
	return entries
}
