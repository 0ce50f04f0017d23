// Package ggchart is a reactive chart engine. It turns dataset snapshots
// into an animated, retained scene of marks, axes, legend rows and a
// tooltip overlay that a host surface draws.
//
// # Overview
//
// A Chart is created for one host and one chart kind. Each snapshot passed
// to Update, directly or through a Stream, runs a reconciliation pass:
//
//  1. the layout strategy maps the snapshot to target marks
//  2. the marks are joined by key against the current scene (enter, update
//     and exit)
//  3. the animator leads each mark to its target over the following host
//     frames
//
// # Quick Start
//
//	c, err := ggchart.New(host, layout.Bar)
//	if err != nil {
//	    return err
//	}
//	defer c.Detach()
//
//	err = c.Update(layout.Categories{
//	    {Name: "Alpha", Value: 5},
//	    {Name: "Beta", Value: 3},
//	})
//
// # Chart Kinds
//
//   - layout.Bar: one bar per category
//   - layout.StackedBar: cumulative per-series segments per category
//   - layout.Line: one path plus point markers per series
//   - layout.Pie: proportional arcs with percent labels, optionally a donut
//   - layout.Scatter: point markers per series on linear x and y axes
//
// # Hosts
//
// A Host mounts the scene and schedules frames. render/svg encodes a scene
// as SVG; cmd/chartdemo uses it to render charts offline with a manual
// clock.
//
// # Errors
//
// Non-finite or inverted domains abort the pass with an
// *InvalidDomainError and leave the previous scene visible. Empty datasets
// and records with inconsistent fields are warnings: they are reported
// through WithErrorHandler and logged, and the pass completes.
//
// # Logging
//
// ggchart is silent by default. Use SetLogger or WithLogger to receive
// slog records.
package ggchart
