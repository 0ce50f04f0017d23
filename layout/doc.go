// Package layout turns typed datasets into drawable marks.
//
// Each chart kind has a Strategy that receives a dataset and the chart
// dimensions and returns marks, axis descriptors and a legend spec:
//
//	s, _ := layout.New(layout.StackedBar)
//	res, err := s.Compute(layout.Records{...}, layout.Dims{Width: 600, Height: 360})
//
// Strategies are pure: they hold no state between passes. Legend margins are
// sized once per pass, before any scale is built, because the plot width
// (and therefore every x coordinate) depends on them.
package layout
