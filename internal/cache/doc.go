// Package cache provides a small generic LRU cache.
//
// It backs label measurement: shaping a string is far more expensive than a
// map lookup, and legend and axis labels repeat on every reconciliation pass.
//
//	widths := cache.New[string, float64](512)
//	w := widths.GetOrCreate("property1", func() float64 { return measure("property1") })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
