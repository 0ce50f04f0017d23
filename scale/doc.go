// Package scale maps data domains onto pixel ranges.
//
// Three kinds of scale are provided:
//   - [Linear]: continuous numeric domain to a continuous range, with optional
//     "nice" rounding of the domain to tick boundaries
//   - [Band]: ordered categories to equal padded slots of a range
//   - [Palette]: fixed categorical colors indexed by series ordinal
//
// Degenerate domains never fail: a linear scale whose min equals its max maps
// every value to the range midpoint, and a band scale with no categories has
// a zero bandwidth.
package scale
