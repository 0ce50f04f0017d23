// Package text measures label widths for chart layout.
//
// Layouts reserve room on the right of the plot for legend labels, so they
// need to know how wide a label will be before any scale is built. Two
// measurers are provided:
//
//   - [Estimate]: a fixed advance per character, with East Asian wide and
//     fullwidth runes counted twice. This is the default and reproduces the
//     classic "len * 7px" rule.
//   - [Shaped]: HarfBuzz shaping of a real font via go-text/typesetting. Use
//     it when labels are rendered with that font and must fit exactly.
//
// Measurers are safe for concurrent use.
package text
