package text

import "errors"

// ErrEmptyFontData is returned when a Shaped measurer is created without
// font data.
var ErrEmptyFontData = errors.New("text: empty font data")
