package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ggchart/internal/cache"
)

// widthCacheSize bounds the number of remembered label widths per measurer.
const widthCacheSize = 512

// Shaped is a Measurer that shapes labels with go-text/typesetting and sums
// the glyph advances. Results are cached per label.
type Shaped struct {
	font *font.Font
	size float64

	// HarfbuzzShaper keeps an internal buffer and is not safe for
	// concurrent use, so instances are pooled.
	shapers sync.Pool
	widths  *cache.Cache[string, float64]
}

// NewShaped parses TrueType/OpenType data and returns a measurer for labels
// set at size pixels.
func NewShaped(data []byte, size float64) (*Shaped, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &Shaped{
		font: face.Font,
		size: size,
		shapers: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		widths: cache.New[string, float64](widthCacheSize),
	}, nil
}

// NewGoRegular returns a Shaped measurer for the Go Regular font.
func NewGoRegular(size float64) (*Shaped, error) {
	return NewShaped(goregular.TTF, size)
}

// Size returns the font size in pixels.
func (s *Shaped) Size() float64 { return s.size }

// Width implements Measurer.
func (s *Shaped) Width(label string) float64 {
	if label == "" {
		return 0
	}
	return s.widths.GetOrCreate(label, func() float64 { return s.shape(label) })
}

func (s *Shaped) shape(label string) float64 {
	runes := []rune(label)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(s.font),
		Size:      fixed.Int26_6(s.size * 64),
		Script:    script(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shapers.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.shapers.Put(hb)

	var adv fixed.Int26_6
	for _, g := range out.Glyphs {
		adv += g.Advance
	}
	return float64(adv) / 64
}

// script returns the script of the first non-space rune.
func script(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
