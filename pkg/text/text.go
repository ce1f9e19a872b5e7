// Package text measures and lays out strings for widgets.
//
// Real font rasterization is left to the rendering backend. A Shaper only
// produces a graphics.TextLayout: the wrapped lines and their measured size.
package text

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/sway/pkg/graphics"
)

// DefaultFontSize is used when a Font has no size.
const DefaultFontSize = 14.0

// Font selects a face and size.
type Font struct {
	Family string
	Size   float64
}

func (f Font) size() float64 {
	if f.Size <= 0 {
		return DefaultFontSize
	}
	return f.Size
}

// NoWrap disables line wrapping.
const NoWrap = 0

// Shaper turns a string into a measured layout.
type Shaper interface {
	// Shape lays out s with font f, wrapping lines longer than wrapWidth
	// (NoWrap disables wrapping). scale is the transform scale the text will
	// be drawn at.
	Shape(s string, f Font, wrapWidth, scale float64) *graphics.TextLayout
}

// BasicShaper measures text with a fixed-size bitmap face scaled to the
// requested font size. It is the default shaper and the one used in tests.
type BasicShaper struct {
	face font.Face
}

// NewBasicShaper returns a shaper backed by basicfont.Face7x13.
func NewBasicShaper() *BasicShaper {
	return &BasicShaper{face: basicfont.Face7x13}
}

// NewShaperWithFace returns a shaper measuring with face. Sizes are scaled
// relative to the face's own line height.
func NewShaperWithFace(face font.Face) *BasicShaper {
	return &BasicShaper{face: face}
}

func (b *BasicShaper) ratio(f Font) float64 {
	h := toFloat(b.face.Metrics().Height)
	if h <= 0 {
		return 1
	}
	return f.size() / h
}

// Measure returns the unwrapped width of s at font f.
func (b *BasicShaper) Measure(s string, f Font) float64 {
	return toFloat(font.MeasureString(b.face, s)) * b.ratio(f)
}

// Shape implements Shaper.
func (b *BasicShaper) Shape(s string, f Font, wrapWidth, scale float64) *graphics.TextLayout {
	ratio := b.ratio(f)
	metrics := b.face.Metrics()
	lineHeight := toFloat(metrics.Height) * ratio
	measure := func(line string) float64 {
		return toFloat(font.MeasureString(b.face, line)) * ratio
	}

	var lines []graphics.TextLine
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrap(para, wrapWidth, measure)...)
	}

	width := 0.0
	for _, l := range lines {
		width = max(width, l.Width)
	}
	return &graphics.TextLayout{
		Text:     s,
		Lines:    lines,
		Size:     graphics.Size{Width: width, Height: lineHeight * float64(len(lines))},
		FontSize: f.size(),
		Scale:    scale,
		Ascent:   toFloat(metrics.Ascent) * ratio,
	}
}

// wrap breaks a paragraph greedily at spaces. Words wider than the wrap width
// get a line of their own.
func wrap(para string, wrapWidth float64, measure func(string) float64) []graphics.TextLine {
	if wrapWidth <= NoWrap {
		return []graphics.TextLine{{Text: para, Width: measure(para)}}
	}
	words := strings.Fields(para)
	if len(words) == 0 {
		return []graphics.TextLine{{Text: "", Width: 0}}
	}
	var lines []graphics.TextLine
	current := words[0]
	for _, w := range words[1:] {
		candidate := current + " " + w
		if measure(candidate) > wrapWidth {
			lines = append(lines, graphics.TextLine{Text: current, Width: measure(current)})
			current = w
			continue
		}
		current = candidate
	}
	return append(lines, graphics.TextLine{Text: current, Width: measure(current)})
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
