package graphics

// TextLayout is a shaped text handle produced by a text shaper.
// Widgets treat it as atomic: they read its measured size and hand it to the painter.
type TextLayout struct {
	Text     string
	Lines    []TextLine
	Size     Size
	FontSize float64
	// Scale is the transform scale the text was shaped for.
	Scale float64
	// Ascent is the distance from the top of a line to its baseline.
	Ascent float64
}

// TextLine is one wrapped line within a TextLayout.
type TextLine struct {
	Text  string
	Width float64
}

// LineHeight returns the height of a single line.
func (l *TextLayout) LineHeight() float64 {
	if l == nil || len(l.Lines) == 0 {
		return 0
	}
	return l.Size.Height / float64(len(l.Lines))
}
