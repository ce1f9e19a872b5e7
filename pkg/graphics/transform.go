package graphics

// Transform is a uniform scale followed by a translation.
//
// Scroll containers push one onto the cursor stack so their children see
// pointer positions in content space, and set one on the painter so content
// is drawn shifted.
type Transform struct {
	Translation Offset
	Scale       float64
}

// Identity is the transform that maps every point to itself.
var Identity = Transform{Scale: 1}

// Translated returns a translation-only transform.
func Translated(o Offset) Transform {
	return Transform{Translation: o, Scale: 1}
}

// IsIdentity reports whether t maps every point to itself.
func (t Transform) IsIdentity() bool {
	return floatEqual(t.Scale, 1) && floatEqual(t.Translation.X, 0) && floatEqual(t.Translation.Y, 0)
}

// Apply maps a point through t.
func (t Transform) Apply(p Offset) Offset {
	return p.Scale(t.scale()).Add(t.Translation)
}

// ApplyVector maps a direction through t, ignoring the translation.
func (t Transform) ApplyVector(v Offset) Offset {
	return v.Scale(t.scale())
}

// ApplyRect maps both corners of r through t.
func (t Transform) ApplyRect(r Rect) Rect {
	tl := t.Apply(Offset{X: r.Left, Y: r.Top})
	br := t.Apply(Offset{X: r.Right, Y: r.Bottom})
	return Rect{Left: tl.X, Top: tl.Y, Right: br.X, Bottom: br.Y}
}

// Then returns the transform that applies t first and next second.
func (t Transform) Then(next Transform) Transform {
	return Transform{
		Translation: next.Apply(t.Translation),
		Scale:       t.scale() * next.scale(),
	}
}

// Inverse returns the transform undoing t.
func (t Transform) Inverse() Transform {
	s := t.scale()
	return Transform{
		Translation: t.Translation.Scale(-1 / s),
		Scale:       1 / s,
	}
}

// scale treats the zero value as an unscaled transform.
func (t Transform) scale() float64 {
	if t.Scale == 0 {
		return 1
	}
	return t.Scale
}
