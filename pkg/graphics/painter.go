package graphics

import "sort"

// Painter records primitives for one frame.
//
// It tracks the current clip rect, layer, transform and text color. Setters
// return the previous value so callers can restore it once their subtree is drawn.
type Painter struct {
	size      Size
	clip      Rect
	layer     Layer
	transform Transform
	textColor Color
	items     []ClippedPrimitive
}

// NewPainter starts a recording for a screen of the given size.
func NewPainter(size Size, textColor Color) *Painter {
	p := &Painter{}
	p.Reset(size, textColor)
	return p
}

// Reset drops every recorded primitive and restores the initial state.
func (p *Painter) Reset(size Size, textColor Color) {
	p.size = size
	p.clip = RectFromOffsetSize(Offset{}, size)
	p.layer = LayerNormal
	p.transform = Identity
	p.textColor = textColor
	p.items = p.items[:0]
}

// ScreenRect returns the full recording area.
func (p *Painter) ScreenRect() Rect {
	return RectFromOffsetSize(Offset{}, p.size)
}

// Clip returns the active clip rect in screen space.
func (p *Painter) Clip() Rect { return p.clip }

// SetClip replaces the clip rect and returns the previous one.
func (p *Painter) SetClip(r Rect) Rect {
	prev := p.clip
	p.clip = r
	return prev
}

// IntersectClip narrows the clip rect to r and returns the previous one.
func (p *Painter) IntersectClip(r Rect) Rect {
	return p.SetClip(p.clip.Intersect(r))
}

// Layer returns the active layer.
func (p *Painter) Layer() Layer { return p.layer }

// SetLayer switches the layer and returns the previous one.
func (p *Painter) SetLayer(l Layer) Layer {
	prev := p.layer
	p.layer = l
	return prev
}

// Transform returns the active transform.
func (p *Painter) Transform() Transform { return p.transform }

// SetTransform replaces the transform and returns the previous one.
func (p *Painter) SetTransform(t Transform) Transform {
	prev := p.transform
	p.transform = t
	return prev
}

// TextColor returns the color used by Text.
func (p *Painter) TextColor() Color { return p.textColor }

// SetTextColor replaces the text color and returns the previous one.
func (p *Painter) SetTextColor(c Color) Color {
	prev := p.textColor
	p.textColor = c
	return prev
}

// Rect records a rectangle.
func (p *Painter) Rect(r RectPrimitive) {
	r.Rect = p.transform.ApplyRect(r.Rect)
	p.push(r)
}

// Text records a text layout at origin using the active text color.
func (p *Painter) Text(origin Offset, layout *TextLayout) {
	p.TextColored(origin, layout, p.textColor)
}

// TextColored records a text layout with an explicit color.
func (p *Painter) TextColored(origin Offset, layout *TextLayout, c Color) {
	if layout == nil {
		return
	}
	p.push(TextPrimitive{Origin: p.transform.Apply(origin), Layout: layout, Color: c})
}

// Image records a textured rectangle.
func (p *Painter) Image(img ImagePrimitive) {
	img.Rect = p.transform.ApplyRect(img.Rect)
	p.push(img)
}

func (p *Painter) push(prim Primitive) {
	if p.clip.IsEmpty() {
		return
	}
	p.items = append(p.items, ClippedPrimitive{Clip: p.clip, Layer: p.layer, Primitive: prim})
}

// Len returns the number of primitives recorded so far.
func (p *Painter) Len() int { return len(p.items) }

// Finish returns the recorded primitives, normal layer first, and resets the painter.
func (p *Painter) Finish() *DisplayList {
	items := make([]ClippedPrimitive, len(p.items))
	copy(items, p.items)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Layer < items[j].Layer
	})
	list := &DisplayList{items: items, size: p.size}
	p.Reset(p.size, p.textColor)
	return list
}

// Discard drops the recording without producing a list.
func (p *Painter) Discard() {
	p.Reset(p.size, p.textColor)
}
