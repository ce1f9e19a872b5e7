package graphics

// Layer orders primitives at paint time.
type Layer int

const (
	// LayerNormal holds regular widget output.
	LayerNormal Layer = iota
	// LayerOverlay is drawn after every normal primitive, for popups.
	LayerOverlay
)

func (l Layer) String() string {
	switch l {
	case LayerOverlay:
		return "overlay"
	default:
		return "normal"
	}
}

// TextureID names an image uploaded to the rendering backend.
type TextureID uint64

// Primitive is a paint instruction understood by a Canvas.
type Primitive interface {
	// Bounds returns the area the primitive covers.
	Bounds() Rect
	execute(canvas Canvas, clip Rect)
}

// RectPrimitive is a filled and optionally stroked rectangle.
type RectPrimitive struct {
	Rect   Rect
	Radius Radius
	Fill   Color
	Stroke Stroke
}

func (p RectPrimitive) Bounds() Rect { return p.Rect }

func (p RectPrimitive) execute(canvas Canvas, clip Rect) { canvas.DrawRect(p, clip) }

// TextPrimitive draws a shaped text layout with its top-left corner at Origin.
type TextPrimitive struct {
	Origin Offset
	Layout *TextLayout
	Color  Color
}

func (p TextPrimitive) Bounds() Rect {
	if p.Layout == nil {
		return RectFromOffsetSize(p.Origin, Size{})
	}
	return RectFromOffsetSize(p.Origin, p.Layout.Size)
}

func (p TextPrimitive) execute(canvas Canvas, clip Rect) { canvas.DrawText(p, clip) }

// ImagePrimitive draws the UV sub-rect of a texture into Rect.
type ImagePrimitive struct {
	Rect    Rect
	Texture TextureID
	UV      Rect
	Tint    Color
}

func (p ImagePrimitive) Bounds() Rect { return p.Rect }

func (p ImagePrimitive) execute(canvas Canvas, clip Rect) { canvas.DrawImage(p, clip) }

// ClippedPrimitive is a primitive tagged with the clip rect and layer active when it was recorded.
type ClippedPrimitive struct {
	Clip      Rect
	Layer     Layer
	Primitive Primitive
}

// Canvas is implemented by rendering backends.
type Canvas interface {
	DrawRect(p RectPrimitive, clip Rect)
	DrawText(p TextPrimitive, clip Rect)
	DrawImage(p ImagePrimitive, clip Rect)
}
