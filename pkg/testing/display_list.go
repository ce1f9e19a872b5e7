package testing

import (
	"fmt"
	"math"

	"github.com/go-drift/sway/pkg/graphics"
)

// DisplayOp is a serialized paint instruction.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// serializingCanvas implements graphics.Canvas and records ops as DisplayOp.
type serializingCanvas struct {
	ops []DisplayOp
}

func (c *serializingCanvas) DrawRect(p graphics.RectPrimitive, clip graphics.Rect) {
	params := sortedMap(
		"rect", serializeRect(p.Rect),
		"clip", serializeRect(clip),
		"fill", serializeColor(p.Fill),
	)
	if p.Radius != 0 {
		params["radius"] = round2(float64(p.Radius))
	}
	if !p.Stroke.IsZero() {
		params["stroke"] = sortedMap("width", round2(p.Stroke.Width), "color", serializeColor(p.Stroke.Color))
	}
	c.ops = append(c.ops, DisplayOp{Op: "drawRect", Params: params})
}

func (c *serializingCanvas) DrawText(p graphics.TextPrimitive, clip graphics.Rect) {
	text := ""
	if p.Layout != nil {
		text = p.Layout.Text
	}
	c.ops = append(c.ops, DisplayOp{
		Op: "drawText",
		Params: sortedMap(
			"text", text,
			"x", round2(p.Origin.X),
			"y", round2(p.Origin.Y),
			"color", serializeColor(p.Color),
			"clip", serializeRect(clip),
		),
	})
}

func (c *serializingCanvas) DrawImage(p graphics.ImagePrimitive, clip graphics.Rect) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawImage",
		Params: sortedMap(
			"texture", uint64(p.Texture),
			"rect", serializeRect(p.Rect),
			"uv", serializeRect(p.UV),
			"clip", serializeRect(clip),
		),
	})
}

// serializeDisplayList replays a DisplayList through the serializing canvas.
func serializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	canvas := &serializingCanvas{}
	dl.Paint(canvas)
	return canvas.ops
}

// Ops returns the last frame's display list as serialized ops in paint order.
func (t *Tester) Ops() []DisplayOp {
	return serializeDisplayList(t.DisplayList())
}

// Texts returns the strings drawn in the last frame, in paint order.
func (t *Tester) Texts() []string {
	var out []string
	for _, item := range t.DisplayList().Items() {
		if p, ok := item.Primitive.(graphics.TextPrimitive); ok && p.Layout != nil {
			out = append(out, p.Layout.Text)
		}
	}
	return out
}

// --- Serialization helpers ---

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs. JSON encoding
// sorts the keys, which keeps snapshots stable.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
