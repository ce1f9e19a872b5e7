package widgets

import (
	"github.com/go-drift/sway/pkg/core"
	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
	"github.com/go-drift/sway/pkg/input"
	"github.com/go-drift/sway/pkg/layout"
)

// FullUV covers a whole texture.
var FullUV = graphics.Rect{Right: 1, Bottom: 1}

// Image draws a texture previously uploaded to the rendering backend.
type Image struct {
	ID      identity.Gen
	Texture graphics.TextureID
	// UV selects the part of the texture to draw. The zero rect means FullUV.
	UV          graphics.Rect
	Tint        graphics.Color
	LayoutHints layout.Hints
	MinSize     graphics.Size
}

// ImageOf returns an image of the given fixed size.
func ImageOf(texture graphics.TextureID, size graphics.Size) Image {
	return Image{Texture: texture, MinSize: size, LayoutHints: layout.DefaultHints()}
}

func (img Image) Hints() layout.Hints {
	return img.LayoutHints
}

func (img Image) Layout(_ *core.Context, parent identity.ID, available graphics.Size, forceShrink bool) layout.Node {
	id := img.ID.ResolveOr(parent, img.Texture)
	return layout.Leaf(id, sizeFor(img.LayoutHints.Size, forceShrink, img.MinSize, available))
}

func (img Image) OnEvent(*core.Context, *layout.Node, graphics.Offset, []input.Event, *input.EventStatus) {
}

func (img Image) Draw(ctx *core.Context, node *layout.Node) {
	uv := img.UV
	if uv == (graphics.Rect{}) {
		uv = FullUV
	}
	tint := img.Tint
	if tint == 0 {
		tint = graphics.ColorWhite
	}
	ctx.Paint(func(p *graphics.Painter) {
		p.Image(graphics.ImagePrimitive{Rect: node.Bounds, Texture: img.Texture, UV: uv, Tint: tint})
	})
}
