package widgets

import (
	"github.com/go-drift/sway/pkg/core"
	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
	"github.com/go-drift/sway/pkg/input"
	"github.com/go-drift/sway/pkg/layout"
)

// ColoredBox is a filled, optionally stroked rectangle.
type ColoredBox struct {
	ID          identity.Gen
	LayoutHints layout.Hints
	MinSize     graphics.Size
	Radius      graphics.Radius
	Fill        graphics.Color
	Stroke      graphics.Stroke
}

// Background returns a box filling all available space with color.
func Background(color graphics.Color) ColoredBox {
	return ColoredBox{ID: identity.Key("background"), LayoutHints: layout.FillHints(), Fill: color}
}

func (b ColoredBox) Hints() layout.Hints {
	return b.LayoutHints
}

func (b ColoredBox) Layout(_ *core.Context, parent identity.ID, available graphics.Size, forceShrink bool) layout.Node {
	id := b.ID.ResolveOr(parent, "colored_box")
	return layout.Leaf(id, sizeFor(b.LayoutHints.Size, forceShrink, b.MinSize, available))
}

func (b ColoredBox) OnEvent(*core.Context, *layout.Node, graphics.Offset, []input.Event, *input.EventStatus) {
}

func (b ColoredBox) Draw(ctx *core.Context, node *layout.Node) {
	ctx.Paint(func(p *graphics.Painter) {
		p.Rect(graphics.RectPrimitive{Rect: node.Bounds, Radius: b.Radius, Fill: b.Fill, Stroke: b.Stroke})
	})
}
