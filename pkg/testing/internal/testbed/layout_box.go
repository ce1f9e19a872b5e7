package testbed

import (
	"github.com/go-drift/sway/pkg/core"
	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
	"github.com/go-drift/sway/pkg/input"
	"github.com/go-drift/sway/pkg/layout"
)

// LayoutBox is a fixed-size colored box for layout testing.
type LayoutBox struct {
	Key    string
	Width  float64
	Height float64
	Color  graphics.Color
	Fill   layout.SizeHints
}

func (b LayoutBox) Hints() layout.Hints {
	return layout.Hints{Size: b.Fill, Weight: 1}
}

func (b LayoutBox) Layout(_ *core.Context, parent identity.ID, available graphics.Size, forceShrink bool) layout.Node {
	size := graphics.Size{Width: b.Width, Height: b.Height}
	if b.Fill.Width.OrForce(forceShrink) == layout.Fill {
		size.Width = available.Width
	}
	if b.Fill.Height.OrForce(forceShrink) == layout.Fill {
		size.Height = available.Height
	}
	return layout.Leaf(parent.With(b.Key), size)
}

func (b LayoutBox) OnEvent(*core.Context, *layout.Node, graphics.Offset, []input.Event, *input.EventStatus) {
}

func (b LayoutBox) Draw(ctx *core.Context, node *layout.Node) {
	if b.Color == 0 {
		return
	}
	ctx.Paint(func(p *graphics.Painter) {
		p.Rect(graphics.RectPrimitive{Rect: node.Bounds, Fill: b.Color})
	})
}
