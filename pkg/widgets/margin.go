package widgets

import (
	"github.com/go-drift/sway/pkg/core"
	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
	"github.com/go-drift/sway/pkg/input"
	"github.com/go-drift/sway/pkg/layout"
)

// Margin surrounds its contents with empty space on every side and can paint
// a background behind them.
type Margin struct {
	ID identity.Gen
	// Margin is the space added on each side, horizontally and vertically.
	Margin     graphics.Size
	Contents   core.Widget
	Background graphics.Color
	Stroke     graphics.Stroke
	Radius     graphics.Radius
}

// MarginOf surrounds contents with the same margin on all sides.
func MarginOf(id identity.Gen, margin float64, contents core.Widget) Margin {
	return Margin{ID: id, Margin: graphics.Size{Width: margin, Height: margin}, Contents: contents}
}

// WithBackground returns a copy of the margin painting the given background.
func (m Margin) WithBackground(fill graphics.Color, stroke graphics.Stroke) Margin {
	m.Background = fill
	m.Stroke = stroke
	return m
}

func (m Margin) Hints() layout.Hints {
	return m.Contents.Hints()
}

func (m Margin) Layout(ctx *core.Context, parent identity.ID, available graphics.Size, forceShrink bool) layout.Node {
	id := m.ID.ResolveOr(parent, "margin")
	child := m.Contents.Layout(ctx, id, shrinkBy(available, m.Margin), forceShrink)
	child.Translate(m.Margin.ToOffset())
	return layout.WithChildren(id, growBy(child.Size(), m.Margin), []layout.Node{child})
}

func (m Margin) OnEvent(ctx *core.Context, node *layout.Node, cursor graphics.Offset, events []input.Event, status *input.EventStatus) {
	m.Contents.OnEvent(ctx, core.ChildNode("Margin.OnEvent", node, 0), cursor, events, status)
}

func (m Margin) Draw(ctx *core.Context, node *layout.Node) {
	if m.Background != 0 || !m.Stroke.IsZero() {
		ctx.Paint(func(p *graphics.Painter) {
			p.Rect(graphics.RectPrimitive{Rect: node.Bounds, Radius: m.Radius, Fill: m.Background, Stroke: m.Stroke})
		})
	}
	m.Contents.Draw(ctx, core.ChildNode("Margin.Draw", node, 0))
}
