// Package testbed provides internal test widgets for the testing framework.
package testbed

import (
	"github.com/go-drift/sway/pkg/callback"
	"github.com/go-drift/sway/pkg/core"
	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
	"github.com/go-drift/sway/pkg/input"
	"github.com/go-drift/sway/pkg/layout"
	"github.com/go-drift/sway/pkg/memory"
)

// Counter is a square that counts primary presses on it. The count lives in
// persistent memory; OnTap, if set, receives the new count.
type Counter struct {
	Key   string
	Size  float64
	OnTap callback.Callback[int]
}

func (c Counter) Hints() layout.Hints { return layout.DefaultHints() }

func (c Counter) Layout(ctx *core.Context, parent identity.ID, _ graphics.Size, _ bool) layout.Node {
	id := parent.With(c.Key)
	memory.GetOr(ctx.Memory, id, 0).Release()
	return layout.Leaf(id, graphics.Size{Width: c.Size, Height: c.Size})
}

func (c Counter) OnEvent(ctx *core.Context, node *layout.Node, cursor graphics.Offset, events []input.Event, status *input.EventStatus) {
	if !node.Bounds.Contains(cursor) {
		return
	}
	for _, ev := range events {
		if p, ok := ev.(input.MousePressed); ok && p.Button == input.ButtonPrimary {
			var count int
			memory.Update(ctx.Memory, node.ID, 0, func(n *int) {
				*n++
				count = *n
			})
			if !c.OnTap.IsZero() {
				core.Dispatch(ctx, c.OnTap, count)
			}
			status.Consume()
		}
	}
}

func (c Counter) Draw(ctx *core.Context, node *layout.Node) {
	ctx.Paint(func(p *graphics.Painter) {
		p.Rect(graphics.RectPrimitive{Rect: node.Bounds, Fill: graphics.ColorWhite})
	})
}

// Count returns the presses recorded for the counter with id.
func Count(ctx *core.Context, id identity.ID) int {
	return memory.ReadOr(ctx.Memory, id, 0)
}
