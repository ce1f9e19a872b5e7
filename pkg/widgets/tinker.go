package widgets

import (
	"github.com/go-drift/sway/pkg/core"
	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
	"github.com/go-drift/sway/pkg/input"
	"github.com/go-drift/sway/pkg/layout"
)

// EventHook runs custom event handling around a widget. Calling
// status.Consume stops propagation.
type EventHook func(ctx *core.Context, node *layout.Node, cursor graphics.Offset, events []input.Event, status *input.EventStatus)

// DrawHook runs custom drawing around a widget.
type DrawHook func(ctx *core.Context, node *layout.Node)

// Tinker wraps a widget and runs hooks at points of its lifecycle. It covers
// most custom drawing and input handling without writing a widget.
//
// Tinker adds no node of its own: hooks see the contents' node.
type Tinker struct {
	Contents core.Widget
	// PreEvent runs before the contents handle events. It is skipped when
	// the events were consumed earlier in the tree.
	PreEvent EventHook
	// PostEvent runs after the contents, unless they consumed the events.
	PostEvent EventHook
	PreDraw   DrawHook
	PostDraw  DrawHook
	// PostLayout inspects the contents' node right after layout.
	PostLayout func(ctx *core.Context, node *layout.Node)
}

func (t Tinker) Hints() layout.Hints {
	return t.Contents.Hints()
}

func (t Tinker) Layout(ctx *core.Context, parent identity.ID, available graphics.Size, forceShrink bool) layout.Node {
	node := t.Contents.Layout(ctx, parent, available, forceShrink)
	if t.PostLayout != nil {
		t.PostLayout(ctx, &node)
	}
	return node
}

func (t Tinker) OnEvent(ctx *core.Context, node *layout.Node, cursor graphics.Offset, events []input.Event, status *input.EventStatus) {
	if status.Consumed() {
		return
	}
	if t.PreEvent != nil {
		t.PreEvent(ctx, node, cursor, events, status)
		if status.Consumed() {
			return
		}
	}
	t.Contents.OnEvent(ctx, node, cursor, events, status)
	if status.Consumed() {
		return
	}
	if t.PostEvent != nil {
		t.PostEvent(ctx, node, cursor, events, status)
	}
}

func (t Tinker) Draw(ctx *core.Context, node *layout.Node) {
	if t.PreDraw != nil {
		t.PreDraw(ctx, node)
	}
	t.Contents.Draw(ctx, node)
	if t.PostDraw != nil {
		t.PostDraw(ctx, node)
	}
}
