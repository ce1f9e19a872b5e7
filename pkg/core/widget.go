package core

import (
	"fmt"

	"github.com/go-drift/sway/pkg/errors"
	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
	"github.com/go-drift/sway/pkg/input"
	"github.com/go-drift/sway/pkg/layout"
)

// Widget is implemented by every leaf and container.
type Widget interface {
	// Layout computes the widget's node, relative to its parent, within
	// available. It may read and initialize its own persistent memory.
	// forceShrink is set when an ancestor needs the widget's natural size.
	Layout(ctx *Context, parent identity.ID, available graphics.Size, forceShrink bool) layout.Node
	// OnEvent handles the frame's event batch. node holds absolute bounds.
	// A widget that acts on the batch calls status.Consume.
	OnEvent(ctx *Context, node *layout.Node, cursor graphics.Offset, events []input.Event, status *input.EventStatus)
	// Draw records primitives for node. It must not change layout state.
	Draw(ctx *Context, node *layout.Node)
	// Hints reports how the widget wants to be sized. It is called before Layout.
	Hints() layout.Hints
}

// boundChild adapts a Widget to layout.Child for a fixed parent.
type boundChild struct {
	ctx    *Context
	widget Widget
	parent identity.ID
}

func (c boundChild) Hints() layout.Hints { return c.widget.Hints() }

func (c boundChild) Layout(available graphics.Size, forceShrink bool) layout.Node {
	return c.widget.Layout(c.ctx, c.parent, available, forceShrink)
}

// AsChild binds w to parent so a layout algorithm can lay it out.
func AsChild(ctx *Context, w Widget, parent identity.ID) layout.Child {
	return boundChild{ctx: ctx, widget: w, parent: parent}
}

// AsChildren binds every widget in ws to parent.
func AsChildren(ctx *Context, ws []Widget, parent identity.ID) []layout.Child {
	out := make([]layout.Child, len(ws))
	for i, w := range ws {
		out[i] = AsChild(ctx, w, parent)
	}
	return out
}

// ChildNode returns the i-th child of node. A container whose event or draw
// phase disagrees with its layout about the number of children aborts the frame.
func ChildNode(op string, node *layout.Node, i int) *layout.Node {
	child, ok := node.Child(i)
	if !ok {
		errors.FatalWidget(op, errors.KindInvariant, node.ID,
			fmt.Errorf("index %d of %d: %w", i, len(node.Children), errors.ErrMissingChild))
	}
	return child
}

// CheckID aborts the frame when a node does not belong to the widget handling it.
func CheckID(op string, got, want identity.ID) {
	if got == want {
		return
	}
	errors.FatalWidget(op, errors.KindInvariant, want,
		fmt.Errorf("node %s, widget %s: %w", got, want, errors.ErrIDMismatch))
}

// ForwardEvents hands the batch to each child in layout order, stopping as
// soon as one consumes it.
func ForwardEvents(ctx *Context, op string, children []Widget, node *layout.Node, cursor graphics.Offset, events []input.Event, status *input.EventStatus) {
	for i, w := range children {
		if status.Consumed() {
			return
		}
		w.OnEvent(ctx, ChildNode(op, node, i), cursor, events, status)
	}
}

// DrawChildren draws each child in layout order.
func DrawChildren(ctx *Context, op string, children []Widget, node *layout.Node) {
	for i, w := range children {
		w.Draw(ctx, ChildNode(op, node, i))
	}
}
