package widgets

import (
	"github.com/go-drift/sway/pkg/core"
	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
	"github.com/go-drift/sway/pkg/input"
	"github.com/go-drift/sway/pkg/layout"
)

// StackChild is a widget placed at a fixed offset inside a Stack.
type StackChild struct {
	Offset graphics.Offset
	Widget core.Widget
}

// Stack places children at fixed offsets on top of each other. Its size is
// the union of the children's bounds and the origin. Later children are drawn
// on top but receive events last.
type Stack struct {
	ID          identity.Gen
	Children    []StackChild
	LayoutHints layout.Hints
}

// StackOf creates a stack from children.
func StackOf(id identity.Gen, children ...StackChild) Stack {
	return Stack{ID: id, Children: children, LayoutHints: layout.DefaultHints()}
}

// At places w at offset within a Stack.
func At(offset graphics.Offset, w core.Widget) StackChild {
	return StackChild{Offset: offset, Widget: w}
}

func (s Stack) widgets() []core.Widget {
	out := make([]core.Widget, len(s.Children))
	for i, c := range s.Children {
		out[i] = c.Widget
	}
	return out
}

func (s Stack) Hints() layout.Hints {
	return s.LayoutHints
}

func (s Stack) Layout(ctx *core.Context, parent identity.ID, available graphics.Size, forceShrink bool) layout.Node {
	id := s.ID.ResolveOr(parent, "stack")
	bounds := graphics.Rect{}
	nodes := make([]layout.Node, len(s.Children))
	for i, c := range s.Children {
		avail := available.Sub(graphics.Size{Width: c.Offset.X, Height: c.Offset.Y})
		n := c.Widget.Layout(ctx, id, avail, forceShrink)
		n.Translate(c.Offset)
		bounds = bounds.Union(n.Bounds)
		nodes[i] = n
	}
	return layout.WithChildren(id, graphics.Size{Width: bounds.Right, Height: bounds.Bottom}, nodes)
}

func (s Stack) OnEvent(ctx *core.Context, node *layout.Node, cursor graphics.Offset, events []input.Event, status *input.EventStatus) {
	core.ForwardEvents(ctx, "Stack.OnEvent", s.widgets(), node, cursor, events, status)
}

func (s Stack) Draw(ctx *core.Context, node *layout.Node) {
	core.DrawChildren(ctx, "Stack.Draw", s.widgets(), node)
}
