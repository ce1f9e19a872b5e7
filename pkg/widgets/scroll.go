package widgets

import (
	"math"

	"github.com/go-drift/sway/pkg/core"
	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
	"github.com/go-drift/sway/pkg/input"
	"github.com/go-drift/sway/pkg/layout"
	"github.com/go-drift/sway/pkg/memory"
)

const scrollHandleInset = 2

// VScroll shows a vertical window onto contents taller than itself.
//
// The wheel scrolls while the pointer is over the container, and the
// scrollbar handle can be dragged. Children receive pointer positions in
// content space. The scroll position is kept in memory as a fraction of the
// overflow, so it survives changes to the contents' height.
type VScroll struct {
	ID          identity.Gen
	Contents    core.Widget
	LayoutHints layout.Hints
	// MinHeight is the height of the viewport when it shrinks.
	MinHeight float64
	// BarWidth overrides the theme's scrollbar width.
	BarWidth float64
}

type scrollState struct {
	// Frac is the scroll position between 0 (top) and 1 (bottom).
	Frac    float64
	Hovered bool
}

// VScrollOf wraps contents in a scroll container filling its parent.
func VScrollOf(id identity.Gen, contents core.Widget) VScroll {
	return VScroll{ID: id, Contents: contents, LayoutHints: layout.FillHints()}
}

func (s VScroll) barWidth(ctx *core.Context) float64 {
	if s.BarWidth > 0 {
		return s.BarWidth
	}
	return ctx.Theme.Scroll.BarWidth
}

func (s VScroll) Hints() layout.Hints {
	return s.LayoutHints
}

func (s VScroll) Layout(ctx *core.Context, parent identity.ID, available graphics.Size, forceShrink bool) layout.Node {
	id := s.ID.ResolveOr(parent, "vscroll")
	bar := s.barWidth(ctx)

	var size graphics.Size
	if s.LayoutHints.Size.Width.OrForce(forceShrink) == layout.Fill {
		size.Width = available.Width
	} else {
		size.Width = s.Contents.Layout(ctx, id, available, true).Bounds.Width() + bar
	}
	if s.LayoutHints.Size.Height.OrForce(forceShrink) == layout.Fill {
		size.Height = available.Height
	} else {
		size.Height = s.MinHeight
	}

	content := s.Contents.Layout(ctx, id, graphics.Size{Width: max(0, size.Width-bar), Height: size.Height}, forceShrink)
	content.ClearTranslation()
	scrollbar := layout.Leaf(id.With("scrollbar"), graphics.Size{Width: bar, Height: size.Height}).
		Translated(graphics.Offset{X: size.Width - bar})
	return layout.WithChildren(id, size, []layout.Node{content, scrollbar})
}

// overflow returns how far the contents extend past the viewport.
func overflow(node *layout.Node) float64 {
	content := core.ChildNode("VScroll", node, 0)
	return max(0, content.Bounds.Height()-node.Bounds.Height())
}

func handleBounds(node *layout.Node, frac float64) graphics.Rect {
	bar := core.ChildNode("VScroll", node, 1).Bounds
	content := core.ChildNode("VScroll", node, 0).Bounds
	h := bar.Height()
	if content.Height() > node.Bounds.Height() {
		h = bar.Height() * node.Bounds.Height() / content.Height()
	}
	top := bar.Top + (bar.Height()-h)*frac
	return graphics.RectFromLTWH(bar.Left, top, bar.Width(), h).Inset(scrollHandleInset, scrollHandleInset)
}

func (s VScroll) OnEvent(ctx *core.Context, node *layout.Node, cursor graphics.Offset, events []input.Event, status *input.EventStatus) {
	id := node.ID
	st := memory.ReadOr(ctx.Memory, id, scrollState{})
	over := overflow(node)
	st.Frac = clamp(st.Frac, 0, 1)

	inside := node.Bounds.Contains(cursor)
	t := graphics.Translated(graphics.Offset{Y: over * st.Frac})
	ctx.WithCursorTransform(t, func() {
		childCursor := t.Apply(cursor)
		if !inside {
			childCursor = graphics.Offset{X: math.Inf(-1), Y: math.Inf(-1)}
		}
		s.Contents.OnEvent(ctx, core.ChildNode("VScroll.OnEvent", node, 0), childCursor, events, status)
	})
	if status.Consumed() {
		return
	}

	if inside && over > 0 {
		for _, ev := range events {
			if w, ok := ev.(input.MouseWheel); ok {
				st.Frac = clamp(st.Frac-w.Delta.Y/over, 0, 1)
				status.Consume()
			}
		}
	}

	handle := handleBounds(node, st.Frac)
	st.Hovered = handle.Contains(cursor)
	if ctx.ClaimDrag(id, handle, input.ButtonPrimary) {
		track := core.ChildNode("VScroll.OnEvent", node, 1).Bounds.Height() - handle.Height() - 2*scrollHandleInset
		// Movement before the press does not count.
		if track > 0 && !ctx.Input.IsPressed(input.ButtonPrimary) {
			st.Frac = clamp(st.Frac+ctx.PointerDelta().Y/track, 0, 1)
		}
		st.Hovered = true
		status.Consume()
	}
	memory.Set(ctx.Memory, id, st)
}

func (s VScroll) Draw(ctx *core.Context, node *layout.Node) {
	st := memory.ReadOr(ctx.Memory, node.ID, scrollState{})
	y := overflow(node) * clamp(st.Frac, 0, 1)

	var prevTransform graphics.Transform
	var prevClip graphics.Rect
	ctx.Paint(func(p *graphics.Painter) {
		prevTransform = p.Transform()
		prevClip = p.IntersectClip(prevTransform.ApplyRect(node.Bounds))
		p.SetTransform(graphics.Translated(graphics.Offset{Y: -y}).Then(prevTransform))
	})
	s.Contents.Draw(ctx, core.ChildNode("VScroll.Draw", node, 0))

	style := ctx.Theme.Scroll
	ctx.Paint(func(p *graphics.Painter) {
		p.SetTransform(prevTransform)
		p.SetClip(prevClip)

		p.Rect(graphics.RectPrimitive{Rect: core.ChildNode("VScroll.Draw", node, 1).Bounds, Fill: style.Track})
		fill := style.Handle
		if st.Hovered {
			fill = style.HandleHovered
		}
		p.Rect(graphics.RectPrimitive{Rect: handleBounds(node, st.Frac), Radius: 1, Fill: fill})
	})
}
