package widgets

import (
	"github.com/go-drift/sway/pkg/core"
	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
	"github.com/go-drift/sway/pkg/input"
	"github.com/go-drift/sway/pkg/layout"
	"github.com/go-drift/sway/pkg/memory"
)

const (
	// DefaultSplitFrac puts the handle in the middle.
	DefaultSplitFrac = 0.5
	minSplitFrac     = 0.01
	maxSplitFrac     = 0.99
)

// SplitPane shows two widgets side by side along Axis, separated by a handle
// that can be dragged to resize them.
//
// A SplitPane always fills the space it is given and ignores force-shrink.
// The handle position is kept in memory as a fraction of the pane's extent.
type SplitPane struct {
	ID     identity.Gen
	Axis   layout.Axis
	First  core.Widget
	Second core.Widget
	// DefaultFrac is the initial handle position, DefaultSplitFrac when zero.
	DefaultFrac float64
	// HandleWidth overrides the theme's handle width.
	HandleWidth float64
}

type splitPaneState struct {
	Frac    float64
	Hovered bool
}

// HSplit places first left of second.
func HSplit(id identity.Gen, first, second core.Widget) SplitPane {
	return SplitPane{ID: id, Axis: layout.AxisHorizontal, First: first, Second: second}
}

// VSplit places first above second.
func VSplit(id identity.Gen, first, second core.Widget) SplitPane {
	return SplitPane{ID: id, Axis: layout.AxisVertical, First: first, Second: second}
}

func (s SplitPane) defaultState() splitPaneState {
	frac := s.DefaultFrac
	if frac == 0 {
		frac = DefaultSplitFrac
	}
	return splitPaneState{Frac: clamp(frac, minSplitFrac, maxSplitFrac)}
}

func (s SplitPane) handleWidth(ctx *core.Context) float64 {
	if s.HandleWidth > 0 {
		return s.HandleWidth
	}
	return ctx.Theme.SplitPane.HandleWidth
}

func (s SplitPane) handleRect(ctx *core.Context, bounds graphics.Rect, frac float64) graphics.Rect {
	main := s.Axis.Main(bounds.Size())
	cross := s.Axis.CrossOf(bounds.Size())
	center := bounds.TopLeft().Add(s.Axis.MakeOffset(main*frac, cross/2))
	return graphics.RectFromCenterSize(center, s.Axis.MakeSize(s.handleWidth(ctx), cross))
}

func (s SplitPane) Hints() layout.Hints {
	return layout.FillHints()
}

func (s SplitPane) Layout(ctx *core.Context, parent identity.ID, available graphics.Size, forceShrink bool) layout.Node {
	id := s.ID.ResolveOr(parent, "split_pane")
	if forceShrink {
		ctx.Warn(id, "SplitPane.Layout", "split pane cannot shrink, filling the available space")
	}
	frac := memory.ReadOr(ctx.Memory, id, s.defaultState()).Frac
	half := s.handleWidth(ctx) / 2
	main := s.Axis.Main(available)
	cross := s.Axis.CrossOf(available)

	first := s.First.Layout(ctx, id, s.Axis.MakeSize(max(0, main*frac-half), cross), false)
	first.ClearTranslation()
	second := s.Second.Layout(ctx, id, s.Axis.MakeSize(max(0, main*(1-frac)-half), cross), false)
	second.ClearTranslation()
	second.Translate(s.Axis.MakeOffset(main*frac+half, 0))

	return layout.WithChildren(id, available, []layout.Node{first, second})
}

func (s SplitPane) OnEvent(ctx *core.Context, node *layout.Node, cursor graphics.Offset, events []input.Event, status *input.EventStatus) {
	id := node.ID
	st := memory.ReadOr(ctx.Memory, id, s.defaultState())
	handle := s.handleRect(ctx, node.Bounds, st.Frac)
	st.Hovered = handle.Contains(cursor)

	if ctx.ClaimDrag(id, handle, input.ButtonPrimary) {
		if main := s.Axis.Main(node.Bounds.Size()); main > 0 && !ctx.Input.IsPressed(input.ButtonPrimary) {
			delta := s.Axis.MainOffset(ctx.PointerDelta())
			st.Frac = clamp(st.Frac+delta/main, minSplitFrac, maxSplitFrac)
		}
		st.Hovered = true
		status.Consume()
	}
	memory.Set(ctx.Memory, id, st)

	core.ForwardEvents(ctx, "SplitPane.OnEvent", []core.Widget{s.First, s.Second}, node, cursor, events, status)
}

func (s SplitPane) Draw(ctx *core.Context, node *layout.Node) {
	core.DrawChildren(ctx, "SplitPane.Draw", []core.Widget{s.First, s.Second}, node)

	st := memory.ReadOr(ctx.Memory, node.ID, s.defaultState())
	style := ctx.Theme.SplitPane
	fill := style.Handle
	if st.Hovered {
		fill = style.HandleHovered
	}
	// The visible handle is thinner than its hit area.
	visual := s.handleRect(ctx, node.Bounds, st.Frac)
	inset := s.Axis.MakeOffset(0.5, 0.1*s.Axis.CrossOf(visual.Size()))
	visual = visual.Inset(inset.X, inset.Y)
	ctx.Paint(func(p *graphics.Painter) {
		p.Rect(graphics.RectPrimitive{Rect: visual, Radius: 2, Fill: fill})
	})
}
