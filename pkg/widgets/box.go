package widgets

import (
	"github.com/go-drift/sway/pkg/core"
	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
	"github.com/go-drift/sway/pkg/input"
	"github.com/go-drift/sway/pkg/layout"
)

// ConfiguredSeparation makes a Box use the separation from sway.yaml.
const ConfiguredSeparation = -1

// Box lays out its children in a single row or column.
//
// Shrink children take their natural size along the axis; Fill children share
// what is left in proportion to their weight. MainAlign only applies when no
// child fills the main axis. Events go to the children in order until one
// consumes them.
//
// Example:
//
//	VBox(identity.Key("items"),
//	    TextOf("Name"),
//	    TextEdit{ID: identity.Key("name"), Contents: name},
//	)
type Box struct {
	ID       identity.Gen
	Axis     layout.Axis
	Children []core.Widget
	// Separation is the gap between children. ConfiguredSeparation uses
	// the layout.default_separation setting.
	Separation  float64
	MainAlign   layout.Align
	CrossAlign  layout.Align
	LayoutHints layout.Hints
}

// VBox creates a vertical box with the configured separation.
func VBox(id identity.Gen, children ...core.Widget) Box {
	return Box{ID: id, Axis: layout.AxisVertical, Children: children, Separation: ConfiguredSeparation, LayoutHints: layout.DefaultHints()}
}

// HBox creates a horizontal box with the configured separation.
func HBox(id identity.Gen, children ...core.Widget) Box {
	return Box{ID: id, Axis: layout.AxisHorizontal, Children: children, Separation: ConfiguredSeparation, LayoutHints: layout.DefaultHints()}
}

// WithHints returns a copy of the box with the given hints.
func (b Box) WithHints(h layout.Hints) Box {
	b.LayoutHints = h
	return b
}

// WithSeparation returns a copy of the box with the given gap.
func (b Box) WithSeparation(sep float64) Box {
	b.Separation = sep
	return b
}

// WithAlign returns a copy of the box with the given alignments.
func (b Box) WithAlign(main, cross layout.Align) Box {
	b.MainAlign = main
	b.CrossAlign = cross
	return b
}

func (b Box) Hints() layout.Hints {
	return b.LayoutHints
}

func (b Box) Layout(ctx *core.Context, parent identity.ID, available graphics.Size, forceShrink bool) layout.Node {
	id := b.ID.ResolveOr(parent, "box:"+b.Axis.String())
	sep := b.Separation
	if sep < 0 {
		sep = ctx.Config.Layout.DefaultSeparation
	}
	alg := layout.Box{
		Axis:         b.Axis,
		Separation:   sep,
		MainAlign:    b.MainAlign,
		CrossAlign:   b.CrossAlign,
		Hints:        b.LayoutHints,
		OnDegenerate: ctx.DegenerateReporter("Box.Layout"),
	}
	return alg.Layout(id, core.AsChildren(ctx, b.Children, id), available, forceShrink)
}

func (b Box) OnEvent(ctx *core.Context, node *layout.Node, cursor graphics.Offset, events []input.Event, status *input.EventStatus) {
	core.ForwardEvents(ctx, "Box.OnEvent", b.Children, node, cursor, events, status)
}

func (b Box) Draw(ctx *core.Context, node *layout.Node) {
	core.DrawChildren(ctx, "Box.Draw", b.Children, node)
}
