package widgets

import (
	"github.com/go-drift/sway/pkg/core"
	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
	"github.com/go-drift/sway/pkg/input"
	"github.com/go-drift/sway/pkg/layout"
)

// Spacer is an invisible widget that takes up room in a Box.
type Spacer struct {
	MinSize     graphics.Size
	LayoutHints layout.Hints
}

// FillH returns a spacer filling the horizontal axis with the given weight.
func FillH(weight uint) Spacer {
	return Spacer{LayoutHints: layout.Hints{Size: layout.SizeHints{Width: layout.Fill}, Weight: weight}}
}

// FillV returns a spacer filling the vertical axis with the given weight.
func FillV(weight uint) Spacer {
	return Spacer{LayoutHints: layout.Hints{Size: layout.SizeHints{Height: layout.Fill}, Weight: weight}}
}

// H returns a fixed horizontal gap.
func H(length float64) Spacer {
	return Spacer{MinSize: graphics.Size{Width: length}, LayoutHints: layout.DefaultHints()}
}

// V returns a fixed vertical gap.
func V(length float64) Spacer {
	return Spacer{MinSize: graphics.Size{Height: length}, LayoutHints: layout.DefaultHints()}
}

func (s Spacer) Hints() layout.Hints {
	return s.LayoutHints
}

func (s Spacer) Layout(_ *core.Context, parent identity.ID, available graphics.Size, forceShrink bool) layout.Node {
	return layout.Leaf(parent.With("spacer"), sizeFor(s.LayoutHints.Size, forceShrink, s.MinSize, available))
}

func (s Spacer) OnEvent(*core.Context, *layout.Node, graphics.Offset, []input.Event, *input.EventStatus) {
}

func (s Spacer) Draw(*core.Context, *layout.Node) {}
