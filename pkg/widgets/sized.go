package widgets

import (
	"github.com/go-drift/sway/pkg/core"
	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
	"github.com/go-drift/sway/pkg/input"
	"github.com/go-drift/sway/pkg/layout"
)

// Sized lays out its contents as if Size were the available space. It adds
// no node of its own.
type Sized struct {
	Size     graphics.Size
	Contents core.Widget
}

func (s Sized) Hints() layout.Hints {
	return s.Contents.Hints()
}

func (s Sized) Layout(ctx *core.Context, parent identity.ID, _ graphics.Size, forceShrink bool) layout.Node {
	return s.Contents.Layout(ctx, parent, s.Size, forceShrink)
}

func (s Sized) OnEvent(ctx *core.Context, node *layout.Node, cursor graphics.Offset, events []input.Event, status *input.EventStatus) {
	s.Contents.OnEvent(ctx, node, cursor, events, status)
}

func (s Sized) Draw(ctx *core.Context, node *layout.Node) {
	s.Contents.Draw(ctx, node)
}
