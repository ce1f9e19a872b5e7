package widgets

import (
	"github.com/go-drift/sway/pkg/callback"
	"github.com/go-drift/sway/pkg/core"
	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
	"github.com/go-drift/sway/pkg/input"
	"github.com/go-drift/sway/pkg/layout"
	"github.com/go-drift/sway/pkg/memory"
	"github.com/go-drift/sway/pkg/theme"
)

// Button is a clickable frame around arbitrary contents.
//
// OnClick is dispatched when the primary button is pressed over the button;
// the press is then consumed. Hover and press feedback is kept in memory
// under the button's ID, which defaults to its label for ButtonOf.
//
// Example using struct literal:
//
//	Button{
//	    ID:       identity.Key("ok"),
//	    Contents: TextOf("OK"),
//	    OnClick:  onOK,
//	}
//
// Example using the helper:
//
//	ButtonOf("OK").WithOnClick(onOK)
type Button struct {
	ID          identity.Gen
	Contents    core.Widget
	LayoutHints layout.Hints
	// MinSize is the smallest size of the button including padding.
	MinSize graphics.Size
	// AlignStart puts the contents at the leading edge instead of centering them.
	AlignStart bool
	// Style overrides the theme's button style.
	Style   *theme.ButtonStyle
	OnClick callback.Callback[struct{}]
}

type buttonState struct {
	Hovered bool
	Pressed bool
}

// ButtonOf creates a button showing label, keyed by label.
func ButtonOf(label string) Button {
	return Button{ID: identity.Key(label), Contents: TextOf(label), LayoutHints: layout.DefaultHints()}
}

// ButtonWithIcon creates a button showing an icon followed by label, keyed by label.
func ButtonWithIcon(label string, icon Image) Button {
	return Button{
		ID:          identity.Key(label),
		Contents:    HBox(identity.Key("contents"), icon, TextOf(label)).WithAlign(layout.AlignStart, layout.AlignCenter),
		LayoutHints: layout.DefaultHints(),
	}
}

// WithOnClick returns a copy of the button with the given click callback.
func (b Button) WithOnClick(cb callback.Callback[struct{}]) Button {
	b.OnClick = cb
	return b
}

// WithHints returns a copy of the button with the given hints.
func (b Button) WithHints(h layout.Hints) Button {
	b.LayoutHints = h
	return b
}

// WithStyle returns a copy of the button with a style override.
func (b Button) WithStyle(s theme.ButtonStyle) Button {
	b.Style = &s
	return b
}

// WithMinSize returns a copy of the button with the given minimum size.
func (b Button) WithMinSize(s graphics.Size) Button {
	b.MinSize = s
	return b
}

func (b Button) style(ctx *core.Context) theme.ButtonStyle {
	if b.Style != nil {
		return *b.Style
	}
	return ctx.Theme.Button
}

func (b Button) Hints() layout.Hints {
	return b.LayoutHints
}

func (b Button) Layout(ctx *core.Context, parent identity.ID, available graphics.Size, forceShrink bool) layout.Node {
	id := b.ID.ResolveOr(parent, "button")
	pad := b.style(ctx).Padding

	child := b.Contents.Layout(ctx, id, shrinkBy(available, pad), forceShrink)
	natural := growBy(child.Size(), pad).Max(b.MinSize)
	size := sizeFor(b.LayoutHints.Size, forceShrink, natural, available)

	dx := (size.Width - child.Bounds.Width()) / 2
	if b.AlignStart {
		dx = pad.Width
	}
	child.ClearTranslation()
	child.Translate(graphics.Offset{X: dx, Y: (size.Height - child.Bounds.Height()) / 2})
	return layout.WithChildren(id, size, []layout.Node{child})
}

func (b Button) OnEvent(ctx *core.Context, node *layout.Node, cursor graphics.Offset, events []input.Event, status *input.EventStatus) {
	hovered := node.Bounds.Contains(cursor)
	if hovered {
		for _, ev := range events {
			if p, ok := ev.(input.MousePressed); ok && p.Button == input.ButtonPrimary {
				if !b.OnClick.IsZero() {
					core.Dispatch(ctx, b.OnClick, struct{}{})
				}
				status.Consume()
				break
			}
		}
	}
	memory.Set(ctx.Memory, node.ID, buttonState{
		Hovered: hovered,
		Pressed: hovered && ctx.Input.IsDown(input.ButtonPrimary),
	})
}

func (b Button) Draw(ctx *core.Context, node *layout.Node) {
	style := b.style(ctx)
	st := memory.ReadOr(ctx.Memory, node.ID, buttonState{})
	fill := style.Fill
	switch {
	case st.Pressed:
		fill = style.Pressed
	case st.Hovered:
		fill = style.Hovered
	}
	ctx.Paint(func(p *graphics.Painter) {
		p.Rect(graphics.RectPrimitive{Rect: node.Bounds, Radius: style.Radius, Fill: fill, Stroke: style.Stroke})
	})
	b.Contents.Draw(ctx, core.ChildNode("Button.Draw", node, 0))
}
