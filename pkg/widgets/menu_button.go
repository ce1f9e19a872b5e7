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

// menuGap separates the menu from the button that opened it.
const menuGap = 3

var menuShadow = graphics.RGBA8(0, 0, 0, 0x33)

// MenuButton is a button that opens a popup menu of options.
//
// The menu is drawn above everything else. Choosing an option reports its
// index through OnSelected and closes the menu; a click anywhere else closes
// it too. Whether the menu is open is kept in memory.
type MenuButton struct {
	ID          identity.Gen
	Label       string
	Options     []string
	OnSelected  callback.Callback[int]
	LayoutHints layout.Hints
	// MenuMinWidth is the minimum width of the option buttons.
	MenuMinWidth float64
	// Icons are shown before the options with the same index.
	Icons []Image
}

type menuState struct {
	Open bool
}

// MenuButtonOf creates a menu button keyed by its label.
func MenuButtonOf(label string, options []string, onSelected callback.Callback[int]) MenuButton {
	return MenuButton{
		ID:          identity.Key(label),
		Label:       label,
		Options:     options,
		OnSelected:  onSelected,
		LayoutHints: layout.DefaultHints(),
	}
}

// menuWidgets are rebuilt identically in every phase so their IDs and
// layouts agree.
type menuWidgets struct {
	outer Button
	menu  Margin
}

// build creates the inner widgets. Click callbacks are only wired in the
// event phase.
func (m MenuButton) build(ctx *core.Context, onOuter callback.Callback[struct{}], onOption []callback.Callback[struct{}]) menuWidgets {
	style := ctx.Theme.Menu
	optionStyle := theme.ButtonStyle{
		Hovered: style.Hovered,
		Pressed: style.Hovered,
		Padding: style.Padding,
	}

	outer := ButtonOf(m.Label)
	outer.LayoutHints = m.LayoutHints
	outer.OnClick = onOuter

	children := make([]core.Widget, len(m.Options))
	for i, label := range m.Options {
		b := ButtonOf(label)
		if i < len(m.Icons) {
			b = ButtonWithIcon(label, m.Icons[i])
		}
		b.ID = identity.Key(i)
		b.LayoutHints = layout.FillHorizontal()
		b.AlignStart = true
		b.MinSize = graphics.Size{Width: m.MenuMinWidth}
		b = b.WithStyle(optionStyle)
		if i < len(onOption) {
			b.OnClick = onOption[i]
		}
		children[i] = b
	}

	column := VBox(identity.Key("contents_v"), children...).WithSeparation(0)
	column.LayoutHints = layout.ShrinkHints()
	return menuWidgets{
		outer: outer,
		menu:  Margin{ID: identity.Key("contents"), Margin: graphics.Size{Width: 2, Height: 2}, Contents: column},
	}
}

func (m MenuButton) Hints() layout.Hints {
	return m.LayoutHints
}

func (m MenuButton) Layout(ctx *core.Context, parent identity.ID, available graphics.Size, forceShrink bool) layout.Node {
	id := m.ID.ResolveOr(parent, "menu_button")
	w := m.build(ctx, callback.Callback[struct{}]{}, nil)

	outer := w.outer.Layout(ctx, id, available, forceShrink)
	outer.ClearTranslation()
	children := []layout.Node{outer}
	if memory.ReadOr(ctx.Memory, id, menuState{}).Open {
		menu := w.menu.Layout(ctx, id, ctx.Input.ScreenSize(), false)
		menu.ClearTranslation()
		menu.Translate(graphics.Offset{Y: outer.Bounds.Height() + menuGap})
		children = append(children, menu)
	}
	return layout.WithChildren(id, outer.Size(), children)
}

func (m MenuButton) OnEvent(ctx *core.Context, node *layout.Node, cursor graphics.Offset, events []input.Event, status *input.EventStatus) {
	id := node.ID
	onOuter, outerTok := core.NewInternalCallback[struct{}](ctx)
	onOption := make([]callback.Callback[struct{}], len(m.Options))
	optionToks := make([]callback.PollToken[struct{}], len(m.Options))
	for i := range m.Options {
		onOption[i], optionToks[i] = core.NewInternalCallback[struct{}](ctx)
	}
	w := m.build(ctx, onOuter, onOption)

	st := memory.ReadOr(ctx.Memory, id, menuState{})
	wasOpen := st.Open && len(node.Children) > 1

	if wasOpen {
		var inner input.EventStatus
		w.menu.OnEvent(ctx, core.ChildNode("MenuButton.OnEvent", node, 1), cursor, events, &inner)
		for i, tok := range optionToks {
			if _, ok := core.Poll(ctx, tok); ok {
				st.Open = false
				if !m.OnSelected.IsZero() {
					core.Dispatch(ctx, m.OnSelected, i)
				}
				status.Consume()
			}
		}
		if inner.Consumed() {
			status.Consume()
		}
	}

	if !status.Consumed() {
		var outerStatus input.EventStatus
		w.outer.OnEvent(ctx, core.ChildNode("MenuButton.OnEvent", node, 0), cursor, events, &outerStatus)
		if _, ok := core.Poll(ctx, outerTok); ok {
			st.Open = !st.Open
			status.Consume()
		}
	}

	if wasOpen && st.Open && ctx.Input.IsClicked(input.ButtonPrimary) &&
		!node.Children[0].Bounds.Contains(cursor) && !node.Children[1].Bounds.Contains(cursor) {
		st.Open = false
	}
	memory.Set(ctx.Memory, id, st)
}

func (m MenuButton) Draw(ctx *core.Context, node *layout.Node) {
	w := m.build(ctx, callback.Callback[struct{}]{}, nil)
	w.outer.Draw(ctx, core.ChildNode("MenuButton.Draw", node, 0))
	if len(node.Children) < 2 {
		return
	}

	menuNode := core.ChildNode("MenuButton.Draw", node, 1)
	style := ctx.Theme.Menu
	var prevLayer graphics.Layer
	var prevClip graphics.Rect
	ctx.Paint(func(p *graphics.Painter) {
		prevLayer = p.SetLayer(graphics.LayerOverlay)
		prevClip = p.SetClip(p.ScreenRect())
		p.Rect(graphics.RectPrimitive{Rect: menuNode.Bounds.Translate(3, 2), Radius: 2, Fill: menuShadow})
		p.Rect(graphics.RectPrimitive{Rect: menuNode.Bounds, Radius: 2, Fill: style.Fill, Stroke: style.Stroke})
	})
	w.menu.Draw(ctx, menuNode)
	ctx.Paint(func(p *graphics.Painter) {
		p.SetLayer(prevLayer)
		p.SetClip(prevClip)
	})
}
