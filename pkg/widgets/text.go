package widgets

import (
	"github.com/go-drift/sway/pkg/core"
	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
	"github.com/go-drift/sway/pkg/input"
	"github.com/go-drift/sway/pkg/layout"
	"github.com/go-drift/sway/pkg/text"
)

// Text displays a string wrapped to the available width.
//
// Text always shrinks to its shaped size. Its ID defaults to the content.
type Text struct {
	ID      identity.Gen
	Content string
	// Font overrides the configured font when its size is set.
	Font text.Font
	// Color overrides the painter's text color when set.
	Color graphics.Color
}

// TextOf creates a Text with the default font and color.
func TextOf(content string) Text {
	return Text{Content: content}
}

// WithColor returns a copy of the text with the given color.
func (t Text) WithColor(c graphics.Color) Text {
	t.Color = c
	return t
}

// WithFontSize returns a copy of the text with the given font size.
func (t Text) WithFontSize(size float64) Text {
	t.Font.Size = size
	return t
}

func (t Text) font(ctx *core.Context) text.Font {
	if t.Font.Size > 0 {
		return t.Font
	}
	return ctx.Font()
}

func (t Text) Hints() layout.Hints {
	return layout.DefaultHints()
}

func (t Text) Layout(ctx *core.Context, parent identity.ID, available graphics.Size, _ bool) layout.Node {
	tl := ctx.ShapeFont(t.Content, t.font(ctx), available.Width)
	return layout.Leaf(t.ID.ResolveOr(parent, t.Content), tl.Size)
}

func (t Text) OnEvent(*core.Context, *layout.Node, graphics.Offset, []input.Event, *input.EventStatus) {
}

func (t Text) Draw(ctx *core.Context, node *layout.Node) {
	// Wrapping at the laid out width reproduces the lines found by Layout.
	tl := ctx.ShapeFont(t.Content, t.font(ctx), node.Bounds.Width())
	ctx.Paint(func(p *graphics.Painter) {
		if t.Color != 0 {
			p.TextColored(node.Bounds.TopLeft(), tl, t.Color)
			return
		}
		p.Text(node.Bounds.TopLeft(), tl)
	})
}
