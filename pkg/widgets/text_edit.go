package widgets

import (
	"strings"

	"github.com/go-drift/sway/pkg/callback"
	"github.com/go-drift/sway/pkg/core"
	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
	"github.com/go-drift/sway/pkg/input"
	"github.com/go-drift/sway/pkg/layout"
	"github.com/go-drift/sway/pkg/memory"
	"github.com/go-drift/sway/pkg/text"
	"github.com/go-drift/sway/pkg/theme"
)

// DefaultTextEditWidth is the minimum width of a TextEdit unless overridden.
const DefaultTextEditWidth = 100

const caretWidth = 1

// TextEdit is a single-line text field.
//
// The application owns the text: TextEdit shows Contents and reports edits
// through OnChanged, once per frame with the final string. A click inside the
// field focuses it; Enter, Escape or a click elsewhere releases focus. The
// caret position is kept in memory under the field's ID.
type TextEdit struct {
	ID          identity.Gen
	Contents    string
	LayoutHints layout.Hints
	// MinWidth defaults to DefaultTextEditWidth when zero.
	MinWidth float64
	Font     text.Font
	Style    *theme.TextEditStyle
	// OnChanged receives the edited text after every frame that changed it.
	OnChanged callback.Callback[string]
}

type textEditState struct {
	// Caret is a grapheme index into the contents.
	Caret int
}

// TextEditOf creates a text field for contents reporting edits to onChanged.
func TextEditOf(id identity.Gen, contents string, onChanged callback.Callback[string]) TextEdit {
	return TextEdit{ID: id, Contents: contents, LayoutHints: layout.DefaultHints(), OnChanged: onChanged}
}

// WithHints returns a copy of the field with the given hints.
func (t TextEdit) WithHints(h layout.Hints) TextEdit {
	t.LayoutHints = h
	return t
}

func (t TextEdit) style(ctx *core.Context) theme.TextEditStyle {
	if t.Style != nil {
		return *t.Style
	}
	return ctx.Theme.TextEdit
}

func (t TextEdit) font(ctx *core.Context) text.Font {
	if t.Font.Size > 0 {
		return t.Font
	}
	return ctx.Font()
}

func (t TextEdit) minWidth() float64 {
	if t.MinWidth > 0 {
		return t.MinWidth
	}
	return DefaultTextEditWidth
}

func (t TextEdit) Hints() layout.Hints {
	return t.LayoutHints
}

func (t TextEdit) Layout(ctx *core.Context, parent identity.ID, available graphics.Size, forceShrink bool) layout.Node {
	id := t.ID.ResolveOr(parent, "text_edit")
	pad := t.style(ctx).Padding
	tl := ctx.ShapeFont(t.Contents, t.font(ctx), text.NoWrap)

	natural := growBy(graphics.Size{Width: tl.Size.Width + caretWidth, Height: tl.Size.Height}, pad)
	natural.Width = max(natural.Width, t.minWidth())
	return layout.Leaf(id, sizeFor(t.LayoutHints.Size, forceShrink, natural, available))
}

func (t TextEdit) OnEvent(ctx *core.Context, node *layout.Node, cursor graphics.Offset, events []input.Event, status *input.EventStatus) {
	id := node.ID
	hovered := node.Bounds.Contains(cursor)
	if ctx.Input.IsPressed(input.ButtonPrimary) {
		if hovered {
			ctx.RequestFocus(id)
			memory.Set(ctx.Memory, id, textEditState{Caret: t.caretAt(ctx, node, cursor)})
			status.Consume()
		} else {
			ctx.ReleaseFocus(id)
		}
	}
	if !ctx.IsFocused(id) {
		return
	}

	graphemes := text.Graphemes(t.Contents)
	st := memory.GetOr(ctx.Memory, id, textEditState{Caret: len(graphemes)})
	caret := min(max(st.Get().Caret, 0), len(graphemes))
	st.Release()

	changed := false
	for _, ev := range events {
		switch ev := ev.(type) {
		case input.Text:
			graphemes, caret = insertAt(graphemes, caret, string(ev.Rune))
			changed = true
		case input.KeyPressed:
			switch ev.Key {
			case input.KeyBackspace:
				if caret > 0 {
					graphemes = append(graphemes[:caret-1], graphemes[caret:]...)
					caret--
					changed = true
				}
			case input.KeyDelete:
				if caret < len(graphemes) {
					graphemes = append(graphemes[:caret], graphemes[caret+1:]...)
					changed = true
				}
			case input.KeyLeft:
				caret = max(caret-1, 0)
			case input.KeyRight:
				caret = min(caret+1, len(graphemes))
			case input.KeyHome:
				caret = 0
			case input.KeyEnd:
				caret = len(graphemes)
			case input.KeyEnter, input.KeyEscape:
				ctx.ReleaseFocus(id)
			default:
				continue
			}
		default:
			continue
		}
		status.Consume()
	}

	memory.Set(ctx.Memory, id, textEditState{Caret: caret})
	if changed && !t.OnChanged.IsZero() {
		core.Dispatch(ctx, t.OnChanged, strings.Join(graphemes, ""))
	}
}

// caretAt returns the grapheme boundary nearest to the cursor.
func (t TextEdit) caretAt(ctx *core.Context, node *layout.Node, cursor graphics.Offset) int {
	x := cursor.X - node.Bounds.Left - t.style(ctx).Padding.Width
	f := t.font(ctx)
	prefix := ""
	prevWidth := 0.0
	graphemes := text.Graphemes(t.Contents)
	for i, g := range graphemes {
		prefix += g
		w := ctx.ShapeFont(prefix, f, text.NoWrap).Size.Width
		if x < (prevWidth+w)/2 {
			return i
		}
		prevWidth = w
	}
	return len(graphemes)
}

func insertAt(graphemes []string, i int, s string) ([]string, int) {
	graphemes = append(graphemes, "")
	copy(graphemes[i+1:], graphemes[i:])
	graphemes[i] = s
	return graphemes, i + 1
}

func (t TextEdit) Draw(ctx *core.Context, node *layout.Node) {
	style := t.style(ctx)
	focused := ctx.IsFocused(node.ID)
	f := t.font(ctx)
	tl := ctx.ShapeFont(t.Contents, f, text.NoWrap)
	origin := node.Bounds.TopLeft().Add(style.Padding.ToOffset())

	var caretRect graphics.Rect
	if focused {
		graphemes := text.Graphemes(t.Contents)
		caret := min(max(memory.ReadOr(ctx.Memory, node.ID, textEditState{Caret: len(graphemes)}).Caret, 0), len(graphemes))
		x := ctx.ShapeFont(strings.Join(graphemes[:caret], ""), f, text.NoWrap).Size.Width
		caretRect = graphics.RectFromLTWH(origin.X+x, origin.Y, caretWidth, tl.LineHeight())
	}

	ctx.Paint(func(p *graphics.Painter) {
		stroke := style.Stroke
		if focused {
			stroke = style.FocusedStroke
		}
		p.Rect(graphics.RectPrimitive{Rect: node.Bounds, Fill: style.Fill, Stroke: stroke})
		prev := p.IntersectClip(p.Transform().ApplyRect(node.Bounds))
		p.Text(origin, tl)
		if focused {
			p.Rect(graphics.RectPrimitive{Rect: caretRect, Fill: style.Caret})
		}
		p.SetClip(prev)
	})
}
