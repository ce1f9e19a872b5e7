package widgets

import (
	"strconv"
	"strings"

	"github.com/go-drift/sway/pkg/callback"
	"github.com/go-drift/sway/pkg/core"
	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
	"github.com/go-drift/sway/pkg/input"
	"github.com/go-drift/sway/pkg/layout"
	"github.com/go-drift/sway/pkg/memory"
)

const (
	// DefaultDragSpeed is the value change per pixel of horizontal drag.
	DefaultDragSpeed = 0.1
	// DefaultDragPrecision is the number of decimals shown.
	DefaultDragPrecision = 4
)

// DragValue edits a number by dragging horizontally, or by typing after a click.
//
// While unfocused, dragging over the field changes the value by the pointer's
// horizontal movement times Speed. A click focuses the field, which then
// behaves as a TextEdit; each edit that parses as a number is reported.
// The inner TextEdit shares the DragValue's ID.
type DragValue struct {
	ID          identity.Gen
	Value       float64
	OnChanged   callback.Callback[float64]
	Speed       float64
	Precision   int
	LayoutHints layout.Hints
	MinWidth    float64
}

type dragValueState struct {
	LastFocused bool
	// Text is the text being edited while focused.
	Text string
}

// DragValueOf creates a drag value editing v with the default speed.
func DragValueOf(id identity.Gen, v float64, onChanged callback.Callback[float64]) DragValue {
	return DragValue{ID: id, Value: v, OnChanged: onChanged, LayoutHints: layout.DefaultHints()}
}

// WithSpeed returns a copy of the drag value with the given drag speed.
func (d DragValue) WithSpeed(speed float64) DragValue {
	d.Speed = speed
	return d
}

func (d DragValue) gen() identity.Gen {
	if d.ID.IsZero() {
		return identity.Key("drag_value")
	}
	return d.ID
}

func (d DragValue) speed() float64 {
	if d.Speed == 0 {
		return DefaultDragSpeed
	}
	return d.Speed
}

func (d DragValue) format() string {
	prec := d.Precision
	if prec <= 0 {
		prec = DefaultDragPrecision
	}
	s := strconv.FormatFloat(d.Value, 'f', prec, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// editor builds the inner text field shown for id.
func (d DragValue) editor(ctx *core.Context, id identity.ID, onChanged callback.Callback[string]) TextEdit {
	contents := d.format()
	if ctx.IsFocused(id) {
		if st, ok := memory.Lookup[dragValueState](ctx.Memory, id); ok {
			if st.Get().LastFocused {
				contents = st.Get().Text
			}
			st.Release()
		}
	}
	return TextEdit{
		ID:          d.gen(),
		Contents:    contents,
		LayoutHints: d.LayoutHints,
		MinWidth:    d.MinWidth,
		OnChanged:   onChanged,
	}
}

func (d DragValue) Hints() layout.Hints {
	return d.LayoutHints
}

func (d DragValue) Layout(ctx *core.Context, parent identity.ID, available graphics.Size, forceShrink bool) layout.Node {
	id := d.gen().Resolve(parent)
	node := d.editor(ctx, id, callback.Callback[string]{}).Layout(ctx, parent, available, forceShrink)
	core.CheckID("DragValue.Layout", node.ID, id)
	return node
}

func (d DragValue) OnEvent(ctx *core.Context, node *layout.Node, cursor graphics.Offset, events []input.Event, status *input.EventStatus) {
	id := node.ID
	st := memory.ReadOr(ctx.Memory, id, dragValueState{})

	if ctx.IsFocused(id) {
		if !st.LastFocused {
			st.Text = d.format()
			st.LastFocused = true
			memory.Set(ctx.Memory, id, st)
		}
		cb, tok := core.NewInternalCallback[string](ctx)
		d.editor(ctx, id, cb).OnEvent(ctx, node, cursor, events, status)
		if s, ok := core.Poll(ctx, tok); ok {
			st.Text = s
			if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && !d.OnChanged.IsZero() {
				core.Dispatch(ctx, d.OnChanged, v)
			}
		}
	} else if ctx.ClaimDrag(id, node.Bounds, input.ButtonPrimary) {
		if _, dragging := ctx.Input.DragOrigin(input.ButtonPrimary); dragging {
			if dx := ctx.PointerDelta().X; dx != 0 && !d.OnChanged.IsZero() {
				core.Dispatch(ctx, d.OnChanged, d.Value+dx*d.speed())
			}
		} else if ctx.Input.IsClicked(input.ButtonPrimary) && node.Bounds.Contains(cursor) {
			ctx.RequestFocus(id)
		}
		status.Consume()
	}

	focused := ctx.IsFocused(id)
	if !focused {
		st.Text = ""
	}
	st.LastFocused = focused && st.LastFocused
	memory.Set(ctx.Memory, id, st)
}

func (d DragValue) Draw(ctx *core.Context, node *layout.Node) {
	d.editor(ctx, node.ID, callback.Callback[string]{}).Draw(ctx, node)
}
