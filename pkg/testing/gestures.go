package testing

import (
	"fmt"

	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
	"github.com/go-drift/sway/pkg/input"
)

// DragSteps is the number of intermediate frames Drag moves the pointer through.
const DragSteps = 4

// MoveTo moves the pointer to pos and runs a frame.
func (t *Tester) MoveTo(pos graphics.Offset) error {
	t.ctx.Input.MoveTo(pos)
	return t.Frame()
}

// Press presses button at the current pointer position and runs a frame.
func (t *Tester) Press(button input.MouseButton) error {
	t.ctx.Input.Press(button)
	return t.Frame()
}

// Release releases button and runs a frame.
func (t *Tester) Release(button input.MouseButton) error {
	t.ctx.Input.Release(button)
	return t.Frame()
}

// Click moves to pos, then presses and releases the primary button in two
// consecutive frames.
func (t *Tester) Click(pos graphics.Offset) error {
	t.ctx.Input.MoveTo(pos)
	if err := t.Press(input.ButtonPrimary); err != nil {
		return err
	}
	return t.Release(input.ButtonPrimary)
}

// ClickNode clicks the center of the node for id in the last frame.
func (t *Tester) ClickNode(id identity.ID) error {
	center, err := t.Center(id)
	if err != nil {
		return fmt.Errorf("ClickNode: %w", err)
	}
	return t.Click(center)
}

// Drag presses the primary button at from, moves to to over DragSteps
// frames and releases it, one frame per step.
func (t *Tester) Drag(from, to graphics.Offset) error {
	t.ctx.Input.MoveTo(from)
	if err := t.Press(input.ButtonPrimary); err != nil {
		return err
	}
	delta := to.Sub(from)
	for i := 1; i <= DragSteps; i++ {
		frac := float64(i) / float64(DragSteps)
		if err := t.MoveTo(from.Add(delta.Scale(frac))); err != nil {
			return err
		}
	}
	return t.Release(input.ButtonPrimary)
}

// Type sends each rune of s as a text event and runs one frame.
func (t *Tester) Type(s string) error {
	for _, r := range s {
		t.ctx.Input.TypeRune(r)
	}
	return t.Frame()
}

// Key presses and releases k within one frame.
func (t *Tester) Key(k input.Key) error {
	t.ctx.Input.KeyDown(k)
	t.ctx.Input.KeyUp(k)
	return t.Frame()
}

// Wheel scrolls by delta pixels at the current pointer position and runs a frame.
func (t *Tester) Wheel(delta graphics.Offset) error {
	t.ctx.Input.Wheel(delta, input.WheelPixels)
	return t.Frame()
}

// WheelLines scrolls by delta lines and runs a frame.
func (t *Tester) WheelLines(delta graphics.Offset) error {
	t.ctx.Input.Wheel(delta, input.WheelLines)
	return t.Frame()
}
