package input

import (
	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
)

// Arbiter tracks which widget has keyboard focus and which widget owns the
// drag of each mouse button.
//
// Focus is only ever taken explicitly. A drag claim, once granted, belongs to
// its widget until the button is released.
type Arbiter struct {
	focused    identity.ID
	hasFocus   bool
	claims     map[MouseButton]identity.ID
	transforms []graphics.Transform
}

// NewArbiter returns an arbiter with no focus and no claims.
func NewArbiter() *Arbiter {
	return &Arbiter{claims: make(map[MouseButton]identity.ID)}
}

// RequestFocus gives focus to id, replacing any previous holder.
func (a *Arbiter) RequestFocus(id identity.ID) {
	a.focused = id
	a.hasFocus = true
}

// ReleaseFocus clears focus if id holds it. A stale release from a widget
// that already lost focus does nothing.
func (a *Arbiter) ReleaseFocus(id identity.ID) {
	if a.hasFocus && a.focused == id {
		a.hasFocus = false
		a.focused = 0
	}
}

// Focused returns the focused widget, if any.
func (a *Arbiter) Focused() (identity.ID, bool) {
	return a.focused, a.hasFocus
}

// IsFocused reports whether id holds focus.
func (a *Arbiter) IsFocused(id identity.ID) bool {
	return a.hasFocus && a.focused == id
}

// DragHolder returns the widget holding the claim for button, if any.
func (a *Arbiter) DragHolder(button MouseButton) (identity.ID, bool) {
	id, ok := a.claims[button]
	return id, ok
}

// IsDragging reports whether id holds the claim of any button.
func (a *Arbiter) IsDragging(id identity.ID) bool {
	for _, holder := range a.claims {
		if holder == id {
			return true
		}
	}
	return false
}

// claim grants button to id if nobody holds it and eligible is true. The
// current holder always gets true back.
func (a *Arbiter) claim(id identity.ID, button MouseButton, eligible bool) bool {
	if holder, ok := a.claims[button]; ok {
		return holder == id
	}
	if !eligible {
		return false
	}
	a.claims[button] = id
	return true
}

func (a *Arbiter) releaseClaim(button MouseButton) {
	delete(a.claims, button)
}

// PushCursorTransform maps the pointer into a nested coordinate space until
// the matching pop. Transforms compose with the ones already pushed.
func (a *Arbiter) PushCursorTransform(t graphics.Transform) {
	a.transforms = append(a.transforms, a.CursorTransform().Then(t))
}

// PopCursorTransform undoes the last push.
func (a *Arbiter) PopCursorTransform() {
	if n := len(a.transforms); n > 0 {
		a.transforms = a.transforms[:n-1]
	}
}

// CursorTransform returns the composition of every pushed transform.
func (a *Arbiter) CursorTransform() graphics.Transform {
	if n := len(a.transforms); n > 0 {
		return a.transforms[n-1]
	}
	return graphics.Identity
}

// TransformDepth returns how many transforms are pushed.
func (a *Arbiter) TransformDepth() int {
	return len(a.transforms)
}

// resetTransforms drops transforms left behind by an aborted frame.
func (a *Arbiter) resetTransforms() {
	a.transforms = a.transforms[:0]
}
