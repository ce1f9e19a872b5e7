// Package input turns raw window input into per-frame event batches and
// arbitrates focus and drag ownership between widgets.
package input

import (
	"fmt"

	"github.com/go-drift/sway/pkg/graphics"
)

// MouseButton identifies a pointer button.
type MouseButton int

const (
	ButtonPrimary MouseButton = iota
	ButtonSecondary
	ButtonMiddle
	buttonOtherBase
)

// OtherButton returns the identifier for an extra button, numbered from zero.
func OtherButton(n int) MouseButton {
	return buttonOtherBase + MouseButton(n)
}

// String returns a human-readable representation of the button.
func (b MouseButton) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonMiddle:
		return "middle"
	default:
		return fmt.Sprintf("other(%d)", int(b-buttonOtherBase))
	}
}

// Key identifies a keyboard key.
type Key int

const (
	KeyUnknown Key = iota
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyEscape
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyA
	KeyC
	KeyV
	KeyX
)

var keyNames = map[Key]string{
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyEnter:     "enter",
	KeyEscape:    "escape",
	KeyTab:       "tab",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyA:         "a",
	KeyC:         "c",
	KeyV:         "v",
	KeyX:         "x",
}

// String returns a human-readable representation of the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKey maps a key name back to a Key.
func ParseKey(name string) (Key, bool) {
	for k, n := range keyNames {
		if n == name {
			return k, true
		}
	}
	return KeyUnknown, false
}

// Event is one entry of a frame's input batch.
type Event interface {
	isEvent()
}

// MouseMoved reports a new pointer position in screen coordinates.
type MouseMoved struct{ Pos graphics.Offset }

// MousePressed reports a button going down at the current pointer position.
type MousePressed struct{ Button MouseButton }

// MouseReleased reports a button going up.
type MouseReleased struct{ Button MouseButton }

// MouseWheel reports a scroll amount in pixels.
type MouseWheel struct{ Delta graphics.Offset }

// Text reports one typed, printable character.
type Text struct{ Rune rune }

// KeyPressed reports a key going down.
type KeyPressed struct{ Key Key }

// KeyReleased reports a key going up.
type KeyReleased struct{ Key Key }

func (MouseMoved) isEvent()    {}
func (MousePressed) isEvent()  {}
func (MouseReleased) isEvent() {}
func (MouseWheel) isEvent()    {}
func (Text) isEvent()          {}
func (KeyPressed) isEvent()    {}
func (KeyReleased) isEvent()   {}

// EventStatus is threaded through the event phase. Once a widget consumes the
// batch, widgets visited afterwards must not act on it.
type EventStatus int

const (
	Ignored EventStatus = iota
	Consumed
)

// String returns a human-readable representation of the status.
func (s EventStatus) String() string {
	if s == Consumed {
		return "consumed"
	}
	return "ignored"
}

// Consume marks the batch as handled.
func (s *EventStatus) Consume() {
	*s = Consumed
}

// Consumed reports whether some widget already handled the batch.
func (s EventStatus) Consumed() bool {
	return s == Consumed
}

// OrElse returns s if it is Consumed, otherwise the result of fn.
func (s EventStatus) OrElse(fn func() EventStatus) EventStatus {
	if s == Consumed {
		return s
	}
	return fn()
}

// Modifiers is the current state of the modifier keys.
type Modifiers struct {
	Alt   bool
	Ctrl  bool
	Shift bool
	// MacCmd is the command key on macOS.
	MacCmd bool
	// Command is Ctrl on most platforms and Cmd on macOS.
	Command bool
}

// isPrintable rejects control characters and private use code points, which
// some windowing systems send for special keys.
func isPrintable(r rune) bool {
	switch {
	case r < 0x20, r == 0x7f:
		return false
	case r >= 0xe000 && r <= 0xf8ff:
		return false
	case r >= 0xf0000 && r <= 0xffffd:
		return false
	case r >= 0x100000 && r <= 0x10fffd:
		return false
	}
	return true
}
