package input

import (
	"fmt"

	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
)

const (
	// DefaultDragThreshold is how far the pointer must travel from a press
	// before the press turns into a drag.
	DefaultDragThreshold = 4.0
	// DefaultPixelsPerLine converts line-based wheel deltas to pixels.
	DefaultPixelsPerLine = 50.0
)

// DragPhase is the click/drag state of one mouse button.
type DragPhase int

const (
	// Idle means the button is up.
	Idle DragPhase = iota
	// Clicked means the button is down and has not moved past the threshold.
	Clicked
	// DragJustStarted means the pointer crossed the threshold this frame.
	DragJustStarted
	// Dragging means a drag started in an earlier frame and is ongoing.
	Dragging
)

// String returns a human-readable representation of the phase.
func (p DragPhase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Clicked:
		return "clicked"
	case DragJustStarted:
		return "drag_just_started"
	case Dragging:
		return "dragging"
	default:
		return fmt.Sprintf("DragPhase(%d)", int(p))
	}
}

// ButtonState is the state of one mouse button.
type ButtonState struct {
	Down         bool
	JustPressed  bool
	JustReleased bool
	JustClicked  bool
	Phase        DragPhase
	// Origin is where the button was pressed, valid unless Phase is Idle.
	Origin graphics.Offset
}

// WheelUnit says how a wheel delta is measured.
type WheelUnit int

const (
	WheelLines WheelUnit = iota
	WheelPixels
)

// Options configures a State.
type Options struct {
	DragThreshold float64
	PixelsPerLine float64
}

// State accumulates raw input between frames.
//
// The windowing layer calls the feed methods (MoveTo, Press, ...); the frame
// driver takes the event batch with TakeEvents and calls EndFrame once the
// frame is done.
type State struct {
	screen    graphics.Size
	pos       graphics.Offset
	prevPos   graphics.Offset
	buttons   map[MouseButton]*ButtonState
	keysDown  map[Key]bool
	modifiers Modifiers
	events    []Event
	opts      Options
	arbiter   *Arbiter
}

// NewState creates input state for a screen of the given size.
func NewState(screen graphics.Size, opts Options) *State {
	if opts.DragThreshold <= 0 {
		opts.DragThreshold = DefaultDragThreshold
	}
	if opts.PixelsPerLine <= 0 {
		opts.PixelsPerLine = DefaultPixelsPerLine
	}
	return &State{
		screen:   screen,
		buttons:  make(map[MouseButton]*ButtonState),
		keysDown: make(map[Key]bool),
		opts:     opts,
		arbiter:  NewArbiter(),
	}
}

// Arbiter returns the focus and drag arbiter.
func (s *State) Arbiter() *Arbiter {
	return s.arbiter
}

// ScreenSize returns the current screen size.
func (s *State) ScreenSize() graphics.Size {
	return s.screen
}

// Resize records a new screen size.
func (s *State) Resize(size graphics.Size) {
	s.screen = size
}

// SetModifiers records the modifier key state.
func (s *State) SetModifiers(m Modifiers) {
	s.modifiers = m
}

// Modifiers returns the modifier key state.
func (s *State) Modifiers() Modifiers {
	return s.modifiers
}

func (s *State) button(b MouseButton) *ButtonState {
	st, ok := s.buttons[b]
	if !ok {
		st = &ButtonState{}
		s.buttons[b] = st
	}
	return st
}

// MoveTo records a pointer move.
func (s *State) MoveTo(pos graphics.Offset) {
	s.events = append(s.events, MouseMoved{Pos: pos})
	s.pos = pos
	for _, st := range s.buttons {
		if st.Phase == Clicked && st.Origin.Distance(pos) > s.opts.DragThreshold {
			st.Phase = DragJustStarted
		}
	}
}

// Press records a button going down at the current pointer position.
func (s *State) Press(b MouseButton) {
	s.events = append(s.events, MousePressed{Button: b})
	// A claim from an earlier press released in this same batch never saw
	// EndFrame with the button up.
	s.arbiter.releaseClaim(b)
	st := s.button(b)
	st.Down = true
	st.JustPressed = true
	st.Phase = Clicked
	st.Origin = s.pos
}

// Release records a button going up. A release before the drag threshold
// was crossed counts as a click.
func (s *State) Release(b MouseButton) {
	s.events = append(s.events, MouseReleased{Button: b})
	st := s.button(b)
	st.Down = false
	st.JustReleased = true
	if st.Phase == Clicked {
		st.JustClicked = true
	}
	st.Phase = Idle
}

// Wheel records a scroll. Line deltas are converted to pixels.
func (s *State) Wheel(delta graphics.Offset, unit WheelUnit) {
	if unit == WheelLines {
		delta = delta.Scale(s.opts.PixelsPerLine)
	}
	s.events = append(s.events, MouseWheel{Delta: delta})
}

// TypeRune records a typed character. Non-printable runes are dropped; Enter
// and Tab arrive as key events instead.
func (s *State) TypeRune(r rune) {
	if isPrintable(r) {
		s.events = append(s.events, Text{Rune: r})
	}
}

// KeyDown records a key press.
func (s *State) KeyDown(k Key) {
	s.keysDown[k] = true
	s.events = append(s.events, KeyPressed{Key: k})
}

// KeyUp records a key release.
func (s *State) KeyUp(k Key) {
	delete(s.keysDown, k)
	s.events = append(s.events, KeyReleased{Key: k})
}

// IsKeyDown reports whether k is held.
func (s *State) IsKeyDown(k Key) bool {
	return s.keysDown[k]
}

// Pending returns the events buffered so far without removing them.
func (s *State) Pending() []Event {
	return s.events
}

// TakeEvents returns the buffered batch and starts a new one.
func (s *State) TakeEvents() []Event {
	events := s.events
	s.events = nil
	return events
}

// Position returns the pointer position in screen coordinates.
func (s *State) Position() graphics.Offset {
	return s.pos
}

// Delta returns how far the pointer moved since the previous frame.
func (s *State) Delta() graphics.Offset {
	return s.pos.Sub(s.prevPos)
}

// Cursor returns the pointer position mapped through the cursor transforms.
func (s *State) Cursor() graphics.Offset {
	return s.arbiter.CursorTransform().Apply(s.pos)
}

// CursorDelta returns Delta mapped through the cursor transforms.
func (s *State) CursorDelta() graphics.Offset {
	return s.arbiter.CursorTransform().ApplyVector(s.Delta())
}

// Button returns a copy of the state of b.
func (s *State) Button(b MouseButton) ButtonState {
	if st, ok := s.buttons[b]; ok {
		return *st
	}
	return ButtonState{}
}

// IsDown reports whether b is held.
func (s *State) IsDown(b MouseButton) bool { return s.Button(b).Down }

// IsPressed reports whether b went down this frame.
func (s *State) IsPressed(b MouseButton) bool { return s.Button(b).JustPressed }

// IsReleased reports whether b went up this frame.
func (s *State) IsReleased(b MouseButton) bool { return s.Button(b).JustReleased }

// IsClicked reports whether b was clicked this frame.
func (s *State) IsClicked(b MouseButton) bool { return s.Button(b).JustClicked }

// DragOrigin returns where an ongoing drag of b started.
func (s *State) DragOrigin(b MouseButton) (graphics.Offset, bool) {
	st := s.Button(b)
	if st.Phase == DragJustStarted || st.Phase == Dragging {
		return st.Origin, true
	}
	return graphics.Offset{}, false
}

// DragJustStarted reports whether b crossed the drag threshold this frame.
func (s *State) DragJustStarted(b MouseButton) bool {
	return s.Button(b).Phase == DragJustStarted
}

// ClaimDrag asks for exclusive ownership of the drag of button.
//
// The claim is granted when the button is down, nobody else holds it and the
// transformed cursor lies inside rect. The holder keeps getting true, wherever
// the cursor is, until the button is released.
func (s *State) ClaimDrag(id identity.ID, rect graphics.Rect, button MouseButton) bool {
	eligible := s.IsDown(button) && rect.Contains(s.Cursor())
	return s.arbiter.claim(id, button, eligible)
}

// EndFrame ages per-frame flags. Drag claims of released buttons are dropped
// here rather than at release so the holder sees the release frame.
func (s *State) EndFrame() {
	s.prevPos = s.pos
	for b, st := range s.buttons {
		st.JustPressed = false
		st.JustReleased = false
		st.JustClicked = false
		if st.Phase == DragJustStarted {
			st.Phase = Dragging
		}
		if !st.Down {
			s.arbiter.releaseClaim(b)
		}
	}
	s.arbiter.resetTransforms()
}
