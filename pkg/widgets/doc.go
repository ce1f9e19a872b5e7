// Package widgets provides the base widgets of sway.
//
// Every widget is a plain value that the application re-declares each frame.
// State that must survive between frames (focus, hover, scroll position,
// split fractions, typed text) lives in the context's persistent memory under
// the widget's ID.
//
// # Widget Construction
//
// Widgets use a two-tier construction pattern:
//
// ## Tier 1: Struct Literal (canonical, full control)
//
//	btn := Button{
//	    ID:       identity.Key("submit"),
//	    Contents: Text{Content: "Submit"},
//	    OnClick:  onSubmit,
//	}
//
// This is the PRIMARY way to create widgets. All fields are accessible.
//
// ## Tier 2: Helpers (ergonomics)
//
//	col := VBox(identity.Key("form"),
//	    ButtonOf("Submit").WithOnClick(onSubmit),
//	    FillV(1),
//	)
//
// Also: HBox, TextOf, Background, FillH, FillV, H, V.
//
// WithX methods return COPIES; they never mutate the receiver.
//
// # Identity
//
// Widgets holding state take an ID field. A zero ID falls back to a key
// chosen by the widget (the label for buttons, the kind for containers), so
// siblings of the same kind need distinct keys.
//
// # Callbacks
//
// Widgets report user actions through callback.Callback values. External
// callbacks built with callback.FromFunc run against the application state
// once the frame is over.
package widgets
