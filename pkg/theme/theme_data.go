// Package theme holds the colors and per-widget styles used when drawing.
package theme

import (
	"reflect"

	"github.com/go-drift/sway/pkg/graphics"
)

// ColorScheme is the base palette every style is derived from.
type ColorScheme struct {
	Text       graphics.Color
	Background graphics.Color
	Accent     graphics.Color
	Surface    graphics.Color
	Outline    graphics.Color
}

// Theme is the style registry for one application.
//
// Built-in widgets read their component style fields. Widgets defined outside
// this module can store their own style types with Set and read them with Get.
type Theme struct {
	Colors ColorScheme

	Button    ButtonStyle
	TextEdit  TextEditStyle
	Scroll    ScrollStyle
	SplitPane SplitPaneStyle
	Menu      MenuStyle

	custom map[reflect.Type]any
}

// Set stores style under its type, replacing any previous value.
func Set[S any](th *Theme, style S) {
	if th.custom == nil {
		th.custom = make(map[reflect.Type]any)
	}
	th.custom[reflect.TypeFor[S]()] = style
}

// Get returns the style stored for type S.
func Get[S any](th *Theme) (S, bool) {
	var zero S
	if th == nil || th.custom == nil {
		return zero, false
	}
	v, ok := th.custom[reflect.TypeFor[S]()]
	if !ok {
		return zero, false
	}
	return v.(S), true
}

// GetOr returns the style stored for type S, or def.
func GetOr[S any](th *Theme, def S) S {
	if s, ok := Get[S](th); ok {
		return s
	}
	return def
}
