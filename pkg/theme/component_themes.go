package theme

import "github.com/go-drift/sway/pkg/graphics"

// ButtonStyle defines styling for Button widgets.
type ButtonStyle struct {
	Fill    graphics.Color
	Hovered graphics.Color
	Pressed graphics.Color
	Stroke  graphics.Stroke
	Radius  graphics.Radius
	// Padding is added on each side of the contents, horizontally and vertically.
	Padding graphics.Size
}

// TextEditStyle defines styling for TextEdit widgets.
type TextEditStyle struct {
	Fill          graphics.Color
	Stroke        graphics.Stroke
	FocusedStroke graphics.Stroke
	Caret         graphics.Color
	Padding       graphics.Size
}

// ScrollStyle defines styling for scroll containers.
type ScrollStyle struct {
	BarWidth      float64
	Track         graphics.Color
	Handle        graphics.Color
	HandleHovered graphics.Color
}

// SplitPaneStyle defines styling for split panes.
type SplitPaneStyle struct {
	HandleWidth   float64
	Handle        graphics.Color
	HandleHovered graphics.Color
}

// MenuStyle defines styling for popup menus.
type MenuStyle struct {
	Fill    graphics.Color
	Stroke  graphics.Stroke
	Hovered graphics.Color
	Padding graphics.Size
}

func defaultButtonStyle(c ColorScheme) ButtonStyle {
	return ButtonStyle{
		Fill:    c.Surface,
		Hovered: c.Surface.Lighten(1.3),
		Pressed: c.Surface.Lighten(0.8),
		Stroke:  graphics.Stroke{Width: 1, Color: c.Outline},
		Radius:  3,
		Padding: graphics.Size{Width: 6, Height: 3},
	}
}

func defaultTextEditStyle(c ColorScheme) TextEditStyle {
	return TextEditStyle{
		Fill:          c.Background.Lighten(0.8),
		Stroke:        graphics.Stroke{Width: 1, Color: c.Outline},
		FocusedStroke: graphics.Stroke{Width: 1, Color: c.Accent},
		Caret:         c.Text,
		Padding:       graphics.Size{Width: 4, Height: 2},
	}
}

func defaultScrollStyle(c ColorScheme) ScrollStyle {
	return ScrollStyle{
		BarWidth:      8,
		Track:         c.Background.Lighten(0.8),
		Handle:        c.Outline,
		HandleHovered: c.Outline.Lighten(1.4),
	}
}

func defaultSplitPaneStyle(c ColorScheme) SplitPaneStyle {
	return SplitPaneStyle{
		HandleWidth:   6,
		Handle:        c.Outline,
		HandleHovered: c.Accent,
	}
}

func defaultMenuStyle(c ColorScheme) MenuStyle {
	return MenuStyle{
		Fill:    c.Surface,
		Stroke:  graphics.Stroke{Width: 1, Color: c.Outline},
		Hovered: c.Accent.WithAlpha(0.5),
		Padding: graphics.Size{Width: 4, Height: 4},
	}
}
