package theme

import (
	"github.com/go-drift/sway/pkg/config"
	"github.com/go-drift/sway/pkg/graphics"
)

// DarkColorScheme returns the default palette.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Text:       graphics.RGB(0xdd, 0xdd, 0xdd),
		Background: graphics.RGB(0x1e, 0x1e, 0x1e),
		Accent:     graphics.RGB(0x3d, 0x7f, 0xd9),
		Surface:    graphics.RGB(0x30, 0x30, 0x30),
		Outline:    graphics.RGB(0x46, 0x46, 0x46),
	}
}

// New derives every component style from colors.
func New(colors ColorScheme) *Theme {
	return &Theme{
		Colors:    colors,
		Button:    defaultButtonStyle(colors),
		TextEdit:  defaultTextEditStyle(colors),
		Scroll:    defaultScrollStyle(colors),
		SplitPane: defaultSplitPaneStyle(colors),
		Menu:      defaultMenuStyle(colors),
	}
}

// Default returns the theme built from DarkColorScheme.
func Default() *Theme {
	return New(DarkColorScheme())
}

// FromConfig builds a theme from the theme section of sway.yaml. Empty
// entries keep the default color.
func FromConfig(cfg config.ThemeConfig) (*Theme, error) {
	colors := DarkColorScheme()
	for _, c := range []struct {
		value string
		dst   *graphics.Color
	}{
		{cfg.TextColor, &colors.Text},
		{cfg.Background, &colors.Background},
		{cfg.Accent, &colors.Accent},
		{cfg.Button.Fill, &colors.Surface},
		{cfg.Button.Stroke, &colors.Outline},
	} {
		if c.value == "" {
			continue
		}
		parsed, err := graphics.Hex(c.value)
		if err != nil {
			return nil, err
		}
		*c.dst = parsed
	}
	return New(colors), nil
}
