package graphics

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// Hex parses "#rgb", "#rrggbb" or "#rrggbbaa".
func Hex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	var alpha uint8 = 0xFF
	if len(s) == 9 && s[0] == '#' {
		var a uint32
		if _, err := fmt.Sscanf(s[7:], "%02x", &a); err != nil {
			return 0, fmt.Errorf("invalid alpha in color %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGBA8(r, g, b, alpha), nil
}

// MustHex is like Hex but panics on malformed input.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(c)&0x00FFFFFF)
}

// Lighten multiplies the RGB channels by factor, keeping alpha.
// Factors below 1 darken.
func (c Color) Lighten(factor float64) Color {
	col := c.colorful()
	col = colorful.Color{R: col.R * factor, G: col.G * factor, B: col.B * factor}.Clamped()
	return fromColorful(col, uint8(c>>24))
}

// Blend mixes c towards other by t in [0, 1], interpolating alpha linearly.
func (c Color) Blend(other Color, t float64) Color {
	t = clamp01(t)
	mixed := c.colorful().BlendRgb(other.colorful(), t).Clamped()
	a := (1-t)*c.Alpha() + t*other.Alpha()
	return fromColorful(mixed, alpha01ToByte(a))
}

// Hex formats the color as "#rrggbbaa".
func (c Color) Hex() string {
	return fmt.Sprintf("%s%02x", c.colorful().Hex(), uint8(c>>24))
}

func (c Color) String() string {
	return c.Hex()
}

func (c Color) colorful() colorful.Color {
	r, g, b, _ := c.RGBAF()
	return colorful.Color{R: r, G: g, B: b}
}

func fromColorful(col colorful.Color, alpha uint8) Color {
	r, g, b := col.RGB255()
	return RGBA8(r, g, b, alpha)
}

// alpha01ToByte converts a 0-1 alpha to 0-255 with proper rounding.
func alpha01ToByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)
