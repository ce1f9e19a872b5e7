package layout

import (
	"fmt"

	"github.com/go-drift/sway/pkg/graphics"
)

// Axis selects the main direction of a linear container.
// AxisVertical is the zero value.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == AxisHorizontal {
		return AxisVertical
	}
	return AxisHorizontal
}

// Main returns the component of s along a.
func (a Axis) Main(s graphics.Size) float64 {
	if a == AxisHorizontal {
		return s.Width
	}
	return s.Height
}

// CrossOf returns the component of s across a.
func (a Axis) CrossOf(s graphics.Size) float64 {
	if a == AxisHorizontal {
		return s.Height
	}
	return s.Width
}

// MakeSize builds a size from main and cross components.
func (a Axis) MakeSize(main, cross float64) graphics.Size {
	if a == AxisHorizontal {
		return graphics.Size{Width: main, Height: cross}
	}
	return graphics.Size{Width: cross, Height: main}
}

// MakeOffset builds an offset from main and cross components.
func (a Axis) MakeOffset(main, cross float64) graphics.Offset {
	if a == AxisHorizontal {
		return graphics.Offset{X: main, Y: cross}
	}
	return graphics.Offset{X: cross, Y: main}
}

// MainOffset returns the component of o along a.
func (a Axis) MainOffset(o graphics.Offset) float64 {
	if a == AxisHorizontal {
		return o.X
	}
	return o.Y
}

// Align positions a child inside leftover space.
type Align int

const (
	AlignStart Align = iota
	AlignEnd
	AlignCenter
)

// String returns a human-readable representation of the alignment.
func (a Align) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignEnd:
		return "end"
	case AlignCenter:
		return "center"
	default:
		return fmt.Sprintf("Align(%d)", int(a))
	}
}

// Offset returns how far content must move to be aligned within leftover space.
func (a Align) Offset(leftover float64) float64 {
	switch a {
	case AlignEnd:
		return leftover
	case AlignCenter:
		return leftover / 2
	default:
		return 0
	}
}
