package layout

import "fmt"

// SizeHint is a per-axis sizing directive.
type SizeHint int

const (
	// Shrink takes the natural size of the content.
	Shrink SizeHint = iota
	// Fill takes all space offered by the parent, shared by weight among siblings.
	Fill
)

// String returns a human-readable representation of the hint.
func (h SizeHint) String() string {
	switch h {
	case Shrink:
		return "shrink"
	case Fill:
		return "fill"
	default:
		return fmt.Sprintf("SizeHint(%d)", int(h))
	}
}

// OrForce folds an ancestor's force-shrink decision into h.
func (h SizeHint) OrForce(forceShrink bool) SizeHint {
	if forceShrink {
		return Shrink
	}
	return h
}

// SizeHints pairs a hint per axis.
type SizeHints struct {
	Width  SizeHint
	Height SizeHint
}

// Main returns the hint along axis.
func (s SizeHints) Main(axis Axis) SizeHint {
	if axis == AxisHorizontal {
		return s.Width
	}
	return s.Height
}

// Cross returns the hint across axis.
func (s SizeHints) Cross(axis Axis) SizeHint {
	return s.Main(axis.Cross())
}

// Hints is what a widget reports to its parent before being laid out.
// Weight only matters for Fill on the parent's main axis.
type Hints struct {
	Size   SizeHints
	Weight uint
}

// DefaultHints shrinks on both axes with weight 1.
func DefaultHints() Hints {
	return Hints{Weight: 1}
}

// ShrinkHints shrinks on both axes with weight 0.
func ShrinkHints() Hints {
	return Hints{}
}

// FillHints fills both axes with weight 1.
func FillHints() Hints {
	return Hints{Size: SizeHints{Width: Fill, Height: Fill}, Weight: 1}
}

// FillHorizontal fills the width and shrinks the height.
func FillHorizontal() Hints {
	return Hints{Size: SizeHints{Width: Fill, Height: Shrink}, Weight: 1}
}

// FillVertical fills the height and shrinks the width.
func FillVertical() Hints {
	return Hints{Size: SizeHints{Width: Shrink, Height: Fill}, Weight: 1}
}

// WithWeight returns a copy of h with the given weight.
func (h Hints) WithWeight(w uint) Hints {
	h.Weight = w
	return h
}

func (h Hints) String() string {
	return fmt.Sprintf("Hints{w=%s h=%s weight=%d}", h.Size.Width, h.Size.Height, h.Weight)
}
