package widgets

import (
	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/layout"
)

// sizeFor picks, per axis, the natural extent for Shrink and the available
// extent for Fill.
func sizeFor(hints layout.SizeHints, forceShrink bool, natural, available graphics.Size) graphics.Size {
	size := natural
	if hints.Width.OrForce(forceShrink) == layout.Fill {
		size.Width = available.Width
	}
	if hints.Height.OrForce(forceShrink) == layout.Fill {
		size.Height = available.Height
	}
	return size
}

// shrinkBy removes pad from both sides of s, clamping at zero.
func shrinkBy(s graphics.Size, pad graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  max(0, s.Width-2*pad.Width),
		Height: max(0, s.Height-2*pad.Height),
	}
}

// growBy adds pad to both sides of s.
func growBy(s graphics.Size, pad graphics.Size) graphics.Size {
	return graphics.Size{Width: s.Width + 2*pad.Width, Height: s.Height + 2*pad.Height}
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
