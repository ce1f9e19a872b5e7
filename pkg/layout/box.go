package layout

import (
	"math"

	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
)

// DefaultSeparation is the gap between box children when none is configured.
const DefaultSeparation = 3.0

// Child is one entry of a box container as seen by the layout algorithm.
type Child interface {
	// Hints reports how the child wants to be sized.
	Hints() Hints
	// Layout computes the child's node within available space.
	Layout(available graphics.Size, forceShrink bool) Node
}

// Box lays children out in a single run along Axis.
//
// Shrink children take their natural size. Fill children share the space
// left over after the shrink children and separators, in proportion to their
// weight. Alignment on the main axis only applies when no child fills it.
type Box struct {
	Axis       Axis
	Separation float64
	MainAlign  Align
	CrossAlign Align
	// Hints are the box's own hints; only the cross axis hint affects the algorithm.
	Hints Hints
	// OnDegenerate, if set, is told about configurations resolved by fallback,
	// such as Fill children whose weights sum to zero.
	OnDegenerate func(id identity.ID, msg string)
}

// Layout runs the box algorithm and returns the container's node with one
// child node per entry of children, in order.
func (b Box) Layout(id identity.ID, children []Child, available graphics.Size, forceShrink bool) Node {
	if len(children) == 0 {
		return Leaf(id, graphics.Size{})
	}
	axis := b.Axis
	availMain := axis.Main(available)

	// Measurement pass: natural size of every child.
	shrink := make([]Node, len(children))
	for i, c := range children {
		shrink[i] = c.Layout(available, true)
	}

	var crossSpace float64
	switch b.Hints.Size.Cross(axis).OrForce(forceShrink) {
	case Fill:
		crossSpace = axis.CrossOf(available)
	default:
		for _, n := range shrink {
			crossSpace = math.Max(crossSpace, axis.CrossOf(n.Size()))
		}
	}

	hints := make([]Hints, len(children))
	var totalShrink float64
	var totalWeight uint
	fillCount := 0
	for i, c := range children {
		hints[i] = c.Hints()
		switch hints[i].Size.Main(axis).OrForce(forceShrink) {
		case Fill:
			fillCount++
			totalWeight += hints[i].Weight
		default:
			totalShrink += axis.Main(shrink[i].Size())
		}
	}
	totalSeparation := b.Separation * float64(len(children)-1)
	wiggle := math.Max(0, availMain-(totalShrink+totalSeparation))
	if fillCount > 0 && totalWeight == 0 && b.OnDegenerate != nil {
		b.OnDegenerate(id, "fill children have zero total weight; they receive no space")
	}

	nodes := make([]Node, len(children))
	offset := 0.0
	for i, c := range children {
		var childAvail graphics.Size
		switch hints[i].Size.Main(axis).OrForce(forceShrink) {
		case Fill:
			share := 0.0
			if totalWeight > 0 {
				share = wiggle * float64(hints[i].Weight) / float64(totalWeight)
			}
			childAvail = axis.MakeSize(share, crossSpace)
		default:
			childAvail = axis.MakeSize(math.Max(0, availMain-offset), crossSpace)
		}
		n := c.Layout(childAvail, forceShrink)
		n.ClearTranslation()
		n.TranslateMain(axis, offset)
		offset += axis.Main(n.Size()) + b.Separation
		nodes[i] = n
	}

	for i := range nodes {
		if hints[i].Size.Cross(axis).OrForce(forceShrink) == Fill {
			continue
		}
		nodes[i].TranslateCross(axis, b.CrossAlign.Offset(crossSpace-axis.CrossOf(nodes[i].Size())))
	}

	// Extent of the content from the leading edge of the first child to the
	// trailing edge of the last, before any main-axis alignment shift.
	last := nodes[len(nodes)-1]
	contentMain := axis.MainOffset(last.Bounds.TopLeft()) + axis.Main(last.Size())

	if fillCount == 0 {
		// The running offset includes a trailing separator.
		shift := b.MainAlign.Offset(availMain - offset)
		for i := range nodes {
			nodes[i].TranslateMain(axis, shift)
		}
	}

	return WithChildren(id, axis.MakeSize(contentMain, crossSpace), nodes)
}
