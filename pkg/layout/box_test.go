package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
)

// fixedChild has a natural size and, when filling, takes whatever it is offered.
type fixedChild struct {
	size  graphics.Size
	hints Hints
	calls int
}

func (c *fixedChild) Hints() Hints { return c.hints }

func (c *fixedChild) Layout(available graphics.Size, forceShrink bool) Node {
	c.calls++
	s := c.size
	if c.hints.Size.Width.OrForce(forceShrink) == Fill {
		s.Width = available.Width
	}
	if c.hints.Size.Height.OrForce(forceShrink) == Fill {
		s.Height = available.Height
	}
	// Children may translate themselves; the box must discard it.
	return Leaf(identity.Root.With(c), s).Translated(graphics.Offset{X: 3, Y: 3})
}

func shrinkChild(w, h float64) *fixedChild {
	return &fixedChild{size: graphics.Size{Width: w, Height: h}, hints: DefaultHints()}
}

func fillChild(weight uint) *fixedChild {
	return &fixedChild{size: graphics.Size{Width: 10, Height: 10}, hints: Hints{
		Size:   SizeHints{Width: Fill, Height: Fill},
		Weight: weight,
	}}
}

func children(cs ...*fixedChild) []Child {
	out := make([]Child, len(cs))
	for i, c := range cs {
		out[i] = c
	}
	return out
}

func TestBoxEmptyIsZeroLeaf(t *testing.T) {
	id := identity.Root.With("box")
	n := Box{Axis: AxisVertical}.Layout(id, nil, graphics.Size{Width: 100, Height: 100}, false)
	assert.Equal(t, id, n.ID)
	assert.Equal(t, graphics.Size{}, n.Size())
	assert.Empty(t, n.Children)
}

// Shrink children are packed with separators between them only.
func TestBoxShrinkChildrenSum(t *testing.T) {
	b := Box{Axis: AxisVertical, Separation: 5}
	n := b.Layout(identity.Root, children(shrinkChild(10, 20), shrinkChild(30, 30), shrinkChild(20, 40)),
		graphics.Size{Width: 500, Height: 1000}, false)

	require.Len(t, n.Children, 3)
	assert.Equal(t, 20.0+30+40+5*2, n.Size().Height)
	assert.Equal(t, 30.0, n.Size().Width)
	assert.Equal(t, 0.0, n.Children[0].Bounds.Top)
	assert.Equal(t, 25.0, n.Children[1].Bounds.Top)
	assert.Equal(t, 60.0, n.Children[2].Bounds.Top)
	for _, c := range n.Children {
		assert.Equal(t, 0.0, c.Bounds.Left)
	}
}

func TestBoxWeightedFill(t *testing.T) {
	a, b := fillChild(1), fillChild(3)
	box := Box{Axis: AxisHorizontal, Separation: 0}
	n := box.Layout(identity.Root, children(a, b), graphics.Size{Width: 400, Height: 50}, false)

	require.Len(t, n.Children, 2)
	assert.InDelta(t, 100, n.Children[0].Size().Width, 1e-9)
	assert.InDelta(t, 300, n.Children[1].Size().Width, 1e-9)
	assert.InDelta(t, 100, n.Children[1].Bounds.Left, 1e-9)
}

// With a fill child, the children never overflow the available main space.
func TestBoxFillNeverOverflows(t *testing.T) {
	sizes := []float64{100, 250, 400, 1000}
	for _, avail := range sizes {
		box := Box{Axis: AxisHorizontal, Separation: 7}
		n := box.Layout(identity.Root, children(shrinkChild(40, 10), fillChild(2), shrinkChild(30, 10), fillChild(1)),
			graphics.Size{Width: avail, Height: 50}, false)
		total := 0.0
		for _, c := range n.Children {
			total += c.Size().Width
		}
		total += 7 * 3
		assert.LessOrEqual(t, total, avail+1e-9, "available %v", avail)
		assert.InDelta(t, avail, n.Size().Width, 1e-9, "available %v", avail)
	}
}

func TestBoxCenteredScenario(t *testing.T) {
	box := Box{Axis: AxisVertical, Separation: 5, MainAlign: AlignCenter}
	n := box.Layout(identity.Root, children(shrinkChild(50, 20), shrinkChild(50, 30), shrinkChild(50, 40)),
		graphics.Size{Width: 100, Height: 200}, false)

	require.Len(t, n.Children, 3)
	assert.InDelta(t, 47.5, n.Children[0].Bounds.Top, 1e-9)
	assert.InDelta(t, 72.5, n.Children[1].Bounds.Top, 1e-9)
	assert.InDelta(t, 107.5, n.Children[2].Bounds.Top, 1e-9)
	assert.InDelta(t, 100, n.Size().Height, 1e-9)
}

func TestBoxMainAlignEnd(t *testing.T) {
	box := Box{Axis: AxisHorizontal, Separation: 0, MainAlign: AlignEnd}
	n := box.Layout(identity.Root, children(shrinkChild(10, 5), shrinkChild(20, 5)),
		graphics.Size{Width: 100, Height: 10}, false)
	assert.Equal(t, 70.0, n.Children[0].Bounds.Left)
	assert.Equal(t, 100.0, n.Children[1].Bounds.Right)
}

// Alignment is ignored once any child fills the main axis.
func TestBoxMainAlignIgnoredWithFill(t *testing.T) {
	box := Box{Axis: AxisHorizontal, MainAlign: AlignCenter}
	n := box.Layout(identity.Root, children(shrinkChild(10, 5), fillChild(1)),
		graphics.Size{Width: 100, Height: 10}, false)
	assert.Equal(t, 0.0, n.Children[0].Bounds.Left)
}

func TestBoxCrossAlignment(t *testing.T) {
	kids := children(shrinkChild(10, 5), shrinkChild(30, 5))
	for _, tt := range []struct {
		align Align
		want  float64
	}{
		{AlignStart, 0},
		{AlignEnd, 20},
		{AlignCenter, 10},
	} {
		box := Box{Axis: AxisVertical, CrossAlign: tt.align}
		n := box.Layout(identity.Root, kids, graphics.Size{Width: 100, Height: 100}, false)
		assert.Equal(t, tt.want, n.Children[0].Bounds.Left, "align %s", tt.align)
		assert.Equal(t, 0.0, n.Children[1].Bounds.Left, "align %s", tt.align)
	}
}

// A box filling its cross axis takes the whole available cross space.
func TestBoxCrossFill(t *testing.T) {
	box := Box{Axis: AxisVertical, Hints: FillHints(), CrossAlign: AlignCenter}
	n := box.Layout(identity.Root, children(shrinkChild(10, 5)), graphics.Size{Width: 100, Height: 100}, false)
	assert.Equal(t, 100.0, n.Size().Width)
	assert.Equal(t, 45.0, n.Children[0].Bounds.Left)

	n = box.Layout(identity.Root, children(shrinkChild(10, 5)), graphics.Size{Width: 100, Height: 100}, true)
	assert.Equal(t, 10.0, n.Size().Width)
}

// Force-shrink turns fill children into shrink children.
func TestBoxForceShrink(t *testing.T) {
	box := Box{Axis: AxisHorizontal, Separation: 2}
	n := box.Layout(identity.Root, children(fillChild(1), shrinkChild(5, 5)), graphics.Size{Width: 100, Height: 40}, true)
	assert.Equal(t, 10.0, n.Children[0].Size().Width)
	assert.Equal(t, 17.0, n.Size().Width)
}

func TestBoxZeroWeightFill(t *testing.T) {
	var reported []string
	box := Box{
		Axis:         AxisHorizontal,
		OnDegenerate: func(_ identity.ID, msg string) { reported = append(reported, msg) },
	}
	n := box.Layout(identity.Root, children(fillChild(0), fillChild(0), shrinkChild(20, 5)),
		graphics.Size{Width: 100, Height: 10}, false)
	assert.Equal(t, 0.0, n.Children[0].Size().Width)
	assert.Equal(t, 0.0, n.Children[1].Size().Width)
	assert.Len(t, reported, 1)
}

// Every child is laid out once to measure and once for real.
func TestBoxTwoPasses(t *testing.T) {
	a, b := shrinkChild(1, 1), fillChild(1)
	Box{}.Layout(identity.Root, children(a, b), graphics.Size{Width: 10, Height: 10}, false)
	assert.Equal(t, 2, a.calls)
	assert.Equal(t, 2, b.calls)
}
