package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
)

func TestClearTranslationThenTranslated(t *testing.T) {
	n := Leaf(identity.Root, graphics.Size{Width: 10, Height: 20}).Translated(graphics.Offset{X: 33, Y: -4})
	v := graphics.Offset{X: 5, Y: 7}

	n.ClearTranslation()
	once := n.Translated(v)
	n.ClearTranslation()
	twice := n.Translated(v)

	assert.Equal(t, v, once.Bounds.TopLeft())
	assert.Equal(t, once.Bounds, twice.Bounds)
	assert.Equal(t, graphics.Size{Width: 10, Height: 20}, once.Size())
}

func TestToAbsolute(t *testing.T) {
	grand := Leaf(identity.Root.With("g"), graphics.Size{Width: 1, Height: 1}).Translated(graphics.Offset{X: 2, Y: 2})
	child := WithChildren(identity.Root.With("c"), graphics.Size{Width: 10, Height: 10}, []Node{grand}).
		Translated(graphics.Offset{X: 10, Y: 20})
	root := WithChildren(identity.Root, graphics.Size{Width: 100, Height: 100}, []Node{child}).
		Translated(graphics.Offset{X: 1, Y: 1})

	root.ToAbsolute()
	assert.Equal(t, graphics.Offset{X: 1, Y: 1}, root.Bounds.TopLeft())
	assert.Equal(t, graphics.Offset{X: 11, Y: 21}, root.Children[0].Bounds.TopLeft())
	assert.Equal(t, graphics.Offset{X: 13, Y: 23}, root.Children[0].Children[0].Bounds.TopLeft())
}

func TestNodeFindAndIDs(t *testing.T) {
	a := identity.Root.With("a")
	b := identity.Root.With("b")
	root := WithChildren(identity.Root, graphics.Size{}, []Node{
		Leaf(a, graphics.Size{}),
		WithChildren(identity.Root.With("x"), graphics.Size{}, []Node{Leaf(b, graphics.Size{Width: 4})}),
	})

	n, ok := root.Find(b)
	require.True(t, ok)
	assert.Equal(t, 4.0, n.Size().Width)

	_, ok = root.Find(identity.Root.With("missing"))
	assert.False(t, ok)

	ids := root.IDs()
	assert.Len(t, ids, 4)
	assert.Contains(t, ids, a)

	_, ok = root.Child(2)
	assert.False(t, ok)
}

func TestSizeHintOrForce(t *testing.T) {
	assert.Equal(t, Shrink, Fill.OrForce(true))
	assert.Equal(t, Fill, Fill.OrForce(false))
	assert.Equal(t, Shrink, Shrink.OrForce(false))

	h := FillHorizontal()
	assert.Equal(t, Fill, h.Size.Main(AxisHorizontal))
	assert.Equal(t, Shrink, h.Size.Cross(AxisHorizontal))
	assert.Equal(t, uint(1), DefaultHints().Weight)
	assert.Equal(t, uint(0), ShrinkHints().Weight)
}
