package widgets_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/sway/pkg/callback"
	"github.com/go-drift/sway/pkg/core"
	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
	swaytest "github.com/go-drift/sway/pkg/testing"
	"github.com/go-drift/sway/pkg/widgets"
)

type listApp struct {
	clicked int
}

// Ten 100x50 buttons separated by 3 give contents 527 high in a 100 high viewport.
const (
	listHeight   = 10*50 + 9*3.0
	viewport     = 100.0
	listOverflow = listHeight - viewport
)

func scrollList() widgets.VScroll {
	items := make([]core.Widget, 10)
	for i := range items {
		i := i
		items[i] = widgets.ButtonOf(strconv.Itoa(i)).
			WithMinSize(graphics.Size{Width: 100, Height: 50}).
			WithOnClick(callback.FromFunc(func(s *listApp, _ struct{}) { s.clicked = i }))
	}
	return widgets.VScrollOf(identity.Key("scroll"), widgets.VBox(identity.Key("list"), items...))
}

func firstRectTop(tester *swaytest.Tester) float64 {
	return rectParam(tester.Ops()[0], "rect")["top"].(float64)
}

func TestVScroll_Layout(t *testing.T) {
	tester := swaytest.NewTester(t, swaytest.WithSize(200, viewport))
	require.NoError(t, tester.Pump(scrollList(), &listApp{}))

	id := identity.Root.With("scroll")
	node := tester.MustFindNode(id)
	assert.Equal(t, graphics.Size{Width: 200, Height: viewport}, node.Size())
	require.Len(t, node.Children, 2)
	assert.Equal(t, listHeight, node.Children[0].Size().Height)

	bar := tester.MustFindNode(id.With("scrollbar"))
	bw := tester.Context().Theme.Scroll.BarWidth
	assert.Equal(t, graphics.RectFromLTWH(200-bw, 0, bw, viewport), bar.Bounds)
}

func TestVScroll_WheelScrollsContents(t *testing.T) {
	tester := swaytest.NewTester(t, swaytest.WithSize(200, viewport))
	state := &listApp{clicked: -1}
	require.NoError(t, tester.Pump(scrollList(), state))

	require.NoError(t, tester.MoveTo(graphics.Offset{X: 50, Y: 50}))
	require.NoError(t, tester.Wheel(graphics.Offset{Y: -50}))
	assert.InDelta(t, -50, firstRectTop(tester), 0.01)

	// The cursor is mapped into content space: y 60 on screen is y 110 in
	// the list, inside the third button.
	require.NoError(t, tester.Click(graphics.Offset{X: 50, Y: 60}))
	assert.Equal(t, 2, state.clicked)

	require.NoError(t, tester.Wheel(graphics.Offset{Y: 10000}))
	assert.InDelta(t, 0, firstRectTop(tester), 0.01)
}

func TestVScroll_ContentsAreClipped(t *testing.T) {
	tester := swaytest.NewTester(t, swaytest.WithSize(200, viewport))
	require.NoError(t, tester.Pump(scrollList(), &listApp{}))

	clip := rectParam(tester.Ops()[0], "clip")
	assert.Equal(t, 0.0, clip["top"])
	assert.Equal(t, viewport, clip["bottom"])
}

func TestVScroll_DragHandle(t *testing.T) {
	tester := swaytest.NewTester(t, swaytest.WithSize(200, viewport))
	require.NoError(t, tester.Pump(scrollList(), &listApp{}))

	bw := tester.Context().Theme.Scroll.BarWidth
	x := 200 - bw/2
	require.NoError(t, tester.Drag(graphics.Offset{X: x, Y: 8}, graphics.Offset{X: x, Y: 48}))

	handle := viewport * viewport / listHeight
	frac := 40 / (viewport - handle)
	assert.InDelta(t, -frac*listOverflow, firstRectTop(tester), 0.01)
}

func TestVScroll_IgnoresWheelOutside(t *testing.T) {
	tester := swaytest.NewTester(t, swaytest.WithSize(400, 300))
	root := widgets.Sized{Size: graphics.Size{Width: 200, Height: viewport}, Contents: scrollList()}
	require.NoError(t, tester.Pump(root, &listApp{}))

	require.NoError(t, tester.MoveTo(graphics.Offset{X: 300, Y: 250}))
	require.NoError(t, tester.Wheel(graphics.Offset{Y: -50}))
	assert.InDelta(t, 0, firstRectTop(tester), 0.01)
}
