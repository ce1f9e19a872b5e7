package widgets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/sway/pkg/callback"
	"github.com/go-drift/sway/pkg/core"
	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
	"github.com/go-drift/sway/pkg/input"
	swaytest "github.com/go-drift/sway/pkg/testing"
	"github.com/go-drift/sway/pkg/widgets"
)

type valueApp struct {
	v float64
}

func pumpDragValue(t *testing.T, state *valueApp) *swaytest.Tester {
	t.Helper()
	tester := swaytest.NewTester(t)
	onChanged := callback.FromFunc(func(s *valueApp, v float64) { s.v = v })
	require.NoError(t, tester.PumpFunc(func() core.Widget {
		return widgets.DragValueOf(identity.Key("dv"), state.v, onChanged)
	}, state))
	return tester
}

func TestDragValue_SharesIDWithEditor(t *testing.T) {
	tester := pumpDragValue(t, &valueApp{v: 1.5})
	node := tester.MustFindNode(identity.Root.With("dv"))
	assert.Empty(t, node.Children)
	assert.Equal(t, []string{"1.5"}, tester.Texts())
}

func TestDragValue_DragChangesValue(t *testing.T) {
	state := &valueApp{}
	tester := pumpDragValue(t, state)

	require.NoError(t, tester.Drag(graphics.Offset{X: 10, Y: 9}, graphics.Offset{X: 50, Y: 9}))
	assert.InDelta(t, 40*widgets.DefaultDragSpeed, state.v, 1e-9)
	assert.False(t, tester.Context().IsFocused(identity.Root.With("dv")))
}

func TestDragValue_ClickThenType(t *testing.T) {
	state := &valueApp{v: 3}
	tester := pumpDragValue(t, state)
	id := identity.Root.With("dv")

	require.NoError(t, tester.ClickNode(id))
	require.True(t, tester.Context().IsFocused(id))

	require.NoError(t, tester.Key(input.KeyBackspace))
	assert.Equal(t, 3.0, state.v, "unparsable text keeps the value")

	require.NoError(t, tester.Type("2.5"))
	assert.Equal(t, 2.5, state.v)

	require.NoError(t, tester.Key(input.KeyEnter))
	require.NoError(t, tester.Frame())
	assert.Equal(t, []string{"2.5"}, tester.Texts())
}

func TestDragValue_LiteralID(t *testing.T) {
	tester := swaytest.NewTester(t)
	dv := widgets.DragValue{ID: identity.Literal("x"), Value: 1}
	require.NoError(t, tester.Pump(widgets.VBox(identity.Key("col"), dv), &valueApp{}))

	_, ok := tester.FindNode(identity.Literal("x").Resolve(identity.Root))
	assert.True(t, ok)
}
