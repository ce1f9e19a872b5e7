package core

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/sway/pkg/callback"
	"github.com/go-drift/sway/pkg/config"
	"github.com/go-drift/sway/pkg/errors"
	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
	"github.com/go-drift/sway/pkg/input"
	"github.com/go-drift/sway/pkg/layout"
	"github.com/go-drift/sway/pkg/memory"
)

// testLeaf is a fixed-size widget with optional phase hooks.
type testLeaf struct {
	key     string
	size    graphics.Size
	hints   layout.Hints
	onEvent func(ctx *Context, node *layout.Node, status *input.EventStatus)
	onDraw  func(ctx *Context, node *layout.Node)
}

func (l testLeaf) Hints() layout.Hints { return l.hints }

func (l testLeaf) Layout(ctx *Context, parent identity.ID, available graphics.Size, forceShrink bool) layout.Node {
	id := parent.With(l.key)
	memory.Update(ctx.Memory, id, 0, func(n *int) { *n++ })
	return layout.Leaf(id, l.size)
}

func (l testLeaf) OnEvent(ctx *Context, node *layout.Node, cursor graphics.Offset, events []input.Event, status *input.EventStatus) {
	if l.onEvent != nil {
		l.onEvent(ctx, node, status)
	}
}

func (l testLeaf) Draw(ctx *Context, node *layout.Node) {
	if l.onDraw != nil {
		l.onDraw(ctx, node)
		return
	}
	ctx.Paint(func(p *graphics.Painter) {
		p.Rect(graphics.RectPrimitive{Rect: node.Bounds, Fill: graphics.ColorWhite})
	})
}

// testColumn lays its children out with a vertical box.
type testColumn struct {
	children []Widget
}

func (c testColumn) Hints() layout.Hints { return layout.DefaultHints() }

func (c testColumn) Layout(ctx *Context, parent identity.ID, available graphics.Size, forceShrink bool) layout.Node {
	id := parent.With("column")
	box := layout.Box{Axis: layout.AxisVertical, Separation: layout.DefaultSeparation, Hints: c.Hints()}
	return box.Layout(id, AsChildren(ctx, c.children, id), available, forceShrink)
}

func (c testColumn) OnEvent(ctx *Context, node *layout.Node, cursor graphics.Offset, events []input.Event, status *input.EventStatus) {
	ForwardEvents(ctx, "testColumn.OnEvent", c.children, node, cursor, events, status)
}

func (c testColumn) Draw(ctx *Context, node *layout.Node) {
	DrawChildren(ctx, "testColumn.Draw", c.children, node)
}

type counter struct {
	n int
}

// silenceErrors installs a handler that records reports for the test's duration.
func silenceErrors(t *testing.T) *recordingHandler {
	t.Helper()
	h := &recordingHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}

type recordingHandler struct {
	errs   []*errors.SwayError
	panics []*errors.PanicError
}

func (h *recordingHandler) HandleError(err *errors.SwayError)  { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(err *errors.PanicError) { h.panics = append(h.panics, err) }

func newTestContext(t *testing.T) *Context {
	t.Helper()
	ctx, err := NewContext(config.Default())
	require.NoError(t, err)
	return ctx
}

func TestRunProducesLayoutAndDisplayList(t *testing.T) {
	ctx := newTestContext(t)
	root := testColumn{children: []Widget{
		testLeaf{key: "a", size: graphics.Size{Width: 10, Height: 20}},
		testLeaf{key: "b", size: graphics.Size{Width: 30, Height: 10}},
	}}

	frame, err := ctx.Run(root, &counter{})
	require.NoError(t, err)
	require.NotNil(t, frame)

	assert.Equal(t, uint64(1), frame.Number)
	require.Len(t, frame.Layout.Children, 2)
	assert.Equal(t, 2, frame.DisplayList.Len())

	second := frame.Layout.Children[1]
	assert.Equal(t, 23.0, second.Bounds.Top, "absolute bounds after separation")
	assert.Equal(t, frame.Layout.ID.With("b"), second.ID)
}

func TestRunDispatchesExternalCallbacksAtEndOfFrame(t *testing.T) {
	ctx := newTestContext(t)
	state := &counter{}
	add := callback.FromFunc(func(c *counter, n int) { c.n += n })

	root := testLeaf{key: "leaf", onEvent: func(ctx *Context, node *layout.Node, status *input.EventStatus) {
		Dispatch(ctx, add, 2)
		Dispatch(ctx, add, 3)
		status.Consume()
	}}

	_, err := ctx.Run(root, state)
	require.NoError(t, err)
	assert.Equal(t, 5, state.n)
	assert.Equal(t, 0, ctx.Callbacks.Len())
}

func TestRunFatalErrorDiscardsFrame(t *testing.T) {
	rec := silenceErrors(t)
	ctx := newTestContext(t)
	state := &counter{}
	add := callback.FromFunc(func(c *counter, n int) { c.n += n })

	broken := testLeaf{
		key: "broken",
		onEvent: func(ctx *Context, node *layout.Node, status *input.EventStatus) {
			Dispatch(ctx, add, 1)
		},
		onDraw: func(ctx *Context, node *layout.Node) {
			ctx.Paint(func(p *graphics.Painter) {
				p.Rect(graphics.RectPrimitive{Rect: node.Bounds})
				ctx.Paint(func(*graphics.Painter) {})
			})
		},
	}

	ctx.Input.Press(input.ButtonPrimary)
	frame, err := ctx.Run(broken, state)
	require.Error(t, err)
	assert.Nil(t, frame)
	assert.True(t, errors.Is(err, errors.ErrAliasedBorrow))
	assert.Equal(t, 0, state.n, "callbacks of an aborted frame never run")
	assert.Equal(t, 0, ctx.Callbacks.Len())
	assert.False(t, ctx.Input.IsPressed(input.ButtonPrimary), "input is aged")
	require.Len(t, rec.errs, 1)

	frame, err = ctx.Run(testLeaf{key: "ok"}, state)
	require.NoError(t, err)
	assert.Equal(t, 1, frame.DisplayList.Len())
	assert.Equal(t, 0, state.n)
}

func TestRunMissingChildAbortsFrame(t *testing.T) {
	rec := silenceErrors(t)
	ctx := newTestContext(t)
	state := &counter{}
	add := callback.FromFunc(func(c *counter, n int) { c.n += n })

	// A leaf has no children, so asking its node for one breaks the
	// layout/event agreement.
	root := testLeaf{key: "lonely", onEvent: func(ctx *Context, node *layout.Node, status *input.EventStatus) {
		Dispatch(ctx, add, 1)
		ChildNode("lonely.OnEvent", node, 0)
	}}

	frame, err := ctx.Run(root, state)
	require.Error(t, err)
	assert.Nil(t, frame)
	assert.True(t, errors.Is(err, errors.ErrMissingChild))
	assert.Equal(t, 0, state.n)
	assert.Equal(t, 0, ctx.Callbacks.Len())

	var se *errors.SwayError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, errors.KindInvariant, se.Kind)
	assert.Equal(t, "lonely.OnEvent", se.Op)
	assert.Equal(t, identity.Root.With("lonely").String(), se.Widget)
	require.Len(t, rec.errs, 1)
}

// wrapper expects its inner widget to lay out under the wrapper's own id.
type wrapper struct {
	inner testLeaf
}

func (w wrapper) Hints() layout.Hints { return w.inner.Hints() }

func (w wrapper) Layout(ctx *Context, parent identity.ID, available graphics.Size, forceShrink bool) layout.Node {
	id := parent.With("wrapper")
	node := w.inner.Layout(ctx, parent, available, forceShrink)
	CheckID("wrapper.Layout", node.ID, id)
	return node
}

func (w wrapper) OnEvent(ctx *Context, node *layout.Node, cursor graphics.Offset, events []input.Event, status *input.EventStatus) {
	w.inner.OnEvent(ctx, node, cursor, events, status)
}

func (w wrapper) Draw(ctx *Context, node *layout.Node) { w.inner.Draw(ctx, node) }

func TestRunIDMismatchAbortsFrame(t *testing.T) {
	silenceErrors(t)
	ctx := newTestContext(t)

	frame, err := ctx.Run(wrapper{inner: testLeaf{key: "inner"}}, &counter{})
	require.Error(t, err)
	assert.Nil(t, frame)
	assert.True(t, errors.Is(err, errors.ErrIDMismatch))

	var se *errors.SwayError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, errors.KindInvariant, se.Kind)
	assert.Equal(t, identity.Root.With("wrapper").String(), se.Widget)

	frame, err = ctx.Run(wrapper{inner: testLeaf{key: "wrapper"}}, &counter{})
	require.NoError(t, err)
	assert.Equal(t, identity.Root.With("wrapper"), frame.Layout.ID)
}

func TestRunRecoversForeignPanics(t *testing.T) {
	rec := silenceErrors(t)
	ctx := newTestContext(t)

	root := testLeaf{key: "x", onDraw: func(*Context, *layout.Node) { panic("boom") }}
	_, err := ctx.Run(root, &counter{})

	var pe *errors.PanicError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "boom", pe.Value)
	assert.Len(t, rec.panics, 1)
}

func TestRunUnreachableCallbackTarget(t *testing.T) {
	silenceErrors(t)
	ctx := newTestContext(t)
	type other struct{}
	cb := callback.FromFunc(func(*other, int) {})

	root := testLeaf{key: "x", onEvent: func(ctx *Context, node *layout.Node, status *input.EventStatus) {
		Dispatch(ctx, cb, 1)
	}}
	_, err := ctx.Run(root, &counter{})
	assert.True(t, errors.Is(err, errors.ErrNoAccessorPath))
}

func TestRunSweepsUnvisitedMemory(t *testing.T) {
	ctx := newTestContext(t)
	a := testLeaf{key: "a"}
	b := testLeaf{key: "b"}

	_, err := ctx.Run(testColumn{children: []Widget{a, b}}, &counter{})
	require.NoError(t, err)
	colID := identity.Root.With("column")
	assert.True(t, memory.Has[int](ctx.Memory, colID.With("b")))

	frame, err := ctx.Run(testColumn{children: []Widget{a}}, &counter{})
	require.NoError(t, err)
	assert.Equal(t, 1, frame.Evicted)
	assert.False(t, memory.Has[int](ctx.Memory, colID.With("b")))
	assert.Equal(t, 4, memory.Read[int](ctx.Memory, colID.With("a")), "measured and laid out each frame")
}

func TestRunRetainAllKeepsMemory(t *testing.T) {
	cfg := config.Default()
	cfg.Memory.Eviction = memory.RetainAll.String()
	ctx, err := NewContext(cfg)
	require.NoError(t, err)

	_, err = ctx.Run(testLeaf{key: "a"}, &counter{})
	require.NoError(t, err)
	frame, err := ctx.Run(testLeaf{key: "b"}, &counter{})
	require.NoError(t, err)
	assert.Equal(t, 0, frame.Evicted)
	assert.Equal(t, 2, ctx.Memory.Len())
}

func TestRunResetsCursorTransforms(t *testing.T) {
	silenceErrors(t)
	ctx := newTestContext(t)
	root := testLeaf{key: "x", onEvent: func(ctx *Context, node *layout.Node, status *input.EventStatus) {
		ctx.Input.Arbiter().PushCursorTransform(graphics.Translated(graphics.Offset{X: 5}))
		panic("leaked transform")
	}}
	_, err := ctx.Run(root, &counter{})
	require.Error(t, err)
	assert.Equal(t, 0, ctx.Input.Arbiter().TransformDepth())
}

func TestWithCursorTransform(t *testing.T) {
	ctx := newTestContext(t)
	ctx.Input.MoveTo(graphics.Offset{X: 10, Y: 10})

	var inside graphics.Offset
	ctx.WithCursorTransform(graphics.Translated(graphics.Offset{Y: 40}), func() {
		inside = ctx.Cursor()
	})
	assert.Equal(t, graphics.Offset{X: 10, Y: 50}, inside)
	assert.Equal(t, graphics.Offset{X: 10, Y: 10}, ctx.Cursor())
}

func TestInternalCallbacksPollWithinFrame(t *testing.T) {
	ctx := newTestContext(t)
	cb, tok := NewInternalCallback[string](ctx)
	Dispatch(ctx, cb, "hello")

	got, ok := Poll(ctx, tok)
	require.True(t, ok)
	assert.Equal(t, "hello", got)

	_, ok = Poll(ctx, tok)
	assert.False(t, ok, "payloads are taken once")
}

func TestWarnLogsOncePerWidget(t *testing.T) {
	var buf bytes.Buffer
	ctx, err := NewContext(config.Default(), WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	require.NoError(t, err)

	id := identity.Root.With("split")
	ctx.Warn(id, "SplitPane.Layout", "force shrink ignored")
	ctx.Warn(id, "SplitPane.Layout", "force shrink ignored")
	ctx.Warn(id.With(1), "SplitPane.Layout", "force shrink ignored")

	assert.Equal(t, 2, strings.Count(buf.String(), "force shrink ignored"))
}

func TestNewContextRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Memory.Eviction = "sometimes"
	_, err := NewContext(cfg)
	var se *errors.SwayError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, errors.KindConfig, se.Kind)
}

func TestAppRebuildsEachFrame(t *testing.T) {
	ctx := newTestContext(t)
	builds := 0
	app := NewApp(ctx, &counter{}, func(c *counter) Widget {
		builds++
		return testLeaf{key: "leaf", size: graphics.Size{Width: float64(builds), Height: 1}}
	})

	_, err := app.Frame()
	require.NoError(t, err)
	frame, err := app.Frame()
	require.NoError(t, err)
	assert.Equal(t, 2, builds)
	assert.Equal(t, 2.0, frame.Layout.Bounds.Width())
}
