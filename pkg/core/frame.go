package core

import (
	"github.com/go-drift/sway/pkg/errors"
	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
	"github.com/go-drift/sway/pkg/input"
	"github.com/go-drift/sway/pkg/layout"
)

// Frame is the result of one successful run.
type Frame struct {
	Number      uint64
	Layout      layout.Node
	DisplayList *graphics.DisplayList
	// Events is the size of the input batch handled.
	Events int
	// Evicted counts memory entries swept after the frame.
	Evicted int
}

// Run drives one frame of root against state, a pointer to the application
// state that external callbacks are applied to.
//
// If any phase aborts, nothing of the frame is kept: the display list and
// pending callbacks are dropped, memory is not swept, input is still aged,
// and the error is returned.
func (c *Context) Run(root Widget, state any) (frame *Frame, err error) {
	const op = "core.Run"
	c.frame++
	screen := c.Input.ScreenSize()
	c.painter.Reset(screen, c.Theme.Colors.Text)
	events := c.Input.TakeEvents()

	defer func() {
		r := recover()
		if r == nil && err == nil {
			return
		}
		if r != nil {
			err = errors.FromRecovered(op, r)
		}
		errors.ReportAny(op, err)
		c.painting = false
		c.painter.Discard()
		c.Callbacks.Drop()
		c.Input.EndFrame()
		frame = nil
	}()

	node := root.Layout(c, identity.Root, screen, false)
	node.ToAbsolute()

	status := input.Ignored
	root.OnEvent(c, &node, c.Input.Position(), events, &status)
	root.Draw(c, &node)
	list := c.painter.Finish()

	if err := c.Callbacks.EndFrame(state, c.Accessors); err != nil {
		return nil, err
	}
	evicted := c.Memory.Sweep(node.IDs())
	c.Input.EndFrame()

	return &Frame{
		Number:      c.frame,
		Layout:      node,
		DisplayList: list,
		Events:      len(events),
		Evicted:     evicted,
	}, nil
}

// App re-declares its widget tree from the application state every frame.
type App[S any] struct {
	Ctx   *Context
	State *S
	Build func(state *S) Widget
}

// NewApp binds a build function to state.
func NewApp[S any](ctx *Context, state *S, build func(*S) Widget) *App[S] {
	return &App[S]{Ctx: ctx, State: state, Build: build}
}

// Frame builds a fresh tree and runs it.
func (a *App[S]) Frame() (*Frame, error) {
	return a.Ctx.Run(a.Build(a.State), a.State)
}
