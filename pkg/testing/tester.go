package testing

import (
	"testing"

	"github.com/go-drift/sway/pkg/config"
	"github.com/go-drift/sway/pkg/core"
	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/layout"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
)

// Option configures a Tester.
type Option func(*options)

type options struct {
	cfg      config.Config
	coreOpts []core.Option
}

// WithSize sets the logical surface size.
func WithSize(width, height float64) Option {
	return func(o *options) {
		o.cfg.Screen.Width = width
		o.cfg.Screen.Height = height
	}
}

// WithConfig replaces the whole configuration. Apply it before WithSize.
func WithConfig(cfg config.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithContextOptions forwards options to core.NewContext.
func WithContextOptions(opts ...core.Option) Option {
	return func(o *options) { o.coreOpts = append(o.coreOpts, opts...) }
}

// Tester runs full frames against a fresh Context without a window.
type Tester struct {
	t      testing.TB
	ctx    *core.Context
	widget core.Widget
	build  func() core.Widget
	state  any
	frame  *core.Frame
	err    error
}

// NewTester creates a tester with the default test environment.
func NewTester(t testing.TB, opts ...Option) *Tester {
	t.Helper()
	o := options{cfg: config.Default()}
	o.cfg.Screen = config.ScreenConfig{Width: DefaultTestWidth, Height: DefaultTestHeight}
	for _, opt := range opts {
		opt(&o)
	}
	ctx, err := core.NewContext(o.cfg, o.coreOpts...)
	if err != nil {
		t.Fatalf("NewTester: %v", err)
	}
	return &Tester{t: t, ctx: ctx}
}

// Context returns the context frames run against.
func (t *Tester) Context() *core.Context {
	return t.ctx
}

// Pump sets the tree and state used by every following frame and runs one.
func (t *Tester) Pump(widget core.Widget, state any) error {
	t.widget = widget
	t.build = nil
	t.state = state
	return t.Frame()
}

// PumpFunc is like Pump but rebuilds the tree with build before every frame,
// so widgets see state changed by callbacks of earlier frames.
func (t *Tester) PumpFunc(build func() core.Widget, state any) error {
	t.build = build
	t.state = state
	return t.Frame()
}

// Frame runs one more frame of the last pumped tree with the pending input.
func (t *Tester) Frame() error {
	if t.build != nil {
		t.widget = t.build()
	}
	if t.widget == nil {
		t.t.Fatalf("Frame: nothing pumped")
	}
	frame, err := t.ctx.Run(t.widget, t.state)
	t.err = err
	if err == nil {
		t.frame = frame
	}
	return err
}

// Err returns the error of the last frame.
func (t *Tester) Err() error {
	return t.err
}

// LastFrame returns the last successful frame, or nil.
func (t *Tester) LastFrame() *core.Frame {
	return t.frame
}

// Layout returns the absolute layout of the last successful frame.
func (t *Tester) Layout() layout.Node {
	if t.frame == nil {
		return layout.Node{}
	}
	return t.frame.Layout
}

// DisplayList returns the display list of the last successful frame.
func (t *Tester) DisplayList() *graphics.DisplayList {
	if t.frame == nil {
		return nil
	}
	return t.frame.DisplayList
}

// Resize changes the surface size for the following frames.
func (t *Tester) Resize(width, height float64) {
	t.ctx.Input.Resize(graphics.Size{Width: width, Height: height})
}
