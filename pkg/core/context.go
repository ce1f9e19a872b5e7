package core

import (
	"fmt"
	"log/slog"

	"github.com/go-drift/sway/pkg/callback"
	"github.com/go-drift/sway/pkg/config"
	"github.com/go-drift/sway/pkg/errors"
	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
	"github.com/go-drift/sway/pkg/input"
	"github.com/go-drift/sway/pkg/memory"
	"github.com/go-drift/sway/pkg/text"
	"github.com/go-drift/sway/pkg/theme"
)

// Context is the frame state shared by every widget of an application.
type Context struct {
	Memory    *memory.Store
	Input     *input.State
	Callbacks *callback.Queue
	Accessors *callback.Registry
	Theme     *theme.Theme
	Text      text.Shaper
	Logger    *slog.Logger
	Config    config.Config

	painter  *graphics.Painter
	painting bool
	warned   map[string]struct{}
	frame    uint64
}

// Option customizes a Context.
type Option func(*Context)

// WithLogger sets the logger used for warnings.
func WithLogger(l *slog.Logger) Option {
	return func(c *Context) { c.Logger = l }
}

// WithShaper replaces the default text shaper.
func WithShaper(s text.Shaper) Option {
	return func(c *Context) { c.Text = s }
}

// WithTheme replaces the theme built from the configuration.
func WithTheme(th *theme.Theme) Option {
	return func(c *Context) { c.Theme = th }
}

// WithRegistry shares an accessor registry between contexts.
func WithRegistry(r *callback.Registry) Option {
	return func(c *Context) { c.Accessors = r }
}

// NewContext builds a context from a validated configuration.
func NewContext(cfg config.Config, opts ...Option) (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.New("core.NewContext", errors.KindConfig, err)
	}
	th, err := theme.FromConfig(cfg.Theme)
	if err != nil {
		return nil, errors.New("core.NewContext", errors.KindConfig, err)
	}
	shaper, err := text.NewCachedShaper(text.NewBasicShaper(), cfg.Text.CacheSize)
	if err != nil {
		return nil, errors.New("core.NewContext", errors.KindConfig, err)
	}

	c := &Context{
		Memory: memory.NewStore(cfg.EvictionPolicy()),
		Input: input.NewState(cfg.ScreenSize(), input.Options{
			DragThreshold: cfg.Input.DragThreshold,
			PixelsPerLine: cfg.Input.WheelPixelsPerLine,
		}),
		Callbacks: callback.NewQueue(),
		Accessors: callback.NewRegistry(),
		Theme:     th,
		Text:      shaper,
		Logger:    slog.Default().With("component", "sway"),
		Config:    cfg,
		warned:    make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.painter = graphics.NewPainter(cfg.ScreenSize(), c.Theme.Colors.Text)
	return c, nil
}

// FrameNumber returns the number of frames run so far.
func (c *Context) FrameNumber() uint64 {
	return c.frame
}

// Paint lends the painter to fn. Painting from inside fn is a fatal aliasing error.
func (c *Context) Paint(fn func(p *graphics.Painter)) {
	if c.painting {
		errors.Fatal("core.Paint", errors.KindInvariant, fmt.Errorf("painter: %w", errors.ErrAliasedBorrow))
	}
	c.painting = true
	defer func() { c.painting = false }()
	fn(c.painter)
}

// Font returns the configured default font.
func (c *Context) Font() text.Font {
	return text.Font{Size: c.Config.Text.FontSize}
}

// Shape lays out s with the default font at the painter's current scale.
func (c *Context) Shape(s string, wrapWidth float64) *graphics.TextLayout {
	return c.ShapeFont(s, c.Font(), wrapWidth)
}

// ShapeFont lays out s with f at the painter's current scale.
func (c *Context) ShapeFont(s string, f text.Font, wrapWidth float64) *graphics.TextLayout {
	scale := c.painter.Transform().Scale
	if scale == 0 {
		scale = 1
	}
	return c.Text.Shape(s, f, wrapWidth, scale)
}

// Warn logs a degenerate configuration once per op and widget.
func (c *Context) Warn(id identity.ID, op, msg string, args ...any) {
	key := op + "/" + id.String()
	if _, ok := c.warned[key]; ok {
		return
	}
	c.warned[key] = struct{}{}
	c.Logger.Warn(msg, append([]any{"op", op, "widget", id.String()}, args...)...)
}

// DegenerateReporter adapts Warn for layout.Box.OnDegenerate.
func (c *Context) DegenerateReporter(op string) func(identity.ID, string) {
	return func(id identity.ID, msg string) { c.Warn(id, op, msg) }
}

// RequestFocus gives keyboard focus to id.
func (c *Context) RequestFocus(id identity.ID) {
	c.Input.Arbiter().RequestFocus(id)
}

// ReleaseFocus clears focus if id holds it.
func (c *Context) ReleaseFocus(id identity.ID) {
	c.Input.Arbiter().ReleaseFocus(id)
}

// IsFocused reports whether id holds focus.
func (c *Context) IsFocused(id identity.ID) bool {
	return c.Input.Arbiter().IsFocused(id)
}

// ClaimDrag asks for the drag of button for id. See input.State.ClaimDrag.
func (c *Context) ClaimDrag(id identity.ID, rect graphics.Rect, button input.MouseButton) bool {
	return c.Input.ClaimDrag(id, rect, button)
}

// IsDragging reports whether id holds any drag claim.
func (c *Context) IsDragging(id identity.ID) bool {
	return c.Input.Arbiter().IsDragging(id)
}

// Cursor returns the pointer in the current cursor coordinate space.
func (c *Context) Cursor() graphics.Offset {
	return c.Input.Cursor()
}

// PointerDelta returns the pointer movement since the previous frame in the
// current cursor coordinate space.
func (c *Context) PointerDelta() graphics.Offset {
	return c.Input.CursorDelta()
}

// WithCursorTransform runs fn with t pushed onto the cursor transform stack.
func (c *Context) WithCursorTransform(t graphics.Transform, fn func()) {
	a := c.Input.Arbiter()
	a.PushCursorTransform(t)
	defer a.PopCursorTransform()
	fn()
}

// Dispatch queues an external callback or stores an internal payload.
func Dispatch[P any](c *Context, cb callback.Callback[P], payload P) {
	callback.Dispatch(c.Callbacks, cb, payload)
}

// NewInternalCallback creates a same-frame callback and its poll token.
func NewInternalCallback[P any](c *Context) (callback.Callback[P], callback.PollToken[P]) {
	return callback.NewInternal[P](c.Callbacks)
}

// Poll takes the payload of an internal callback, if one was dispatched.
func Poll[P any](c *Context, tok callback.PollToken[P]) (P, bool) {
	return callback.Poll(c.Callbacks, tok)
}
