// Package callback routes widget events to application state.
//
// External callbacks are queued during a frame and run once the frame ends,
// against the real application state or a sub-part of it reached through the
// accessor Registry. Internal callbacks carry a payload back to an ancestor
// widget within the same frame: the ancestor creates a token, hands the
// callback to a child and polls the token after the child handled events.
package callback

import (
	"fmt"
	"reflect"

	"github.com/go-drift/sway/pkg/errors"
)

// Callback delivers a payload of type P. The zero Callback does nothing.
type Callback[P any] struct {
	ext   *external
	token uint64
	poll  bool
}

type external struct {
	target reflect.Type
	invoke func(target any, payload any)
}

// FromFunc wraps fn as an external callback over state type T.
func FromFunc[T, P any](fn func(*T, P)) Callback[P] {
	return Callback[P]{ext: &external{
		target: reflect.TypeFor[T](),
		invoke: func(target any, payload any) {
			fn(target.(*T), payload.(P))
		},
	}}
}

// IsZero reports whether c is the zero Callback.
func (c Callback[P]) IsZero() bool {
	return c.ext == nil && !c.poll
}

// IsExternal reports whether c targets application state.
func (c Callback[P]) IsExternal() bool {
	return c.ext != nil
}

// Target returns the state type an external callback expects, or nil.
func (c Callback[P]) Target() reflect.Type {
	if c.ext == nil {
		return nil
	}
	return c.ext.target
}

func (c Callback[P]) String() string {
	switch {
	case c.ext != nil:
		return fmt.Sprintf("Callback[%s](external %s)", reflect.TypeFor[P](), c.ext.target)
	case c.poll:
		return fmt.Sprintf("Callback[%s](token %d)", reflect.TypeFor[P](), c.token)
	default:
		return fmt.Sprintf("Callback[%s](none)", reflect.TypeFor[P]())
	}
}

// PollToken reads back the payload of an internal callback within the frame
// it was created in.
type PollToken[P any] struct {
	token uint64
}

// dispatched is an external callback waiting for the end of the frame.
type dispatched struct {
	target reflect.Type
	call   func(target any)
}

// Queue holds the callbacks dispatched during one frame. The zero value is
// ready to use.
type Queue struct {
	pending  []dispatched
	internal map[uint64]any
	next     uint64
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{internal: make(map[uint64]any)}
}

// Len returns the number of pending external callbacks.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Dispatch queues an external callback or stores an internal payload.
// Dispatching the zero Callback is a no-op.
func Dispatch[P any](q *Queue, cb Callback[P], payload P) {
	switch {
	case cb.ext != nil:
		ext := cb.ext
		q.pending = append(q.pending, dispatched{
			target: ext.target,
			call:   func(target any) { ext.invoke(target, payload) },
		})
	case cb.poll:
		if q.internal == nil {
			q.internal = make(map[uint64]any)
		}
		q.internal[cb.token] = payload
	}
}

// NewInternal creates an internal callback and the token to poll it with.
// Tokens are only valid for the current frame.
func NewInternal[P any](q *Queue) (Callback[P], PollToken[P]) {
	tok := q.next
	q.next++
	return Callback[P]{token: tok, poll: true}, PollToken[P]{token: tok}
}

// Poll takes the payload stored under tok, if any. A payload is returned at
// most once.
func Poll[P any](q *Queue, tok PollToken[P]) (P, bool) {
	var zero P
	v, ok := q.internal[tok.token]
	if !ok {
		return zero, false
	}
	delete(q.internal, tok.token)
	p, ok := v.(P)
	if !ok {
		errors.Fatal("callback.Poll", errors.KindCallback,
			fmt.Errorf("token %d holds %T, want %s: %w", tok.token, v, reflect.TypeFor[P](), errors.ErrWrongType))
	}
	return p, true
}

// Drop discards every pending callback and internal payload without running them.
func (q *Queue) Drop() {
	q.pending = nil
	clear(q.internal)
	q.next = 0
}

// EndFrame clears internal payloads, resets the token counter and runs the
// pending external callbacks in dispatch order against state, which must be a
// pointer to the application state. The first callback whose target cannot be
// reached stops the flush; the remaining callbacks are dropped.
func (q *Queue) EndFrame(state any, reg *Registry) error {
	clear(q.internal)
	q.next = 0

	pending := q.pending
	q.pending = nil
	for _, d := range pending {
		if err := reg.Invoke(state, d.target, d.call); err != nil {
			return err
		}
	}
	return nil
}
