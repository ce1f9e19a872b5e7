// Package errors provides structured error handling for the Sway toolkit.
//
// Programmer errors detected during a frame (a missing memory entry, a broken
// accessor path, an identity mismatch between phases) are raised with [Fatal],
// which panics with a *SwayError. The frame driver recovers the panic, reports
// it through the configured [ErrorHandler] and aborts the frame.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindLayout indicates a layout phase error.
	KindLayout
	// KindMemory indicates a persistent memory access error.
	KindMemory
	// KindAccessor indicates a broken or cyclic accessor graph.
	KindAccessor
	// KindCallback indicates a callback dispatch error.
	KindCallback
	// KindInvariant indicates a violated internal invariant.
	KindInvariant
	// KindConfig indicates an invalid configuration.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindLayout:
		return "layout"
	case KindMemory:
		return "memory"
	case KindAccessor:
		return "accessor"
	case KindCallback:
		return "callback"
	case KindInvariant:
		return "invariant"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel errors wrapped by SwayError.
var (
	ErrNoAccessorPath = stderrors.New("no registered accessor path")
	ErrAccessorCycle  = stderrors.New("cycle in accessor graph")
	ErrMissingEntry   = stderrors.New("memory entry not initialized")
	ErrWrongType      = stderrors.New("wrong type for memory entry")
	ErrAliasedBorrow  = stderrors.New("entry already borrowed")
	ErrIDMismatch     = stderrors.New("widget id mismatch between phases")
	ErrMissingChild   = stderrors.New("layout node has no child at index")
)

// SwayError represents a structured error in the Sway toolkit.
type SwayError struct {
	// Op is the operation that failed (e.g., "memory.GetMut").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Widget is the hex id of the widget involved, if any.
	Widget string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *SwayError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *SwayError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic that was not a SwayError.
type PanicError struct {
	// Op is the operation that panicked (e.g., "core.Run").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// New builds a SwayError with a captured stack trace.
func New(op string, kind ErrorKind, err error) *SwayError {
	return &SwayError{
		Op:         op,
		Kind:       kind,
		Err:        err,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	}
}

// Fatal aborts the current frame by panicking with a *SwayError.
func Fatal(op string, kind ErrorKind, err error) {
	panic(New(op, kind, err))
}

// FatalWidget is like Fatal for an error tied to one widget.
func FatalWidget(op string, kind ErrorKind, widget fmt.Stringer, err error) {
	e := New(op, kind, err)
	e.Widget = widget.String()
	panic(e)
}

// Fatalf is like Fatal but wraps a formatted message around err.
func Fatalf(op string, kind ErrorKind, err error, format string, args ...any) {
	panic(New(op, kind, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)))
}

// FromRecovered converts a value returned by recover() into an error.
// A *SwayError is returned unchanged; anything else becomes a PanicError.
func FromRecovered(op string, r any) error {
	switch v := r.(type) {
	case nil:
		return nil
	case *SwayError:
		return v
	default:
		return &PanicError{Op: op, Value: v, StackTrace: CaptureStack(), Timestamp: time.Now()}
	}
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}
