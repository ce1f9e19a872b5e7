package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// ErrorHandler receives errors reported by the Sway toolkit.
type ErrorHandler interface {
	// HandleError is called for structured errors, including frame aborts.
	HandleError(err *SwayError)
	// HandlePanic is called for recovered panics that were not a SwayError.
	HandlePanic(err *PanicError)
}

var handler atomic.Pointer[ErrorHandler]

// SetHandler installs h as the process-wide handler. Nil restores a
// LogHandler writing to stderr.
func SetHandler(h ErrorHandler) {
	if h == nil {
		handler.Store(nil)
		return
	}
	handler.Store(&h)
}

func currentHandler() ErrorHandler {
	if h := handler.Load(); h != nil {
		return *h
	}
	return &LogHandler{}
}

// ReportAny hands err to the installed handler. A *PanicError goes to
// HandlePanic; a *SwayError, stamped if it has no timestamp, goes to
// HandleError; anything else is wrapped under op with KindUnknown.
func ReportAny(op string, err error) {
	if err == nil {
		return
	}
	h := currentHandler()

	var pe *PanicError
	if As(err, &pe) {
		h.HandlePanic(pe)
		return
	}
	var se *SwayError
	if !As(err, &se) {
		se = &SwayError{Op: op, Kind: KindUnknown, Err: err}
	}
	if se.Timestamp.IsZero() {
		se.Timestamp = time.Now()
	}
	h.HandleError(se)
}

// Recover reports a panic of the surrounding function. Use it deferred:
//
//	defer errors.Recover("widgets.Paint")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportAny(op, FromRecovered(op, r))
	}
}

// CaptureStack formats the stack of its caller's caller, one
// "function file:line" entry per frame.
func CaptureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		if !more {
			return sb.String()
		}
	}
}
