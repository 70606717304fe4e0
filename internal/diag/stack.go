package diag

import (
	"fmt"
	"runtime"
)

const maxCapturedFrames = 64

// stackError attaches the call stack of its creation site to an error.
type stackError struct {
	err    error
	frames []string
}

// WithStack records the caller's stack on err so that Describe can print it.
// It returns nil when err is nil.
func WithStack(err error) error {
	if err == nil {
		return nil
	}
	return &stackError{err: err, frames: callers(3)}
}

func (e *stackError) Error() string { return e.err.Error() }

func (e *stackError) Unwrap() error { return e.err }

// StackTrace returns one line per captured frame, innermost first.
func (e *stackError) StackTrace() []string { return e.frames }

func callers(skip int) []string {
	pcs := make([]uintptr, maxCapturedFrames)
	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	lines := make([]string, 0, n)
	for {
		frame, more := frames.Next()
		lines = append(lines, fmt.Sprintf("at %s (%s:%d)", frame.Function, frame.File, frame.Line))
		if !more {
			break
		}
	}
	return lines
}
