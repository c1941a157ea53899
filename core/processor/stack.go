package processor

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

const maxStackDepth = 64

// StackTracer is implemented by errors that carry the stack where they were raised.
type StackTracer interface {
	StackTrace() []runtime.Frame
}

// PanicError wraps a value recovered from a panicking servlet together with
// the stack at the panic site.
type PanicError struct {
	Value  any
	frames []runtime.Frame
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// StackTrace returns the frames captured when the panic was recovered.
func (e *PanicError) StackTrace() []runtime.Frame {
	return e.frames
}

// Unwrap exposes panic values that are errors to errors.Is and errors.As.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// tracedError attaches a stack to an error returned by dispatch.
type tracedError struct {
	err    error
	frames []runtime.Frame
}

func (e *tracedError) Error() string               { return e.err.Error() }
func (e *tracedError) Unwrap() error               { return e.err }
func (e *tracedError) StackTrace() []runtime.Frame { return e.frames }

// withStack records the caller's stack on err unless err already carries one.
func withStack(err error) error {
	var st StackTracer
	if errors.As(err, &st) {
		return err
	}
	return &tracedError{err: err, frames: callers(3)}
}

func newPanicError(v any) *PanicError {
	return &PanicError{Value: v, frames: callers(3)}
}

// callers returns the stack above skip frames, dropping runtime internals
// such as the panic machinery.
func callers(skip int) []runtime.Frame {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip, pcs)
	it := runtime.CallersFrames(pcs[:n])

	frames := make([]runtime.Frame, 0, n)
	for {
		f, more := it.Next()
		if !strings.HasPrefix(f.Function, "runtime.") {
			frames = append(frames, f)
		}
		if !more {
			break
		}
	}
	return frames
}

// cause strips the stack wrapper added by withStack.
func cause(err error) error {
	if te, ok := err.(*tracedError); ok {
		return te.err
	}
	return err
}

// errorString renders err as "<type>: <message>".
func errorString(err error) string {
	err = cause(err)
	return fmt.Sprintf("%T: %s", err, err.Error())
}

// errorMessage returns the error message, cut to 19 characters when it is
// longer than 20.
func errorMessage(err error) string {
	msg := []rune(cause(err).Error())
	if len(msg) > 20 {
		msg = msg[:19]
	}
	return string(msg)
}

// stackTrace renders the error string followed by one tab-indented,
// CRLF-terminated line per frame.
func stackTrace(err error) string {
	var b strings.Builder
	b.WriteString(errorString(err))
	b.WriteString("\r\n")

	var st StackTracer
	if !errors.As(err, &st) {
		return b.String()
	}
	for _, f := range st.StackTrace() {
		b.WriteByte('\t')
		b.WriteString(f.Function)
		b.WriteByte('(')
		b.WriteString(f.File)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(f.Line))
		b.WriteString(")\r\n")
	}
	return b.String()
}
