package processor

import "errors"

var (
	// ErrDispatchTimeout is returned when dispatch outlives the request deadline.
	ErrDispatchTimeout = errors.New("dispatch deadline exceeded")
	// ErrConnClosed is returned when writing to a connection that was already closed.
	ErrConnClosed = errors.New("connection already closed")
)
