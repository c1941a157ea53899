package router

import "errors"

var (
	// ErrNilContext is returned when mounting a nil context.
	ErrNilContext = errors.New("nil servlet context")
	// ErrInvalidContextPath is returned when a context path is not "/" or a single "/segment".
	ErrInvalidContextPath = errors.New("invalid context path")
)
