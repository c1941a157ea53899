package app

import "errors"

var (
	ErrNilLogger  = errors.New("logger cannot be nil")
	ErrNilContext = errors.New("servlet context cannot be nil")

	ErrNotListening = errors.New("server is not accepting connections")
)
