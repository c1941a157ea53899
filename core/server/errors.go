package server

import "errors"

var (
	// ErrMissingAddress is returned when server address is not provided.
	ErrMissingAddress = errors.New("server address is required")

	// ErrMissingExecutor is returned when no request executor is provided.
	ErrMissingExecutor = errors.New("request executor is required")

	// Server lifecycle errors
	ErrServerAlreadyRunning = errors.New("server is already running")
	ErrListen               = errors.New("listen error")
	ErrShutdownTimeout      = errors.New("shutdown timed out waiting for connections")
)
