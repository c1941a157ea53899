package server

import "time"

const (
	// DefaultAddr is the listen address used when none is configured.
	DefaultAddr = ":18080"

	// DefaultReadTimeout is the default timeout for reading the request.
	DefaultReadTimeout = 15 * time.Second

	// DefaultShutdownTimeout is the default timeout for graceful shutdown.
	DefaultShutdownTimeout = 30 * time.Second

	// DefaultMaxHeaderBytes is the default maximum size of the request head.
	DefaultMaxHeaderBytes = 1 << 20 // 1 MB

	maxAcceptDelay = time.Second
)
