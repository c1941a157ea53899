package server

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/minicat/core/servlet"
)

// Option configures server behavior.
type Option func(*Server)

// WithLogger sets a custom logger for server operations.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithShutdownTimeout sets the maximum time to wait for in-flight connections.
func WithShutdownTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.shutdown = timeout
	}
}

// WithReadTimeout sets the deadline for reading the request head.
// Zero disables it.
func WithReadTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.readTimeout = timeout
	}
}

// WithMaxHeaderBytes limits how many bytes are read while parsing the request head.
func WithMaxHeaderBytes(n int) Option {
	return func(s *Server) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if n > 0 {
			s.maxHeaderBytes = n
		}
	}
}

// WithReusePort toggles SO_REUSEPORT on the listening socket.
func WithReusePort(enabled bool) Option {
	return func(s *Server) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.reusePort = enabled
	}
}

// WithResolver sets how request paths map to servlet contexts.
func WithResolver(r Resolver) Option {
	return func(s *Server) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if r != nil {
			s.resolver = r
		}
	}
}

// WithConnector sets the connector settings attached to every request.
func WithConnector(c servlet.Connector) Option {
	return func(s *Server) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.connector = c
	}
}

// WithIDGenerator replaces the request ID generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Server) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if fn != nil {
			s.newID = fn
		}
	}
}
