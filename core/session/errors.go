package session

import "errors"

var (
	// ErrTokenGeneration is returned when the random source fails.
	ErrTokenGeneration = errors.New("failed to generate session token")
	// ErrTokenCollision is returned when every generated token was already taken.
	ErrTokenCollision = errors.New("session token collision")
	// ErrNoSessionTimeout is returned when a web descriptor has no session-timeout entry.
	ErrNoSessionTimeout = errors.New("web descriptor has no session timeout")
	// ErrInvalidSessionTimeout is returned when a web descriptor's session-timeout is not an integer.
	ErrInvalidSessionTimeout = errors.New("invalid session timeout")
)
