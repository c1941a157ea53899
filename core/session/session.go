package session

import (
	"maps"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

// Context is the owning web context of a session. The store only keeps the
// reference and reads its path for the session cookie.
type Context interface {
	Path() string
}

// Session is the server-side state of one client.
// Timestamps are milliseconds since the Unix epoch.
type Session struct {
	token        string
	context      Context
	creationTime int64

	lastAccessedTime    atomic.Int64
	maxInactiveInterval atomic.Int64 // seconds

	mu         sync.RWMutex
	attributes map[string]any
}

func newSession(token string, ctx Context, timeout int, now time.Time) *Session {
	if isNilContext(ctx) {
		ctx = nil
	}
	ms := now.UnixMilli()
	s := &Session{
		token:        token,
		context:      ctx,
		creationTime: ms,
		attributes:   make(map[string]any),
	}
	s.lastAccessedTime.Store(ms)
	s.maxInactiveInterval.Store(int64(timeout))
	return s
}

// Token returns the session identifier carried in the client cookie.
func (s *Session) Token() string { return s.token }

// Context returns the web context the session was created in.
func (s *Session) Context() Context { return s.context }

// CreationTime returns when the session was created.
func (s *Session) CreationTime() int64 { return s.creationTime }

// LastAccessedTime returns when the session was last looked up by a request.
func (s *Session) LastAccessedTime() int64 { return s.lastAccessedTime.Load() }

// IsNew reports whether the session has not been accessed since it was created.
func (s *Session) IsNew() bool { return s.LastAccessedTime() == s.creationTime }

// MaxInactiveInterval returns the allowed idleness in seconds.
func (s *Session) MaxInactiveInterval() int { return int(s.maxInactiveInterval.Load()) }

// SetMaxInactiveInterval changes the allowed idleness in seconds.
// The new value reaches the client cookie on the next request.
func (s *Session) SetMaxInactiveInterval(seconds int) {
	s.maxInactiveInterval.Store(int64(seconds))
}

// Attribute returns the value stored under name.
func (s *Session) Attribute(name string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.attributes[name]
	return v, ok
}

// SetAttribute stores value under name, replacing any previous value.
func (s *Session) SetAttribute(name string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attributes[name] = value
}

// RemoveAttribute deletes the value stored under name.
func (s *Session) RemoveAttribute(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.attributes, name)
}

// AttributeNames returns the attribute names in sorted order.
func (s *Session) AttributeNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.attributes))
}

// Invalidate drops every attribute. The session itself stays in the store
// until it expires.
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.attributes)
}

// isNilContext reports whether ctx is nil or wraps a nil pointer, such as a
// nil *servlet.Context passed through the Context interface.
func isNilContext(ctx Context) bool {
	if ctx == nil {
		return true
	}
	v := reflect.ValueOf(ctx)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// touch moves lastAccessedTime forward to now. It never moves it backward,
// so concurrent refreshes keep the latest timestamp.
func (s *Session) touch(now time.Time) {
	ms := now.UnixMilli()
	for {
		prev := s.lastAccessedTime.Load()
		if ms <= prev || s.lastAccessedTime.CompareAndSwap(prev, ms) {
			return
		}
	}
}

func (s *Session) expired(now time.Time) bool {
	idle := now.UnixMilli() - s.LastAccessedTime()
	return idle > s.maxInactiveInterval.Load()*1000
}
