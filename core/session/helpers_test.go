package session_test

import (
	"sync"
	"time"
)

type testContext struct {
	path string
}

func (c testContext) Path() string { return c.path }

// pointerContext implements Context on a pointer receiver, like servlet contexts.
type pointerContext struct {
	path string
}

func (c *pointerContext) Path() string { return c.path }

// fakeClock is a manually advanced clock shared between a test and the store.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.UnixMilli(1_700_000_000_000)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
