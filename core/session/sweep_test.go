package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/minicat/core/session"
)

func TestStore_Sweep(t *testing.T) {
	t.Parallel()

	t.Run("removes session idle past its interval", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		store := session.New(session.WithClock(clock.Now), session.WithTimeout(30))

		sess, _, err := store.GetOrCreate("", nil)
		require.NoError(t, err)

		clock.Advance(30*time.Second + time.Millisecond)

		assert.Equal(t, 1, store.Sweep())
		_, ok := store.Get(sess.Token())
		assert.False(t, ok)
	})

	t.Run("keeps session exactly at the boundary", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		store := session.New(session.WithClock(clock.Now), session.WithTimeout(30))

		_, _, err := store.GetOrCreate("", nil)
		require.NoError(t, err)

		clock.Advance(30 * time.Second)

		assert.Zero(t, store.Sweep())
		assert.Equal(t, 1, store.Len())
	})

	t.Run("keeps recently accessed session", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		store := session.New(session.WithClock(clock.Now), session.WithTimeout(30))

		idle, _, err := store.GetOrCreate("", nil)
		require.NoError(t, err)
		active, _, err := store.GetOrCreate("", nil)
		require.NoError(t, err)

		clock.Advance(20 * time.Second)
		_, _, err = store.GetOrCreate(active.Token(), nil)
		require.NoError(t, err)
		clock.Advance(15 * time.Second)

		assert.Equal(t, 1, store.Sweep())
		_, ok := store.Get(idle.Token())
		assert.False(t, ok)
		_, ok = store.Get(active.Token())
		assert.True(t, ok)
	})

	t.Run("uses per-session interval", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		store := session.New(session.WithClock(clock.Now), session.WithTimeout(30))

		sess, _, err := store.GetOrCreate("", nil)
		require.NoError(t, err)
		sess.SetMaxInactiveInterval(120)

		clock.Advance(time.Minute)

		assert.Zero(t, store.Sweep())
	})
}

func TestStore_Run(t *testing.T) {
	t.Parallel()

	store := session.New(
		session.WithTimeout(1),
		session.WithSweepInterval(10*time.Millisecond),
	)
	_, _, err := store.GetOrCreate("", nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- store.Run(ctx) }()

	assert.Eventually(t, func() bool { return store.Len() == 0 }, 3*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestStore_RunSweepsImmediately(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	store := session.New(
		session.WithClock(clock.Now),
		session.WithTimeout(1),
		session.WithSweepInterval(time.Hour),
	)
	_, _, err := store.GetOrCreate("", nil)
	require.NoError(t, err)
	clock.Advance(2 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- store.Run(ctx) }()

	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}
