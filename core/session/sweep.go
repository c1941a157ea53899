package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/eapache/queue"

	"github.com/dmitrymomot/minicat/core/logger"
)

// Sweep removes every session idle for longer than its MaxInactiveInterval and
// returns how many were removed.
//
// Expired tokens are collected under read locks first and removed afterward.
// Each removal re-checks expiry under the shard's write lock, so a session
// refreshed between the scan and the removal survives.
func (s *Store) Sweep() int {
	now := s.now()
	expired := queue.New()

	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.RLock()
		for token, sess := range sh.sessions {
			if sess.expired(now) {
				expired.Add(token)
			}
		}
		sh.mu.RUnlock()
	}

	removed := 0
	for expired.Length() > 0 {
		token := expired.Remove().(string)
		if s.removeExpired(token, now) {
			removed++
		}
	}
	return removed
}

func (s *Store) removeExpired(token string, now time.Time) bool {
	sh := s.shardFor(token)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	sess, ok := sh.sessions[token]
	if !ok || !sess.expired(now) {
		return false
	}
	delete(sh.sessions, token)
	return true
}

// Run sweeps idle sessions once right away and then on every tick of the
// sweep interval until ctx is cancelled. It returns nil on cancellation so it
// can run under an errgroup.
func (s *Store) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	s.logger.InfoContext(ctx, "session sweeper started", slog.Duration("interval", s.sweepInterval))
	s.sweepAndLog(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("session sweeper stopped")
			return nil
		case <-ticker.C:
			s.sweepAndLog(ctx)
		}
	}
}

func (s *Store) sweepAndLog(ctx context.Context) {
	if n := s.Sweep(); n > 0 {
		s.logger.DebugContext(ctx, "expired sessions removed",
			logger.Count("removed", n),
			logger.Count("remaining", s.Len()),
		)
	}
}
