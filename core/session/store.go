package session

import (
	"hash/fnv"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/minicat/core/logger"
)

const (
	shardCount = 16

	// maxTokenAttempts bounds regeneration when a fresh token is already taken.
	maxTokenAttempts = 3
)

type shard struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// Store maps session tokens to sessions.
// The table is split into shards so concurrent requests rarely contend on one lock.
type Store struct {
	shards [shardCount]shard

	timeout       int
	sweepInterval time.Duration
	now           func() time.Time
	newToken      func() (string, error)
	logger        *slog.Logger
}

// Directive describes the session cookie a response must carry.
type Directive struct {
	Token  string
	MaxAge int // seconds
	Path   string
}

// New creates an empty Store. Defaults to a 30-second idle timeout and a
// 30-second sweep interval.
func New(opts ...Option) *Store {
	s := &Store{
		timeout:       DefaultTimeout,
		sweepInterval: DefaultSweepInterval,
		now:           time.Now,
		newToken:      GenerateToken,
		logger:        logger.Discard(),
	}
	for i := range s.shards {
		s.shards[i].sessions = make(map[string]*Session)
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Timeout returns the idle timeout in seconds given to new sessions.
func (s *Store) Timeout() int {
	return s.timeout
}

// GetOrCreate returns the live session for token, refreshing its last access
// time, or creates a new session when token is empty, unknown, or already swept.
// The returned Directive must be bound to the response in both cases so the
// client cookie tracks the server-side timeout.
func (s *Store) GetOrCreate(token string, ctx Context) (*Session, Directive, error) {
	if token != "" {
		if sess, ok := s.Get(token); ok {
			sess.touch(s.now())
			return sess, directiveFor(sess), nil
		}
	}

	sess, err := s.create(ctx)
	if err != nil {
		return nil, Directive{}, err
	}
	return sess, directiveFor(sess), nil
}

// Get returns the session stored under token without refreshing it.
func (s *Store) Get(token string) (*Session, bool) {
	sh := s.shardFor(token)
	sh.mu.RLock()
	sess, ok := sh.sessions[token]
	sh.mu.RUnlock()
	return sess, ok
}

// Len returns the number of sessions in the store.
func (s *Store) Len() int {
	n := 0
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.RLock()
		n += len(sh.sessions)
		sh.mu.RUnlock()
	}
	return n
}

func (s *Store) create(ctx Context) (*Session, error) {
	for range maxTokenAttempts {
		token, err := s.newToken()
		if err != nil {
			return nil, err
		}

		sess := newSession(token, ctx, s.timeout, s.now())
		if s.insert(sess) {
			s.logger.Debug("session created",
				logger.SessionToken(token),
				slog.Int("timeout", s.timeout),
			)
			return sess, nil
		}
		s.logger.Warn("session token collision, regenerating", logger.SessionToken(token))
	}
	return nil, ErrTokenCollision
}

// insert adds sess unless its token is already taken.
func (s *Store) insert(sess *Session) bool {
	sh := s.shardFor(sess.token)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if _, exists := sh.sessions[sess.token]; exists {
		return false
	}
	sh.sessions[sess.token] = sess
	return true
}

func (s *Store) shardFor(token string) *shard {
	h := fnv.New32a()
	_, _ = io.WriteString(h, token)
	return &s.shards[h.Sum32()%shardCount]
}

func directiveFor(sess *Session) Directive {
	d := Directive{
		Token:  sess.token,
		MaxAge: sess.MaxInactiveInterval(),
	}
	if sess.context != nil {
		d.Path = sess.context.Path()
	}
	return d
}
