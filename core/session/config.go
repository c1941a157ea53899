package session

import (
	"log/slog"
	"time"
)

const (
	// DefaultTimeout is the idle timeout in seconds used when no configuration provides one.
	DefaultTimeout = 30

	// DefaultSweepInterval is how often Run scans the table for idle sessions.
	DefaultSweepInterval = 30 * time.Second
)

// Config holds session store configuration.
type Config struct {
	Timeout       int           `env:"SESSION_TIMEOUT" envDefault:"30"`    // seconds of allowed idleness
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"30s"`
	WebXML        string        `env:"SESSION_WEB_XML" envDefault:""` // optional web descriptor overriding Timeout
}

// DefaultConfig returns a Config with the default timeout and sweep interval.
func DefaultConfig() Config {
	return Config{
		Timeout:       DefaultTimeout,
		SweepInterval: DefaultSweepInterval,
	}
}

// Option configures a Store.
type Option func(*Store)

// WithTimeout sets the idle timeout in seconds given to new sessions.
// Non-positive values are ignored.
func WithTimeout(seconds int) Option {
	return func(s *Store) {
		if seconds > 0 {
			s.timeout = seconds
		}
	}
}

// WithSweepInterval sets how often Run sweeps idle sessions.
func WithSweepInterval(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.sweepInterval = d
		}
	}
}

// WithLogger sets the logger used by the sweeper.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock replaces time.Now. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithTokenGenerator replaces the token source. Intended for tests.
func WithTokenGenerator(fn func() (string, error)) Option {
	return func(s *Store) {
		if fn != nil {
			s.newToken = fn
		}
	}
}

// NewFromConfig creates a Store from configuration.
// A readable web descriptor takes precedence over cfg.Timeout; an unreadable one
// is logged and ignored.
func NewFromConfig(cfg Config, opts ...Option) *Store {
	configOpts := make([]Option, 0, 2)

	if cfg.Timeout > 0 {
		configOpts = append(configOpts, WithTimeout(cfg.Timeout))
	}
	if cfg.SweepInterval > 0 {
		configOpts = append(configOpts, WithSweepInterval(cfg.SweepInterval))
	}

	s := New(append(configOpts, opts...)...)

	if cfg.WebXML != "" {
		timeout, err := TimeoutFromDescriptor(cfg.WebXML)
		if err != nil {
			s.logger.Warn("session timeout not taken from web descriptor",
				slog.String("file", cfg.WebXML),
				slog.Any("error", err),
				slog.Int("timeout", s.timeout),
			)
		} else if timeout > 0 {
			s.timeout = timeout
		}
	}

	return s
}
