package processor

import (
	"log/slog"
	"time"
)

// DefaultRequestTimeout bounds dispatch plus response write for one request.
const DefaultRequestTimeout = 30 * time.Second

// Config holds processor configuration.
type Config struct {
	RequestTimeout time.Duration `env:"PROCESSOR_REQUEST_TIMEOUT" envDefault:"30s"`
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithRequestTimeout bounds dispatch and response write. Zero disables the bound.
func WithRequestTimeout(d time.Duration) Option {
	return func(p *Processor) {
		if d >= 0 {
			p.timeout = d
		}
	}
}

// WithCookieBinder replaces the session cookie binder.
func WithCookieBinder(b Binder) Option {
	return func(p *Processor) {
		if b != nil {
			p.binder = b
		}
	}
}
