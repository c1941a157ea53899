package cookie

import "time"

// Config holds session cookie attributes read from the environment.
type Config struct {
	HTTPOnly bool `env:"COOKIE_HTTP_ONLY" envDefault:"false"`
	Secure   bool `env:"COOKIE_SECURE" envDefault:"false"`
}

// Option configures a Binder.
type Option func(*Binder)

// WithHTTPOnly marks the session cookie HttpOnly.
func WithHTTPOnly(v bool) Option {
	return func(b *Binder) {
		b.httpOnly = v
	}
}

// WithSecure marks the session cookie Secure.
func WithSecure(v bool) Option {
	return func(b *Binder) {
		b.secure = v
	}
}

// WithClock replaces time.Now for Expires computation.
func WithClock(now func() time.Time) Option {
	return func(b *Binder) {
		if now != nil {
			b.now = now
		}
	}
}

// NewFromConfig creates a Binder from configuration.
func NewFromConfig(cfg Config, opts ...Option) *Binder {
	configOpts := []Option{
		WithHTTPOnly(cfg.HTTPOnly),
		WithSecure(cfg.Secure),
	}
	return NewBinder(append(configOpts, opts...)...)
}
