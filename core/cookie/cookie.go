package cookie

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/minicat/core/servlet"
	"github.com/dmitrymomot/minicat/core/session"
)

// SessionCookieName is the cookie that carries the session token.
const SessionCookieName = "JSESSIONID"

// Binder moves session tokens between requests, the session store, and responses.
type Binder struct {
	httpOnly bool
	secure   bool
	now      func() time.Time
}

// NewBinder creates a Binder.
func NewBinder(opts ...Option) *Binder {
	b := &Binder{now: time.Now}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ExtractToken returns the session token presented by the client, or "" when
// the request has no session cookie.
func (b *Binder) ExtractToken(req *servlet.Request) string {
	token, _ := req.Cookie(SessionCookieName)
	return token
}

// Cookie builds the session cookie described by d.
func (b *Binder) Cookie(d session.Directive) *http.Cookie {
	c := &http.Cookie{
		Name:     SessionCookieName,
		Value:    d.Token,
		Path:     d.Path,
		HttpOnly: b.httpOnly,
		Secure:   b.secure,
	}

	// Without a positive interval the cookie lives until the browser closes.
	if d.MaxAge > 0 {
		c.MaxAge = d.MaxAge
		c.Expires = b.now().Add(time.Duration(d.MaxAge) * time.Second).UTC()
	}
	return c
}

// Bind appends the session cookie described by d to resp.
func (b *Binder) Bind(d session.Directive, resp *servlet.Response) {
	resp.AddCookie(b.Cookie(d))
}
