package servlet

import (
	"net/http"

	"github.com/dmitrymomot/minicat/core/session"
)

// Request is a parsed client request.
type Request struct {
	Method string
	// URI is the target path relative to Context. Empty means the request has
	// no resolvable target and is dropped without a response.
	URI        string
	Headers    http.Header
	RemoteAddr string

	Context   *Context
	Connector *Connector

	// Session is attached by the processor before dispatch.
	Session *session.Session

	cookies []*http.Cookie
}

// NewRequest creates a Request and parses its Cookie headers.
// Malformed cookie lines are skipped.
func NewRequest(method, uri string, headers http.Header) *Request {
	if headers == nil {
		headers = make(http.Header)
	}

	var cookies []*http.Cookie
	for _, line := range headers.Values("Cookie") {
		parsed, err := http.ParseCookie(line)
		if err != nil {
			continue
		}
		cookies = append(cookies, parsed...)
	}

	return &Request{
		Method:  method,
		URI:     uri,
		Headers: headers,
		cookies: cookies,
	}
}

// Header returns the first value of the named header, or "".
func (r *Request) Header(name string) string {
	return r.Headers.Get(name)
}

// Cookie returns the value of the first cookie with the given name.
func (r *Request) Cookie(name string) (string, bool) {
	for _, c := range r.cookies {
		if c.Name == name {
			return c.Value, true
		}
	}
	return "", false
}
