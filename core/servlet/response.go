package servlet

import (
	"net/http"
	"strings"
)

// DefaultContentType is the content type of a fresh Response.
const DefaultContentType = "text/html"

// Response is filled in by a servlet and serialized by the processor.
type Response struct {
	Status      int
	ContentType string
	Body        []byte

	cookies []*http.Cookie
}

// NewResponse returns an empty 200 text/html response.
func NewResponse() *Response {
	return &Response{
		Status:      http.StatusOK,
		ContentType: DefaultContentType,
	}
}

// Write appends p to the body.
func (r *Response) Write(p []byte) (int, error) {
	r.Body = append(r.Body, p...)
	return len(p), nil
}

// WriteString appends s to the body.
func (r *Response) WriteString(s string) (int, error) {
	r.Body = append(r.Body, s...)
	return len(s), nil
}

// AddCookie appends c to the outgoing cookies.
func (r *Response) AddCookie(c *http.Cookie) {
	r.cookies = append(r.cookies, c)
}

// Cookies returns the outgoing cookies in the order they were added.
func (r *Response) Cookies() []*http.Cookie {
	return r.cookies
}

// CookiesHeader serializes the outgoing cookies as header lines, each one
// preceded by CRLF so the fragment can follow another header line directly.
func (r *Response) CookiesHeader() string {
	var b strings.Builder
	for _, c := range r.cookies {
		v := c.String()
		if v == "" {
			continue
		}
		b.WriteString("\r\nSet-Cookie: ")
		b.WriteString(v)
	}
	return b.String()
}
