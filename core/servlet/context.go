package servlet

import (
	"context"
	"sync"
)

// Servlet produces a response for a request.
type Servlet interface {
	Service(ctx context.Context, req *Request, resp *Response) error
}

// ServletFunc adapts a function to the Servlet interface.
type ServletFunc func(ctx context.Context, req *Request, resp *Response) error

// Service calls f(ctx, req, resp).
func (f ServletFunc) Service(ctx context.Context, req *Request, resp *Response) error {
	return f(ctx, req, resp)
}

// Dispatcher routes a request to the servlet that handles it.
// A returned error becomes a 500 response.
type Dispatcher interface {
	Dispatch(ctx context.Context, req *Request, resp *Response) error
}

// DispatcherFunc adapts a function to the Dispatcher interface.
type DispatcherFunc func(ctx context.Context, req *Request, resp *Response) error

// Dispatch calls f(ctx, req, resp).
func (f DispatcherFunc) Dispatch(ctx context.Context, req *Request, resp *Response) error {
	return f(ctx, req, resp)
}

// Context is a web application mounted under a path prefix.
// It maps context-relative URIs to servlets.
type Context struct {
	path string

	mu       sync.RWMutex
	servlets map[string]Servlet
}

// NewContext creates a Context mounted at path. An empty path means the root context "/".
func NewContext(path string) *Context {
	if path == "" {
		path = "/"
	}
	return &Context{
		path:     path,
		servlets: make(map[string]Servlet),
	}
}

// Path returns the mount path. Session cookies are scoped to it.
func (c *Context) Path() string {
	return c.path
}

// Handle maps uri to s, replacing any previous mapping.
func (c *Context) Handle(uri string, s Servlet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.servlets[uri] = s
}

// HandleFunc maps uri to fn.
func (c *Context) HandleFunc(uri string, fn func(ctx context.Context, req *Request, resp *Response) error) {
	c.Handle(uri, ServletFunc(fn))
}

// Servlet returns the servlet mapped to uri.
func (c *Context) Servlet(uri string) (Servlet, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.servlets[uri]
	return s, ok
}
