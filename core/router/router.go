package router

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/dmitrymomot/minicat/core/servlet"
)

// NotFound is the default fallback servlet.
var NotFound = servlet.ServletFunc(func(_ context.Context, _ *servlet.Request, resp *servlet.Response) error {
	resp.Status = http.StatusNotFound
	return nil
})

// Option configures a Router.
type Option func(*Router)

// WithFallback sets the servlet used for URIs without a mapping.
func WithFallback(s servlet.Servlet) Option {
	return func(r *Router) {
		if s != nil {
			r.fallback = s
		}
	}
}

// Router maps request paths to servlet contexts and dispatches to servlets.
// It implements servlet.Dispatcher.
type Router struct {
	mu       sync.RWMutex
	contexts map[string]*servlet.Context
	root     *servlet.Context
	fallback servlet.Servlet
}

// New creates a Router with an empty root context.
func New(opts ...Option) *Router {
	r := &Router{
		contexts: make(map[string]*servlet.Context),
		root:     servlet.NewContext("/"),
		fallback: NotFound,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Mount registers c under its path. Mounting "/" replaces the root context.
func (r *Router) Mount(c *servlet.Context) error {
	if c == nil {
		return ErrNilContext
	}

	path := c.Path()
	if path != "/" && (!strings.HasPrefix(path, "/") || strings.Contains(path[1:], "/")) {
		return fmt.Errorf("%w: %q", ErrInvalidContextPath, path)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if path == "/" {
		r.root = c
		return nil
	}
	r.contexts[path] = c
	return nil
}

// Root returns the root context.
func (r *Router) Root() *servlet.Context {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.root
}

// Resolve returns the context that owns path and the path relative to it.
// A path equal to a context's mount path resolves to "/" within that context.
func (r *Router) Resolve(path string) (*servlet.Context, string) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	first := path
	if i := strings.IndexByte(path[min(1, len(path)):], '/'); i >= 0 {
		first = path[:i+1]
	}

	c, ok := r.contexts[first]
	if !ok {
		return r.root, path
	}

	uri := strings.TrimPrefix(path, first)
	if uri == "" {
		uri = "/"
	}
	return c, uri
}

// Dispatch invokes the servlet mapped to req.URI in req.Context, or the
// fallback servlet when nothing is mapped. Requests without a context use the
// root context.
func (r *Router) Dispatch(ctx context.Context, req *servlet.Request, resp *servlet.Response) error {
	c := req.Context
	if c == nil {
		c = r.Root()
	}

	if s, ok := c.Servlet(req.URI); ok {
		return s.Service(ctx, req, resp)
	}
	return r.fallback.Service(ctx, req, resp)
}
