package processor

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/dmitrymomot/minicat/core/compress"
	"github.com/dmitrymomot/minicat/core/cookie"
	"github.com/dmitrymomot/minicat/core/logger"
	"github.com/dmitrymomot/minicat/core/servlet"
	"github.com/dmitrymomot/minicat/core/session"
)

// errorWriteTimeout bounds writing the 500 page.
const errorWriteTimeout = 5 * time.Second

// Binder moves the session token between requests and responses.
type Binder interface {
	ExtractToken(req *servlet.Request) string
	Bind(d session.Directive, resp *servlet.Response)
}

// Processor handles one request per connection.
type Processor struct {
	store      *session.Store
	binder     Binder
	dispatcher servlet.Dispatcher
	timeout    time.Duration
	logger     *slog.Logger
}

// New creates a Processor that keeps sessions in store and hands requests to dispatcher.
func New(store *session.Store, dispatcher servlet.Dispatcher, opts ...Option) *Processor {
	p := &Processor{
		store:      store,
		binder:     cookie.NewBinder(),
		dispatcher: dispatcher,
		timeout:    DefaultRequestTimeout,
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewFromConfig creates a Processor from configuration.
func NewFromConfig(cfg Config, store *session.Store, dispatcher servlet.Dispatcher, opts ...Option) *Processor {
	configOpts := []Option{WithRequestTimeout(cfg.RequestTimeout)}
	return New(store, dispatcher, append(configOpts, opts...)...)
}

// Execute processes req and writes the response to conn, then closes conn.
// A request with an empty URI is dropped without writing anything.
// resp must not be reused after Execute returns: a dispatch that outlived the
// deadline may still be writing to it.
func (p *Processor) Execute(ctx context.Context, conn Conn, req *servlet.Request, resp *servlet.Response) {
	c := guard(conn)
	log := p.logger.With(logger.RequestID(logger.RequestIDFrom(ctx)))
	defer p.cleanup(log, c)

	if req == nil || req.URI == "" {
		log.DebugContext(ctx, "request without target dropped")
		return
	}
	log = log.With(logger.Path(req.URI))

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	c.bindDeadline(ctx)

	start := time.Now()
	n, err := p.run(ctx, log, c, req, resp)
	if err != nil {
		log.ErrorContext(ctx, "request failed", logger.Error(err))
		p.writeError(log, c, err)
		return
	}

	log.DebugContext(ctx, "request processed",
		logger.StatusCode(resp.Status),
		logger.UserAgent(req.Header("User-Agent")),
		logger.BytesOut(n),
		logger.Elapsed(start),
	)
}

// run performs session binding, dispatch, and the status-specific write.
// Panics outside the dispatcher are converted to errors as well.
func (p *Processor) run(ctx context.Context, log *slog.Logger, c *guardedConn, req *servlet.Request, resp *servlet.Response) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newPanicError(r)
		}
	}()

	if err := p.attachSession(req, resp); err != nil {
		return 0, err
	}
	if err := p.dispatch(ctx, req, resp); err != nil {
		return 0, err
	}

	switch resp.Status {
	case http.StatusOK:
		return p.writeOK(c, req, resp)
	case http.StatusNotFound:
		return p.writeNotFound(c, req.URI)
	default:
		log.WarnContext(ctx, "no response template for status, closing connection",
			logger.StatusCode(resp.Status),
		)
		return 0, nil
	}
}

func (p *Processor) attachSession(req *servlet.Request, resp *servlet.Response) error {
	var owner session.Context
	if req.Context != nil {
		owner = req.Context
	}

	sess, directive, err := p.store.GetOrCreate(p.binder.ExtractToken(req), owner)
	if err != nil {
		return fmt.Errorf("attach session: %w", err)
	}
	p.binder.Bind(directive, resp)
	req.Session = sess
	return nil
}

type outcome struct {
	err error
}

// dispatch runs the dispatcher in its own goroutine so the request deadline
// holds even when a servlet blocks.
func (p *Processor) dispatch(ctx context.Context, req *servlet.Request, resp *servlet.Response) error {
	done := make(chan outcome, 1)
	go func() {
		done <- p.invoke(ctx, req, resp)
	}()

	select {
	case out := <-done:
		return out.err
	case <-ctx.Done():
		return withStack(fmt.Errorf("%w: %w", ErrDispatchTimeout, ctx.Err()))
	}
}

func (p *Processor) invoke(ctx context.Context, req *servlet.Request, resp *servlet.Response) (out outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = outcome{err: newPanicError(r)}
		}
	}()

	if err := p.dispatcher.Dispatch(ctx, req, resp); err != nil {
		return outcome{err: withStack(err)}
	}
	return outcome{}
}

func (p *Processor) writeOK(c *guardedConn, req *servlet.Request, resp *servlet.Response) (int, error) {
	body := resp.Body
	head := Head200

	if compress.ShouldCompress(req, body, resp.ContentType, req.Connector) {
		gz, err := compress.Gzip(body)
		if err != nil {
			return 0, fmt.Errorf("gzip response body: %w", err)
		}
		body = gz
		head = Head200Gzip
	}

	header := fmt.Sprintf(head, resp.ContentType, resp.CookiesHeader())
	buf := make([]byte, 0, len(header)+len(body))
	buf = append(buf, header...)
	buf = append(buf, body...)

	n, err := c.Write(buf)
	if err != nil {
		return n, err
	}
	if err := c.Flush(); err != nil {
		return n, err
	}
	return n, c.Close()
}

func (p *Processor) writeNotFound(c *guardedConn, uri string) (int, error) {
	uri = html.EscapeString(uri)
	page := Head404 + fmt.Sprintf(NotFoundPage, uri, uri)
	return c.Write([]byte(page))
}

// writeError sends the 500 page for err. Write failures are logged and dropped.
func (p *Processor) writeError(log *slog.Logger, c *guardedConn, err error) {
	// The request deadline may already have passed; the error page gets its own.
	c.resetDeadline(time.Now().Add(errorWriteTimeout))

	page := Head500 + fmt.Sprintf(ErrorPage,
		html.EscapeString(errorMessage(err)),
		html.EscapeString(errorString(err)),
		html.EscapeString(stackTrace(err)),
	)
	if _, werr := c.Write([]byte(page)); werr != nil {
		log.Warn("failed to write error response", logger.Error(werr))
	}
}

// cleanup closes the connection if no response path closed it already.
// Nothing escapes: close failures and panics are logged.
func (p *Processor) cleanup(log *slog.Logger, c *guardedConn) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("panic while closing connection", slog.Any("panic", r))
		}
	}()

	if c.closed.Load() {
		return
	}
	if err := c.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		log.Warn("failed to close connection", logger.Error(err))
	}
}
