package server

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/minicat/core/logger"
	"github.com/dmitrymomot/minicat/core/processor"
	"github.com/dmitrymomot/minicat/core/servlet"
)

// Executor writes the response for a parsed request and closes conn.
// *processor.Processor implements it.
type Executor interface {
	Execute(ctx context.Context, conn processor.Conn, req *servlet.Request, resp *servlet.Response)
}

// Resolver maps a request path to its servlet context and the context-relative URI.
// *router.Router implements it.
type Resolver interface {
	Resolve(path string) (*servlet.Context, string)
}

// rootResolver leaves every path unresolved, letting the dispatcher pick its root context.
type rootResolver struct{}

func (rootResolver) Resolve(path string) (*servlet.Context, string) { return nil, path }

// Server accepts connections and serves one request on each.
// Safe for concurrent use.
type Server struct {
	mu             sync.RWMutex
	addr           string
	executor       Executor
	resolver       Resolver
	connector      servlet.Connector
	logger         *slog.Logger
	newID          func() string
	shutdown       time.Duration
	readTimeout    time.Duration
	maxHeaderBytes int
	reusePort      bool

	listener net.Listener
	done     chan struct{}
	conns    sync.WaitGroup
	running  bool
}

// New creates a new Server with the given address, executor, and options.
// Defaults to 30-second graceful shutdown timeout, the default connector,
// and a no-op logger.
func New(addr string, executor Executor, opts ...Option) *Server {
	s := &Server{
		addr:           addr,
		executor:       executor,
		resolver:       rootResolver{},
		connector:      servlet.DefaultConnector(),
		logger:         logger.Discard(),
		newID:          uuid.NewString,
		shutdown:       DefaultShutdownTimeout,
		readTimeout:    DefaultReadTimeout,
		maxHeaderBytes: DefaultMaxHeaderBytes,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Addr returns the listener address, or nil when the server is not running.
func (s *Server) Addr() net.Addr {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Start listens on the configured address and serves connections until Stop
// closes the listener, then returns nil.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrServerAlreadyRunning
	}
	if err := ctx.Err(); err != nil {
		s.mu.Unlock()
		return err
	}

	lc := listenConfig(s.reusePort)
	ln, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		s.mu.Unlock()
		return errors.Join(ErrListen, err)
	}

	s.listener = ln
	s.done = make(chan struct{})
	s.running = true
	done := s.done
	s.mu.Unlock()

	defer close(done)

	s.logger.InfoContext(ctx, "starting server", "addr", ln.Addr().String())
	s.acceptLoop(context.WithoutCancel(ctx), ln)
	return nil
}

// Stop closes the listener and waits for in-flight connections using the
// configured timeout. Returns immediately if the server is not running.
func (s *Server) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	ln, done, timeout := s.listener, s.done, s.shutdown
	s.listener = nil
	s.mu.Unlock()

	s.logger.Info("shutting down server gracefully", "timeout", timeout)

	if err := ln.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		s.logger.Error("failed to close listener", logger.Error(err))
	}
	<-done

	drained := make(chan struct{})
	go func() {
		s.conns.Wait()
		close(drained)
	}()

	select {
	case <-drained:
		s.logger.Info("server shutdown complete")
		return nil
	case <-time.After(timeout):
		s.logger.Error("server shutdown error", logger.Error(ErrShutdownTimeout))
		return ErrShutdownTimeout
	}
}

// Run provides errgroup compatibility for coordinated lifecycle management.
// Returns a function that starts the server, monitors context cancellation,
// and performs graceful shutdown when the context is cancelled.
func (s *Server) Run(ctx context.Context) func() error {
	return func() error {
		errCh := make(chan error, 1)
		go func() {
			errCh <- s.Start(ctx)
		}()

		select {
		case <-ctx.Done():
			stopErr := s.Stop()
			if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return stopErr
		case err := <-errCh:
			return err
		}
	}
}

func (s *Server) acceptLoop(ctx context.Context, ln net.Listener) {
	var delay time.Duration
	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			delay = max(5*time.Millisecond, min(2*delay, maxAcceptDelay))
			s.logger.WarnContext(ctx, "accept failed, retrying", logger.Error(err), logger.Duration(delay))
			time.Sleep(delay)
			continue
		}
		delay = 0

		s.conns.Add(1)
		go func() {
			defer s.conns.Done()
			s.serveConn(ctx, conn)
		}()
	}
}

// serveConn parses a single request from conn and executes it.
// Unparseable input is passed on with an empty URI so the executor closes
// the connection without a response.
func (s *Server) serveConn(ctx context.Context, conn net.Conn) {
	s.mu.RLock()
	newID, resolver, readTimeout, limit := s.newID, s.resolver, s.readTimeout, s.maxHeaderBytes
	connector := s.connector
	s.mu.RUnlock()

	id := newID()
	ctx = logger.WithRequestID(ctx, id)
	remote := conn.RemoteAddr().String()

	if readTimeout > 0 {
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	}

	req, err := readRequest(conn, limit, resolver)
	if err != nil {
		s.logger.DebugContext(ctx, "unreadable request",
			logger.RequestID(id),
			logger.ClientIP(remote),
			logger.Error(err),
		)
		req = servlet.NewRequest("", "", nil)
	}
	req.RemoteAddr = remote
	req.Connector = &connector

	s.executor.Execute(ctx, conn, req, servlet.NewResponse())
}

func readRequest(r io.Reader, limit int, resolver Resolver) (*servlet.Request, error) {
	hr, err := http.ReadRequest(bufio.NewReader(io.LimitReader(r, int64(limit))))
	if err != nil {
		return nil, err
	}

	c, uri := resolver.Resolve(hr.URL.Path)
	req := servlet.NewRequest(hr.Method, uri, hr.Header)
	req.Context = c
	return req, nil
}
