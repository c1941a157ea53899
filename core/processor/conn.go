package processor

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"
)

// Conn is the client connection a response is written to.
type Conn interface {
	io.Writer
	io.Closer
}

type flusher interface {
	Flush() error
}

type writeDeadliner interface {
	SetWriteDeadline(t time.Time) error
}

// guardedConn closes the underlying connection at most once and refuses
// writes after close.
type guardedConn struct {
	conn   Conn
	once   sync.Once
	closed atomic.Bool
	err    error
}

func guard(conn Conn) *guardedConn {
	return &guardedConn{conn: conn}
}

func (g *guardedConn) Write(p []byte) (int, error) {
	if g.closed.Load() {
		return 0, ErrConnClosed
	}
	return g.conn.Write(p)
}

// Flush flushes buffered connections. Plain network connections are unbuffered.
func (g *guardedConn) Flush() error {
	if f, ok := g.conn.(flusher); ok && !g.closed.Load() {
		return f.Flush()
	}
	return nil
}

func (g *guardedConn) Close() error {
	g.once.Do(func() {
		g.closed.Store(true)
		g.err = g.conn.Close()
	})
	return g.err
}

// bindDeadline makes writes fail once ctx's deadline passes.
func (g *guardedConn) bindDeadline(ctx context.Context) {
	if deadline, ok := ctx.Deadline(); ok {
		g.resetDeadline(deadline)
	}
}

func (g *guardedConn) resetDeadline(t time.Time) {
	if d, ok := g.conn.(writeDeadliner); ok {
		_ = d.SetWriteDeadline(t)
	}
}
