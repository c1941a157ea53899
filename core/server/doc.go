// Package server provides the connection listener that feeds the request
// processor. It accepts TCP connections, parses one HTTP/1.x request per
// connection, resolves the target to a servlet context, and hands the request
// to an Executor, which writes the response and closes the connection.
//
// # Basic Usage
//
//	srv := server.New(":18080", proc,
//		server.WithResolver(rtr),
//		server.WithLogger(log),
//	)
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx))
//	if err := g.Wait(); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// # Configuration
//
// Config is parsed from the environment:
//
//	SERVER_ADDR=:18080
//	SERVER_READ_TIMEOUT=15s
//	SERVER_SHUTDOWN_TIMEOUT=30s
//	SERVER_MAX_HEADER_BYTES=1048576
//	SERVER_REUSE_PORT=false
//
// Each accepted connection gets a request ID that is attached to the request
// context with logger.WithRequestID.
//
// # Shutdown
//
// Stop closes the listener and waits for in-flight connections for at most
// the shutdown timeout. Connections are served on a context detached from the
// caller's cancellation, so cancelling Run does not abort in-flight requests.
package server
