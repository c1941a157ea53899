// Package servlet defines the request, response, and context types exchanged
// between the connection listener, the request processor, and servlets.
//
// A Context groups servlets under a path prefix. The listener resolves each
// request to a Context, the processor attaches the client session, and a
// Dispatcher invokes the servlet mapped to the request URI, which fills in the
// Response status, content type, and body.
package servlet
