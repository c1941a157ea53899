// Package processor turns a dispatched request into the bytes written back to
// the client.
//
// Execute is the per-connection entry point. It attaches the client session,
// runs the dispatcher under a deadline, and writes one of three responses:
//
//   - 200: the servlet body, gzip-encoded when compress.ShouldCompress allows it
//   - 404: a not-found page naming the requested path
//   - 500: an error page with the error message, type, and stack trace
//
// Any other status is logged and the connection is closed without a response.
// Execute never returns an error or panics: dispatch failures become 500 pages,
// and failures while writing or closing are logged. The connection is closed
// exactly once on every path.
package processor
