// Package health provides servlets for service health monitoring.
//
// Servlets:
//   - Liveness: Process is running (no dependency checks)
//   - Readiness: All dependencies are available
//
// Usage:
//
//	root := rtr.Root()
//	root.Handle("/health/live", health.Liveness())
//	root.Handle("/health/ready", health.Readiness(logger, listening))
//
// Dependency checks must follow func(context.Context) error signature:
//
//	func listening(ctx context.Context) error {
//		if srv.Addr() == nil {
//			return errors.New("not accepting connections")
//		}
//		return nil
//	}
//
// The container only renders 200, 404, and 500 responses, so a failed
// readiness check is reported as a 500 error page.
package health
