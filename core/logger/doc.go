// Package logger builds slog loggers and provides attribute helpers used across
// the server.
//
//	log := logger.New(
//		logger.WithDevelopment("minicat"),
//		logger.WithOutput(os.Stderr),
//	)
//
//	log.Info("request processed",
//		logger.RequestID(id),
//		logger.Path("/index.html"),
//		logger.StatusCode(200),
//		logger.BytesOut(n),
//	)
//
// Helpers return an empty slog.Attr for nil errors and empty strings, which slog
// drops from the output.
package logger
