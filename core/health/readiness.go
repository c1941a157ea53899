package health

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/minicat/core/logger"
	"github.com/dmitrymomot/minicat/core/servlet"
)

// ErrNotReady is returned by Readiness when a dependency check fails.
var ErrNotReady = errors.New("service not ready")

// Readiness verifies all service dependencies are functioning.
// Answers "READY" if all checks pass, otherwise returns ErrNotReady joined
// with the failing check's error.
func Readiness(log *slog.Logger, fn ...func(context.Context) error) servlet.Servlet {
	return servlet.ServletFunc(func(ctx context.Context, _ *servlet.Request, resp *servlet.Response) error {
		for _, f := range fn {
			if err := f(ctx); err != nil {
				log.ErrorContext(ctx, "Readiness check failed", logger.Error(err))
				return errors.Join(ErrNotReady, err)
			}
		}

		resp.ContentType = contentType
		_, err := resp.WriteString("READY")
		return err
	})
}
