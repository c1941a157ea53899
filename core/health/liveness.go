package health

import (
	"context"

	"github.com/dmitrymomot/minicat/core/servlet"
)

const contentType = "text/plain"

// Liveness indicates if the service process is running.
// Always answers "ALIVE" with 200 OK. No dependency checks.
func Liveness() servlet.Servlet {
	return servlet.ServletFunc(func(_ context.Context, _ *servlet.Request, resp *servlet.Response) error {
		resp.ContentType = contentType
		_, err := resp.WriteString("ALIVE")
		return err
	})
}
