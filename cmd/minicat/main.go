// Command minicat runs the container with a sample "/examples" context.
package main

import (
	"context"
	"errors"
	"fmt"
	"html"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/minicat/app"
	"github.com/dmitrymomot/minicat/core/logger"
	"github.com/dmitrymomot/minicat/core/servlet"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.NewApp(app.WithContexts(examples()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "minicat: %v\n", err)
		os.Exit(1)
	}

	if err := a.Run(ctx); err != nil {
		a.Logger().Error("exiting", logger.Error(err))
		os.Exit(1)
	}
}

func examples() *servlet.Context {
	c := servlet.NewContext("/examples")

	c.HandleFunc("/hello", func(_ context.Context, req *servlet.Request, resp *servlet.Response) error {
		visits, _ := req.Session.Attribute("visits")
		n, _ := visits.(int)
		n++
		req.Session.SetAttribute("visits", n)

		_, err := fmt.Fprintf(resp,
			"<html><head><title>Hello</title></head><body><h1>Hello from minicat</h1>"+
				"<p>Session %s, visit %d.</p></body></html>",
			html.EscapeString(req.Session.Token()), n)
		return err
	})

	c.HandleFunc("/plain", func(_ context.Context, _ *servlet.Request, resp *servlet.Response) error {
		resp.ContentType = "text/plain; charset=utf-8"
		_, err := resp.WriteString("plain text response from minicat\n")
		return err
	})

	c.HandleFunc("/fail", func(context.Context, *servlet.Request, *servlet.Response) error {
		return errors.New("examples: deliberate failure")
	})

	c.HandleFunc("/panic", func(context.Context, *servlet.Request, *servlet.Response) error {
		panic("examples: deliberate panic")
	})

	return c
}
