package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/minicat/core/config"
	"github.com/dmitrymomot/minicat/core/cookie"
	"github.com/dmitrymomot/minicat/core/health"
	"github.com/dmitrymomot/minicat/core/logger"
	"github.com/dmitrymomot/minicat/core/processor"
	"github.com/dmitrymomot/minicat/core/router"
	"github.com/dmitrymomot/minicat/core/server"
	"github.com/dmitrymomot/minicat/core/servlet"
	"github.com/dmitrymomot/minicat/core/session"
)

type App struct {
	config    *Config
	logger    *slog.Logger
	contexts  []*servlet.Context
	router    *router.Router
	store     *session.Store
	processor *processor.Processor
	server    *server.Server
}

type AppOption func(*App) error

// NewApp wires the container. Without WithConfig the configuration is loaded
// from the environment.
func NewApp(opts ...AppOption) (*App, error) {
	app := &App{}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.config == nil {
		var cfg Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		app.config = &cfg
	}
	cfg := app.config

	if app.logger == nil {
		preset := logger.WithDevelopment(cfg.AppName)
		if cfg.Env == EnvProduction {
			preset = logger.WithProduction(cfg.AppName)
		}
		app.logger = logger.NewFromConfig(cfg.Log, preset)
	}

	app.router = router.New()
	for _, c := range app.contexts {
		if err := app.router.Mount(c); err != nil {
			return nil, fmt.Errorf("mount %q: %w", c.Path(), err)
		}
	}

	app.store = session.NewFromConfig(cfg.Session,
		session.WithLogger(app.logger.With(logger.Component("session"))),
	)

	app.processor = processor.NewFromConfig(cfg.Processor, app.store, app.router,
		processor.WithCookieBinder(cookie.NewFromConfig(cfg.Cookie)),
		processor.WithLogger(app.logger.With(logger.Component("processor"))),
	)

	srv, err := server.NewFromConfig(cfg.Server, app.processor,
		server.WithResolver(app.router),
		server.WithConnector(cfg.Connector),
		server.WithLogger(app.logger.With(logger.Component("server"))),
	)
	if err != nil {
		return nil, err
	}
	app.server = srv

	root := app.router.Root()
	root.Handle("/health/live", health.Liveness())
	root.Handle("/health/ready", health.Readiness(app.logger, app.listening))

	return app, nil
}

// WithConfig skips environment loading and uses cfg.
func WithConfig(cfg Config) AppOption {
	return func(app *App) error {
		app.config = &cfg
		return nil
	}
}

func WithLogger(logger *slog.Logger) AppOption {
	return func(app *App) error {
		if logger == nil {
			return ErrNilLogger
		}
		app.logger = logger
		return nil
	}
}

// WithContexts mounts servlet contexts. A context at "/" replaces the root.
func WithContexts(contexts ...*servlet.Context) AppOption {
	return func(app *App) error {
		for _, c := range contexts {
			if c == nil {
				return ErrNilContext
			}
		}
		app.contexts = append(app.contexts, contexts...)
		return nil
	}
}

func (a *App) Logger() *slog.Logger { return a.logger }
func (a *App) Router() *router.Router { return a.router }
func (a *App) Store() *session.Store { return a.store }
func (a *App) Server() *server.Server { return a.server }
func (a *App) Addr() net.Addr { return a.server.Addr() }

func (a *App) listening(context.Context) error {
	if a.server.Addr() == nil {
		return ErrNotListening
	}
	return nil
}

// Run starts the session sweeper and the server and blocks until ctx is
// cancelled or either of them fails.
func (a *App) Run(ctx context.Context) error {
	a.logger.InfoContext(ctx, "starting minicat",
		logger.Group("session",
			slog.Int("timeout", a.store.Timeout()),
			slog.Duration("sweep_interval", a.config.Session.SweepInterval),
		),
		logger.Count("contexts", len(a.contexts)),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.store.Run(ctx) })
	g.Go(a.server.Run(ctx))

	if err := g.Wait(); err != nil {
		a.logger.Error("minicat stopped", logger.Error(err))
		return err
	}
	a.logger.Info("minicat stopped")
	return nil
}
