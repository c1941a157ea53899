package app

import (
	"github.com/dmitrymomot/minicat/core/cookie"
	"github.com/dmitrymomot/minicat/core/logger"
	"github.com/dmitrymomot/minicat/core/processor"
	"github.com/dmitrymomot/minicat/core/server"
	"github.com/dmitrymomot/minicat/core/servlet"
	"github.com/dmitrymomot/minicat/core/session"
)

// EnvProduction selects JSON logging.
const EnvProduction = "production"

type Config struct {
	Log       logger.Config
	Session   session.Config
	Cookie    cookie.Config
	Connector servlet.Connector
	Processor processor.Config
	Server    server.Config

	AppName string `env:"APP_NAME" envDefault:"minicat"`
	Env     string `env:"APP_ENV" envDefault:"development"`
}

// DefaultConfig mirrors the environment defaults.
func DefaultConfig() Config {
	return Config{
		Log:       logger.Config{},
		Session:   session.DefaultConfig(),
		Connector: servlet.DefaultConnector(),
		Processor: processor.Config{RequestTimeout: processor.DefaultRequestTimeout},
		Server:    server.DefaultConfig(),
		AppName:   "minicat",
		Env:       "development",
	}
}
