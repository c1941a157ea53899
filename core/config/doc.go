// Package config loads environment variables into typed structs.
//
// The first call loads a .env file (if present) with godotenv, then each struct
// type is parsed once with caarlos0/env and cached for the lifetime of the process:
//
//	type ConnectorConfig struct {
//		Compression string `env:"CONNECTOR_COMPRESSION" envDefault:"on"`
//		MinSize     int    `env:"CONNECTOR_COMPRESSION_MIN_SIZE" envDefault:"20"`
//	}
//
//	var cfg ConnectorConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// MustLoad panics instead of returning the error and is meant for startup code.
// Different types are cached independently, so components can each declare their
// own Config and compose them in a parent struct.
package config
