// Package config loads typed configuration from environment variables.
//
// Structs describe their settings with caarlos0/env tags and are parsed once
// per type; later calls return the cached copy. A .env file in the working
// directory is read on first use when present, and LoadEnv loads explicit
// files before the first Load call.
//
//	type Config struct {
//		DatabaseURL string `env:"DATABASE_URL,required"`
//		MaxConns    int32  `env:"DATABASE_MAX_CONNS" envDefault:"10"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
package config
