// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tag parsing). Each configuration type is
// parsed once and cached for the life of the process; ResetCache clears the
// cache, which tests use together with t.Setenv.
//
//	var cfg cookie.Config
//	config.MustLoad(&cfg)
package config
