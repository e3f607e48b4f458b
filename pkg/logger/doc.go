// Package logger builds *slog.Logger instances from functional options or an
// environment-backed Config, and provides attribute helpers so that log keys
// stay consistent across packages.
//
// # Usage
//
//	log := logger.New(logger.WithDevelopment("web"))
//	log.Debug("cookie rejected", logger.Cookie("session"), logger.Reason(err))
//
// Config can be loaded with the config package:
//
//	var cfg logger.Config
//	_ = config.Load(&cfg)
//	log, err := logger.NewFromConfig(cfg)
//
// Error, Errors and Reason return an empty attribute for nil errors, so they
// can be passed unconditionally.
package logger
