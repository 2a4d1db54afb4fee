// source: internal/config/development.go (Development); cmd/server/main.go (logger wiring)

// Package config holds ambient, environment-driven configuration: whether
// the process is running in a development context, and the logger that
// choice selects.
package config

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// Development reports whether DEVELOPMENT is set in the environment to
// anything other than "0".
func Development() bool {
	v, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return v != "0"
}

// NewLogger builds the process logger: a colorized handler for local
// development, structured JSON otherwise.
func NewLogger() *slog.Logger {
	if Development() {
		return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, nil))
}
