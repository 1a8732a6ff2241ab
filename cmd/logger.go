package cmd

import (
	"log/slog"
	"os"
)

// NewLogger returns a JSON logger in production and a text logger at debug
// level everywhere else.
func NewLogger(appEnv string) *slog.Logger {
	var handler slog.Handler
	switch appEnv {
	case "production", "prod":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.New(handler)
}
