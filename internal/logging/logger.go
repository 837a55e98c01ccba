package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup initializes the global slog logger with JSON output to stdout.
// LOG_LEVEL (debug, info, warn, error) controls verbosity; default info.
func Setup() {
	slog.SetDefault(slog.New(StdoutHandler()))
}

// StdoutHandler returns the JSON stdout handler at the configured level. It
// is also the console leg of the fan-out once the DB handler is up.
func StdoutHandler() slog.Handler {
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(os.Getenv("LOG_LEVEL")),
	})
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
