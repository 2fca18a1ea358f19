// Package logging configures structured logging for the FinFusion binaries.
//
// Usage:
//
//	logging.Setup("info", "text")           // colored tint output
//	logging.Setup("debug", "json")          // JSON lines for log shippers
//	logging.SetupWithLevel(slog.LevelDebug) // explicit level override
//
// Levels: debug, info, warn, error (default: info).
// Formats: text (default) or json.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup configures the default logger with the given level and format names.
func Setup(level, format string) {
	slog.SetDefault(New(os.Stderr, ParseLevel(level), format))
}

// SetupWithLevel configures colored logging at the given level.
func SetupWithLevel(level slog.Level) {
	slog.SetDefault(New(os.Stderr, level, "text"))
}

// New builds a logger writing to w. Unknown formats fall back to text.
func New(w io.Writer, level slog.Level, format string) *slog.Logger {
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     level,
			AddSource: true,
		}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
	}))
}

// ParseLevel maps a level name to a slog.Level, defaulting to INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
