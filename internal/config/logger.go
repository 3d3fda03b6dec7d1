package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// NewLogger builds the logger described by cfg. A nil w selects stdout or
// stderr according to cfg.Output.
func NewLogger(cfg LoggerConfig, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info", "":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, &Error{Code: ErrCodeValue, Message: fmt.Sprintf("invalid log level: %s", cfg.Level)}
	}

	if w == nil {
		w = os.Stderr
		if cfg.Output == "stdout" {
			w = os.Stdout
		}
	}

	var handler slog.Handler
	switch cfg.Type {
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	case "text", "":
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	case "colored-text":
		handler = tint.NewHandler(w, &tint.Options{Level: level})
	default:
		return nil, &Error{Code: ErrCodeValue, Message: fmt.Sprintf("invalid log type: %s", cfg.Type)}
	}

	return slog.New(handler), nil
}
