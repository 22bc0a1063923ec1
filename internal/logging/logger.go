package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Init configures the global slog logger.
// In production (ENVIRONMENT=production) it uses JSON output for log aggregation.
// Otherwise it uses the human-readable text handler.
func Init() {
	env := strings.ToLower(os.Getenv("ENVIRONMENT"))

	var handler slog.Handler
	if env == "production" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	slog.SetDefault(slog.New(handler))
}

// WithComponent returns a logger with the component field attached.
// Use this for all logging within a single store or service.
func WithComponent(component string) *slog.Logger {
	return slog.With("component", component)
}

// WithFile returns a logger scoped to a specific file within a component.
func WithFile(logger *slog.Logger, path string) *slog.Logger {
	return logger.With("file", path)
}
