package check

import (
	"log/slog"
	"os"
)

// defaultLogger returns a JSON slog.Logger writing to stderr: leveled,
// structured output, safe to use from concurrent cases.
func defaultLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
