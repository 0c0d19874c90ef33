package logging

import (
	"log/slog"
	"os"
)

// Setup installs the default slog logger: JSON records on stdout.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
