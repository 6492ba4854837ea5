package logging

import (
	"log/slog"
	"os"
)

// Init configures the default slog logger. Verbose mode enables debug
// output; otherwise only warnings and errors reach the terminal so
// report output stays clean.
func Init(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
