// Package logging builds the structured logger shared by the CLI commands
// and the dashboard.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// EnvLogFile names a file that receives log output. The dashboard owns the
// terminal, so without it the dashboard logs nowhere.
const EnvLogFile = "SOLARCALC_LOG"

// Options controls where log records go.
type Options struct {
	Verbose bool
	// Interactive is set when the terminal is taken over by the dashboard.
	Interactive bool
	// Stderr overrides the console writer (tests).
	Stderr io.Writer
}

// New returns a logger tagged with a fresh session id and a closer for any
// opened log file. The closer is never nil.
func New(opts Options) (*slog.Logger, func() error, error) {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	hopts := &slog.HandlerOptions{Level: level}

	console := opts.Stderr
	if console == nil {
		console = os.Stderr
	}
	if opts.Interactive {
		console = io.Discard
	}

	closer := func() error { return nil }
	var handlers []slog.Handler
	if path := os.Getenv(EnvLogFile); path != "" {
		f, err := openLogFile(path)
		if err != nil {
			return nil, closer, err
		}
		closer = f.Close
		// The file always gets debug detail.
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	if console != io.Discard {
		handlers = append(handlers, slog.NewTextHandler(console, hopts))
	}

	var h slog.Handler
	switch len(handlers) {
	case 0:
		h = slog.NewTextHandler(io.Discard, hopts)
	case 1:
		h = handlers[0]
	default:
		h = &teeHandler{handlers: handlers}
	}

	logger := slog.New(h).With("session", uuid.NewString())
	return logger, closer, nil
}

func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
