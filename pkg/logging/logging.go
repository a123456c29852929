package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Logger wraps slog.Logger with application-specific functionality
type Logger struct {
	*slog.Logger
	file *os.File
}

// New creates a logger that writes JSON records to the given file.
// The TUI owns stdout, so log output never goes to the terminal.
func New(level, path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}

	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	handler := slog.NewJSONHandler(f, opts)

	return &Logger{Logger: slog.New(handler), file: f}, nil
}

// NewDated creates a logger writing to a date-stamped file in the user's
// temp directory, e.g. /tmp/leadboard_2026-08-29.log.
func NewDated(level string) (*Logger, error) {
	name := fmt.Sprintf("leadboard_%s.log", time.Now().Format("2006-01-02"))
	return New(level, filepath.Join(os.TempDir(), name))
}

// Discard returns a logger that drops all records. Used when verbose
// logging is disabled and in tests.
func Discard() *Logger {
	handler := slog.NewJSONHandler(io.Discard, nil)
	return &Logger{Logger: slog.New(handler)}
}

// Close closes the underlying log file if one is open.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
