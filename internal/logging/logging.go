// Package logging routes slog and the std log package to the lanes log file
package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// DefaultDir returns ~/.lanes/logs
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".lanes", "logs"), nil
}

// Init writes logs to ~/.lanes/logs/lanes.log in text format.
// The returned closer flushes and closes the file.
func Init() (io.Closer, error) {
	logDir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	return InitDir(logDir, slog.LevelDebug)
}

// InitDir writes logs at or above level to lanes.log inside dir
func InitDir(dir string, level slog.Level) (io.Closer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	logPath := filepath.Join(dir, "lanes.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: level,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Anything still using the std log package lands in the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return file, nil
}

// Discard silences logging, for tests and --quiet runs that have no log dir
func Discard() {
	Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	slog.SetDefault(Logger)
}
