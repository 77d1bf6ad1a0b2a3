package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger creates the process logger. The level comes from ASTEROIDS_LOG_LEVEL
// (debug, info, warn, error; info by default).
func NewLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(GetEnv("ASTEROIDS_LOG_LEVEL", "info"))
	if err != nil {
		level = log.InfoLevel
		logger.Warn("unknown ASTEROIDS_LOG_LEVEL, using info", "value", os.Getenv("ASTEROIDS_LOG_LEVEL"))
	}
	logger.SetLevel(level)
	return logger
}

// OpenLogFile opens path for appending and returns a logger writing to it
// plus a func that closes the file. An empty path discards all output, which
// keeps a full-screen terminal game undisturbed.
func OpenLogFile(path, prefix string) (*log.Logger, func() error, error) {
	if path == "" {
		return NewLogger(io.Discard, prefix), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return NewLogger(f, prefix), f.Close, nil
}
