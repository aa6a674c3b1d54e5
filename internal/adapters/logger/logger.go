// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.whl.build/whl/internal/core/domain"
	"go.whl.build/whl/internal/core/ports"
)

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog. Output and threshold can
// be swapped at runtime, so log methods take a read lock.
type Logger struct {
	mu    sync.RWMutex
	level domain.LogLevel
	log   *slog.Logger
}

// New creates a Logger writing human-readable text to stderr at the
// informational threshold.
func New() ports.Logger {
	return NewAt(domain.LogLevelInfo)
}

// NewAt creates a Logger with the given minimum level.
func NewAt(level domain.LogLevel) *Logger {
	return &Logger{
		level: level,
		log:   slog.New(handler(os.Stderr, level)),
	}
}

// handler builds a text handler for the destination. domain.LogLevel values
// mirror slog's, the conversion is direct.
func handler(w io.Writer, level domain.LogLevel) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.Level(level),
	})
}

// SetOutput redirects the logger, keeping the configured level.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log = slog.New(handler(w, l.level))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.log.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.log.Warn(msg)
}

// Error logs an error.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.log.Error("operation failed", "error", err)
}
