// Package sbklog provides structured logging for the SBK core,
// adapted from Sigil's internal/config logger. Secret bytes
// (brainkey, raw_salt, master_key, KDF intermediates) must never be
// passed to any of its methods — only lengths, counts, and parameter
// values are safe to log.
package sbklog

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Level is the logging verbosity.
type Level int

// Verbosity levels, ordered least to most verbose.
const (
	LevelOff Level = iota
	LevelError
	LevelDebug
)

// ParseLevel parses a level string from config or an SBK_LOG_LEVEL
// environment override, defaulting to LevelError on anything unrecognized.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "none":
		return LevelOff
	case "error":
		return LevelError
	case "debug":
		return LevelDebug
	default:
		return LevelError
	}
}

func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelDebug:
		return "debug"
	default:
		return "error"
	}
}

func (l Level) slogLevel() slog.Level {
	if l == LevelDebug {
		return slog.LevelDebug
	}
	return slog.LevelError
}

// Logger wraps a *slog.Logger behind a level gate so LevelOff costs
// nothing beyond the gate check.
type Logger struct {
	mu      sync.Mutex
	level   Level
	slogger *slog.Logger
}

// New creates a Logger writing to w (typically os.Stderr) at level.
func New(level Level, w *os.File) *Logger {
	l := &Logger{level: level}
	if level == LevelOff {
		return l
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level.slogLevel()})
	l.slogger = slog.New(handler)
	return l
}

// Null returns a Logger that discards everything.
func Null() *Logger { return &Logger{level: LevelOff} }

// SetLevel changes the active level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Debug logs a debug-level structured message.
func (l *Logger) Debug(msg string, attrs ...slog.Attr) {
	l.log(slog.LevelDebug, LevelDebug, msg, attrs...)
}

// Error logs an error-level structured message.
func (l *Logger) Error(msg string, attrs ...slog.Attr) {
	l.log(slog.LevelError, LevelError, msg, attrs...)
}

func (l *Logger) log(sl slog.Level, minLevel Level, msg string, attrs ...slog.Attr) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.level == LevelOff || l.level < minLevel || l.slogger == nil {
		return
	}
	l.slogger.LogAttrs(context.Background(), sl, msg, attrs...)
}
