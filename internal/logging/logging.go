// Package logging provides slog-based diagnostics for tripid.
// Diagnostics go to stderr so stdout carries only identifiers.
package logging

import (
	"io"
	"log/slog"
	"runtime"
	"strings"
)

// ParseLevel converts a log level string to slog.Level.
// Valid values: "debug", "info", "warn", "error" (case-insensitive).
// Returns slog.LevelWarn for unrecognized values.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Setup installs a text handler writing to w as the default slog logger.
func Setup(w io.Writer, level slog.Level) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// SetupTest configures logging for tests (writes to provided writer, debug level).
func SetupTest(w io.Writer) {
	Setup(w, slog.LevelDebug)
}

// LogPanic logs a panic with stack trace and panics again so the process
// still terminates. Use in a defer at the top of main:
//
//	defer logging.LogPanic("main")
func LogPanic(name string) {
	if r := recover(); r != nil {
		slog.Error("panic",
			"where", name,
			"panic", r,
			"stack", string(captureStack()),
		)
		panic(r)
	}
}

// captureStack returns the current goroutine's stack trace.
func captureStack() []byte {
	buf := make([]byte, 4096)
	for {
		n := runtime.Stack(buf, false)
		if n < len(buf) {
			return buf[:n]
		}
		buf = make([]byte, len(buf)*2)
	}
}
