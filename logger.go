package cornertable

import (
	"io"
	"log/slog"
	"os"

	"github.com/golang/geo/r3"
)

// Logger wraps slog.Logger with cornertable-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithArity adds an arity field to the logger.
func (l *Logger) WithArity(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("arity", k),
	}
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(simplex int, err error) {
	if err != nil {
		l.Warn("insert rejected",
			"error", err,
		)
	} else {
		l.Debug("insert completed",
			"simplex", simplex,
		)
	}
}

// LogRemoveSimplices logs a batch simplex removal.
func (l *Logger) LogRemoveSimplices(requested int, res Removal) {
	if skipped := requested - res.Simplices; skipped > 0 {
		l.Debug("remove simplices skipped indices",
			"requested", requested,
			"skipped", skipped,
		)
	}
	l.Debug("remove simplices completed",
		"simplices", res.Simplices,
		"vertices", res.Vertices,
	)
}

// LogRemoveVertex logs a vertex removal, including the cascade it caused.
func (l *Logger) LogRemoveVertex(p r3.Vector, res Removal) {
	if res.Vertices == 0 {
		l.Debug("remove vertex: not found",
			"position", p.String(),
		)
		return
	}
	l.Debug("remove vertex completed",
		"position", p.String(),
		"simplices", res.Simplices,
		"vertices", res.Vertices,
	)
}
