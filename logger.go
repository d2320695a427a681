package cliffgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with cliffgo-specific context.
// This provides structured logging with consistent field names.
//
// The algebra itself never logs; Logger is consumed by the batch and
// animation drivers in the transform and animate packages.
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
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithOp adds an operation name field to the logger.
func (l *Logger) WithOp(op string) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op),
	}
}

// WithCount adds a point count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogBatch logs the end of a batch transformation split into chunks.
func (l *Logger) LogBatch(ctx context.Context, chunks int, err error) {
	if err != nil {
		l.WarnContext(ctx, "batch transform aborted",
			"chunks", chunks,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "batch transform completed",
			"chunks", chunks,
		)
	}
}

// LogFrame logs one emitted animation frame.
func (l *Logger) LogFrame(ctx context.Context, frame int) {
	l.DebugContext(ctx, "frame emitted", "frame", frame)
}
