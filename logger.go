package parquetdb

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with store-specific context.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithTable adds a table field to the logger.
func (l *Logger) WithTable(table string) *Logger {
	return &Logger{
		Logger: l.Logger.With("table", table),
	}
}

// LogUpsert logs an upsert operation.
func (l *Logger) LogUpsert(ctx context.Context, table string, inserted, updated int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "upsert failed",
			"table", table,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "upsert completed",
			"table", table,
			"inserted", inserted,
			"updated", updated,
		)
	}
}

// LogRead logs a read operation.
func (l *Logger) LogRead(ctx context.Context, table string, partitions, rows int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "read failed",
			"table", table,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "read completed",
			"table", table,
			"partitions", partitions,
			"rows", rows,
		)
	}
}

// LogValidation logs an advisory validation failure. Validation never blocks
// persistence; the row is written regardless.
func (l *Logger) LogValidation(ctx context.Context, table string, row int, err error) {
	l.WarnContext(ctx, "advisory validation failed",
		"table", table,
		"row", row,
		"error", err,
	)
}
