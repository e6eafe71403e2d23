package nutridex

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with the store's operation helpers.
// Field names are stable so logs can be queried across releases.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// A nil handler logs text to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger writing JSON lines to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger writing logfmt-style text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards everything.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, nil))
}

// WithSource returns a Logger that tags every entry with a data source,
// such as a file name.
func (l *Logger) WithSource(source string) *Logger {
	return &Logger{Logger: l.Logger.With(slog.String("source", source))}
}

// done logs msg+" completed" at level, or msg+" failed" at error level
// with only the fail attributes.
func (l *Logger) done(ctx context.Context, level slog.Level, msg string, err error, fail []slog.Attr, ok ...slog.Attr) {
	if err != nil {
		l.LogAttrs(ctx, slog.LevelError, msg+" failed", append(fail, slog.Any("error", err))...)
		return
	}
	l.LogAttrs(ctx, level, msg+" completed", append(fail, ok...)...)
}

// LogInsert logs a single record insert.
func (l *Logger) LogInsert(ctx context.Context, id string, rowID uint32, err error) {
	l.done(ctx, slog.LevelDebug, "insert", err,
		[]slog.Attr{slog.String("id", id)},
		slog.Uint64("row", uint64(rowID)))
}

// LogBatchInsert logs a bulk insert. Partial failures are logged as a warning.
func (l *Logger) LogBatchInsert(ctx context.Context, count, failed int) {
	if failed > 0 {
		l.LogAttrs(ctx, slog.LevelWarn, "batch insert completed with failures",
			slog.Int("total", count),
			slog.Int("failed", failed),
			slog.Int("success", count-failed))
		return
	}
	l.LogAttrs(ctx, slog.LevelInfo, "batch insert completed", slog.Int("count", count))
}

// LogFilter logs a filter and the number of records it returned.
func (l *Logger) LogFilter(ctx context.Context, kind FilterKind, query string, matches int, err error) {
	l.done(ctx, slog.LevelDebug, "filter", err,
		[]slog.Attr{slog.String("kind", string(kind)), slog.String("query", query)},
		slog.Int("matches", matches))
}

// LogLoad logs a dataset load.
func (l *Logger) LogLoad(ctx context.Context, source string, loaded, skipped int, err error) {
	l.done(ctx, slog.LevelInfo, "load", err,
		[]slog.Attr{slog.String("source", source)},
		slog.Int("loaded", loaded), slog.Int("skipped", skipped))
}

// LogSave logs a dataset save.
func (l *Logger) LogSave(ctx context.Context, target string, count int, err error) {
	l.done(ctx, slog.LevelInfo, "save", err,
		[]slog.Attr{slog.String("target", target)},
		slog.Int("count", count))
}
