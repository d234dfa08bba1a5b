// Package logging builds the process logger and carries request-scoped
// loggers through context.Context.
//
// The HTTP middleware stores a logger holding request_id and correlation_id
// (and member_id once authenticated); application code logs through
// FromContext so every line is attributable to a request:
//
//	logging.FromContext(ctx).ErrorContext(ctx, "applying to study group failed",
//	    slog.Int64("study_group_id", id),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
)

type loggerKey struct{}

// New returns a logger writing JSON to w, or logfmt when format is "text".
// level is one of debug, info, warn or error in any case; anything else means
// info. Debug loggers also record the call site. Credentials are masked, see
// SensitiveHeaders and redactor.
func New(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: redactor(),
	}
	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger returns ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// With returns ctx carrying the context logger enriched with attrs.
func With(ctx context.Context, attrs ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(attrs...))
}
