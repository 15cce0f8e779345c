// Package logging builds the service logger and carries request-scoped
// loggers through context.Context.
//
// HTTP middleware stores a logger tagged with request_id, correlation_id and
// trace_id; the router adds list_id and item_id for routes that carry them.
// Code below the middleware logs through FromContext:
//
//	logging.FromContext(ctx).ErrorContext(ctx, "failed to create item",
//	    slog.String("operation", "CreateItem"),
//	    slog.Int64("list_id", listID),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/todo-lists-service/internal/platform/config"
)

// Redacted replaces the value of a masked attribute.
const Redacted = "[REDACTED]"

type contextKey struct{}

// New builds a logger writing to w. cfg.Level accepts the slog level names
// (debug, info, warn, error) in any case; debug also records the source
// location. cfg.Format is "json" or "text". Every record passes through the
// masq redaction layer.
func New(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	opts := &slog.HandlerOptions{
		Level:       level,
		AddSource:   level <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	switch strings.ToLower(cfg.Format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("log format %q: want json or text", cfg.Format)
	}
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// With returns a copy of ctx whose logger also carries args.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}
