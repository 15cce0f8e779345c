package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/todo-lists-service/internal/platform/logging"
)

// Logging returns middleware that stores a request-scoped logger in the
// context and writes one access record when the handler returns.
//
// The scoped logger carries request_id, correlation_id and, when a span is
// active, trace_id. The access record level follows the status class: error
// for 5xx, warn for 4xx, info otherwise. Request headers are logged at debug
// with credentials masked.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ids := IDsFromContext(r.Context())
			scoped := []any{
				slog.String("request_id", ids.RequestID),
				slog.String("correlation_id", ids.CorrelationID),
			}
			if sc := trace.SpanContextFromContext(r.Context()); sc.HasTraceID() {
				scoped = append(scoped, slog.String("trace_id", sc.TraceID().String()))
			}
			log := logger.With(scoped...)
			ctx := logging.WithLogger(r.Context(), log)

			if log.Enabled(ctx, slog.LevelDebug) {
				log.DebugContext(ctx, "request received",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					headerGroup(r.Header),
				)
			}

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			status := statusOf(ww)
			log.Log(ctx, accessLevel(status), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func accessLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// headerGroup renders h as a "headers" group in key order. Values of
// logging.SensitiveHeaders are masked.
func headerGroup(h http.Header) slog.Attr {
	attrs := make([]any, 0, len(h))
	for _, key := range slices.Sorted(maps.Keys(h)) {
		value := strings.Join(h[key], ",")
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			value = logging.Redacted
		}
		attrs = append(attrs, slog.String(key, value))
	}
	return slog.Group("headers", attrs...)
}
