// Package middleware holds the inbound request pipeline of the todo lists API.
//
// Stack returns the pipeline in the order the router installs it:
//
//	AssignIDs → OpenTelemetry → Logging → Recovery → Timeout → routes
//
// Logging and OpenTelemetry sit outside Recovery so a recovered panic is
// recorded as the 500 it becomes.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jsamuelsen11/todo-lists-service/internal/platform/telemetry"
)

// Options configures Stack.
type Options struct {
	Logger *slog.Logger
	// Metrics may be nil, in which case only spans are recorded.
	Metrics *telemetry.Metrics
	// RequestTimeout bounds each handler. Zero disables the deadline.
	RequestTimeout time.Duration
}

// Stack returns the request pipeline, outermost first.
func Stack(opts Options) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		AssignIDs,
		OpenTelemetry(opts.Metrics),
		Logging(opts.Logger),
		Recovery(),
		Timeout(opts.RequestTimeout),
	}
}

// statusOf reports the status sent through ww. A handler that wrote nothing
// still produces an implicit 200.
func statusOf(ww chimw.WrapResponseWriter) int {
	if s := ww.Status(); s != 0 {
		return s
	}
	return http.StatusOK
}

// routePattern returns the chi route pattern matched for r, or "" when the
// request was not routed by chi.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return ""
	}
	return rctx.RoutePattern()
}
