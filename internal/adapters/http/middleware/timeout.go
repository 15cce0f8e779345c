package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"runtime/debug"
	"slices"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-lists-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-lists-service/internal/platform/logging"
)

// Timeout returns middleware that bounds each request to d. The handler runs
// on its own goroutine with a deadline context and a buffered writer; when
// the deadline passes first, the client gets a problem+json 504 and later
// handler writes fail with http.ErrHandlerTimeout.
//
// A handler panic is re-raised on the serving goroutine so Recovery sees it.
// A non-positive d disables the middleware.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			// The handler routes on a copy of the chi context, so the
			// timeout path never reads route state it is still writing.
			rctx := chi.RouteContext(ctx)
			var routed *chi.Context
			if rctx != nil {
				routed = cloneRouteContext(rctx)
				ctx = context.WithValue(ctx, chi.RouteCtxKey, routed)
			}

			tw := &timeoutWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					v := recover()
					if v == nil {
						return
					}
					if v != http.ErrAbortHandler {
						v = &handlerPanic{value: v, stack: debug.Stack()}
					}
					if tw.expired() {
						if hp, ok := v.(*handlerPanic); ok {
							logging.FromContext(ctx).ErrorContext(ctx, "panic after request deadline",
								slog.String("panic", fmt.Sprint(hp.value)),
								slog.String("stack", string(hp.stack)),
							)
						}
						return
					}
					panicked <- v
				}()
				next.ServeHTTP(tw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case v := <-panicked:
				restoreRoute(rctx, routed)
				panic(v)
			case <-done:
				restoreRoute(rctx, routed)
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.flushTo(w)
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.timedOut = true
				logging.FromContext(ctx).WarnContext(ctx, "request deadline exceeded",
					slog.Duration("timeout", d),
					slog.Any("error", ctx.Err()),
					slog.String("path", r.URL.Path),
				)
				dto.WriteProblem(w, r, http.StatusGatewayTimeout, "request timed out")
			}
		})
	}
}

// cloneRouteContext copies rctx with its own exported slices.
func cloneRouteContext(rctx *chi.Context) *chi.Context {
	c := *rctx
	c.URLParams.Keys = slices.Clone(rctx.URLParams.Keys)
	c.URLParams.Values = slices.Clone(rctx.URLParams.Values)
	c.RoutePatterns = slices.Clone(rctx.RoutePatterns)
	return &c
}

// restoreRoute publishes the routing result of a finished handler to the
// outer middleware.
func restoreRoute(rctx, routed *chi.Context) {
	if rctx != nil {
		*rctx = *routed
	}
}

// timeoutWriter buffers the handler response until the serving goroutine
// decides between copying it out and answering 504. mu guards every field.
type timeoutWriter struct {
	mu          sync.Mutex
	header      http.Header
	buf         []byte
	status      int
	wroteHeader bool
	timedOut    bool
}

func (tw *timeoutWriter) expired() bool {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return tw.timedOut
}

func (tw *timeoutWriter) Header() http.Header {
	return tw.header
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if !tw.wroteHeader {
		tw.status, tw.wroteHeader = http.StatusOK, true
	}
	tw.buf = append(tw.buf, b...)
	return len(b), nil
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut || tw.wroteHeader {
		return
	}
	tw.status, tw.wroteHeader = code, true
}

// flushTo copies the buffered response to w. tw.mu must be held.
func (tw *timeoutWriter) flushTo(w http.ResponseWriter) {
	maps.Copy(w.Header(), tw.header)
	if tw.wroteHeader {
		w.WriteHeader(tw.status)
	}
	if len(tw.buf) > 0 {
		_, _ = w.Write(tw.buf)
	}
}
