package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/todo-lists-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-lists-service/internal/platform/logging"
)

// handlerPanic carries a panic raised on another goroutine, together with
// the stack captured where it happened.
type handlerPanic struct {
	value any
	stack []byte
}

// Recovery returns middleware that turns a handler panic into a
// problem+json 500. The panic value and stack go to the request-scoped
// logger and the active span; the client only sees a generic detail. When
// the handler already sent headers, the response is left as is.
//
// http.ErrAbortHandler is re-raised so net/http aborts the connection.
func Recovery() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				value, stack := v, debug.Stack()
				if hp, ok := v.(*handlerPanic); ok {
					value, stack = hp.value, hp.stack
				}

				ctx := r.Context()
				trace.SpanFromContext(ctx).RecordError(fmt.Errorf("panic: %v", value))
				logging.FromContext(ctx).ErrorContext(ctx, "panic recovered",
					slog.String("panic", fmt.Sprint(value)),
					slog.String("stack", string(stack)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if ww.Status() == 0 {
					dto.WriteProblem(ww, r, http.StatusInternalServerError, "internal server error")
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
