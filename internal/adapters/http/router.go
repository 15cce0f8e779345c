// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jsamuelsen11/todo-lists-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-lists-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-lists-service/internal/platform/logging"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Trailing slashes are
// stripped before matching, so "/lists/" routes like "/lists".
func NewRouter(
	listHandler *handlers.ListHandler,
	itemHandler *handlers.ItemHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}
	r.Use(chimw.StripSlashes)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, http.StatusNotFound, fmt.Sprintf("no route for %s %s", req.Method, req.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, http.StatusMethodNotAllowed, fmt.Sprintf("method %s not allowed on %s", req.Method, req.URL.Path))
	})

	r.Get("/health", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)
	r.Get("/echo", handlers.Echo)

	r.Route("/lists", func(r chi.Router) {
		r.Get("/", listHandler.ListLists)
		r.Post("/", listHandler.CreateList)

		r.Route("/{"+handlers.ParamListID+"}", func(r chi.Router) {
			r.Use(logPathParam(handlers.ParamListID, "list_id"))

			r.Get("/", listHandler.GetList)
			r.Put("/", listHandler.UpdateList)
			r.Delete("/", listHandler.DeleteList)

			r.Get("/items", itemHandler.ListItems)
			r.Post("/items", itemHandler.CreateItem)
			item := r.With(logPathParam(handlers.ParamItemID, "item_id"))
			item.Get("/items/{"+handlers.ParamItemID+"}", itemHandler.GetItem)
			item.Put("/items/{"+handlers.ParamItemID+"}", itemHandler.UpdateItem)
			item.Delete("/items/{"+handlers.ParamItemID+"}", itemHandler.DeleteItem)
		})
	})

	return r
}

// logPathParam adds the raw value of a URL parameter to the request logger
// under key.
func logPathParam(param, key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := logging.With(req.Context(), slog.String(key, chi.URLParam(req, param)))
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}
