package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-lists-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-lists-service/internal/domain"
	"github.com/jsamuelsen11/todo-lists-service/internal/platform/logging"
)

// Path parameter names shared with the router.
const (
	ParamListID = "id"
	ParamItemID = "itemId"
)

// parseID extracts an int64 path parameter from the chi URL params.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &domain.ValidationError{
			Fields: map[string]string{param: "must be a valid integer"},
		}
	}
	return id, nil
}

// parseListAndItemIDs extracts both ids of a nested item route, reporting
// every malformed one.
func parseListAndItemIDs(r *http.Request) (listID, itemID int64, err error) {
	fields := make(map[string]string)

	listID, err = parseID(r, ParamListID)
	if err != nil {
		fields[ParamListID] = "must be a valid integer"
	}
	itemID, err = parseID(r, ParamItemID)
	if err != nil {
		fields[ParamItemID] = "must be a valid integer"
	}

	if len(fields) > 0 {
		return 0, 0, &domain.ValidationError{Fields: fields}
	}
	return listID, itemID, nil
}

// parsePage reads the page and per_page query parameters, falling back to
// page 1 and defaultPerPage when absent.
func parsePage(r *http.Request, defaultPerPage int) (domain.Page, error) {
	q := dto.PageQuery{Page: domain.DefaultPage, PerPage: defaultPerPage}
	fields := make(map[string]string)

	parseIntQuery(r, "page", &q.Page, fields)
	parseIntQuery(r, "per_page", &q.PerPage, fields)
	if len(fields) > 0 {
		return domain.Page{}, &domain.ValidationError{Fields: fields}
	}

	if err := q.Validate(); err != nil {
		return domain.Page{}, err
	}
	return q.ToDomain(), nil
}

func parseIntQuery(r *http.Request, name string, dst *int, fields map[string]string) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		fields[name] = "must be a valid integer"
		return
	}
	*dst = v
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err),
		)
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 422 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			ve = &domain.ValidationError{Fields: map[string]string{"body": "invalid JSON"}}
		}
		dto.WriteErrorResponse(w, r, ve)
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
