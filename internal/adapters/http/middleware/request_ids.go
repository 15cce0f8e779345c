package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Headers carrying the request identifiers in both directions.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

const maxIDLength = 128

type requestIDsKey struct{}

// RequestIDs identifies one request (RequestID) and the wider operation it
// belongs to (CorrelationID).
type RequestIDs struct {
	RequestID     string
	CorrelationID string
}

// IDsFromContext returns the identifiers stored by AssignIDs, or the zero
// value.
func IDsFromContext(ctx context.Context) RequestIDs {
	ids, _ := ctx.Value(requestIDsKey{}).(RequestIDs)
	return ids
}

// AssignIDs stores the request identifiers in the context and echoes them as
// response headers. A client X-Request-ID is kept when it is usable and
// replaced by a UUID otherwise. X-Correlation-ID falls back to the request ID.
func AssignIDs(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids := RequestIDs{
			RequestID:     r.Header.Get(HeaderRequestID),
			CorrelationID: r.Header.Get(HeaderCorrelationID),
		}
		if !usableID(ids.RequestID) {
			ids.RequestID = uuid.NewString()
		}
		if !usableID(ids.CorrelationID) {
			ids.CorrelationID = ids.RequestID
		}

		w.Header().Set(HeaderRequestID, ids.RequestID)
		w.Header().Set(HeaderCorrelationID, ids.CorrelationID)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDsKey{}, ids)))
	})
}

// usableID accepts 1 to maxIDLength printable ASCII characters without
// spaces, so the value is safe to echo in a header and a log line.
func usableID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	for i := range len(id) {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}
