package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-lists-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-lists-service/internal/domain/todoitem"
	"github.com/jsamuelsen11/todo-lists-service/internal/domain/todolist"
)

const testDefaultPerPage = 10

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validList() todolist.TodoList {
	return todolist.TodoList{
		ID:        1,
		Title:     "Groceries",
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func validItem() todoitem.TodoItem {
	return todoitem.TodoItem{
		ID:         1,
		TodoListID: 1,
		Title:      "Milk",
		StatusCode: todoitem.StatusNotCompleted,
		CreatedAt:  testTime,
		UpdatedAt:  testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

// requireProblemField asserts a 422 problem response naming field.
func requireProblemField(t *testing.T, rec *httptest.ResponseRecorder, field string) {
	t.Helper()
	requireStatus(t, rec, http.StatusUnprocessableEntity)

	resp := decodeJSON[dto.ErrorResponse](t, rec)
	for _, e := range resp.Errors {
		if e.Location == field {
			return
		}
	}
	t.Errorf("problem errors = %+v, want entry for %q", resp.Errors, field)
}

func stringPtr(s string) *string { return &s }
