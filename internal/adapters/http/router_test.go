package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/todo-lists-service/internal/adapters/http"
	"github.com/jsamuelsen11/todo-lists-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-lists-service/internal/adapters/storage"
	"github.com/jsamuelsen11/todo-lists-service/internal/app"
	"github.com/jsamuelsen11/todo-lists-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-lists-service/internal/platform/health"
	"github.com/jsamuelsen11/todo-lists-service/mocks"
)

const testPerPage = 10

// newAppRouter wires the full stack over a fresh in-memory SQLite database.
func newAppRouter(t *testing.T) http.Handler {
	t.Helper()

	db, err := storage.Open(config.DatabaseConfig{
		Driver:        config.DriverSQLite,
		DSN:           ":memory:",
		MaxOpenConns:  1,
		AutoMigrate:   true,
		SlowThreshold: time.Second,
	}, discardLogger().Handler())
	if err != nil {
		t.Fatalf("storage.Open() error: %v", err)
	}
	t.Cleanup(func() { _ = storage.Close(db) })

	registry := health.New()
	registry.Register(storage.NewDBChecker(db))

	lists := app.NewListService(storage.NewListStore(db, nil), discardLogger())
	items := app.NewItemService(storage.NewItemStore(db, nil), discardLogger())

	return adapthttp.NewRouter(
		handlers.NewListHandler(lists, testPerPage),
		handlers.NewItemHandler(items, testPerPage),
		handlers.NewHealthHandler(registry),
	)
}

func serve(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decoding %q: %v", rec.Body.String(), err)
	}
	return v
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, want, rec.Body.String())
	}
}

type listBody struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type itemBody struct {
	ID          int64   `json:"id"`
	TodoListID  int64   `json:"todo_list_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	StatusCode  string  `json:"status_code"`
	DueAt       *string `json:"due_at"`
}

type problemBody struct {
	Status int    `json:"status"`
	Detail string `json:"detail"`
	Errors []struct {
		Location string `json:"location"`
	} `json:"errors"`
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(
		handlers.NewListHandler(mocks.NewMockListService(t), testPerPage),
		handlers.NewItemHandler(mocks.NewMockItemService(t), testPerPage),
		handlers.NewHealthHandler(registry),
		testMW,
	)

	rec := serve(t, router, http.MethodGet, "/health/ready", "")

	expectStatus(t, rec, http.StatusOK)
	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_GroceriesScenario(t *testing.T) {
	t.Parallel()

	router := newAppRouter(t)

	rec := serve(t, router, http.MethodPost, "/lists", `{"title":"Groceries"}`)
	expectStatus(t, rec, http.StatusOK)
	list := decodeBody[listBody](t, rec)
	if list.ID == 0 || list.Title != "Groceries" || list.Description != nil {
		t.Fatalf("created list = %+v, want Groceries with id and null description", list)
	}
	listPath := "/lists/" + itoa(list.ID)

	rec = serve(t, router, http.MethodPost, listPath+"/items", `{"title":"Milk","due_at":"2025-03-01T10:00:00+01:00"}`)
	expectStatus(t, rec, http.StatusOK)
	item := decodeBody[itemBody](t, rec)
	if item.TodoListID != list.ID || item.StatusCode != "NOT_COMPLETED" {
		t.Fatalf("created item = %+v, want NOT_COMPLETED under list %d", item, list.ID)
	}
	if item.DueAt == nil || *item.DueAt != "2025-03-01T09:00:00Z" {
		t.Errorf("due_at = %v, want 2025-03-01T09:00:00Z", item.DueAt)
	}
	itemPath := listPath + "/items/" + itoa(item.ID)

	rec = serve(t, router, http.MethodPut, itemPath, `{"complete":true}`)
	expectStatus(t, rec, http.StatusOK)
	if got := decodeBody[itemBody](t, rec); got.StatusCode != "COMPLETED" || got.Title != "Milk" {
		t.Errorf("completed item = %+v, want COMPLETED Milk", got)
	}

	rec = serve(t, router, http.MethodPut, itemPath, `{"due_at":"2025-03-02T08:30:00"}`)
	expectStatus(t, rec, http.StatusOK)
	if got := decodeBody[itemBody](t, rec); got.DueAt == nil || *got.DueAt != "2025-03-02T08:30:00Z" {
		t.Errorf("due_at without offset = %v, want 2025-03-02T08:30:00Z", got.DueAt)
	}

	rec = serve(t, router, http.MethodGet, listPath+"/items", "")
	expectStatus(t, rec, http.StatusOK)
	if got := decodeBody[[]itemBody](t, rec); len(got) != 1 || got[0].ID != item.ID {
		t.Errorf("items = %+v, want only item %d", got, item.ID)
	}

	rec = serve(t, router, http.MethodDelete, listPath, "")
	expectStatus(t, rec, http.StatusOK)
	if body := strings.TrimSpace(rec.Body.String()); body != "{}" {
		t.Errorf("delete body = %q, want {}", body)
	}

	rec = serve(t, router, http.MethodGet, listPath, "")
	expectStatus(t, rec, http.StatusNotFound)
	if got := decodeBody[problemBody](t, rec); got.Detail != "todo list not found" {
		t.Errorf("detail = %q, want %q", got.Detail, "todo list not found")
	}

	rec = serve(t, router, http.MethodGet, itemPath, "")
	expectStatus(t, rec, http.StatusNotFound)

	rec = serve(t, router, http.MethodGet, listPath+"/items", "")
	expectStatus(t, rec, http.StatusOK)
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("items after delete = %q, want []", body)
	}
}

func TestRouter_ListPagination(t *testing.T) {
	t.Parallel()

	router := newAppRouter(t)
	for _, title := range []string{"a", "b", "c", "d", "e"} {
		expectStatus(t, serve(t, router, http.MethodPost, "/lists", `{"title":"`+title+`"}`), http.StatusOK)
	}

	tests := []struct {
		query  string
		titles []string
	}{
		{"?page=1&per_page=2", []string{"a", "b"}},
		{"?page=3&per_page=2", []string{"e"}},
		{"?page=4&per_page=2", []string{}},
		{"", []string{"a", "b", "c", "d", "e"}},
	}

	for _, tt := range tests {
		rec := serve(t, router, http.MethodGet, "/lists"+tt.query, "")
		expectStatus(t, rec, http.StatusOK)

		got := decodeBody[[]listBody](t, rec)
		titles := make([]string, 0, len(got))
		for _, l := range got {
			titles = append(titles, l.Title)
		}
		if strings.Join(titles, ",") != strings.Join(tt.titles, ",") {
			t.Errorf("GET /lists%s titles = %v, want %v", tt.query, titles, tt.titles)
		}
	}

	rec := serve(t, router, http.MethodGet, "/lists?page=0", "")
	expectStatus(t, rec, http.StatusUnprocessableEntity)

	// (page-1)*per_page would wrap around to offset 0.
	rec = serve(t, router, http.MethodGet, "/lists?page=4611686018427387905&per_page=4", "")
	expectStatus(t, rec, http.StatusUnprocessableEntity)
	if got := decodeBody[problemBody](t, rec); len(got.Errors) != 1 || got.Errors[0].Location != "page" {
		t.Errorf("errors = %+v, want a single page error", got.Errors)
	}
}

func TestRouter_TrailingSlashTolerated(t *testing.T) {
	t.Parallel()

	router := newAppRouter(t)

	rec := serve(t, router, http.MethodPost, "/lists/", `{"title":"Chores"}`)
	expectStatus(t, rec, http.StatusOK)
	list := decodeBody[listBody](t, rec)

	expectStatus(t, serve(t, router, http.MethodGet, "/lists/", ""), http.StatusOK)
	expectStatus(t, serve(t, router, http.MethodGet, "/lists/"+itoa(list.ID)+"/", ""), http.StatusOK)
	expectStatus(t, serve(t, router, http.MethodGet, "/lists/"+itoa(list.ID)+"/items/", ""), http.StatusOK)
	expectStatus(t, serve(t, router, http.MethodGet, "/health/", ""), http.StatusOK)
}

func TestRouter_ValidationFailures(t *testing.T) {
	t.Parallel()

	router := newAppRouter(t)

	tests := []struct {
		name         string
		method       string
		path         string
		body         string
		wantLocation string
	}{
		{"non-integer list id", http.MethodGet, "/lists/abc", "", "id"},
		{"non-integer item id", http.MethodGet, "/lists/1/items/xyz", "", "itemId"},
		{"malformed json", http.MethodPost, "/lists", `{"title":`, "body"},
		{"missing title", http.MethodPost, "/lists", `{}`, "title"},
		{"title too long", http.MethodPost, "/lists", `{"title":"` + strings.Repeat("x", 101) + `"}`, "title"},
		{"bad per_page", http.MethodGet, "/lists/1/items?per_page=0", "", "per_page"},
		{"unparseable due_at", http.MethodPost, "/lists/1/items", `{"title":"Milk","due_at":"next tuesday"}`, "due_at"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, router, tt.method, tt.path, tt.body)
			expectStatus(t, rec, http.StatusUnprocessableEntity)

			got := decodeBody[problemBody](t, rec)
			found := false
			for _, e := range got.Errors {
				if e.Location == tt.wantLocation {
					found = true
				}
			}
			if !found {
				t.Errorf("errors = %+v, want location %q", got.Errors, tt.wantLocation)
			}
		})
	}
}

func TestRouter_CreateItemUnderUnknownList(t *testing.T) {
	t.Parallel()

	router := newAppRouter(t)

	rec := serve(t, router, http.MethodPost, "/lists/999/items", `{"title":"Orphan"}`)

	expectStatus(t, rec, http.StatusInternalServerError)
	if got := decodeBody[problemBody](t, rec); got.Detail != "internal server error" {
		t.Errorf("detail = %q, want generic detail", got.Detail)
	}
}

func TestRouter_ItemsOfUnknownListIsEmpty(t *testing.T) {
	t.Parallel()

	router := newAppRouter(t)

	rec := serve(t, router, http.MethodGet, "/lists/999/items", "")

	expectStatus(t, rec, http.StatusOK)
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("body = %q, want []", body)
	}
}

func TestRouter_HealthAndEcho(t *testing.T) {
	t.Parallel()

	router := newAppRouter(t)

	rec := serve(t, router, http.MethodGet, "/health", "")
	expectStatus(t, rec, http.StatusOK)

	rec = serve(t, router, http.MethodGet, "/health/ready", "")
	expectStatus(t, rec, http.StatusOK)
	ready := decodeBody[map[string]any](t, rec)
	if checks, _ := ready["checks"].(map[string]any); checks["database"] != "ok" {
		t.Errorf("readiness checks = %v, want database ok", ready["checks"])
	}

	rec = serve(t, router, http.MethodGet, "/echo?message=Hello&name=World", "")
	expectStatus(t, rec, http.StatusOK)
	if got := decodeBody[map[string]string](t, rec); got["Message"] != "Hello World!" {
		t.Errorf("echo = %v, want Hello World!", got)
	}

	rec = serve(t, router, http.MethodGet, "/echo?message=&name=x", "")
	expectStatus(t, rec, http.StatusOK)
	if got := decodeBody[map[string]string](t, rec); got["Message"] != " x!" {
		t.Errorf("echo = %v, want \" x!\"", got)
	}

	expectStatus(t, serve(t, router, http.MethodGet, "/echo?message=Hello", ""), http.StatusUnprocessableEntity)
}

func TestRouter_UnknownRouteReturnsProblem(t *testing.T) {
	t.Parallel()

	router := newAppRouter(t)

	rec := serve(t, router, http.MethodGet, "/nonexistent", "")

	expectStatus(t, rec, http.StatusNotFound)
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router := newAppRouter(t)

	rec := serve(t, router, http.MethodPatch, "/lists", "")

	expectStatus(t, rec, http.StatusMethodNotAllowed)
}
