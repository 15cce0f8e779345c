package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jsamuelsen11/todo-lists-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-lists-service/internal/domain/todoitem"
	"github.com/jsamuelsen11/todo-lists-service/internal/domain/todolist"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 123456000, time.UTC)

func TestToListResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToListResponse(&todolist.TodoList{
		ID:        1,
		Title:     "Groceries",
		CreatedAt: testTime,
		UpdatedAt: testTime,
	})

	if got.ID != 1 || got.Title != "Groceries" {
		t.Errorf("ID/Title = %d/%q, want 1/%q", got.ID, got.Title, "Groceries")
	}
	if got.CreatedAt != "2026-02-12T15:04:05.123456Z" {
		t.Errorf("CreatedAt = %q, want RFC 3339 with fractional seconds", got.CreatedAt)
	}
}

func TestToListResponse_NullDescription(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(dto.ToListResponse(&todolist.TodoList{ID: 1, Title: "Groceries"}))
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	v, ok := raw["description"]
	if !ok {
		t.Fatal("description key missing, want explicit null")
	}
	if v != nil {
		t.Errorf("description = %v, want null", v)
	}
}

func TestToItemResponse(t *testing.T) {
	t.Parallel()

	due := time.Date(2026, 3, 1, 10, 0, 0, 0, time.FixedZone("JST", 9*3600))
	got := dto.ToItemResponse(&todoitem.TodoItem{
		ID:         3,
		TodoListID: 1,
		Title:      "Milk",
		StatusCode: todoitem.StatusCompleted,
		DueAt:      &due,
		CreatedAt:  testTime,
		UpdatedAt:  testTime,
	})

	if got.StatusCode != "COMPLETED" {
		t.Errorf("StatusCode = %q, want %q", got.StatusCode, "COMPLETED")
	}
	if got.TodoListID != 1 {
		t.Errorf("TodoListID = %d, want 1", got.TodoListID)
	}
	if got.DueAt == nil || *got.DueAt != "2026-03-01T01:00:00Z" {
		t.Errorf("DueAt = %v, want UTC timestamp", got.DueAt)
	}
	if got.Description != nil {
		t.Errorf("Description = %v, want nil", got.Description)
	}
}

func TestToResponses_EmptyEncodesAsArray(t *testing.T) {
	t.Parallel()

	lists, err := json.Marshal(dto.ToListResponses(nil))
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(lists) != "[]" {
		t.Errorf("lists = %s, want []", lists)
	}

	items, err := json.Marshal(dto.ToItemResponses(nil))
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(items) != "[]" {
		t.Errorf("items = %s, want []", items)
	}
}

func TestDeleteResponse_EncodesAsEmptyObject(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(dto.DeleteResponse{})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("DeleteResponse = %s, want {}", data)
	}
}
