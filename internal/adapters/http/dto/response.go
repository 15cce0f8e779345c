// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/todo-lists-service/internal/domain/todoitem"
	"github.com/jsamuelsen11/todo-lists-service/internal/domain/todolist"
)

// ListResponse represents a single todo list in HTTP responses.
type ListResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ToListResponse converts a domain TodoList to an HTTP response DTO.
func ToListResponse(l *todolist.TodoList) ListResponse {
	return ListResponse{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		CreatedAt:   formatTime(l.CreatedAt),
		UpdatedAt:   formatTime(l.UpdatedAt),
	}
}

// ToListResponses converts a page of lists. The result is never nil so it
// encodes as [] when empty.
func ToListResponses(lists []todolist.TodoList) []ListResponse {
	out := make([]ListResponse, len(lists))
	for i := range lists {
		out[i] = ToListResponse(&lists[i])
	}
	return out
}

// ItemResponse represents a single todo item in HTTP responses.
type ItemResponse struct {
	ID          int64   `json:"id"`
	TodoListID  int64   `json:"todo_list_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	StatusCode  string  `json:"status_code"`
	DueAt       *string `json:"due_at"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ToItemResponse converts a domain TodoItem to an HTTP response DTO.
func ToItemResponse(t *todoitem.TodoItem) ItemResponse {
	resp := ItemResponse{
		ID:          t.ID,
		TodoListID:  t.TodoListID,
		Title:       t.Title,
		Description: t.Description,
		StatusCode:  t.StatusCode.String(),
		CreatedAt:   formatTime(t.CreatedAt),
		UpdatedAt:   formatTime(t.UpdatedAt),
	}
	if t.DueAt != nil {
		due := formatTime(*t.DueAt)
		resp.DueAt = &due
	}
	return resp
}

// ToItemResponses converts a page of items; never nil.
func ToItemResponses(items []todoitem.TodoItem) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i := range items {
		out[i] = ToItemResponse(&items[i])
	}
	return out
}

// DeleteResponse is the empty object returned by successful deletes.
type DeleteResponse struct{}

// EchoResponse is the body of GET /echo.
type EchoResponse struct {
	Message string `json:"Message"`
}

// NewEchoResponse formats "<message> <name>!".
func NewEchoResponse(q *EchoQuery) EchoResponse {
	return EchoResponse{Message: fmt.Sprintf("%s %s!", q.Message, q.Name)}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
