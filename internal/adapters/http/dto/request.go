package dto

import (
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/jsamuelsen11/todo-lists-service/internal/domain"
	"github.com/jsamuelsen11/todo-lists-service/internal/domain/todoitem"
	"github.com/jsamuelsen11/todo-lists-service/internal/domain/todolist"
)

// CreateListRequest is the JSON body of POST /lists.
type CreateListRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,min=1,max=200"`
}

// Validate checks field presence and lengths.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateListRequest) Validate() error {
	return validateStruct(r)
}

// ToDomain maps the request to a new TodoList.
func (r *CreateListRequest) ToDomain() *todolist.TodoList {
	return &todolist.TodoList{
		Title:       r.Title,
		Description: r.Description,
	}
}

// UpdateListRequest is the JSON body of PUT /lists/{id}.
// All fields are optional; nil means "do not change this field".
type UpdateListRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,min=1,max=200"`
}

// Validate checks the lengths of supplied fields.
func (r *UpdateListRequest) Validate() error {
	return validateStruct(r)
}

// ToPatch maps the request to a list patch.
func (r *UpdateListRequest) ToPatch() todolist.Patch {
	return todolist.Patch{
		Title:       r.Title,
		Description: r.Description,
	}
}

// CreateItemRequest is the JSON body of POST /lists/{id}/items.
type CreateItemRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=100"`
	Description *string  `json:"description" validate:"omitempty,min=1,max=200"`
	DueAt       *DueTime `json:"due_at"`
}

// Validate checks field presence and lengths.
func (r *CreateItemRequest) Validate() error {
	return validateStruct(r)
}

// ToDomain maps the request to a new TodoItem. The owning list and the
// status are assigned by the item service.
func (r *CreateItemRequest) ToDomain() *todoitem.TodoItem {
	return &todoitem.TodoItem{
		Title:       r.Title,
		Description: r.Description,
		DueAt:       r.DueAt.timePtr(),
	}
}

// UpdateItemRequest is the JSON body of PUT /lists/{id}/items/{itemId}.
// Complete, when present, sets the status to COMPLETED or NOT_COMPLETED.
type UpdateItemRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1,max=100"`
	Description *string  `json:"description" validate:"omitempty,min=1,max=200"`
	DueAt       *DueTime `json:"due_at"`
	Complete    *bool    `json:"complete"`
}

// Validate checks the lengths of supplied fields.
func (r *UpdateItemRequest) Validate() error {
	return validateStruct(r)
}

// ToPatch maps the request to an item patch.
func (r *UpdateItemRequest) ToPatch() todoitem.Patch {
	return todoitem.Patch{
		Title:       r.Title,
		Description: r.Description,
		DueAt:       r.DueAt.timePtr(),
		Complete:    r.Complete,
	}
}

// DueTime is the due_at value of item requests. It accepts RFC 3339 and
// ISO 8601 date-times; a value without a zone offset is read as UTC.
type DueTime struct {
	time.Time
}

var dueTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// UnmarshalJSON parses a JSON string. A date and time may be separated by
// a space instead of "T".
func (d *DueTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		s = strings.Replace(s, " ", "T", 1)
		for _, layout := range dueTimeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				d.Time = t
				return nil
			}
		}
	}
	return &domain.ValidationError{
		Fields: map[string]string{"due_at": "must be an ISO 8601 date-time"},
	}
}

func (d *DueTime) timePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

// PageQuery holds the page and per_page query parameters.
type PageQuery struct {
	Page    int `json:"page" validate:"gte=1"`
	PerPage int `json:"per_page" validate:"gte=1"`
}

// Validate checks that both values are at least 1.
func (q *PageQuery) Validate() error {
	return validateStruct(q)
}

// ToDomain maps the query to a domain page window.
func (q *PageQuery) ToDomain() domain.Page {
	return domain.Page{Number: q.Page, Size: q.PerPage}
}

// EchoQuery holds the query parameters of GET /echo.
type EchoQuery struct {
	Message string
	Name    string
}

// ParseEchoQuery reads message and name from values. Both keys must be
// present; an empty value is accepted.
func ParseEchoQuery(values url.Values) (EchoQuery, error) {
	fields := make(map[string]string)
	for _, key := range []string{"message", "name"} {
		if !values.Has(key) {
			fields[key] = domain.MsgRequired
		}
	}
	if len(fields) > 0 {
		return EchoQuery{}, &domain.ValidationError{Fields: fields}
	}
	return EchoQuery{Message: values.Get("message"), Name: values.Get("name")}, nil
}
