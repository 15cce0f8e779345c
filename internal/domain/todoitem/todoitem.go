// Package todoitem holds the TodoItem entity. Every item belongs to exactly
// one todo list and is only addressable together with that list's id.
package todoitem

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/todo-lists-service/internal/domain"
)

// TodoItem is a task owned by a single todo list.
type TodoItem struct {
	ID          int64
	TodoListID  int64
	Title       string
	Description *string
	StatusCode  StatusCode
	DueAt       *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks business rules for the TodoItem entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *TodoItem) Validate() error {
	fields := make(map[string]string)

	domain.CheckTitle(fields, t.Title)
	domain.CheckDescription(fields, t.Description)
	if !t.StatusCode.IsValid() {
		fields["status_code"] = fmt.Sprintf("invalid: %q", t.StatusCode)
	}
	if t.TodoListID <= 0 {
		fields["todo_list_id"] = domain.MsgPositive
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Patch is a partial update. Nil fields are left unchanged; a non-nil
// Complete flips the status code.
type Patch struct {
	Title       *string
	Description *string
	DueAt       *time.Time
	Complete    *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p *Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.DueAt == nil && p.Complete == nil
}

// Validate checks the supplied fields against the same rules as TodoItem.
func (p *Patch) Validate() error {
	fields := make(map[string]string)

	if p.Title != nil {
		domain.CheckTitle(fields, *p.Title)
	}
	domain.CheckDescription(fields, p.Description)

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Apply overwrites the fields of t that are set in the patch.
func (p *Patch) Apply(t *TodoItem) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		d := *p.Description
		t.Description = &d
	}
	if p.DueAt != nil {
		due := *p.DueAt
		t.DueAt = &due
	}
	if p.Complete != nil {
		t.StatusCode = StatusFromComplete(*p.Complete)
	}
}
