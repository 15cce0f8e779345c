// Package todolist holds the TodoList entity: a titled container that owns
// todo items.
package todolist

import (
	"time"

	"github.com/jsamuelsen11/todo-lists-service/internal/domain"
)

// TodoList is a top-level container of todo items.
type TodoList struct {
	ID          int64
	Title       string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks business rules for the TodoList entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (l *TodoList) Validate() error {
	fields := make(map[string]string)

	domain.CheckTitle(fields, l.Title)
	domain.CheckDescription(fields, l.Description)

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Patch is a partial update. Nil fields are left unchanged.
type Patch struct {
	Title       *string
	Description *string
}

// IsEmpty reports whether the patch changes nothing.
func (p *Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil
}

// Validate checks the supplied fields against the same rules as TodoList.
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

// Apply overwrites the fields of l that are set in the patch.
func (p *Patch) Apply(l *TodoList) {
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Description != nil {
		d := *p.Description
		l.Description = &d
	}
}
