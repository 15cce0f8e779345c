package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-lists-service/internal/domain"
	"github.com/jsamuelsen11/todo-lists-service/internal/domain/todoitem"
	"github.com/jsamuelsen11/todo-lists-service/internal/domain/todolist"
)

// ListService defines the service port for todo list operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type ListService interface {
	// ListLists returns one page of lists ordered by ascending ID.
	// Returns domain.ErrValidation if the page window is invalid.
	ListLists(ctx context.Context, page domain.Page) ([]todolist.TodoList, error)

	// GetList returns a single list by ID.
	// Returns domain.ErrNotFound if the list does not exist.
	GetList(ctx context.Context, id int64) (*todolist.TodoList, error)

	// CreateList creates a new list and returns the created entity
	// with server-assigned fields (ID, timestamps).
	// Returns domain.ErrValidation if the list fails validation.
	CreateList(ctx context.Context, list *todolist.TodoList) (*todolist.TodoList, error)

	// UpdateList applies a partial update and returns the updated entity.
	// Returns domain.ErrNotFound if the list does not exist.
	UpdateList(ctx context.Context, id int64, patch todolist.Patch) (*todolist.TodoList, error)

	// DeleteList deletes a list together with all of its items.
	// Returns domain.ErrNotFound if the list does not exist.
	DeleteList(ctx context.Context, id int64) error
}

// ItemService defines the service port for todo item operations. Items are
// always addressed through their owning list.
type ItemService interface {
	// ListItems returns one page of a list's items ordered by ascending ID.
	// The list itself is not checked; an unknown list yields no items.
	ListItems(ctx context.Context, listID int64, page domain.Page) ([]todoitem.TodoItem, error)

	// GetItem returns a single item of a list.
	// Returns domain.ErrNotFound if the item does not exist in that list.
	GetItem(ctx context.Context, listID, itemID int64) (*todoitem.TodoItem, error)

	// CreateItem creates a new item in the list with status NOT_COMPLETED.
	// Returns domain.ErrValidation if the item fails validation.
	CreateItem(ctx context.Context, listID int64, item *todoitem.TodoItem) (*todoitem.TodoItem, error)

	// UpdateItem applies a partial update to an item of a list.
	// Returns domain.ErrNotFound if the item does not exist in that list.
	UpdateItem(ctx context.Context, listID, itemID int64, patch todoitem.Patch) (*todoitem.TodoItem, error)

	// DeleteItem deletes an item of a list.
	// Returns domain.ErrNotFound if the item does not exist in that list.
	DeleteItem(ctx context.Context, listID, itemID int64) error
}
