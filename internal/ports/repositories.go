package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-lists-service/internal/domain"
	"github.com/jsamuelsen11/todo-lists-service/internal/domain/todoitem"
	"github.com/jsamuelsen11/todo-lists-service/internal/domain/todolist"
)

// ListRepository defines the storage port for todo lists.
// Implemented by the storage adapter; called by the application layer.
// Every method runs in its own transaction, which is committed before the
// method returns and rolled back on any error.
type ListRepository interface {
	// List returns the lists in the page window, ordered by ascending id.
	List(ctx context.Context, page domain.Page) ([]todolist.TodoList, error)

	// Get returns a single list by ID.
	// Returns domain.ErrNotFound if the list does not exist.
	Get(ctx context.Context, id int64) (*todolist.TodoList, error)

	// Create persists a new list and returns it re-read from storage with
	// its generated ID and timestamps.
	Create(ctx context.Context, list *todolist.TodoList) (*todolist.TodoList, error)

	// Update applies the patch and returns the re-read list. An empty patch
	// writes nothing.
	// Returns domain.ErrNotFound if the list does not exist.
	Update(ctx context.Context, id int64, patch todolist.Patch) (*todolist.TodoList, error)

	// Delete removes the list and every item that belongs to it.
	// Returns domain.ErrNotFound if the list does not exist.
	Delete(ctx context.Context, id int64) error
}

// ItemRepository defines the storage port for todo items. All lookups filter
// on the owning list ID and the item ID together.
type ItemRepository interface {
	// List returns the items of a list in the page window, ordered by
	// ascending id. An unknown list yields an empty slice.
	List(ctx context.Context, listID int64, page domain.Page) ([]todoitem.TodoItem, error)

	// Get returns a single item of a list.
	// Returns domain.ErrNotFound if no item matches both IDs.
	Get(ctx context.Context, listID, itemID int64) (*todoitem.TodoItem, error)

	// Create persists a new item and returns it re-read from storage. The
	// item's TodoListID must reference an existing list; the store's foreign
	// key rejects it otherwise.
	Create(ctx context.Context, item *todoitem.TodoItem) (*todoitem.TodoItem, error)

	// Update applies the patch and returns the re-read item. An empty patch
	// writes nothing.
	// Returns domain.ErrNotFound if no item matches both IDs.
	Update(ctx context.Context, listID, itemID int64, patch todoitem.Patch) (*todoitem.TodoItem, error)

	// Delete removes a single item.
	// Returns domain.ErrNotFound if no item matches both IDs.
	Delete(ctx context.Context, listID, itemID int64) error
}
