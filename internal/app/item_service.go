package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/todo-lists-service/internal/domain"
	"github.com/jsamuelsen11/todo-lists-service/internal/domain/todoitem"
	"github.com/jsamuelsen11/todo-lists-service/internal/ports"
)

// Compile-time check that ItemService implements ports.ItemService.
var _ ports.ItemService = (*ItemService)(nil)

// ItemService implements ports.ItemService on top of an ItemRepository.
// Every operation is scoped to a parent list ID. The parent is never
// pre-checked: listing under an unknown list returns no items, and creating
// under one fails at the storage foreign key.
type ItemService struct {
	items  ports.ItemRepository
	logger *slog.Logger
}

// NewItemService creates an ItemService. A nil logger discards output.
func NewItemService(items ports.ItemRepository, logger *slog.Logger) *ItemService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ItemService{
		items:  items,
		logger: logger,
	}
}

// ListItems returns one page of a list's items ordered by ascending ID.
func (s *ItemService) ListItems(ctx context.Context, listID int64, page domain.Page) ([]todoitem.TodoItem, error) {
	s.logger.DebugContext(ctx, "listing todo items",
		slog.Int64("list_id", listID),
		slog.Int("page", page.Number),
		slog.Int("per_page", page.Size),
	)

	if err := page.Validate(); err != nil {
		return nil, err
	}

	items, err := s.items.List(ctx, listID, page)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list todo items",
			slog.String("operation", "ListItems"),
			slog.Int64("list_id", listID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return items, nil
}

// GetItem returns a single item of a list.
func (s *ItemService) GetItem(ctx context.Context, listID, itemID int64) (*todoitem.TodoItem, error) {
	s.logger.DebugContext(ctx, "fetching todo item",
		slog.Int64("list_id", listID),
		slog.Int64("item_id", itemID),
	)

	item, err := s.items.Get(ctx, listID, itemID)
	if err != nil {
		s.logFailure(ctx, "GetItem", listID, itemID, err)
		return nil, err
	}

	return item, nil
}

// CreateItem creates a new item in the given list. The owning list and the
// initial status are always set here, whatever the caller supplied.
func (s *ItemService) CreateItem(ctx context.Context, listID int64, item *todoitem.TodoItem) (*todoitem.TodoItem, error) {
	s.logger.InfoContext(ctx, "creating todo item",
		slog.Int64("list_id", listID),
		slog.String("title", item.Title),
	)

	item.TodoListID = listID
	item.StatusCode = todoitem.StatusNotCompleted

	if err := item.Validate(); err != nil {
		return nil, err
	}

	created, err := s.items.Create(ctx, item)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create todo item",
			slog.String("operation", "CreateItem"),
			slog.Int64("list_id", listID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// UpdateItem applies a partial update to an item of a list.
func (s *ItemService) UpdateItem(ctx context.Context, listID, itemID int64, patch todoitem.Patch) (*todoitem.TodoItem, error) {
	s.logger.InfoContext(ctx, "updating todo item",
		slog.Int64("list_id", listID),
		slog.Int64("item_id", itemID),
		slog.Bool("empty_patch", patch.IsEmpty()),
	)

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.items.Update(ctx, listID, itemID, patch)
	if err != nil {
		s.logFailure(ctx, "UpdateItem", listID, itemID, err)
		return nil, err
	}

	return updated, nil
}

// DeleteItem deletes an item of a list.
func (s *ItemService) DeleteItem(ctx context.Context, listID, itemID int64) error {
	s.logger.InfoContext(ctx, "deleting todo item",
		slog.Int64("list_id", listID),
		slog.Int64("item_id", itemID),
	)

	if err := s.items.Delete(ctx, listID, itemID); err != nil {
		s.logFailure(ctx, "DeleteItem", listID, itemID, err)
		return err
	}

	return nil
}

func (s *ItemService) logFailure(ctx context.Context, operation string, listID, itemID int64, err error) {
	level := slog.LevelError
	if isNotFound(err) {
		level = slog.LevelInfo
	}
	s.logger.Log(ctx, level, "todo item operation failed",
		slog.String("operation", operation),
		slog.Int64("list_id", listID),
		slog.Int64("item_id", itemID),
		slog.Any("error", err),
	)
}
