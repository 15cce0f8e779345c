// Package app provides application services that orchestrate use cases by
// coordinating between domain rules and storage through port interfaces.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/todo-lists-service/internal/domain"
	"github.com/jsamuelsen11/todo-lists-service/internal/domain/todolist"
	"github.com/jsamuelsen11/todo-lists-service/internal/ports"
)

// Compile-time check that ListService implements ports.ListService.
var _ ports.ListService = (*ListService)(nil)

// ListService implements ports.ListService on top of a ListRepository. It
// validates input, logs failures, and leaves persistence and transaction
// scope to the repository.
type ListService struct {
	lists  ports.ListRepository
	logger *slog.Logger
}

// NewListService creates a ListService. A nil logger discards output.
func NewListService(lists ports.ListRepository, logger *slog.Logger) *ListService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ListService{
		lists:  lists,
		logger: logger,
	}
}

// ListLists returns one page of lists ordered by ascending ID.
func (s *ListService) ListLists(ctx context.Context, page domain.Page) ([]todolist.TodoList, error) {
	s.logger.DebugContext(ctx, "listing todo lists",
		slog.Int("page", page.Number),
		slog.Int("per_page", page.Size),
	)

	if err := page.Validate(); err != nil {
		return nil, err
	}

	lists, err := s.lists.List(ctx, page)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list todo lists",
			slog.String("operation", "ListLists"),
			slog.Int("page", page.Number),
			slog.Int("per_page", page.Size),
			slog.Any("error", err),
		)
		return nil, err
	}

	return lists, nil
}

// GetList returns a single list by ID.
func (s *ListService) GetList(ctx context.Context, id int64) (*todolist.TodoList, error) {
	s.logger.DebugContext(ctx, "fetching todo list", slog.Int64("id", id))

	list, err := s.lists.Get(ctx, id)
	if err != nil {
		s.logFailure(ctx, "GetList", id, err)
		return nil, err
	}

	return list, nil
}

// CreateList validates and creates a new list, returning the created entity
// with server-assigned fields (ID, timestamps).
func (s *ListService) CreateList(ctx context.Context, list *todolist.TodoList) (*todolist.TodoList, error) {
	s.logger.InfoContext(ctx, "creating todo list", slog.String("title", list.Title))

	if err := list.Validate(); err != nil {
		return nil, err
	}

	created, err := s.lists.Create(ctx, list)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create todo list",
			slog.String("operation", "CreateList"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// UpdateList applies a partial update. Fields absent from the patch keep
// their stored values.
func (s *ListService) UpdateList(ctx context.Context, id int64, patch todolist.Patch) (*todolist.TodoList, error) {
	s.logger.InfoContext(ctx, "updating todo list",
		slog.Int64("id", id),
		slog.Bool("empty_patch", patch.IsEmpty()),
	)

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.lists.Update(ctx, id, patch)
	if err != nil {
		s.logFailure(ctx, "UpdateList", id, err)
		return nil, err
	}

	return updated, nil
}

// DeleteList deletes a list and all of its items.
func (s *ListService) DeleteList(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting todo list", slog.Int64("id", id))

	if err := s.lists.Delete(ctx, id); err != nil {
		s.logFailure(ctx, "DeleteList", id, err)
		return err
	}

	return nil
}

// logFailure logs not-found at info level and everything else as an error.
func (s *ListService) logFailure(ctx context.Context, operation string, id int64, err error) {
	level := slog.LevelError
	if isNotFound(err) {
		level = slog.LevelInfo
	}
	s.logger.Log(ctx, level, "todo list operation failed",
		slog.String("operation", operation),
		slog.Int64("id", id),
		slog.Any("error", err),
	)
}
