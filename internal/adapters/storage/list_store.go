package storage

import (
	"context"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/todo-lists-service/internal/domain"
	"github.com/jsamuelsen11/todo-lists-service/internal/domain/todolist"
	"github.com/jsamuelsen11/todo-lists-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-lists-service/internal/ports"
)

// Compile-time check that ListStore implements ports.ListRepository.
var _ ports.ListRepository = (*ListStore)(nil)

// ListStore persists todo lists in the todo_list table.
type ListStore struct {
	store
}

// NewListStore creates a ListStore. metrics may be nil.
func NewListStore(db *gorm.DB, metrics *telemetry.Metrics) *ListStore {
	return &ListStore{store{db: db, metrics: metrics}}
}

// List returns one page of lists ordered by ascending ID.
func (s *ListStore) List(ctx context.Context, page domain.Page) ([]todolist.TodoList, error) {
	var recs []listRecord
	err := s.inTx(ctx, "list_lists", func(tx *gorm.DB) error {
		return tx.Order("id ASC").
			Offset(page.Offset()).
			Limit(page.Limit()).
			Find(&recs).Error
	})
	if err != nil {
		return nil, translateError(err, "listing todo lists", entityList, 0)
	}
	return toDomainLists(recs), nil
}

// Get returns the list with the given ID.
func (s *ListStore) Get(ctx context.Context, id int64) (*todolist.TodoList, error) {
	var rec listRecord
	err := s.inTx(ctx, "get_list", func(tx *gorm.DB) error {
		return takeList(tx, id, &rec)
	})
	if err != nil {
		return nil, translateError(err, "fetching todo list", entityList, id)
	}
	return toDomainList(&rec), nil
}

// Create inserts a list and returns the stored row.
func (s *ListStore) Create(ctx context.Context, list *todolist.TodoList) (*todolist.TodoList, error) {
	var rec listRecord
	err := s.inTx(ctx, "create_list", func(tx *gorm.DB) error {
		row := fromDomainList(list)
		if err := tx.Omit("Items").Create(row).Error; err != nil {
			return err
		}
		return takeList(tx, row.ID, &rec)
	})
	if err != nil {
		return nil, translateError(err, "creating todo list", entityList, 0)
	}
	return toDomainList(&rec), nil
}

// Update applies patch to the list with the given ID and returns the stored
// row. An empty patch writes nothing.
func (s *ListStore) Update(ctx context.Context, id int64, patch todolist.Patch) (*todolist.TodoList, error) {
	var rec listRecord
	err := s.inTx(ctx, "update_list", func(tx *gorm.DB) error {
		if err := takeList(tx, id, &rec); err != nil {
			return err
		}
		if patch.IsEmpty() {
			return nil
		}

		current := toDomainList(&rec)
		patch.Apply(current)

		updates := map[string]any{"updated_at": tx.NowFunc()}
		if patch.Title != nil {
			updates["title"] = current.Title
		}
		if patch.Description != nil {
			updates["description"] = current.Description
		}

		if err := tx.Model(&listRecord{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		return takeList(tx, id, &rec)
	})
	if err != nil {
		return nil, translateError(err, "updating todo list", entityList, id)
	}
	return toDomainList(&rec), nil
}

// Delete removes the list with the given ID together with its items.
func (s *ListStore) Delete(ctx context.Context, id int64) error {
	err := s.inTx(ctx, "delete_list", func(tx *gorm.DB) error {
		if err := tx.Where("todo_list_id = ?", id).Delete(&itemRecord{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&listRecord{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translateError(err, "deleting todo list", entityList, id)
}

func takeList(tx *gorm.DB, id int64, rec *listRecord) error {
	return tx.Where("id = ?", id).Take(rec).Error
}
