package storage

import (
	"context"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/todo-lists-service/internal/domain"
	"github.com/jsamuelsen11/todo-lists-service/internal/domain/todoitem"
	"github.com/jsamuelsen11/todo-lists-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-lists-service/internal/ports"
)

// Compile-time check that ItemStore implements ports.ItemRepository.
var _ ports.ItemRepository = (*ItemStore)(nil)

// ItemStore persists todo items in the todo_item table. Every query filters
// on the owning list ID and the item ID together.
type ItemStore struct {
	store
}

// NewItemStore creates an ItemStore. metrics may be nil.
func NewItemStore(db *gorm.DB, metrics *telemetry.Metrics) *ItemStore {
	return &ItemStore{store{db: db, metrics: metrics}}
}

// List returns one page of the list's items ordered by ascending ID. An
// unknown list yields an empty page.
func (s *ItemStore) List(ctx context.Context, listID int64, page domain.Page) ([]todoitem.TodoItem, error) {
	var recs []itemRecord
	err := s.inTx(ctx, "list_items", func(tx *gorm.DB) error {
		return tx.Where("todo_list_id = ?", listID).
			Order("id ASC").
			Offset(page.Offset()).
			Limit(page.Limit()).
			Find(&recs).Error
	})
	if err != nil {
		return nil, translateError(err, "listing todo items", entityItem, 0)
	}

	items, err := toDomainItems(recs)
	if err != nil {
		return nil, translateError(err, "listing todo items", entityItem, 0)
	}
	return items, nil
}

// Get returns the item with itemID if it belongs to listID.
func (s *ItemStore) Get(ctx context.Context, listID, itemID int64) (*todoitem.TodoItem, error) {
	var rec itemRecord
	err := s.inTx(ctx, "get_item", func(tx *gorm.DB) error {
		return takeItem(tx, listID, itemID, &rec)
	})
	if err != nil {
		return nil, translateError(err, "fetching todo item", entityItem, itemID)
	}
	return s.translate(&rec, "fetching todo item")
}

// Create inserts an item and returns the stored row. A TodoListID with no
// matching list fails on the foreign key.
func (s *ItemStore) Create(ctx context.Context, item *todoitem.TodoItem) (*todoitem.TodoItem, error) {
	var rec itemRecord
	err := s.inTx(ctx, "create_item", func(tx *gorm.DB) error {
		row := fromDomainItem(item)
		if err := tx.Create(row).Error; err != nil {
			return err
		}
		return takeItem(tx, row.TodoListID, row.ID, &rec)
	})
	if err != nil {
		return nil, translateError(err, "creating todo item", entityItem, 0)
	}
	return s.translate(&rec, "creating todo item")
}

// Update applies patch to the item and returns the stored row. An empty
// patch writes nothing.
func (s *ItemStore) Update(ctx context.Context, listID, itemID int64, patch todoitem.Patch) (*todoitem.TodoItem, error) {
	var rec itemRecord
	err := s.inTx(ctx, "update_item", func(tx *gorm.DB) error {
		if err := takeItem(tx, listID, itemID, &rec); err != nil {
			return err
		}
		if patch.IsEmpty() {
			return nil
		}

		current, err := toDomainItem(&rec)
		if err != nil {
			return err
		}
		patch.Apply(current)

		updates := map[string]any{"updated_at": tx.NowFunc()}
		if patch.Title != nil {
			updates["title"] = current.Title
		}
		if patch.Description != nil {
			updates["description"] = current.Description
		}
		if patch.DueAt != nil {
			updates["due_at"] = utcPtr(current.DueAt)
		}
		if patch.Complete != nil {
			updates["status_code"] = current.StatusCode.String()
		}

		err = tx.Model(&itemRecord{}).
			Where("todo_list_id = ? AND id = ?", listID, itemID).
			Updates(updates).Error
		if err != nil {
			return err
		}
		return takeItem(tx, listID, itemID, &rec)
	})
	if err != nil {
		return nil, translateError(err, "updating todo item", entityItem, itemID)
	}
	return s.translate(&rec, "updating todo item")
}

// Delete removes the item if it belongs to listID.
func (s *ItemStore) Delete(ctx context.Context, listID, itemID int64) error {
	err := s.inTx(ctx, "delete_item", func(tx *gorm.DB) error {
		res := tx.Where("todo_list_id = ? AND id = ?", listID, itemID).Delete(&itemRecord{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translateError(err, "deleting todo item", entityItem, itemID)
}

func (s *ItemStore) translate(rec *itemRecord, operation string) (*todoitem.TodoItem, error) {
	item, err := toDomainItem(rec)
	if err != nil {
		return nil, translateError(err, operation, entityItem, rec.ID)
	}
	return item, nil
}

func takeItem(tx *gorm.DB, listID, itemID int64, rec *itemRecord) error {
	return tx.Where("todo_list_id = ? AND id = ?", listID, itemID).Take(rec).Error
}
