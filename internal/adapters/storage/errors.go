package storage

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/todo-lists-service/internal/domain"
)

// Entity names used in not-found errors.
const (
	entityList = "todo list"
	entityItem = "todo item"
)

// translateError maps gorm errors onto domain errors. A missing row becomes
// *domain.NotFoundError; everything else is wrapped with the operation name
// and stays a storage failure.
func translateError(err error, operation, entity string, id int64) error {
	if err == nil {
		return nil
	}

	var nf *domain.NotFoundError
	switch {
	case errors.As(err, &nf):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &domain.NotFoundError{Entity: entity, ID: id}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%s: referenced todo list does not exist: %w", operation, err)
	default:
		return fmt.Errorf("%s: %w", operation, err)
	}
}
