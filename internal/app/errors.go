package app

import (
	"errors"

	"github.com/jsamuelsen11/todo-lists-service/internal/domain"
)

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
