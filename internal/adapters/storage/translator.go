package storage

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/todo-lists-service/internal/domain/todoitem"
	"github.com/jsamuelsen11/todo-lists-service/internal/domain/todolist"
)

func toDomainList(r *listRecord) *todolist.TodoList {
	return &todolist.TodoList{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
}

func toDomainLists(rs []listRecord) []todolist.TodoList {
	lists := make([]todolist.TodoList, 0, len(rs))
	for i := range rs {
		lists = append(lists, *toDomainList(&rs[i]))
	}
	return lists
}

func fromDomainList(l *todolist.TodoList) *listRecord {
	return &listRecord{
		Title:       l.Title,
		Description: l.Description,
	}
}

// toDomainItem rejects rows whose status_code is outside the closed set.
func toDomainItem(r *itemRecord) (*todoitem.TodoItem, error) {
	status := todoitem.StatusCode(r.StatusCode)
	if !status.IsValid() {
		return nil, fmt.Errorf("todo item %d: unknown status code %q", r.ID, r.StatusCode)
	}

	return &todoitem.TodoItem{
		ID:          r.ID,
		TodoListID:  r.TodoListID,
		Title:       r.Title,
		Description: r.Description,
		StatusCode:  status,
		DueAt:       utcPtr(r.DueAt),
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}, nil
}

func toDomainItems(rs []itemRecord) ([]todoitem.TodoItem, error) {
	items := make([]todoitem.TodoItem, 0, len(rs))
	for i := range rs {
		item, err := toDomainItem(&rs[i])
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

func fromDomainItem(t *todoitem.TodoItem) *itemRecord {
	return &itemRecord{
		TodoListID:  t.TodoListID,
		Title:       t.Title,
		Description: t.Description,
		StatusCode:  t.StatusCode.String(),
		DueAt:       utcPtr(t.DueAt),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
