package storage

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jsamuelsen11/todo-lists-service/internal/domain"
	"github.com/jsamuelsen11/todo-lists-service/internal/domain/todoitem"
	"github.com/jsamuelsen11/todo-lists-service/internal/platform/config"
)

var errConnReset = errors.New("connection reset by peer")

// newMockDB returns a gorm handle backed by sqlmock through the postgres
// dialector. Unmet expectations fail the test.
func newMockDB(t *testing.T, monitorPings bool) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(monitorPings))
	require.NoError(t, err)
	if monitorPings {
		// gorm pings once while opening.
		mock.ExpectPing()
	}

	cfg := config.DatabaseConfig{Driver: config.DriverPostgres, MaxOpenConns: 1}
	db, err := open(postgres.New(postgres.Config{Conn: sqlDB}), cfg, slog.DiscardHandler)
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = sqlDB.Close()
	})
	return db, mock
}

func TestListStore_BeginFailure(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t, false)
	mock.ExpectBegin().WillReturnError(errConnReset)

	_, err := NewListStore(db, nil).Get(context.Background(), 1)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorContains(t, err, "fetching todo list")
}

func TestListStore_QueryFailureRollsBack(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t, false)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "todo_list"`).WillReturnError(errConnReset)
	mock.ExpectRollback()

	_, err := NewListStore(db, nil).List(context.Background(), domain.Page{Number: 1, Size: 10})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestListStore_DeleteIsAtomic(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t, false)
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "todo_item"`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "todo_list"`).WillReturnError(errConnReset)
	mock.ExpectRollback()

	err := NewListStore(db, nil).Delete(context.Background(), 1)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorContains(t, err, "deleting todo list")
}

func TestItemStore_DeleteMissingRollsBack(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t, false)
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "todo_item"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := NewItemStore(db, nil).Delete(context.Background(), 1, 2)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemStore_CreateFailure(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t, false)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "todo_item"`).WillReturnError(errConnReset)
	mock.ExpectRollback()

	_, err := NewItemStore(db, nil).Create(context.Background(), &todoitem.TodoItem{
		TodoListID: 1,
		Title:      "Milk",
		StatusCode: todoitem.StatusNotCompleted,
	})

	require.Error(t, err)
	assert.ErrorContains(t, err, "creating todo item")
}

func TestDBChecker(t *testing.T) {
	t.Parallel()

	t.Run("healthy", func(t *testing.T) {
		t.Parallel()
		checker := NewDBChecker(newTestDB(t))

		assert.Equal(t, "database", checker.Name())
		assert.NoError(t, checker.HealthCheck(context.Background()))
	})

	t.Run("ping failure", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t, true)
		mock.ExpectPing().WillReturnError(errConnReset)

		err := NewDBChecker(db).HealthCheck(context.Background())

		require.Error(t, err)
		assert.ErrorIs(t, err, errConnReset)
	})
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	t.Parallel()

	_, err := Open(config.DatabaseConfig{Driver: "mysql", DSN: "x"}, slog.DiscardHandler)
	assert.ErrorContains(t, err, "unsupported database driver")
}
