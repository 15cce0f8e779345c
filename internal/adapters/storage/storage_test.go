package storage

import (
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jsamuelsen11/todo-lists-service/internal/platform/config"
)

// testClock is a deterministic clock that advances one second per call.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func sqliteConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Driver:        config.DriverSQLite,
		DSN:           ":memory:",
		MaxOpenConns:  1,
		AutoMigrate:   true,
		SlowThreshold: time.Second,
	}
}

// newTestDB opens a fresh migrated in-memory SQLite database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open(sqliteConfig(), slog.DiscardHandler, WithNowFunc(newTestClock().Now))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, Close(db))
	})
	return db
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
