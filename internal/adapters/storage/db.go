// Package storage implements the repository ports on top of gorm. Every
// repository call runs in exactly one database transaction; rows are
// translated to domain entities at the package boundary and gorm errors are
// translated to domain errors.
package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	sloggorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jsamuelsen11/todo-lists-service/internal/platform/config"
)

// Option configures Open.
type Option func(*openOptions)

type openOptions struct {
	now func() time.Time
}

// WithNowFunc overrides the clock used for created_at and updated_at.
func WithNowFunc(now func() time.Time) Option {
	return func(o *openOptions) {
		o.now = now
	}
}

// Open connects to the configured database. gorm logs through the given
// slog handler, pool limits come from cfg, and the todo_list and todo_item
// tables are migrated when cfg.AutoMigrate is set.
func Open(cfg config.DatabaseConfig, handler slog.Handler, opts ...Option) (*gorm.DB, error) {
	dialector, err := newDialector(cfg)
	if err != nil {
		return nil, err
	}
	return open(dialector, cfg, handler, opts...)
}

func newDialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return sqlite.Open(cfg.DSN), nil
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func open(dialector gorm.Dialector, cfg config.DatabaseConfig, handler slog.Handler, opts ...Option) (*gorm.DB, error) {
	o := &openOptions{
		now: func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(o)
	}

	gormLogger := sloggorm.New(
		sloggorm.WithHandler(handler),
		sloggorm.WithSlowThreshold(cfg.SlowThreshold),
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 gormLogger,
		NowFunc:                o.now,
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", dialector.Name(), err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("accessing connection pool: %w", err)
	}

	if dialector.Name() == config.DriverSQLite {
		// SQLite is single-writer, and an in-memory database lives only as
		// long as its one connection.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)

		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, errors.Join(fmt.Errorf("enabling foreign keys: %w", err), sqlDB.Close())
		}
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, errors.Join(err, sqlDB.Close())
		}
	}

	return db, nil
}

// Migrate creates or updates the todo_list and todo_item tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&listRecord{}, &itemRecord{}); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("accessing connection pool: %w", err)
	}
	return sqlDB.Close()
}
