package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/todo-lists-service/internal/ports"
)

// Compile-time check that DBChecker implements ports.HealthChecker.
var _ ports.HealthChecker = (*DBChecker)(nil)

// DBChecker reports database reachability for readiness checks.
type DBChecker struct {
	db *gorm.DB
}

// NewDBChecker creates a DBChecker for db.
func NewDBChecker(db *gorm.DB) *DBChecker {
	return &DBChecker{db: db}
}

// Name returns the identifier used in the readiness response.
func (c *DBChecker) Name() string {
	return "database"
}

// HealthCheck pings the database with ctx's deadline.
func (c *DBChecker) HealthCheck(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database: ping failed: %w", err)
	}
	return nil
}
