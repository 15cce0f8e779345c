package storage

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/metric"
	"gorm.io/gorm"

	"github.com/jsamuelsen11/todo-lists-service/internal/domain"
	"github.com/jsamuelsen11/todo-lists-service/internal/platform/telemetry"
)

// Values of the result attribute on store metrics.
const (
	resultSuccess  = "success"
	resultNotFound = "not_found"
	resultError    = "error"
)

// store is shared by the repositories: it owns the transaction boundary and
// records one metric sample per repository call.
type store struct {
	db      *gorm.DB
	metrics *telemetry.Metrics
}

// inTx runs fn in a single transaction bound to ctx. The transaction commits
// when fn returns nil and rolls back on error or panic.
func (s *store) inTx(ctx context.Context, operation string, fn func(tx *gorm.DB) error) error {
	start := time.Now()
	err := s.db.WithContext(ctx).Transaction(fn)
	s.observe(ctx, operation, start, err)
	return err
}

func (s *store) observe(ctx context.Context, operation string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}

	result := resultSuccess
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, domain.ErrNotFound):
		result = resultNotFound
	default:
		result = resultError
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String(s.db.Dialector.Name()),
		telemetry.AttrDBOperation.String(operation),
		telemetry.AttrResult.String(result),
	)
	s.metrics.StoreOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
}
