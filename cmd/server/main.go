// Package main is the entry point for the todo lists service. It wires all
// dependencies using samber/do v2, opens the database, starts the HTTP server,
// and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"gorm.io/gorm"

	adapthttp "github.com/jsamuelsen11/todo-lists-service/internal/adapters/http"
	"github.com/jsamuelsen11/todo-lists-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-lists-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-lists-service/internal/adapters/storage"

	"github.com/jsamuelsen11/todo-lists-service/internal/app"
	"github.com/jsamuelsen11/todo-lists-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-lists-service/internal/platform/health"
	"github.com/jsamuelsen11/todo-lists-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-lists-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-lists-service/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry, database.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph, database included).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		_ = otel.Shutdown(ctx)
		return fmt.Errorf("resolving server: %w", err)
	}
	db := do.MustInvoke[*gorm.DB](injector)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// No request can reach the database past this point.
	if err := storage.Close(db); err != nil {
		logger.Error("database close error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*gorm.DB, error) {
		db, err := storage.Open(cfg.Database, logger.Handler())
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		logger.Info("database ready",
			slog.String("driver", cfg.Database.Driver),
			slog.Bool("auto_migrate", cfg.Database.AutoMigrate),
		)
		return db, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ListRepository, error) {
		db := do.MustInvoke[*gorm.DB](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return storage.NewListStore(db, metrics), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ItemRepository, error) {
		db := do.MustInvoke[*gorm.DB](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return storage.NewItemStore(db, metrics), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ListService, error) {
		lists := do.MustInvoke[ports.ListRepository](i)
		return app.NewListService(lists, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ItemService, error) {
		items := do.MustInvoke[ports.ItemRepository](i)
		return app.NewItemService(items, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		db := do.MustInvoke[*gorm.DB](i)
		registry := health.New()
		registry.Register(storage.NewDBChecker(db))
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ListHandler, error) {
		svc := do.MustInvoke[ports.ListService](i)
		return handlers.NewListHandler(svc, cfg.Pagination.DefaultPerPage), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ItemHandler, error) {
		svc := do.MustInvoke[ports.ItemService](i)
		return handlers.NewItemHandler(svc, cfg.Pagination.DefaultPerPage), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		listH := do.MustInvoke[*handlers.ListHandler](i)
		itemH := do.MustInvoke[*handlers.ItemHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(listH, itemH, healthH, middleware.Stack(middleware.Options{
			Logger:         logger,
			Metrics:        metrics,
			RequestTimeout: cfg.Server.RequestTimeout,
		})...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
