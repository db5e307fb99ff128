// Package persistence selects the repository driver named in configuration.
package persistence

import (
	"context"
	"fmt"

	"github.com/rezkam/tasks/internal/application/genre"
	"github.com/rezkam/tasks/internal/application/task"
	"github.com/rezkam/tasks/internal/config"
	"github.com/rezkam/tasks/internal/infrastructure/persistence/postgres"
	"github.com/rezkam/tasks/internal/infrastructure/persistence/sqlite"
)

// Store is a migrated, connected repository driver.
type Store interface {
	task.Repository
	genre.Repository
	Close() error
}

// Open connects to the configured database and applies migrations.
func Open(ctx context.Context, cfg config.DatabaseConfig) (Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		store, err := postgres.NewStoreWithConfig(ctx, postgres.DBConfig{
			DSN:             cfg.DSN,
			MaxOpenConns:    cfg.MaxOpenConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			ConnMaxLifetime: cfg.ConnMaxLifetime,
			ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres store: %w", err)
		}
		return store, nil
	case config.DriverSQLite:
		store, err := sqlite.Open(ctx, cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown database driver: %q", cfg.Driver)
	}
}

// Migrate applies pending migrations without keeping a connection open.
func Migrate(ctx context.Context, cfg config.DatabaseConfig) error {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Migrate(ctx, cfg.DSN)
	case config.DriverSQLite:
		return sqlite.Migrate(ctx, cfg.Path)
	default:
		return fmt.Errorf("unknown database driver: %q", cfg.Driver)
	}
}
