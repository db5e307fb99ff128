package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rezkam/tasks/internal/application/genre"
	"github.com/rezkam/tasks/internal/application/task"
	"github.com/rezkam/tasks/internal/config"
	"github.com/rezkam/tasks/internal/infrastructure/archive"
	httpserver "github.com/rezkam/tasks/internal/infrastructure/http"
	"github.com/rezkam/tasks/internal/infrastructure/http/handler"
	"github.com/rezkam/tasks/internal/infrastructure/observability"
	"github.com/rezkam/tasks/internal/infrastructure/persistence"
)

// telemetryFlushTimeout bounds provider shutdown when the collector is unreachable.
const telemetryFlushTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		// slog may not be initialized if config fails
		fmt.Fprintf(os.Stderr, "failed to run: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadServerConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Root context, cancelled on SIGTERM/SIGINT.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	providers, err := observability.Setup(ctx, observability.Config{
		Enabled:     cfg.Observability.OTelEnabled,
		ServiceName: cfg.Observability.ServiceName,
	}, os.Stdout)
	if err != nil {
		return fmt.Errorf("failed to init observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), telemetryFlushTimeout)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "failed to shutdown telemetry providers", "error", err)
		}
	}()

	slog.InfoContext(ctx, "starting tasks service", "driver", cfg.Database.Driver)

	store, err := persistence.Open(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	slog.InfoContext(ctx, "storage initialized", "target", storageTarget(cfg.Database))

	reportArchive, archiveCloser, err := archive.Open(ctx, cfg.Archive)
	if err != nil {
		_ = store.Close()
		return fmt.Errorf("failed to create report archive: %w", err)
	}
	defer newCleanup(archiveCloser, store)()
	slog.InfoContext(ctx, "report archive initialized", "type", cfg.Archive.Type)

	taskService, err := task.NewService(store, reportArchive)
	if err != nil {
		return fmt.Errorf("failed to create task service: %w", err)
	}
	genreService := genre.NewService(store)

	server := httpserver.NewServer(handler.NewRouter(taskService, genreService), cfg.HTTP)
	if err := server.Run(ctx, cfg.ShutdownTimeout); err != nil {
		return err
	}

	slog.InfoContext(ctx, "tasks service stopped")
	return nil
}

// storageTarget describes the database for logs without leaking credentials.
func storageTarget(cfg config.DatabaseConfig) string {
	if cfg.Driver == config.DriverPostgres {
		return maskPassword(cfg.DSN)
	}
	return cfg.Path
}

// maskPassword masks the password in a connection string for logging.
func maskPassword(connStr string) string {
	u, err := url.Parse(connStr)
	if err != nil {
		return "[REDACTED]"
	}
	if u.User != nil {
		if _, hasPassword := u.User.Password(); hasPassword {
			u.User = url.UserPassword(u.User.Username(), "xxxxxx")
		}
	}
	return u.String()
}
