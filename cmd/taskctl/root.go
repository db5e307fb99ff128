package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rezkam/tasks/internal/application/genre"
	"github.com/rezkam/tasks/internal/application/task"
	"github.com/rezkam/tasks/internal/config"
	"github.com/rezkam/tasks/internal/infrastructure/archive"
	"github.com/rezkam/tasks/internal/infrastructure/persistence"
)

// version is set at build time via ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "taskctl",
		Short: "Operate the tasks service database and report archive",
		Long: `taskctl runs migrations, manages genres and prints task aggregates.
Configuration is read from TASKS_CONFIG_FILE and TASKS_* environment variables.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(
		newMigrateCmd(),
		newGenreCmd(),
		newTaskCmd(),
		newStatsCmd(),
		newReportCmd(),
		newSnapshotCmd(),
	)
	return root
}

// app holds the services a command needs, opened from CLI configuration.
type app struct {
	tasks  *task.Service
	genres *genre.Service
	close  func()
}

func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.LoadCLIConfig()
	if err != nil {
		return nil, err
	}

	store, err := persistence.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	reportArchive, archiveCloser, err := archive.Open(ctx, cfg.Archive)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	tasks, err := task.NewService(store, reportArchive)
	if err != nil {
		_ = archiveCloser.Close()
		_ = store.Close()
		return nil, err
	}

	return &app{
		tasks:  tasks,
		genres: genre.NewService(store),
		close: func() {
			if err := archiveCloser.Close(); err != nil {
				slog.Error("failed to close report archive", "error", err)
			}
			if err := store.Close(); err != nil {
				slog.Error("failed to close store", "error", err)
			}
		},
	}, nil
}

// withApp opens the services for the duration of fn.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	ctx := cmd.Context()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()
	return fn(ctx, a)
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
