package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rezkam/tasks/internal/application/task"
	"github.com/rezkam/tasks/internal/config"
	"github.com/rezkam/tasks/internal/domain"
	"github.com/rezkam/tasks/internal/infrastructure/http/handler"
	"github.com/rezkam/tasks/internal/infrastructure/persistence"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadCLIConfig()
			if err != nil {
				return err
			}
			if err := persistence.Migrate(cmd.Context(), cfg.Database); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]string{
				"status": "migrated",
				"driver": cfg.Database.Driver,
			})
		},
	}
}

func newGenreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genre",
		Short: "Manage genres",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Create a genre",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				g, err := a.genres.Create(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), handler.MapGenreToDTO(*g))
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List genres",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				genres, err := a.genres.List(ctx)
				if err != nil {
					return err
				}
				dtos := make([]handler.GenreDTO, len(genres))
				for i, g := range genres {
					dtos[i] = handler.MapGenreToDTO(g)
				}
				return printJSON(cmd.OutOrStdout(), dtos)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a genre no task uses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseID(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *app) error {
				if err := a.genres.Delete(ctx, id); err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), map[string]int64{"deleted": id})
			})
		},
	})

	return cmd
}

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Inspect and copy tasks",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				tasks, err := a.tasks.List(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), handler.MapTasksToDTO(tasks))
			})
		},
	})

	add := &cobra.Command{
		Use:   "add",
		Short: "Create a task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw := task.RawParams{}
			for flag, key := range taskAddFlags {
				if cmd.Flags().Changed(flag) {
					v, _ := cmd.Flags().GetString(flag)
					raw[key] = v
				}
			}
			return withApp(cmd, func(ctx context.Context, a *app) error {
				created, err := a.tasks.Create(ctx, raw)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), handler.MapTaskToDTO(*created))
			})
		},
	}
	add.Flags().String("name", "", "task name")
	add.Flags().String("explanation", "", "free-form description")
	add.Flags().String("genre", "", "genre id (required)")
	add.Flags().String("priority", "", "priority code or label (default medium)")
	add.Flags().String("status", "", "status code or label (default not_started)")
	add.Flags().String("deadline", "", "deadline date, YYYY-MM-DD")
	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:   "duplicate <id>",
		Short: "Copy a task under a new id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseID(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *app) error {
				dup, err := a.tasks.Duplicate(ctx, id)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), handler.MapTaskToDTO(*dup))
			})
		},
	})

	return cmd
}

// taskAddFlags maps "task add" flags to payload keys.
var taskAddFlags = map[string]string{
	"name":        task.KeyName,
	"explanation": task.KeyExplanation,
	"genre":       task.KeyGenreID,
	"priority":    task.KeyPriority,
	"status":      task.KeyStatus,
	"deadline":    task.KeyDeadlineDate,
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print per-status task counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				stats, err := a.tasks.Stats(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), handler.MapStatsToDTO(stats))
			})
		},
	}
}

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the three-bucket task report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				report, err := a.tasks.Report(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), report)
			})
		},
	}
}

func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Archive the current report",
		Long:  "Archive the current report. Use 'snapshot list' to print archived reports, newest first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				snapshot, err := a.tasks.SnapshotReport(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), snapshot)
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List archived reports",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				snapshots, err := a.tasks.ListReportSnapshots(ctx)
				if err != nil {
					return err
				}
				if snapshots == nil {
					snapshots = []domain.ReportSnapshot{}
				}
				return printJSON(cmd.OutOrStdout(), snapshots)
			})
		},
	})

	return cmd
}
