package task

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/rezkam/tasks/internal/domain"
)

const instrumentationName = "github.com/rezkam/tasks/internal/application/task"

// ErrArchiveUnavailable is returned by snapshot operations when the service
// was built without a ReportArchive.
var ErrArchiveUnavailable = errors.New("report archive is not configured")

// Service provides business logic for task management.
// It orchestrates operations using the Repository interface.
type Service struct {
	repo    Repository
	archive ReportArchive
	now     func() time.Time

	created    metric.Int64Counter
	duplicated metric.Int64Counter
	deleted    metric.Int64Counter
}

// NewService creates a new task service. archive may be nil, in which case
// snapshot operations return ErrArchiveUnavailable.
// Counters are registered on the global OTel meter provider.
func NewService(repo Repository, archive ReportArchive) (*Service, error) {
	meter := otel.Meter(instrumentationName)

	created, err := meter.Int64Counter("tasks.created",
		metric.WithDescription("Number of tasks created"))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks.created counter: %w", err)
	}
	duplicated, err := meter.Int64Counter("tasks.duplicated",
		metric.WithDescription("Number of tasks created by duplication"))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks.duplicated counter: %w", err)
	}
	deleted, err := meter.Int64Counter("tasks.deleted",
		metric.WithDescription("Number of tasks deleted"))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks.deleted counter: %w", err)
	}

	return &Service{
		repo:       repo,
		archive:    archive,
		now:        time.Now,
		created:    created,
		duplicated: duplicated,
		deleted:    deleted,
	}, nil
}

// List returns every task ordered by id.
func (s *Service) List(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Get retrieves a task by ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Task, error) {
	if id <= 0 {
		return nil, domain.ErrTaskNotFound
	}
	return s.repo.FindByID(ctx, id) // Repository returns domain errors
}

// Create normalizes raw and persists exactly one task.
// A missing genre is rejected before the store is touched.
func (s *Service) Create(ctx context.Context, raw RawParams) (*domain.Task, error) {
	newTask, err := Normalize(raw)
	if err != nil {
		return nil, err
	}
	if newTask.GenreID == nil {
		return nil, domain.ErrGenreRequired
	}

	created, err := s.repo.Insert(ctx, newTask)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.created.Add(ctx, 1)
	slog.InfoContext(ctx, "task created",
		slog.Int64("task_id", created.ID),
		slog.Int64("genre_id", created.GenreID))

	return created, nil
}

// Update replaces the fields present in raw.
func (s *Service) Update(ctx context.Context, id int64, raw RawParams) (*domain.Task, error) {
	if id <= 0 {
		return nil, domain.ErrTaskNotFound
	}

	params, err := NormalizeUpdate(id, raw)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateByID(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return updated, nil
}

// UpdateStatus replaces only the status of a task.
// raw is an integer code, numeric string or label.
func (s *Service) UpdateStatus(ctx context.Context, id int64, raw any) (*domain.Task, error) {
	if id <= 0 {
		return nil, domain.ErrTaskNotFound
	}

	status, err := domain.ParseStatus(raw)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateByID(ctx, domain.UpdateTaskParams{
		TaskID:     id,
		UpdateMask: []string{domain.FieldStatus},
		Status:     &status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}
	return updated, nil
}

// Delete removes a task permanently.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrTaskNotFound
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.deleted.Add(ctx, 1)
	slog.InfoContext(ctx, "task deleted", slog.Int64("task_id", id))
	return nil
}

// Duplicate creates a copy of the task with the given id.
// The source task is only read. Read and insert are not atomic: a
// concurrent delete of the source between them still yields the copy.
func (s *Service) Duplicate(ctx context.Context, id int64) (*domain.Task, error) {
	if id <= 0 {
		return nil, domain.ErrTaskNotFound
	}

	source, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	duplicate, err := s.repo.Insert(ctx, DuplicateOf(*source))
	if err != nil {
		return nil, fmt.Errorf("failed to duplicate task: %w", err)
	}

	s.duplicated.Add(ctx, 1)
	slog.InfoContext(ctx, "task duplicated",
		slog.Int64("source_id", source.ID),
		slog.Int64("task_id", duplicate.ID))

	return duplicate, nil
}

// Stats returns the sparse per-status aggregation over all tasks.
func (s *Service) Stats(ctx context.Context) (domain.Stats, error) {
	tasks, err := s.repo.All(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("failed to compute stats: %w", err)
	}
	return ComputeStats(tasks), nil
}

// Report returns the three-bucket aggregation over all tasks.
func (s *Service) Report(ctx context.Context) (domain.Report, error) {
	tasks, err := s.repo.All(ctx)
	if err != nil {
		return domain.Report{}, fmt.Errorf("failed to compute report: %w", err)
	}
	return ComputeReport(tasks), nil
}

// SnapshotReport computes the current report and archives it.
func (s *Service) SnapshotReport(ctx context.Context) (*domain.ReportSnapshot, error) {
	if s.archive == nil {
		return nil, ErrArchiveUnavailable
	}

	report, err := s.Report(ctx)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate id: %w", err)
	}

	snapshot := domain.ReportSnapshot{
		ID:      id.String(),
		TakenAt: s.now().UTC(),
		Report:  report,
	}
	if err := s.archive.Save(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to archive report: %w", err)
	}

	slog.InfoContext(ctx, "report snapshot archived",
		slog.String("snapshot_id", snapshot.ID),
		slog.Int("total_count", report.TotalCount))

	return &snapshot, nil
}

// ListReportSnapshots returns archived snapshots, newest first.
func (s *Service) ListReportSnapshots(ctx context.Context) ([]domain.ReportSnapshot, error) {
	if s.archive == nil {
		return nil, ErrArchiveUnavailable
	}

	snapshots, err := s.archive.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list report snapshots: %w", err)
	}

	slices.SortFunc(snapshots, func(a, b domain.ReportSnapshot) int {
		if c := b.TakenAt.Compare(a.TakenAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return snapshots, nil
}
