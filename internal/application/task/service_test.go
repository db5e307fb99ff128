package task

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezkam/tasks/internal/domain"
)

// memoryRepo is an in-memory Repository with a fixed set of genres.
type memoryRepo struct {
	tasks  []domain.Task
	nextID int64
	genres map[int64]bool

	inserts int
	updates int
	allErr  error
}

func newMemoryRepo(genreIDs ...int64) *memoryRepo {
	genres := make(map[int64]bool, len(genreIDs))
	for _, id := range genreIDs {
		genres[id] = true
	}
	return &memoryRepo{genres: genres, nextID: 1}
}

func (m *memoryRepo) Insert(_ context.Context, n domain.NewTask) (*domain.Task, error) {
	if n.GenreID == nil || !m.genres[*n.GenreID] {
		return nil, domain.ErrUnknownGenre
	}
	m.inserts++
	t := domain.Task{
		ID:           m.nextID,
		Name:         n.Name,
		Explanation:  n.Explanation,
		Status:       n.EffectiveStatus(),
		Priority:     n.EffectivePriority(),
		GenreID:      *n.GenreID,
		DeadlineDate: n.DeadlineDate,
	}
	m.nextID++
	m.tasks = append(m.tasks, t)
	return &t, nil
}

func (m *memoryRepo) FindByID(_ context.Context, id int64) (*domain.Task, error) {
	for _, t := range m.tasks {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, domain.ErrTaskNotFound
}

func (m *memoryRepo) All(_ context.Context) ([]domain.Task, error) {
	if m.allErr != nil {
		return nil, m.allErr
	}
	return append([]domain.Task(nil), m.tasks...), nil
}

func (m *memoryRepo) UpdateByID(_ context.Context, p domain.UpdateTaskParams) (*domain.Task, error) {
	for i, t := range m.tasks {
		if t.ID != p.TaskID {
			continue
		}
		if p.Has(domain.FieldGenreID) && !m.genres[*p.GenreID] {
			return nil, domain.ErrUnknownGenre
		}
		m.updates++
		m.tasks[i] = p.Apply(t)
		updated := m.tasks[i]
		return &updated, nil
	}
	return nil, domain.ErrTaskNotFound
}

func (m *memoryRepo) DeleteByID(_ context.Context, id int64) error {
	for i, t := range m.tasks {
		if t.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return domain.ErrTaskNotFound
}

// memoryArchive is an in-memory ReportArchive.
type memoryArchive struct {
	snapshots []domain.ReportSnapshot
	saveErr   error
}

func (a *memoryArchive) Save(_ context.Context, s domain.ReportSnapshot) error {
	if a.saveErr != nil {
		return a.saveErr
	}
	a.snapshots = append(a.snapshots, s)
	return nil
}

func (a *memoryArchive) List(_ context.Context) ([]domain.ReportSnapshot, error) {
	return append([]domain.ReportSnapshot(nil), a.snapshots...), nil
}

func newTestService(t *testing.T, repo Repository, archive ReportArchive) *Service {
	t.Helper()
	svc, err := NewService(repo, archive)
	require.NoError(t, err)
	return svc
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("persists exactly one task with defaults", func(t *testing.T) {
		repo := newMemoryRepo(1)
		svc := newTestService(t, repo, nil)

		created, err := svc.Create(ctx, RawParams{"name": "デフォルト優先度タスク", "genreId": float64(1)})
		require.NoError(t, err)

		assert.Equal(t, 1, repo.inserts)
		assert.Equal(t, domain.PriorityMedium, created.Priority)
		assert.Equal(t, domain.StatusNotStarted, created.Status)
	})

	t.Run("missing genre never reaches the store", func(t *testing.T) {
		repo := newMemoryRepo(1)
		svc := newTestService(t, repo, nil)

		_, err := svc.Create(ctx, RawParams{"name": "タスク", "priority": "1"})
		assert.ErrorIs(t, err, domain.ErrGenreRequired)
		assert.ErrorIs(t, err, domain.ErrMissingRequiredReference)
		assert.Zero(t, repo.inserts)
	})

	t.Run("unknown genre is a missing reference", func(t *testing.T) {
		repo := newMemoryRepo(1)
		svc := newTestService(t, repo, nil)

		_, err := svc.Create(ctx, RawParams{"name": "タスク", "genreId": "99"})
		assert.ErrorIs(t, err, domain.ErrMissingRequiredReference)
		assert.Empty(t, repo.tasks)
	})

	t.Run("invalid priority creates nothing", func(t *testing.T) {
		repo := newMemoryRepo(1)
		svc := newTestService(t, repo, nil)

		_, err := svc.Create(ctx, RawParams{"name": "x", "genreId": "1", "priority": "9"})
		assert.ErrorIs(t, err, domain.ErrInvalidEnumValue)
		assert.Zero(t, repo.inserts)
	})

	t.Run("empty name is accepted", func(t *testing.T) {
		repo := newMemoryRepo(1)
		svc := newTestService(t, repo, nil)

		created, err := svc.Create(ctx, RawParams{"name": nil, "genreId": "1"})
		require.NoError(t, err)
		assert.Empty(t, created.Name)
	})
}

func TestService_Duplicate(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(1)
	svc := newTestService(t, repo, nil)

	source, err := svc.Create(ctx, RawParams{
		"name":         "オリジナルタスク",
		"explanation":  "説明",
		"genreId":      "1",
		"priority":     "high",
		"status":       float64(5),
		"deadlineDate": "2025-12-31",
	})
	require.NoError(t, err)

	dup, err := svc.Duplicate(ctx, source.ID)
	require.NoError(t, err)

	assert.NotEqual(t, source.ID, dup.ID)
	assert.Equal(t, "オリジナルタスク(コピー)", dup.Name)
	assert.Equal(t, domain.StatusNotStarted, dup.Status)
	assert.Nil(t, dup.DeadlineDate)
	assert.Equal(t, domain.PriorityHigh, dup.Priority)

	reloaded, err := svc.Get(ctx, source.ID)
	require.NoError(t, err)
	assert.Equal(t, *source, *reloaded, "source must be unchanged")

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestService_Duplicate_NotFound(t *testing.T) {
	repo := newMemoryRepo(1)
	svc := newTestService(t, repo, nil)

	_, err := svc.Duplicate(context.Background(), 99999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, repo.inserts)
}

func TestService_UpdateAndStatus(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(1, 2)
	svc := newTestService(t, repo, nil)

	created, err := svc.Create(ctx, RawParams{"name": "テストタスク", "genreId": "1", "priority": "0"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, RawParams{"priority": float64(2)})
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityHigh, updated.Priority)
	assert.Equal(t, "テストタスク", updated.Name)

	updated, err = svc.UpdateStatus(ctx, created.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, updated.Status)

	_, err = svc.UpdateStatus(ctx, created.ID, float64(6))
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = svc.Update(ctx, created.ID, RawParams{"genreId": "42"})
	assert.ErrorIs(t, err, domain.ErrUnknownGenre)

	_, err = svc.Update(ctx, 12345, RawParams{"name": "x"})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(1)
	svc := newTestService(t, repo, nil)

	created, err := svc.Create(ctx, RawParams{"genreId": "1"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), domain.ErrTaskNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 0), domain.ErrTaskNotFound)
}

func TestService_StatsAndReport(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(1)
	svc := newTestService(t, repo, nil)

	for _, status := range []string{"0", "0", "1", "5", "5"} {
		_, err := svc.Create(ctx, RawParams{"genreId": "1", "status": status})
		require.NoError(t, err)
	}

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.TotalCount)
	assert.Equal(t, map[domain.Status]int{0: 2, 1: 1, 5: 2}, stats.StatusCounts)
	assert.InDelta(t, 40.0, stats.CompletionRate, 1e-9)

	report, err := svc.Report(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusBuckets{NotStarted: 2, InProgress: 1, Completed: 2}, report.CountByStatus)
	assert.InDelta(t, 40.0, report.CompletionRate, 1e-9)

	repo.allErr = errors.New("connection refused")
	_, err = svc.Stats(ctx)
	assert.Error(t, err)
}

func TestService_ReportSnapshots(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(1)
	archive := &memoryArchive{}
	svc := newTestService(t, repo, archive)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	svc.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	_, err := svc.Create(ctx, RawParams{"genreId": "1", "status": "completed"})
	require.NoError(t, err)

	first, err := svc.SnapshotReport(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, 1, first.Report.TotalCount)

	second, err := svc.SnapshotReport(ctx)
	require.NoError(t, err)

	list, err := svc.ListReportSnapshots(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "newest first")
	assert.Equal(t, first.ID, list[1].ID)
}

func TestService_ReportSnapshots_NoArchive(t *testing.T) {
	svc := newTestService(t, newMemoryRepo(1), nil)

	_, err := svc.SnapshotReport(context.Background())
	assert.ErrorIs(t, err, ErrArchiveUnavailable)

	_, err = svc.ListReportSnapshots(context.Background())
	assert.ErrorIs(t, err, ErrArchiveUnavailable)
}

func TestService_ReportSnapshots_SaveFailure(t *testing.T) {
	archive := &memoryArchive{saveErr: errors.New("bucket gone")}
	svc := newTestService(t, newMemoryRepo(1), archive)

	_, err := svc.SnapshotReport(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket gone")
}
