// Package compliance holds the behavioral test suite every report archive
// must pass.
package compliance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezkam/tasks/internal/application/task"
	"github.com/rezkam/tasks/internal/domain"
)

// RunArchiveComplianceTest runs a standard set of tests against a ReportArchive.
// setup returns a fresh, empty archive and a cleanup function.
func RunArchiveComplianceTest(t *testing.T, setup func() (task.ReportArchive, func())) {
	t.Run("EmptyArchive", func(t *testing.T) {
		archive, teardown := setup()
		defer teardown()

		snapshots, err := archive.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, snapshots)
	})

	t.Run("SaveAndList", func(t *testing.T) {
		archive, teardown := setup()
		defer teardown()
		ctx := context.Background()

		snapshot := newSnapshot(t, time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC), domain.Report{
			TotalCount:     3,
			CountByStatus:  domain.StatusBuckets{NotStarted: 2, Completed: 1},
			CompletionRate: 33.3,
		})
		require.NoError(t, archive.Save(ctx, snapshot))

		snapshots, err := archive.List(ctx)
		require.NoError(t, err)
		require.Len(t, snapshots, 1)
		assert.Equal(t, snapshot.ID, snapshots[0].ID)
		assert.True(t, snapshot.TakenAt.Equal(snapshots[0].TakenAt))
		assert.Equal(t, snapshot.Report, snapshots[0].Report)
	})

	t.Run("SaveOverwritesSameID", func(t *testing.T) {
		archive, teardown := setup()
		defer teardown()
		ctx := context.Background()

		snapshot := newSnapshot(t, time.Now().UTC(), domain.Report{TotalCount: 1})
		require.NoError(t, archive.Save(ctx, snapshot))

		snapshot.Report.TotalCount = 2
		require.NoError(t, archive.Save(ctx, snapshot))

		snapshots, err := archive.List(ctx)
		require.NoError(t, err)
		require.Len(t, snapshots, 1)
		assert.Equal(t, 2, snapshots[0].Report.TotalCount)
	})

	t.Run("ListMany", func(t *testing.T) {
		archive, teardown := setup()
		defer teardown()
		ctx := context.Background()

		const count = 45
		ids := make(map[string]bool, count)
		base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		for i := range count {
			s := newSnapshot(t, base.Add(time.Duration(i)*time.Hour), domain.Report{TotalCount: i})
			require.NoError(t, archive.Save(ctx, s), fmt.Sprintf("snapshot %d", i))
			ids[s.ID] = true
		}

		snapshots, err := archive.List(ctx)
		require.NoError(t, err)
		require.Len(t, snapshots, count)
		for _, s := range snapshots {
			assert.True(t, ids[s.ID], "unexpected snapshot %s", s.ID)
		}
	})
}

func newSnapshot(t *testing.T, takenAt time.Time, report domain.Report) domain.ReportSnapshot {
	t.Helper()
	id, err := uuid.NewV7()
	require.NoError(t, err)
	return domain.ReportSnapshot{ID: id.String(), TakenAt: takenAt, Report: report}
}
