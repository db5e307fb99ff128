// Package compliance holds the behavioral test suite every repository
// driver must pass.
package compliance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezkam/tasks/internal/application/genre"
	"github.com/rezkam/tasks/internal/application/task"
	"github.com/rezkam/tasks/internal/domain"
	"github.com/rezkam/tasks/internal/ptr"
)

// Store is the full repository surface of a persistence driver.
type Store interface {
	task.Repository
	genre.Repository
}

// RunRepositoryComplianceTest runs a standard set of tests against a Store
// implementation. setup must return a fresh, empty store and register its
// own cleanup on t.
func RunRepositoryComplianceTest(t *testing.T, setup func(t *testing.T) Store) {
	t.Run("InsertAppliesDefaults", func(t *testing.T) {
		store := setup(t)
		ctx := context.Background()
		g := mustGenre(t, store, "仕事")

		created, err := store.Insert(ctx, domain.NewTask{Name: "defaults", GenreID: &g.ID})
		require.NoError(t, err)

		assert.Positive(t, created.ID)
		assert.Equal(t, "defaults", created.Name)
		assert.Nil(t, created.Explanation)
		assert.Equal(t, domain.StatusNotStarted, created.Status)
		assert.Equal(t, domain.PriorityMedium, created.Priority)
		assert.Equal(t, g.ID, created.GenreID)
		assert.Nil(t, created.DeadlineDate)
		assert.False(t, created.CreatedAt.IsZero())
		assert.False(t, created.UpdatedAt.IsZero())
	})

	t.Run("InsertRoundTripsAllFields", func(t *testing.T) {
		store := setup(t)
		ctx := context.Background()
		g := mustGenre(t, store, "home")

		created, err := store.Insert(ctx, domain.NewTask{
			Name:         "テストタスク",
			Explanation:  ptr.To("テストの説明"),
			Status:       ptr.To(domain.Status(3)),
			Priority:     ptr.To(domain.PriorityHigh),
			GenreID:      &g.ID,
			DeadlineDate: &domain.Date{Year: 2025, Month: 12, Day: 31},
		})
		require.NoError(t, err)

		found, err := store.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "テストタスク", found.Name)
		require.NotNil(t, found.Explanation)
		assert.Equal(t, "テストの説明", *found.Explanation)
		assert.Equal(t, 3, found.Status.Code())
		assert.Equal(t, domain.PriorityHigh, found.Priority)
		require.NotNil(t, found.DeadlineDate)
		assert.Equal(t, "2025-12-31", found.DeadlineDate.String())
	})

	t.Run("InsertUnknownGenre", func(t *testing.T) {
		store := setup(t)
		ctx := context.Background()

		_, err := store.Insert(ctx, domain.NewTask{Name: "orphan", GenreID: ptr.To(int64(999999))})
		assert.ErrorIs(t, err, domain.ErrUnknownGenre)
		assert.ErrorIs(t, err, domain.ErrMissingRequiredReference)

		all, err := store.All(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("FindMissingTask", func(t *testing.T) {
		store := setup(t)

		_, err := store.FindByID(context.Background(), 424242)
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	})

	t.Run("AllOrderedByID", func(t *testing.T) {
		store := setup(t)
		ctx := context.Background()
		g := mustGenre(t, store, "g")

		all, err := store.All(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)

		for _, name := range []string{"c", "a", "b"} {
			_, err := store.Insert(ctx, domain.NewTask{Name: name, GenreID: &g.ID})
			require.NoError(t, err)
		}

		all, err = store.All(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []string{"c", "a", "b"}, []string{all[0].Name, all[1].Name, all[2].Name})
		assert.Less(t, all[0].ID, all[1].ID)
		assert.Less(t, all[1].ID, all[2].ID)
	})

	t.Run("UpdateOnlyMaskedFields", func(t *testing.T) {
		store := setup(t)
		ctx := context.Background()
		g := mustGenre(t, store, "g")
		other := mustGenre(t, store, "other")

		created, err := store.Insert(ctx, domain.NewTask{
			Name:         "original",
			Explanation:  ptr.To("keep"),
			Priority:     ptr.To(domain.PriorityLow),
			GenreID:      &g.ID,
			DeadlineDate: &domain.Date{Year: 2025, Month: 1, Day: 1},
		})
		require.NoError(t, err)

		updated, err := store.UpdateByID(ctx, domain.UpdateTaskParams{
			TaskID:     created.ID,
			UpdateMask: []string{domain.FieldPriority, domain.FieldGenreID},
			Priority:   ptr.To(domain.PriorityHigh),
			GenreID:    &other.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.PriorityHigh, updated.Priority)
		assert.Equal(t, other.ID, updated.GenreID)
		assert.Equal(t, "original", updated.Name)
		assert.Equal(t, "keep", *updated.Explanation)
		assert.Equal(t, domain.StatusNotStarted, updated.Status)

		cleared, err := store.UpdateByID(ctx, domain.UpdateTaskParams{
			TaskID:     created.ID,
			UpdateMask: []string{domain.FieldExplanation, domain.FieldDeadlineDate},
		})
		require.NoError(t, err)
		assert.Nil(t, cleared.Explanation)
		assert.Nil(t, cleared.DeadlineDate)

		found, err := store.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, *cleared, *found)
	})

	t.Run("UpdateMissingTask", func(t *testing.T) {
		store := setup(t)

		_, err := store.UpdateByID(context.Background(), domain.UpdateTaskParams{
			TaskID:     424242,
			UpdateMask: []string{domain.FieldStatus},
			Status:     ptr.To(domain.StatusCompleted),
		})
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	})

	t.Run("UpdateUnknownGenre", func(t *testing.T) {
		store := setup(t)
		ctx := context.Background()
		g := mustGenre(t, store, "g")

		created, err := store.Insert(ctx, domain.NewTask{Name: "x", GenreID: &g.ID})
		require.NoError(t, err)

		_, err = store.UpdateByID(ctx, domain.UpdateTaskParams{
			TaskID:     created.ID,
			UpdateMask: []string{domain.FieldGenreID},
			GenreID:    ptr.To(int64(999999)),
		})
		assert.ErrorIs(t, err, domain.ErrUnknownGenre)

		found, err := store.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, g.ID, found.GenreID, "failed update must not change the row")
	})

	t.Run("DeleteTask", func(t *testing.T) {
		store := setup(t)
		ctx := context.Background()
		g := mustGenre(t, store, "g")

		created, err := store.Insert(ctx, domain.NewTask{Name: "doomed", GenreID: &g.ID})
		require.NoError(t, err)

		require.NoError(t, store.DeleteByID(ctx, created.ID))

		_, err = store.FindByID(ctx, created.ID)
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)

		err = store.DeleteByID(ctx, created.ID)
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	})

	t.Run("GenreLifecycle", func(t *testing.T) {
		store := setup(t)
		ctx := context.Background()

		first := mustGenre(t, store, "first")
		second := mustGenre(t, store, "second")

		genres, err := store.ListGenres(ctx)
		require.NoError(t, err)
		require.Len(t, genres, 2)
		assert.Equal(t, first.ID, genres[0].ID)
		assert.Equal(t, "second", genres[1].Name)

		found, err := store.FindGenreByID(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, "second", found.Name)
		assert.False(t, found.CreatedAt.IsZero())

		_, err = store.FindGenreByID(ctx, 424242)
		assert.ErrorIs(t, err, domain.ErrGenreNotFound)

		require.NoError(t, store.DeleteGenre(ctx, second.ID))
		assert.ErrorIs(t, store.DeleteGenre(ctx, second.ID), domain.ErrGenreNotFound)
	})

	t.Run("DeleteGenreInUse", func(t *testing.T) {
		store := setup(t)
		ctx := context.Background()
		g := mustGenre(t, store, "busy")

		created, err := store.Insert(ctx, domain.NewTask{Name: "x", GenreID: &g.ID})
		require.NoError(t, err)

		assert.ErrorIs(t, store.DeleteGenre(ctx, g.ID), domain.ErrGenreInUse)

		require.NoError(t, store.DeleteByID(ctx, created.ID))
		assert.NoError(t, store.DeleteGenre(ctx, g.ID))
	})
}

func mustGenre(t *testing.T, store Store, name string) *domain.Genre {
	t.Helper()
	g, err := store.CreateGenre(context.Background(), name)
	require.NoError(t, err)
	return g
}
