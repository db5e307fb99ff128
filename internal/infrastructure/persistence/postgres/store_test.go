package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezkam/tasks/internal/config"
	"github.com/rezkam/tasks/internal/domain"
	"github.com/rezkam/tasks/internal/infrastructure/persistence/compliance"
)

// openTestStore connects to TASKS_TEST_DB_DSN and empties both tables.
func openTestStore(t *testing.T) *Store {
	t.Helper()

	cfg, err := config.LoadTestConfig()
	if err != nil {
		t.Skipf("Failed to load test config: %v (set TASKS_TEST_DB_DSN to run PostgreSQL tests)", err)
	}

	ctx := context.Background()
	store, err := NewPostgresStore(ctx, cfg.DSN)
	require.NoError(t, err)

	truncate := func() {
		_, err := store.Pool().Exec(ctx, "TRUNCATE TABLE tasks, genres RESTART IDENTITY CASCADE")
		require.NoError(t, err)
	}
	truncate()
	t.Cleanup(func() {
		truncate()
		_ = store.Close()
	})

	return store
}

func TestPostgresStore_Compliance(t *testing.T) {
	compliance.RunRepositoryComplianceTest(t, func(t *testing.T) compliance.Store {
		return openTestStore(t)
	})
}

func TestIsForeignKeyViolation(t *testing.T) {
	fk := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: fkTaskGenre}

	assert.True(t, isForeignKeyViolation(fk, ""))
	assert.True(t, isForeignKeyViolation(fmt.Errorf("wrapped: %w", fk), fkTaskGenre))
	assert.False(t, isForeignKeyViolation(fk, "other_fkey"))
	assert.False(t, isForeignKeyViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation}, ""))
	assert.False(t, isForeignKeyViolation(errors.New("plain"), ""))
}

func TestCheckRowsAffected(t *testing.T) {
	assert.NoError(t, checkRowsAffected(1, domain.ErrTaskNotFound, 5))

	err := checkRowsAffected(0, domain.ErrTaskNotFound, 5)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "5")
}

func TestDateConversion(t *testing.T) {
	assert.False(t, dateToPG(nil).Valid)
	assert.Nil(t, dateFromPG(dateToPG(nil)))

	d := &domain.Date{Year: 2025, Month: 12, Day: 31}
	back := dateFromPG(dateToPG(d))
	require.NotNil(t, back)
	assert.Equal(t, *d, *back)
}
