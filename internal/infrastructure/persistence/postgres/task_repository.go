package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/rezkam/tasks/internal/domain"
)

// fkTaskGenre is the constraint PostgreSQL generates for tasks.genre_id.
const fkTaskGenre = "tasks_genre_id_fkey"

const taskColumns = `id, name, explanation, status, priority, genre_id, deadline_date, created_at, updated_at`

// Insert stores a new task.
func (s *Store) Insert(ctx context.Context, newTask domain.NewTask) (*domain.Task, error) {
	if newTask.GenreID == nil {
		return nil, domain.ErrGenreRequired
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO tasks (name, explanation, status, priority, genre_id, deadline_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+taskColumns,
		newTask.Name,
		newTask.Explanation,
		int16(newTask.EffectiveStatus().Code()),
		int16(newTask.EffectivePriority().Code()),
		*newTask.GenreID,
		dateToPG(newTask.DeadlineDate),
	)

	created, err := scanTask(row)
	if err != nil {
		if isForeignKeyViolation(err, fkTaskGenre) {
			return nil, fmt.Errorf("%w: %d: %w", domain.ErrUnknownGenre, *newTask.GenreID, err)
		}
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}
	return created, nil
}

// FindByID retrieves a single task.
func (s *Store) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	row := s.db.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)

	found, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", domain.ErrTaskNotFound, id)
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return found, nil
}

// All returns every task ordered by id.
func (s *Store) All(ctx context.Context) ([]domain.Task, error) {
	rows, err := s.db.Query(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Task, error) {
		t, err := scanTask(row)
		if err != nil {
			return domain.Task{}, err
		}
		return *t, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan tasks: %w", err)
	}
	return tasks, nil
}

// UpdateByID locks the row, applies the masked fields and writes them back
// in a single transaction.
func (s *Store) UpdateByID(ctx context.Context, params domain.UpdateTaskParams) (*domain.Task, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Task
	err := s.executeInTransaction(ctx, "update_task", func(tx *Store) error {
		row := tx.db.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1 FOR UPDATE`, params.TaskID)
		current, err := scanTask(row)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("%w: %d", domain.ErrTaskNotFound, params.TaskID)
			}
			return fmt.Errorf("failed to load task: %w", err)
		}

		next := params.Apply(*current)
		row = tx.db.QueryRow(ctx, `
			UPDATE tasks
			SET name = $2, explanation = $3, status = $4, priority = $5,
			    genre_id = $6, deadline_date = $7, updated_at = now()
			WHERE id = $1
			RETURNING `+taskColumns,
			next.ID,
			next.Name,
			next.Explanation,
			int16(next.Status.Code()),
			int16(next.Priority.Code()),
			next.GenreID,
			dateToPG(next.DeadlineDate),
		)

		updated, err = scanTask(row)
		if err != nil {
			if isForeignKeyViolation(err, fkTaskGenre) {
				return fmt.Errorf("%w: %d: %w", domain.ErrUnknownGenre, next.GenreID, err)
			}
			return fmt.Errorf("failed to update task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteByID removes a task permanently.
func (s *Store) DeleteByID(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return checkRowsAffected(tag.RowsAffected(), domain.ErrTaskNotFound, id)
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var (
		t        domain.Task
		status   int16
		priority int16
		deadline pgtype.Date
	)

	if err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Explanation,
		&status,
		&priority,
		&t.GenreID,
		&deadline,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return nil, err
	}

	t.Status = domain.Status(status)
	t.Priority = domain.Priority(priority)
	t.DeadlineDate = dateFromPG(deadline)
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return &t, nil
}

func dateToPG(d *domain.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: d.Time(), Valid: true}
}

func dateFromPG(d pgtype.Date) *domain.Date {
	if !d.Valid {
		return nil
	}
	date := domain.DateOf(d.Time)
	return &date
}
