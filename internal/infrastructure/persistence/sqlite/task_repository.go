package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rezkam/tasks/internal/domain"
)

const taskColumns = `id, name, explanation, status, priority, genre_id, deadline_date, created_at, updated_at`

// timeLayout is how timestamps are stored in TEXT columns.
const timeLayout = time.RFC3339Nano

type taskRow struct {
	ID           int64          `db:"id"`
	Name         string         `db:"name"`
	Explanation  sql.NullString `db:"explanation"`
	Status       int            `db:"status"`
	Priority     int            `db:"priority"`
	GenreID      int64          `db:"genre_id"`
	DeadlineDate sql.NullString `db:"deadline_date"`
	CreatedAt    string         `db:"created_at"`
	UpdatedAt    string         `db:"updated_at"`
}

func (r taskRow) toDomain() (domain.Task, error) {
	t := domain.Task{
		ID:       r.ID,
		Name:     r.Name,
		Status:   domain.Status(r.Status),
		Priority: domain.Priority(r.Priority),
		GenreID:  r.GenreID,
	}

	if r.Explanation.Valid {
		explanation := r.Explanation.String
		t.Explanation = &explanation
	}

	if r.DeadlineDate.Valid {
		d, err := domain.ParseDate(r.DeadlineDate.String)
		if err != nil {
			return domain.Task{}, fmt.Errorf("task %d: %w", r.ID, err)
		}
		t.DeadlineDate = &d
	}

	var err error
	if t.CreatedAt, err = time.Parse(timeLayout, r.CreatedAt); err != nil {
		return domain.Task{}, fmt.Errorf("task %d: invalid created_at: %w", r.ID, err)
	}
	if t.UpdatedAt, err = time.Parse(timeLayout, r.UpdatedAt); err != nil {
		return domain.Task{}, fmt.Errorf("task %d: invalid updated_at: %w", r.ID, err)
	}
	return t, nil
}

// Insert stores a new task.
func (s *Store) Insert(ctx context.Context, newTask domain.NewTask) (*domain.Task, error) {
	if newTask.GenreID == nil {
		return nil, domain.ErrGenreRequired
	}

	now := s.now().Format(timeLayout)
	var row taskRow
	err := s.q.GetContext(ctx, &row, `
		INSERT INTO tasks (name, explanation, status, priority, genre_id, deadline_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+taskColumns,
		newTask.Name,
		nullString(newTask.Explanation),
		newTask.EffectiveStatus().Code(),
		newTask.EffectivePriority().Code(),
		*newTask.GenreID,
		nullDate(newTask.DeadlineDate),
		now,
		now,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: %d: %w", domain.ErrUnknownGenre, *newTask.GenreID, err)
		}
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}

	return toDomainPtr(row)
}

// FindByID retrieves a single task.
func (s *Store) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	var row taskRow
	err := s.q.GetContext(ctx, &row, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", domain.ErrTaskNotFound, id)
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return toDomainPtr(row)
}

// All returns every task ordered by id.
func (s *Store) All(ctx context.Context) ([]domain.Task, error) {
	var rows []taskRow
	if err := s.q.SelectContext(ctx, &rows, `SELECT `+taskColumns+` FROM tasks ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, r := range rows {
		t, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// UpdateByID applies the masked fields inside a transaction.
func (s *Store) UpdateByID(ctx context.Context, params domain.UpdateTaskParams) (*domain.Task, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Task
	err := s.executeInTransaction(ctx, "update_task", func(tx *Store) error {
		current, err := tx.FindByID(ctx, params.TaskID)
		if err != nil {
			return err
		}

		next := params.Apply(*current)
		var row taskRow
		err = tx.q.GetContext(ctx, &row, `
			UPDATE tasks
			SET name = ?, explanation = ?, status = ?, priority = ?,
			    genre_id = ?, deadline_date = ?, updated_at = ?
			WHERE id = ?
			RETURNING `+taskColumns,
			next.Name,
			nullString(next.Explanation),
			next.Status.Code(),
			next.Priority.Code(),
			next.GenreID,
			nullDate(next.DeadlineDate),
			tx.now().Format(timeLayout),
			next.ID,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: %d: %w", domain.ErrUnknownGenre, next.GenreID, err)
			}
			return fmt.Errorf("failed to update task: %w", err)
		}

		updated, err = toDomainPtr(row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteByID removes a task permanently.
func (s *Store) DeleteByID(ctx context.Context, id int64) error {
	res, err := s.q.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return checkRowsAffected(res, domain.ErrTaskNotFound, id)
}

func toDomainPtr(r taskRow) (*domain.Task, error) {
	t, err := r.toDomain()
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullDate(d *domain.Date) sql.NullString {
	if d == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: d.String(), Valid: true}
}
