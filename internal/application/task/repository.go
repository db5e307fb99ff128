package task

import (
	"context"

	"github.com/rezkam/tasks/internal/domain"
)

// Repository defines storage operations for tasks.
// All create/update operations return the entity as persisted.
type Repository interface {
	// Insert stores a new task. Nil status/priority take the entity defaults.
	// Returns domain.ErrUnknownGenre if GenreID does not reference a genre.
	Insert(ctx context.Context, task domain.NewTask) (*domain.Task, error)

	// FindByID retrieves a single task.
	// Returns domain.ErrTaskNotFound if the task doesn't exist.
	FindByID(ctx context.Context, id int64) (*domain.Task, error)

	// All returns every task ordered by id.
	All(ctx context.Context) ([]domain.Task, error)

	// UpdateByID replaces the fields named in params.UpdateMask.
	// Returns domain.ErrTaskNotFound if the task doesn't exist.
	// Returns domain.ErrUnknownGenre if a new GenreID does not reference a genre.
	UpdateByID(ctx context.Context, params domain.UpdateTaskParams) (*domain.Task, error)

	// DeleteByID removes a task permanently.
	// Returns domain.ErrTaskNotFound if the task doesn't exist.
	DeleteByID(ctx context.Context, id int64) error
}

// ReportArchive stores report snapshots.
type ReportArchive interface {
	// Save persists a snapshot, overwriting one with the same ID.
	Save(ctx context.Context, snapshot domain.ReportSnapshot) error

	// List returns every archived snapshot in no particular order.
	List(ctx context.Context) ([]domain.ReportSnapshot, error)
}
