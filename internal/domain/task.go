package domain

import "time"

// Task is the primary tracked work item.
type Task struct {
	ID          int64
	Name        string
	Explanation *string // Optional
	Status      Status
	Priority    Priority

	// Genre relationship, required for persistence
	GenreID int64

	DeadlineDate *Date // Optional

	// Set by the persistence layer, always UTC
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTask is a validated creation request handed to the repository.
// Nil Status/Priority mean "not supplied": the entity defaults apply.
type NewTask struct {
	Name         string
	Explanation  *string
	Status       *Status
	Priority     *Priority
	GenreID      *int64
	DeadlineDate *Date
}

// EffectiveStatus returns the status the task will be stored with.
func (n NewTask) EffectiveStatus() Status {
	if n.Status == nil {
		return InitialStatus
	}
	return *n.Status
}

// EffectivePriority returns the priority the task will be stored with.
func (n NewTask) EffectivePriority() Priority {
	if n.Priority == nil {
		return DefaultPriority
	}
	return *n.Priority
}
