package domain

import (
	"errors"
	"fmt"
)

// Field names accepted in UpdateTaskParams.UpdateMask.
const (
	FieldName         = "name"
	FieldExplanation  = "explanation"
	FieldStatus       = "status"
	FieldPriority     = "priority"
	FieldGenreID      = "genre_id"
	FieldDeadlineDate = "deadline_date"
)

var (
	ErrEmptyUpdateMask    = errors.New("update mask is empty")
	ErrUnknownField       = errors.New("unknown field in update mask")
	ErrFieldValueRequired = errors.New("field in update mask requires a value")
)

// UpdateTaskParams replaces the fields listed in UpdateMask.
// Explanation and DeadlineDate may be nil in the mask, which clears them.
type UpdateTaskParams struct {
	TaskID     int64
	UpdateMask []string

	Name         *string
	Explanation  *string
	Status       *Status
	Priority     *Priority
	GenreID      *int64
	DeadlineDate *Date
}

var updateTaskValidFields = map[string]struct{}{
	FieldName:         {},
	FieldExplanation:  {},
	FieldStatus:       {},
	FieldPriority:     {},
	FieldGenreID:      {},
	FieldDeadlineDate: {},
}

// Has reports whether field is part of the update mask.
func (p UpdateTaskParams) Has(field string) bool {
	for _, f := range p.UpdateMask {
		if f == field {
			return true
		}
	}
	return false
}

// Validate checks that UpdateMask contains only known fields and that
// non-nullable fields have values when included in the mask.
func (p UpdateTaskParams) Validate() error {
	if len(p.UpdateMask) == 0 {
		return ErrEmptyUpdateMask
	}

	for _, field := range p.UpdateMask {
		if _, ok := updateTaskValidFields[field]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	required := map[string]bool{
		FieldName:     p.Name != nil,
		FieldStatus:   p.Status != nil,
		FieldPriority: p.Priority != nil,
		FieldGenreID:  p.GenreID != nil,
	}
	for field, ok := range required {
		if p.Has(field) && !ok {
			return fmt.Errorf("%w: %s", ErrFieldValueRequired, field)
		}
	}

	return nil
}

// Apply returns a copy of t with the masked fields replaced.
func (p UpdateTaskParams) Apply(t Task) Task {
	if p.Has(FieldName) {
		t.Name = *p.Name
	}
	if p.Has(FieldExplanation) {
		t.Explanation = p.Explanation
	}
	if p.Has(FieldStatus) {
		t.Status = *p.Status
	}
	if p.Has(FieldPriority) {
		t.Priority = *p.Priority
	}
	if p.Has(FieldGenreID) {
		t.GenreID = *p.GenreID
	}
	if p.Has(FieldDeadlineDate) {
		t.DeadlineDate = p.DeadlineDate
	}
	return t
}
