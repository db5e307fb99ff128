package domain

import (
	"errors"
	"testing"

	"github.com/rezkam/tasks/internal/ptr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// UpdateTaskParams.Validate() Tests
// =============================================================================

func TestUpdateTaskParams_Validate_UnknownField(t *testing.T) {
	tests := []struct {
		name    string
		mask    []string
		wantErr bool
	}{
		{
			name:    "valid field name",
			mask:    []string{"name"},
			wantErr: false,
		},
		{
			name:    "valid multiple fields",
			mask:    []string{"name", "explanation", "status", "priority", "genre_id", "deadline_date"},
			wantErr: false,
		},
		{
			name:    "unknown field typo",
			mask:    []string{"nmae"},
			wantErr: true,
		},
		{
			name:    "unknown field mixed with valid",
			mask:    []string{"name", "unknown_field"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := UpdateTaskParams{
				TaskID:       1,
				UpdateMask:   tt.mask,
				Name:         ptr.To("Valid"),
				Status:       ptr.To(StatusInProgress),
				Priority:     ptr.To(PriorityHigh),
				GenreID:      ptr.To(int64(2)),
				DeadlineDate: &Date{Year: 2025, Month: 1, Day: 2},
			}

			err := params.Validate()

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownField)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateTaskParams_Validate_EmptyMask(t *testing.T) {
	err := UpdateTaskParams{TaskID: 1}.Validate()
	assert.ErrorIs(t, err, ErrEmptyUpdateMask)
}

func TestUpdateTaskParams_Validate_RequiredValues(t *testing.T) {
	for _, field := range []string{FieldName, FieldStatus, FieldPriority, FieldGenreID} {
		t.Run(field, func(t *testing.T) {
			err := UpdateTaskParams{TaskID: 1, UpdateMask: []string{field}}.Validate()
			assert.ErrorIs(t, err, ErrFieldValueRequired)
		})
	}

	// Nullable fields may be cleared.
	for _, field := range []string{FieldExplanation, FieldDeadlineDate} {
		t.Run(field, func(t *testing.T) {
			err := UpdateTaskParams{TaskID: 1, UpdateMask: []string{field}}.Validate()
			assert.False(t, errors.Is(err, ErrFieldValueRequired))
			assert.NoError(t, err)
		})
	}
}

func TestUpdateTaskParams_Apply(t *testing.T) {
	original := Task{
		ID:           9,
		Name:         "Write report",
		Explanation:  ptr.To("quarterly"),
		Status:       StatusNotStarted,
		Priority:     PriorityLow,
		GenreID:      1,
		DeadlineDate: &Date{Year: 2025, Month: 3, Day: 31},
	}

	t.Run("only masked fields change", func(t *testing.T) {
		updated := UpdateTaskParams{
			TaskID:     9,
			UpdateMask: []string{FieldStatus},
			Status:     ptr.To(StatusCompleted),
			Name:       ptr.To("ignored"),
		}.Apply(original)

		assert.Equal(t, StatusCompleted, updated.Status)
		assert.Equal(t, "Write report", updated.Name)
		assert.Equal(t, PriorityLow, updated.Priority)
		assert.Equal(t, StatusNotStarted, original.Status, "source must not be mutated")
	})

	t.Run("nil clears nullable fields", func(t *testing.T) {
		updated := UpdateTaskParams{
			TaskID:     9,
			UpdateMask: []string{FieldExplanation, FieldDeadlineDate},
		}.Apply(original)

		assert.Nil(t, updated.Explanation)
		assert.Nil(t, updated.DeadlineDate)
	})
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: 2, Day: 29}, d)
	assert.Equal(t, "2024-02-29", d.String())

	d, err = ParseDate("2024-05-01T23:30:00-02:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-02", d.String(), "timestamp is reduced to its UTC date")

	for _, bad := range []string{"", "tomorrow", "2023-02-29", "2024/01/01"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, bad)
	}
}

func TestNewTask_Defaults(t *testing.T) {
	n := NewTask{Name: "x"}
	assert.Equal(t, InitialStatus, n.EffectiveStatus())
	assert.Equal(t, DefaultPriority, n.EffectivePriority())

	n.Status = ptr.To(StatusInProgress)
	n.Priority = ptr.To(PriorityHigh)
	assert.Equal(t, StatusInProgress, n.EffectiveStatus())
	assert.Equal(t, PriorityHigh, n.EffectivePriority())
}
