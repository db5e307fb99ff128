package task

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rezkam/tasks/internal/domain"
	"github.com/rezkam/tasks/internal/ptr"
)

func tasksWithStatuses(codes ...int) []domain.Task {
	tasks := make([]domain.Task, 0, len(codes))
	for i, code := range codes {
		tasks = append(tasks, domain.Task{ID: int64(i + 1), Status: domain.Status(code), GenreID: 1})
	}
	return tasks
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name       string
		codes      []int
		wantCounts map[domain.Status]int
		wantRate   float64
	}{
		{
			name:       "empty collection",
			codes:      nil,
			wantCounts: map[domain.Status]int{},
			wantRate:   0,
		},
		{
			name:       "mixed statuses",
			codes:      []int{0, 0, 1, 5, 5},
			wantCounts: map[domain.Status]int{0: 2, 1: 1, 5: 2},
			wantRate:   40.0,
		},
		{
			name:       "unnamed codes are counted",
			codes:      []int{2, 3, 4},
			wantCounts: map[domain.Status]int{2: 1, 3: 1, 4: 1},
			wantRate:   0,
		},
		{
			name:       "two decimals",
			codes:      []int{5, 5, 0},
			wantCounts: map[domain.Status]int{5: 2, 0: 1},
			wantRate:   66.67,
		},
		{
			name:       "all completed",
			codes:      []int{5, 5},
			wantCounts: map[domain.Status]int{5: 2},
			wantRate:   100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := ComputeStats(tasksWithStatuses(tt.codes...))

			assert.Equal(t, len(tt.codes), stats.TotalCount)
			assert.Equal(t, tt.wantCounts, stats.StatusCounts)
			assert.InDelta(t, tt.wantRate, stats.CompletionRate, 1e-9)
		})
	}
}

func TestComputeStats_CountsSumToTotal(t *testing.T) {
	stats := ComputeStats(tasksWithStatuses(0, 1, 2, 3, 4, 5, 5, 1))

	sum := 0
	for _, c := range stats.StatusCounts {
		sum += c
	}
	assert.Equal(t, stats.TotalCount, sum)
}

func TestComputeReport(t *testing.T) {
	tests := []struct {
		name        string
		codes       []int
		wantBuckets domain.StatusBuckets
		wantRate    float64
	}{
		{
			name:        "empty collection",
			codes:       nil,
			wantBuckets: domain.StatusBuckets{},
			wantRate:    0,
		},
		{
			name:        "mixed statuses",
			codes:       []int{0, 0, 1, 5, 5},
			wantBuckets: domain.StatusBuckets{NotStarted: 2, InProgress: 1, Completed: 2},
			wantRate:    40.0,
		},
		{
			name:        "one decimal",
			codes:       []int{0, 0, 5},
			wantBuckets: domain.StatusBuckets{NotStarted: 2, Completed: 1},
			wantRate:    33.3,
		},
		{
			name:        "unnamed codes land in no bucket",
			codes:       []int{3, 5},
			wantBuckets: domain.StatusBuckets{Completed: 1},
			wantRate:    50.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := ComputeReport(tasksWithStatuses(tt.codes...))

			assert.Equal(t, len(tt.codes), report.TotalCount)
			assert.Equal(t, tt.wantBuckets, report.CountByStatus)
			assert.InDelta(t, tt.wantRate, report.CompletionRate, 1e-9)
		})
	}
}

func TestCompletionRate_RoundsHalfUp(t *testing.T) {
	// 1/8 = 12.5%, 1/16 = 6.25%
	assert.InDelta(t, 12.5, completionRate(1, 8, 1), 1e-9)
	assert.InDelta(t, 6.3, completionRate(1, 16, 1), 1e-9)
	assert.InDelta(t, 6.25, completionRate(1, 16, 2), 1e-9)
	assert.InDelta(t, 16.67, completionRate(1, 6, 2), 1e-9)
}

func TestDuplicateOf(t *testing.T) {
	src := domain.Task{
		ID:           11,
		Name:         "オリジナルタスク",
		Explanation:  ptr.To("これはテストタスクです"),
		Status:       domain.StatusCompleted,
		Priority:     domain.PriorityHigh,
		GenreID:      7,
		DeadlineDate: &domain.Date{Year: 2025, Month: 12, Day: 31},
	}

	dup := DuplicateOf(src)

	assert.Equal(t, "オリジナルタスク(コピー)", dup.Name)
	assert.Equal(t, "これはテストタスクです", *dup.Explanation)
	assert.Equal(t, domain.InitialStatus, dup.EffectiveStatus())
	assert.Equal(t, domain.PriorityHigh, dup.EffectivePriority())
	assert.Equal(t, int64(7), *dup.GenreID)
	assert.Nil(t, dup.DeadlineDate)

	// The copy does not alias the source.
	*dup.Explanation = "changed"
	assert.Equal(t, "これはテストタスクです", *src.Explanation)
}

func TestDuplicateOf_SuffixAccumulates(t *testing.T) {
	src := domain.Task{Name: "a", GenreID: 1}
	first := DuplicateOf(src)
	second := DuplicateOf(domain.Task{Name: first.Name, GenreID: 1})
	assert.Equal(t, "a(コピー)(コピー)", second.Name)
}

func TestDuplicateOf_NilExplanation(t *testing.T) {
	dup := DuplicateOf(domain.Task{Name: "", GenreID: 1})
	assert.Nil(t, dup.Explanation)
	assert.Equal(t, "(コピー)", dup.Name)
}
