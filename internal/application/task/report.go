package task

import "github.com/rezkam/tasks/internal/domain"

// ComputeReport aggregates tasks into the fixed three-bucket view.
// Unnamed status codes count toward TotalCount only.
func ComputeReport(tasks []domain.Task) domain.Report {
	var buckets domain.StatusBuckets
	for _, t := range tasks {
		switch t.Status {
		case domain.StatusNotStarted:
			buckets.NotStarted++
		case domain.StatusInProgress:
			buckets.InProgress++
		case domain.StatusCompleted:
			buckets.Completed++
		}
	}

	return domain.Report{
		TotalCount:     len(tasks),
		CountByStatus:  buckets,
		CompletionRate: completionRate(buckets.Completed, len(tasks), reportRatePrecision),
	}
}
