package task

import (
	"math"

	"github.com/rezkam/tasks/internal/domain"
)

// Decimal places of the completion rate in each view.
const (
	statsRatePrecision  = 2
	reportRatePrecision = 1
)

// ComputeStats aggregates tasks into a sparse per-status view.
// Only status codes that occur appear in StatusCounts.
func ComputeStats(tasks []domain.Task) domain.Stats {
	counts := make(map[domain.Status]int)
	for _, t := range tasks {
		counts[t.Status]++
	}

	return domain.Stats{
		TotalCount:     len(tasks),
		StatusCounts:   counts,
		CompletionRate: completionRate(counts[domain.StatusCompleted], len(tasks), statsRatePrecision),
	}
}

// completionRate is completed/total as a percentage, 0 for an empty set.
func completionRate(completed, total, places int) float64 {
	if total == 0 {
		return 0
	}
	return roundHalfUp(100*float64(completed)/float64(total), places)
}

// roundHalfUp rounds non-negative v to the given decimal places,
// ties away from zero.
func roundHalfUp(v float64, places int) float64 {
	scale := math.Pow10(places)
	return math.Round(v*scale) / scale
}
