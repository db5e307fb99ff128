package domain

import "time"

// Stats is the sparse per-status view over the task collection.
// StatusCounts only holds codes that occur at least once.
type Stats struct {
	TotalCount     int            `json:"totalCount"`
	StatusCounts   map[Status]int `json:"statusCounts"`
	CompletionRate float64        `json:"completionRate"`
}

// StatusBuckets is the fixed three-bucket breakdown used by Report.
// Unnamed status codes are counted in none of the buckets.
type StatusBuckets struct {
	NotStarted int `json:"notStarted"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
}

// Report is the bucketed view over the task collection.
type Report struct {
	TotalCount     int           `json:"totalCount"`
	CountByStatus  StatusBuckets `json:"countByStatus"`
	CompletionRate float64       `json:"completionRate"`
}

// ReportSnapshot is a Report archived at a point in time.
type ReportSnapshot struct {
	ID      string    `json:"id"`
	TakenAt time.Time `json:"takenAt"`
	Report  Report    `json:"report"`
}
