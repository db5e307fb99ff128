package handler

import (
	"strconv"
	"time"

	"github.com/rezkam/tasks/internal/domain"
)

// TaskDTO is the wire form of a task.
type TaskDTO struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Explanation  *string      `json:"explanation"`
	Status       int          `json:"status"`
	Priority     int          `json:"priority"`
	GenreID      int64        `json:"genreId"`
	DeadlineDate *domain.Date `json:"deadlineDate"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// GenreDTO is the wire form of a genre.
type GenreDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// StatsDTO uses string keys so an empty map always encodes as {}.
type StatsDTO struct {
	TotalCount     int            `json:"totalCount"`
	StatusCounts   map[string]int `json:"statusCounts"`
	CompletionRate float64        `json:"completionRate"`
}

// MapTaskToDTO converts a domain task to its wire form.
func MapTaskToDTO(t domain.Task) TaskDTO {
	return TaskDTO{
		ID:           t.ID,
		Name:         t.Name,
		Explanation:  t.Explanation,
		Status:       t.Status.Code(),
		Priority:     t.Priority.Code(),
		GenreID:      t.GenreID,
		DeadlineDate: t.DeadlineDate,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// MapTasksToDTO converts a task collection, never returning nil.
func MapTasksToDTO(tasks []domain.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, t := range tasks {
		dtos[i] = MapTaskToDTO(t)
	}
	return dtos
}

// MapGenreToDTO converts a domain genre to its wire form.
func MapGenreToDTO(g domain.Genre) GenreDTO {
	return GenreDTO{ID: g.ID, Name: g.Name, CreatedAt: g.CreatedAt}
}

// MapStatsToDTO keys status counts by their integer code.
func MapStatsToDTO(s domain.Stats) StatsDTO {
	counts := make(map[string]int, len(s.StatusCounts))
	for status, n := range s.StatusCounts {
		counts[strconv.Itoa(status.Code())] = n
	}
	return StatsDTO{
		TotalCount:     s.TotalCount,
		StatusCounts:   counts,
		CompletionRate: s.CompletionRate,
	}
}
