package task

import "github.com/rezkam/tasks/internal/domain"

// CopySuffix is appended to the name of every duplicated task.
const CopySuffix = "(コピー)"

// DuplicateOf builds the creation request for a copy of src.
// Explanation, genre and priority carry over; status resets to
// domain.InitialStatus and the deadline is dropped.
func DuplicateOf(src domain.Task) domain.NewTask {
	status := domain.InitialStatus
	priority := src.Priority
	genreID := src.GenreID

	var explanation *string
	if src.Explanation != nil {
		e := *src.Explanation
		explanation = &e
	}

	return domain.NewTask{
		Name:         src.Name + CopySuffix,
		Explanation:  explanation,
		Status:       &status,
		Priority:     &priority,
		GenreID:      &genreID,
		DeadlineDate: nil,
	}
}
