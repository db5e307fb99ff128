package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/rezkam/tasks/internal/application/task"
	"github.com/rezkam/tasks/internal/domain"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []ErrorField `json:"details"`
}

// ErrorField describes a field-specific error.
type ErrorField struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

// BadRequest sends a 400 Bad Request error.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, "INVALID_REQUEST", message, http.StatusBadRequest)
}

// ValidationError sends a 400 validation error with field details.
func ValidationError(w http.ResponseWriter, field, issue string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Error: ErrorDetail{
			Code:    "VALIDATION_ERROR",
			Message: "validation failed",
			Details: []ErrorField{{Field: field, Issue: issue}},
		},
	})
}

// UnprocessableEntity sends a 422 for well-formed requests that cannot be
// persisted, such as a task without a genre.
func UnprocessableEntity(w http.ResponseWriter, field, issue string) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error: ErrorDetail{
			Code:    "UNPROCESSABLE_ENTITY",
			Message: "task could not be saved",
			Details: []ErrorField{{Field: field, Issue: issue}},
		},
	})
}

// NotFound sends a 404 Not Found error.
func NotFound(w http.ResponseWriter, resource string) {
	Error(w, "NOT_FOUND", resource+" not found", http.StatusNotFound)
}

// Conflict sends a 409 Conflict error.
func Conflict(w http.ResponseWriter, message string) {
	Error(w, "CONFLICT", message, http.StatusConflict)
}

// ServiceUnavailable sends a 503 Service Unavailable error.
func ServiceUnavailable(w http.ResponseWriter, message string) {
	Error(w, "UNAVAILABLE", message, http.StatusServiceUnavailable)
}

// InternalError sends a 500 Internal Server Error.
// The error is logged server-side; the client only gets a generic message.
func InternalError(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		slog.ErrorContext(r.Context(), "Internal server error", "error", err)
	}

	Error(w, "INTERNAL_ERROR", "an internal error occurred", http.StatusInternalServerError)
}

// Error sends a generic error response.
func Error(w http.ResponseWriter, code, message string, statusCode int) {
	writeJSON(w, statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: []ErrorField{},
		},
	})
}

// FromDomainError maps domain errors to HTTP responses.
func FromDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	// Validation errors (400)
	case errors.Is(err, domain.ErrInvalidPriority):
		ValidationError(w, "priority", "invalid priority")
	case errors.Is(err, domain.ErrInvalidStatus):
		ValidationError(w, "status", "invalid status")
	case errors.Is(err, domain.ErrInvalidDate):
		ValidationError(w, "deadlineDate", "must be a YYYY-MM-DD date")
	case errors.Is(err, domain.ErrMalformedIdentifier):
		ValidationError(w, "id", "must be a positive integer")
	case errors.Is(err, domain.ErrInvalidFieldValue):
		ValidationError(w, "body", err.Error())
	case errors.Is(err, domain.ErrEmptyUpdateMask):
		ValidationError(w, "body", "no updatable fields supplied")
	case errors.Is(err, domain.ErrFieldValueRequired):
		ValidationError(w, "name", "must not be null")
	case errors.Is(err, domain.ErrGenreNameRequired):
		ValidationError(w, "name", "required field missing")
	case errors.Is(err, domain.ErrGenreNameTooLong):
		ValidationError(w, "name", "must be 255 characters or less")

	// Missing references (422)
	case errors.Is(err, domain.ErrGenreRequired):
		UnprocessableEntity(w, "genreId", "genre is required")
	case errors.Is(err, domain.ErrUnknownGenre):
		UnprocessableEntity(w, "genreId", "genre does not exist")

	// Not found errors (404)
	case errors.Is(err, domain.ErrTaskNotFound):
		NotFound(w, "task")
	case errors.Is(err, domain.ErrGenreNotFound):
		NotFound(w, "genre")
	case errors.Is(err, domain.ErrNotFound):
		NotFound(w, "resource")

	// Conflicts (409)
	case errors.Is(err, domain.ErrGenreInUse):
		Conflict(w, "genre still has tasks")

	case errors.Is(err, task.ErrArchiveUnavailable):
		ServiceUnavailable(w, "report archive is not configured")

	// Unknown errors (500)
	default:
		InternalError(w, r, err)
	}
}
