package domain

import (
	"errors"
	"fmt"
)

// Error families. Concrete errors below wrap one of these so callers can
// match either the family or the specific case with errors.Is.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidEnumValue indicates a priority or status literal outside the closed set.
	ErrInvalidEnumValue = errors.New("invalid enum value")

	// ErrMissingRequiredReference indicates a task cannot be persisted because
	// the genre it must belong to is absent.
	ErrMissingRequiredReference = errors.New("missing required reference")

	// ErrMalformedIdentifier indicates an identifier that is not a positive integer.
	ErrMalformedIdentifier = errors.New("malformed identifier")
)

// Enum errors.
var (
	ErrInvalidPriority = fmt.Errorf("%w: priority", ErrInvalidEnumValue)
	ErrInvalidStatus   = fmt.Errorf("%w: status", ErrInvalidEnumValue)
)

// Task errors.
var (
	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)

	// ErrGenreRequired is returned when a task is created without genreId.
	ErrGenreRequired = fmt.Errorf("%w: genre is required", ErrMissingRequiredReference)

	// ErrUnknownGenre is returned when genreId points at a genre that does not exist.
	ErrUnknownGenre = fmt.Errorf("%w: genre does not exist", ErrMissingRequiredReference)

	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrInvalidFieldValue is returned when a payload field has an unusable JSON type.
	ErrInvalidFieldValue = errors.New("invalid field value")
)

// Genre errors.
var (
	ErrGenreNotFound     = fmt.Errorf("%w: genre", ErrNotFound)
	ErrGenreNameRequired = errors.New("genre name is required")
	ErrGenreNameTooLong  = errors.New("genre name must be 255 characters or less")
	ErrGenreInUse        = errors.New("genre still has tasks")
)
