package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxGenreNameLength is the maximum genre name length in characters.
const MaxGenreNameLength = 255

// Genre groups tasks. Every task belongs to exactly one genre.
type Genre struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// GenreName is a validated genre name value object (1-255 characters).
type GenreName struct {
	value string
}

// NewGenreName creates a new GenreName, validating the input.
func NewGenreName(s string) (GenreName, error) {
	s = strings.TrimSpace(s)

	if s == "" {
		return GenreName{}, ErrGenreNameRequired
	}

	if utf8.RuneCountInString(s) > MaxGenreNameLength {
		return GenreName{}, ErrGenreNameTooLong
	}

	return GenreName{value: s}, nil
}

// String returns the name value.
func (n GenreName) String() string {
	return n.value
}
