package domain

import (
	"encoding/json"
	"fmt"
)

// Status is the lifecycle code of a task.
//
// Codes 0..5 are valid. Only not_started (0), in_progress (1) and
// completed (5) carry a label; 2..4 are reserved in-between states that
// stay addressable by their integer code only.
type Status int

const (
	StatusNotStarted Status = 0
	StatusInProgress Status = 1
	StatusCompleted  Status = 5

	minStatusCode = 0
	maxStatusCode = 5
)

// InitialStatus is the status of every newly created or duplicated task.
const InitialStatus = StatusNotStarted

var statusLabels = map[Status]string{
	StatusNotStarted: "not_started",
	StatusInProgress: "in_progress",
	StatusCompleted:  "completed",
}

// ParseStatus validates and creates a Status from an integer code,
// a numeric string, or a label ("not_started", "in_progress", "completed").
func ParseStatus(raw any) (Status, error) {
	code, label, err := splitEnumInput(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidStatus, raw)
	}

	if label != "" {
		for s, l := range statusLabels {
			if l == label {
				return s, nil
			}
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, label)
	}

	if code < minStatusCode || code > maxStatusCode {
		return 0, fmt.Errorf("%w: %d", ErrInvalidStatus, code)
	}
	return Status(code), nil
}

// Code returns the stable integer code.
func (s Status) Code() int {
	return int(s)
}

// Label returns the symbolic name, or "" for unnamed codes.
func (s Status) Label() string {
	return statusLabels[s]
}

// Named reports whether the status has a symbolic label.
func (s Status) Named() bool {
	_, ok := statusLabels[s]
	return ok
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if l := s.Label(); l != "" {
		return l
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// MarshalJSON encodes the status as its integer code.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Code())
}

// UnmarshalJSON accepts an integer code, a numeric string or a label.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
