package domain

import (
	"encoding/json"
	"fmt"
)

// Priority is the low/medium/high ordinal attribute of a task.
// Value object - closed set backed by a stable integer code.
type Priority int

const (
	PriorityLow    Priority = 0
	PriorityMedium Priority = 1
	PriorityHigh   Priority = 2
)

// DefaultPriority is applied when a task is created without a priority.
const DefaultPriority = PriorityMedium

var priorityLabels = map[Priority]string{
	PriorityLow:    "low",
	PriorityMedium: "medium",
	PriorityHigh:   "high",
}

// ParsePriority validates and creates a Priority from an integer code,
// a numeric string, or a symbolic label ("low", "medium", "high").
func ParsePriority(raw any) (Priority, error) {
	code, label, err := splitEnumInput(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPriority, raw)
	}

	if label != "" {
		for p, l := range priorityLabels {
			if l == label {
				return p, nil
			}
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidPriority, label)
	}

	p := Priority(code)
	if _, ok := priorityLabels[p]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPriority, code)
	}
	return p, nil
}

// Code returns the stable integer code.
func (p Priority) Code() int {
	return int(p)
}

// Label returns the symbolic name.
func (p Priority) Label() string {
	return priorityLabels[p]
}

// String implements fmt.Stringer.
func (p Priority) String() string {
	if l := p.Label(); l != "" {
		return l
	}
	return fmt.Sprintf("Priority(%d)", int(p))
}

// MarshalJSON encodes the priority as its integer code.
func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Code())
}

// UnmarshalJSON accepts an integer code, a numeric string or a label.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParsePriority(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
