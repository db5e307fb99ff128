package task

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/rezkam/tasks/internal/domain"
)

// Payload keys accepted by Normalize and NormalizeUpdate.
const (
	KeyName         = "name"
	KeyExplanation  = "explanation"
	KeyStatus       = "status"
	KeyPriority     = "priority"
	KeyGenreID      = "genreId"
	KeyDeadlineDate = "deadlineDate"
)

// RawParams is a flat request payload as decoded from JSON.
// Unknown keys are ignored.
type RawParams map[string]any

// Normalize turns a creation payload into a domain.NewTask.
//
// Absent and null values are dropped so entity defaults apply. A blank
// priority, status, genreId or deadlineDate counts as absent. The genre
// requirement is enforced by the service, not here.
func Normalize(raw RawParams) (domain.NewTask, error) {
	var task domain.NewTask

	if v, ok := raw.present(KeyName); ok {
		name, err := stringField(KeyName, v)
		if err != nil {
			return domain.NewTask{}, err
		}
		task.Name = name
	}

	if v, ok := raw.present(KeyExplanation); ok {
		explanation, err := stringField(KeyExplanation, v)
		if err != nil {
			return domain.NewTask{}, err
		}
		task.Explanation = &explanation
	}

	if v, ok := raw.nonBlank(KeyStatus); ok {
		status, err := domain.ParseStatus(v)
		if err != nil {
			return domain.NewTask{}, err
		}
		task.Status = &status
	}

	if v, ok := raw.nonBlank(KeyPriority); ok {
		priority, err := domain.ParsePriority(v)
		if err != nil {
			return domain.NewTask{}, err
		}
		task.Priority = &priority
	}

	if v, ok := raw.nonBlank(KeyGenreID); ok {
		genreID, err := domain.ParseID(v)
		if err != nil {
			return domain.NewTask{}, fmt.Errorf("%s: %w", KeyGenreID, err)
		}
		task.GenreID = &genreID
	}

	if v, ok := raw.nonBlank(KeyDeadlineDate); ok {
		deadline, err := dateField(v)
		if err != nil {
			return domain.NewTask{}, err
		}
		task.DeadlineDate = &deadline
	}

	return task, nil
}

// NormalizeUpdate turns an update payload into field-masked update params.
//
// Only keys present in the payload enter the mask. Null explanation or
// deadlineDate clears the field; blank priority, status, genreId or
// deadlineDate are ignored. A payload without any known field yields
// domain.ErrEmptyUpdateMask.
func NormalizeUpdate(id int64, raw RawParams) (domain.UpdateTaskParams, error) {
	params := domain.UpdateTaskParams{TaskID: id}

	if v, ok := raw[KeyName]; ok {
		params.UpdateMask = append(params.UpdateMask, domain.FieldName)
		if v != nil {
			name, err := stringField(KeyName, v)
			if err != nil {
				return domain.UpdateTaskParams{}, err
			}
			params.Name = &name
		}
	}

	if v, ok := raw[KeyExplanation]; ok {
		params.UpdateMask = append(params.UpdateMask, domain.FieldExplanation)
		if v != nil {
			explanation, err := stringField(KeyExplanation, v)
			if err != nil {
				return domain.UpdateTaskParams{}, err
			}
			params.Explanation = &explanation
		}
	}

	if v, ok := raw.present(KeyStatus); ok && !isBlank(v) {
		status, err := domain.ParseStatus(v)
		if err != nil {
			return domain.UpdateTaskParams{}, err
		}
		params.UpdateMask = append(params.UpdateMask, domain.FieldStatus)
		params.Status = &status
	}

	if v, ok := raw.present(KeyPriority); ok && !isBlank(v) {
		priority, err := domain.ParsePriority(v)
		if err != nil {
			return domain.UpdateTaskParams{}, err
		}
		params.UpdateMask = append(params.UpdateMask, domain.FieldPriority)
		params.Priority = &priority
	}

	if v, ok := raw.present(KeyGenreID); ok && !isBlank(v) {
		genreID, err := domain.ParseID(v)
		if err != nil {
			return domain.UpdateTaskParams{}, fmt.Errorf("%s: %w", KeyGenreID, err)
		}
		params.UpdateMask = append(params.UpdateMask, domain.FieldGenreID)
		params.GenreID = &genreID
	}

	if v, ok := raw[KeyDeadlineDate]; ok && !isBlank(v) {
		params.UpdateMask = append(params.UpdateMask, domain.FieldDeadlineDate)
		if v != nil {
			deadline, err := dateField(v)
			if err != nil {
				return domain.UpdateTaskParams{}, err
			}
			params.DeadlineDate = &deadline
		}
	}

	if err := params.Validate(); err != nil {
		return domain.UpdateTaskParams{}, err
	}
	return params, nil
}

// present returns the value under key when it exists and is not null.
func (r RawParams) present(key string) (any, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// nonBlank is present minus whitespace-only strings.
func (r RawParams) nonBlank(key string) (any, bool) {
	v, ok := r.present(key)
	if !ok || isBlank(v) {
		return nil, false
	}
	return v, true
}

func isBlank(v any) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

// stringField accepts strings and scalar JSON values, which are formatted.
func stringField(key string, v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), nil
	case json.Number:
		return s.String(), nil
	case bool:
		return strconv.FormatBool(s), nil
	default:
		return "", fmt.Errorf("%w: %s must be a string", domain.ErrInvalidFieldValue, key)
	}
}

func dateField(v any) (domain.Date, error) {
	s, ok := v.(string)
	if !ok {
		return domain.Date{}, fmt.Errorf("%w: %v", domain.ErrInvalidDate, v)
	}
	return domain.ParseDate(s)
}
