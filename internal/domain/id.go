package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseID converts a path segment or decoded JSON value into a store id.
// Ids are positive integers; anything else is ErrMalformedIdentifier.
func ParseID(raw any) (int64, error) {
	var id int64

	switch v := raw.(type) {
	case int64:
		id = v
	case int:
		id = int64(v)
	case float64:
		if v != math.Trunc(v) || math.Abs(v) > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %v", ErrMalformedIdentifier, v)
		}
		id = int64(v)
	case json.Number:
		n, err := strconv.ParseInt(v.String(), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformedIdentifier, v.String())
		}
		id = n
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformedIdentifier, v)
		}
		id = n
	default:
		return 0, fmt.Errorf("%w: %v", ErrMalformedIdentifier, raw)
	}

	if id <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrMalformedIdentifier, id)
	}
	return id, nil
}
