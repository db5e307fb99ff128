package domain

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

var errUnsupportedEnumInput = errors.New("unsupported enum input")

// splitEnumInput normalizes raw enum input into either an integer code or a
// lower-cased label. Exactly one of code/label is meaningful: label is empty
// when the input was numeric.
func splitEnumInput(raw any) (code int, label string, err error) {
	switch v := raw.(type) {
	case int:
		return v, "", nil
	case int8:
		return int(v), "", nil
	case int16:
		return int(v), "", nil
	case int32:
		return int(v), "", nil
	case int64:
		return int(v), "", nil
	case uint8:
		return int(v), "", nil
	case uint16:
		return int(v), "", nil
	case uint32:
		return int(v), "", nil
	case float64:
		// encoding/json decodes every number into float64
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, "", errUnsupportedEnumInput
		}
		return int(v), "", nil
	case json.Number:
		n, err := strconv.Atoi(v.String())
		if err != nil {
			return 0, "", errUnsupportedEnumInput
		}
		return n, "", nil
	case Priority:
		return int(v), "", nil
	case Status:
		return int(v), "", nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, "", errUnsupportedEnumInput
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n, "", nil
		}
		return 0, strings.ToLower(s), nil
	default:
		return 0, "", errUnsupportedEnumInput
	}
}
