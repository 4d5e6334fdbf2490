package configurator

import (
	"fmt"
	"strconv"
)

// Answer values come straight out of encoding/json: strings, float64
// numbers and []any lists. The helpers below normalize them without ever
// failing; malformed values simply degrade to "not a match".

func stringifyAnswer(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

// answerList reports whether v is a multi-select style value and returns
// its elements stringified.
func answerList(v any) ([]string, bool) {
	switch t := v.(type) {
	case []string:
		return t, true
	case []any:
		out := make([]string, len(t))
		for i, e := range t {
			out[i] = stringifyAnswer(e)
		}
		return out, true
	default:
		return nil, false
	}
}

// numericValue accepts actual numbers only; numeric strings are not
// coerced.
func numericValue(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}

func isEmptyAnswer(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	if list, ok := answerList(v); ok {
		return len(list) == 0
	}
	return false
}

func containsString(list []string, value string) bool {
	for _, e := range list {
		if e == value {
			return true
		}
	}
	return false
}
