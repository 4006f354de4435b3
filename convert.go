package cldr

import (
	"math"
	"strconv"
)

// asInt coerces a decoded scalar to int. JSON decoding yields float64, YAML
// yields int or int64; integer-like strings are accepted too.
func asInt(v any) (int, bool) {
	n, ok := asInt64(v)
	if !ok || n < math.MinInt || n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}

func asInt64(v any) (int64, bool) {
	switch value := v.(type) {
	case int:
		return int64(value), true
	case int64:
		return value, true
	case float64:
		if value != math.Trunc(value) {
			return 0, false
		}
		return int64(value), true
	case string:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func asFloat(v any) (float64, bool) {
	switch value := v.(type) {
	case float64:
		return value, true
	case int:
		return float64(value), true
	case int64:
		return float64(value), true
	case string:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// asMap coerces a decoded subtree to a string-keyed map. YAML decoding can
// yield map[any]any for documents with non-string keys.
func asMap(v any) (map[string]any, bool) {
	switch value := v.(type) {
	case map[string]any:
		return value, true
	case map[any]any:
		out := make(map[string]any, len(value))
		for key, entry := range value {
			name, ok := key.(string)
			if !ok {
				if n, isInt := asInt64(key); isInt {
					name = strconv.FormatInt(n, 10)
				} else {
					return nil, false
				}
			}
			out[name] = entry
		}
		return out, true
	default:
		return nil, false
	}
}

// parseExactInt parses s as a base-10 integer literal with no remainder.
func parseExactInt(s string) (int64, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
