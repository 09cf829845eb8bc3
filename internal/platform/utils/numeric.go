package utils

import (
	"strconv"
	"strings"
)

// ToFloat coerces the loosely-typed values found in legacy JSON payloads
// (numbers, numeric strings, strings with stray commas) into a float64.
// Anything unparseable coerces to 0.
func ToFloat(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(t, ",", ""))
		if s == "" || s == "-" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// ToInt coerces like ToFloat but truncates to an int.
func ToInt(v interface{}) int {
	return int(ToFloat(v))
}

// ToString coerces a loose JSON scalar to a trimmed string.
func ToString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		// JSON numbers arrive as float64; render integral values without a
		// decimal point so "2024" does not become "2024.000000".
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

// Clamp bounds v to [0, max]. Every score contribution is floored at zero
// before it is multiplied, so malformed negatives can never subtract marks.
func Clamp(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
