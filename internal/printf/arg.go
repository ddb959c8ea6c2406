package printf

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"
)

// Value coercion. Arguments arrive as any (typed Go values from callers,
// strings from the CLI, float64 from JSON via MCP) and each verb pulls the
// value into the shape it renders. Coercion failures become ArgErrors that
// name the placeholder and the value, never silent zeros.

// kindOf describes a value for error messages.
func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case bool:
		return "boolean"
	case string, []byte:
		return "string"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case float32, float64:
		return "float"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// toInt coerces a value to a signed integer. Floats truncate toward zero;
// numeric strings are parsed; booleans map to 1 and 0.
func toInt(v any) (int64, error) {
	switch x := v.(type) {
	case int:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case int64:
		return x, nil
	case uint:
		return uintToInt(uint64(x))
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case uint64:
		return uintToInt(x)
	case float32:
		return floatToInt(float64(x))
	case float64:
		return floatToInt(x)
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case string:
		return stringToInt(x)
	case []byte:
		return stringToInt(string(x))
	default:
		return 0, fmt.Errorf("cannot render %s value as an integer", kindOf(v))
	}
}

// toUint coerces a value to an unsigned integer. Negative signed values
// wrap to their two's-complement bit pattern, matching C's unsigned
// conversions.
func toUint(v any) (uint64, error) {
	switch x := v.(type) {
	case uint:
		return uint64(x), nil
	case uint8:
		return uint64(x), nil
	case uint16:
		return uint64(x), nil
	case uint32:
		return uint64(x), nil
	case uint64:
		return x, nil
	case string:
		if n, err := strconv.ParseUint(x, 10, 64); err == nil {
			return n, nil
		}
	case []byte:
		if n, err := strconv.ParseUint(string(x), 10, 64); err == nil {
			return n, nil
		}
	}
	n, err := toInt(v)
	if err != nil {
		return 0, err
	}
	return uint64(n), nil
}

// toFloat coerces a value to a float. Integers convert exactly where they
// fit; numeric strings are parsed.
func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float32:
		return float64(x), nil
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case string:
		return stringToFloat(x)
	case []byte:
		return stringToFloat(string(x))
	default:
		return 0, fmt.Errorf("cannot render %s value as a number", kindOf(v))
	}
}

// toString coerces a value for the %s verb. nil renders as the empty
// string; everything else gets its natural text form.
func toString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case nil:
		return "", nil
	case bool:
		return strconv.FormatBool(x), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case fmt.Stringer:
		return x.String(), nil
	case error:
		return x.Error(), nil
	}
	if n, err := toInt(v); err == nil {
		return strconv.FormatInt(n, 10), nil
	}
	if n, err := toUint(v); err == nil {
		return strconv.FormatUint(n, 10), nil
	}
	return "", fmt.Errorf("cannot render %s value as a string", kindOf(v))
}

// toRune coerces a value for the %c verb: a code point, or a string holding
// exactly one rune.
func toRune(v any) (rune, error) {
	switch x := v.(type) {
	case rune:
		if !utf8.ValidRune(x) {
			return 0, fmt.Errorf("invalid code point %d", x)
		}
		return x, nil
	case string:
		r, size := utf8.DecodeRuneInString(x)
		if size == 0 || size != len(x) || r == utf8.RuneError && size == 1 {
			return 0, fmt.Errorf("%q is not a single character", x)
		}
		return r, nil
	}
	n, err := toInt(v)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > utf8.MaxRune || !utf8.ValidRune(rune(n)) {
		return 0, fmt.Errorf("invalid code point %d", n)
	}
	return rune(n), nil
}

// uintToInt narrows a uint64, rejecting values a signed integer cannot hold.
func uintToInt(u uint64) (int64, error) {
	if u > math.MaxInt64 {
		return 0, fmt.Errorf("value %d overflows a signed integer", u)
	}
	return int64(u), nil
}

// floatToInt truncates toward zero, rejecting NaN, infinities, and values
// outside the integer range.
func floatToInt(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("cannot render %v as an integer", f)
	}
	truncated := math.Trunc(f)
	if truncated < math.MinInt64 || truncated >= math.MaxInt64 {
		return 0, fmt.Errorf("value %v overflows an integer", f)
	}
	return int64(truncated), nil
}

// stringToInt parses an integer, falling back to parsing a float and
// truncating so "3.7" renders as 3 under %d.
func stringToInt(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return floatToInt(f)
	}
	return 0, fmt.Errorf("cannot render %q as an integer", s)
}

// stringToFloat parses a float with a clear error on failure.
func stringToFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot render %q as a number", s)
	}
	return f, nil
}
