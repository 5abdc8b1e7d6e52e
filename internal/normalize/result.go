// Package normalize turns loosely typed store values into canonical model
// values. Every function is total: unexpected input yields the documented
// default, never an error or a panic.
package normalize

// Cause tells why a normalizer produced its value. Absent and unrecognized
// input collapse to the same default value; the cause keeps them apart.
type Cause int

const (
	Recognized Cause = iota
	DefaultedFromAbsent
	DefaultedFromUnrecognized
)

func (c Cause) String() string {
	switch c {
	case Recognized:
		return "recognized"
	case DefaultedFromAbsent:
		return "absent"
	case DefaultedFromUnrecognized:
		return "unrecognized"
	default:
		return "unknown"
	}
}

type Result[T any] struct {
	Value T
	Cause Cause
}

func recognized[T any](value T) Result[T] {
	return Result[T]{Value: value, Cause: Recognized}
}

func defaulted[T any](value T, raw any) Result[T] {
	if isAbsent(raw) {
		return Result[T]{Value: value, Cause: DefaultedFromAbsent}
	}
	return Result[T]{Value: value, Cause: DefaultedFromUnrecognized}
}

// isAbsent mirrors how the store omits fields: missing keys, nulls, empty
// strings and empty lists all mean "not filled in".
func isAbsent(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return value == ""
	case []any:
		return len(value) == 0
	case []string:
		return len(value) == 0
	default:
		return false
	}
}
