package filter

import (
	"fmt"
	"math"
	"strconv"
)

// Value is a sealed interface for filter and parameter values.
// Only Null, String, Int, Float, Bool and List implement it.
type Value interface {
	value() // Sealed - only these types implement it
}

// Null is an explicitly absent value.
type Null struct{}

func (Null) value() {}

// MarshalJSON implements json.Marshaler for Null.
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// String is a text value.
type String string

func (String) value() {}

// Int is an integer value.
type Int int64

func (Int) value() {}

// Float is a floating point value.
type Float float64

func (Float) value() {}

// Bool is a boolean value.
type Bool bool

func (Bool) value() {}

// List holds the accumulated values of a repeated URL parameter. Filters
// themselves carry scalar values.
type List []Value

func (List) value() {}

// ValueOf converts a Go value to a Value. Supported inputs are nil, string,
// bool, the integer and float kinds, and Value itself. A whole float64
// becomes Int since decoded JSON numbers arrive as float64.
func ValueOf(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case Value:
		return x, nil
	case string:
		return String(x), nil
	case bool:
		return Bool(x), nil
	case int:
		return Int(x), nil
	case int32:
		return Int(x), nil
	case int64:
		return Int(x), nil
	case uint32:
		return Int(x), nil
	case float32:
		return Float(x), nil
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < 1<<53 {
			return Int(int64(x)), nil
		}
		return Float(x), nil
	default:
		return nil, fmt.Errorf("unsupported filter value type %T", v)
	}
}

// FormatValue renders a scalar value the way it appears in a URL parameter.
// Lists render their elements separated by commas.
func FormatValue(v Value) string {
	switch x := v.(type) {
	case nil, Null:
		return ""
	case String:
		return string(x)
	case Int:
		return strconv.FormatInt(int64(x), 10)
	case Float:
		return strconv.FormatFloat(float64(x), 'f', -1, 64)
	case Bool:
		return strconv.FormatBool(bool(x))
	case List:
		s := ""
		for i, e := range x {
			if i > 0 {
				s += ","
			}
			s += FormatValue(e)
		}
		return s
	default:
		return fmt.Sprintf("%v", v)
	}
}

// isAbsent reports whether v carries no data.
func isAbsent(v Value) bool {
	switch v.(type) {
	case nil, Null:
		return true
	}
	return false
}
