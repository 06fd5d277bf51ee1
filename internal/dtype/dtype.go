// Package dtype maps Go element types to a small runtime tag so kernel
// tables can be keyed on the element type of a generic view.
package dtype

import "github.com/x448/float16"

// DType identifies the element type of a view at runtime.
type DType int

// Supported element types. Invalid is returned for any type without a tag,
// including named types whose underlying type is supported.
const (
	Invalid DType = iota
	Int8
	Int16
	Int32
	Int64
	Int
	Uint8
	Uint16
	Uint32
	Uint64
	Uint
	Float16
	Float32
	Float64
	Complex64
	Complex128
)

var names = [...]string{
	Invalid:    "invalid",
	Int8:       "int8",
	Int16:      "int16",
	Int32:      "int32",
	Int64:      "int64",
	Int:        "int",
	Uint8:      "uint8",
	Uint16:     "uint16",
	Uint32:     "uint32",
	Uint64:     "uint64",
	Uint:       "uint",
	Float16:    "float16",
	Float32:    "float32",
	Float64:    "float64",
	Complex64:  "complex64",
	Complex128: "complex128",
}

// String returns the Go name of the element type.
func (dt DType) String() string {
	if dt < 0 || int(dt) >= len(names) {
		return "unknown"
	}
	return names[dt]
}

// IsInteger reports whether dt is a signed or unsigned integer type.
func (dt DType) IsInteger() bool {
	return dt >= Int8 && dt <= Uint
}

// IsFloat reports whether dt is a floating-point type.
func (dt DType) IsFloat() bool {
	return dt >= Float16 && dt <= Float64
}

// Size returns the byte size of one element, or 0 for Invalid.
func (dt DType) Size() int {
	switch dt {
	case Int8, Uint8:
		return 1
	case Int16, Uint16, Float16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64, Complex64, Int, Uint:
		return 8
	case Complex128:
		return 16
	default:
		return 0
	}
}

// Of returns the DType of T.
func Of[T any]() DType {
	var zero T
	switch any(zero).(type) {
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case int:
		return Int
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case uint:
		return Uint
	case float16.Float16:
		return Float16
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	default:
		return Invalid
	}
}

// Parse returns the DType with the given name.
func Parse(name string) (DType, bool) {
	for i, n := range names {
		if i != int(Invalid) && n == name {
			return DType(i), true
		}
	}
	return Invalid, false
}
