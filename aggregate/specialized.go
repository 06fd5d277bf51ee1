package aggregate

import (
	"github.com/cwbudde/algo-ndfold/internal/dtype"
	"github.com/cwbudde/algo-ndfold/op"
)

// The row kernels below use the same expressions as the operators in package
// op, so they produce identical results without an indirect call per
// element.

func addRow[T op.Number](acc T, data []T, pos, n, stride int) T {
	for range n {
		acc += data[pos]
		pos += stride
	}
	return acc
}

func subRow[T op.Number](acc T, data []T, pos, n, stride int) T {
	for range n {
		acc -= data[pos]
		pos += stride
	}
	return acc
}

func mulRow[T op.Number](acc T, data []T, pos, n, stride int) T {
	for range n {
		acc *= data[pos]
		pos += stride
	}
	return acc
}

func divRow[T op.Number](acc T, data []T, pos, n, stride int) T {
	for range n {
		acc /= data[pos]
		pos += stride
	}
	return acc
}

func minRow[T op.Real](acc T, data []T, pos, n, stride int) T {
	for range n {
		if b := data[pos]; b < acc {
			acc = b
		}
		pos += stride
	}
	return acc
}

func maxRow[T op.Real](acc T, data []T, pos, n, stride int) T {
	for range n {
		if b := data[pos]; b > acc {
			acc = b
		}
		pos += stride
	}
	return acc
}

func andRow[T op.Integer](acc T, data []T, pos, n, stride int) T {
	for range n {
		acc &= data[pos]
		pos += stride
	}
	return acc
}

func orRow[T op.Integer](acc T, data []T, pos, n, stride int) T {
	for range n {
		acc |= data[pos]
		pos += stride
	}
	return acc
}

func xorRow[T op.Integer](acc T, data []T, pos, n, stride int) T {
	for range n {
		acc ^= data[pos]
		pos += stride
	}
	return acc
}

type specKey struct {
	kind  op.Kind
	dtype dtype.DType
}

// specialized maps (kind, dtype) to a rowFunc[T] of the matching type. It is
// filled once by init and only read afterwards.
var specialized = map[specKey]any{}

func registerNumber[T op.Number]() {
	dt := dtype.Of[T]()
	specialized[specKey{op.KindAdd, dt}] = rowFunc[T](addRow[T])
	specialized[specKey{op.KindSub, dt}] = rowFunc[T](subRow[T])
	specialized[specKey{op.KindMul, dt}] = rowFunc[T](mulRow[T])
	specialized[specKey{op.KindDiv, dt}] = rowFunc[T](divRow[T])
}

func registerReal[T op.Real]() {
	registerNumber[T]()
	dt := dtype.Of[T]()
	specialized[specKey{op.KindMin, dt}] = rowFunc[T](minRow[T])
	specialized[specKey{op.KindMax, dt}] = rowFunc[T](maxRow[T])
}

func registerInteger[T op.Integer]() {
	registerReal[T]()
	dt := dtype.Of[T]()
	specialized[specKey{op.KindAnd, dt}] = rowFunc[T](andRow[T])
	specialized[specKey{op.KindOr, dt}] = rowFunc[T](orRow[T])
	specialized[specKey{op.KindXor, dt}] = rowFunc[T](xorRow[T])
}

func init() {
	registerInteger[int]()
	registerInteger[int8]()
	registerInteger[int16]()
	registerInteger[int32]()
	registerInteger[int64]()
	registerInteger[uint]()
	registerInteger[uint8]()
	registerInteger[uint16]()
	registerInteger[uint32]()
	registerInteger[uint64]()
	registerReal[float32]()
	registerReal[float64]()
	registerNumber[complex64]()
	registerNumber[complex128]()
}

// specializedRow returns the row kernel for kind over T, if one exists.
func specializedRow[T any](kind op.Kind) (rowFunc[T], bool) {
	if kind == op.KindUnknown {
		return nil, false
	}
	dt := dtype.Of[T]()
	if dt == dtype.Invalid {
		return nil, false
	}
	fn, ok := specialized[specKey{kind, dt}]
	if !ok {
		return nil, false
	}
	row, ok := fn.(rowFunc[T])
	return row, ok
}
