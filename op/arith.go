package op

import (
	"math"
	"math/cmplx"
)

// Add is a + b.
type Add[T Number] struct{}

func (Add[T]) Op(a, b T) T { return a + b }
func (Add[T]) Kind() Kind  { return KindAdd }

// Sub is a - b. It is not associative: the engine folds it strictly left to
// right in row-major order, so Sub over [x0, x1, ...] is x0 - x1 - x2 ...
type Sub[T Number] struct{}

func (Sub[T]) Op(a, b T) T { return a - b }
func (Sub[T]) Kind() Kind  { return KindSub }

// Mul is a * b.
type Mul[T Number] struct{}

func (Mul[T]) Op(a, b T) T { return a * b }
func (Mul[T]) Kind() Kind  { return KindMul }

// Div is a / b. Integer division truncates toward zero and panics on a zero
// divisor.
type Div[T Number] struct{}

func (Div[T]) Op(a, b T) T { return a / b }
func (Div[T]) Kind() Kind  { return KindDiv }

// Mod is the remainder of a / b with the sign of a (Go's % for integers,
// math.Mod for floats). Integer modulo by zero panics.
type Mod[T Real] struct{}

func (Mod[T]) Op(a, b T) T {
	if isInteger[T]() {
		return a - (a/b)*b
	}
	return T(math.Mod(float64(a), float64(b)))
}
func (Mod[T]) Kind() Kind { return KindMod }

// Min returns b if b < a, else a. A NaN accumulator therefore sticks, and a
// NaN right operand is ignored.
type Min[T Real] struct{}

func (Min[T]) Op(a, b T) T {
	if b < a {
		return b
	}
	return a
}
func (Min[T]) Kind() Kind { return KindMin }

// Max returns b if b > a, else a. NaN handling mirrors Min.
type Max[T Real] struct{}

func (Max[T]) Op(a, b T) T {
	if b > a {
		return b
	}
	return a
}
func (Max[T]) Kind() Kind { return KindMax }

// Pow is a raised to b. Floats use math.Pow. Integers use exponentiation by
// squaring with wraparound; a negative exponent yields 1 for base 1, ±1 for
// base -1 and 0 otherwise.
type Pow[T Real] struct{}

func (Pow[T]) Op(a, b T) T {
	if isInteger[T]() {
		return intPow(a, b)
	}
	return T(math.Pow(float64(a), float64(b)))
}
func (Pow[T]) Kind() Kind { return KindPow }

// ComplexPow is a raised to b using cmplx.Pow.
type ComplexPow[T Complex] struct{}

func (ComplexPow[T]) Op(a, b T) T { return T(cmplx.Pow(complex128(a), complex128(b))) }
func (ComplexPow[T]) Kind() Kind  { return KindPow }

// And is the bitwise a & b.
type And[T Integer] struct{}

func (And[T]) Op(a, b T) T { return a & b }
func (And[T]) Kind() Kind  { return KindAnd }

// Or is the bitwise a | b.
type Or[T Integer] struct{}

func (Or[T]) Op(a, b T) T { return a | b }
func (Or[T]) Kind() Kind  { return KindOr }

// Xor is the bitwise a ^ b.
type Xor[T Integer] struct{}

func (Xor[T]) Op(a, b T) T { return a ^ b }
func (Xor[T]) Kind() Kind  { return KindXor }

// isInteger reports whether T truncates fractions.
func isInteger[T Real]() bool {
	half := 0.5
	return T(half) == 0
}

// intPow must only be called for integer T.
func intPow[T Real](base, exp T) T {
	one := T(1)
	if exp < 0 {
		switch base {
		case one:
			return one
		case 0 - one:
			if exp-(exp/2)*2 != 0 {
				return base
			}
			return one
		default:
			return 0
		}
	}

	result := one
	for exp > 0 {
		if exp-(exp/2)*2 != 0 {
			result *= base
		}
		base *= base
		exp /= 2
	}
	return result
}
