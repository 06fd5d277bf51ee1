// Package generic holds the pure Go contiguous kernels of the native
// shortcut. Every kernel folds x left to right, seeded with x[0]; x must not
// be empty.
package generic

import "github.com/cwbudde/algo-ndfold/op"

// Add returns x[0] + x[1] + ... + x[n-1].
func Add[T op.Number](x []T) T {
	acc := x[0]
	for _, v := range x[1:] {
		acc += v
	}
	return acc
}

// Sub returns x[0] - x[1] - ... - x[n-1].
func Sub[T op.Number](x []T) T {
	acc := x[0]
	for _, v := range x[1:] {
		acc -= v
	}
	return acc
}

// Mul returns the product of x.
func Mul[T op.Number](x []T) T {
	acc := x[0]
	for _, v := range x[1:] {
		acc *= v
	}
	return acc
}

// Min returns the left-fold minimum of x (see op.Min for NaN handling).
func Min[T op.Real](x []T) T {
	acc := x[0]
	for _, v := range x[1:] {
		if v < acc {
			acc = v
		}
	}
	return acc
}

// Max returns the left-fold maximum of x.
func Max[T op.Real](x []T) T {
	acc := x[0]
	for _, v := range x[1:] {
		if v > acc {
			acc = v
		}
	}
	return acc
}

// And returns the bitwise AND of x.
func And[T op.Integer](x []T) T {
	acc := x[0]
	for _, v := range x[1:] {
		acc &= v
	}
	return acc
}

// Or returns the bitwise OR of x.
func Or[T op.Integer](x []T) T {
	acc := x[0]
	for _, v := range x[1:] {
		acc |= v
	}
	return acc
}

// Xor returns the bitwise XOR of x.
func Xor[T op.Integer](x []T) T {
	acc := x[0]
	for _, v := range x[1:] {
		acc ^= v
	}
	return acc
}
