// Package unrolled holds four-lane integer kernels for the native shortcut.
//
// Integer addition and multiplication wrap modulo 2^n and min, max and the
// bitwise operators are associative and commutative, so splitting the run
// over independent accumulators gives exactly the left-fold result while
// letting the CPU overlap the lanes. x must not be empty.
package unrolled

import "github.com/cwbudde/algo-ndfold/op"

// Add returns the wrapping sum of x.
func Add[T op.Integer](x []T) T {
	s0 := x[0]
	var s1, s2, s3 T

	i, n := 1, len(x)
	for ; i+3 < n; i += 4 {
		s0 += x[i]
		s1 += x[i+1]
		s2 += x[i+2]
		s3 += x[i+3]
	}
	for ; i < n; i++ {
		s0 += x[i]
	}
	return s0 + s1 + s2 + s3
}

// Mul returns the wrapping product of x.
func Mul[T op.Integer](x []T) T {
	p0 := x[0]
	p1, p2, p3 := T(1), T(1), T(1)

	i, n := 1, len(x)
	for ; i+3 < n; i += 4 {
		p0 *= x[i]
		p1 *= x[i+1]
		p2 *= x[i+2]
		p3 *= x[i+3]
	}
	for ; i < n; i++ {
		p0 *= x[i]
	}
	return p0 * p1 * p2 * p3
}

// Min returns the smallest element of x.
func Min[T op.Integer](x []T) T {
	m0, m1, m2, m3 := x[0], x[0], x[0], x[0]

	i, n := 1, len(x)
	for ; i+3 < n; i += 4 {
		m0 = min(m0, x[i])
		m1 = min(m1, x[i+1])
		m2 = min(m2, x[i+2])
		m3 = min(m3, x[i+3])
	}
	for ; i < n; i++ {
		m0 = min(m0, x[i])
	}
	return min(m0, m1, m2, m3)
}

// Max returns the largest element of x.
func Max[T op.Integer](x []T) T {
	m0, m1, m2, m3 := x[0], x[0], x[0], x[0]

	i, n := 1, len(x)
	for ; i+3 < n; i += 4 {
		m0 = max(m0, x[i])
		m1 = max(m1, x[i+1])
		m2 = max(m2, x[i+2])
		m3 = max(m3, x[i+3])
	}
	for ; i < n; i++ {
		m0 = max(m0, x[i])
	}
	return max(m0, m1, m2, m3)
}

// And returns the bitwise AND of x.
func And[T op.Integer](x []T) T {
	a0, a1, a2, a3 := x[0], x[0], x[0], x[0]

	i, n := 1, len(x)
	for ; i+3 < n; i += 4 {
		a0 &= x[i]
		a1 &= x[i+1]
		a2 &= x[i+2]
		a3 &= x[i+3]
	}
	for ; i < n; i++ {
		a0 &= x[i]
	}
	return a0 & a1 & a2 & a3
}

// Or returns the bitwise OR of x.
func Or[T op.Integer](x []T) T {
	o0, o1, o2, o3 := x[0], x[0], x[0], x[0]

	i, n := 1, len(x)
	for ; i+3 < n; i += 4 {
		o0 |= x[i]
		o1 |= x[i+1]
		o2 |= x[i+2]
		o3 |= x[i+3]
	}
	for ; i < n; i++ {
		o0 |= x[i]
	}
	return o0 | o1 | o2 | o3
}

// Xor returns the bitwise XOR of x.
func Xor[T op.Integer](x []T) T {
	x0 := x[0]
	var x1, x2, x3 T

	i, n := 1, len(x)
	for ; i+3 < n; i += 4 {
		x0 ^= x[i]
		x1 ^= x[i+1]
		x2 ^= x[i+2]
		x3 ^= x[i+3]
	}
	for ; i < n; i++ {
		x0 ^= x[i]
	}
	return x0 ^ x1 ^ x2 ^ x3
}
