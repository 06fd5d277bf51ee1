// Package testutil holds helpers shared by the tests of this module.
package testutil

import (
	"math/rand/v2"

	"github.com/cwbudde/algo-ndfold/op"
)

// Seq returns [1, 2, ..., n] converted to T.
func Seq[T op.Real](n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(i + 1)
	}
	return out
}

// NewRand returns a deterministic generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomInts returns n values drawn uniformly from [-span, span].
func RandomInts[T op.Integer](rng *rand.Rand, n int, span int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(rng.IntN(2*span+1) - span)
	}
	return out
}

// RandomFloats returns n values drawn uniformly from [-amplitude, amplitude).
func RandomFloats[T ~float32 | ~float64](rng *rand.Rand, n int, amplitude float64) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// Fold is the reference left fold over a row-major sequence. xs must not be
// empty.
func Fold[T any](xs []T, f func(a, b T) T) T {
	acc := xs[0]
	for _, x := range xs[1:] {
		acc = f(acc, x)
	}
	return acc
}
