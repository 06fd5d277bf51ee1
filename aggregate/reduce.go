package aggregate

import (
	"github.com/cwbudde/algo-ndfold/op"
	"github.com/cwbudde/algo-ndfold/view"
)

// Sum returns the sum of all elements of v.
func Sum[T op.Number](v view.View[T], opts ...Option) (T, error) {
	return Aggregate[T](op.Add[T]{}, v, opts...)
}

// Prod returns the product of all elements of v.
func Prod[T op.Number](v view.View[T], opts ...Option) (T, error) {
	return Aggregate[T](op.Mul[T]{}, v, opts...)
}

// Min returns the smallest element of v. A NaN seed is returned as is.
func Min[T op.Real](v view.View[T], opts ...Option) (T, error) {
	return Aggregate[T](op.Min[T]{}, v, opts...)
}

// Max returns the largest element of v.
func Max[T op.Real](v view.View[T], opts ...Option) (T, error) {
	return Aggregate[T](op.Max[T]{}, v, opts...)
}

// Mean returns the arithmetic mean of v. The sum is accumulated in T, so
// narrow integer types can wrap.
func Mean[T op.Real](v view.View[T], opts ...Option) (float64, error) {
	s, err := Sum(v, opts...)
	if err != nil {
		return 0, err
	}
	return float64(s) / float64(view.Size(v)), nil
}
