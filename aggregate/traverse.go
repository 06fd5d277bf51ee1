package aggregate

import (
	"github.com/cwbudde/algo-ndfold/internal/odometer"
	"github.com/cwbudde/algo-ndfold/op"
	"github.com/cwbudde/algo-ndfold/view"
)

// rowFunc folds n elements of data into acc, starting at pos and stepping
// by stride.
type rowFunc[T any] func(acc T, data []T, pos, n, stride int) T

// opRow is the generic row kernel.
func opRow[T any](o op.Operator[T]) rowFunc[T] {
	return func(acc T, data []T, pos, n, stride int) T {
		for range n {
			acc = o.Op(acc, data[pos])
			pos += stride
		}
		return acc
	}
}

// adjustedStride returns the step from the end of a run of innerLen
// elements (inner stride apart) to the start of the next outer position.
func adjustedStride(outer, inner, innerLen int) int {
	return outer - inner*innerLen
}

// traverse folds every element of v in row-major order, seeded with the
// element at the all-zero index. v must have rank >= 1 and no empty axis.
func traverse[T any](v view.View[T], row rowFunc[T]) T {
	switch v.Rank() {
	case 1:
		return traverse1(v, row)
	case 2:
		return traverse2(v, row)
	default:
		return traverseN(v, row)
	}
}

func traverse1[T any](v view.View[T], row rowFunc[T]) T {
	data := v.Data()
	d := v.Dim(0)
	pos := v.Offset()
	acc := data[pos]
	return row(acc, data, pos+d.Stride, d.Length-1, d.Stride)
}

func traverse2[T any](v view.View[T], row rowFunc[T]) T {
	data := v.Data()
	outer, inner := v.Dim(0), v.Dim(1)
	outerStride := adjustedStride(outer.Stride, inner.Stride, inner.Length)

	pos := v.Offset()
	acc := data[pos]
	pos += inner.Stride

	start := 1
	for range outer.Length {
		n := inner.Length - start
		acc = row(acc, data, pos, n, inner.Stride)
		pos += n*inner.Stride + outerStride
		start = 0
	}
	return acc
}

// traverseN handles rank >= 3. Axes before the last three are enumerated by
// an odometer; the last three run as nested loops with adjusted strides.
func traverseN[T any](v view.View[T], row rowFunc[T]) T {
	data := v.Data()
	rank := v.Rank()
	outer, inner, innermost := v.Dim(rank-3), v.Dim(rank-2), v.Dim(rank-1)

	outerStride := adjustedStride(outer.Stride, inner.Stride, inner.Length)
	innerStride := adjustedStride(inner.Stride, innermost.Stride, innermost.Length)

	// The tail of idx stays zero, so Index(idx) is the base of the current
	// block of three axes.
	idx := make([]int, rank)
	counters := idx[:rank-3]
	limits := make([]int, rank-3)
	for d := range limits {
		limits[d] = v.Dim(d).Length
	}

	var acc T
	first := true
	for {
		pos := v.Index(idx)
		for range outer.Length {
			for range inner.Length {
				start := 0
				if first {
					acc = data[pos]
					pos += innermost.Stride
					start = 1
					first = false
				}
				n := innermost.Length - start
				acc = row(acc, data, pos, n, innermost.Stride)
				pos += n*innermost.Stride + innerStride
			}
			pos += outerStride
		}
		if !odometer.Next(counters, limits) {
			break
		}
	}
	return acc
}
