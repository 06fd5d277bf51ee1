package view

import (
	"github.com/cwbudde/algo-ndfold/internal/odometer"
)

// View is the read-only accessor consumed by the aggregate engine.
type View[T any] interface {
	// Rank returns the number of axes.
	Rank() int
	// Offset returns the flat position of the element at the all-zero index.
	Offset() int
	// Dim returns length and stride of axis d.
	Dim(d int) Dim
	// Index resolves an index vector (one entry per axis) to a flat offset.
	Index(idx []int) int
	// Data returns the flat backing storage. Callers must not modify it.
	Data() []T
}

// ShapeOf returns the Shape of any View.
func ShapeOf[T any](v View[T]) Shape {
	if s, ok := v.(*Strided[T]); ok {
		return s.shape.Clone()
	}
	dims := make([]Dim, v.Rank())
	for d := range dims {
		dims[d] = v.Dim(d)
	}
	return Shape{Dims: dims, Offset: v.Offset()}
}

// Size returns the number of logical elements of v.
func Size[T any](v View[T]) int {
	n := 1
	for d := range v.Rank() {
		n *= v.Dim(d).Length
	}
	return n
}

// IsContiguous reports whether the elements of v form one unit-stride run
// starting at v.Offset().
func IsContiguous[T any](v View[T]) bool {
	if s, ok := v.(*Strided[T]); ok {
		return s.shape.IsContiguous()
	}
	return ShapeOf(v).IsContiguous()
}

// Materialize copies the logical elements of v into a new slice in
// row-major order.
func Materialize[T any](v View[T]) []T {
	n := Size(v)
	if n == 0 {
		return nil
	}
	out := make([]T, 0, n)
	data := v.Data()
	rank := v.Rank()
	if rank == 0 {
		return append(out, data[v.Offset()])
	}

	idx := make([]int, rank)
	limits := make([]int, rank)
	for d := range limits {
		limits[d] = v.Dim(d).Length
	}
	for {
		out = append(out, data[v.Index(idx)])
		if !odometer.Next(idx, limits) {
			break
		}
	}
	return out
}
