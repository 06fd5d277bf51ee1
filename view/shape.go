// Package view describes read-only strided views over flat storage.
//
// A view is a flat backing slice plus a Shape: one {Length, Stride} pair per
// axis and the flat Offset of the element at the all-zero index. The element
// at index vector idx lives at
//
//	Offset + Σ idx[d] * Dims[d].Stride
//
// Strides may be negative (reversed axes), non-monotonic (transposed views)
// or zero (broadcast axes). Views never copy or mutate their storage.
package view

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/cwbudde/algo-ndfold/internal/odometer"
)

var (
	// ErrInvalidShape is returned for negative lengths or mismatched sizes.
	ErrInvalidShape = errors.New("view: invalid shape")
	// ErrInvalidAxis is returned for out-of-range or repeated axes.
	ErrInvalidAxis = errors.New("view: invalid axis")
	// ErrOutOfBounds is returned when a shape reaches outside its storage.
	ErrOutOfBounds = errors.New("view: index out of bounds")
	// ErrNotContiguous is returned by operations that need one linear run.
	ErrNotContiguous = errors.New("view: view is not contiguous")
)

// Dim describes one axis of a view.
type Dim struct {
	Length int // number of positions along the axis
	Stride int // flat-storage step between consecutive positions
}

// Shape is the geometry of a view: its axes and the flat offset of the
// logical first element.
type Shape struct {
	Dims   []Dim
	Offset int
}

// RowMajor returns the contiguous row-major shape for the given lengths,
// starting at offset 0.
func RowMajor(lengths ...int) Shape {
	dims := make([]Dim, len(lengths))
	stride := 1
	for d := len(lengths) - 1; d >= 0; d-- {
		dims[d] = Dim{Length: lengths[d], Stride: stride}
		stride *= lengths[d]
	}
	return Shape{Dims: dims}
}

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s.Dims)
}

// Size returns the number of logical elements.
func (s Shape) Size() int {
	return odometer.Count(s.Lengths())
}

// Lengths returns the per-axis lengths.
func (s Shape) Lengths() []int {
	out := make([]int, len(s.Dims))
	for i, d := range s.Dims {
		out[i] = d.Length
	}
	return out
}

// Index resolves an index vector to a flat storage offset. idx must have
// one entry per axis; it is not bounds checked.
func (s Shape) Index(idx []int) int {
	pos := s.Offset
	for d, i := range idx {
		pos += i * s.Dims[d].Stride
	}
	return pos
}

// IsContiguous reports whether the logical elements occupy one unit-stride
// run of storage in row-major order. Axes of length 1 are ignored since
// their stride is never applied.
func (s Shape) IsContiguous() bool {
	expected := 1
	for d := len(s.Dims) - 1; d >= 0; d-- {
		dim := s.Dims[d]
		if dim.Length == 1 {
			continue
		}
		if dim.Stride != expected {
			return false
		}
		expected *= dim.Length
	}
	return true
}

// Bounds returns the lowest and highest flat offsets the shape can reach.
// ok is false when the shape has no elements.
func (s Shape) Bounds() (lo, hi int, ok bool) {
	lo, hi = s.Offset, s.Offset
	for _, d := range s.Dims {
		if d.Length == 0 {
			return 0, 0, false
		}
		ext := (d.Length - 1) * d.Stride
		if ext < 0 {
			lo += ext
		} else {
			hi += ext
		}
	}
	return lo, hi, true
}

// Validate checks that lengths are non-negative and, for non-empty shapes,
// that every reachable offset lies in [0, storageLen).
func (s Shape) Validate(storageLen int) error {
	for i, d := range s.Dims {
		if d.Length < 0 {
			return errors.Wrapf(ErrInvalidShape, "axis %d has negative length %d", i, d.Length)
		}
	}
	lo, hi, ok := s.Bounds()
	if !ok {
		return nil
	}
	if lo < 0 || hi >= storageLen {
		return errors.Wrapf(ErrOutOfBounds, "shape %s reaches [%d, %d] of storage length %d", s, lo, hi, storageLen)
	}
	return nil
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	dims := make([]Dim, len(s.Dims))
	copy(dims, s.Dims)
	return Shape{Dims: dims, Offset: s.Offset}
}

// String formats the shape as "(len:stride, ...)+offset".
func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, d := range s.Dims {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d:%d", d.Length, d.Stride)
	}
	fmt.Fprintf(&b, ")+%d", s.Offset)
	return b.String()
}
