package view

import (
	"github.com/pkg/errors"
)

// Strided is the reference View implementation: a Shape over a flat slice.
// Derived views share the backing slice.
type Strided[T any] struct {
	shape Shape
	data  []T
}

// New returns a view of data with the given shape. The shape is validated
// against len(data) and copied.
func New[T any](data []T, shape Shape) (*Strided[T], error) {
	if err := shape.Validate(len(data)); err != nil {
		return nil, err
	}
	return &Strided[T]{shape: shape.Clone(), data: data}, nil
}

// FromSlice returns a contiguous row-major view of data. The product of
// lengths must equal len(data).
func FromSlice[T any](data []T, lengths ...int) (*Strided[T], error) {
	shape := RowMajor(lengths...)
	for i, l := range lengths {
		if l < 0 {
			return nil, errors.Wrapf(ErrInvalidShape, "axis %d has negative length %d", i, l)
		}
	}
	if n := shape.Size(); n != len(data) {
		return nil, errors.Wrapf(ErrInvalidShape, "lengths %v hold %d elements, data has %d", lengths, n, len(data))
	}
	return &Strided[T]{shape: shape, data: data}, nil
}

// Rank returns the number of axes.
func (s *Strided[T]) Rank() int { return len(s.shape.Dims) }

// Offset returns the flat position of the logical first element.
func (s *Strided[T]) Offset() int { return s.shape.Offset }

// Dim returns axis d.
func (s *Strided[T]) Dim(d int) Dim { return s.shape.Dims[d] }

// Index resolves idx to a flat offset.
func (s *Strided[T]) Index(idx []int) int { return s.shape.Index(idx) }

// Data returns the backing slice.
func (s *Strided[T]) Data() []T { return s.data }

// Shape returns a copy of the view's shape.
func (s *Strided[T]) Shape() Shape { return s.shape.Clone() }

// Size returns the number of logical elements.
func (s *Strided[T]) Size() int { return s.shape.Size() }

// At returns the element at idx. It panics if idx has the wrong rank or is
// out of range.
func (s *Strided[T]) At(idx ...int) T {
	if len(idx) != len(s.shape.Dims) {
		panic(errors.Errorf("view: At got %d indices for rank %d", len(idx), len(s.shape.Dims)))
	}
	for d, i := range idx {
		if i < 0 || i >= s.shape.Dims[d].Length {
			panic(errors.Wrapf(ErrOutOfBounds, "index %d on axis %d of length %d", i, d, s.shape.Dims[d].Length))
		}
	}
	return s.data[s.shape.Index(idx)]
}

func (s *Strided[T]) derive(shape Shape) *Strided[T] {
	return &Strided[T]{shape: shape, data: s.data}
}

func (s *Strided[T]) checkAxis(axis int) error {
	if axis < 0 || axis >= len(s.shape.Dims) {
		return errors.Wrapf(ErrInvalidAxis, "axis %d for rank %d", axis, len(s.shape.Dims))
	}
	return nil
}

// Slice selects length positions along axis, starting at start and moving
// step positions at a time. step may be negative; it must not be zero.
func (s *Strided[T]) Slice(axis, start, length, step int) (*Strided[T], error) {
	if err := s.checkAxis(axis); err != nil {
		return nil, err
	}
	if step == 0 {
		return nil, errors.Wrap(ErrInvalidShape, "slice step must not be zero")
	}
	if length < 0 {
		return nil, errors.Wrapf(ErrInvalidShape, "negative slice length %d", length)
	}

	dim := s.shape.Dims[axis]
	if length > 0 {
		last := start + (length-1)*step
		if start < 0 || start >= dim.Length || last < 0 || last >= dim.Length {
			return nil, errors.Wrapf(ErrOutOfBounds, "slice [%d, %d) step %d on axis %d of length %d",
				start, last+1, step, axis, dim.Length)
		}
	}

	shape := s.shape.Clone()
	if length > 0 {
		shape.Offset += start * dim.Stride
	}
	shape.Dims[axis] = Dim{Length: length, Stride: dim.Stride * step}
	return s.derive(shape), nil
}

// Reverse flips the traversal direction of axis.
func (s *Strided[T]) Reverse(axis int) (*Strided[T], error) {
	if err := s.checkAxis(axis); err != nil {
		return nil, err
	}
	l := s.shape.Dims[axis].Length
	if l == 0 {
		return s.derive(s.shape.Clone()), nil
	}
	return s.Slice(axis, l-1, l, -1)
}

// Permute reorders the axes: axis d of the result is axis axes[d] of s.
func (s *Strided[T]) Permute(axes ...int) (*Strided[T], error) {
	rank := len(s.shape.Dims)
	if len(axes) != rank {
		return nil, errors.Wrapf(ErrInvalidAxis, "permutation %v for rank %d", axes, rank)
	}
	seen := make([]bool, rank)
	dims := make([]Dim, rank)
	for d, a := range axes {
		if a < 0 || a >= rank || seen[a] {
			return nil, errors.Wrapf(ErrInvalidAxis, "permutation %v for rank %d", axes, rank)
		}
		seen[a] = true
		dims[d] = s.shape.Dims[a]
	}
	return s.derive(Shape{Dims: dims, Offset: s.shape.Offset}), nil
}

// BroadcastTo expands the view to lengths using zero strides. Leading axes
// are added as needed; an existing axis must either match the target length
// or have length 1.
func (s *Strided[T]) BroadcastTo(lengths ...int) (*Strided[T], error) {
	rank := len(s.shape.Dims)
	if len(lengths) < rank {
		return nil, errors.Wrapf(ErrInvalidShape, "cannot broadcast rank %d to %v", rank, lengths)
	}
	lead := len(lengths) - rank
	dims := make([]Dim, len(lengths))
	for d, l := range lengths {
		if l < 0 {
			return nil, errors.Wrapf(ErrInvalidShape, "axis %d has negative length %d", d, l)
		}
		if d < lead {
			dims[d] = Dim{Length: l}
			continue
		}
		src := s.shape.Dims[d-lead]
		switch {
		case src.Length == l:
			dims[d] = src
		case src.Length == 1:
			dims[d] = Dim{Length: l}
		default:
			return nil, errors.Wrapf(ErrInvalidShape, "axis %d: cannot broadcast length %d to %d", d-lead, src.Length, l)
		}
	}
	return s.derive(Shape{Dims: dims, Offset: s.shape.Offset}), nil
}

// Reshape returns a row-major view with new lengths over the same elements.
// Only contiguous views can be reshaped.
func (s *Strided[T]) Reshape(lengths ...int) (*Strided[T], error) {
	if !s.shape.IsContiguous() {
		return nil, errors.Wrapf(ErrNotContiguous, "reshape of %s", s.shape)
	}
	shape := RowMajor(lengths...)
	for i, l := range lengths {
		if l < 0 {
			return nil, errors.Wrapf(ErrInvalidShape, "axis %d has negative length %d", i, l)
		}
	}
	if shape.Size() != s.shape.Size() {
		return nil, errors.Wrapf(ErrInvalidShape, "cannot reshape %d elements to %v", s.shape.Size(), lengths)
	}
	shape.Offset = s.shape.Offset
	return s.derive(shape), nil
}
