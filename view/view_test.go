package view

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestRowMajor(t *testing.T) {
	s := RowMajor(2, 3, 4)
	require.Equal(t, []Dim{{2, 12}, {3, 4}, {4, 1}}, s.Dims)
	require.Equal(t, 24, s.Size())
	require.True(t, s.IsContiguous())
	require.Equal(t, 23, s.Index([]int{1, 2, 3}))
	require.Equal(t, "(2:12, 3:4, 4:1)+0", s.String())
}

func TestFromSliceSizeMismatch(t *testing.T) {
	_, err := FromSlice(seq(5), 2, 3)
	require.True(t, errors.Is(err, ErrInvalidShape))

	_, err = FromSlice(seq(0), -1)
	require.True(t, errors.Is(err, ErrInvalidShape))
}

func TestNewValidatesBounds(t *testing.T) {
	data := seq(8)

	_, err := New(data, Shape{Dims: []Dim{{4, 2}}, Offset: 0})
	require.NoError(t, err)

	_, err = New(data, Shape{Dims: []Dim{{4, 2}}, Offset: 1})
	require.NoError(t, err)

	_, err = New(data, Shape{Dims: []Dim{{4, 2}}, Offset: 2})
	require.True(t, errors.Is(err, ErrOutOfBounds))

	_, err = New(data, Shape{Dims: []Dim{{4, -2}}, Offset: 5})
	require.True(t, errors.Is(err, ErrOutOfBounds))

	_, err = New(data, Shape{Dims: []Dim{{4, -2}}, Offset: 7})
	require.NoError(t, err)

	// Empty shapes reach nothing and are always in bounds.
	_, err = New(data, Shape{Dims: []Dim{{0, 100}}, Offset: 50})
	require.NoError(t, err)
}

func TestSliceStepTwo(t *testing.T) {
	v, err := FromSlice(seq(8), 8)
	require.NoError(t, err)

	even, err := v.Slice(0, 0, 4, 2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 4, 6}, Materialize[int](even))
	require.False(t, IsContiguous[int](even))

	odd, err := v.Slice(0, 1, 4, 2)
	require.NoError(t, err)
	require.Equal(t, 1, odd.Offset())
	require.Equal(t, []int{1, 3, 5, 7}, Materialize[int](odd))

	_, err = v.Slice(0, 1, 5, 2)
	require.True(t, errors.Is(err, ErrOutOfBounds))

	_, err = v.Slice(0, 0, 1, 0)
	require.True(t, errors.Is(err, ErrInvalidShape))

	_, err = v.Slice(1, 0, 1, 1)
	require.True(t, errors.Is(err, ErrInvalidAxis))
}

func TestReverse(t *testing.T) {
	v, err := FromSlice(seq(6), 2, 3)
	require.NoError(t, err)

	r, err := v.Reverse(1)
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 0, 5, 4, 3}, Materialize[int](r))
	require.Equal(t, Dim{3, -1}, r.Dim(1))

	rr, err := r.Reverse(0)
	require.NoError(t, err)
	require.Equal(t, []int{5, 4, 3, 2, 1, 0}, Materialize[int](rr))
}

func TestPermute(t *testing.T) {
	v, err := FromSlice(seq(6), 2, 3)
	require.NoError(t, err)

	tr, err := v.Permute(1, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 3, 1, 4, 2, 5}, Materialize[int](tr))
	require.Equal(t, 4, tr.At(1, 1))

	_, err = v.Permute(0, 0)
	require.True(t, errors.Is(err, ErrInvalidAxis))

	_, err = v.Permute(0)
	require.True(t, errors.Is(err, ErrInvalidAxis))
}

func TestBroadcastTo(t *testing.T) {
	v, err := FromSlice([]int{1, 2, 3}, 1, 3)
	require.NoError(t, err)

	b, err := v.BroadcastTo(2, 2, 3)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 1, 2, 3, 1, 2, 3, 1, 2, 3}, Materialize[int](b))
	require.Equal(t, Dim{2, 0}, b.Dim(0))
	require.False(t, IsContiguous[int](b))

	_, err = v.BroadcastTo(2, 4)
	require.True(t, errors.Is(err, ErrInvalidShape))
}

func TestReshape(t *testing.T) {
	v, err := FromSlice(seq(24), 24)
	require.NoError(t, err)

	r, err := v.Reshape(2, 3, 4)
	require.NoError(t, err)
	require.Equal(t, 23, r.At(1, 2, 3))

	tr, err := r.Permute(2, 1, 0)
	require.NoError(t, err)
	_, err = tr.Reshape(24)
	require.True(t, errors.Is(err, ErrNotContiguous))

	_, err = v.Reshape(5, 5)
	require.True(t, errors.Is(err, ErrInvalidShape))
}

func TestContiguityIgnoresUnitAxes(t *testing.T) {
	s := Shape{Dims: []Dim{{1, 99}, {3, 1}, {1, -7}}}
	require.True(t, s.IsContiguous())

	s = Shape{Dims: []Dim{{2, 3}, {3, 1}}, Offset: 4}
	require.True(t, s.IsContiguous())

	s = Shape{Dims: []Dim{{2, 4}, {3, 1}}}
	require.False(t, s.IsContiguous())
}

func TestAtPanicsOutOfRange(t *testing.T) {
	v, err := FromSlice(seq(4), 2, 2)
	require.NoError(t, err)
	require.Panics(t, func() { v.At(2, 0) })
	require.Panics(t, func() { v.At(0) })
}

func TestShapeOfUsesInterface(t *testing.T) {
	v, err := FromSlice(seq(6), 3, 2)
	require.NoError(t, err)
	sl, err := v.Slice(0, 1, 2, 1)
	require.NoError(t, err)

	s := ShapeOf[int](sl)
	require.Equal(t, 2, s.Offset)
	require.Equal(t, []int{2, 2}, s.Lengths())
	require.Equal(t, 4, Size[int](sl))
}

func TestShapeSizeEdgeCases(t *testing.T) {
	require.Equal(t, 1, Shape{}.Size())
	require.Equal(t, 0, RowMajor(3, 0, 2).Size())
	require.Equal(t, 60, RowMajor(3, 4, 5).Size())
}
