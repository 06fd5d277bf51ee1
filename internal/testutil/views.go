package testutil

import (
	"testing"

	"github.com/cwbudde/algo-ndfold/view"
)

// Layout is a named view over shared backing data.
type Layout[T any] struct {
	Name string
	View *view.Strided[T]
}

// Layouts derives views of every supported layout from data, which must
// hold at least 120 elements. The set covers contiguous views of rank 1 to
// 5, step slices, offsets, reversed and permuted axes and broadcasting.
func Layouts[T any](t testing.TB, data []T) []Layout[T] {
	t.Helper()
	if len(data) < 120 {
		t.Fatalf("Layouts needs 120 elements, got %d", len(data))
	}
	base := data[:120]

	must := func(v *view.Strided[T], err error) *view.Strided[T] {
		t.Helper()
		if err != nil {
			t.Fatalf("derive view: %v", err)
		}
		return v
	}

	r1 := must(view.FromSlice(base, 120))
	r2 := must(view.FromSlice(base, 8, 15))
	r3 := must(view.FromSlice(base, 4, 5, 6))
	r4 := must(view.FromSlice(base, 2, 3, 4, 5))
	r5 := must(view.FromSlice(base, 2, 3, 2, 5, 2))

	return []Layout[T]{
		{"rank1", r1},
		{"rank2", r2},
		{"rank3", r3},
		{"rank4", r4},
		{"rank5", r5},
		{"ones-rank8", must(r4.Reshape(1, 1, 1, 1, 1, 1, 1, 120))},
		{"offset", must(r1.Slice(0, 7, 100, 1))},
		{"step2", must(r1.Slice(0, 1, 59, 2))},
		{"step3-rank2", must(r2.Slice(1, 2, 5, 3))},
		{"reversed", must(r1.Reverse(0))},
		{"reversed-inner", must(r3.Reverse(2))},
		{"transposed", must(r2.Permute(1, 0))},
		{"permuted-rank4", must(r4.Permute(3, 1, 0, 2))},
		{"sliced-rank4", must(must(r4.Slice(3, 1, 3, 1)).Slice(2, 3, 1, 1))},
		{"broadcast", must(must(r1.Slice(0, 0, 6, 1)).BroadcastTo(3, 4, 6))},
		{"reversed-permuted-rank5", must(must(r5.Reverse(1)).Permute(4, 2, 0, 3, 1))},
	}
}
