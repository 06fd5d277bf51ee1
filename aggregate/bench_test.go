package aggregate_test

import (
	"testing"

	"github.com/cwbudde/algo-ndfold/aggregate"
	"github.com/cwbudde/algo-ndfold/internal/testutil"
	"github.com/cwbudde/algo-ndfold/op"
	"github.com/cwbudde/algo-ndfold/view"
)

func benchmarkSum(b *testing.B, v view.View[float64], opts ...aggregate.Option) {
	b.Helper()
	b.ReportAllocs()
	b.SetBytes(int64(view.Size(v) * 8))
	b.ResetTimer()
	for range b.N {
		if _, err := aggregate.Aggregate[float64](op.Add[float64]{}, v, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

func benchViews(b *testing.B) (contiguous, transposed *view.Strided[float64]) {
	b.Helper()
	data := testutil.RandomFloats[float64](testutil.NewRand(1), 64*64*16, 1)
	contiguous, err := view.FromSlice(data, 16, 64, 64)
	if err != nil {
		b.Fatal(err)
	}
	transposed, err = contiguous.Permute(2, 1, 0)
	if err != nil {
		b.Fatal(err)
	}
	return contiguous, transposed
}

func BenchmarkSumContiguous(b *testing.B) {
	v, _ := benchViews(b)
	benchmarkSum(b, v)
}

func BenchmarkSumContiguousReassociated(b *testing.B) {
	v, _ := benchViews(b)
	benchmarkSum(b, v, aggregate.WithReassociation())
}

func BenchmarkSumTransposedSpecialized(b *testing.B) {
	_, v := benchViews(b)
	benchmarkSum(b, v)
}

func BenchmarkSumTransposedGeneric(b *testing.B) {
	_, v := benchViews(b)
	benchmarkSum(b, v, aggregate.ForceGeneric())
}

func BenchmarkMaxInt64Rank5(b *testing.B) {
	data := testutil.RandomInts[int64](testutil.NewRand(2), 4*4*8*8*16, 1<<30)
	v, err := view.FromSlice(data, 4, 4, 8, 8, 16)
	if err != nil {
		b.Fatal(err)
	}
	r, err := v.Reverse(4)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(len(data) * 8))
	b.ResetTimer()
	for range b.N {
		if _, err := aggregate.Max[int64](r); err != nil {
			b.Fatal(err)
		}
	}
}
