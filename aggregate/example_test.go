package aggregate_test

import (
	"fmt"

	"github.com/cwbudde/algo-ndfold/aggregate"
	"github.com/cwbudde/algo-ndfold/op"
	"github.com/cwbudde/algo-ndfold/view"
)

func ExampleAggregate() {
	data := []int{0, 1, 2, 3, 4, 5, 6, 7}
	m, _ := view.FromSlice(data, 2, 4)

	// Every other column, then transposed.
	cols, _ := m.Slice(1, 0, 2, 2)
	t, _ := cols.Permute(1, 0)

	sum, _ := aggregate.Aggregate[int](op.Add[int]{}, t)
	diff, _ := aggregate.Aggregate[int](op.Sub[int]{}, t)
	stage, _ := aggregate.Plan[int](op.Add[int]{}, t)

	fmt.Println(view.Materialize[int](t))
	fmt.Println(sum, diff, stage)
	// Output:
	// [0 4 2 6]
	// 12 -12 specialized
}

func ExampleMean() {
	v, _ := view.FromSlice([]float64{1, 2, 3, 4}, 2, 2)
	mean, _ := aggregate.Mean[float64](v)
	fmt.Println(mean)
	// Output: 2.5
}
