package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-ndfold/aggregate"
	"github.com/cwbudde/algo-ndfold/internal/testutil"
)

func TestReductions(t *testing.T) {
	v := fromSlice(t, []int32{4, -2, 7, 1, 3, 5}, 2, 3)
	rows, err := v.Permute(1, 0)
	require.NoError(t, err)

	sum, err := aggregate.Sum[int32](rows)
	require.NoError(t, err)
	require.Equal(t, int32(18), sum)

	prod, err := aggregate.Prod[int32](v)
	require.NoError(t, err)
	require.Equal(t, int32(-840), prod)

	lo, err := aggregate.Min[int32](rows)
	require.NoError(t, err)
	require.Equal(t, int32(-2), lo)

	hi, err := aggregate.Max[int32](v)
	require.NoError(t, err)
	require.Equal(t, int32(7), hi)

	mean, err := aggregate.Mean[int32](rows)
	require.NoError(t, err)
	require.Equal(t, 3.0, mean)
}

func TestMeanFloat(t *testing.T) {
	v := fromSlice(t, testutil.Seq[float64](10), 2, 5)
	mean, err := aggregate.Mean[float64](v)
	require.NoError(t, err)
	testutil.RequireNearlyEqual(t, mean, 5.5, 0)

	_, err = aggregate.Mean[float64](fromSlice(t, []float64{}, 0))
	require.ErrorIs(t, err, aggregate.ErrEmpty)
}

func TestComplexSum(t *testing.T) {
	v := fromSlice(t, []complex128{1 + 2i, 3 - 1i, -0.5i}, 3)
	sum, err := aggregate.Sum[complex128](v)
	require.NoError(t, err)
	require.Equal(t, 4+0.5i, sum)
}
