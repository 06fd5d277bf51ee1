package op

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestKindNames(t *testing.T) {
	for _, k := range Kinds() {
		got, ok := ParseKind(k.String())
		require.True(t, ok, k.String())
		require.Equal(t, k, got)
	}

	k, ok := ParseKind(" MAX ")
	require.True(t, ok)
	require.Equal(t, KindMax, k)

	_, ok = ParseKind("unknown")
	require.False(t, ok)
	require.Equal(t, "unknown", Kind(99).String())
}

func TestKindOf(t *testing.T) {
	require.Equal(t, KindAdd, KindOf[int32](Add[int32]{}))
	require.Equal(t, KindXor, KindOf[uint8](Xor[uint8]{}))
	require.Equal(t, KindPow, KindOf[complex64](ComplexPow[complex64]{}))
	require.Equal(t, KindMin, KindOf[float16.Float16](HalfMin{}))

	custom := Func[int](func(a, b int) int { return a + b })
	require.Equal(t, KindUnknown, KindOf[int](custom))
	require.Equal(t, 5, custom.Op(2, 3))
}

func TestArithmetic(t *testing.T) {
	require.Equal(t, int8(-128), Add[int8]{}.Op(127, 1))
	require.Equal(t, uint8(255), Sub[uint8]{}.Op(0, 1))
	require.Equal(t, 6.0, Mul[float64]{}.Op(2, 3))
	require.Equal(t, int32(-2), Div[int32]{}.Op(-7, 3))
	require.Equal(t, complex(0, 1), Div[complex128]{}.Op(complex(0, 2), 2))
}

func TestMod(t *testing.T) {
	require.Equal(t, int64(-1), Mod[int64]{}.Op(-7, 3))
	require.Equal(t, int64(1), Mod[int64]{}.Op(7, -3))
	require.Equal(t, int8(0), Mod[int8]{}.Op(math.MinInt8, -1))
	require.Equal(t, -1.5, Mod[float64]{}.Op(-7.5, 3))
	require.Equal(t, float32(0.5), Mod[float32]{}.Op(2.5, 1))

	require.Panics(t, func() { Mod[int]{}.Op(1, 0) })
}

func TestMinMax(t *testing.T) {
	require.Equal(t, 1, Min[int]{}.Op(3, 1))
	require.Equal(t, 3, Max[int]{}.Op(3, 1))

	nan := math.NaN()
	require.True(t, math.IsNaN(Min[float64]{}.Op(nan, 1)))
	require.Equal(t, 1.0, Min[float64]{}.Op(1, nan))
	require.True(t, math.IsNaN(Max[float64]{}.Op(nan, 1)))
	require.Equal(t, 1.0, Max[float64]{}.Op(1, nan))
}

func TestPow(t *testing.T) {
	tests := []struct {
		base, exp, want int32
	}{
		{2, 10, 1024},
		{3, 0, 1},
		{0, 0, 1},
		{-2, 3, -8},
		{2, 31, math.MinInt32},
		{1, -5, 1},
		{-1, -3, -1},
		{-1, -4, 1},
		{2, -1, 0},
		{0, -1, 0},
	}

	for _, tt := range tests {
		if got := (Pow[int32]{}).Op(tt.base, tt.exp); got != tt.want {
			t.Errorf("Pow(%d, %d) = %d, want %d", tt.base, tt.exp, got, tt.want)
		}
	}

	require.Equal(t, uint8(0), Pow[uint8]{}.Op(2, 8))
	require.Equal(t, uint8(81), Pow[uint8]{}.Op(3, 4))
	require.Equal(t, 0.25, Pow[float64]{}.Op(2, -2))
	require.Equal(t, float32(8), Pow[float32]{}.Op(2, 3))

	got := ComplexPow[complex128]{}.Op(complex(0, 1), 2)
	require.InDelta(t, -1, real(got), 1e-12)
	require.InDelta(t, 0, imag(got), 1e-12)
	require.Equal(t, cmplx.Pow(2, 0.5), ComplexPow[complex128]{}.Op(2, 0.5))
}

func TestBitwise(t *testing.T) {
	require.Equal(t, uint16(0x0f00), And[uint16]{}.Op(0xff00, 0x0ff0))
	require.Equal(t, uint16(0xfff0), Or[uint16]{}.Op(0xff00, 0x0ff0))
	require.Equal(t, uint16(0xf0f0), Xor[uint16]{}.Op(0xff00, 0x0ff0))
	require.Equal(t, int64(-1), Or[int64]{}.Op(-2, 1))
}

func TestHalf(t *testing.T) {
	a := float16.Fromfloat32(1.5)
	b := float16.Fromfloat32(2.25)

	require.Equal(t, float32(3.75), HalfAdd{}.Op(a, b).Float32())
	require.Equal(t, float32(3.375), HalfMul{}.Op(a, b).Float32())
	require.Equal(t, a, HalfMin{}.Op(a, b))
	require.Equal(t, b, HalfMax{}.Op(a, b))

	// 2048 + 1 is not representable in float16 and rounds back to 2048.
	big := float16.Fromfloat32(2048)
	require.Equal(t, float32(2048), HalfAdd{}.Op(big, float16.Fromfloat32(1)).Float32())
}
