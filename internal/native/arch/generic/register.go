package generic

import (
	"github.com/cwbudde/algo-ndfold/internal/dtype"
	"github.com/cwbudde/algo-ndfold/internal/native/registry"
	"github.com/cwbudde/algo-ndfold/op"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the generic (pure Go) kernels with the native registry.
//
// Generic kernels are sequential left folds over the contiguous run, so they
// are exact for every element type, floating point included.
//
// Priority: 0 (lowest - used when no SIMD entry carries the requested kernel)
func init() {
	kernels := make(map[registry.Key]registry.Kernel)

	registerInteger[int8](kernels)
	registerInteger[int16](kernels)
	registerInteger[int32](kernels)
	registerInteger[int64](kernels)
	registerInteger[int](kernels)
	registerInteger[uint8](kernels)
	registerInteger[uint16](kernels)
	registerInteger[uint32](kernels)
	registerInteger[uint64](kernels)
	registerInteger[uint](kernels)
	registerReal[float32](kernels)
	registerReal[float64](kernels)
	registerNumber[complex64](kernels)
	registerNumber[complex128](kernels)

	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Kernels:   kernels,
	})
}

func registerNumber[T op.Number](m map[registry.Key]registry.Kernel) {
	dt := dtype.Of[T]()
	m[registry.Key{Kind: op.KindAdd, DType: dt}] = registry.Kernel{Fn: Add[T]}
	m[registry.Key{Kind: op.KindSub, DType: dt}] = registry.Kernel{Fn: Sub[T]}
	m[registry.Key{Kind: op.KindMul, DType: dt}] = registry.Kernel{Fn: Mul[T]}
}

func registerReal[T op.Real](m map[registry.Key]registry.Kernel) {
	registerNumber[T](m)
	dt := dtype.Of[T]()
	m[registry.Key{Kind: op.KindMin, DType: dt}] = registry.Kernel{Fn: Min[T]}
	m[registry.Key{Kind: op.KindMax, DType: dt}] = registry.Kernel{Fn: Max[T]}
}

func registerInteger[T op.Integer](m map[registry.Key]registry.Kernel) {
	registerReal[T](m)
	dt := dtype.Of[T]()
	m[registry.Key{Kind: op.KindAnd, DType: dt}] = registry.Kernel{Fn: And[T]}
	m[registry.Key{Kind: op.KindOr, DType: dt}] = registry.Kernel{Fn: Or[T]}
	m[registry.Key{Kind: op.KindXor, DType: dt}] = registry.Kernel{Fn: Xor[T]}
}
