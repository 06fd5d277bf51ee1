package unrolled

import (
	"github.com/cwbudde/algo-ndfold/internal/dtype"
	"github.com/cwbudde/algo-ndfold/internal/native/registry"
	"github.com/cwbudde/algo-ndfold/op"
	vecmath "github.com/cwbudde/algo-vecmath"
)

// Kernels returns the kernel set shared by the SIMD-level entries: the
// four-lane integer kernels for every integer type, plus the algo-vecmath
// float64 sum, which regroups additions and is therefore marked
// Reassociates.
func Kernels() map[registry.Key]registry.Kernel {
	m := make(map[registry.Key]registry.Kernel)

	addInteger[int8](m)
	addInteger[int16](m)
	addInteger[int32](m)
	addInteger[int64](m)
	addInteger[int](m)
	addInteger[uint8](m)
	addInteger[uint16](m)
	addInteger[uint32](m)
	addInteger[uint64](m)
	addInteger[uint](m)

	m[registry.Key{Kind: op.KindAdd, DType: dtype.Float64}] = registry.Kernel{
		Fn:           vecmath.Sum,
		Reassociates: true,
	}

	return m
}

func addInteger[T op.Integer](m map[registry.Key]registry.Kernel) {
	dt := dtype.Of[T]()
	m[registry.Key{Kind: op.KindAdd, DType: dt}] = registry.Kernel{Fn: Add[T]}
	m[registry.Key{Kind: op.KindMul, DType: dt}] = registry.Kernel{Fn: Mul[T]}
	m[registry.Key{Kind: op.KindMin, DType: dt}] = registry.Kernel{Fn: Min[T]}
	m[registry.Key{Kind: op.KindMax, DType: dt}] = registry.Kernel{Fn: Max[T]}
	m[registry.Key{Kind: op.KindAnd, DType: dt}] = registry.Kernel{Fn: And[T]}
	m[registry.Key{Kind: op.KindOr, DType: dt}] = registry.Kernel{Fn: Or[T]}
	m[registry.Key{Kind: op.KindXor, DType: dt}] = registry.Kernel{Fn: Xor[T]}
}
