//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-ndfold/internal/native/arch/unrolled"
	"github.com/cwbudde/algo-ndfold/internal/native/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the AVX2-level kernels with the native registry.
//
// Integer kernels are four-lane unrolled folds that the compiler schedules
// across the wider AVX2 pipeline; the float64 sum delegates to algo-vecmath,
// which picks its own SIMD path.
//
// Priority: 20 (preferred over generic when available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		Kernels:   unrolled.Kernels(),
	})
}
