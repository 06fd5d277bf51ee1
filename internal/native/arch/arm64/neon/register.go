//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-ndfold/internal/native/arch/unrolled"
	"github.com/cwbudde/algo-ndfold/internal/native/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the NEON-level kernels with the native registry.
//
// Priority: 15
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,
		Kernels:   unrolled.Kernels(),
	})
}
