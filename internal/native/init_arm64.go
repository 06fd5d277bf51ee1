//go:build arm64 && !purego

package native

import (
	_ "github.com/cwbudde/algo-ndfold/internal/native/arch/arm64/neon" // register NEON kernels
	_ "github.com/cwbudde/algo-ndfold/internal/native/arch/generic"    // register generic kernels
	_ "github.com/cwbudde/algo-ndfold/internal/native/registry"        // initialize kernel registry
)
