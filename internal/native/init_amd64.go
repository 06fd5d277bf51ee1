//go:build amd64 && !purego

package native

import (
	_ "github.com/cwbudde/algo-ndfold/internal/native/arch/amd64/avx2" // register AVX2 kernels
	_ "github.com/cwbudde/algo-ndfold/internal/native/arch/generic"    // register generic kernels
	_ "github.com/cwbudde/algo-ndfold/internal/native/registry"        // initialize kernel registry
)
