//go:build purego || !(amd64 || arm64)

package native

import (
	_ "github.com/cwbudde/algo-ndfold/internal/native/arch/generic" // register generic kernels
	_ "github.com/cwbudde/algo-ndfold/internal/native/registry"     // initialize kernel registry
)
