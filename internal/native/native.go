// Package native is the bulk-reduction shortcut tried before the strided
// traversal. It only handles contiguous views of built-in element types with
// a recognized operator kind, and it reports a miss instead of failing for
// everything else.
package native

import (
	"sync"

	"github.com/cwbudde/algo-ndfold/internal/dtype"
	"github.com/cwbudde/algo-ndfold/internal/native/registry"
	"github.com/cwbudde/algo-ndfold/op"
	"github.com/cwbudde/algo-ndfold/view"
	"github.com/cwbudde/algo-vecmath/cpu"
	"k8s.io/klog/v2"
)

type cacheKey struct {
	key         registry.Key
	reassociate bool
	features    cpu.Features
}

type resolved struct {
	name   string
	kernel registry.Kernel
	ok     bool
}

// selections caches registry lookups. Features are part of the key so that
// forced CPU features in tests resolve independently.
var selections sync.Map // cacheKey -> resolved

func resolve(key registry.Key, reassociate bool) resolved {
	ck := cacheKey{key: key, reassociate: reassociate, features: cpu.DetectFeatures()}
	if r, ok := selections.Load(ck); ok {
		return r.(resolved)
	}

	var r resolved
	if entry, k, ok := registry.Global.Lookup(ck.features, key, reassociate); ok {
		r = resolved{name: entry.Name, kernel: k, ok: true}
		klog.V(2).Infof("native: %s/%s uses %q kernel (reassociates=%v)", key.Kind, key.DType, entry.Name, k.Reassociates)
	} else {
		klog.V(2).Infof("native: no kernel for %s/%s", key.Kind, key.DType)
	}
	selections.Store(ck, r)
	return r
}

// contiguousRun returns the registry key and the flat run of v, or false if
// the view cannot be handed to a contiguous kernel.
func contiguousRun[T any](kind op.Kind, v view.View[T]) (registry.Key, []T, bool) {
	if kind == op.KindUnknown {
		return registry.Key{}, nil, false
	}
	dt := dtype.Of[T]()
	if dt == dtype.Invalid {
		return registry.Key{}, nil, false
	}
	n := view.Size(v)
	if n == 0 || !view.IsContiguous(v) {
		return registry.Key{}, nil, false
	}
	off := v.Offset()
	return registry.Key{Kind: kind, DType: dt}, v.Data()[off : off+n], true
}

// TryAggregate folds v with the native kernel for (kind, T). It returns
// false, without touching v, when the view is not contiguous, T has no
// runtime dtype or no eligible kernel is registered. Kernels that regroup
// floating-point operations are only eligible with reassociate set.
func TryAggregate[T any](kind op.Kind, v view.View[T], reassociate bool) (T, bool) {
	var zero T
	key, run, ok := contiguousRun(kind, v)
	if !ok {
		return zero, false
	}
	r := resolve(key, reassociate)
	if !r.ok {
		return zero, false
	}
	fn, ok := r.kernel.Fn.(func([]T) T)
	if !ok {
		return zero, false
	}
	return fn(run), true
}

// Kernel reports the name of the kernel set TryAggregate would use for v,
// or false if it would miss.
func Kernel[T any](kind op.Kind, v view.View[T], reassociate bool) (string, bool) {
	key, _, ok := contiguousRun(kind, v)
	if !ok {
		return "", false
	}
	r := resolve(key, reassociate)
	if !r.ok {
		return "", false
	}
	if _, ok := r.kernel.Fn.(func([]T) T); !ok {
		return "", false
	}
	return r.name, true
}
