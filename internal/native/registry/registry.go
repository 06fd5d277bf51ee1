// Package registry provides the implementation registry for the native
// bulk-reduction shortcut.
//
// Kernel sets for different instruction-set levels (generic, AVX2, NEON)
// register themselves from init() functions. Lookup walks the entries in
// descending priority and returns the first one the CPU supports that
// carries a kernel for the requested (operator kind, element type) pair, so
// a high-priority entry only needs to implement the pairs it accelerates.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-ndfold/internal/dtype"
	"github.com/cwbudde/algo-ndfold/op"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Key selects a kernel by operator kind and element type.
type Key struct {
	Kind  op.Kind
	DType dtype.DType
}

// Kernel is one contiguous reduction. Fn has the concrete type
// func([]T) T for the element type named by the key; it folds a non-empty
// slice.
type Kernel struct {
	Fn any

	// Reassociates marks kernels that may regroup operations (e.g. SIMD
	// floating-point sums). Their result can differ from a left fold, so
	// they are only eligible when the caller allows it.
	Reassociates bool
}

// OpEntry is one registered kernel set.
type OpEntry struct {
	// Name identifies the kernel set (e.g. "generic", "avx2", "neon").
	Name string

	// SIMDLevel is the instruction-set level the kernels require. Entries
	// the CPU does not support are skipped.
	SIMDLevel cpu.SIMDLevel

	// Priority orders entries; higher values are tried first.
	// Suggested values:
	//   - 0:  generic pure-Go kernels
	//   - 15: NEON
	//   - 20: AVX2
	//   - 25: AVX-512
	Priority int

	// Kernels holds the reductions this entry implements. Missing keys fall
	// through to lower-priority entries.
	Kernels map[Key]Kernel
}

// OpRegistry stores available kernel sets.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default native kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry supported by features that has
// an eligible kernel for key, together with that kernel.
func (r *OpRegistry) Lookup(features cpu.Features, key Key, reassociate bool) (*OpEntry, Kernel, bool) {
	// Sorting mutates entries, so it needs the write lock. The scan below
	// only reads and runs under the read lock.
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if !cpu.Supports(features, entry.SIMDLevel) {
			continue
		}
		k, ok := entry.Kernels[key]
		if !ok || (k.Reassociates && !reassociate) {
			continue
		}
		return entry, k, true
	}

	return nil, Kernel{}, false
}

// sortByPriority orders entries by descending priority with an insertion
// sort, which is stable so equal priorities keep registration order.
// Callers must hold the write lock.
func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
