package aggregate

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"

	"github.com/cwbudde/algo-ndfold/internal/native"
	"github.com/cwbudde/algo-ndfold/op"
	"github.com/cwbudde/algo-ndfold/view"
)

// Stage identifies the dispatch stage that computes a result.
type Stage int

const (
	StageShortcut Stage = iota
	StageSpecialized
	StageGeneric
)

func (s Stage) String() string {
	switch s {
	case StageShortcut:
		return "shortcut"
	case StageSpecialized:
		return "specialized"
	case StageGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// Aggregate folds o over all elements of v.
//
// It returns ErrNilOperator, ErrNilView, ErrScalarView, ErrInvalidShape or
// ErrEmpty (possibly wrapped) when no element can seed the fold. Panics
// raised by o, such as an integer division by zero, propagate unchanged.
func Aggregate[T any](o op.Operator[T], v view.View[T], opts ...Option) (T, error) {
	var zero T
	if err := validate(o, v); err != nil {
		return zero, err
	}
	cfg := applyOptions(opts...)
	kind := op.KindOf(o)

	if cfg.shortcut {
		if r, ok := native.TryAggregate(kind, v, cfg.reassociate); ok {
			return r, nil
		}
	}
	if cfg.specialize {
		if row, ok := specializedRow[T](kind); ok {
			return traverse(v, row), nil
		}
	}
	return traverse(v, opRow(o)), nil
}

// MustAggregate is like Aggregate but panics if v cannot be aggregated.
func MustAggregate[T any](o op.Operator[T], v view.View[T], opts ...Option) T {
	r, err := Aggregate(o, v, opts...)
	if err != nil {
		exceptions.Panicf("MustAggregate: %v", err)
	}
	return r
}

// Plan reports which stage Aggregate would use for the same arguments,
// without folding anything.
func Plan[T any](o op.Operator[T], v view.View[T], opts ...Option) (Stage, error) {
	if err := validate(o, v); err != nil {
		return StageGeneric, err
	}
	cfg := applyOptions(opts...)
	kind := op.KindOf(o)

	if cfg.shortcut {
		if _, ok := native.Kernel(kind, v, cfg.reassociate); ok {
			return StageShortcut, nil
		}
	}
	if cfg.specialize {
		if _, ok := specializedRow[T](kind); ok {
			return StageSpecialized, nil
		}
	}
	return StageGeneric, nil
}

func validate[T any](o op.Operator[T], v view.View[T]) error {
	if o == nil {
		return ErrNilOperator
	}
	if f, ok := o.(op.Func[T]); ok && f == nil {
		return ErrNilOperator
	}
	if v == nil {
		return ErrNilView
	}
	if s, ok := v.(*view.Strided[T]); ok && s == nil {
		return ErrNilView
	}

	rank := v.Rank()
	if rank == 0 {
		return ErrScalarView
	}
	for d := range rank {
		if n := v.Dim(d).Length; n < 0 {
			return errors.Wrapf(ErrInvalidShape, "axis %d has length %d", d, n)
		}
	}
	for d := range rank {
		if v.Dim(d).Length == 0 {
			return errors.Wrapf(ErrEmpty, "axis %d has length 0", d)
		}
	}
	return nil
}
