package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/cwbudde/algo-ndfold/aggregate"
	"github.com/cwbudde/algo-ndfold/internal/dtype"
	"github.com/cwbudde/algo-ndfold/internal/native"
	"github.com/cwbudde/algo-ndfold/op"
	"github.com/cwbudde/algo-ndfold/view"
)

func realOperators[T op.Real]() map[op.Kind]op.Operator[T] {
	return map[op.Kind]op.Operator[T]{
		op.KindAdd: op.Add[T]{},
		op.KindSub: op.Sub[T]{},
		op.KindMul: op.Mul[T]{},
		op.KindDiv: op.Div[T]{},
		op.KindMod: op.Mod[T]{},
		op.KindMin: op.Min[T]{},
		op.KindMax: op.Max[T]{},
		op.KindPow: op.Pow[T]{},
	}
}

func integerOperators[T op.Integer]() map[op.Kind]op.Operator[T] {
	ops := realOperators[T]()
	ops[op.KindAnd] = op.And[T]{}
	ops[op.KindOr] = op.Or[T]{}
	ops[op.KindXor] = op.Xor[T]{}
	return ops
}

// fillStorage returns n storage elements. Values never equal zero, so div
// and mod are safe over integers.
func fillStorage[T op.Real](n int, fill string, seed uint64) []T {
	data := make([]T, n)
	if fill == "iota" {
		for i := range data {
			data[i] = T(i + 1)
		}
		return data
	}

	rng := rand.New(rand.NewPCG(seed, seed+1))
	integer := dtype.Of[T]().IsInteger()
	for i := range data {
		if integer {
			v := T(rng.IntN(100) + 1)
			if rng.IntN(2) == 0 {
				v = 0 - v
			}
			data[i] = v
		} else {
			data[i] = T(rng.Float64()*2 - 1)
		}
	}
	return data
}

// buildView lays out the storage described by opts and derives the view
// from it.
func buildView[T op.Real](opts options) (*view.Strided[T], error) {
	for d, l := range opts.lengths {
		if l < 0 {
			return nil, errors.Errorf("axis %d has negative length %d", d, l)
		}
	}

	var shape view.Shape
	if opts.strides == nil {
		shape = view.RowMajor(opts.lengths...)
	} else {
		shape.Dims = make([]view.Dim, len(opts.lengths))
		for d := range shape.Dims {
			shape.Dims[d] = view.Dim{Length: opts.lengths[d], Stride: opts.strides[d]}
		}
	}
	shape.Offset = opts.offset

	lo, hi, ok := shape.Bounds()
	if !ok {
		return nil, errors.Errorf("shape %s has no elements", shape)
	}
	if lo < 0 {
		return nil, errors.Errorf("shape %s reaches position %d before the start of storage", shape, lo)
	}

	v := must.M1(view.New(fillStorage[T](hi+1, opts.fill, opts.seed), shape))
	if opts.transpose {
		axes := make([]int, v.Rank())
		for d := range axes {
			axes[d] = len(axes) - 1 - d
		}
		v = must.M1(v.Permute(axes...))
	}
	if opts.step > 1 {
		last := v.Rank() - 1
		n := (v.Dim(last).Length + opts.step - 1) / opts.step
		v = must.M1(v.Slice(last, 0, n, opts.step))
	}
	return v, nil
}

type stageRun struct {
	label       string
	reassociate bool
	opts        []aggregate.Option
}

var stageRuns = []stageRun{
	{"auto", false, nil},
	{"auto+reassociate", true, []aggregate.Option{aggregate.WithReassociation()}},
	{"no-shortcut", false, []aggregate.Option{aggregate.WithoutShortcut()}},
	{"generic", false, []aggregate.Option{aggregate.ForceGeneric()}},
}

func run[T op.Real](opts options, ops map[op.Kind]op.Operator[T]) error {
	o, ok := ops[opts.kind]
	if !ok {
		return errors.Errorf("operator %s is not defined for this element type", opts.kind)
	}
	v, err := buildView[T](opts)
	if err != nil {
		return err
	}

	n := v.Size()
	bytesPerRun := uint64(n) * uint64(dtype.Of[T]().Size())
	klog.V(1).Infof("view %s over %d storage elements", v.Shape(), len(v.Data()))
	fmt.Printf("View: %s  elements: %s  op: %s\n\n", v.Shape(), humanize.Comma(int64(n)), opts.kind)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "Run\tStage\tKernel\tResult\tTime/op\tThroughput\n")
	_, _ = fmt.Fprintf(tw, "---\t-----\t------\t------\t-------\t----------\n")
	for _, sr := range stageRuns {
		stage, err := aggregate.Plan[T](o, v, sr.opts...)
		if err != nil {
			return err
		}
		kernel := "-"
		if stage == aggregate.StageShortcut {
			if name, ok := native.Kernel[T](opts.kind, v, sr.reassociate); ok {
				kernel = name
			}
		}

		var result T
		start := time.Now()
		for range opts.bench {
			if result, err = aggregate.Aggregate[T](o, v, sr.opts...); err != nil {
				return err
			}
		}
		elapsed := time.Since(start)
		perOp := elapsed / time.Duration(opts.bench)

		throughput := "-"
		if secs := elapsed.Seconds(); secs > 0 {
			throughput = humanize.Bytes(uint64(float64(bytesPerRun)*float64(opts.bench)/secs)) + "/s"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%v\t%s\t%s\n", sr.label, stage, kernel, result, perOp, throughput)
	}
	return tw.Flush()
}
