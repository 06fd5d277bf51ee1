// Command ndfold folds an operator over a synthetic strided view and
// compares the dispatch stages of the aggregate engine.
//
// Usage:
//
//	ndfold [flags]
//
// Examples:
//
//	ndfold -shape 2,3,4 -op add
//	ndfold -shape 64,64,64 -dtype float64 -fill random -transpose -bench 100
//	ndfold -shape 8,9 -strides 20,2 -offset 3 -op max -dtype int32
//	ndfold -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/cwbudde/algo-ndfold/internal/dtype"
	"github.com/cwbudde/algo-ndfold/internal/native/registry"
	"github.com/cwbudde/algo-ndfold/op"
)

type options struct {
	lengths   []int
	strides   []int
	offset    int
	kind      op.Kind
	fill      string
	seed      uint64
	transpose bool
	step      int
	bench     int
}

func main() {
	klog.InitFlags(nil)

	shape := flag.String("shape", "2,3,4", "comma-separated axis lengths")
	strides := flag.String("strides", "", "comma-separated axis strides (default row-major)")
	offset := flag.Int("offset", 0, "flat position of the first element")
	opName := flag.String("op", "add", "operator kind (see -list)")
	dtName := flag.String("dtype", "int64", "element type: int32, int64, float32 or float64")
	fill := flag.String("fill", "iota", "storage fill: iota or random")
	seed := flag.Uint64("seed", 1, "seed for -fill random")
	transpose := flag.Bool("transpose", false, "reverse the axis order of the view")
	step := flag.Int("step", 1, "keep every n-th element of the last axis")
	bench := flag.Int("bench", 1, "number of repetitions per stage")
	list := flag.Bool("list", false, "list operators, element types and native kernel sets")
	generic := flag.Bool("generic", false, "disable SIMD kernels (cpu ForceGeneric)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ndfold [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Folds an operator over a synthetic strided view with each dispatch stage.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ndfold -shape 2,3,4 -op add\n")
		fmt.Fprintf(os.Stderr, "  ndfold -shape 64,64,64 -dtype float64 -fill random -transpose -bench 100\n")
		fmt.Fprintf(os.Stderr, "  ndfold -list\n")
	}
	flag.Parse()
	defer klog.Flush()

	if *generic {
		cpu.SetForcedFeatures(cpu.Features{ForceGeneric: true})
	}

	if *list {
		printList()
		return
	}

	kind, ok := op.ParseKind(*opName)
	if !ok {
		klog.Exitf("unknown operator %q (use -list to see available)", *opName)
	}
	dt, ok := dtype.Parse(*dtName)
	if !ok {
		klog.Exitf("unknown element type %q", *dtName)
	}
	if !dt.IsInteger() && !dt.IsFloat() {
		klog.Exitf("element type %s is not a real type", dt)
	}
	if *fill != "iota" && *fill != "random" {
		klog.Exitf("unknown fill %q, want iota or random", *fill)
	}
	if *step < 1 {
		klog.Exitf("-step must be at least 1, got %d", *step)
	}
	if *bench < 1 {
		klog.Exitf("-bench must be at least 1, got %d", *bench)
	}

	opts := options{
		offset:    *offset,
		kind:      kind,
		fill:      *fill,
		seed:      *seed,
		transpose: *transpose,
		step:      *step,
		bench:     *bench,
	}
	var err error
	if opts.lengths, err = parseInts(*shape); err != nil {
		klog.Exitf("-shape: %v", err)
	}
	if *strides != "" {
		if opts.strides, err = parseInts(*strides); err != nil {
			klog.Exitf("-strides: %v", err)
		}
		if len(opts.strides) != len(opts.lengths) {
			klog.Exitf("-strides has %d entries for %d axes", len(opts.strides), len(opts.lengths))
		}
	}

	switch dt {
	case dtype.Int32:
		err = run(opts, integerOperators[int32]())
	case dtype.Int64:
		err = run(opts, integerOperators[int64]())
	case dtype.Float32:
		err = run(opts, realOperators[float32]())
	case dtype.Float64:
		err = run(opts, realOperators[float64]())
	default:
		klog.Exitf("element type %s is not supported by ndfold", dt)
	}
	if err != nil {
		klog.Exitf("%v", err)
	}
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Errorf("invalid integer %q", f)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, errors.Errorf("no values in %q", s)
	}
	return out, nil
}

func printList() {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() {
		if err := tw.Flush(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		}
	}()

	_, _ = fmt.Fprintf(tw, "Operator\tInteger\tFloat\n")
	_, _ = fmt.Fprintf(tw, "--------\t-------\t-----\n")
	for _, k := range op.Kinds() {
		_, isReal := realOperators[float64]()[k]
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", k, "yes", yesNo(isReal))
	}

	_, _ = fmt.Fprintf(tw, "\nKernel set\tSIMD\tPriority\tKernels\tSupported\n")
	_, _ = fmt.Fprintf(tw, "----------\t----\t--------\t-------\t---------\n")
	features := cpu.DetectFeatures()
	entries := registry.Global.ListEntries()
	sort.Slice(entries, func(i, j int) bool { return entries[i].Priority > entries[j].Priority })
	for _, e := range entries {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n",
			e.Name, e.SIMDLevel, e.Priority, len(e.Kernels), yesNo(cpu.Supports(features, e.SIMDLevel)))
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
