// Package stats computes summary statistics of strided views with the
// aggregate engine.
package stats

import (
	"math"

	"github.com/cwbudde/algo-ndfold/aggregate"
	"github.com/cwbudde/algo-ndfold/op"
	"github.com/cwbudde/algo-ndfold/view"
)

// Summary holds level statistics of all elements of a view.
//
// The _dB fields treat the values as amplitudes (20 * log10 |x|), as for
// sampled signals. They are -Inf for zero and carry no meaning for data that
// is not amplitude-like, such as counts or indices.
//
//nolint:revive
type Summary struct {
	Length   int
	Sum      float64
	Mean     float64
	Min      float64
	Max      float64
	Peak     float64 // max(|max|, |min|)
	Range    float64 // max - min
	Mean_dB  float64
	Peak_dB  float64
	Range_dB float64
}

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

// Calculate folds v three times (sum, min, max) and derives the remaining
// fields. Errors are those of aggregate.Aggregate. The sum is accumulated in
// T.
func Calculate[T op.Real](v view.View[T], opts ...aggregate.Option) (Summary, error) {
	sum, err := aggregate.Sum(v, opts...)
	if err != nil {
		return Summary{}, err
	}
	lo, err := aggregate.Min(v, opts...)
	if err != nil {
		return Summary{}, err
	}
	hi, err := aggregate.Max(v, opts...)
	if err != nil {
		return Summary{}, err
	}

	n := view.Size(v)
	s := Summary{
		Length: n,
		Sum:    float64(sum),
		Min:    float64(lo),
		Max:    float64(hi),
	}
	s.Mean = s.Sum / float64(n)
	s.Peak = math.Max(math.Abs(s.Max), math.Abs(s.Min))
	s.Range = s.Max - s.Min
	s.Mean_dB = ampTodB(s.Mean)
	s.Peak_dB = ampTodB(s.Peak)
	s.Range_dB = ampTodB(s.Range)
	return s, nil
}
