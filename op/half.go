package op

import "github.com/x448/float16"

// Half-precision operators compute in float32 and round the result back to
// float16 after every step, so each fold step rounds exactly once.

// HalfAdd is a + b for float16 values.
type HalfAdd struct{}

func (HalfAdd) Op(a, b float16.Float16) float16.Float16 {
	return float16.Fromfloat32(a.Float32() + b.Float32())
}
func (HalfAdd) Kind() Kind { return KindAdd }

// HalfMul is a * b for float16 values.
type HalfMul struct{}

func (HalfMul) Op(a, b float16.Float16) float16.Float16 {
	return float16.Fromfloat32(a.Float32() * b.Float32())
}
func (HalfMul) Kind() Kind { return KindMul }

// HalfMin returns b if b < a, else a.
type HalfMin struct{}

func (HalfMin) Op(a, b float16.Float16) float16.Float16 {
	if b.Float32() < a.Float32() {
		return b
	}
	return a
}
func (HalfMin) Kind() Kind { return KindMin }

// HalfMax returns b if b > a, else a.
type HalfMax struct{}

func (HalfMax) Op(a, b float16.Float16) float16.Float16 {
	if b.Float32() > a.Float32() {
		return b
	}
	return a
}
func (HalfMax) Kind() Kind { return KindMax }
