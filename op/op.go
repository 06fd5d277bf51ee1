// Package op defines the binary operators folded by the aggregate engine.
//
// An operator is any value with an Op(a, b T) T method. Operators may also
// report a Kind; the engine uses the kind only to select faster kernels, so
// an operator that reports a recognized kind must compute exactly what the
// operator of that kind in this package computes for the same element type.
package op

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// Operator is a pure binary function T x T -> T.
type Operator[T any] interface {
	Op(a, b T) T
}

// Kinded is implemented by operators that advertise their Kind.
type Kinded interface {
	Kind() Kind
}

// Integer is the set of Go integer types.
type Integer interface {
	constraints.Integer
}

// Real is the set of Go integer and floating-point types.
type Real interface {
	constraints.Integer | constraints.Float
}

// Complex is the set of Go complex types.
type Complex interface {
	constraints.Complex
}

// Number is the set of Go numeric types.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Kind tags an operator for fast-path selection.
type Kind int

// Recognized operator kinds.
const (
	KindUnknown Kind = iota
	KindAdd
	KindSub
	KindMul
	KindDiv
	KindMod
	KindMin
	KindMax
	KindPow
	KindAnd
	KindOr
	KindXor
)

var kindNames = [...]string{
	KindUnknown: "unknown",
	KindAdd:     "add",
	KindSub:     "sub",
	KindMul:     "mul",
	KindDiv:     "div",
	KindMod:     "mod",
	KindMin:     "min",
	KindMax:     "max",
	KindPow:     "pow",
	KindAnd:     "and",
	KindOr:      "or",
	KindXor:     "xor",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds returns all recognized kinds in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames)-1)
	for k := KindAdd; int(k) < len(kindNames); k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind returns the kind with the given (case-insensitive) name.
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, k := range Kinds() {
		if kindNames[k] == name {
			return k, true
		}
	}
	return KindUnknown, false
}

// KindOf returns the kind advertised by o, or KindUnknown.
func KindOf[T any](o Operator[T]) Kind {
	if k, ok := o.(Kinded); ok {
		return k.Kind()
	}
	return KindUnknown
}

// Func adapts a plain function to Operator. Its kind is unknown, so it is
// always folded through the generic path.
type Func[T any] func(a, b T) T

// Op calls f.
func (f Func[T]) Op(a, b T) T { return f(a, b) }
