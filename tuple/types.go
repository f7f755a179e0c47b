// SPDX-License-Identifier: MIT

package tuple

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Number is the element constraint of the additive and multiplicative
// operations (Sum, Prod, CumSum, CumProd, Diff, Strides).
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// StaticLength tags a non-negative tuple length. It carries no elements;
// its only behavior is saturating arithmetic, so that the length of a
// derived tuple can be computed before the tuple is built:
//
//	NewStaticLength(N1) + NewStaticLength(N2) == N1+N2
//	NewStaticLength(N1) - NewStaticLength(N2) == max(0, N1-N2)
//
// The zero value is a valid length of 0.
type StaticLength struct {
	n int
}

// NewStaticLength returns the tag for n, or ErrNegativeLength if n < 0.
func NewStaticLength(n int) (StaticLength, error) {
	if n < 0 {
		return StaticLength{}, tupleErrorf("NewStaticLength", ErrNegativeLength)
	}

	return StaticLength{n: n}, nil
}

// MustStaticLength is like NewStaticLength but panics on a negative n.
// Use it for compile-time constants only.
func MustStaticLength(n int) StaticLength {
	l, err := NewStaticLength(n)
	if err != nil {
		panic(err)
	}

	return l
}

// Len returns the tagged length.
func (l StaticLength) Len() int { return l.n }

// Add returns the tag for l.Len()+o.Len().
func (l StaticLength) Add(o StaticLength) StaticLength {
	return StaticLength{n: l.n + o.n}
}

// Sub returns the tag for max(0, l.Len()-o.Len()). It never goes negative.
func (l StaticLength) Sub(o StaticLength) StaticLength {
	if o.n >= l.n {
		return StaticLength{}
	}

	return StaticLength{n: l.n - o.n}
}

// String implements fmt.Stringer.
func (l StaticLength) String() string {
	return "StaticLength(" + strconv.Itoa(l.n) + ")"
}

// NTuple builds a tuple of length n whose i-th element is f(i).
func NTuple[T any](n StaticLength, f func(i int) T) []T {
	out := make([]T, n.n)
	for i := range out {
		out[i] = f(i)
	}

	return out
}
