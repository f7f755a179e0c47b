// SPDX-License-Identifier: MIT
// Package tuple — reductions and scans.
//
// These operations never fail. The empty tuple has explicit identities
// (Sum = 0, Prod = 1, CumSum = CumProd = empty) because tuples of sizes,
// indices and strides are routinely empty (zero-dimensional arrays).

package tuple

import "github.com/uberbrodt/fungo/fun"

// Sum returns the sum of the elements of t, or 0 for an empty tuple.
func Sum[T Number](t []T) T {
	if len(t) == 0 {
		return 0
	}

	return fun.Reduce(t, T(0), func(v T, acc T) T { return acc + v })
}

// Prod returns the product of the elements of t, or 1 for an empty tuple.
func Prod[T Number](t []T) T {
	if len(t) == 0 {
		return 1
	}

	return fun.Reduce(t, T(1), func(v T, acc T) T { return acc * v })
}

// CumSum returns the running sums of t; out[i] = t[0]+...+t[i].
// An empty tuple yields an empty tuple.
func CumSum[T Number](t []T) []T {
	out := make([]T, len(t))
	var acc T
	for i, v := range t {
		acc += v
		out[i] = acc
	}

	return out
}

// CumProd returns the running products of t; out[i] = t[0]*...*t[i].
// An empty tuple yields an empty tuple.
func CumProd[T Number](t []T) []T {
	out := make([]T, len(t))
	acc := T(1)
	for i, v := range t {
		acc *= v
		out[i] = acc
	}

	return out
}

// Diff is the finite difference operator: out[i] = v[i+1]-v[i].
// The result is one element shorter than v (empty for len(v) <= 1).
func Diff[T Number](v []T) []T {
	if len(v) < 2 {
		return []T{}
	}
	out := make([]T, len(v)-1)
	for i := range out {
		out[i] = v[i+1] - v[i]
	}

	return out
}

// Strides returns the column-major strides of an array with the given
// sizes: [1, s0, s0*s1, ..., s0*...*s(n-2)]. An empty sizes tuple
// (a zero-dimensional array) has no strides.
func Strides[T Number](sizes []T) []T {
	if len(sizes) == 0 {
		return []T{}
	}

	return Concat([]T{1}, CumProd(UnsafeFront(sizes)))
}
