// SPDX-License-Identifier: MIT

package f64

import "gonum.org/v1/gonum/floats"

// Sum returns the sum of t, or 0 for an empty tuple.
func Sum(t []float64) float64 {
	return floats.Sum(t)
}

// Prod returns the product of t, or 1 for an empty tuple.
func Prod(t []float64) float64 {
	return floats.Prod(t)
}

// CumSum returns the running sums of t in a new slice.
func CumSum(t []float64) []float64 {
	dst := make([]float64, len(t))
	if len(t) == 0 {
		return dst
	}

	return floats.CumSum(dst, t)
}

// CumProd returns the running products of t in a new slice.
func CumProd(t []float64) []float64 {
	dst := make([]float64, len(t))
	if len(t) == 0 {
		return dst
	}

	return floats.CumProd(dst, t)
}

// Diff returns v[i+1]-v[i] for every adjacent pair; empty for len(v) <= 1.
func Diff(v []float64) []float64 {
	if len(v) < 2 {
		return []float64{}
	}
	dst := make([]float64, len(v)-1)

	return floats.SubTo(dst, v[1:], v[:len(v)-1])
}

// Strides returns the column-major strides for an array of the given sizes:
// [1, s0, s0*s1, ...]. Empty sizes yield empty strides.
func Strides(sizes []float64) []float64 {
	if len(sizes) == 0 {
		return []float64{}
	}
	out := make([]float64, len(sizes))
	out[0] = 1
	if len(sizes) > 1 {
		floats.CumProd(out[1:], sizes[:len(sizes)-1])
	}

	return out
}
