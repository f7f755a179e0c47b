// SPDX-License-Identifier: MIT
// Package tuple — permutation utilities.
//
// A permutation of length n is an []int holding every value of {0..n-1}
// exactly once. Provided helpers:
//   - IsPerm: boolean bijection check, never fails.
//   - ValidatePerm: the same check reported as an error with the culprit.
//   - InvPerm: inverse permutation, q[p[i]] = i.
//   - Permute: reorder a tuple, out[i] = t[p[i]].
//
// Design:
//   - No logging, no panics on user input; only sentinel errors from errors.go.
//   - IsPerm marks seen values in a fixed-size bit set on the stack for
//     n <= smallPermLimit and only allocates for longer inputs.
package tuple

import "fmt"

// smallPermLimit is the largest length IsPerm checks without allocating.
const smallPermLimit = 256

// firstPermViolation returns the first position of p that breaks the
// bijection on {0..len(p)-1}, or -1 when p is a permutation.
func firstPermViolation(p []int) int {
	n := len(p)
	if n <= smallPermLimit {
		var seen [smallPermLimit / 64]uint64
		for i, v := range p {
			if v < 0 || v >= n {
				return i
			}
			word, bit := v>>6, uint64(1)<<(uint(v)&63)
			if seen[word]&bit != 0 {
				return i
			}
			seen[word] |= bit
		}
		return -1
	}

	seen := make([]bool, n)
	for i, v := range p {
		// Out-of-range element or duplicate violates the bijection.
		if v < 0 || v >= n || seen[v] {
			return i
		}
		seen[v] = true
	}

	return -1
}

// IsPerm reports whether p is a permutation of {0..len(p)-1}.
// The empty slice is the (trivial) permutation of length 0.
//
//	IsPerm([]int{2, 0, 1}) // true
//	IsPerm([]int{0, 0, 1}) // false
//	IsPerm([]int{1, 2})    // false
func IsPerm(p []int) bool {
	return firstPermViolation(p) < 0
}

// ValidatePerm returns nil if p is a permutation, otherwise an error
// wrapping ErrNotPermutation that names the first offending position.
func ValidatePerm(p []int) error {
	if i := firstPermViolation(p); i >= 0 {
		return fmt.Errorf("p[%d]=%d: %w", i, p[i], ErrNotPermutation)
	}

	return nil
}

// InvPerm returns the inverse q of the permutation p, so that q[p[i]] == i
// for every i.
//
// Errors:
//   - ErrNotPermutation if p is not a permutation.
func InvPerm(p []int) ([]int, error) {
	if err := ValidatePerm(p); err != nil {
		return nil, tupleErrorf("InvPerm", err)
	}
	q := make([]int, len(p))
	for i, v := range p {
		q[v] = i
	}

	return q, nil
}

// Permute returns t reordered by p: out[i] = t[p[i]].
//
// Errors:
//   - ErrLengthMismatch if len(p) != len(t).
//   - ErrNotPermutation if p is not a permutation.
func Permute[T any](t []T, p []int) ([]T, error) {
	if len(p) != len(t) {
		return nil, detailErrorf("Permute", ErrLengthMismatch, "len(t)=%d, len(p)=%d", len(t), len(p))
	}
	if err := ValidatePerm(p); err != nil {
		return nil, tupleErrorf("Permute", err)
	}

	return gather(t, p), nil
}
