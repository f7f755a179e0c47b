// SPDX-License-Identifier: MIT
// Package tuple — sequence editing.
//
// Every helper here returns a freshly allocated slice; the input is never
// written to and the result never aliases the input's backing array.
// Index arguments are 0-based and validated up front; an index outside its
// range yields ErrOutOfRange and is never clamped.

package tuple

import "github.com/uberbrodt/fungo/fun"

// clone returns an independent copy of t (non-nil, even for empty t).
func clone[T any](t []T) []T {
	out := make([]T, len(t))
	copy(out, t)

	return out
}

// Tail2 returns t without its first two elements.
// Equivalent to UnsafeTail(UnsafeTail(t)) for len(t) >= 2.
//
// Errors:
//   - ErrTooShort if len(t) < 2.
func Tail2[T any](t []T) ([]T, error) {
	if len(t) < 2 {
		return nil, tupleErrorf("Tail2", ErrTooShort)
	}

	return clone(t[2:]), nil
}

// Tail returns t without its first element, or ErrEmptyInput when t is empty.
func Tail[T any](t []T) ([]T, error) {
	if len(t) == 0 {
		return nil, tupleErrorf("Tail", ErrEmptyInput)
	}

	return clone(t[1:]), nil
}

// Front returns t without its last element, or ErrEmptyInput when t is empty.
func Front[T any](t []T) ([]T, error) {
	if len(t) == 0 {
		return nil, tupleErrorf("Front", ErrEmptyInput)
	}

	return clone(t[:len(t)-1]), nil
}

// UnsafeTail returns t without its first element. Unlike Tail it does not
// fail on an empty tuple: the empty tuple is the fixed point.
func UnsafeTail[T any](t []T) []T {
	if len(t) == 0 {
		return []T{}
	}

	return clone(t[1:])
}

// UnsafeFront returns t without its last element. The empty tuple is the
// fixed point.
func UnsafeFront[T any](t []T) []T {
	if len(t) == 0 {
		return []T{}
	}

	return clone(t[:len(t)-1])
}

// GetIndices gathers t[i] for every i in idx, in the order of idx.
// Repeated and unordered indices are allowed.
func GetIndices[T any](t []T, idx ...int) ([]T, error) {
	n := len(t)
	out := make([]T, len(idx))
	for k, i := range idx {
		if i < 0 || i >= n {
			return nil, indexErrorf("GetIndices", i, n)
		}
		out[k] = t[i]
	}

	return out, nil
}

// SetIndex returns a copy of t with position i replaced by v.
func SetIndex[T any](t []T, i int, v T) ([]T, error) {
	if i < 0 || i >= len(t) {
		return nil, indexErrorf("SetIndex", i, len(t))
	}
	out := clone(t)
	out[i] = v

	return out, nil
}

// DeleteAt returns t with the element at position i removed.
func DeleteAt[T any](t []T, i int) ([]T, error) {
	n := len(t)
	if i < 0 || i >= n {
		return nil, indexErrorf("DeleteAt", i, n)
	}
	out := make([]T, 0, n-1)
	out = append(out, t[:i]...)
	out = append(out, t[i+1:]...)

	return out, nil
}

// DeleteAtIndices returns t with every position listed in idx removed.
// The order of idx is irrelevant; the survivors keep their relative order.
// The result has length len(t)-len(idx).
//
// Errors:
//   - ErrOutOfRange if any index is outside [0,len(t)).
//   - ErrDuplicateIndex if a position is listed more than once.
func DeleteAtIndices[T any](t []T, idx ...int) ([]T, error) {
	n := len(t)
	drop := make([]bool, n)
	for _, i := range idx {
		if i < 0 || i >= n {
			return nil, indexErrorf("DeleteAtIndices", i, n)
		}
		if drop[i] {
			return nil, detailErrorf("DeleteAtIndices", ErrDuplicateIndex, "index %d", i)
		}
		drop[i] = true
	}

	// positions never returns nil, which fun.Filter would reject.
	keep := fun.Filter(positions(n), func(i int) bool { return !drop[i] })

	return GetIndices(t, keep...)
}

// InsertAt replaces the element at position i with the elements of t2:
// the result is t[:i] ++ t2 ++ t[i+1:]. Use SetIndex to replace a single
// value, or InsertAfter to insert without removing anything.
func InsertAt[T any](t []T, i int, t2 []T) ([]T, error) {
	n := len(t)
	if i < 0 || i >= n {
		return nil, indexErrorf("InsertAt", i, n)
	}
	out := make([]T, 0, n-1+len(t2))
	out = append(out, t[:i]...)
	out = append(out, t2...)
	out = append(out, t[i+1:]...)

	return out, nil
}

// InsertAfter inserts the elements of t2 after the first i elements of t:
// the result is t[:i] ++ t2 ++ t[i:]. i is an insertion point in
// [0,len(t)]; i == 0 inserts in front, i == len(t) appends.
//
// Example:
//
//	InsertAfter([]int{1, 2, 3}, 1, []int{9, 9}) // [1 9 9 2 3]
func InsertAfter[T any](t []T, i int, t2 []T) ([]T, error) {
	n := len(t)
	if i < 0 || i > n {
		return nil, pointErrorf("InsertAfter", i, n)
	}
	out := make([]T, 0, n+len(t2))
	out = append(out, t[:i]...)
	out = append(out, t2...)
	out = append(out, t[i:]...)

	return out, nil
}

// positions returns [0, 1, ..., n-1].
func positions(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}
