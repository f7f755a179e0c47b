// SPDX-License-Identifier: MIT
// Package tuple: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every exported
// operation returns one of these (bare or wrapped with the operation tag),
// and tests match them via errors.Is. No operation panics on user input.

package tuple

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "tuple: ". When context helps, operations
// wrap with tupleErrorf("Op", ErrX); errors.Is still matches the sentinel.
var (
	// ErrOutOfRange indicates an index argument outside 0..len-1
	// (or 0..len for insertion points). Indices are never clamped.
	ErrOutOfRange = errors.New("tuple: index out of range")

	// ErrEmptyInput is returned by operations that need at least one element
	// (Minimum, Maximum, FindMin, FindMax, ArgMin, ArgMax, Tail, Front).
	ErrEmptyInput = errors.New("tuple: empty input")

	// ErrTooShort is returned by Tail2 when fewer than two elements are present.
	ErrTooShort = errors.New("tuple: sequence too short")

	// ErrDuplicateIndex signals that DeleteAtIndices received the same position twice.
	ErrDuplicateIndex = errors.New("tuple: duplicate index")

	// ErrNotPermutation indicates that an index list is not a bijection on 0..n-1.
	ErrNotPermutation = errors.New("tuple: not a permutation")

	// ErrLengthMismatch indicates that two operands must share a length but do not.
	ErrLengthMismatch = errors.New("tuple: length mismatch")

	// ErrNegativeLength is returned when a StaticLength is built from n < 0.
	ErrNegativeLength = errors.New("tuple: negative length")
)

// tupleErrorf prefixes err with the operation tag, keeping errors.Is intact.
func tupleErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// detailErrorf is tupleErrorf with a formatted detail between tag and err.
func detailErrorf(tag string, err error, format string, args ...any) error {
	return tupleErrorf(tag, fmt.Errorf(format+": %w", append(args, err)...))
}

// indexErrorf reports an offending index together with the valid bound.
func indexErrorf(tag string, i, n int) error {
	return detailErrorf(tag, ErrOutOfRange, "index %d not in [0,%d)", i, n)
}

// pointErrorf reports an insertion point outside the closed range [0,n].
func pointErrorf(tag string, i, n int) error {
	return detailErrorf(tag, ErrOutOfRange, "index %d not in [0,%d]", i, n)
}
