// SPDX-License-Identifier: MIT

// Package tuple: functional ordering options for the order-statistics
// operations (Minimum, Maximum, FindMin, FindMax, ArgMin, ArgMax, Sort,
// SortPerm). This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults,
//   - WithX constructors (panic on nil functions: programmer error),
//   - gatherOptions, which resolves everything into one ordering.
//
// The three knobs mirror the classic sort keywords:
//   - lt  — less-than predicate (default: natural order, NaN last),
//   - by  — key extractor applied before lt (default: identity),
//   - rev — reverse the order (default: false).
//
// Reversal swaps the arguments of the effective comparison; elements that
// compare equal keep their input order in both directions.
//
// Concurrency: Sort and SortPerm hand inputs of sortGrainSize elements or
// more to a parallel merge sort, which calls lt and by from several
// goroutines at once. Such callbacks must be safe for concurrent use, or
// the caller passes WithSequential(true).
package tuple

import "golang.org/x/exp/constraints"

// DefaultReverse is the default value of the rev flag.
const DefaultReverse = false

const (
	panicNilLess = "tuple: WithLess: lt must not be nil"
	panicNilKey  = "tuple: WithKey: by must not be nil"
)

// Option mutates ordering options. Later options override earlier ones.
type Option[T any] func(*Options[T])

// Options stores the effective ordering after applying Option setters.
// Fields are unexported; public entry points accept ...Option[T].
type Options[T any] struct {
	less       func(a, b T) bool // effective lt∘by; nil means "use the base order"
	rev        bool
	sequential bool
}

// ordering is the resolved form of Options handed to the algorithms.
type ordering[T any] struct {
	less       func(a, b T) bool
	sequential bool
}

// WithLess sets the less-than predicate over elements. It replaces any
// earlier WithLess, WithKey or WithKeyLess; use WithKeyLess to combine a
// key with a custom predicate. lt must be safe for concurrent use unless
// WithSequential(true) is also given.
func WithLess[T any](lt func(a, b T) bool) Option[T] {
	if lt == nil {
		panic(panicNilLess)
	}

	return func(o *Options[T]) { o.less = lt }
}

// WithKey orders elements by the natural order of by(x). Like WithLess it
// replaces whatever ordering an earlier option set. by must be safe for
// concurrent use unless WithSequential(true) is also given.
func WithKey[T any, K constraints.Ordered](by func(T) K) Option[T] {
	if by == nil {
		panic(panicNilKey)
	}

	return func(o *Options[T]) {
		o.less = func(a, b T) bool { return isless(by(a), by(b)) }
	}
}

// WithKeyLess orders elements by lt(by(a), by(b)). The same replacement
// and concurrency rules as WithLess apply to both functions.
func WithKeyLess[T, K any](by func(T) K, lt func(a, b K) bool) Option[T] {
	if by == nil {
		panic(panicNilKey)
	}
	if lt == nil {
		panic(panicNilLess)
	}

	return func(o *Options[T]) {
		o.less = func(a, b T) bool { return lt(by(a), by(b)) }
	}
}

// WithReverse sets the rev flag.
func WithReverse[T any](rev bool) Option[T] {
	return func(o *Options[T]) { o.rev = rev }
}

// WithSequential forces Sort and SortPerm to run on the calling goroutine
// regardless of input size. It has no effect on the extremum searches,
// which are always sequential.
func WithSequential[T any](seq bool) Option[T] {
	return func(o *Options[T]) { o.sequential = seq }
}

// gatherOptions resolves opts on top of base into a single ordering.
func gatherOptions[T any](base func(a, b T) bool, opts []Option[T]) ordering[T] {
	o := Options[T]{rev: DefaultReverse}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	less := base
	if o.less != nil {
		less = o.less
	}
	if o.rev {
		fwd := less
		less = func(a, b T) bool { return fwd(b, a) }
	}

	return ordering[T]{less: less, sequential: o.sequential}
}

// isless is the natural order: a < b, with NaN placed after every
// non-NaN value. For integers and strings it is plain <.
func isless[T constraints.Ordered](a, b T) bool {
	if a != a { // a is NaN
		return false
	}
	if b != b { // b is NaN, a is not
		return true
	}

	return a < b
}
