// SPDX-License-Identifier: MIT

package tuple

import (
	stdsort "sort"

	"github.com/exascience/pargo/sort"
	"golang.org/x/exp/constraints"
)

// sortGrainSize is the input length from which pargo's StableSort splits
// the work across goroutines (its internal msortGrainSize).
const sortGrainSize = 0x3000

// permSorter sorts a permutation of positions by comparing the elements
// those positions refer to. It implements sort.StableSorter so that large
// inputs go through pargo's parallel stable merge sort; small inputs fall
// through to SequentialSort.
type permSorter struct {
	idx  []int
	less func(i, j int) bool // compares original positions
}

var _ sort.StableSorter = permSorter{}

func (s permSorter) SequentialSort(i, j int) {
	part := s.idx[i:j]
	stdsort.SliceStable(part, func(a, b int) bool {
		return s.less(part[a], part[b])
	})
}

func (s permSorter) Len() int           { return len(s.idx) }
func (s permSorter) Less(i, j int) bool { return s.less(s.idx[i], s.idx[j]) }

func (s permSorter) NewTemp() sort.StableSorter {
	return permSorter{idx: make([]int, len(s.idx)), less: s.less}
}

func (s permSorter) Assign(source sort.StableSorter) func(i, j, len int) {
	dst, src := s.idx, source.(permSorter).idx
	return func(i, j, len int) {
		copy(dst[i:i+len], src[j:j+len])
	}
}

// stablePerm returns the permutation that stably sorts t under ord.
func stablePerm[T any](t []T, ord ordering[T]) []int {
	less := ord.less
	s := permSorter{
		idx:  positions(len(t)),
		less: func(i, j int) bool { return less(t[i], t[j]) },
	}
	if ord.sequential || len(t) < sortGrainSize {
		s.SequentialSort(0, len(t))
	} else {
		sort.StableSort(s)
	}

	return s.idx
}

// gather returns t permuted by a permutation known to be valid.
func gather[T any](t []T, p []int) []T {
	out := make([]T, len(p))
	for k, i := range p {
		out[k] = t[i]
	}

	return out
}

// Sort returns a sorted copy of t. The sort is stable: elements that compare
// equal under the effective ordering keep their input order, also when
// WithReverse(true) is given.
//
// From sortGrainSize elements on, the ordering functions are called from
// several goroutines at once and must be safe for concurrent use; pass
// WithSequential(true) to keep every call on the calling goroutine.
//
// Example:
//
//	Sort([]int{3, 1, 2})                              // [1 2 3]
//	Sort([]int{3, 1, 2}, WithReverse[int](true))      // [3 2 1]
//	Sort(words, WithKey(func(s string) int { return len(s) }))
func Sort[T constraints.Ordered](t []T, opts ...Option[T]) []T {
	return SortFunc(t, isless[T], opts...)
}

// SortFunc is Sort for element types without a natural order; less is the
// base ordering which options may override or reverse. less follows the
// same concurrency rule as the options.
func SortFunc[T any](t []T, less func(a, b T) bool, opts ...Option[T]) []T {
	return gather(t, SortPermFunc(t, less, opts...))
}

// SortPerm returns the permutation p such that Permute(t, p) equals
// Sort(t, opts...). Ties are broken exactly as in Sort, and the same
// concurrency rule for the ordering functions applies.
func SortPerm[T constraints.Ordered](t []T, opts ...Option[T]) []int {
	return SortPermFunc(t, isless[T], opts...)
}

// SortPermFunc is SortPerm with an explicit base ordering.
func SortPermFunc[T any](t []T, less func(a, b T) bool, opts ...Option[T]) []int {
	return stablePerm(t, gatherOptions(less, opts))
}
