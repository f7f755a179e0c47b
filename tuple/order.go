// SPDX-License-Identifier: MIT

package tuple

import "golang.org/x/exp/constraints"

// extremeIndex scans t once and returns the index of the first element that
// no other element beats under better. Ties keep the lowest index because a
// later element replaces the incumbent only when strictly better.
func extremeIndex[T any](tag string, t []T, better func(a, b T) bool) (int, error) {
	if len(t) == 0 {
		return -1, tupleErrorf(tag, ErrEmptyInput)
	}
	best := 0
	for i := 1; i < len(t); i++ {
		if better(t[i], t[best]) {
			best = i
		}
	}

	return best, nil
}

// greater flips less so that "strictly better" means "strictly larger".
func greater[T any](less func(a, b T) bool) func(a, b T) bool {
	return func(a, b T) bool { return less(b, a) }
}

// FindMinFunc returns the value and index of the smallest element of t under
// less (adjusted by opts). With several minimal elements the first wins.
func FindMinFunc[T any](t []T, less func(a, b T) bool, opts ...Option[T]) (T, int, error) {
	i, err := extremeIndex("FindMin", t, gatherOptions(less, opts).less)
	if err != nil {
		var zero T
		return zero, -1, err
	}

	return t[i], i, nil
}

// FindMaxFunc returns the value and index of the largest element of t.
// With several maximal elements the first wins.
func FindMaxFunc[T any](t []T, less func(a, b T) bool, opts ...Option[T]) (T, int, error) {
	i, err := extremeIndex("FindMax", t, greater(gatherOptions(less, opts).less))
	if err != nil {
		var zero T
		return zero, -1, err
	}

	return t[i], i, nil
}

// FindMin returns the value and index of the minimum element in t. If there
// are multiple minimal elements, the first one is returned.
//
//	FindMin([]int{3, 1, 1, 2}) // 1, 1, nil
func FindMin[T constraints.Ordered](t []T, opts ...Option[T]) (T, int, error) {
	return FindMinFunc(t, isless[T], opts...)
}

// FindMax returns the value and index of the maximum element in t. If there
// are multiple maximal elements, the first one is returned.
func FindMax[T constraints.Ordered](t []T, opts ...Option[T]) (T, int, error) {
	return FindMaxFunc(t, isless[T], opts...)
}

// Minimum returns the smallest element of t, or ErrEmptyInput.
func Minimum[T constraints.Ordered](t []T, opts ...Option[T]) (T, error) {
	v, _, err := FindMin(t, opts...)
	return v, err
}

// Maximum returns the largest element of t, or ErrEmptyInput.
func Maximum[T constraints.Ordered](t []T, opts ...Option[T]) (T, error) {
	v, _, err := FindMax(t, opts...)
	return v, err
}

// MinimumFunc is Minimum with an explicit base ordering.
func MinimumFunc[T any](t []T, less func(a, b T) bool, opts ...Option[T]) (T, error) {
	v, _, err := FindMinFunc(t, less, opts...)
	return v, err
}

// MaximumFunc is Maximum with an explicit base ordering.
func MaximumFunc[T any](t []T, less func(a, b T) bool, opts ...Option[T]) (T, error) {
	v, _, err := FindMaxFunc(t, less, opts...)
	return v, err
}

// ArgMin returns the index of the minimum element of t (first on ties).
func ArgMin[T constraints.Ordered](t []T, opts ...Option[T]) (int, error) {
	_, i, err := FindMin(t, opts...)
	return i, err
}

// ArgMax returns the index of the maximum element of t (first on ties).
func ArgMax[T constraints.Ordered](t []T, opts ...Option[T]) (int, error) {
	_, i, err := FindMax(t, opts...)
	return i, err
}

// ArgMinFunc is ArgMin with an explicit base ordering.
func ArgMinFunc[T any](t []T, less func(a, b T) bool, opts ...Option[T]) (int, error) {
	_, i, err := FindMinFunc(t, less, opts...)
	return i, err
}

// ArgMaxFunc is ArgMax with an explicit base ordering.
func ArgMaxFunc[T any](t []T, less func(a, b T) bool, opts ...Option[T]) (int, error) {
	_, i, err := FindMaxFunc(t, less, opts...)
	return i, err
}
