// SPDX-License-Identifier: MIT

package f64

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/tupletools/tuple"
)

// gonum panics on empty input, so every entry point guards first and
// reports tuple.ErrEmptyInput instead.
func emptyErr(tag string) error {
	return fmt.Errorf("f64.%s: %w", tag, tuple.ErrEmptyInput)
}

// ArgMin returns the index of the smallest element (first on ties).
func ArgMin(t []float64) (int, error) {
	if len(t) == 0 {
		return -1, emptyErr("ArgMin")
	}

	return floats.MinIdx(t), nil
}

// ArgMax returns the index of the largest element (first on ties).
func ArgMax(t []float64) (int, error) {
	if len(t) == 0 {
		return -1, emptyErr("ArgMax")
	}

	return floats.MaxIdx(t), nil
}

// FindMin returns the smallest element and its index.
func FindMin(t []float64) (float64, int, error) {
	i, err := ArgMin(t)
	if err != nil {
		return 0, -1, err
	}

	return t[i], i, nil
}

// FindMax returns the largest element and its index.
func FindMax(t []float64) (float64, int, error) {
	i, err := ArgMax(t)
	if err != nil {
		return 0, -1, err
	}

	return t[i], i, nil
}

// Minimum returns the smallest element of t.
func Minimum(t []float64) (float64, error) {
	v, _, err := FindMin(t)
	return v, err
}

// Maximum returns the largest element of t.
func Maximum(t []float64) (float64, error) {
	v, _, err := FindMax(t)
	return v, err
}
