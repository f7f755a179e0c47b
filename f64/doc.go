// Package f64 provides float64 specialisations of the tuple reductions,
// scans and arg-extrema, backed by gonum's floats kernels.
//
// Results match the generic functions in package tuple for finite inputs:
//
//	f64.CumProd(xs) == tuple.CumProd(xs)
//	f64.ArgMin(xs)  == tuple.ArgMin(xs)
//
// Identities follow tuple: Sum of empty is 0, Prod of empty is 1, CumSum and
// CumProd of empty are empty. Operations that need an element (ArgMin,
// ArgMax, FindMin, FindMax, Minimum, Maximum) return tuple.ErrEmptyInput on
// an empty slice instead of panicking.
//
// NaN handling follows gonum (MinIdx/MaxIdx), which can differ from the
// NaN-last ordering of package tuple. Use package tuple when NaN order
// matters.
//
// Inputs are never modified; every slice result is freshly allocated.
package f64
