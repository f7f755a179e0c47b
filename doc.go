// Package tupletools is a small toolbox for working with short homogeneous
// sequences ("tuples") as values — sizes, strides, indices, permutations.
//
// 🚀 What is in the box?
//
//	Stateless pure functions over []T that never mutate their input:
//		• Editing: tail/front, gather, insert, delete, concat, flatten
//		• Reductions: sum, prod, cumsum, cumprod, diff, strides
//		• Order statistics: min/max, argmin/argmax, stable sort, sortperm
//		• Permutations: isperm, invperm, permute
//		• StaticLength: a length tag with saturating arithmetic
//
// Under the hood, everything is organized under two subpackages:
//
//	tuple/ — the generic library (any element type, options for lt/by/rev)
//	f64/   — float64 fast paths backed by gonum's floats kernels
//
// Quick example:
//
//	sizes := []int{2, 3, 4}
//	tuple.Strides(sizes)  // [1 2 6]
//	tuple.Prod(sizes)     // 24
//
// See examples/strides for a runnable program.
//
//	go get github.com/katalvlaran/tupletools
package tupletools
