// Package tuple contains a bunch of tools for using small homogeneous
// fixed-length sequences ("tuples") as values: reductions, scans, sorting,
// permutations, index gathering, insertion and deletion.
//
// 🚀 What is a tuple here?
//
//	A plain Go slice []T treated as an immutable value. No function in this
//	package writes to its input, and every slice it returns is freshly
//	allocated. Typical tuples are sizes, indices or strides of
//	multidimensional arrays, which is why the empty-tuple identities are
//	defined instead of erroring:
//	  • Sum(empty) == 0, Prod(empty) == 1
//	  • CumSum(empty), CumProd(empty), Diff(empty) are empty
//	  • UnsafeTail(empty), UnsafeFront(empty) are empty (fixed points)
//
// ✨ Contents:
//   - Editing: Tail2, Tail, Front, UnsafeTail, UnsafeFront, GetIndices,
//     SetIndex, DeleteAt, DeleteAtIndices, InsertAt, InsertAfter,
//     Concat, Vcat, Flatten
//   - Reductions: Sum, CumSum, Prod, CumProd, Diff, Strides
//   - Order statistics: Minimum, Maximum, FindMin, FindMax, ArgMin, ArgMax,
//     Sort, SortPerm (and ...Func variants for custom element types)
//   - Permutations: IsPerm, ValidatePerm, InvPerm, Permute
//   - Lengths: StaticLength, NTuple
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/tupletools/tuple"
//
//	p := tuple.SortPerm(xs)                  // stable
//	sorted, _ := tuple.Permute(xs, p)        // == tuple.Sort(xs)
//	q, _ := tuple.InvPerm(p)
//	back, _ := tuple.Permute(sorted, q)      // == xs
//
//	byLen := tuple.Sort(words, tuple.WithKey(func(s string) int { return len(s) }))
//
// Indices are 0-based. Index errors are never clamped: they return
// ErrOutOfRange. Operations that need an element return ErrEmptyInput.
// Match errors with errors.Is.
//
// Complexity: O(n) for everything except Sort/SortPerm (O(n log n)).
package tuple
