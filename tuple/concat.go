// SPDX-License-Identifier: MIT

package tuple

import "reflect"

// Concat joins homogeneous tuples into one new tuple.
func Concat[T any](parts ...[]T) []T {
	var n int
	for _, p := range parts {
		n += len(p)
	}
	out := make([]T, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}

// Vcat concatenates a mix of sequence and scalar arguments into one flat
// []any. A sequence is any slice or array value; its elements are spliced
// in. Splicing is one level deep only: an element that is itself a
// sequence is kept as a single element.
//
//	Vcat([]int{1, 2}, 3, []int{4, 5})    // [1 2 3 4 5]
//	Vcat([]any{1, []int{2, 3}})          // [1 [2 3]]
func Vcat(args ...any) []any {
	out := make([]any, 0, len(args))
	for _, a := range args {
		v, ok := sequenceOf(a)
		if !ok {
			out = append(out, a)
			continue
		}
		for i := 0; i < v.Len(); i++ {
			out = append(out, v.Index(i).Interface())
		}
	}

	return out
}

// Flatten expands its arguments recursively into one []any in which no
// element is a sequence. Scalars pass through unchanged.
//
//	Flatten([]any{1, []int{2, 3}})       // [1 2 3]
func Flatten(args ...any) []any {
	out := make([]any, 0, len(args))
	for _, a := range args {
		out = flattenInto(out, a)
	}

	return out
}

func flattenInto(out []any, a any) []any {
	v, ok := sequenceOf(a)
	if !ok {
		return append(out, a)
	}
	for i := 0; i < v.Len(); i++ {
		out = flattenInto(out, v.Index(i).Interface())
	}

	return out
}

// sequenceOf reports whether a is a slice or array, unwrapping it for
// indexed access. Strings and nil are scalars.
func sequenceOf(a any) (reflect.Value, bool) {
	if a == nil {
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(a)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return v, true
	default:
		return reflect.Value{}, false
	}
}
