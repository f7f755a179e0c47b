// SPDX-License-Identifier: MIT

package tuple_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/tupletools/tuple"
)

// TestConcat joins homogeneous parts.
func TestConcat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{1, 2, 3, 4, 5}, tuple.Concat([]int{1, 2}, []int{3}, nil, []int{4, 5}))
	assert.Equal(t, []int{}, tuple.Concat[int]())
}

// TestVcat_OneLevel splices sequence arguments but keeps nested sequences intact.
func TestVcat_OneLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []any
		want []any
	}{
		{
			name: "mixed sequences and scalars",
			args: []any{[]int{1, 2}, 3, []int{4, 5}},
			want: []any{1, 2, 3, 4, 5},
		},
		{
			name: "nested slice not expanded",
			args: []any{[]any{1, []int{2, 3}}},
			want: []any{1, []int{2, 3}},
		},
		{
			name: "arrays and strings",
			args: []any{[2]string{"a", "b"}, "cd"},
			want: []any{"a", "b", "cd"},
		},
		{
			name: "nil scalar",
			args: []any{nil, []int{}},
			want: []any{nil},
		},
		{
			name: "nothing",
			args: nil,
			want: []any{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tuple.Vcat(tc.args...)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Vcat mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestFlatten_Recursive expands sequences at every depth.
func TestFlatten_Recursive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []any
		want []any
	}{
		{
			name: "one nested level",
			args: []any{[]any{1, []int{2, 3}}},
			want: []any{1, 2, 3},
		},
		{
			name: "deep nesting",
			args: []any{[]any{1, []any{2, []any{3, [1]int{4}}}}, 5},
			want: []any{1, 2, 3, 4, 5},
		},
		{
			name: "several arguments",
			args: []any{[]int{1}, 2, [][]int{{3, 4}, {5}}},
			want: []any{1, 2, 3, 4, 5},
		},
		{
			name: "empty inner sequences vanish",
			args: []any{[]any{[]int{}, "x"}},
			want: []any{"x"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tuple.Flatten(tc.args...)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Flatten mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
