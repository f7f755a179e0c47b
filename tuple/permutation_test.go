// SPDX-License-Identifier: MIT

package tuple_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tupletools/tuple"
)

// TestIsPerm covers valid bijections, duplicates, gaps and negative values.
func TestIsPerm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		p    []int
		want bool
	}{
		{"empty", nil, true},
		{"single", []int{0}, true},
		{"rotation", []int{2, 0, 1}, true},
		{"duplicate", []int{0, 0, 1}, false},
		{"misses zero", []int{1, 2}, false},
		{"negative", []int{-1, 0}, false},
		{"too large", []int{0, 3, 1}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tuple.IsPerm(tc.p))
		})
	}
}

// TestIsPerm_LargeFallsBackToMarker exercises inputs above the stack bit-set size.
func TestIsPerm_LargeFallsBackToMarker(t *testing.T) {
	t.Parallel()

	const n = 1000
	p := rand.New(rand.NewSource(1)).Perm(n)
	assert.True(t, tuple.IsPerm(p))

	p[10] = p[11]
	assert.False(t, tuple.IsPerm(p))
}

// TestIsPerm_SmallDoesNotAllocate checks the stack-only path.
func TestIsPerm_SmallDoesNotAllocate(t *testing.T) {
	p := []int{3, 1, 0, 2, 7, 6, 5, 4}
	allocs := testing.AllocsPerRun(100, func() {
		_ = tuple.IsPerm(p)
	})
	assert.Zero(t, allocs)
}

// TestValidatePerm reports the offending position.
func TestValidatePerm(t *testing.T) {
	t.Parallel()

	require.NoError(t, tuple.ValidatePerm([]int{1, 0}))

	err := tuple.ValidatePerm([]int{1, 0, 1})
	require.ErrorIs(t, err, tuple.ErrNotPermutation)
	assert.Contains(t, err.Error(), "p[2]=1")
}

// TestInvPerm checks q[p[i]] == i and rejects non-permutations.
func TestInvPerm(t *testing.T) {
	t.Parallel()

	p := []int{2, 0, 3, 1}
	q, err := tuple.InvPerm(p)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 0, 2}, q)
	for i := range p {
		assert.Equal(t, i, q[p[i]])
	}

	q, err = tuple.InvPerm(nil)
	require.NoError(t, err)
	assert.Empty(t, q)

	_, err = tuple.InvPerm([]int{0, 0})
	assert.ErrorIs(t, err, tuple.ErrNotPermutation)
}

// TestPermute reorders and round-trips through the inverse.
func TestPermute(t *testing.T) {
	t.Parallel()

	in := []string{"a", "b", "c", "d"}
	p := []int{3, 0, 2, 1}

	got, err := tuple.Permute(in, p)
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "a", "c", "b"}, got)

	q, err := tuple.InvPerm(p)
	require.NoError(t, err)
	back, err := tuple.Permute(got, q)
	require.NoError(t, err)
	assert.Equal(t, in, back)

	_, err = tuple.Permute(in, []int{0, 1})
	assert.ErrorIs(t, err, tuple.ErrLengthMismatch)
	_, err = tuple.Permute(in, []int{0, 1, 1, 2})
	assert.ErrorIs(t, err, tuple.ErrNotPermutation)
}

// TestPermute_RandomRoundTrip checks Permute(Permute(t, p), InvPerm(p)) == t.
func TestPermute_RandomRoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	for n := 0; n < 40; n++ {
		in := make([]int, n)
		for i := range in {
			in[i] = rng.Intn(10)
		}
		p := rng.Perm(n)
		q, err := tuple.InvPerm(p)
		require.NoError(t, err)
		mid, err := tuple.Permute(in, p)
		require.NoError(t, err)
		back, err := tuple.Permute(mid, q)
		require.NoError(t, err)
		assert.Equal(t, in, back, "n=%d", n)
	}
}
