// SPDX-License-Identifier: MIT

package queue_test

import (
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDeleteMid_Positions checks the removed 1-indexed position is ⌊n/2⌋+1 for n=1..6.
func TestDeleteMid_Positions(t *testing.T) {
	for n := 1; n <= 6; n++ {
		vals := make([]string, n)
		for i := range vals {
			vals[i] = strconv.Itoa(i + 1)
		}
		q := fromValues(t, vals...)

		require.True(t, q.DeleteMid(), "n=%d", n)

		pos := n/2 + 1
		want := slices.Delete(slices.Clone(vals), pos-1, pos)
		assert.Equal(t, want, q.Values(), "n=%d must drop position %d", n, pos)
		requireLinked(t, q)
	}
}

// TestDeleteMid_DrainsToEmpty repeats DeleteMid until nothing is left.
func TestDeleteMid_DrainsToEmpty(t *testing.T) {
	q := fromValues(t, "a", "b", "c")
	for i := 0; i < 3; i++ {
		assert.True(t, q.DeleteMid())
	}
	assert.True(t, q.Empty())
	assert.False(t, q.DeleteMid(), "empty queue reports no removal")
}

// TestDeleteDup covers runs at the start, middle and end, and the all-equal case.
func TestDeleteDup(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{"middle run", []string{"1", "2", "2", "3"}, []string{"1", "3"}},
		{"leading run", []string{"a", "a", "a", "b"}, []string{"b"}},
		{"trailing run", []string{"a", "b", "c", "c"}, []string{"a", "b"}},
		{"adjacent runs", []string{"a", "a", "b", "b", "c"}, []string{"c"}},
		{"all equal", []string{"z", "z", "z"}, nil},
		{"no duplicates", []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"single", []string{"a"}, []string{"a"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := fromValues(t, tc.in...)
			require.True(t, q.DeleteDup())
			if tc.want == nil {
				assert.True(t, q.Empty())
			} else {
				assert.Equal(t, tc.want, q.Values())
			}
			requireLinked(t, q)
		})
	}
}

// TestDeleteDup_Unsorted documents that only adjacent equal values are caught.
func TestDeleteDup_Unsorted(t *testing.T) {
	q := fromValues(t, "b", "a", "b")
	require.True(t, q.DeleteDup())
	assert.Equal(t, []string{"b", "a", "b"}, q.Values())
}
