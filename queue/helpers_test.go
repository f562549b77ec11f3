// SPDX-License-Identifier: MIT

package queue_test

import (
	"testing"

	"github.com/katalvlaran/lvqueue/queue"
	"github.com/stretchr/testify/require"
)

// fromValues builds a queue by tail-inserting vals in order.
func fromValues(t testing.TB, vals ...string) *queue.Queue {
	t.Helper()
	q := queue.New()
	for _, v := range vals {
		require.True(t, q.InsertTail(v), "InsertTail(%q)", v)
	}

	return q
}

// requireLinked checks that walking forward with Next and backward with Prev
// visits the same elements, and that Size agrees with both walks.
func requireLinked(t *testing.T, q *queue.Queue) {
	t.Helper()
	var forward, backward []string
	for e := q.Front(); e != nil; e = e.Next() {
		forward = append(forward, e.Value)
	}
	for e := q.Back(); e != nil; e = e.Prev() {
		backward = append([]string{e.Value}, backward...)
	}
	require.Equal(t, forward, backward, "forward and backward walks differ")
	require.Equal(t, len(forward), q.Size(), "Size disagrees with walk")
}
