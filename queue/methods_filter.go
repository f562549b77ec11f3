// SPDX-License-Identifier: MIT

package queue

import "github.com/katalvlaran/lvqueue/list"

// Descend removes every element that has a strictly greater value somewhere
// to its right, and returns how many elements remain.
//
// Scanning from the tail toward the head, the value of the last kept element
// is the reference (the tail is always kept). An element strictly less than
// the reference is removed; anything else is kept and becomes the reference.
// Survivors form a non-increasing sequence.
//
// Values compare byte-wise, so digit strings are not ordered numerically:
// "13" < "8", and [5 2 13 3 8] keeps only [8].
//
// Returns 0 for a nil or empty queue.
// Complexity: O(n).
func (q *Queue) Descend() int {
	return q.keepFromRight(func(v, kept string) bool { return v < kept })
}

// Ascend removes every element that has a strictly smaller value somewhere
// to its right, and returns how many elements remain. Survivors form a
// non-decreasing sequence.
func (q *Queue) Ascend() int {
	return q.keepFromRight(func(v, kept string) bool { return v > kept })
}

// keepFromRight walks tail→head and drops elements for which dominated(value, kept) holds.
func (q *Queue) keepFromRight(dominated func(v, kept string) bool) int {
	if q.Empty() {
		return 0
	}

	kept := q.head.Prev().Owner().Value
	n := 0
	for e := range list.Backward(&q.head) {
		if dominated(e.Value, kept) {
			remove(e)
			continue
		}
		kept = e.Value
		n++
	}

	return n
}
