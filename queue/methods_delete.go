// SPDX-License-Identifier: MIT

package queue

import "github.com/katalvlaran/lvqueue/list"

// DeleteMid removes and releases the middle element: for n elements, the one
// at 1-indexed position ⌊n/2⌋+1.
//
// Implementation:
//   - fast and slow both start at the first element.
//   - fast advances two links per step, slow one, until fast is the sentinel
//     or fast's successor is.
//   - slow is the middle.
//
// Returns false for a nil or empty queue.
// Complexity: O(n).
func (q *Queue) DeleteMid() bool {
	if q.Empty() {
		return false
	}

	head := &q.head
	fast, slow := head.Next(), head.Next()
	for fast != head && fast.Next() != head {
		fast = fast.Next().Next()
		slow = slow.Next()
	}
	remove(slow.Owner())

	return true
}

// DeleteDup removes every element whose value occurs more than once in a row;
// no representative of a duplicated run survives. q must already be sorted,
// otherwise only adjacent equal values are detected.
//
// Single left-to-right pass with a flag telling whether the current element
// closes a duplicate run.
//
// Returns false for a nil or empty queue.
// Complexity: O(n).
func (q *Queue) DeleteDup() bool {
	if q.Empty() {
		return false
	}

	head := &q.head
	inRun := false
	for e := range list.All(head) {
		next := e.link.Next()
		switch {
		case next != head && e.Value == next.Owner().Value:
			remove(e)
			inRun = true
		case inRun:
			remove(e)
			inRun = false
		}
	}

	return true
}
