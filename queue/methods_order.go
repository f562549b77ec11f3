// SPDX-License-Identifier: MIT

package queue

import "github.com/katalvlaran/lvqueue/list"

// Swap exchanges every two adjacent elements, starting from the head.
// With an odd count the last element stays where it is. Only links move.
// Complexity: O(n).
func (q *Queue) Swap() {
	if q.Empty() {
		return
	}

	head := &q.head
	// moving c behind its successor leaves c.Next() on the next pair
	for c := head.Next(); c != head && c.Next() != head; c = c.Next() {
		c.MoveAfter(c.Next())
	}
}

// Reverse reverses q in place by moving each element, in order, to the
// position right after the sentinel.
// Complexity: O(n).
func (q *Queue) Reverse() {
	if q.Empty() {
		return
	}
	reverse(&q.head)
}

func reverse(head *list.Node[*Element]) {
	for e := range list.All(head) {
		e.link.MoveAfter(head)
	}
}

// ReverseK splits q from the head into consecutive groups of exactly k
// elements and reverses each group in place. A trailing group shorter than k
// is left as is. k <= 1 is a no-op.
//
// Implementation:
//   - Count elements while walking with a saved successor.
//   - On the k-th element, Cut the group [anchor.Next(), current] into a
//     scratch sentinel, reverse it there and splice it back after anchor.
//   - The group's new last element becomes the next anchor.
//
// Complexity: O(n).
func (q *Queue) ReverseK(k int) {
	if q.Empty() || k <= 1 {
		return
	}

	head := &q.head
	anchor := head
	var group list.Node[*Element]
	group.Init()
	i := 0
	for c, n := head.Next(), head.Next().Next(); c != head; c, n = n, n.Next() {
		i++
		if i < k {
			continue
		}
		if _, err := list.Cut(&group, head, anchor.Next(), c); err != nil {
			// unreachable: [anchor.Next(), c] was just walked
			return
		}
		reverse(&group)
		group.SpliceInto(anchor)
		anchor = n.Prev()
		i = 0
	}
}

// Sort orders q ascending by byte-wise comparison of the values.
//
// Merge sort on the relinked nodes (see list.Sort). On equal values the merge
// takes the right-hand element first, so equal values are not guaranteed to
// keep their original relative order.
// Complexity: O(n log n).
func (q *Queue) Sort() {
	if q.Empty() {
		return
	}
	list.Sort(&q.head, lessValue)
}

func lessValue(a, b *Element) bool { return a.Value < b.Value }
