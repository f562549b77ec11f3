// SPDX-License-Identifier: MIT

package list

// Sort orders the chain anchored at head by less, ascending.
//
// Algorithm Outline:
//  1. Break the circle: the last node's next becomes nil, giving a linear
//     singly-linked run starting at head.next.
//  2. Top-down merge sort on that run: find the middle with a fast/slow walk,
//     split, sort both halves, merge.
//  3. Merge takes the left head only when less(left, right) holds, otherwise
//     the right head. Equal elements may therefore change relative order:
//     the sort is NOT stable.
//  4. Rebuild every prev pointer in one pass and close the circle again.
//
// Only owner values are compared; nodes are relinked, never copied.
//
// Complexity:
//
//	Time   = O(n log n)
//	Memory = O(log n) recursion depth
func Sort[T any](head *Node[T], less func(a, b T) bool) {
	if head.Empty() || head.Singular() {
		return
	}

	head.prev.next = nil
	first := mergeSort(head.next, less)

	prev := head
	for p := first; p != nil; p = p.next {
		p.prev = prev
		prev = p
	}
	prev.next = head
	head.prev = prev
	head.next = first
}

// mergeSort sorts the nil-terminated run starting at first and returns its new first node.
func mergeSort[T any](first *Node[T], less func(a, b T) bool) *Node[T] {
	if first == nil || first.next == nil {
		return first
	}

	// fast starts one ahead so that two nodes split 1+1
	slow, fast := first, first.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	right := slow.next
	slow.next = nil

	return merge(mergeSort(first, less), mergeSort(right, less), less)
}

// merge joins two sorted nil-terminated runs. Only next pointers are maintained.
func merge[T any](left, right *Node[T], less func(a, b T) bool) *Node[T] {
	var anchor Node[T]
	tail := &anchor
	for left != nil && right != nil {
		if less(left.owner, right.owner) {
			tail.next = left
			left = left.next
		} else {
			tail.next = right
			right = right.next
		}
		tail = tail.next
	}
	if left != nil {
		tail.next = left
	} else {
		tail.next = right
	}

	return anchor.next
}
