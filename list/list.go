// SPDX-License-Identifier: MIT

package list

import (
	"errors"
	"iter"
)

// ErrBadRange is returned by Cut when end cannot be reached from begin
// without passing the chain's sentinel.
var ErrBadRange = errors.New("list: end is not reachable from begin")

// Node is a linkage field for an intrusive circular doubly-linked list.
//
// The zero Node is NOT a valid chain: call Init before using a Node as a
// sentinel. Nodes used as element links are initialized by the insert
// primitives themselves.
//
// owner is the struct that embeds the node; it is the zero value for a
// sentinel.
type Node[T any] struct {
	next, prev *Node[T]
	owner      T
}

// Init makes n a self-referencing sentinel (an empty chain) and returns it.
// Complexity: O(1).
func (n *Node[T]) Init() *Node[T] {
	n.next = n
	n.prev = n

	return n
}

// Bind records owner as the struct that embeds n and returns n.
func (n *Node[T]) Bind(owner T) *Node[T] {
	n.owner = owner

	return n
}

// Owner returns the struct that embeds n (zero for a sentinel).
func (n *Node[T]) Owner() T { return n.owner }

// Next returns the successor of n.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Prev returns the predecessor of n.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// Empty reports whether the chain anchored at sentinel n has no nodes.
func (n *Node[T]) Empty() bool { return n.next == n }

// Singular reports whether the chain anchored at sentinel n has exactly one node.
func (n *Node[T]) Singular() bool { return n.next != n && n.next == n.prev }

// link splices node between two adjacent nodes prev and next.
func link[T any](prev, node, next *Node[T]) {
	next.prev = node
	node.next = next
	node.prev = prev
	prev.next = node
}

// unlink makes prev and next point at each other, dropping whatever was between them.
func unlink[T any](prev, next *Node[T]) {
	next.prev = prev
	prev.next = next
}

// InsertAfter links node immediately after anchor.
// Complexity: O(1).
func (anchor *Node[T]) InsertAfter(node *Node[T]) {
	link(anchor, node, anchor.next)
}

// InsertBefore links node immediately before anchor.
// With anchor being a sentinel this appends at the tail.
// Complexity: O(1).
func (anchor *Node[T]) InsertBefore(node *Node[T]) {
	link(anchor.prev, node, anchor)
}

// Unlink removes n from its chain. n's own pointers are cleared and must not
// be followed afterwards; use UnlinkInit if n is going to be tested with Empty.
// Complexity: O(1).
func (n *Node[T]) Unlink() {
	unlink(n.prev, n.next)
	n.next = nil
	n.prev = nil
}

// UnlinkInit removes n from its chain and re-initializes it to point to itself.
// Complexity: O(1).
func (n *Node[T]) UnlinkInit() {
	unlink(n.prev, n.next)
	n.Init()
}

// MoveAfter unlinks n and relinks it immediately after anchor.
// Moving a node relative to itself is a no-op.
// Complexity: O(1).
func (n *Node[T]) MoveAfter(anchor *Node[T]) {
	if n == anchor {
		return
	}
	unlink(n.prev, n.next)
	link(anchor, n, anchor.next)
}

// MoveBefore unlinks n and relinks it immediately before anchor.
// Complexity: O(1).
func (n *Node[T]) MoveBefore(anchor *Node[T]) {
	if n == anchor {
		return
	}
	unlink(n.prev, n.next)
	link(anchor.prev, n, anchor)
}

// SpliceInto moves every node of the chain anchored at sentinel src to
// immediately after anchor, keeping their order, and leaves src empty.
// To append at the tail of another chain pass that chain's last node
// (dst.Prev()) as anchor.
// Complexity: O(1).
func (src *Node[T]) SpliceInto(anchor *Node[T]) {
	if src.Empty() {
		return
	}
	first, last := src.next, src.prev
	at := anchor.next

	first.prev = anchor
	anchor.next = first
	last.next = at
	at.prev = last

	src.Init()
}

// Cut detaches the closed range [begin, end] from the chain anchored at head
// and moves it, in order, into dst. dst is re-initialized first, so any nodes
// it held are dropped from it.
//
// The walk from begin to end both validates the range and counts it; Cut
// returns the number of nodes moved.
//
// Errors:
//   - ErrBadRange if begin or end is the sentinel, or end is not reachable
//     from begin before wrapping around to head (or back to begin, when
//     begin is not on head's chain). The chain is left untouched.
//
// Complexity: O(k), k = length of the range.
func Cut[T any](dst, head, begin, end *Node[T]) (int, error) {
	if begin == head || end == head {
		return 0, ErrBadRange
	}
	count := 1
	for p := begin; p != end; p = p.next {
		if p.next == head || p.next == begin {
			return 0, ErrBadRange
		}
		count++
	}

	unlink(begin.prev, end.next)
	dst.next = begin
	begin.prev = dst
	dst.prev = end
	end.next = dst

	return count, nil
}

// Len counts the nodes of the chain anchored at head.
// Complexity: O(n).
func Len[T any](head *Node[T]) int {
	n := 0
	for p := head.next; p != head; p = p.next {
		n++
	}

	return n
}

// All yields the owners of the chain anchored at head from first to last.
// The successor is read before each yield, so the loop body may unlink the
// node it was handed.
func All[T any](head *Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for p, next := head.next, head.next.next; p != head; p, next = next, next.next {
			if !yield(p.owner) {
				return
			}
		}
	}
}

// Backward yields the owners of the chain anchored at head from last to first.
// Like All, it tolerates unlinking the current node.
func Backward[T any](head *Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for p, prev := head.prev, head.prev.prev; p != head; p, prev = prev, prev.prev {
			if !yield(p.owner) {
				return
			}
		}
	}
}
