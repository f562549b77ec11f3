// SPDX-License-Identifier: MIT

// Package list provides an intrusive, circular, doubly-linked list.
//
// 🚀 What is an intrusive list?
//
//	The list node lives inside the data it links. A struct embeds a Node and
//	binds itself as the node's owner, so moving an element from one position
//	(or one chain) to another never allocates and never copies the payload:
//
//	  type item struct {
//	      name string
//	      link list.Node[*item]
//	  }
//
//	  it := &item{name: "a"}
//	  it.link.Bind(it)
//
// Chains are anchored by a sentinel: a Node that carries no owner and marks
// both ends of the circle. An empty chain is a sentinel pointing to itself in
// both directions.
//
//	  ┌──────────────────────────────────────┐
//	  └─> [sentinel] <─> [a] <─> [b] <─> [c] ─┘
//
// ✨ Primitives:
//   - Init, InsertAfter, InsertBefore, Unlink, UnlinkInit : O(1)
//   - MoveAfter, MoveBefore : O(1) unlink + relink
//   - Empty, Singular : O(1)
//   - SpliceInto : O(1) concatenation of a whole chain
//   - Cut : O(k) detach of a closed range [begin, end] into a fresh sentinel
//   - Sort : O(n log n) top-down merge sort on the linked nodes
//
// Invariant:
//
//	For every node n in a chain, n.Next().Prev() == n and n.Prev().Next() == n.
//	Every primitive restores it before returning.
//
// The package does no locking. A chain must be mutated by one goroutine at a
// time.
package list
