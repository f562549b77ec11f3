// SPDX-License-Identifier: MIT

package queue

import "github.com/katalvlaran/lvqueue/list"

// Element is one queued string.
//
// An Element is linked into at most one Queue at a time; membership is known
// only through its link, there is no pointer back to the Queue.
type Element struct {
	// Value is the element's own copy of the inserted string.
	Value string

	link list.Node[*Element]
}

// Queue is a sentinel-anchored circular list of Elements.
//
// The zero Queue is not usable; construct one with New. A Queue does not
// store its length, Size walks the chain.
type Queue struct {
	head list.Node[*Element]
}

// Context pairs a Queue with a cached element count and links it into a Chain.
//
// The cached count is only refreshed by Chain.Add, Context.Refresh and Merge.
type Context struct {
	q     *Queue
	size  int
	id    int
	chain list.Node[*Context]
}

// Chain is a sentinel-anchored list of Contexts, the input of Merge.
// The zero value is an empty Chain ready to use.
type Chain struct {
	head   list.Node[*Context]
	nextID int
}
