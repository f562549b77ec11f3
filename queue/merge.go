// SPDX-License-Identifier: MIT

package queue

import "github.com/katalvlaran/lvqueue/list"

// NewChain returns an empty Chain.
func NewChain() *Chain {
	c := &Chain{}
	c.head.Init()

	return c
}

// lazyInit links the sentinel of a zero Chain.
func (c *Chain) lazyInit() {
	if c.head.Next() == nil {
		c.head.Init()
	}
}

// Add takes ownership of q, links a new Context for it at the end of c and
// caches q's current size. A nil q gets a fresh empty Queue.
// Each Context gets the next sequential id, starting at 0.
// Complexity: O(len(q)).
func (c *Chain) Add(q *Queue) *Context {
	c.lazyInit()
	if q == nil {
		q = New()
	}
	ctx := &Context{q: q, size: q.Size(), id: c.nextID}
	c.nextID++
	ctx.chain.Bind(ctx)
	c.head.InsertBefore(&ctx.chain)

	return ctx
}

// Remove unlinks ctx from c and frees its queue.
func (c *Chain) Remove(ctx *Context) {
	if c == nil || ctx == nil || ctx.chain.Next() == nil {
		return
	}
	ctx.chain.Unlink()
	ctx.q.Free()
	ctx.size = 0
}

// Len returns the number of contexts in c.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	c.lazyInit()

	return list.Len(&c.head)
}

// Front returns the first context, or nil.
func (c *Chain) Front() *Context {
	if c == nil {
		return nil
	}
	c.lazyInit()

	return c.head.Next().Owner()
}

// Back returns the last context, or nil.
func (c *Chain) Back() *Context {
	if c == nil {
		return nil
	}
	c.lazyInit()

	return c.head.Prev().Owner()
}

// Free frees every context's queue and empties c.
func (c *Chain) Free() {
	if c == nil {
		return
	}
	c.lazyInit()
	for ctx := range list.All(&c.head) {
		ctx.chain.Unlink()
		ctx.q.Free()
		ctx.size = 0
	}
	c.head.Init()
}

// Queue returns the queue owned by ctx.
func (ctx *Context) Queue() *Queue { return ctx.q }

// Size returns the cached element count.
func (ctx *Context) Size() int { return ctx.size }

// ID returns the sequence number assigned by Chain.Add.
func (ctx *Context) ID() int { return ctx.id }

// Refresh recounts the queue and updates the cached size.
func (ctx *Context) Refresh() int {
	ctx.size = ctx.q.Size()

	return ctx.size
}

// Next returns the following context in the chain, or nil.
func (ctx *Context) Next() *Context {
	if n := ctx.chain.Next(); n != nil && n != &ctx.chain {
		return n.Owner()
	}

	return nil
}

// Prev returns the preceding context in the chain, or nil.
func (ctx *Context) Prev() *Context {
	if p := ctx.chain.Prev(); p != nil && p != &ctx.chain {
		return p.Owner()
	}

	return nil
}

// Merge concatenates the queues of every context in c into the first
// context's queue and sorts the result ascending.
//
// Implementation:
//  1. For each context after the first, splice its whole queue onto the tail
//     of the first queue (O(1) each) and set its cached size to 0. The drained
//     contexts stay linked in the chain.
//  2. Sort the first queue (see Queue.Sort).
//  3. Cache and return the total size in the first context.
//
// Returns 0 for a nil or empty chain. A chain with a single context is left
// alone and its cached size is returned as is.
//
// Complexity: O(k + n log n) for k contexts and n elements in total.
func Merge(c *Chain) int {
	if c == nil {
		return 0
	}
	c.lazyInit()
	if c.head.Empty() {
		return 0
	}
	first := c.head.Next().Owner()
	if c.head.Singular() {
		return first.size
	}

	dst := &first.q.head
	for ctx := first.Next(); ctx != nil; ctx = ctx.Next() {
		if ctx.q != first.q {
			ctx.q.head.SpliceInto(dst.Prev())
		}
		ctx.size = 0
	}
	first.q.Sort()

	return first.Refresh()
}
