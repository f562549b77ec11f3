// SPDX-License-Identifier: MIT

// Package queue implements a string queue on top of the intrusive circular
// list from package list, plus in-place structural algorithms over it.
//
// 🚀 What is in here?
//
//	A Queue is a sentinel; every Element owns a copy of its string and embeds
//	the list node that links it. Every algorithm rearranges links only, no
//	payload is ever copied between elements.
//
// ✨ Operations:
//
//	// lifecycle and ends
//	New() *Queue                        // O(1)
//	(*Queue).Free()                     // O(n)
//	InsertHead(s) / InsertTail(s) bool  // O(1)
//	RemoveHead(buf) / RemoveTail(buf)   // O(1), returns *Element
//	Size() int                          // O(n), no cached count
//
//	// structural algorithms
//	DeleteMid() bool        // drop element ⌊n/2⌋+1 (1-indexed)
//	DeleteDup() bool        // sorted input: drop every duplicated value entirely
//	Swap()                  // swap adjacent pairs
//	Reverse()               // reverse in place
//	ReverseK(k)             // reverse each full group of k
//	Sort()                  // merge sort, ascending, byte-wise
//	Descend() int           // keep elements with nothing strictly greater to their right
//	Ascend() int            // keep elements with nothing strictly smaller to their right
//
//	// many queues
//	NewChain(), (*Chain).Add(q) *Context
//	Merge(chain) int        // concatenate into the first context and sort
//
// Ordering is always lexicographic byte comparison of the strings ("13" < "8").
//
// Errors:
//
//	No operation returns an error or panics. An absent (nil) queue or an empty
//	one yields false, nil or 0. Preconditions such as "DeleteDup expects a
//	sorted queue" are the caller's responsibility and are not checked.
//
// Ownership:
//
//	A Queue owns every element linked to it. RemoveHead/RemoveTail hand the
//	removed Element to the caller, who releases it with Element.Release.
//	A Context owns its Queue and Chain.Free releases all of them.
//
// Concurrency:
//
//	None. A Queue or Chain must be used by one goroutine at a time; callers
//	that share one must serialize access themselves.
package queue
