// SPDX-License-Identifier: MIT

package queue

import (
	"iter"
	"strings"

	"github.com/katalvlaran/lvqueue/list"
)

// New returns an empty Queue.
// Complexity: O(1).
func New() *Queue {
	q := &Queue{}
	q.head.Init()

	return q
}

// Free releases every element of q and leaves q empty. A nil q is a no-op.
// Complexity: O(n).
func (q *Queue) Free() {
	if q == nil {
		return
	}
	for e := range list.All(&q.head) {
		remove(e)
	}
	q.head.Init()
}

// InsertHead links a copy of s at the head of q.
// Returns false only for a nil q.
// Complexity: O(len(s)) for the copy, O(1) for the link.
func (q *Queue) InsertHead(s string) bool {
	if q == nil {
		return false
	}
	q.head.InsertAfter(&newElement(s).link)

	return true
}

// InsertTail links a copy of s at the tail of q.
// Returns false only for a nil q.
func (q *Queue) InsertTail(s string) bool {
	if q == nil {
		return false
	}
	q.head.InsertBefore(&newElement(s).link)

	return true
}

// RemoveHead unlinks the first element and hands it to the caller, who must
// Release it.
//
// If buf is non-empty, up to len(buf)-1 bytes of the value are copied into
// it, followed by a NUL byte; the rest of buf is zeroed. Longer values are
// truncated silently.
//
// Returns nil, leaving buf untouched, when q is nil or empty.
// Complexity: O(1) + O(len(buf)).
func (q *Queue) RemoveHead(buf []byte) *Element {
	if q == nil || q.head.Empty() {
		return nil
	}

	return detach(q.head.Next().Owner(), buf)
}

// RemoveTail is RemoveHead for the last element.
func (q *Queue) RemoveTail(buf []byte) *Element {
	if q == nil || q.head.Empty() {
		return nil
	}

	return detach(q.head.Prev().Owner(), buf)
}

// Size counts the elements of q; 0 for a nil q.
// Complexity: O(n).
func (q *Queue) Size() int {
	if q == nil {
		return 0
	}

	return list.Len(&q.head)
}

// Empty reports whether q is nil or holds no element.
func (q *Queue) Empty() bool {
	return q == nil || q.head.Empty()
}

// Front returns the first element, or nil.
func (q *Queue) Front() *Element {
	if q == nil {
		return nil
	}

	return q.head.Next().Owner()
}

// Back returns the last element, or nil.
func (q *Queue) Back() *Element {
	if q == nil {
		return nil
	}

	return q.head.Prev().Owner()
}

// Values returns a snapshot of the queued strings from head to tail.
func (q *Queue) Values() []string {
	if q == nil {
		return nil
	}
	out := make([]string, 0, list.Len(&q.head))
	for e := range list.All(&q.head) {
		out = append(out, e.Value)
	}

	return out
}

// All yields the queued strings from head to tail.
func (q *Queue) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		if q == nil {
			return
		}
		for e := range list.All(&q.head) {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Next returns the element after e in its queue, or nil at the tail or when e
// is not linked.
func (e *Element) Next() *Element {
	if n := e.link.Next(); n != nil && n != &e.link {
		return n.Owner()
	}

	return nil
}

// Prev returns the element before e in its queue, or nil at the head or when
// e is not linked.
func (e *Element) Prev() *Element {
	if p := e.link.Prev(); p != nil && p != &e.link {
		return p.Owner()
	}

	return nil
}

// Release destroys an element handed out by RemoveHead or RemoveTail.
// An element that is still linked is unlinked first. Release on nil is a no-op.
func (e *Element) Release() {
	if e == nil {
		return
	}
	if n := e.link.Next(); n != nil && n != &e.link {
		e.link.Unlink()
	}
	e.release()
}

// newElement copies s so the queue never aliases the caller's string storage.
func newElement(s string) *Element {
	e := &Element{Value: strings.Clone(s)}
	e.link.Bind(e)

	return e
}

// release drops the payload and the owner binding of an unlinked element.
func (e *Element) release() {
	e.Value = ""
	e.link = list.Node[*Element]{}
}

// detach unlinks e and copies its value into buf per RemoveHead's contract.
func detach(e *Element, buf []byte) *Element {
	e.link.UnlinkInit()
	if len(buf) > 0 {
		n := copy(buf[:len(buf)-1], e.Value)
		clear(buf[n:])
	}

	return e
}

// remove unlinks and releases e.
func remove(e *Element) {
	e.link.Unlink()
	e.release()
}
