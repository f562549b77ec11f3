// Package lvqueue is an in-memory string queue built on an intrusive,
// circular, doubly-linked list, with a library of in-place structural
// algorithms over it.
//
// 🚀 What is in lvqueue?
//
//	• list/   : the linkage primitive: Node[T] embedded in your own structs,
//	            O(1) link/unlink/move/splice, O(k) range cut, merge sort
//	• queue/  : Queue of owned strings: head/tail insert and remove, size,
//	            delete-middle, delete-duplicates, pairwise swap, reverse,
//	            k-group reverse, ascending sort, descend/ascend filters,
//	            and k-way Merge of queues held in a Chain
//	• cmd/qtest : a command interpreter that drives queues from scripts
//
// ✨ Why an intrusive list?
//
//   - Moving an element never allocates and never copies its payload
//   - Whole queues concatenate in O(1)
//   - Every algorithm is pointer surgery on the links, nothing else
//
// Quick ASCII example:
//
//	  ┌─────────────────────────────────────────┐
//	  └─> [head] <─> ["b"] <─> ["a"] <─> ["c"] ─┘
//
//	after Sort():
//
//	  ┌─────────────────────────────────────────┐
//	  └─> [head] <─> ["a"] <─> ["b"] <─> ["c"] ─┘
//
// Ordering is always byte-wise string comparison. Nothing here is safe for
// concurrent use; serialize access to a queue yourself.
//
//	go get github.com/katalvlaran/lvqueue/queue
package lvqueue
