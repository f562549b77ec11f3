// SPDX-License-Identifier: MIT

package list_test

import (
	"fmt"

	"github.com/katalvlaran/lvqueue/list"
)

type task struct {
	id   int
	link list.Node[*task]
}

// ExampleNode shows the embed/bind pattern, a move and a whole-chain splice.
func ExampleNode() {
	ready := new(list.Node[*task]).Init()
	waiting := new(list.Node[*task]).Init()

	for i := 1; i <= 3; i++ {
		tk := &task{id: i}
		tk.link.Bind(tk)
		ready.InsertBefore(&tk.link)
	}

	// move the first task to the waiting chain
	ready.Next().MoveBefore(waiting)

	// then put everything waiting back at the tail of ready
	waiting.SpliceInto(ready.Prev())

	var ids []int
	for tk := range list.All(ready) {
		ids = append(ids, tk.id)
	}
	fmt.Println(ids)
	fmt.Println("waiting empty:", waiting.Empty())
	// Output:
	// [2 3 1]
	// waiting empty: true
}

// ExampleSort sorts tasks by id, highest first.
func ExampleSort() {
	head := new(list.Node[*task]).Init()
	for _, id := range []int{4, 1, 3, 2} {
		tk := &task{id: id}
		tk.link.Bind(tk)
		head.InsertBefore(&tk.link)
	}

	list.Sort(head, func(a, b *task) bool { return a.id > b.id })

	var ids []int
	for tk := range list.All(head) {
		ids = append(ids, tk.id)
	}
	fmt.Println(ids)
	// Output:
	// [4 3 2 1]
}
