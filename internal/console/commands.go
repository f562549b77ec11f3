// SPDX-License-Identifier: MIT

package console

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/sugawarayuuta/sonnet"

	"github.com/katalvlaran/lvqueue/queue"
)

// command is one entry of the interpreter's command table.
type command struct {
	name      string
	usage     string
	help      string
	minArgs   int
	needQueue bool
	run       func(in *Interpreter, args []string) error
}

// snapshot is the JSON form of one queue printed by show.
type snapshot struct {
	ID     int      `json:"id"`
	Size   int      `json:"size"`
	Values []string `json:"values"`
}

func (in *Interpreter) registry() map[string]*command {
	table := []*command{
		{name: "new", usage: "new", help: "Create a new queue and make it current", run: (*Interpreter).cmdNew},
		{name: "free", usage: "free", help: "Free the current queue", needQueue: true, run: (*Interpreter).cmdFree},
		{name: "ih", usage: "ih str [n]", help: "Insert n copies of str at the head", minArgs: 1, needQueue: true, run: insertCmd((*queue.Queue).InsertHead)},
		{name: "it", usage: "it str [n]", help: "Insert n copies of str at the tail", minArgs: 1, needQueue: true, run: insertCmd((*queue.Queue).InsertTail)},
		{name: "rh", usage: "rh [str]", help: "Remove from the head, optionally comparing with str", needQueue: true, run: removeCmd((*queue.Queue).RemoveHead)},
		{name: "rt", usage: "rt [str]", help: "Remove from the tail, optionally comparing with str", needQueue: true, run: removeCmd((*queue.Queue).RemoveTail)},
		{name: "size", usage: "size", help: "Count the elements of the current queue", needQueue: true, run: (*Interpreter).cmdSize},
		{name: "dm", usage: "dm", help: "Delete the middle element", needQueue: true, run: boolCmd((*queue.Queue).DeleteMid)},
		{name: "dedup", usage: "dedup", help: "Delete every duplicated value of a sorted queue", needQueue: true, run: boolCmd((*queue.Queue).DeleteDup)},
		{name: "swap", usage: "swap", help: "Swap adjacent pairs", needQueue: true, run: voidCmd((*queue.Queue).Swap)},
		{name: "reverse", usage: "reverse", help: "Reverse the queue", needQueue: true, run: voidCmd((*queue.Queue).Reverse)},
		{name: "reverseK", usage: "reverseK k", help: "Reverse every group of k elements", minArgs: 1, needQueue: true, run: (*Interpreter).cmdReverseK},
		{name: "sort", usage: "sort", help: "Sort ascending", needQueue: true, run: voidCmd((*queue.Queue).Sort)},
		{name: "descend", usage: "descend", help: "Remove elements with a strictly greater value to their right", needQueue: true, run: countCmd((*queue.Queue).Descend)},
		{name: "ascend", usage: "ascend", help: "Remove elements with a strictly smaller value to their right", needQueue: true, run: countCmd((*queue.Queue).Ascend)},
		{name: "merge", usage: "merge", help: "Merge every queue into the first one, sorted", run: (*Interpreter).cmdMerge},
		{name: "show", usage: "show", help: "Print the current queue", needQueue: true, run: func(in *Interpreter, _ []string) error { return in.show() }},
		{name: "prev", usage: "prev", help: "Switch to the previous queue", needQueue: true, run: (*Interpreter).cmdPrev},
		{name: "next", usage: "next", help: "Switch to the next queue", needQueue: true, run: (*Interpreter).cmdNext},
		{name: "help", usage: "help", help: "List commands", run: (*Interpreter).cmdHelp},
		{name: "quit", usage: "quit", help: "Stop reading commands", run: (*Interpreter).cmdQuit},
	}
	m := make(map[string]*command, len(table))
	for _, c := range table {
		m[c.name] = c
	}

	return m
}

func (in *Interpreter) cmdNew(_ []string) error {
	in.current = in.chain.Add(queue.New())

	return in.show()
}

func (in *Interpreter) cmdFree(_ []string) error {
	next := in.current.Prev()
	if next == nil {
		next = in.current.Next()
	}
	in.chain.Remove(in.current)
	in.current = next
	if in.current == nil {
		in.printf("q = NULL\n")

		return nil
	}

	return in.show()
}

func insertCmd(insert func(*queue.Queue, string) bool) func(*Interpreter, []string) error {
	return func(in *Interpreter, args []string) error {
		n := 1
		if len(args) > 1 {
			var err error
			if n, err = strconv.Atoi(args[1]); err != nil || n < 1 {
				return fmt.Errorf("%w: repeat count %q", ErrBadArgument, args[1])
			}
		}
		q := in.current.Queue()
		for i := 0; i < n; i++ {
			insert(q, args[0])
		}
		in.current.Refresh()

		return in.show()
	}
}

func removeCmd(remove func(*queue.Queue, []byte) *queue.Element) func(*Interpreter, []string) error {
	return func(in *Interpreter, args []string) error {
		e := remove(in.current.Queue(), in.buf)
		if e == nil {
			return ErrEmptyQueue
		}
		e.Release()
		in.current.Refresh()

		got := string(in.buf[:cLen(in.buf)])
		in.printf("Removed %s from queue\n", got)
		if len(args) > 0 {
			want := args[0]
			if len(want) > len(in.buf)-1 {
				want = want[:len(in.buf)-1]
			}
			if got != want {
				_ = in.show()

				return fmt.Errorf("%w: removed %q, expected %q", ErrMismatch, got, want)
			}
		}

		return in.show()
	}
}

func boolCmd(op func(*queue.Queue) bool) func(*Interpreter, []string) error {
	return func(in *Interpreter, _ []string) error {
		if !op(in.current.Queue()) {
			return ErrEmptyQueue
		}
		in.current.Refresh()

		return in.show()
	}
}

func voidCmd(op func(*queue.Queue)) func(*Interpreter, []string) error {
	return func(in *Interpreter, _ []string) error {
		op(in.current.Queue())

		return in.show()
	}
}

func countCmd(op func(*queue.Queue) int) func(*Interpreter, []string) error {
	return func(in *Interpreter, _ []string) error {
		n := op(in.current.Queue())
		in.current.Refresh()
		in.printf("Remaining %d\n", n)

		return in.show()
	}
}

func (in *Interpreter) cmdSize(_ []string) error {
	in.printf("Queue size = %d\n", in.current.Refresh())

	return nil
}

func (in *Interpreter) cmdReverseK(args []string) error {
	k, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: group size %q", ErrBadArgument, args[0])
	}
	in.current.Queue().ReverseK(k)

	return in.show()
}

func (in *Interpreter) cmdMerge(_ []string) error {
	if in.chain.Len() == 0 {
		return ErrNoQueue
	}
	total := queue.Merge(in.chain)
	in.current = in.chain.Front()
	in.printf("Merged %d elements\n", total)

	return in.show()
}

func (in *Interpreter) cmdPrev(_ []string) error {
	prev := in.current.Prev()
	if prev == nil {
		return fmt.Errorf("%w: already at the first queue", ErrNoQueue)
	}
	in.current = prev

	return in.show()
}

func (in *Interpreter) cmdNext(_ []string) error {
	next := in.current.Next()
	if next == nil {
		return fmt.Errorf("%w: already at the last queue", ErrNoQueue)
	}
	in.current = next

	return in.show()
}

func (in *Interpreter) cmdHelp(_ []string) error {
	names := make([]string, 0, len(in.commands))
	for name := range in.commands {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		c := in.commands[name]
		in.printf("  %-14s| %s\n", c.usage, c.help)
	}

	return nil
}

func (in *Interpreter) cmdQuit(_ []string) error {
	in.done = true

	return nil
}

// show prints the current queue as text or, with JSON enabled, as one object.
func (in *Interpreter) show() error {
	q := in.current.Queue()
	if in.opts.JSON {
		out, err := sonnet.Marshal(snapshot{ID: in.current.ID(), Size: q.Size(), Values: q.Values()})
		if err != nil {
			return fmt.Errorf("console: encode queue %d: %w", in.current.ID(), err)
		}
		in.printf("%s\n", out)

		return nil
	}
	in.printf("q[%d] = [%s]\n", in.current.ID(), strings.Join(q.Values(), " "))

	return nil
}

// cLen returns the length of the NUL-terminated prefix of buf.
func cLen(buf []byte) int {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		return i
	}

	return len(buf)
}
