// SPDX-License-Identifier: MIT

package list_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/lvqueue/list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// item is a minimal struct embedding a list node.
type item struct {
	name string
	link list.Node[*item]
}

func newItem(name string) *item {
	it := &item{name: name}
	it.link.Bind(it)

	return it
}

// build returns a sentinel holding one item per name, in order.
func build(names ...string) (*list.Node[*item], []*item) {
	head := new(list.Node[*item]).Init()
	items := make([]*item, 0, len(names))
	for _, n := range names {
		it := newItem(n)
		head.InsertBefore(&it.link)
		items = append(items, it)
	}

	return head, items
}

// names walks head forward.
func names(head *list.Node[*item]) []string {
	var out []string
	for it := range list.All(head) {
		out = append(out, it.name)
	}

	return out
}

// requireConsistent walks the chain both ways and checks every neighbor pair.
func requireConsistent(t *testing.T, head *list.Node[*item]) {
	t.Helper()
	steps := 0
	for p := head.Next(); ; p = p.Next() {
		require.Same(t, p, p.Next().Prev(), "next.prev must point back")
		require.Same(t, p, p.Prev().Next(), "prev.next must point back")
		if p == head {
			break
		}
		steps++
		require.Less(t, steps, 1<<16, "chain does not close")
	}
	var backward []string
	for it := range list.Backward(head) {
		backward = append(backward, it.name)
	}
	forward := names(head)
	slices.Reverse(backward)
	assert.Equal(t, forward, backward, "forward and backward walks must agree")
}

// TestNode_InitEmptySingular verifies the sentinel predicates.
func TestNode_InitEmptySingular(t *testing.T) {
	head := new(list.Node[*item]).Init()
	assert.True(t, head.Empty())
	assert.False(t, head.Singular())
	assert.Same(t, head, head.Next())
	assert.Same(t, head, head.Prev())
	assert.Nil(t, head.Owner(), "sentinel carries no owner")

	a := newItem("a")
	head.InsertAfter(&a.link)
	assert.False(t, head.Empty())
	assert.True(t, head.Singular())

	b := newItem("b")
	head.InsertBefore(&b.link)
	assert.False(t, head.Singular())
	assert.Equal(t, 2, list.Len(head))
	requireConsistent(t, head)
}

// TestNode_InsertOrder checks InsertAfter(head) prepends and InsertBefore(head) appends.
func TestNode_InsertOrder(t *testing.T) {
	head := new(list.Node[*item]).Init()
	for _, n := range []string{"1", "2", "3"} {
		it := newItem(n)
		head.InsertAfter(&it.link)
	}
	assert.Equal(t, []string{"3", "2", "1"}, names(head))

	head, _ = build("1", "2", "3")
	assert.Equal(t, []string{"1", "2", "3"}, names(head))
	requireConsistent(t, head)
}

// TestNode_Unlink verifies both unlink flavors restore the neighbors.
func TestNode_Unlink(t *testing.T) {
	head, items := build("a", "b", "c")

	items[1].link.Unlink()
	assert.Nil(t, items[1].link.Next(), "Unlink clears the removed node")
	assert.Equal(t, []string{"a", "c"}, names(head))
	requireConsistent(t, head)

	items[0].link.UnlinkInit()
	assert.True(t, items[0].link.Empty(), "UnlinkInit leaves a self-linked node")
	assert.Equal(t, []string{"c"}, names(head))

	items[2].link.Unlink()
	assert.True(t, head.Empty())
}

// TestNode_Move covers MoveAfter/MoveBefore including the self-move no-op.
func TestNode_Move(t *testing.T) {
	head, items := build("a", "b", "c", "d")

	items[0].link.MoveAfter(&items[2].link)
	assert.Equal(t, []string{"b", "c", "a", "d"}, names(head))

	items[3].link.MoveBefore(&items[1].link)
	assert.Equal(t, []string{"d", "b", "c", "a"}, names(head))

	items[2].link.MoveAfter(head)
	assert.Equal(t, []string{"c", "d", "b", "a"}, names(head))

	items[2].link.MoveBefore(head)
	assert.Equal(t, []string{"d", "b", "a", "c"}, names(head))

	items[1].link.MoveAfter(&items[1].link)
	assert.Equal(t, []string{"d", "b", "a", "c"}, names(head))
	requireConsistent(t, head)
}

// TestSpliceInto checks whole-chain concatenation at head, middle and tail.
func TestSpliceInto(t *testing.T) {
	dst, _ := build("1", "2")
	src, _ := build("x", "y")
	src.SpliceInto(dst.Prev())
	assert.Equal(t, []string{"1", "2", "x", "y"}, names(dst))
	assert.True(t, src.Empty(), "source sentinel must be emptied")
	requireConsistent(t, dst)

	src2, _ := build("p")
	src2.SpliceInto(dst)
	assert.Equal(t, []string{"p", "1", "2", "x", "y"}, names(dst))

	src3, _ := build("m", "n")
	src3.SpliceInto(dst.Next().Next())
	assert.Equal(t, []string{"p", "1", "m", "n", "2", "x", "y"}, names(dst))
	requireConsistent(t, dst)

	empty := new(list.Node[*item]).Init()
	empty.SpliceInto(dst)
	assert.Equal(t, 7, list.Len(dst), "splicing an empty chain is a no-op")
}

// TestCut covers valid ranges and rejected ones.
func TestCut(t *testing.T) {
	head, items := build("a", "b", "c", "d", "e")
	dst := new(list.Node[*item])

	n, err := list.Cut(dst, head, &items[1].link, &items[3].link)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"b", "c", "d"}, names(dst))
	assert.Equal(t, []string{"a", "e"}, names(head))
	requireConsistent(t, head)
	requireConsistent(t, dst)

	// single-node range
	n, err = list.Cut(dst, head, &items[4].link, &items[4].link)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"e"}, names(dst))
	assert.Equal(t, []string{"a"}, names(head))
}

// TestCut_BadRange verifies the chain is untouched when end precedes begin.
func TestCut_BadRange(t *testing.T) {
	head, items := build("a", "b", "c")
	dst := new(list.Node[*item]).Init()

	_, err := list.Cut(dst, head, &items[2].link, &items[0].link)
	assert.ErrorIs(t, err, list.ErrBadRange)
	_, err = list.Cut(dst, head, head, &items[0].link)
	assert.ErrorIs(t, err, list.ErrBadRange)
	_, err = list.Cut(dst, head, &items[0].link, head)
	assert.ErrorIs(t, err, list.ErrBadRange)

	assert.Equal(t, []string{"a", "b", "c"}, names(head))
	assert.True(t, dst.Empty())
	requireConsistent(t, head)

	// begin on another chain: the walk wraps around that chain without meeting head
	other, others := build("x", "y")
	_, err = list.Cut(dst, head, &others[0].link, &items[1].link)
	assert.ErrorIs(t, err, list.ErrBadRange)
	assert.Equal(t, []string{"x", "y"}, names(other))
	assert.Equal(t, []string{"a", "b", "c"}, names(head))
	requireConsistent(t, other)
}

// TestAll_EarlyStopAndRemoval checks iteration tolerates unlinking the yielded node.
func TestAll_EarlyStopAndRemoval(t *testing.T) {
	head, _ := build("a", "b", "c", "d")
	for it := range list.All(head) {
		if it.name == "b" || it.name == "c" {
			it.link.Unlink()
		}
	}
	assert.Equal(t, []string{"a", "d"}, names(head))

	seen := 0
	for range list.All(head) {
		seen++
		break
	}
	assert.Equal(t, 1, seen)

	for it := range list.Backward(head) {
		it.link.Unlink()
	}
	assert.True(t, head.Empty())
}
