// Package alloclist implements a doubly linked list whose storage comes
// from pluggable allocators.
//
// A List owns two allocator instances (see package alloc): one that
// allocates element blocks, and one that allocates the link nodes that
// chain those blocks together. Both are chosen when the list is
// constructed; NewDefault uses the Go heap for both.
//
// Nodes never move in memory. A Node handle, and the element block
// returned by Node.Value, stay valid until the node is erased. Inserting,
// erasing and splicing are O(1) per node, and splicing between two lists
// whose allocator instances are equal is pure pointer relinking: neither
// nodes nor element blocks are copied. When the instances are not equal
// (say, two lists drawing from different arenas), a splice copies the
// elements into the destination and erases the originals instead.
//
// Positions are *Node values. A nil position is the end marker: "one
// past the last element". Inserting at nil appends, and a range [first,
// nil) runs through the end of the list.
//
// Operations that combine two lists require them to be of the same type,
// meaning their allocators are of the same strategies (List.SameType).
// Violating that, or any other documented precondition, is a programming
// error: the operation panics with an error wrapping one of the
// package's sentinel errors, and does not modify either list.
// Allocation failures are reported as ordinary errors.
//
// A List is not safe for concurrent use. See package synclist for a
// guarded wrapper.
package alloclist

import (
	"github.com/neilotoole/alloclist/alloc"
)

// List is a doubly linked list of T. Create one with New, NewDefault,
// NewCopy or NewMove, and release it with Destroy.
type List[T any] struct {
	head, tail *Node[T]

	// len is the number of nodes reachable from head.
	len int

	// data allocates element blocks; nodes allocates Node values.
	data  alloc.Allocator[T]
	nodes alloc.Allocator[Node[T]]
}

// New returns an empty list that allocates element blocks from data
// and nodes from nodes. The list takes ownership of both instances.
func New[T any](data alloc.Allocator[T], nodes alloc.Allocator[Node[T]]) *List[T] {
	if data == nil || nodes == nil {
		precondition("new", ErrNilAllocator)
	}
	return &List[T]{data: data, nodes: nodes}
}

// NewDefault returns an empty list that allocates from the Go heap.
func NewDefault[T any]() *List[T] {
	return New[T](alloc.NewHeap[T](), alloc.NewHeap[Node[T]]())
}

// NewCopy returns a deep copy of other. The copy's allocators are clones
// of other's. If allocation fails part way, the partial copy is
// destroyed and the error is returned.
func NewCopy[T any](other *List[T]) (*List[T], error) {
	l := New[T](other.data.Clone(), other.nodes.Clone())
	if _, err := l.InsertRange(nil, other.head, nil); err != nil {
		l.Destroy()
		return nil, err
	}
	return l, nil
}

// NewMove returns a list that takes over other's allocator instances and
// its entire sequence, without copying. Afterwards other is empty and
// holds clones of the allocator instances, so it remains usable and
// must still be destroyed.
func NewMove[T any](other *List[T]) *List[T] {
	l := &List[T]{
		head:  other.head,
		tail:  other.tail,
		len:   other.len,
		data:  other.data,
		nodes: other.nodes,
	}

	other.head, other.tail, other.len = nil, nil, 0
	other.data = l.data.Clone()
	other.nodes = l.nodes.Clone()
	return l
}

// Destroy erases every element and then releases both allocator
// instances. The list must not be used afterwards.
func (l *List[T]) Destroy() {
	l.Clear()
	l.nodes.Release()
	l.data.Release()
	l.data, l.nodes = nil, nil
}

// Clear erases every element.
func (l *List[T]) Clear() {
	l.EraseRange(l.head, nil)
	l.head, l.tail, l.len = nil, nil, 0
}

// Len returns the number of elements in l.
func (l *List[T]) Len() int {
	return l.len
}

// Empty reports whether l has no elements.
func (l *List[T]) Empty() bool {
	return l.len == 0
}

// Front returns the first node of l, or nil if l is empty.
func (l *List[T]) Front() *Node[T] {
	return l.head
}

// Back returns the last node of l, or nil if l is empty.
func (l *List[T]) Back() *Node[T] {
	return l.tail
}

// Values returns a copy of l's elements, in order.
func (l *List[T]) Values() []T {
	vals := make([]T, 0, l.len)
	for n := l.head; n != nil; n = n.next {
		vals = append(vals, *n.data)
	}
	return vals
}

// ForEach invokes fn on every element block of l, in order. fn may
// modify the element but must not modify l.
func (l *List[T]) ForEach(fn func(v *T)) {
	forEachRange(l.head, l.tail, fn)
}

// SameType reports whether l and other use allocators of the same
// strategies, element allocator against element allocator and node
// allocator against node allocator.
func (l *List[T]) SameType(other *List[T]) bool {
	return alloc.SameStrategy(l.data, other.data) &&
		alloc.SameStrategy(l.nodes, other.nodes)
}

// allocatorsEqual reports whether blocks allocated by other may be
// released by l, for both allocator roles.
func (l *List[T]) allocatorsEqual(other *List[T]) bool {
	return l.nodes.Equal(other.nodes) && l.data.Equal(other.data)
}

// newNode allocates a detached node holding a copy of v.
func (l *List[T]) newNode(v T) (*Node[T], error) {
	n, err := l.nodes.Allocate()
	if err != nil {
		return nil, err
	}

	data, err := l.data.Allocate()
	if err != nil {
		l.nodes.Deallocate(n)
		return nil, err
	}

	*data = v
	n.prev, n.next, n.data = nil, nil, data
	return n, nil
}

// freeNode releases n's element block and n itself.
func (l *List[T]) freeNode(n *Node[T]) {
	l.data.Deallocate(n.data)
	n.prev, n.next, n.data = nil, nil, nil
	l.nodes.Deallocate(n)
}

// PushBack appends a copy of v to l and returns its node.
func (l *List[T]) PushBack(v T) (*Node[T], error) {
	n, err := l.newNode(v)
	if err != nil {
		return nil, err
	}

	if l.tail == nil {
		l.head = n
	} else {
		insertRangeAfter(l.tail, n, n)
	}
	l.tail = n
	l.len++
	return n, nil
}

// PushFront prepends a copy of v to l and returns its node.
func (l *List[T]) PushFront(v T) (*Node[T], error) {
	return l.Insert(l.head, v)
}

// Insert inserts a copy of v immediately before pos, or at the end of
// l if pos is nil, and returns the new node.
func (l *List[T]) Insert(pos *Node[T], v T) (*Node[T], error) {
	if pos == nil {
		return l.PushBack(v)
	}

	n, err := l.newNode(v)
	if err != nil {
		return nil, err
	}

	insertRange(pos, n, n)
	if pos == l.head {
		l.head = n
	}
	l.len++
	return n, nil
}

// InsertRange inserts copies of the elements of [first, last) before
// pos, in order, and returns the first inserted node, or nil if the
// range is empty. pos must not lie strictly inside the range.
//
// If an allocation fails, the elements inserted so far remain in l and
// the error is returned.
func (l *List[T]) InsertRange(pos, first, last *Node[T]) (*Node[T], error) {
	var ret *Node[T]
	for ; first != last; first = first.next {
		n, err := l.Insert(pos, *first.data)
		if err != nil {
			return ret, err
		}
		if ret == nil {
			ret = n
		}
	}
	return ret, nil
}

// Erase removes pos from l, releasing its storage, and returns the node
// that followed it (nil if pos was the last node).
func (l *List[T]) Erase(pos *Node[T]) *Node[T] {
	next := pos.next

	if pos == l.tail {
		l.tail = pos.prev
	}
	if pos == l.head {
		l.head = pos.next
	}

	detachRange(pos, pos)
	l.freeNode(pos)
	l.len--
	return next
}

// EraseRange removes every node in [first, last) and returns last.
func (l *List[T]) EraseRange(first, last *Node[T]) *Node[T] {
	for first != last {
		first = l.Erase(first)
	}
	return last
}

// Assign replaces the contents of l with copies of the elements of
// [first, last). The range must not belong to l.
func (l *List[T]) Assign(first, last *Node[T]) error {
	l.Clear()
	_, err := l.InsertRange(nil, first, last)
	return err
}

// Resize truncates l to n elements, or appends copies of v until l has
// n elements. It panics if n is negative.
func (l *List[T]) Resize(n int, v T) error {
	if n < 0 {
		panic("alloclist: negative resize")
	}

	if l.len > n {
		l.EraseRange(l.head.Advance(n), nil)
		return nil
	}

	for i := l.len; i < n; i++ {
		if _, err := l.PushBack(v); err != nil {
			return err
		}
	}
	return nil
}

// Swap exchanges the contents of l and other. The allocator instances
// are exchanged along with the nodes they allocated. It panics if l and
// other are not of the same type.
func (l *List[T]) Swap(other *List[T]) {
	if !l.SameType(other) {
		precondition("swap", ErrTypeMismatch)
	}

	l.head, other.head = other.head, l.head
	l.tail, other.tail = other.tail, l.tail
	l.len, other.len = other.len, l.len
	l.data, other.data = other.data, l.data
	l.nodes, other.nodes = other.nodes, l.nodes
}
