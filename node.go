package alloclist

// Node is a link in a List. A Node is created only by a List insertion
// and destroyed only by a List erasure; between those it belongs to
// whichever list currently holds it, which changes when it is spliced.
//
// All ranges handled by the functions in this file are inclusive at
// both ends: [head, tail]. A single node n is the range [n, n].
type Node[T any] struct {
	prev, next *Node[T]

	// data is the node's element block, allocated by the owning list's
	// element allocator. It is never nil for a node in a list.
	data *T
}

// Next returns the node after n, or nil if n is the last node.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the node before n, or nil if n is the first node.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// Value returns a pointer to n's element block. The address is stable
// for as long as the node lives, including across relinking splices.
func (n *Node[T]) Value() *T {
	return n.data
}

// Advance walks steps links forward, or backward if steps is negative,
// and returns the node reached. Walking past either end of the chain
// panics; the caller must ensure steps is in range.
func (n *Node[T]) Advance(steps int) *Node[T] {
	for ; steps > 0; steps-- {
		n = n.next
	}
	for ; steps < 0; steps++ {
		n = n.prev
	}
	return n
}

// RangeLen returns the number of nodes in [head, tail], walking forward
// from head. It returns zero if head is nil.
func RangeLen[T any](head, tail *Node[T]) int {
	if head == nil {
		return 0
	}

	cnt := 1
	for ; head != tail; head = head.next {
		cnt++
	}
	return cnt
}

// detachRange unlinks [head, tail] from its neighbours, joining them
// to each other. Afterwards the range's outer links are nil.
func detachRange[T any](head, tail *Node[T]) {
	if head.prev != nil {
		head.prev.next = tail.next
	}
	if tail.next != nil {
		tail.next.prev = head.prev
	}

	head.prev = nil
	tail.next = nil
}

// insertRange links the detached range [head, tail] immediately
// before pos.
func insertRange[T any](pos, head, tail *Node[T]) {
	head.prev = pos.prev
	tail.next = pos
	pos.prev = tail
	if head.prev != nil {
		head.prev.next = head
	}
}

// insertRangeAfter links the detached range [head, tail] immediately
// after pos.
func insertRangeAfter[T any](pos, head, tail *Node[T]) {
	head.prev = pos
	tail.next = pos.next
	pos.next = head
	if tail.next != nil {
		tail.next.prev = tail
	}
}

// spliceRange moves [head, tail] from wherever it is to immediately
// before pos.
func spliceRange[T any](pos, head, tail *Node[T]) {
	detachRange(head, tail)
	insertRange(pos, head, tail)
}

// spliceRangeAfter moves [head, tail] from wherever it is to
// immediately after pos.
func spliceRangeAfter[T any](pos, head, tail *Node[T]) {
	detachRange(head, tail)
	insertRangeAfter(pos, head, tail)
}

// reverseRange reverses the link direction of [head, tail] in place.
// The nodes outside the range are relinked so that afterwards tail
// occupies head's old position and vice versa.
func reverseRange[T any](head, tail *Node[T]) {
	before, after := head.prev, tail.next

	for n := head; ; {
		next := n.next
		n.prev, n.next = n.next, n.prev
		if n == tail {
			break
		}
		n = next
	}

	tail.prev, head.next = before, after
	if before != nil {
		before.next = tail
	}
	if after != nil {
		after.prev = head
	}
}

// forEachRange invokes fn on the element block of every node in
// [head, tail], in order.
func forEachRange[T any](head, tail *Node[T], fn func(*T)) {
	if head == nil {
		return
	}

	for n := head; ; n = n.next {
		fn(n.data)
		if n == tail {
			return
		}
	}
}
