package alloclist

import "fmt"

// internal_test.go contains functions that
// expose internal state for testing.

// CheckChain returns an error describing the first broken link
// invariant of l, or nil if l's chain is consistent.
func CheckChain[T any](l *List[T]) error {
	if (l.head == nil) != (l.len == 0) || (l.tail == nil) != (l.len == 0) {
		return fmt.Errorf("len %d but head %p and tail %p", l.len, l.head, l.tail)
	}
	if l.head == nil {
		return nil
	}
	if l.head.prev != nil {
		return fmt.Errorf("head.prev is not nil")
	}
	if l.tail.next != nil {
		return fmt.Errorf("tail.next is not nil")
	}

	var (
		prev *Node[T]
		cnt  int
	)
	for n := l.head; n != nil; n = n.next {
		if n.prev != prev {
			return fmt.Errorf("node %d: prev link broken", cnt)
		}
		if n.data == nil {
			return fmt.Errorf("node %d: nil element block", cnt)
		}
		prev = n
		cnt++
		if cnt > l.len {
			return fmt.Errorf("more than len %d nodes reachable", l.len)
		}
	}

	if prev != l.tail {
		return fmt.Errorf("walk from head does not end at tail")
	}
	if cnt != l.len {
		return fmt.Errorf("len %d but %d nodes reachable", l.len, cnt)
	}
	return nil
}

// Detached returns a chain of new nodes holding vals, not owned by any
// list, as its head and tail.
func Detached[T any](vals ...T) (head, tail *Node[T]) {
	for i := range vals {
		n := &Node[T]{data: &vals[i]}
		if tail == nil {
			head = n
		} else {
			insertRangeAfter(tail, n, n)
		}
		tail = n
	}
	return head, tail
}

// ChainValues returns the values of the chain starting at head.
func ChainValues[T any](head *Node[T]) []T {
	var vals []T
	for ; head != nil; head = head.next {
		vals = append(vals, *head.data)
	}
	return vals
}

// ChainValuesBackward returns the values of the chain ending at tail,
// walking prev links.
func ChainValuesBackward[T any](tail *Node[T]) []T {
	var vals []T
	for ; tail != nil; tail = tail.prev {
		vals = append(vals, *tail.data)
	}
	return vals
}

var (
	DetachRange      = detachRange[int]
	InsertRange      = insertRange[int]
	InsertRangeAfter = insertRangeAfter[int]
	SpliceRange      = spliceRange[int]
	SpliceRangeAfter = spliceRangeAfter[int]
	ReverseRange     = reverseRange[int]
	ForEachRange     = forEachRange[int]
)
