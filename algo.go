package alloclist

// Reverse reverses the order of l's elements in place.
func (l *List[T]) Reverse() {
	if l.head == nil {
		return
	}

	reverseRange(l.head, l.tail)
	l.head, l.tail = l.tail, l.head
}

// MergeFunc merges other into l. Both lists must already be sorted
// according to cmp. The merge is stable: of two equal elements, the one
// from l comes first. Nodes are relinked, never copied; afterwards
// other is empty.
//
// MergeFunc panics if l and other are not of the same type, or if their
// allocator instances are not equal. Merging a list with itself is a
// no-op.
func (l *List[T]) MergeFunc(other *List[T], cmp func(a, b T) int) {
	if !l.SameType(other) {
		precondition("merge", ErrTypeMismatch)
	}
	if !l.allocatorsEqual(other) {
		precondition("merge", ErrAllocatorMismatch)
	}
	if l == other {
		return
	}

	c := mergeChains(l.asChain(), other.takeChain(), cmp)
	l.head, l.tail, l.len = c.head, c.tail, c.n
}

// RemoveFunc erases every element for which pred returns true, and
// returns the number of elements erased. The survivors keep their
// relative order.
func (l *List[T]) RemoveFunc(pred func(v T) bool) int {
	var removed int
	for n := l.head; n != nil; {
		if pred(*n.data) {
			n = l.Erase(n)
			removed++
			continue
		}
		n = n.next
	}
	return removed
}

// UniqueFunc erases every element that eq reports equal to the element
// immediately before it, collapsing each run of consecutive equal
// elements to its first element. Non-adjacent duplicates are kept. It
// returns the number of elements erased.
func (l *List[T]) UniqueFunc(eq func(a, b T) bool) int {
	if l.head == nil {
		return 0
	}

	var removed int
	for n := l.head.next; n != nil; {
		if eq(*n.data, *n.prev.data) {
			n = l.Erase(n)
			removed++
			continue
		}
		n = n.next
	}
	return removed
}

// EqualFunc reports whether l and other have the same length and eq
// reports every pair of corresponding elements equal.
func (l *List[T]) EqualFunc(other *List[T], eq func(a, b T) bool) bool {
	if l.len != other.len {
		return false
	}

	for p1, p2 := l.head, other.head; p1 != nil; p1, p2 = p1.next, p2.next {
		if !eq(*p1.data, *p2.data) {
			return false
		}
	}
	return true
}

// CompareFunc compares l and other lexicographically using cmp. The
// result is the first non-zero cmp of corresponding elements; if there
// is none, the shorter list is less than the longer. The result is
// negative, zero or positive, as for cmp.
func (l *List[T]) CompareFunc(other *List[T], cmp func(a, b T) int) int {
	p1, p2 := l.head, other.head
	for p1 != nil || p2 != nil {
		if p1 == nil {
			return -1
		}
		if p2 == nil {
			return 1
		}

		if c := cmp(*p1.data, *p2.data); c != 0 {
			return c
		}
		p1, p2 = p1.next, p2.next
	}
	return 0
}
