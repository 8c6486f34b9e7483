package alloclist

// Splice moves node from other into l, immediately before pos (or to
// the end of l if pos is nil). other may be l itself.
//
// If l's and other's allocator instances are equal, node is relinked
// and keeps its identity and element block. Otherwise the element is
// copied into l and node is erased from other.
//
// Splice panics if l and other are not of the same type.
func (l *List[T]) Splice(pos *Node[T], other *List[T], node *Node[T]) error {
	if node == nil {
		panic("alloclist: splice: nil node")
	}
	return l.splice("splice", pos, other, node, node.next, 1)
}

// SpliceRange moves the nodes of [first, last) from other into l,
// immediately before pos (or to the end of l if pos is nil). other may
// be l itself, in which case pos must not lie strictly inside the range.
// An empty range is a no-op.
//
// The relink-or-copy policy is the same as for Splice; relinking costs
// O(n) only to count the range.
func (l *List[T]) SpliceRange(pos *Node[T], other *List[T], first, last *Node[T]) error {
	if first == last {
		return nil
	}

	tail := other.tail
	if last != nil {
		tail = last.prev
	}
	return l.splice("splice range", pos, other, first, last, RangeLen(first, tail))
}

// SpliceList moves the entire contents of other into l, immediately
// before pos (or to the end of l if pos is nil). With equal allocator
// instances this is O(1). It panics if other is l.
func (l *List[T]) SpliceList(pos *Node[T], other *List[T]) error {
	if l == other {
		precondition("splice list", ErrSelfSplice)
	}
	if other.head == nil {
		if !l.SameType(other) {
			precondition("splice list", ErrTypeMismatch)
		}
		return nil
	}
	return l.splice("splice list", pos, other, other.head, nil, other.len)
}

// splice moves [first, last), which holds count nodes, from other to
// before pos in l.
func (l *List[T]) splice(op string, pos *Node[T], other *List[T], first, last *Node[T], count int) error {
	if !l.SameType(other) {
		precondition(op, ErrTypeMismatch)
	}
	if first == nil {
		panic("alloclist: " + op + ": nil node")
	}

	if l == other && (pos == first || pos == last) {
		// The range is already at pos.
		return nil
	}

	if !l.allocatorsEqual(other) {
		// The element blocks belong to other's pools, so they have to
		// be copied. Only once every copy exists are the originals
		// erased, so that a failed allocation leaves other intact.
		n, err := l.InsertRange(pos, first, last)
		if err != nil {
			if n != nil {
				l.EraseRange(n, pos)
			}
			return err
		}
		other.EraseRange(first, last)
		return nil
	}

	tail := other.tail
	if last != nil {
		tail = last.prev
	}

	if first == other.head {
		other.head = last
	}
	if last == nil {
		other.tail = first.prev
	}

	switch {
	case l.head == nil:
		detachRange(first, tail)
		l.head, l.tail = first, tail
	case pos == nil:
		spliceRangeAfter(l.tail, first, tail)
		l.tail = tail
	default:
		spliceRange(pos, first, tail)
		if pos == l.head {
			l.head = first
		}
	}

	if l != other {
		l.len += count
		other.len -= count
	}
	return nil
}
