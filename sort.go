package alloclist

// numBins is the number of accumulator chains used by SortFunc. Bin i
// holds at most 2^i nodes, so 64 bins cover any list length an int can
// count.
const numBins = 64

// chain is a detached, nil-terminated run of nodes.
type chain[T any] struct {
	head, tail *Node[T]
	n          int
}

// asChain returns l's nodes as a chain, without detaching them.
func (l *List[T]) asChain() chain[T] {
	return chain[T]{head: l.head, tail: l.tail, n: l.len}
}

// takeChain detaches l's nodes as a chain, leaving l empty.
func (l *List[T]) takeChain() chain[T] {
	c := l.asChain()
	l.head, l.tail, l.len = nil, nil, 0
	return c
}

// mergeChains stably merges two chains sorted by cmp. Of two equal
// elements, the one from a comes first.
func mergeChains[T any](a, b chain[T], cmp func(a, b T) int) chain[T] {
	switch {
	case a.head == nil:
		return b
	case b.head == nil:
		return a
	}

	out := chain[T]{n: a.n + b.n}
	push := func(n *Node[T]) {
		n.prev = out.tail
		if out.tail == nil {
			out.head = n
		} else {
			out.tail.next = n
		}
		out.tail = n
	}

	p1, p2 := a.head, b.head
	for p1 != nil && p2 != nil {
		if cmp(*p1.data, *p2.data) <= 0 {
			next := p1.next
			push(p1)
			p1 = next
		} else {
			next := p2.next
			push(p2)
			p2 = next
		}
	}

	// Exactly one of the inputs has nodes left; they are already
	// linked to each other and end in nil.
	rest, restTail := p1, a.tail
	if rest == nil {
		rest, restTail = p2, b.tail
	}
	out.tail.next = rest
	rest.prev = out.tail
	out.tail = restTail
	return out
}

// SortFunc sorts l according to cmp. The sort is stable, makes
// O(n log n) comparisons and allocates nothing: nodes are relinked, and
// every node keeps its element block.
//
// The sort is an iterative merge sort. Nodes are taken one at a time
// from the front of l and carried through an array of bins like a
// binary counter: bin i is empty or holds a sorted chain of 2^i nodes,
// and adding a node merges it with every occupied bin from 0 upward
// until it lands in an empty one. Finally the bins are merged together.
func (l *List[T]) SortFunc(cmp func(a, b T) int) {
	if l.len < 2 {
		return
	}

	var (
		bins [numBins]chain[T]
		top  int
	)

	for l.head != nil {
		n := l.head
		l.head = n.next
		n.prev, n.next = nil, nil

		carry := chain[T]{head: n, tail: n, n: 1}
		i := 0
		for ; i < top && bins[i].head != nil; i++ {
			// bins[i] holds older nodes than carry, so it goes first.
			carry = mergeChains(bins[i], carry, cmp)
			bins[i] = chain[T]{}
		}

		bins[i] = carry
		if i == top {
			top++
		}
	}

	for i := 1; i < top; i++ {
		bins[i] = mergeChains(bins[i], bins[i-1], cmp)
		bins[i-1] = chain[T]{}
	}

	c := bins[top-1]
	if c.n != l.len {
		// Should be impossible.
		panic("alloclist: sort lost nodes")
	}
	l.head, l.tail = c.head, c.tail
}
