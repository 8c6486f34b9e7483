package alloc

var _ Allocator[int] = (*Heap[int])(nil)

// Heap is the default strategy: a thin pass-through to the Go heap.
// Every Heap instance is equal to every other Heap instance of the
// same type, so lists built on Heap always splice by relinking.
type Heap[T any] struct{}

// NewHeap returns a new Heap instance.
func NewHeap[T any]() *Heap[T] {
	return &Heap[T]{}
}

// Allocate implements Allocator.
func (h *Heap[T]) Allocate() (*T, error) {
	return new(T), nil
}

// Deallocate implements Allocator. The block is zeroed so that it
// no longer retains references; the GC reclaims it.
func (h *Heap[T]) Deallocate(p *T) {
	if p == nil {
		panic(ErrForeignBlock)
	}
	var zero T
	*p = zero
}

// Equal implements Allocator.
func (h *Heap[T]) Equal(other Allocator[T]) bool {
	_, ok := other.(*Heap[T])
	return ok
}

// Clone implements Allocator.
func (h *Heap[T]) Clone() Allocator[T] {
	return NewHeap[T]()
}

// Release implements Allocator.
func (h *Heap[T]) Release() {}
