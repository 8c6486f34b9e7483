package alloc

import "sync"

var _ Allocator[int] = (*Pool[int])(nil)

// Pool is a strategy that recycles deallocated blocks through a
// sync.Pool. Blocks from a Pool are ordinary GC memory, so any two Pool
// instances of the same type are equal and blocks may cross between
// them freely.
type Pool[T any] struct {
	pool sync.Pool
}

// NewPool returns a new Pool instance.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{pool: sync.Pool{New: func() any { return new(T) }}}
}

// Allocate implements Allocator.
func (p *Pool[T]) Allocate() (*T, error) {
	if p.pool.New == nil {
		// Lazy init so that the zero value of Pool is usable.
		p.pool.New = func() any { return new(T) }
	}
	return p.pool.Get().(*T), nil
}

// Deallocate implements Allocator.
func (p *Pool[T]) Deallocate(b *T) {
	if b == nil {
		panic(ErrForeignBlock)
	}
	var zero T
	*b = zero // avoid memory leaks
	p.pool.Put(b)
}

// Equal implements Allocator.
func (p *Pool[T]) Equal(other Allocator[T]) bool {
	_, ok := other.(*Pool[T])
	return ok
}

// Clone implements Allocator.
func (p *Pool[T]) Clone() Allocator[T] {
	return NewPool[T]()
}

// Release implements Allocator.
func (p *Pool[T]) Release() {}
