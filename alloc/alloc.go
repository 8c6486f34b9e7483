// Package alloc provides the allocation strategies used by alloclist.
//
// # Overview
//
// A list needs storage for two kinds of units: element blocks, and the
// link nodes that chain them together. Each kind is obtained through its
// own Allocator instance, so a caller can, for example, keep elements in
// an arena while nodes come from the Go heap.
//
// An Allocator value is an instance of a strategy. Its dynamic type is
// the strategy itself: two instances belong to the same strategy iff
// SameStrategy reports true for them. Instances of the same strategy
// may still be unequal (see Allocator.Equal), for example two distinct
// arenas. That distinction decides whether a list splice can relink
// nodes in place, or must copy elements between pools.
//
// # Implementations
//
// Heap: pass-through to the Go heap. All Heap instances are equal.
//
// Pool: blocks are recycled through a sync.Pool. All Pool instances of
// the same element type are equal.
//
// Arena: chunked slab allocator with a FIFO free-list. Instances are
// equal only when they draw from the same arena.
//
// # Usage
//
//	data := alloc.NewArena[int](alloc.WithChunkSize(1024))
//	nodes := alloc.NewHeap[alloclist.Node[int]]()
//	l := alloclist.New[int](data, nodes)
//	defer l.Destroy()
package alloc

import (
	"errors"
	"reflect"
)

var (
	// ErrArenaExhausted is returned by Arena.Allocate when the arena's
	// live block limit has been reached.
	ErrArenaExhausted = errors.New("alloc: arena exhausted")

	// ErrArenaReleased is returned by Arena.Allocate after the last
	// reference to the arena has been released.
	ErrArenaReleased = errors.New("alloc: arena released")

	// ErrForeignBlock is the panic value when Deallocate is handed a
	// block that could not have come from the allocator.
	ErrForeignBlock = errors.New("alloc: foreign block")
)

// Allocator is an instance of an allocation strategy for units of type T.
//
// Construction of an instance is the job of the strategy's constructor
// function (NewHeap, NewArena, NewPool). Moving an instance is a plain
// transfer of the interface value to a new owner.
type Allocator[T any] interface {
	// Allocate returns a new zeroed block.
	Allocate() (*T, error)

	// Deallocate returns p, which must have been produced by an
	// allocator equal to this one, to the strategy.
	Deallocate(p *T)

	// Equal reports whether blocks allocated by other may be
	// deallocated by this instance, and vice versa.
	Equal(other Allocator[T]) bool

	// Clone returns a new instance of the same strategy.
	Clone() Allocator[T]

	// Release destroys the instance. It must not be used afterwards.
	Release()
}

// SameStrategy reports whether a and b are instances of the same
// strategy, that is, whether they have the identical dynamic type.
// Two nil allocators are the same strategy.
func SameStrategy[T any](a, b Allocator[T]) bool {
	return reflect.TypeOf(a) == reflect.TypeOf(b)
}
