package alloclist_test

// File helper_test.go contains test helper functionality.

import (
	"errors"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/neilotoole/alloclist"
	"github.com/neilotoole/alloclist/alloc"
)

var errAllocFailed = errors.New("test: allocation failed")

// newList returns a default list holding vals. The list is destroyed
// when the test completes.
func newList[T any](t testing.TB, vals ...T) *alloclist.List[T] {
	t.Helper()
	l := alloclist.NewDefault[T]()
	t.Cleanup(l.Destroy)
	pushAll(t, l, vals...)
	return l
}

func pushAll[T any](t testing.TB, l *alloclist.List[T], vals ...T) {
	t.Helper()
	for _, v := range vals {
		_, err := l.PushBack(v)
		require.NoError(t, err)
	}
}

// requireList fails t unless l is consistent and holds exactly want,
// walking both forward and backward.
func requireList[T any](t testing.TB, want []T, l *alloclist.List[T]) {
	t.Helper()
	require.NoError(t, alloclist.CheckChain(l))
	require.Equal(t, len(want), l.Len())
	if len(want) == 0 {
		require.True(t, l.Empty())
		require.Nil(t, l.Front())
		require.Nil(t, l.Back())
		return
	}

	require.Equal(t, want, alloclist.ChainValues(l.Front()))
	backward := alloclist.ChainValuesBackward(l.Back())
	require.Equal(t, want, lo.Reverse(backward))
}

// nodeAt returns the i'th node of l.
func nodeAt[T any](l *alloclist.List[T], i int) *alloclist.Node[T] {
	return l.Front().Advance(i)
}

// counter records the activity of a family of countingAlloc instances.
type counter struct {
	// failAt is the allocation count at which Allocate starts
	// failing. Negative means never.
	failAt   int
	allocs   int
	live     int
	released int
}

func newCounter() *counter {
	return &counter{failAt: -1}
}

var _ alloc.Allocator[int] = (*countingAlloc[int])(nil)

// countingAlloc is a heap allocator that counts its blocks. Instances
// are equal iff they have the same pool number.
type countingAlloc[T any] struct {
	c    *counter
	pool int
}

func (a *countingAlloc[T]) Allocate() (*T, error) {
	if a.c.failAt >= 0 && a.c.allocs >= a.c.failAt {
		return nil, errAllocFailed
	}
	a.c.allocs++
	a.c.live++
	return new(T), nil
}

func (a *countingAlloc[T]) Deallocate(*T) {
	a.c.live--
}

func (a *countingAlloc[T]) Equal(other alloc.Allocator[T]) bool {
	o, ok := other.(*countingAlloc[T])
	return ok && o.pool == a.pool
}

func (a *countingAlloc[T]) Clone() alloc.Allocator[T] {
	return &countingAlloc[T]{c: a.c, pool: a.pool}
}

func (a *countingAlloc[T]) Release() {
	a.c.released++
}

// newCountingList returns an empty list whose element and node
// allocators count into data and nodes, drawing from the given pool.
func newCountingList(data, nodes *counter, pool int) *alloclist.List[int] {
	return alloclist.New[int](
		&countingAlloc[int]{c: data, pool: pool},
		&countingAlloc[alloclist.Node[int]]{c: nodes, pool: pool},
	)
}

// newArenaList returns a list whose elements come from a new arena,
// and whose nodes come from the heap. Lists from different calls are
// of the same type but their allocators are not equal.
func newArenaList(t testing.TB, vals ...int) *alloclist.List[int] {
	t.Helper()
	l := alloclist.New[int](alloc.NewArena[int](alloc.WithChunkSize(8)), alloc.NewHeap[alloclist.Node[int]]())
	t.Cleanup(l.Destroy)
	pushAll(t, l, vals...)
	return l
}

// requirePanicIs fails t unless fn panics with an error matching target.
func requirePanicIs(t testing.TB, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}
