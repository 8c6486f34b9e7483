// Package semamu provides a mutex built on a weighted semaphore from
// golang.org/x/sync/semaphore. Unlike sync.Mutex, waiters are served
// in FIFO order, and lock acquisition can be abandoned via a context.
package semamu

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

var _ sync.Locker = (*Mutex)(nil)

// New returns a new, unlocked Mutex.
func New() *Mutex {
	return &Mutex{sema: semaphore.NewWeighted(1)}
}

// Mutex is a mutual exclusion lock. Create one with New; the zero value
// is not usable.
type Mutex struct {
	sema *semaphore.Weighted
}

// Lock locks m, blocking until it is available.
func (m *Mutex) Lock() {
	_ = m.sema.Acquire(context.Background(), 1)
}

// LockContext locks m, blocking until it is available or ctx is done.
// On failure it returns context.Cause(ctx) and leaves m unchanged.
func (m *Mutex) LockContext(ctx context.Context) error {
	if err := m.sema.Acquire(ctx, 1); err != nil {
		return context.Cause(ctx)
	}
	return nil
}

// TryLock tries to lock m and reports whether it succeeded.
func (m *Mutex) TryLock() bool {
	return m.sema.TryAcquire(1)
}

// Unlock unlocks m. It panics if m is not locked.
func (m *Mutex) Unlock() {
	m.sema.Release(1)
}
