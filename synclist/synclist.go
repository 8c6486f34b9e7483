// Package synclist provides Guarded, which makes an alloclist.List
// shareable between goroutines by serializing all access to it behind
// a single lock.
//
// The List type itself does no synchronization. Guarded is the external
// mutex that callers are expected to provide: every access to the list
// happens inside a function passed to Do, DoContext or TryDo, while the
// lock is held. Waiters acquire the lock in FIFO order.
package synclist

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/neilotoole/fifomu"
	"github.com/neilotoole/sq/libsq/core/lg"

	"github.com/neilotoole/alloclist"
	"github.com/neilotoole/alloclist/internal/semamu"
)

// ErrClosed is returned by Guarded's methods after Close.
var ErrClosed = errors.New("synclist: closed")

// locker is the methodset shared by fifomu.Mutex and semamu.Mutex.
type locker interface {
	sync.Locker
	LockContext(ctx context.Context) error
	TryLock() bool
}

var (
	_ locker = (*fifomu.Mutex)(nil)
	_ locker = (*semamu.Mutex)(nil)
)

// Option configures a Guarded created by New.
type Option func(*config)

type config struct {
	log       *slog.Logger
	semaphore bool
}

// WithSemaphore makes the Guarded use a mutex built on
// golang.org/x/sync/semaphore, instead of the default fifomu.Mutex.
func WithSemaphore() Option {
	return func(c *config) { c.semaphore = true }
}

// WithLogger sets the logger that receives lock events at debug level.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) { c.log = log }
}

// Guarded owns a List and serializes access to it.
type Guarded[T any] struct {
	// mu guards l and closed.
	mu locker

	log *slog.Logger

	l      *alloclist.List[T]
	closed bool
}

// New returns a Guarded that takes ownership of l. l must not be
// accessed other than through the returned Guarded.
func New[T any](l *alloclist.List[T], opts ...Option) *Guarded[T] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Guarded[T]{l: l, log: cfg.log}
	if g.log == nil {
		g.log = lg.Discard()
	}

	if cfg.semaphore {
		g.mu = semamu.New()
	} else {
		g.mu = &fifomu.Mutex{}
	}
	return g
}

// Do invokes fn with the list while holding the lock. It returns
// ErrClosed if g has been closed, otherwise the error returned by fn.
// The list must not be retained beyond fn.
func (g *Guarded[T]) Do(fn func(l *alloclist.List[T]) error) error {
	g.lock()
	defer g.unlock()

	if g.closed {
		return ErrClosed
	}
	return fn(g.l)
}

// DoContext is like Do, but gives up waiting for the lock when ctx is
// done, returning context.Cause(ctx).
func (g *Guarded[T]) DoContext(ctx context.Context, fn func(l *alloclist.List[T]) error) error {
	g.log.Debug("Lock context: before")
	if err := g.mu.LockContext(ctx); err != nil {
		g.log.Debug("Lock context: failed", "error", err)
		return err
	}
	g.log.Debug("Lock context: after")
	defer g.unlock()

	if g.closed {
		return ErrClosed
	}
	return fn(g.l)
}

// TryDo invokes fn with the list only if the lock can be acquired
// without waiting. It reports whether fn was invoked.
func (g *Guarded[T]) TryDo(fn func(l *alloclist.List[T])) bool {
	ok := g.mu.TryLock()
	g.log.Debug("Try lock", "ok", ok)
	if !ok {
		return false
	}
	defer g.unlock()

	if g.closed {
		return false
	}
	fn(g.l)
	return true
}

// PushBack appends a copy of v to the list.
func (g *Guarded[T]) PushBack(v T) error {
	return g.Do(func(l *alloclist.List[T]) error {
		_, err := l.PushBack(v)
		return err
	})
}

// Len returns the length of the list, or zero after Close.
func (g *Guarded[T]) Len() int {
	var n int
	_ = g.Do(func(l *alloclist.List[T]) error {
		n = l.Len()
		return nil
	})
	return n
}

// Snapshot returns a copy of the list's elements, or nil after Close.
func (g *Guarded[T]) Snapshot() []T {
	var vals []T
	_ = g.Do(func(l *alloclist.List[T]) error {
		vals = l.Values()
		return nil
	})
	return vals
}

// Close destroys the list. Subsequent calls return ErrClosed.
func (g *Guarded[T]) Close() error {
	g.lock()
	defer g.unlock()

	if g.closed {
		return ErrClosed
	}

	g.closed = true
	g.l.Destroy()
	g.l = nil
	return nil
}

func (g *Guarded[T]) lock() {
	g.log.Debug("Lock: before")
	g.mu.Lock()
	g.log.Debug("Lock: after")
}

func (g *Guarded[T]) unlock() {
	g.log.Debug("Unlock: before")
	g.mu.Unlock()
	g.log.Debug("Unlock: after")
}
