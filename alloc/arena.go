package alloc

import (
	"log/slog"

	"github.com/neilotoole/sq/libsq/core/lg"
	"github.com/oleiade/lane/v2"
)

var _ Allocator[int] = (*Arena[int])(nil)

// DefaultChunkSize is the number of blocks in each arena chunk when
// WithChunkSize is not supplied.
const DefaultChunkSize = 256

// ArenaOption configures an arena created by NewArena.
type ArenaOption func(*arenaConfig)

type arenaConfig struct {
	log       *slog.Logger
	chunkSize int
	limit     int
}

// WithChunkSize sets the number of blocks carved from each chunk.
// Values less than one are ignored.
func WithChunkSize(n int) ArenaOption {
	return func(c *arenaConfig) {
		if n > 0 {
			c.chunkSize = n
		}
	}
}

// WithLimit caps the number of live blocks; Allocate returns
// ErrArenaExhausted once the cap is reached. Zero means no limit.
func WithLimit(n int) ArenaOption {
	return func(c *arenaConfig) {
		if n >= 0 {
			c.limit = n
		}
	}
}

// WithLogger sets the logger that receives the arena's debug output.
func WithLogger(log *slog.Logger) ArenaOption {
	return func(c *arenaConfig) {
		c.log = log
	}
}

// Arena is an instance handle onto a chunked slab arena. Blocks are
// carved sequentially from chunks of type []T; deallocated blocks are
// zeroed and queued for reuse, oldest first.
//
// Clone returns a handle onto the same arena, and two handles are
// equal iff they share an arena. Lists whose allocators are handles
// onto different arenas therefore splice by copying.
//
// An Arena is not safe for concurrent use.
type Arena[T any] struct {
	a        *arena[T]
	released bool
}

// arena is the state shared by all handles onto one arena.
type arena[T any] struct {
	log *slog.Logger

	// free holds deallocated blocks awaiting reuse.
	free *lane.Queue[*T]

	// chunk is the chunk currently being carved; used is the count
	// of its blocks handed out so far.
	chunk []T
	used  int

	chunkSize int
	limit     int

	// nFree is the length of free.
	nFree  int
	live   int
	chunks int

	// refs is the count of unreleased handles.
	refs int
}

// ArenaStats describes the state of an arena.
type ArenaStats struct {
	// Live is the number of blocks currently allocated.
	Live int

	// Free is the number of deallocated blocks awaiting reuse.
	Free int

	// Chunks is the number of chunks carved from the Go heap.
	Chunks int

	// Handles is the number of unreleased handles onto the arena.
	Handles int
}

// NewArena returns a handle onto a new, empty arena.
func NewArena[T any](opts ...ArenaOption) *Arena[T] {
	cfg := arenaConfig{chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	log := cfg.log
	if log == nil {
		log = lg.Discard()
	}

	return &Arena[T]{a: &arena[T]{
		log:       log,
		free:      lane.NewQueue[*T](),
		chunkSize: cfg.chunkSize,
		limit:     cfg.limit,
		refs:      1,
	}}
}

// Allocate implements Allocator.
func (h *Arena[T]) Allocate() (*T, error) {
	a := h.a
	if h.released || a.refs == 0 {
		return nil, ErrArenaReleased
	}

	if a.limit > 0 && a.live >= a.limit {
		a.log.Debug("Arena exhausted", "live", a.live, "limit", a.limit)
		return nil, ErrArenaExhausted
	}

	if a.nFree > 0 {
		p, ok := a.free.Dequeue()
		if !ok {
			// Should be impossible.
			panic("alloc: arena free queue is empty")
		}
		a.nFree--
		a.live++
		return p, nil
	}

	if a.used == len(a.chunk) {
		a.chunk = make([]T, a.chunkSize)
		a.used = 0
		a.chunks++
		a.log.Debug("Arena grew", "chunks", a.chunks, "chunk_size", a.chunkSize)
	}

	p := &a.chunk[a.used]
	a.used++
	a.live++
	return p, nil
}

// Deallocate implements Allocator.
func (h *Arena[T]) Deallocate(p *T) {
	if p == nil {
		panic(ErrForeignBlock)
	}

	a := h.a
	if a.refs == 0 {
		// The chunks are gone; let the GC have the block.
		return
	}

	var zero T
	*p = zero
	a.free.Enqueue(p)
	a.nFree++
	a.live--
}

// Equal implements Allocator.
func (h *Arena[T]) Equal(other Allocator[T]) bool {
	o, ok := other.(*Arena[T])
	return ok && o.a == h.a
}

// Clone implements Allocator. The returned handle shares h's arena.
func (h *Arena[T]) Clone() Allocator[T] {
	h.a.refs++
	return &Arena[T]{a: h.a}
}

// Release implements Allocator. The arena's memory is dropped when
// its last handle is released.
func (h *Arena[T]) Release() {
	if h.released {
		return
	}
	h.released = true

	a := h.a
	a.refs--
	if a.refs > 0 {
		return
	}

	a.log.Debug("Arena released", "chunks", a.chunks, "live", a.live)
	a.chunk = nil
	a.free = lane.NewQueue[*T]()
	a.nFree = 0
	a.live = 0
	a.used = 0
}

// Stats returns the current state of h's arena.
func (h *Arena[T]) Stats() ArenaStats {
	return ArenaStats{
		Live:    h.a.live,
		Free:    h.a.nFree,
		Chunks:  h.a.chunks,
		Handles: h.a.refs,
	}
}
