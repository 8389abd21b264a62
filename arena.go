// Package fixedarena implements a fixed-element chunked bump allocator.
// Typical usage: create one arena per parse or per frame, allocate many
// same-size elements from it, then Reset() at the end for O(1) reuse or
// Release() to give the memory back.
package fixedarena

import (
	"fmt"
	"math"
)

// defaultTrackerCap is the initial capacity of the chunk slice, applied
// the first time an arena grows.
const defaultTrackerCap = 8

// Arena hands out fixed-size elements from chunks of elemsPerChunk
// elements each. Chunks are created lazily and retained across Reset.
// Not goroutine-safe; use SafeArena for concurrent access.
type Arena struct {
	chunks        []chunk
	cur           int // index of the chunk currently being filled
	elemSize      int
	elemsPerChunk int
	chunkSize     int // elemSize * elemsPerChunk
	trackerCap    int
	backing       Allocator
	released      bool
}

// Option configures an Arena at construction.
type Option func(*Arena)

// WithAllocator sets the backing allocator used for chunk buffers.
// The default is DefaultAllocator.
func WithAllocator(backing Allocator) Option {
	return func(a *Arena) {
		if backing != nil {
			a.backing = backing
		}
	}
}

// WithTrackerCapacity sets the initial capacity of the internal chunk
// slice. Values below 1 are ignored.
func WithTrackerCapacity(n int) Option {
	return func(a *Arena) {
		if n > 0 {
			a.trackerCap = n
		}
	}
}

// New creates an arena whose every allocation is elemSize bytes and whose
// chunks hold elemsPerChunk elements. No chunk is allocated until the
// first Alloc. Returns ErrInvalidArgument if either parameter is less
// than 1, ErrOutOfMemory if the chunk geometry overflows int.
func New(elemsPerChunk, elemSize int, opts ...Option) (*Arena, error) {
	if elemsPerChunk < 1 {
		return nil, fmt.Errorf("%w: elemsPerChunk %d", ErrInvalidArgument, elemsPerChunk)
	}
	if elemSize < 1 {
		return nil, fmt.Errorf("%w: elemSize %d", ErrInvalidArgument, elemSize)
	}
	if elemSize > math.MaxInt/elemsPerChunk {
		return nil, fmt.Errorf("%w: chunk size %d*%d overflows", ErrOutOfMemory, elemSize, elemsPerChunk)
	}
	a := &Arena{
		elemSize:      elemSize,
		elemsPerChunk: elemsPerChunk,
		chunkSize:     elemSize * elemsPerChunk,
		trackerCap:    defaultTrackerCap,
		backing:       DefaultAllocator,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Alloc returns a view of exactly one element (elemSize bytes) inside the
// arena's current chunk. The memory is NOT zeroed. The view stays valid
// until the next Reset or Release of the arena; it cannot be freed
// individually.
//
// Returns ErrInvalidArgument on a nil arena, ErrReleased after Release,
// and ErrOutOfMemory if a needed chunk cannot be allocated (the arena
// remains valid in that case).
func (a *Arena) Alloc() ([]byte, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: nil arena", ErrInvalidArgument)
	}
	if a.released {
		return nil, ErrReleased
	}

	// Fast path: bump within the current chunk, moving forward through
	// chunks retained by a previous Reset before growing.
	for a.cur < len(a.chunks) {
		c := &a.chunks[a.cur]
		if c.fits(a.elemSize) {
			return c.take(a.elemSize), nil
		}
		a.cur++
	}

	return a.allocSlow()
}

// allocSlow appends a fresh chunk and serves the element from its base.
func (a *Arena) allocSlow() ([]byte, error) {
	buf, err := a.backing.Allocate(a.chunkSize)
	if err != nil {
		return nil, fmt.Errorf("grow chunk: %w", err)
	}
	if len(buf) != a.chunkSize {
		a.backing.Free(buf)
		return nil, fmt.Errorf("%w: backing allocator returned %d bytes, want %d", ErrOutOfMemory, len(buf), a.chunkSize)
	}
	if a.chunks == nil {
		a.chunks = make([]chunk, 0, a.trackerCap)
	}
	a.chunks = append(a.chunks, chunk{buf: buf})
	a.cur = len(a.chunks) - 1
	return a.chunks[a.cur].take(a.elemSize), nil
}

// Reset marks every chunk empty while keeping the buffers, so subsequent
// allocations reuse existing capacity (starting from the first chunk)
// before any new chunk is created. All element views handed out before
// the reset become invalid: their bytes may be overwritten.
//
// Reset on a nil or released arena is a no-op.
func (a *Arena) Reset() {
	if a == nil || a.released {
		return
	}
	for i := range a.chunks {
		a.chunks[i].used = 0
	}
	a.cur = 0
}

// Release returns every chunk buffer to the backing allocator and drops
// the chunk tracker. All element views become invalid. After Release,
// Alloc reports ErrReleased; a repeated Release or a Reset is a no-op.
//
// Release on a nil arena is also a no-op.
func (a *Arena) Release() {
	if a == nil || a.released {
		return
	}
	for i := range a.chunks {
		a.backing.Free(a.chunks[i].buf)
		a.chunks[i].buf = nil
	}
	a.chunks = nil
	a.cur = 0
	a.released = true
}
