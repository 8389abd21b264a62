package fixedarena

// Allocator abstracts the host memory allocator that backs chunk buffers.
// An implementation may pool, mmap, or account for memory; a failed
// Allocate must return an error that matches ErrOutOfMemory under
// errors.Is so callers can distinguish exhaustion from misuse.
type Allocator interface {
	// Allocate returns a buffer of exactly size bytes. The contents are
	// unspecified.
	Allocate(size int) ([]byte, error)

	// Free returns a buffer previously obtained from Allocate. Buffers are
	// freed exactly once, on arena release.
	Free(b []byte)
}

// DefaultAllocator backs arenas that were created without WithAllocator.
//
// DefaultAllocator is safe to use from multiple goroutines.
var DefaultAllocator Allocator = GoAllocator{}

// GoAllocator allocates chunk buffers with make and leaves reclamation to
// the garbage collector. Allocate never returns an error: if the runtime
// cannot satisfy the request the process aborts, per Go semantics.
type GoAllocator struct{}

func (GoAllocator) Allocate(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func (GoAllocator) Free(b []byte) {}
