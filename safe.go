package fixedarena

import "sync"

// SafeArena is a mutex-protected wrapper around Arena for concurrent
// access. All operations are thread-safe but come with the overhead of
// mutex locking. Element views returned by Alloc are still plain memory:
// two goroutines writing into the same view race as usual.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafe creates a new thread-safe arena with the given geometry.
func NewSafe(elemsPerChunk, elemSize int, opts ...Option) (*SafeArena, error) {
	a, err := New(elemsPerChunk, elemSize, opts...)
	if err != nil {
		return nil, err
	}
	return &SafeArena{a: a}, nil
}

// Alloc thread-safely returns a view of one element. The memory is not
// zeroed.
func (s *SafeArena) Alloc() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Alloc()
}

// Reset thread-safely marks all chunks empty for reuse.
func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release thread-safely returns all chunk memory to the backing allocator.
func (s *SafeArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// SafeTyped is a mutex-protected wrapper around Typed for concurrent
// access.
type SafeTyped[T any] struct {
	mu sync.Mutex
	t  *Typed[T]
}

// NewSafeTyped creates a thread-safe typed arena.
func NewSafeTyped[T any](elemsPerChunk int, opts ...Option) (*SafeTyped[T], error) {
	t, err := NewTyped[T](elemsPerChunk, opts...)
	if err != nil {
		return nil, err
	}
	return &SafeTyped[T]{t: t}, nil
}

// Get thread-safely returns a *T without zeroing the memory.
func (s *SafeTyped[T]) Get() (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Get()
}

// GetZeroed thread-safely returns a *T with the memory cleared.
func (s *SafeTyped[T]) GetZeroed() (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.GetZeroed()
}

// Reset thread-safely marks all chunks empty for reuse.
func (s *SafeTyped[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.t.Reset()
}

// Release thread-safely returns all chunk memory to the backing allocator.
func (s *SafeTyped[T]) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.t.Release()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeTyped[T]) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Metrics()
}
