package fixedarena

// SizeInUse returns the total number of bytes currently handed out by the
// arena across all chunks.
func (a *Arena) SizeInUse() int {
	if a == nil {
		return 0
	}
	sum := 0
	for i := range a.chunks {
		sum += a.chunks[i].used
	}
	return sum
}

// NumChunks returns the number of chunks currently owned by the arena.
func (a *Arena) NumChunks() int {
	if a == nil {
		return 0
	}
	return len(a.chunks)
}

// Capacity returns the total capacity (in bytes) of all chunks.
func (a *Arena) Capacity() int {
	if a == nil {
		return 0
	}
	sum := 0
	for i := range a.chunks {
		sum += len(a.chunks[i].buf)
	}
	return sum
}

// Remaining returns the number of bytes still available before the arena
// would grow a new chunk.
func (a *Arena) Remaining() int {
	return a.Capacity() - a.SizeInUse()
}

// Utilization returns the ratio of bytes in use to total capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// ElemSize returns the fixed element size in bytes.
func (a *Arena) ElemSize() int {
	if a == nil {
		return 0
	}
	return a.elemSize
}

// ElemsPerChunk returns the number of elements each chunk holds.
func (a *Arena) ElemsPerChunk() int {
	if a == nil {
		return 0
	}
	return a.elemsPerChunk
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:     a.SizeInUse(),
		Capacity:      a.Capacity(),
		NumChunks:     a.NumChunks(),
		ElemSize:      a.ElemSize(),
		ElemsPerChunk: a.ElemsPerChunk(),
		Utilization:   a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse     int     // Bytes currently handed out
	Capacity      int     // Total capacity in bytes
	NumChunks     int     // Number of chunks
	ElemSize      int     // Fixed element size in bytes
	ElemsPerChunk int     // Elements per chunk
	Utilization   float64 // Ratio of used to total capacity (0.0-1.0)
}

// Thread-safe metrics for SafeArena

// SizeInUse thread-safely returns the total number of bytes handed out.
func (s *SafeArena) SizeInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.SizeInUse()
}

// NumChunks thread-safely returns the number of chunks currently owned.
func (s *SafeArena) NumChunks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.NumChunks()
}

// Capacity thread-safely returns the total capacity of all chunks.
func (s *SafeArena) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// Utilization thread-safely returns the ratio of bytes in use to total capacity.
func (s *SafeArena) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}

// ElemSize thread-safely returns the fixed element size.
func (s *SafeArena) ElemSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.ElemSize()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
