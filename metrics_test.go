package fixedarena

import (
	"testing"
)

func TestArenaMetrics(t *testing.T) {
	a, err := New(4, 16)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Release()

	// Fresh arena, no chunks yet
	if a.SizeInUse() != 0 {
		t.Errorf("Initial SizeInUse = %d, want 0", a.SizeInUse())
	}
	if a.Capacity() != 0 {
		t.Errorf("Initial Capacity = %d, want 0", a.Capacity())
	}
	if a.Utilization() != 0 {
		t.Errorf("Initial Utilization = %f, want 0", a.Utilization())
	}

	mustAlloc(t, a)
	mustAlloc(t, a)

	if a.SizeInUse() != 32 {
		t.Errorf("SizeInUse = %d, want 32", a.SizeInUse())
	}
	if a.Capacity() != 64 {
		t.Errorf("Capacity = %d, want 64", a.Capacity())
	}
	if a.Remaining() != 32 {
		t.Errorf("Remaining = %d, want 32", a.Remaining())
	}
	if a.Utilization() != 0.5 {
		t.Errorf("Utilization = %f, want 0.5", a.Utilization())
	}

	// Force chunk growth
	for i := 0; i < 3; i++ {
		mustAlloc(t, a)
	}
	if a.NumChunks() != 2 {
		t.Errorf("NumChunks after growth = %d, want 2", a.NumChunks())
	}
	if a.Capacity() != 128 {
		t.Errorf("Capacity after growth = %d, want 128", a.Capacity())
	}

	// Snapshot must agree with the accessors
	m := a.Metrics()
	if m.SizeInUse != a.SizeInUse() {
		t.Errorf("Metrics.SizeInUse = %d, want %d", m.SizeInUse, a.SizeInUse())
	}
	if m.Capacity != a.Capacity() {
		t.Errorf("Metrics.Capacity = %d, want %d", m.Capacity, a.Capacity())
	}
	if m.NumChunks != a.NumChunks() {
		t.Errorf("Metrics.NumChunks = %d, want %d", m.NumChunks, a.NumChunks())
	}
	if m.ElemSize != 16 || m.ElemsPerChunk != 4 {
		t.Errorf("Metrics geometry = %d/%d, want 16/4", m.ElemSize, m.ElemsPerChunk)
	}
	if m.Utilization != a.Utilization() {
		t.Errorf("Metrics.Utilization = %f, want %f", m.Utilization, a.Utilization())
	}
}

func TestArenaMetricsAfterReset(t *testing.T) {
	a, err := New(4, 16)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Release()

	mustAlloc(t, a)
	if a.SizeInUse() == 0 {
		t.Error("Expected non-zero SizeInUse before reset")
	}

	a.Reset()
	if a.SizeInUse() != 0 {
		t.Errorf("SizeInUse after Reset = %d, want 0", a.SizeInUse())
	}
	if a.Utilization() != 0 {
		t.Errorf("Utilization after Reset = %f, want 0", a.Utilization())
	}
	// Chunks and capacity remain
	if a.NumChunks() != 1 {
		t.Errorf("NumChunks after Reset = %d, want 1", a.NumChunks())
	}
	if a.Capacity() != 64 {
		t.Errorf("Capacity after Reset = %d, want 64", a.Capacity())
	}
}

func TestArenaMetricsAfterRelease(t *testing.T) {
	a, err := New(4, 16)
	if err != nil {
		t.Fatal(err)
	}
	mustAlloc(t, a)

	a.Release()

	if a.SizeInUse() != 0 {
		t.Errorf("SizeInUse after Release = %d, want 0", a.SizeInUse())
	}
	if a.NumChunks() != 0 {
		t.Errorf("NumChunks after Release = %d, want 0", a.NumChunks())
	}
	if a.Capacity() != 0 {
		t.Errorf("Capacity after Release = %d, want 0", a.Capacity())
	}
}

func TestNilArenaMetrics(t *testing.T) {
	var a *Arena
	if a.SizeInUse() != 0 || a.Capacity() != 0 || a.NumChunks() != 0 {
		t.Error("metrics on nil arena should be zero")
	}
	if a.ElemSize() != 0 || a.ElemsPerChunk() != 0 {
		t.Error("geometry on nil arena should be zero")
	}
}

func TestSafeArenaMetrics(t *testing.T) {
	s, err := NewSafe(4, 16)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Release()

	if _, err := s.Alloc(); err != nil {
		t.Fatal(err)
	}

	if s.SizeInUse() != 16 {
		t.Errorf("SizeInUse = %d, want 16", s.SizeInUse())
	}
	if s.NumChunks() != 1 {
		t.Errorf("NumChunks = %d, want 1", s.NumChunks())
	}
	if s.Capacity() != 64 {
		t.Errorf("Capacity = %d, want 64", s.Capacity())
	}
	if s.Utilization() != 0.25 {
		t.Errorf("Utilization = %f, want 0.25", s.Utilization())
	}
	if s.ElemSize() != 16 {
		t.Errorf("ElemSize = %d, want 16", s.ElemSize())
	}

	m := s.Metrics()
	if m.SizeInUse != 16 || m.NumChunks != 1 {
		t.Errorf("Metrics = %+v, want 16 bytes in one chunk", m)
	}
}
