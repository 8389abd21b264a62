package fixedarena

import (
	"testing"
)

// BenchmarkRealisticUsage tests scenarios where a fixed-element arena
// should excel: many short-lived same-size objects freed all at once.
func BenchmarkRealisticUsage(b *testing.B) {
	type astNode struct {
		Kind     int32
		Pos      int32
		Children [6]*astNode
	}

	// Test 1: build 100 nodes per round, then bulk-free
	b.Run("NodesPerRound/Arena", func(b *testing.B) {
		arena, err := NewTyped[astNode](1024)
		if err != nil {
			b.Fatal(err)
		}
		defer arena.Release()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 100; j++ {
				n, err := arena.Get()
				if err != nil {
					b.Fatal(err)
				}
				n.Kind = int32(j)
			}
			arena.Reset()
		}
	})

	b.Run("NodesPerRound/Builtin", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			nodes := make([]*astNode, 100)
			for j := 0; j < 100; j++ {
				nodes[j] = &astNode{Kind: int32(j)}
			}
			_ = nodes
		}
	})

	// Test 2: raw element views
	b.Run("RawElements/Arena", func(b *testing.B) {
		arena, err := New(1024, 64)
		if err != nil {
			b.Fatal(err)
		}
		defer arena.Release()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			if _, err := arena.Alloc(); err != nil {
				b.Fatal(err)
			}
			if i%1000 == 999 { // Reset periodically to cap growth
				arena.Reset()
			}
		}
	})

	b.Run("RawElements/Builtin", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = make([]byte, 64)
		}
	})
}

func BenchmarkSafeArenaParallel(b *testing.B) {
	s, err := NewSafe(4096, 64)
	if err != nil {
		b.Fatal(err)
	}
	defer s.Release()

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if _, err := s.Alloc(); err != nil {
				b.Error(err)
				return
			}
			i++
			if i%10000 == 0 {
				s.Reset()
			}
		}
	})
}

func BenchmarkReset(b *testing.B) {
	a, err := New(1024, 32)
	if err != nil {
		b.Fatal(err)
	}
	defer a.Release()

	// Grow to 16 chunks so Reset has something to walk
	for i := 0; i < 16*1024; i++ {
		if _, err := a.Alloc(); err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		a.Reset()
	}
}
