// Package fixedarena implements a fixed-element chunked bump allocator
// (memory arena) for Go.
//
// # Overview
//
// A fixed-element arena serves many same-size allocations from large
// pre-allocated chunks and reclaims all of them at once. This is
// particularly useful for:
//
//   - AST nodes and parser tokens built during a single pass
//   - Per-frame transients in games and simulations
//   - Request-scoped objects with batch cleanup
//   - Reducing garbage collection pressure
//
// # Basic Usage
//
//	a, err := fixedarena.New(1024, 48) // 1024 elements of 48 bytes per chunk
//	if err != nil {
//		return err
//	}
//	defer a.Release() // Clean up when done
//
//	// Allocate one element (48 bytes, NOT zeroed)
//	elem, err := a.Alloc()
//
//	// Or use the typed façade
//	nodes, _ := fixedarena.NewTyped[Node](1024)
//	n, _ := nodes.Get()
//
//	// Reset for reuse: all chunks retained, every view invalidated
//	a.Reset()
//
// # Thread Safety
//
// The basic Arena type is not thread-safe. For concurrent access, use
// SafeArena (or SafeTyped), or keep one arena per goroutine.
//
// # Memory Layout
//
// The element size and the number of elements per chunk are fixed at
// creation. Chunks of elemSize*elemsPerChunk bytes are created lazily:
// the first chunk appears on the first Alloc, and a new chunk is added
// only when the current one is full. Elements within a chunk are laid out
// back to back at offsets i*elemSize with no padding. After a Reset,
// allocation restarts at the first chunk and walks through retained
// chunks before any new one is created.
//
// # Performance Characteristics
//
//   - Alloc: O(1) amortized (a pointer bump; occasionally a chunk allocation)
//   - Reset: O(number of chunks)
//   - Release: O(number of chunks)
//   - Memory overhead: chunk bookkeeping only, no per-element headers
//
// # Important Notes
//
//   - Returned views are only valid until the next Reset or Release
//   - No individual deallocation; reclamation is all-at-once
//   - Memory is NOT zeroed; use Typed.GetZeroed when clearing matters
//   - Using a view after Reset or Release is undefined behavior, not a
//     reported error
//
// # Metrics and Monitoring
//
// Arena statistics are available as a snapshot and as a Prometheus
// collector:
//
//	m := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//
//	reg.MustRegister(fixedarena.NewCollector(a, nil))
package fixedarena
