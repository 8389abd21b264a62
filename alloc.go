package fixedarena

import "unsafe"

// Typed is a generic façade over Arena that sizes elements by
// unsafe.Sizeof(T) and hands out *T instead of raw byte views. The same
// lifetime rules apply: a returned pointer is valid until the next Reset
// or Release of the arena.
//
// T must not be zero-sized and must not contain pointers the garbage
// collector needs to see through: chunk buffers are plain byte memory, so
// a pointer stored inside an arena-held T does not keep its referent
// alive on its own.
//
// Elements are laid out at a stride of unsafe.Sizeof(T), which is always
// a multiple of the type's alignment; chunk bases come from the Go heap,
// so every element of a type with standard alignment is correctly
// aligned.
type Typed[T any] struct {
	a *Arena
}

// NewTyped creates a typed arena holding elemsPerChunk values of T per
// chunk. Returns ErrInvalidArgument for zero-sized T or a non-positive
// elemsPerChunk.
func NewTyped[T any](elemsPerChunk int, opts ...Option) (*Typed[T], error) {
	var zero T
	a, err := New(elemsPerChunk, int(unsafe.Sizeof(zero)), opts...)
	if err != nil {
		return nil, err
	}
	return &Typed[T]{a: a}, nil
}

// Get returns a *T located in the arena without zeroing the memory.
// The contents are undefined until the caller writes the value.
func (t *Typed[T]) Get() (*T, error) {
	b, err := t.a.Alloc()
	if err != nil {
		return nil, err
	}
	return (*T)(unsafe.Pointer(&b[0])), nil
}

// GetZeroed returns a *T located in the arena with the memory cleared.
// Slower than Get; use it when the element is read before being fully
// initialized.
func (t *Typed[T]) GetZeroed() (*T, error) {
	b, err := t.a.Alloc()
	if err != nil {
		return nil, err
	}
	clear(b)
	return (*T)(unsafe.Pointer(&b[0])), nil
}

// Reset marks all chunks empty for reuse. Previously returned pointers
// become invalid.
func (t *Typed[T]) Reset() {
	t.a.Reset()
}

// Release returns all chunk memory to the backing allocator.
func (t *Typed[T]) Release() {
	t.a.Release()
}

// Metrics returns a snapshot of the underlying arena's statistics.
func (t *Typed[T]) Metrics() ArenaMetrics {
	return t.a.Metrics()
}

// Arena exposes the underlying arena, e.g. for attaching a Collector.
func (t *Typed[T]) Arena() *Arena {
	return t.a
}

// View reinterprets an element view returned by Arena.Alloc as a *T.
// The view must be at least unsafe.Sizeof(T) bytes.
func View[T any](b []byte) *T {
	var zero T
	if uintptr(len(b)) < unsafe.Sizeof(zero) {
		panic("fixedarena: element view smaller than T")
	}
	return (*T)(unsafe.Pointer(&b[0]))
}
