package fixedarena

// chunk is a single fixed-capacity buffer within an arena. Chunks are
// stored by value in the arena's chunk slice; the buffer is created by the
// backing Allocator and freed only on arena release.
type chunk struct {
	buf  []byte // backing memory, len(buf) == elemSize*elemsPerChunk
	used int    // byte offset of the next free slot, 0 <= used <= len(buf)
}

// fits reports whether the chunk has room for one more element of n bytes.
func (c *chunk) fits(n int) bool {
	return c.used+n <= len(c.buf)
}

// take returns the next element view of n bytes and advances the offset.
// The caller must have checked fits(n).
func (c *chunk) take(n int) []byte {
	b := c.buf[c.used : c.used+n : c.used+n]
	c.used += n
	return b
}
