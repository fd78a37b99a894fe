// Package arena provides a per-request bump allocator: a single
// pre-sized slab handed out in increasing offsets and freed in one shot by
// resetting the offset to zero, rather than tracked object-by-object.
//
// It is the non-experimental stand-in for the teacher's memory.Arena, which
// is gated behind GOEXPERIMENT=arenas and therefore not available in a
// default build; the bump-and-reset technique is grounded instead on
// memory.GreenTeaAllocator's single-slab-with-offset design, stripped of its
// sync.Pool-backed multi-slab rotation since an Arena here lives for exactly
// one request and is recycled as a whole by the caller's object pool, not by
// this package.
package arena

// Arena is a bump allocator over a fixed-size backing slice. It never grows:
// once the slab is exhausted, Alloc falls back to a heap allocation so
// correctness never depends on slab size, only performance does.
type Arena struct {
	slab   []byte
	offset int
}

// New creates an Arena backed by a slab of the given size.
func New(size int) *Arena {
	return &Arena{slab: make([]byte, size)}
}

// Alloc returns a zeroed slice of length n carved from the arena's slab, or
// a fresh heap allocation if the slab lacks room. The returned slice is only
// valid until the next Reset.
func (a *Arena) Alloc(n int) []byte {
	if a.offset+n > len(a.slab) {
		return make([]byte, n)
	}
	b := a.slab[a.offset : a.offset+n : a.offset+n]
	clear(b)
	a.offset += n
	return b
}

// Copy allocates len(src) bytes from the arena and copies src into them,
// returning the arena-owned copy.
func (a *Arena) Copy(src []byte) []byte {
	dst := a.Alloc(len(src))
	copy(dst, src)
	return dst
}

// Reset frees every allocation made since the last Reset by rewinding the
// offset; the slab's backing array is reused as-is.
func (a *Arena) Reset() {
	a.offset = 0
}

// Cap returns the arena's total slab capacity in bytes.
func (a *Arena) Cap() int { return len(a.slab) }

// Used returns the number of bytes allocated from the slab since the last
// Reset (allocations that overflowed to the heap are not counted).
func (a *Arena) Used() int { return a.offset }
