// Package arena implements a growable bump allocator for serialized row
// keys. Allocation only moves forward; nothing is freed until the whole
// arena is reset or dropped. A single writer appends at a time.
package arena

import "github.com/vectradb/vectra/pkg/util/math"

const minChunkSize = 4096

// Arena hands out byte regions from geometrically growing chunks.
type Arena struct {
	// Full chunks are kept alive because previously returned regions may
	// still reference them.
	chunks [][]byte
	head   []byte // len is the used prefix, cap the chunk size
	size   int
}

// New returns an arena whose first chunk holds at least initial bytes.
func New(initial int) *Arena {
	if initial < minChunkSize {
		initial = minChunkSize
	}
	return &Arena{head: make([]byte, 0, initial)}
}

// Size returns the total number of bytes handed out so far.
func (a *Arena) Size() int { return a.size }

// Reset drops all chunks but the current one and forgets everything
// allocated. Regions returned earlier must no longer be used.
func (a *Arena) Reset() {
	a.chunks = nil
	a.head = a.head[:0]
	a.size = 0
}

// Alloc returns a fresh writable region of exactly size bytes.
func (a *Arena) Alloc(size int) []byte {
	if cap(a.head)-len(a.head) < size {
		a.addChunk(size)
	}
	used := len(a.head)
	a.head = a.head[:used+size]
	a.size += size
	return a.head[used : used+size]
}

// AllocContinue extends the contiguous region that starts at begin by size
// bytes. It returns the writable extension and the full region. When the
// extension does not fit behind begin in the current chunk, the whole region
// is copied to fresh storage first, so the returned region may not alias
// begin. A nil (or empty) begin starts a new region.
func (a *Arena) AllocContinue(size int, begin []byte) (pos, region []byte) {
	if len(begin) == 0 {
		pos = a.Alloc(size)
		return pos, pos
	}

	used := len(a.head)
	if used >= len(begin) && &a.head[used-len(begin)] == &begin[0] && cap(a.head)-used >= size {
		// The region is the tail of the head chunk and the extension fits:
		// grow it in place.
		a.head = a.head[:used+size]
		a.size += size
		return a.head[used : used+size], a.head[used-len(begin) : used+size]
	}

	// Relocate: allocate the combined region contiguously and copy the
	// prefix over. The stale copy stays behind in its chunk.
	region = a.Alloc(len(begin) + size)
	copy(region, begin)
	return region[len(begin):], region
}

func (a *Arena) addChunk(need int) {
	a.chunks = append(a.chunks, a.head)
	a.head = make([]byte, 0, math.Max(2*cap(a.head), need))
}
