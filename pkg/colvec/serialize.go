package colvec

import (
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// Arena is the append-only allocator rows are serialized into when building
// composite sort/hash keys. AllocContinue extends the contiguous region that
// starts at begin by size bytes and returns the writable tail together with
// the full region; the region may have been relocated to fresh backing
// storage, so callers must use the returned region, never a slice retained
// from an earlier call. A nil begin starts a new region.
type Arena interface {
	AllocContinue(size int, begin []byte) (pos, region []byte)
}

// SerializeValueIntoArena appends the raw native-order bytes of row n to the
// arena, continuing the region that starts at begin. It returns a reference
// to the written bytes and the possibly relocated region.
func (c *Column[T]) SerializeValueIntoArena(n int, a Arena, begin []byte) (ref, region []byte) {
	pos, region := a.AllocContinue(int(unsafe.Sizeof(c.data[n])), begin)
	copy(pos, c.rawBytes(n))
	return pos, region
}

// DeserializeAndInsertFromArena reads one value from the start of pos,
// appends it to the column, and returns the remainder of pos. The bytes are
// reinterpreted with no validation; pos is trusted to hold a prior encoding
// of this column's scalar type.
func (c *Column[T]) DeserializeAndInsertFromArena(pos []byte) []byte {
	var v T
	size := int(unsafe.Sizeof(v))
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&v)), size), pos)
	c.data = append(c.data, v)
	return pos[size:]
}

// UpdateHashWithValue feeds the raw bytes of row n into the streaming hash:
// no length prefix, no endianness normalization. Hashing and comparison
// happen within one process, so the platform byte order is fine.
func (c *Column[T]) UpdateHashWithValue(n int, h *xxhash.Digest) {
	_, _ = h.Write(c.rawBytes(n))
}
