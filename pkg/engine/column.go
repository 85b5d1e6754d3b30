// Package engine holds the row-key plumbing the query engine runs on top of
// typed columns: per-row hashing across a column set and composite key
// serialization into an arena. Columns are consumed through a narrow
// type-erased interface so the hot loops stay monomorphized inside colvec.
package engine

import (
	"github.com/cespare/xxhash/v2"

	"github.com/vectradb/vectra/pkg/colvec"
)

// Column is the type-erased view of a typed column vector that key building
// and hashing need.
type Column interface {
	Len() int
	Name() string

	// Get64 returns the raw bit pattern of row n widened to 64 bits.
	Get64(n int) uint64

	// UpdateHashWithValue feeds the raw bytes of row n into h.
	UpdateHashWithValue(n int, h *xxhash.Digest)

	// SerializeValueIntoArena appends the raw bytes of row n to the arena,
	// continuing the region that starts at begin.
	SerializeValueIntoArena(n int, a colvec.Arena, begin []byte) (ref, region []byte)
}

// All scalar instantiations satisfy Column.
var (
	_ Column = (*colvec.Column[uint8])(nil)
	_ Column = (*colvec.Column[uint16])(nil)
	_ Column = (*colvec.Column[uint32])(nil)
	_ Column = (*colvec.Column[uint64])(nil)
	_ Column = (*colvec.Column[int8])(nil)
	_ Column = (*colvec.Column[int16])(nil)
	_ Column = (*colvec.Column[int32])(nil)
	_ Column = (*colvec.Column[int64])(nil)
	_ Column = (*colvec.Column[float32])(nil)
	_ Column = (*colvec.Column[float64])(nil)
)
