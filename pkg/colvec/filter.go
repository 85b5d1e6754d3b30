package colvec

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// filterBatchBytes is the number of mask bytes checked per bulk step. Real
// filters are highly correlated: long runs of rows pass or fail together, so
// whole batches can be skipped or bulk-copied without per-row branching.
const filterBatchBytes = 16

// Filter returns a new column holding the rows whose mask byte is nonzero,
// in row order. The mask must have exactly one byte per row. sizeHint is a
// capacity hint only: positive reserves that many rows, negative reserves
// the full column length, zero reserves nothing.
//
// The mask is processed in 16-byte batches with a three-way branch per
// batch: all-rejected batches are skipped outright, all-accepted batches are
// bulk-copied, and only mixed batches fall back to a per-row check. The tail
// rows always take the per-row path.
func (c *Column[T]) Filter(mask []byte, sizeHint int) (*Column[T], error) {
	size := len(c.data)
	if len(mask) != size {
		return nil, errors.Wrapf(ErrSizeMismatch,
			"filter: mask has %d entries, column has %d rows", len(mask), size)
	}

	res := &Column[T]{}
	if sizeHint > 0 {
		res.data = make([]T, 0, sizeHint)
	} else if sizeHint < 0 {
		res.data = make([]T, 0, size)
	}

	pos := 0
	for aligned := size / filterBatchBytes * filterBatchBytes; pos < aligned; pos += filterBatchBytes {
		lo := binary.LittleEndian.Uint64(mask[pos:])
		hi := binary.LittleEndian.Uint64(mask[pos+8:])
		switch {
		case lo|hi == 0:
			// Whole batch rejected, nothing to do.
		case !hasZeroByte(lo) && !hasZeroByte(hi):
			res.data = append(res.data, c.data[pos:pos+filterBatchBytes]...)
		default:
			for i, b := range mask[pos : pos+filterBatchBytes] {
				if b != 0 {
					res.data = append(res.data, c.data[pos+i])
				}
			}
		}
	}
	for ; pos < size; pos++ {
		if mask[pos] != 0 {
			res.data = append(res.data, c.data[pos])
		}
	}
	return res, nil
}

// hasZeroByte reports whether any of the eight bytes of w is zero.
func hasZeroByte(w uint64) bool {
	return (w-0x0101010101010101)&^w&0x8080808080808080 != 0
}
