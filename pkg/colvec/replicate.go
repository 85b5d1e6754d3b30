package colvec

import "github.com/pkg/errors"

// Replicate expands each row into offsets[i]-offsets[i-1] adjacent copies
// (offsets[-1] taken as 0), preserving row order. offsets must be
// monotonically non-decreasing with one entry per row; its last entry is the
// output length. Returns ErrSizeMismatch when the offsets length disagrees
// with the column.
func (c *Column[T]) Replicate(offsets []uint64) (*Column[T], error) {
	size := len(c.data)
	if len(offsets) != size {
		return nil, errors.Wrapf(ErrSizeMismatch,
			"replicate: offsets has %d entries, column has %d rows", len(offsets), size)
	}

	res := &Column[T]{}
	if size == 0 {
		return res, nil
	}
	res.data = make([]T, 0, offsets[size-1])

	var prev uint64
	for i := 0; i < size; i++ {
		for n := offsets[i] - prev; n > 0; n-- {
			res.data = append(res.data, c.data[i])
		}
		prev = offsets[i]
	}
	return res, nil
}
