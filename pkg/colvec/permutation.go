package colvec

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/vectradb/vectra/pkg/util/math"
)

// GetPermutation returns a permutation P of [0, N) such that iterating rows
// in the order P[0], P[1], ... yields the values ascending, or descending
// when reverse is set. When 0 < limit < N only the first limit positions are
// ordered: they hold the limit smallest (largest, when reverse) rows; the
// order of the remaining indices is unspecified. Ties may land in either
// relative order.
func (c *Column[T]) GetPermutation(reverse bool, limit int) []uint32 {
	size := len(c.data)
	res := make([]uint32, size)
	for i := range res {
		res[i] = uint32(i)
	}

	if limit >= size {
		limit = 0
	}

	less := func(a, b uint32) bool { return c.data[a] < c.data[b] }
	if reverse {
		less = func(a, b uint32) bool { return c.data[a] > c.data[b] }
	}

	if limit > 0 {
		partialSort(res, limit, less)
	} else {
		sort.Slice(res, func(i, j int) bool { return less(res[i], res[j]) })
	}
	return res
}

// partialSort reorders s so that s[:limit] holds the limit smallest elements
// under less, in order. It keeps a max-heap over the prefix while scanning
// the tail, then heap-sorts the prefix in place.
func partialSort(s []uint32, limit int, less func(a, b uint32) bool) {
	heap := s[:limit]
	for i := limit/2 - 1; i >= 0; i-- {
		siftDown(heap, i, less)
	}
	for i := limit; i < len(s); i++ {
		if less(s[i], heap[0]) {
			heap[0], s[i] = s[i], heap[0]
			siftDown(heap, 0, less)
		}
	}
	for end := limit - 1; end > 0; end-- {
		heap[0], heap[end] = heap[end], heap[0]
		siftDown(heap[:end], 0, less)
	}
}

func siftDown(heap []uint32, root int, less func(a, b uint32) bool) {
	for {
		child := 2*root + 1
		if child >= len(heap) {
			return
		}
		if child+1 < len(heap) && less(heap[child], heap[child+1]) {
			child++
		}
		if !less(heap[root], heap[child]) {
			return
		}
		heap[root], heap[child] = heap[child], heap[root]
		root = child
	}
}

// Permute returns a new column with result[i] = c[perm[i]] for i in
// [0, limit). limit == 0 means the full column length; a larger limit is
// clamped to it. Returns ErrSizeMismatch when perm is shorter than the
// effective limit. Permutation entries are caller-trusted: an out-of-range
// index is a contract violation, not a recoverable error.
func (c *Column[T]) Permute(perm []uint32, limit int) (*Column[T], error) {
	size := len(c.data)
	if limit == 0 {
		limit = size
	} else {
		limit = math.Min(size, limit)
	}
	if len(perm) < limit {
		return nil, errors.Wrapf(ErrSizeMismatch,
			"permute: permutation has %d entries, %d required", len(perm), limit)
	}

	res := &Column[T]{data: make([]T, limit)}
	for i := 0; i < limit; i++ {
		res.data[i] = c.data[perm[i]]
	}
	return res, nil
}
