package colvec

import "github.com/vectradb/vectra/pkg/iter"

// Iterator returns a row iterator over the column in row order. The column
// must not be mutated while the iterator is in use.
func (c *Column[T]) Iterator() iter.Iterator[T] {
	return iter.NewSliceIterator(c.data)
}
