// Package colvec implements the typed column vector backing the vectorized
// execution model: one column of fixed-width scalar values stored
// contiguously, with the bulk operations query execution needs (filter,
// permute, replicate, sort-order computation, arena serialization,
// extremes).
//
// A Column is built by a single writer and then published; after publication
// it is shared read-only. Every bulk operation allocates a fresh Column and
// never touches the receiver, so concurrent reads of a published column need
// no synchronization.
package colvec

import (
	"fmt"
	"unsafe"

	"github.com/pkg/errors"
)

// Scalar is the closed set of fixed-width types a Column can hold.
type Scalar interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64
}

var (
	// ErrSizeMismatch reports a mask, permutation, or offsets argument whose
	// length disagrees with the column.
	ErrSizeMismatch = errors.New("size of argument does not match size of column")

	// ErrOutOfBounds reports an insert range that exceeds the source column.
	ErrOutOfBounds = errors.New("range is out of bounds")
)

// Column is a single column of N values of T, row order significant.
type Column[T Scalar] struct {
	data []T
}

// New returns an empty column.
func New[T Scalar]() *Column[T] {
	return &Column[T]{}
}

// NewSized returns a zero-filled column of n rows.
func NewSized[T Scalar](n int) *Column[T] {
	return &Column[T]{data: make([]T, n)}
}

// FromSlice returns a column owning s. The caller must not alias s after
// the column is published.
func FromSlice[T Scalar](s []T) *Column[T] {
	return &Column[T]{data: s}
}

// Len returns the number of rows.
func (c *Column[T]) Len() int { return len(c.data) }

// At returns the value at row n.
func (c *Column[T]) At(n int) T { return c.data[n] }

// Values exposes the backing slice. Only valid for mutation before the
// column is shared.
func (c *Column[T]) Values() []T { return c.data }

// AppendValue adds one row. Construction-time only.
func (c *Column[T]) AppendValue(v T) { c.data = append(c.data, v) }

// Reserve grows capacity to at least n rows without changing length.
func (c *Column[T]) Reserve(n int) {
	if cap(c.data) < n {
		data := make([]T, len(c.data), n)
		copy(data, c.data)
		c.data = data
	}
}

// Name returns the type-tagged column name, e.g. "ColumnVector<uint8>".
func (c *Column[T]) Name() string {
	var zero T
	return fmt.Sprintf("ColumnVector<%T>", zero)
}

// CloneResized returns a new column of n rows: a truncated prefix copy when
// shrinking, a raw zero-byte-filled extension when growing. The receiver is
// never modified.
func (c *Column[T]) CloneResized(n int) *Column[T] {
	res := &Column[T]{}
	if n > 0 {
		res.data = make([]T, n)
		copy(res.data, c.data)
	}
	return res
}

// InsertRangeFrom appends src[start:start+length] to the column. Returns
// ErrOutOfBounds, leaving the receiver unmodified, when the range exceeds
// src. Construction-time only.
func (c *Column[T]) InsertRangeFrom(src *Column[T], start, length int) error {
	if start < 0 || length < 0 || start+length > len(src.data) {
		return errors.Wrapf(ErrOutOfBounds,
			"insert range: start=%d length=%d, source has %d rows", start, length, len(src.data))
	}
	c.data = append(c.data, src.data[start:start+length]...)
	return nil
}

// Get64 returns the raw bit pattern of row n as a uint64: the value's
// sizeof(T) bytes are copied into a zeroed 8-byte word, with no numeric
// conversion. Generic hashing and bucketing code uses this as a
// uniform-width key for every scalar type.
func (c *Column[T]) Get64(n int) uint64 {
	var r uint64
	*(*T)(unsafe.Pointer(&r)) = c.data[n]
	return r
}

// rawBytes returns the native-order sizeof(T) bytes of row n.
func (c *Column[T]) rawBytes(n int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&c.data[n])), unsafe.Sizeof(c.data[n]))
}
