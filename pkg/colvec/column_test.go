package colvec

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func Test_Construction(t *testing.T) {
	c := New[int32]()
	require.Equal(t, 0, c.Len())

	c.Reserve(8)
	c.AppendValue(5)
	c.AppendValue(3)
	require.Equal(t, []int32{5, 3}, c.Values())
	require.Equal(t, int32(3), c.At(1))

	sized := NewSized[float64](3)
	require.Equal(t, []float64{0, 0, 0}, sized.Values())
}

func Test_CloneResized_Grow(t *testing.T) {
	c := FromSlice([]int32{1, 2, 3})
	grown := c.CloneResized(5)
	require.Equal(t, []int32{1, 2, 3, 0, 0}, grown.Values())
	require.Equal(t, []int32{1, 2, 3}, c.Values())
}

func Test_CloneResized_Shrink(t *testing.T) {
	c := FromSlice([]uint16{7, 8, 9, 10})
	require.Equal(t, []uint16{7, 8}, c.CloneResized(2).Values())
	require.Equal(t, 0, c.CloneResized(0).Len())
}

func Test_CloneResized_FloatZeroFill(t *testing.T) {
	c := FromSlice([]float64{1.5})
	grown := c.CloneResized(3)
	require.Equal(t, uint64(0), math.Float64bits(grown.At(1)))
	require.Equal(t, uint64(0), math.Float64bits(grown.At(2)))
}

func Test_InsertRangeFrom(t *testing.T) {
	dst := FromSlice([]int64{1})
	src := FromSlice([]int64{10, 20, 30, 40})

	require.NoError(t, dst.InsertRangeFrom(src, 1, 2))
	require.Equal(t, []int64{1, 20, 30}, dst.Values())

	require.NoError(t, dst.InsertRangeFrom(src, 4, 0))
	require.Equal(t, []int64{1, 20, 30}, dst.Values())
}

func Test_InsertRangeFrom_OutOfBounds(t *testing.T) {
	dst := FromSlice([]int64{1})
	src := FromSlice([]int64{10, 20, 30})

	err := dst.InsertRangeFrom(src, 2, 2)
	require.ErrorIs(t, err, ErrOutOfBounds)
	require.Equal(t, []int64{1}, dst.Values(), "receiver must be unmodified on error")

	require.ErrorIs(t, dst.InsertRangeFrom(src, 0, 4), ErrOutOfBounds)
}

// get64Want is the expected widening: the value's bytes copied into a
// zeroed 8-byte word, native order.
func get64Want(raw []byte) uint64 {
	var b [8]byte
	copy(b[:], raw)
	return binary.NativeEndian.Uint64(b[:])
}

func Test_Get64_BitReinterpretation(t *testing.T) {
	i8 := FromSlice([]int8{-1})
	require.Equal(t, get64Want([]byte{0xff}), i8.Get64(0))

	i16 := FromSlice([]int16{-2})
	var ib [2]byte
	binary.NativeEndian.PutUint16(ib[:], 0xfffe)
	require.Equal(t, get64Want(ib[:]), i16.Get64(0))

	u64 := FromSlice([]uint64{math.MaxUint64})
	require.Equal(t, uint64(math.MaxUint64), u64.Get64(0))

	f32 := FromSlice([]float32{-1.5})
	var fb [4]byte
	binary.NativeEndian.PutUint32(fb[:], math.Float32bits(-1.5))
	require.Equal(t, get64Want(fb[:]), f32.Get64(0))

	f64 := FromSlice([]float64{2.25})
	require.Equal(t, math.Float64bits(2.25), f64.Get64(0))
}

func Test_Name(t *testing.T) {
	require.Equal(t, "ColumnVector<uint8>", New[uint8]().Name())
	require.Equal(t, "ColumnVector<float64>", New[float64]().Name())
}

func Test_Iterator(t *testing.T) {
	c := FromSlice(lo.Times(4, func(i int) uint32 { return uint32(i * i) }))
	it := c.Iterator()
	var got []uint32
	for it.Next() {
		got = append(got, it.At())
	}
	require.NoError(t, it.Err())
	require.Equal(t, []uint32{0, 1, 4, 9}, got)
}
