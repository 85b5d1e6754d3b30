package colvec

import (
	"math/rand"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func naiveFilter[T Scalar](data []T, mask []byte) []T {
	var out []T
	for i, b := range mask {
		if b != 0 {
			out = append(out, data[i])
		}
	}
	return out
}

func Test_Filter_Basic(t *testing.T) {
	c := FromSlice([]int64{5, 3, 8, 1})
	got, err := c.Filter([]byte{1, 0, 1, 0}, 0)
	require.NoError(t, err)
	require.Equal(t, []int64{5, 8}, got.Values())
}

func Test_Filter_SizeMismatch(t *testing.T) {
	c := FromSlice([]int64{5, 3, 8, 1})
	_, err := c.Filter([]byte{1, 0, 1}, 0)
	require.ErrorIs(t, err, ErrSizeMismatch)
	_, err = c.Filter(make([]byte, 5), 0)
	require.ErrorIs(t, err, ErrSizeMismatch)
}

// Runs of accepted and rejected rows long enough to execute the all-accept
// bulk copy, the all-reject skip, the mixed batch path, and the scalar tail.
func Test_Filter_BatchPaths(t *testing.T) {
	const n = 16*6 + 5
	data := lo.Times(n, func(i int) uint32 { return uint32(i) })
	c := FromSlice(data)

	mask := make([]byte, n)
	for i := 0; i < 32; i++ {
		mask[i] = 0x7f // accepted run, arbitrary nonzero byte
	}
	// rows [32,64) rejected
	for i := 64; i < n; i++ {
		if i%3 == 0 {
			mask[i] = 1
		}
	}

	got, err := c.Filter(mask, -1)
	require.NoError(t, err)
	require.Equal(t, naiveFilter(data, mask), got.Values())
}

func Test_Filter_AllRejected(t *testing.T) {
	c := FromSlice(lo.Times(64, func(i int) int8 { return int8(i) }))
	got, err := c.Filter(make([]byte, 64), 0)
	require.NoError(t, err)
	require.Equal(t, 0, got.Len())
}

func Test_Filter_AllAccepted(t *testing.T) {
	data := lo.Times(64, func(i int) float32 { return float32(i) / 3 })
	c := FromSlice(data)
	mask := make([]byte, 64)
	for i := range mask {
		mask[i] = 0xff
	}
	got, err := c.Filter(mask, 64)
	require.NoError(t, err)
	require.Equal(t, data, got.Values())
}

func Test_Filter_Empty(t *testing.T) {
	got, err := New[uint8]().Filter(nil, 0)
	require.NoError(t, err)
	require.Equal(t, 0, got.Len())
}

func Test_Filter_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, n := range []int{1, 15, 16, 17, 100, 1000} {
		data := make([]uint16, n)
		mask := make([]byte, n)
		for i := range data {
			data[i] = uint16(rng.Uint32())
			if rng.Intn(2) == 0 {
				mask[i] = byte(1 + rng.Intn(255))
			}
		}
		got, err := FromSlice(data).Filter(mask, rng.Intn(3)-1)
		require.NoError(t, err)
		want := naiveFilter(data, mask)
		require.Equal(t, len(want), got.Len())
		require.Equal(t, want, append([]uint16(nil), got.Values()...))
	}
}
