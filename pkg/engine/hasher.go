package engine

import (
	"github.com/cespare/xxhash/v2"
	"github.com/colega/zeropool"
	"github.com/pkg/errors"

	"github.com/vectradb/vectra/pkg/arena"
	"github.com/vectradb/vectra/pkg/colvec"
	"github.com/vectradb/vectra/pkg/slices"
)

var digestPool = zeropool.New(func() *xxhash.Digest { return xxhash.New() })

// RowHasher computes one xxhash per row over a set of columns, feeding each
// column's raw value bytes into the digest in column order.
type RowHasher struct {
	metrics *Metrics
}

func NewRowHasher(m *Metrics) *RowHasher {
	return &RowHasher{metrics: m}
}

// HashRow hashes row n across cols. All columns must cover row n.
func (h *RowHasher) HashRow(cols []Column, n int) uint64 {
	d := digestPool.Get()
	d.Reset()
	for _, c := range cols {
		c.UpdateHashWithValue(n, d)
	}
	sum := d.Sum64()
	digestPool.Put(d)
	h.metrics.rowsHashedTotal.Inc()
	return sum
}

// HashColumns hashes every row of the column set. Returns ErrSizeMismatch
// (from colvec) when the columns disagree on row count.
func (h *RowHasher) HashColumns(cols []Column) ([]uint64, error) {
	return h.HashColumnsInto(nil, cols)
}

// HashColumnsInto is HashColumns reusing dst's capacity across batches.
func (h *RowHasher) HashColumnsInto(dst []uint64, cols []Column) ([]uint64, error) {
	rows, err := rowCount(cols)
	if err != nil {
		return nil, err
	}
	out := slices.GrowLen(dst, rows)
	for n := 0; n < rows; n++ {
		out[n] = h.HashRow(cols, n)
	}
	return out, nil
}

// KeyWriter serializes composite row keys into an arena. Keys from one
// writer stay contiguous per row; the arena owns the bytes.
type KeyWriter struct {
	arena   *arena.Arena
	metrics *Metrics
}

func NewKeyWriter(a *arena.Arena, m *Metrics) *KeyWriter {
	return &KeyWriter{arena: a, metrics: m}
}

// WriteRowKey appends the raw bytes of row n of every column to the arena as
// one contiguous region and returns it. The region is valid until the arena
// is reset.
func (w *KeyWriter) WriteRowKey(cols []Column, n int) []byte {
	var region []byte
	for _, c := range cols {
		_, region = c.SerializeValueIntoArena(n, w.arena, region)
	}
	w.metrics.keysBuiltTotal.Inc()
	w.metrics.keyBytesTotal.Add(float64(len(region)))
	return region
}

// WriteKeys builds a key for every row of the column set.
func (w *KeyWriter) WriteKeys(cols []Column) ([][]byte, error) {
	rows, err := rowCount(cols)
	if err != nil {
		return nil, err
	}
	keys := make([][]byte, rows)
	for n := 0; n < rows; n++ {
		keys[n] = w.WriteRowKey(cols, n)
	}
	return keys, nil
}

func rowCount(cols []Column) (int, error) {
	if len(cols) == 0 {
		return 0, nil
	}
	rows := cols[0].Len()
	for _, c := range cols[1:] {
		if c.Len() != rows {
			return 0, errors.Wrapf(colvec.ErrSizeMismatch,
				"column %s has %d rows, expected %d", c.Name(), c.Len(), rows)
		}
	}
	return rows, nil
}
