// vectra-bench exercises the typed column vector operations over randomly
// generated data and reports per-pass timings and throughput. It is a smoke
// and performance harness, not a correctness tool.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/vectradb/vectra/pkg/arena"
	"github.com/vectradb/vectra/pkg/colvec"
	"github.com/vectradb/vectra/pkg/engine"
	"github.com/vectradb/vectra/pkg/slices"
)

var cfg struct {
	rows        int
	scalarType  string
	selectivity float64
	runLen      int
	limit       int
	seed        int64
	verbose     bool
}

var logger = log.NewLogfmtLogger(os.Stderr)

func main() {
	app := kingpin.New(filepath.Base(os.Args[0]), "Micro-benchmark for vectra column vector operations.").UsageWriter(os.Stdout)
	app.HelpFlag.Short('h')
	app.Flag("rows", "Number of rows in the generated column.").Default("1000000").IntVar(&cfg.rows)
	app.Flag("type", "Scalar type of the column.").Default("int64").
		EnumVar(&cfg.scalarType, "uint8", "uint16", "uint32", "uint64", "int8", "int16", "int32", "int64", "float32", "float64")
	app.Flag("selectivity", "Fraction of rows the filter mask keeps.").Default("0.5").Float64Var(&cfg.selectivity)
	app.Flag("run-length", "Average accepted/rejected run length in the filter mask.").Default("64").IntVar(&cfg.runLen)
	app.Flag("limit", "Partial sort limit (0 sorts fully).").Default("1000").IntVar(&cfg.limit)
	app.Flag("seed", "Random seed.").Default("1").Int64Var(&cfg.seed)
	app.Flag("verbose", "Enable verbose logging.").Short('v').Default("0").BoolVar(&cfg.verbose)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if !cfg.verbose {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	if err := run(); err != nil {
		level.Error(logger).Log("msg", "benchmark failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	switch cfg.scalarType {
	case "uint8":
		return bench[uint8]()
	case "uint16":
		return bench[uint16]()
	case "uint32":
		return bench[uint32]()
	case "uint64":
		return bench[uint64]()
	case "int8":
		return bench[int8]()
	case "int16":
		return bench[int16]()
	case "int32":
		return bench[int32]()
	case "int64":
		return bench[int64]()
	case "float32":
		return bench[float32]()
	case "float64":
		return bench[float64]()
	}
	return fmt.Errorf("unknown scalar type %q", cfg.scalarType)
}

func bench[T colvec.Scalar]() error {
	rng := rand.New(rand.NewSource(cfg.seed))

	data := make([]T, cfg.rows)
	for i := range data {
		data[i] = T(rng.Uint64() >> 1)
	}
	col := colvec.FromSlice(data)

	var zero T
	rowBytes := int(unsafe.Sizeof(zero))
	level.Info(logger).Log(
		"msg", "generated column",
		"column", col.Name(),
		"rows", humanize.Comma(int64(cfg.rows)),
		"size", humanize.Bytes(uint64(cfg.rows*rowBytes)),
	)

	mask := correlatedMask(rng, cfg.rows, cfg.selectivity, cfg.runLen)

	pass("filter", func() (int, error) {
		res, err := col.Filter(mask, -1)
		if err != nil {
			return 0, err
		}
		return res.Len(), nil
	})

	var perm []uint32
	pass("sort permutation", func() (int, error) {
		perm = col.GetPermutation(false, 0)
		return len(perm), nil
	})
	pass("partial sort permutation", func() (int, error) {
		return len(col.GetPermutation(true, cfg.limit)), nil
	})
	pass("permute", func() (int, error) {
		res, err := col.Permute(perm, 0)
		if err != nil {
			return 0, err
		}
		return res.Len(), nil
	})

	pass("replicate", func() (int, error) {
		offsets := make([]uint64, cfg.rows)
		var total uint64
		for i := range offsets {
			total += uint64(rng.Intn(3))
			offsets[i] = total
		}
		res, err := col.Replicate(offsets)
		if err != nil {
			return 0, err
		}
		return res.Len(), nil
	})

	pass("extremes", func() (int, error) {
		col.GetExtremes()
		return col.Len(), nil
	})

	reg := prometheus.NewRegistry()
	metrics := engine.NewMetrics(reg)
	cols := []engine.Column{col}

	pass("row hash", func() (int, error) {
		hashes, err := engine.NewRowHasher(metrics).HashColumns(cols)
		return len(hashes), err
	})

	a := arena.New(cfg.rows * rowBytes)
	pass("row keys", func() (int, error) {
		keys, err := engine.NewKeyWriter(a, metrics).WriteKeys(cols)
		return len(keys), err
	})
	level.Debug(logger).Log("msg", "arena after key pass", "size", humanize.Bytes(uint64(a.Size())))

	return dumpMetrics(reg)
}

func pass(name string, fn func() (int, error)) {
	start := time.Now()
	rows, err := fn()
	if err != nil {
		level.Error(logger).Log("msg", "pass failed", "pass", name, "err", err)
		return
	}
	elapsed := time.Since(start)
	perSec := float64(cfg.rows) / elapsed.Seconds()
	level.Info(logger).Log(
		"msg", "pass complete",
		"pass", name,
		"out_rows", humanize.Comma(int64(rows)),
		"elapsed", elapsed,
		"rows_per_s", humanize.Comma(int64(perSec)),
	)
}

// correlatedMask builds a keep/drop mask out of runs so the filter's batch
// fast paths actually fire, the way real-world predicates behave.
func correlatedMask(rng *rand.Rand, n int, selectivity float64, runLen int) []byte {
	if runLen < 1 {
		runLen = 1
	}
	mask := make([]byte, n)
	for i := 0; i < n; {
		length := 1 + rng.Intn(2*runLen)
		keep := rng.Float64() < selectivity
		for j := 0; j < length && i < n; j, i = j+1, i+1 {
			if keep {
				mask[i] = 1
			}
		}
	}
	return mask
}

func dumpMetrics(reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	families = slices.RemoveInPlace(families, func(mf *dto.MetricFamily, _ int) bool {
		return len(mf.GetMetric()) == 0
	})
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			level.Info(logger).Log("metric", mf.GetName(), "value", m.GetCounter().GetValue())
		}
	}
	return nil
}
