package engine

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vectradb/vectra/pkg/util"
)

type Metrics struct {
	registerer prometheus.Registerer

	rowsHashedTotal prometheus.Counter
	keysBuiltTotal  prometheus.Counter
	keyBytesTotal   prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		registerer: reg,

		rowsHashedTotal: util.RegisterOrGet(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vectra_rows_hashed_total",
			Help: "Total number of rows hashed across column sets",
		})),
		keysBuiltTotal: util.RegisterOrGet(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vectra_row_keys_built_total",
			Help: "Total number of composite row keys serialized",
		})),
		keyBytesTotal: util.RegisterOrGet(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vectra_row_key_bytes_total",
			Help: "Total bytes of serialized row keys written to arenas",
		})),
	}
}

func (m *Metrics) Unregister() {
	m.registerer.Unregister(m.rowsHashedTotal)
	m.registerer.Unregister(m.keysBuiltTotal)
	m.registerer.Unregister(m.keyBytesTotal)
}
