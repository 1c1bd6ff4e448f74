// Package metrics provides Prometheus collectors for board activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records board engine activity. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	commits         *prometheus.CounterVec
	undos           prometheus.Counter
	redos           prometheus.Counter
	persistFailures prometheus.Counter
	pins            prometheus.Gauge
	historyEntries  prometheus.Gauge
}

// New registers the board collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		commits: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "corkboard_commits_total",
				Help: "History entries committed, by operation",
			},
			[]string{"op"},
		),
		undos: f.NewCounter(prometheus.CounterOpts{
			Name: "corkboard_undo_total",
			Help: "Successful undo operations",
		}),
		redos: f.NewCounter(prometheus.CounterOpts{
			Name: "corkboard_redo_total",
			Help: "Successful redo operations",
		}),
		persistFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "corkboard_persist_failures_total",
			Help: "Failed writes to the storage backend",
		}),
		pins: f.NewGauge(prometheus.GaugeOpts{
			Name: "corkboard_pins",
			Help: "Pins on the live board",
		}),
		historyEntries: f.NewGauge(prometheus.GaugeOpts{
			Name: "corkboard_history_entries",
			Help: "Entries held by the undo ledger",
		}),
	}
}

// Commit counts a history commit for op.
func (m *Metrics) Commit(op string) {
	if m == nil {
		return
	}
	m.commits.WithLabelValues(op).Inc()
}

// Undo counts a successful undo.
func (m *Metrics) Undo() {
	if m == nil {
		return
	}
	m.undos.Inc()
}

// Redo counts a successful redo.
func (m *Metrics) Redo() {
	if m == nil {
		return
	}
	m.redos.Inc()
}

// PersistFailure counts a failed storage write.
func (m *Metrics) PersistFailure() {
	if m == nil {
		return
	}
	m.persistFailures.Inc()
}

// Observe sets the board size gauges.
func (m *Metrics) Observe(pins, historyEntries int) {
	if m == nil {
		return
	}
	m.pins.Set(float64(pins))
	m.historyEntries.Set(float64(historyEntries))
}
