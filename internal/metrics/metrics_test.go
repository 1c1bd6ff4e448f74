package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Commit("add")
	m.Commit("add")
	m.Commit("delete")
	m.Undo()
	m.Redo()
	m.Redo()
	m.PersistFailure()
	m.Observe(4, 7)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.commits.WithLabelValues("add")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.commits.WithLabelValues("delete")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.undos))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.redos))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.persistFailures))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.pins))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.historyEntries))

	n, err := testutil.GatherAndCount(reg)
	assert.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Commit("add")
		m.Undo()
		m.Redo()
		m.PersistFailure()
		m.Observe(1, 1)
	})
}
