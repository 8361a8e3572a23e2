package metrics_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/galois/lattice"
	"github.com/katalvlaran/galois/metrics"
)

func TestRecorderAndCollector(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	rec := metrics.NewRecorder(reg)

	l, err := lattice.New([]string{"a", "b", "c"}, lattice.WithInsertHook(rec.Observe))
	require.NoError(t, err)
	require.NoError(t, reg.Register(metrics.NewCollector(l, prometheus.Labels{"context": "test"})))

	for _, obj := range []struct {
		id    string
		attrs []string
	}{
		{"x", []string{"a"}},
		{"y", []string{"b"}},
		{"z", []string{"a", "c"}},
		{"w", []string{"a"}}, // same intent as x
	} {
		_, err = l.Insert(obj.id, obj.attrs)
		require.NoError(t, err)
	}

	expected := `
# HELP galois_lattice_attributes Size of the attribute universe.
# TYPE galois_lattice_attributes gauge
galois_lattice_attributes{context="test"} 3
# HELP galois_lattice_concepts Number of concepts in the lattice.
# TYPE galois_lattice_concepts gauge
galois_lattice_concepts{context="test"} 5
# HELP galois_lattice_covers Number of covering pairs in the lattice.
# TYPE galois_lattice_covers gauge
galois_lattice_covers{context="test"} 5
# HELP galois_lattice_objects Number of inserted objects.
# TYPE galois_lattice_objects gauge
galois_lattice_objects{context="test"} 4
# HELP galois_inserts_total Objects inserted, by whether their intent was new.
# TYPE galois_inserts_total counter
galois_inserts_total{result="created"} 3
galois_inserts_total{result="merged"} 1
# HELP galois_concepts_created_total Concepts materialized by inserts, meets included.
# TYPE galois_concepts_created_total counter
galois_concepts_created_total 3
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"galois_lattice_attributes",
		"galois_lattice_concepts",
		"galois_lattice_covers",
		"galois_lattice_objects",
		"galois_inserts_total",
		"galois_concepts_created_total",
	))
	require.Equal(t, 1, testutil.CollectAndCount(reg, "galois_insert_duration_seconds"))
}

func TestNewRecorder_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewRecorder(reg)
	require.Panics(t, func() { metrics.NewRecorder(reg) })
}
