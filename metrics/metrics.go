// Package metrics exposes lattice state and insert activity to Prometheus.
//
// Collector reports the shape of a lattice as gauges at scrape time.
// Recorder counts inserts and their latency; wire it in with
// lattice.WithInsertHook(rec.Observe).
//
// Lattices are not safe for concurrent use, so a registry holding a Collector
// must be gathered between inserts, never alongside one.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/galois/lattice"
)

const namespace = "galois"

// Collector reports concept, cover, object and attribute counts of one lattice.
type Collector struct {
	lattice    *lattice.Lattice
	concepts   *prometheus.Desc
	covers     *prometheus.Desc
	objects    *prometheus.Desc
	attributes *prometheus.Desc
}

// NewCollector returns a Collector for l. constLabels are attached to every
// series, e.g. to tell several lattices apart.
func NewCollector(l *lattice.Lattice, constLabels prometheus.Labels) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "lattice", name), help, nil, constLabels)
	}

	return &Collector{
		lattice:    l,
		concepts:   desc("concepts", "Number of concepts in the lattice."),
		covers:     desc("covers", "Number of covering pairs in the lattice."),
		objects:    desc("objects", "Number of inserted objects."),
		attributes: desc("attributes", "Size of the attribute universe."),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.concepts
	ch <- c.covers
	ch <- c.objects
	ch <- c.attributes
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.concepts, prometheus.GaugeValue, float64(c.lattice.Size()))
	ch <- prometheus.MustNewConstMetric(c.covers, prometheus.GaugeValue, float64(c.lattice.Order()))
	ch <- prometheus.MustNewConstMetric(c.objects, prometheus.GaugeValue, float64(len(c.lattice.Objects())))
	ch <- prometheus.MustNewConstMetric(c.attributes, prometheus.GaugeValue, float64(len(c.lattice.Attributes())))
}

// Recorder turns lattice.InsertEvent values into counters and a histogram.
type Recorder struct {
	inserts  *prometheus.CounterVec
	created  prometheus.Counter
	duration prometheus.Histogram
}

// NewRecorder registers the insert metrics with reg.
// It panics if they are already registered there, like promauto.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		// result is "created" or "merged"
		inserts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inserts_total",
			Help:      "Objects inserted, by whether their intent was new.",
		}, []string{"result"}),
		created: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "concepts_created_total",
			Help:      "Concepts materialized by inserts, meets included.",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "insert_duration_seconds",
			Help:      "Insert latency in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}),
	}
}

// Observe records one insert. Its signature matches lattice.WithInsertHook.
func (r *Recorder) Observe(ev lattice.InsertEvent) {
	result := "created"
	if ev.Merged {
		result = "merged"
	}
	r.inserts.WithLabelValues(result).Inc()
	r.created.Add(float64(ev.Created))
	r.duration.Observe(ev.Duration.Seconds())
}
