package fixedarena

import "github.com/prometheus/client_golang/prometheus"

// MetricsSource is anything that can produce an ArenaMetrics snapshot.
// Arena, SafeArena, Typed and SafeTyped all satisfy it.
type MetricsSource interface {
	Metrics() ArenaMetrics
}

// Collector exports an arena's metrics as Prometheus gauges. Each arena
// gets its own Collector; there is no package-level registry state. Use
// the labels to tell arenas apart when registering more than one:
//
//	reg.MustRegister(fixedarena.NewCollector(a, prometheus.Labels{"arena": "ast"}))
//
// Collect takes a metrics snapshot at scrape time, so registering a plain
// Arena's collector is only safe when scrapes are serialized with the
// arena's user; register a SafeArena for concurrent use.
type Collector struct {
	src MetricsSource

	inUse       *prometheus.Desc
	capacity    *prometheus.Desc
	chunks      *prometheus.Desc
	utilization *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a Collector for src. The labels are attached to
// every exported metric and may be nil.
func NewCollector(src MetricsSource, labels prometheus.Labels) *Collector {
	return &Collector{
		src: src,
		inUse: prometheus.NewDesc(
			"fixedarena_in_use_bytes",
			"Bytes currently handed out by the arena",
			nil, labels,
		),
		capacity: prometheus.NewDesc(
			"fixedarena_capacity_bytes",
			"Total chunk capacity of the arena in bytes",
			nil, labels,
		),
		chunks: prometheus.NewDesc(
			"fixedarena_chunks",
			"Number of chunks owned by the arena",
			nil, labels,
		),
		utilization: prometheus.NewDesc(
			"fixedarena_utilization_ratio",
			"Ratio of bytes in use to total capacity (0-1)",
			nil, labels,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.inUse
	ch <- c.capacity
	ch <- c.chunks
	ch <- c.utilization
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	m := c.src.Metrics()
	ch <- prometheus.MustNewConstMetric(c.inUse, prometheus.GaugeValue, float64(m.SizeInUse))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(m.Capacity))
	ch <- prometheus.MustNewConstMetric(c.chunks, prometheus.GaugeValue, float64(m.NumChunks))
	ch <- prometheus.MustNewConstMetric(c.utilization, prometheus.GaugeValue, m.Utilization)
}
