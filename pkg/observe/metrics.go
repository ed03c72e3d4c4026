package observe

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hxo-dev/hxo/pkg/dom"
	"github.com/hxo-dev/hxo/pkg/scheduler"
)

// MetricsConfig configures Metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "hxo").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for flush duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures Metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "hxo",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics counts flushes and host mutations.
// It implements scheduler.Observer and dom.Observer.
type Metrics struct {
	flushesTotal  *prometheus.CounterVec
	flushDuration prometheus.Histogram
	jobsRun       prometheus.Counter
	jobsAbandoned prometheus.Counter
	hostOps       *prometheus.CounterVec
}

var (
	_ scheduler.Observer = (*Metrics)(nil)
	_ dom.Observer       = (*Metrics)(nil)
)

// NewMetrics creates and registers the metrics. Registering twice with the
// same registry panics, as with promauto.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		flushesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "flushes_total",
			Help:        "Total number of scheduler flushes",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		flushDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "flush_duration_seconds",
			Help:        "Scheduler flush duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		jobsRun: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "jobs_run_total",
			Help:        "Total number of jobs started by flushes",
			ConstLabels: config.ConstLabels,
		}),

		jobsAbandoned: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "jobs_abandoned_total",
			Help:        "Total number of queued jobs dropped by aborted flushes",
			ConstLabels: config.ConstLabels,
		}),

		hostOps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "host_ops_total",
			Help:        "Total number of host tree mutations by operation",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),
	}
}

// FlushDone implements scheduler.Observer.
func (m *Metrics) FlushDone(stats scheduler.FlushStats) {
	m.flushDuration.Observe(stats.Duration.Seconds())
	m.jobsRun.Add(float64(stats.Ran))

	status := "ok"
	if stats.Err != nil {
		status = "error"
		var fe *scheduler.FlushError
		if errors.As(stats.Err, &fe) {
			m.jobsAbandoned.Add(float64(fe.Abandoned))
		}
	}
	m.flushesTotal.WithLabelValues(status).Inc()
}

// HostOp implements dom.Observer.
func (m *Metrics) HostOp(op dom.Op) {
	m.hostOps.WithLabelValues(op.String()).Inc()
}
