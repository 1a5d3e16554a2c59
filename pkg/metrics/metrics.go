// Package metrics provides Prometheus instruments for the gesture pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns the Prometheus instruments for one pipeline.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	framesProcessed   *prometheus.CounterVec
	detectDuration    *prometheus.HistogramVec
	eventsPublished   *prometheus.CounterVec
	poseSolveFailures prometheus.Counter
	busSubscribers    prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager

// Custom registry to avoid the default Go process metrics.
var customRegistry = prometheus.NewRegistry()

func init() {
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "kiro",
		subsystem:        "pipeline",
		histogramBuckets: []float64{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000},
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.framesProcessed = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "frames_processed_total",
			Help:      "Total number of frames run through a tracker",
		},
		[]string{"domain"},
	)

	m.detectDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "detect_duration_milliseconds",
			Help:      "Landmark detection latency in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"domain"},
	)

	m.eventsPublished = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "events_published_total",
			Help:      "Total number of events published, by topic",
		},
		[]string{"topic"},
	)

	m.poseSolveFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pose_solve_failures_total",
		Help:      "Total number of head pose fits that did not converge",
	})

	m.busSubscribers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "bus_subscribers",
		Help:      "Current number of event bus subscriptions",
	})
}

// RecordFrameProcessed increments the frame counter for a tracker domain
// ("hand", "face" or "head").
func RecordFrameProcessed(domain string) {
	globalManager.framesProcessed.WithLabelValues(domain).Inc()
}

// RecordDetectDuration records landmark detection latency in milliseconds.
func RecordDetectDuration(domain string, latencyMs float64) {
	globalManager.detectDuration.WithLabelValues(domain).Observe(latencyMs)
}

// RecordEventPublished increments the published-event counter for a topic.
func RecordEventPublished(topic string) {
	globalManager.eventsPublished.WithLabelValues(topic).Inc()
}

// RecordPoseSolveFailure increments the pose fit failure counter.
func RecordPoseSolveFailure() {
	globalManager.poseSolveFailures.Inc()
}

// UpdateBusSubscribers sets the current subscription count.
func UpdateBusSubscribers(count int) {
	globalManager.busSubscribers.Set(float64(count))
}

// Registry returns the registry backing the package-level instruments, for
// applications that want to expose or inspect them.
func Registry() *prometheus.Registry {
	return customRegistry
}
