// ABOUTME: Prometheus implementation of the aggregation metrics interface
// ABOUTME: Registers per-source and per-cycle collectors on a dedicated registry

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "noticias"

// PrometheusMetrics implements interfaces.Metrics
type PrometheusMetrics struct {
	registry *prometheus.Registry

	sourceFetches  *prometheus.CounterVec
	sourceDuration *prometheus.HistogramVec
	sourceItems    *prometheus.CounterVec

	cycles        prometheus.Counter
	cycleDuration prometheus.Histogram
	cycleItems    prometheus.Gauge
}

// NewPrometheusMetrics creates collectors on a fresh registry, so several
// instances can coexist in tests.
func NewPrometheusMetrics() *PrometheusMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &PrometheusMetrics{
		registry: registry,
		sourceFetches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_fetches_total",
			Help:      "Feed source fetches by outcome",
		}, []string{"source", "outcome"}),
		sourceDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "source_fetch_duration_seconds",
			Help:      "Time spent fetching and parsing one feed source",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}, []string{"source"}),
		sourceItems: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_items_total",
			Help:      "News items produced per source",
		}, []string{"source"}),
		cycles: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aggregations_total",
			Help:      "Completed aggregation cycles",
		}),
		cycleDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "aggregation_duration_seconds",
			Help:      "Wall time of one aggregation cycle",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10),
		}),
		cycleItems: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "aggregation_items",
			Help:      "Items returned by the most recent aggregation cycle",
		}),
	}
}

// ObserveSource records the outcome of one source within a cycle
func (m *PrometheusMetrics) ObserveSource(source, outcome string, duration time.Duration, items int) {
	m.sourceFetches.WithLabelValues(source, outcome).Inc()
	m.sourceDuration.WithLabelValues(source).Observe(duration.Seconds())
	if items > 0 {
		m.sourceItems.WithLabelValues(source).Add(float64(items))
	}
}

// ObserveAggregation records one finished cycle
func (m *PrometheusMetrics) ObserveAggregation(duration time.Duration, items int) {
	m.cycles.Inc()
	m.cycleDuration.Observe(duration.Seconds())
	m.cycleItems.Set(float64(items))
}

// Registry exposes the underlying registry
func (m *PrometheusMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
