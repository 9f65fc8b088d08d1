package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ActionMetrics records invoice action outcomes, storage latency and view cache traffic.
type ActionMetrics struct {
	actionOutcomes         *prometheus.CounterVec
	storageDuration        *prometheus.HistogramVec
	viewCacheLookups       *prometheus.CounterVec
	viewCacheInvalidations *prometheus.CounterVec
}

// NewActionMetrics registers the metrics on the default registry.
func NewActionMetrics() *ActionMetrics {
	return NewActionMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewActionMetricsWithRegisterer registers the metrics on registerer.
// Registering twice returns the collectors registered first.
func NewActionMetricsWithRegisterer(registerer prometheus.Registerer) *ActionMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &ActionMetrics{
		actionOutcomes: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "invoices_action_outcomes_total",
			Help: "Invoice actions by action and outcome",
		}, []string{"action", "outcome"}),
		storageDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "invoices_storage_duration_seconds",
			Help:    "Duration of invoice storage statements in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		}, []string{"operation"}),
		viewCacheLookups: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "invoices_view_cache_lookups_total",
			Help: "View cache lookups by result",
		}, []string{"result"}),
		viewCacheInvalidations: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "invoices_view_cache_invalidations_total",
			Help: "View cache invalidations by route path",
		}, []string{"path"}),
	}
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}

// RecordActionOutcome counts one finished action.
func (m *ActionMetrics) RecordActionOutcome(action, outcome string) {
	m.actionOutcomes.WithLabelValues(action, outcome).Inc()
}

// ObserveStorage records how long a storage statement took.
func (m *ActionMetrics) ObserveStorage(operation string, duration time.Duration) {
	m.storageDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordCacheLookup counts a view cache hit or miss.
func (m *ActionMetrics) RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.viewCacheLookups.WithLabelValues(result).Inc()
}

// RecordCacheInvalidation counts an invalidation of path.
func (m *ActionMetrics) RecordCacheInvalidation(path string) {
	m.viewCacheInvalidations.WithLabelValues(path).Inc()
}
