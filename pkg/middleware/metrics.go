package middleware

import (
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "vassert").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for check duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
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
		Namespace: "vassert",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

type metrics struct {
	checksTotal   *prometheus.CounterVec
	checkDuration *prometheus.HistogramVec
	checkFailures *prometheus.CounterVec
}

// metricsKey identifies one set of registered collectors. Collectors can
// only be registered once per registry and name, so Prometheus() calls with
// the same key share them.
type metricsKey struct {
	registry  prometheus.Registerer
	namespace string
	subsystem string
}

var (
	globalMetrics   map[metricsKey]*metrics
	lastMetrics     *metrics
	globalMetricsMu sync.Mutex
)

func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		checksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "checks_total",
			Help:        "Total number of assertions evaluated",
			ConstLabels: config.ConstLabels,
		}, []string{"check", "status"}),

		checkDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "check_duration_seconds",
			Help:        "Assertion evaluation duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"check"}),

		checkFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "check_failures_total",
			Help:        "Total number of failed assertions by subject",
			ConstLabels: config.ConstLabels,
		}, []string{"check", "label"}),
	}
}

// Prometheus creates middleware that counts and times checks.
//
// Collectors are shared per registry, namespace and subsystem. A later call
// with the same three values reuses them and ignores ConstLabels and Buckets.
//
// Metrics collected:
//   - vassert_checks_total: Counter of checks by name and status
//   - vassert_check_duration_seconds: Histogram of check duration
//   - vassert_check_failures_total: Counter of failures by name and label
//
// Example:
//
//	a := vtest.Should(t, el, vtest.WithMiddleware(
//	    middleware.Prometheus(middleware.WithNamespace("ui")),
//	))
func Prometheus(opts ...MetricsOption) Middleware {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	key := metricsKey{config.Registry, config.Namespace, config.Subsystem}
	globalMetricsMu.Lock()
	m, ok := globalMetrics[key]
	if !ok {
		if globalMetrics == nil {
			globalMetrics = make(map[metricsKey]*metrics)
		}
		m = initMetrics(config)
		globalMetrics[key] = m
	}
	lastMetrics = m
	globalMetricsMu.Unlock()

	return MiddlewareFunc(func(check *Check, next func() Result) Result {
		res := next()

		name := checkName(check)
		m.checkDuration.WithLabelValues(name).Observe(res.Duration.Seconds())

		status := "pass"
		if res.Failed {
			status = "fail"
			m.checkFailures.WithLabelValues(name, labelName(check)).Inc()
		}
		m.checksTotal.WithLabelValues(name, status).Inc()

		return res
	})
}

func checkName(check *Check) string {
	if check.Name == "" {
		return "unknown"
	}
	return check.Name
}

// labelName keeps the label set small: custom labels collapse to "custom".
func labelName(check *Check) string {
	switch l := strings.ToLower(check.Label); l {
	case "element", "rendered fragment":
		return l
	case "":
		return "none"
	default:
		return "custom"
	}
}

// Collector exposes the metric vectors for custom registrations.
type Collector struct {
	ChecksTotal   *prometheus.CounterVec
	CheckDuration *prometheus.HistogramVec
	CheckFailures *prometheus.CounterVec
}

// GetMetrics returns the collectors used by the most recent Prometheus()
// call. Returns nil if Prometheus middleware has not been initialized.
func GetMetrics() *Collector {
	globalMetricsMu.Lock()
	defer globalMetricsMu.Unlock()
	if lastMetrics == nil {
		return nil
	}
	return &Collector{
		ChecksTotal:   lastMetrics.checksTotal,
		CheckDuration: lastMetrics.checkDuration,
		CheckFailures: lastMetrics.checkFailures,
	}
}
