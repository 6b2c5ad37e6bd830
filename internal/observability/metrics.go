package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the calculation endpoints.
type Metrics struct {
	Calculations        *prometheus.CounterVec   // labels: tool
	CalculationErrors   *prometheus.CounterVec   // labels: tool
	CalculationDuration *prometheus.HistogramVec // labels: tool
	TableFallbacks      *prometheus.CounterVec   // labels: table
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Calculations,
		m.CalculationErrors,
		m.CalculationDuration,
		m.TableFallbacks,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "spectra",
			Name:      "calculations_total",
			Help:      "Completed calculations by tool.",
		}, []string{"tool"}),
		CalculationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "spectra",
			Name:      "calculation_errors_total",
			Help:      "Rejected or failed calculations by tool.",
		}, []string{"tool"}),
		CalculationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "spectra",
			Name:      "calculation_duration_seconds",
			Help:      "Calculation duration in seconds by tool.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"tool"}),
		TableFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "spectra",
			Name:      "table_fallbacks_total",
			Help:      "Code-table lookups that resolved to the fallback value, by table.",
		}, []string{"table"}),
	}
}

// Observe records the outcome of one calculation. A nil receiver is a no-op.
func (m *Metrics) Observe(tool string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.CalculationDuration.WithLabelValues(tool).Observe(time.Since(start).Seconds())
	if err != nil {
		m.CalculationErrors.WithLabelValues(tool).Inc()
		return
	}
	m.Calculations.WithLabelValues(tool).Inc()
}

// Fallback counts a lookup miss on the named table. A nil receiver is a no-op.
func (m *Metrics) Fallback(table string) {
	if m == nil {
		return
	}
	m.TableFallbacks.WithLabelValues(table).Inc()
}
