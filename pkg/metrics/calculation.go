package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CalculationMetrics records external engine invocations.
type CalculationMetrics struct {
	duration prometheus.Histogram
	success  prometheus.Counter
	failure  prometheus.Counter
	rejected prometheus.Counter
}

// NewCalculationMetrics registers the calculation metrics on the provided
// registerer.
func NewCalculationMetrics(reg prometheus.Registerer) *CalculationMetrics {
	if reg == nil {
		return &CalculationMetrics{}
	}
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "calculation_duration_seconds",
		Help:    "Duration of engine calculations in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	success := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "calculation_success",
		Help: "Engine calculations that returned results.",
	})
	failure := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "calculation_failure",
		Help: "Engine calculations that failed.",
	})
	rejected := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "calculation_rejected",
		Help: "Calculation requests rejected because one was already running.",
	})
	reg.MustRegister(duration, success, failure, rejected)
	return &CalculationMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
		rejected: rejected,
	}
}

// ObserveDuration records the duration of an engine run.
func (m *CalculationMetrics) ObserveDuration(duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.Observe(duration.Seconds())
}

// IncSuccess increments the success counter.
func (m *CalculationMetrics) IncSuccess() {
	if m == nil || m.success == nil {
		return
	}
	m.success.Inc()
}

// IncFailure increments the failure counter.
func (m *CalculationMetrics) IncFailure() {
	if m == nil || m.failure == nil {
		return
	}
	m.failure.Inc()
}

// IncRejected increments the busy-rejection counter.
func (m *CalculationMetrics) IncRejected() {
	if m == nil || m.rejected == nil {
		return
	}
	m.rejected.Inc()
}
