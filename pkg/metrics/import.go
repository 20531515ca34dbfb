package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ImportMetrics records outcomes of spreadsheet import runs.
type ImportMetrics struct {
	duration *prometheus.HistogramVec
	rows     *prometheus.CounterVec
	rejected *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewImportMetrics registers the import metrics on the provided registerer.
func NewImportMetrics(reg prometheus.Registerer) *ImportMetrics {
	if reg == nil {
		return &ImportMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "import_duration_seconds",
		Help:    "Duration of spreadsheet imports in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"category"})
	rows := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "import_rows_inserted",
		Help: "Rows successfully inserted per category.",
	}, []string{"category"})
	rejected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "import_rows_rejected",
		Help: "Rows rejected by mapping or validation per category.",
	}, []string{"category"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "import_failure",
		Help: "Import runs that failed outright.",
	}, []string{"category"})
	reg.MustRegister(duration, rows, rejected, failure)
	return &ImportMetrics{
		duration: duration,
		rows:     rows,
		rejected: rejected,
		failure:  failure,
	}
}

// ObserveDuration records the duration of an import run.
func (m *ImportMetrics) ObserveDuration(category string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(category)).Observe(duration.Seconds())
}

// AddInserted adds to the inserted row counter.
func (m *ImportMetrics) AddInserted(category string, n int) {
	if m == nil || m.rows == nil {
		return
	}
	m.rows.WithLabelValues(normalizeLabel(category)).Add(float64(n))
}

// AddRejected adds to the rejected row counter.
func (m *ImportMetrics) AddRejected(category string, n int) {
	if m == nil || m.rejected == nil {
		return
	}
	m.rejected.WithLabelValues(normalizeLabel(category)).Add(float64(n))
}

// IncFailure increments the failed-run counter.
func (m *ImportMetrics) IncFailure(category string) {
	if m == nil || m.failure == nil {
		return
	}
	m.failure.WithLabelValues(normalizeLabel(category)).Inc()
}

func normalizeLabel(label string) string {
	if label == "" {
		return "unknown"
	}
	return label
}
