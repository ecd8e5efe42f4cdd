package httpapi

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/arbor/pkg/domain"
)

// Metrics aggregates run observability counters fed from the engine's
// lifecycle hooks.
type Metrics struct {
	runsTotal    *prometheus.CounterVec
	testsTotal   *prometheus.CounterVec
	testDuration prometheus.Histogram
	flushBytes   prometheus.Counter
	droppedBytes prometheus.Counter
}

// NewMetrics registers the run metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arbor_runs_total",
				Help: "Completed runs by status.",
			},
			[]string{"status"},
		),
		testsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arbor_tests_total",
				Help: "Reported test results by outcome label.",
			},
			[]string{"outcome"},
		),
		testDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "arbor_test_duration_milliseconds",
				Help:    "Per-test elapsed time as reported on the wire.",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
		flushBytes: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "arbor_report_flush_bytes_total",
				Help: "Report bytes delivered to the transport.",
			},
		),
		droppedBytes: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "arbor_report_dropped_bytes_total",
				Help: "Report bytes dropped on buffer overflow.",
			},
		),
	}
	reg.MustRegister(m.runsTotal, m.testsTotal, m.testDuration, m.flushBytes, m.droppedBytes)
	return m
}

// Hooks returns lifecycle hooks that feed these metrics.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTestLeave: func(_ context.Context, e *domain.TestEvent) {
			m.testsTotal.WithLabelValues(e.Outcome).Inc()
			m.testDuration.Observe(float64(e.Elapsed))
		},
		OnFlush: func(_ context.Context, e *domain.FlushEvent) {
			m.flushBytes.Add(float64(e.Bytes))
			m.droppedBytes.Add(float64(e.Dropped))
		},
	}
}

func (m *Metrics) observeRun(status string) {
	m.runsTotal.WithLabelValues(status).Inc()
}
