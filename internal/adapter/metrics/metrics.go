// Package metrics exposes Prometheus collectors for the scheduling engine.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// Namespace is the namespace for all scheduler metrics.
	Namespace = "campaign"

	// Subsystem is the subsystem for scheduler metrics.
	Subsystem = "scheduler"
)

// Metrics holds the scheduler's collectors.
type Metrics struct {
	PassesTotal       *prometheus.CounterVec
	PassDuration      prometheus.Histogram
	BatchesCreated    prometheus.Counter
	BatchTransitions  *prometheus.CounterVec
	DailyQuota        prometheus.Gauge
	AllocatedQuota    prometheus.Gauge
	UsageRowsRolledUp prometheus.Counter
	UsageRowsPruned   prometheus.Counter
}

// New creates and registers the collectors on reg, or on the default
// registerer when reg is nil.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		PassesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "passes_total",
			Help:      "Scheduling passes by outcome",
		}, []string{"outcome"}),
		PassDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "pass_duration_seconds",
			Help:      "Duration of scheduling passes",
			Buckets:   prometheus.DefBuckets,
		}),
		BatchesCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "batches_created_total",
			Help:      "Batches materialized by scheduling passes",
		}),
		BatchTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "batch_transitions_total",
			Help:      "Batch lifecycle transitions by resulting status",
		}, []string{"status"}),
		DailyQuota: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "daily_quota",
			Help:      "Most recently computed global daily quota",
		}),
		AllocatedQuota: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "allocated_quota",
			Help:      "Quota allocated by the last scheduling pass",
		}),
		UsageRowsRolledUp: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "usage_rows_rolled_up_total",
			Help:      "Raw usage rows aggregated into daily totals",
		}),
		UsageRowsPruned: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "usage_rows_pruned_total",
			Help:      "Raw usage rows deleted by retention",
		}),
	}
}

// ObservePass records one scheduling pass.
func (m *Metrics) ObservePass(d time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.PassesTotal.WithLabelValues(outcome).Inc()
	m.PassDuration.Observe(d.Seconds())
}

// AddBatchesCreated counts newly materialized batches.
func (m *Metrics) AddBatchesCreated(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.BatchesCreated.Add(float64(n))
}

// BatchTransition counts a batch moving into status.
func (m *Metrics) BatchTransition(status string) {
	if m == nil {
		return
	}
	m.BatchTransitions.WithLabelValues(status).Inc()
}

// SetDailyQuota records the computed global quota.
func (m *Metrics) SetDailyQuota(q int) {
	if m == nil {
		return
	}
	m.DailyQuota.Set(float64(q))
}

// SetAllocatedQuota records the quota handed out by the last pass.
func (m *Metrics) SetAllocatedQuota(q int) {
	if m == nil {
		return
	}
	m.AllocatedQuota.Set(float64(q))
}

// AddUsageMaintenance counts rolled-up and pruned ledger rows.
func (m *Metrics) AddUsageMaintenance(rolledUp, pruned int64) {
	if m == nil {
		return
	}
	if rolledUp > 0 {
		m.UsageRowsRolledUp.Add(float64(rolledUp))
	}
	if pruned > 0 {
		m.UsageRowsPruned.Add(float64(pruned))
	}
}
