package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RechargeMetrics holds the prometheus instruments for the recharge flow.
type RechargeMetrics struct {
	RechargesSubmittedTotal prometheus.CounterVec
	RechargesAmountTotal    prometheus.CounterVec

	BulkRowsTotal prometheus.CounterVec

	CallbacksTotal prometheus.CounterVec

	ProviderRequestDuration prometheus.HistogramVec

	RechargeErrorsTotal prometheus.CounterVec
}

func NewRechargeMetrics() *RechargeMetrics {
	return &RechargeMetrics{
		RechargesSubmittedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recharges_submitted_total",
				Help: "Recharge submissions recorded, by provider and status",
			},
			[]string{"provider", "status"},
		),

		RechargesAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recharges_amount_total",
				Help: "Total recharge amount recorded, by provider and status",
			},
			[]string{"provider", "status"},
		),

		BulkRowsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bulk_rows_total",
				Help: "Bulk CSV rows processed, by outcome",
			},
			[]string{"outcome"},
		),

		CallbacksTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "callbacks_total",
				Help: "Provider callbacks received, by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),

		ProviderRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "provider_request_duration_seconds",
				Help:    "Provider round-trip time per request kind",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
			},
			[]string{"kind"},
		),

		RechargeErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recharge_errors_total",
				Help: "Recharge processing errors, by type",
			},
			[]string{"error_type"},
		),
	}
}

func (m *RechargeMetrics) RecordSubmission(provider, status string, amount float64) {
	m.RechargesSubmittedTotal.WithLabelValues(provider, status).Inc()
	m.RechargesAmountTotal.WithLabelValues(provider, status).Add(amount)
}

func (m *RechargeMetrics) RecordBulkRow(outcome string) {
	m.BulkRowsTotal.WithLabelValues(outcome).Inc()
}

func (m *RechargeMetrics) RecordCallback(kind, outcome string) {
	m.CallbacksTotal.WithLabelValues(kind, outcome).Inc()
}

func (m *RechargeMetrics) RecordProviderDuration(kind string, seconds float64) {
	m.ProviderRequestDuration.WithLabelValues(kind).Observe(seconds)
}

func (m *RechargeMetrics) RecordError(errorType string) {
	m.RechargeErrorsTotal.WithLabelValues(errorType).Inc()
}
