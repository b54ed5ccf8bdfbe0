// Package observability provides Prometheus metrics for index summaries.
//
// Metrics cover request outcomes and aggregation latency per operation, and
// the shape of the most recently computed inventory (family and index
// counts, bytes and index counts per tier). They are exposed on /metrics.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/aaronwald/indexstats/internal/types"
)

const metricsNamespace = "indexstats"

// Request status label values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Metrics holds the collectors updated by the summary service
type Metrics struct {
	// RequestsTotal counts summary requests.
	// Labels: operation (index_summary, tier_summary), status (success, error)
	RequestsTotal *prometheus.CounterVec

	// AggregationDuration measures fetch plus aggregation time.
	// Labels: operation
	AggregationDuration *prometheus.HistogramVec

	// Families is the number of index families in the last summary
	Families prometheus.Gauge

	// Indices is the number of indices in the last summary
	Indices prometheus.Gauge

	// TierBytes is total store size per tier in the last summary.
	// Labels: tier
	TierBytes *prometheus.GaugeVec

	// TierIndices is the index count per tier in the last summary.
	// Labels: tier
	TierIndices *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg.
// Passing prometheus.DefaultRegisterer exposes them on the default handler;
// tests pass a fresh registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "requests_total",
				Help:      "Total summary requests by operation and status",
			},
			[]string{"operation", "status"},
		),

		AggregationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "aggregation_duration_seconds",
				Help:      "Time to fetch cluster stats and aggregate them",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"operation"},
		),

		Families: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "families",
			Help:      "Number of index families in the last summary",
		}),

		Indices: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "indices",
			Help:      "Number of indices in the last summary",
		}),

		TierBytes: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "tier_bytes",
				Help:      "Total store size in bytes per tier in the last summary",
			},
			[]string{"tier"},
		),

		TierIndices: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "tier_indices",
				Help:      "Number of indices per tier in the last summary",
			},
			[]string{"tier"},
		),
	}
}

// ObserveRequest records the outcome and duration of one summary request.
// Safe to call on a nil receiver.
func (m *Metrics) ObserveRequest(operation string, start time.Time, err error) {
	if m == nil {
		return
	}
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	m.RequestsTotal.WithLabelValues(operation, status).Inc()
	m.AggregationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// ObserveInventory publishes the shape of a computed summary
func (m *Metrics) ObserveInventory(families []types.FamilySummary, tiers types.ClusterTierSummary) {
	if m == nil {
		return
	}
	var count int64
	for _, f := range families {
		count += f.Total.Count
	}
	m.Families.Set(float64(len(families)))
	m.Indices.Set(float64(count))

	for _, tier := range types.Tiers {
		totals := tiers.Tier(tier)
		if totals == nil {
			continue
		}
		m.TierBytes.WithLabelValues(tier).Set(float64(totals.TotalSize))
		m.TierIndices.WithLabelValues(tier).Set(float64(totals.Count))
	}
}
