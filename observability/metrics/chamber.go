package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// ChamberMetrics tracks vault and governance activity at the Chamber
// composition layer.
type ChamberMetrics struct {
	deposits           *prometheus.CounterVec
	reentrancyRejected prometheus.Counter
	directorGateDenied prometheus.Counter
	totalAssets        prometheus.Gauge
}

var (
	chamberOnce     sync.Once
	chamberRegistry *ChamberMetrics
)

// Chamber returns the process-wide Chamber metrics collector, registering
// it on first use.
func Chamber() *ChamberMetrics {
	chamberOnce.Do(func() {
		chamberRegistry = &ChamberMetrics{
			deposits: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "chamber",
				Subsystem: "vault",
				Name:      "operations_total",
				Help:      "Count of vault operations by kind (deposit, withdraw, redeem, transfer).",
			}, []string{"kind"}),
			reentrancyRejected: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "chamber",
				Subsystem: "vault",
				Name:      "reentrancy_rejected_total",
				Help:      "Count of entries rejected by the Chamber's reentrancy guard.",
			}),
			directorGateDenied: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "chamber",
				Subsystem: "vault",
				Name:      "director_gate_denied_total",
				Help:      "Count of calls rejected by the directorship gate.",
			}),
			totalAssets: prometheus.NewGauge(prometheus.GaugeOpts{
				Namespace: "chamber",
				Subsystem: "vault",
				Name:      "total_assets",
				Help:      "Current underlying asset balance held by the vault.",
			}),
		}
		prometheus.MustRegister(
			chamberRegistry.deposits,
			chamberRegistry.reentrancyRejected,
			chamberRegistry.directorGateDenied,
			chamberRegistry.totalAssets,
		)
	})
	return chamberRegistry
}

// RecordOperation increments the vault operation counter for the given kind.
func (m *ChamberMetrics) RecordOperation(kind string) {
	if m == nil {
		return
	}
	m.deposits.WithLabelValues(kind).Inc()
}

// RecordReentrancyRejected increments the reentrancy rejection counter.
func (m *ChamberMetrics) RecordReentrancyRejected() {
	if m == nil {
		return
	}
	m.reentrancyRejected.Inc()
}

// RecordDirectorGateDenied increments the director gate denial counter.
func (m *ChamberMetrics) RecordDirectorGateDenied() {
	if m == nil {
		return
	}
	m.directorGateDenied.Inc()
}

// SetTotalAssets records the vault's current underlying asset balance.
func (m *ChamberMetrics) SetTotalAssets(v float64) {
	if m == nil {
		return
	}
	m.totalAssets.Set(v)
}
