package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// WalletMetrics tracks the Wallet's transaction queue lifecycle.
type WalletMetrics struct {
	submitted *prometheus.CounterVec
	executed  *prometheus.CounterVec
	queueSize prometheus.Gauge
}

var (
	walletOnce     sync.Once
	walletRegistry *WalletMetrics
)

// Wallet returns the process-wide Wallet metrics collector, registering it
// on first use.
func Wallet() *WalletMetrics {
	walletOnce.Do(func() {
		walletRegistry = &WalletMetrics{
			submitted: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "chamber",
				Subsystem: "wallet",
				Name:      "transactions_submitted_total",
				Help:      "Count of transaction lifecycle events by kind.",
			}, []string{"kind"}),
			executed: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "chamber",
				Subsystem: "wallet",
				Name:      "transactions_executed_total",
				Help:      "Count of transaction execution attempts by outcome.",
			}, []string{"outcome"}),
			queueSize: prometheus.NewGauge(prometheus.GaugeOpts{
				Namespace: "chamber",
				Subsystem: "wallet",
				Name:      "queue_size",
				Help:      "Current number of queued transactions.",
			}),
		}
		prometheus.MustRegister(
			walletRegistry.submitted,
			walletRegistry.executed,
			walletRegistry.queueSize,
		)
	})
	return walletRegistry
}

// RecordLifecycle increments the lifecycle counter for the given kind
// ("submitted", "confirmed", "revoked").
func (m *WalletMetrics) RecordLifecycle(kind string) {
	if m == nil {
		return
	}
	m.submitted.WithLabelValues(kind).Inc()
}

// RecordExecution increments the execution counter for the given outcome
// ("success", "failed").
func (m *WalletMetrics) RecordExecution(outcome string) {
	if m == nil {
		return
	}
	m.executed.WithLabelValues(outcome).Inc()
}

// SetQueueSize records the wallet's current transaction count.
func (m *WalletMetrics) SetQueueSize(size uint64) {
	if m == nil {
		return
	}
	m.queueSize.Set(float64(size))
}
