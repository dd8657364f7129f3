package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// BoardMetrics tracks the Board's delegation ledger and seat-update
// lifecycle.
type BoardMetrics struct {
	listSize               prometheus.Gauge
	repositions            prometheus.Counter
	circuitBreakerRejected prometheus.Counter
	seatProposals          *prometheus.CounterVec
}

var (
	boardOnce     sync.Once
	boardRegistry *BoardMetrics
)

// Board returns the process-wide Board metrics collector, registering it on
// first use.
func Board() *BoardMetrics {
	boardOnce.Do(func() {
		boardRegistry = &BoardMetrics{
			listSize: prometheus.NewGauge(prometheus.GaugeOpts{
				Namespace: "chamber",
				Subsystem: "board",
				Name:      "list_size",
				Help:      "Current number of nodes in the delegation ledger.",
			}),
			repositions: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "chamber",
				Subsystem: "board",
				Name:      "repositions_total",
				Help:      "Count of node reposition operations performed.",
			}),
			circuitBreakerRejected: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "chamber",
				Subsystem: "board",
				Name:      "circuit_breaker_rejected_total",
				Help:      "Count of mutations rejected because a reposition was in progress.",
			}),
			seatProposals: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "chamber",
				Subsystem: "board",
				Name:      "seat_proposals_total",
				Help:      "Count of seat-update proposal lifecycle transitions by outcome.",
			}, []string{"outcome"}),
		}
		prometheus.MustRegister(
			boardRegistry.listSize,
			boardRegistry.repositions,
			boardRegistry.circuitBreakerRejected,
			boardRegistry.seatProposals,
		)
	})
	return boardRegistry
}

// SetListSize records the ledger's current node count.
func (m *BoardMetrics) SetListSize(size uint64) {
	if m == nil {
		return
	}
	m.listSize.Set(float64(size))
}

// RecordReposition increments the reposition counter.
func (m *BoardMetrics) RecordReposition() {
	if m == nil {
		return
	}
	m.repositions.Inc()
}

// RecordCircuitBreakerRejected increments the rejection counter.
func (m *BoardMetrics) RecordCircuitBreakerRejected() {
	if m == nil {
		return
	}
	m.circuitBreakerRejected.Inc()
}

// RecordSeatProposalOutcome increments the per-outcome seat proposal
// counter (e.g. "created", "supported", "cancelled", "executed").
func (m *BoardMetrics) RecordSeatProposalOutcome(outcome string) {
	if m == nil {
		return
	}
	m.seatProposals.WithLabelValues(outcome).Inc()
}
