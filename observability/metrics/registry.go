package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// RegistryMetrics tracks Chamber creation and discovery activity.
type RegistryMetrics struct {
	created  prometheus.Counter
	chambers prometheus.Gauge
}

var (
	registryOnce     sync.Once
	registryRegistry *RegistryMetrics
)

// Registry returns the process-wide Registry metrics collector, registering
// it on first use.
func Registry() *RegistryMetrics {
	registryOnce.Do(func() {
		registryRegistry = &RegistryMetrics{
			created: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "chamber",
				Subsystem: "registry",
				Name:      "chambers_created_total",
				Help:      "Count of Chamber instances created by the Registry.",
			}),
			chambers: prometheus.NewGauge(prometheus.GaugeOpts{
				Namespace: "chamber",
				Subsystem: "registry",
				Name:      "chambers_total",
				Help:      "Current number of Chamber instances tracked by the Registry.",
			}),
		}
		prometheus.MustRegister(registryRegistry.created, registryRegistry.chambers)
	})
	return registryRegistry
}

// RecordCreated increments the creation counter.
func (m *RegistryMetrics) RecordCreated() {
	if m == nil {
		return
	}
	m.created.Inc()
}

// SetChamberCount records the current number of tracked Chambers.
func (m *RegistryMetrics) SetChamberCount(count int) {
	if m == nil {
		return
	}
	m.chambers.Set(float64(count))
}
