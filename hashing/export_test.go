package hashing

import "github.com/prometheus/client_golang/prometheus"

// Test hooks into unexported collectors.

func (m *PoolMetrics) OperationsCounter(op, result string) prometheus.Counter {
	return m.operations.WithLabelValues(op, result)
}

func (m *PoolMetrics) InFlightGauge() prometheus.Gauge { return m.inFlight }
