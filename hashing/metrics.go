package hashing

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Pool operation names, used as the "op" label.
const (
	opMake  = "make"
	opCheck = "check"
)

// Pool operation outcomes, used as the "result" label.
const (
	resultOK       = "ok"
	resultMismatch = "mismatch"
	resultError    = "error"
	resultCanceled = "canceled"
)

// PoolMetrics holds the Prometheus collectors a [Pool] reports to:
//
//	bcrypt_pool_operations_total{op,result}      counter
//	bcrypt_pool_operation_duration_seconds{op}   histogram
//	bcrypt_pool_in_flight                        gauge
//
// op is "make" or "check"; result is "ok", "mismatch", "error" or
// "canceled". Durations are recorded only for operations whose caller was
// still waiting when they finished.
//
// A nil *PoolMetrics is valid and records nothing.
type PoolMetrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	inFlight   prometheus.Gauge
}

// NewPoolMetrics creates the collectors and registers them with reg. A nil
// reg leaves them unregistered, which is convenient in tests.
func NewPoolMetrics(reg prometheus.Registerer) (*PoolMetrics, error) {
	m := &PoolMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bcrypt",
			Subsystem: "pool",
			Name:      "operations_total",
			Help:      "Hash and verify operations dispatched through the pool, by outcome.",
		}, []string{"op", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "bcrypt",
			Subsystem: "pool",
			Name:      "operation_duration_seconds",
			Help:      "Time from acquiring a worker slot to the hash finishing.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14),
		}, []string{"op"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bcrypt",
			Subsystem: "pool",
			Name:      "in_flight",
			Help:      "Hash operations currently running, including abandoned ones.",
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.operations, m.duration, m.inFlight} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("hashing: registering pool metrics: %w", err)
		}
	}
	return m, nil
}

func (m *PoolMetrics) count(op, result string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(op, result).Inc()
}

func (m *PoolMetrics) observe(op string, d time.Duration) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(op).Observe(d.Seconds())
}

func (m *PoolMetrics) started() {
	if m == nil {
		return
	}
	m.inFlight.Inc()
}

func (m *PoolMetrics) finished() {
	if m == nil {
		return
	}
	m.inFlight.Dec()
}
