package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MockMetrics records what the mock router answered.
type MockMetrics struct {
	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	unmatched *prometheus.CounterVec
}

// NewMockMetrics registers the mock router metrics on the provided registerer.
// A nil registerer yields a recorder that drops everything.
func NewMockMetrics(reg prometheus.Registerer) *MockMetrics {
	if reg == nil {
		return &MockMetrics{}
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mock_requests_total",
		Help: "Requests answered by the mock router.",
	}, []string{"route", "method", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mock_request_duration_seconds",
		Help:    "Time spent answering mocked requests, including simulated latency.",
		Buckets: []float64{.005, .01, .05, .1, .25, .5, .75, 1, 2},
	}, []string{"route"})
	unmatched := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mock_unmatched_total",
		Help: "Requests that matched no mock route.",
	}, []string{"method"})
	reg.MustRegister(requests, duration, unmatched)
	return &MockMetrics{
		requests:  requests,
		duration:  duration,
		unmatched: unmatched,
	}
}

// ObserveRequest counts one answered request and its duration.
func (m *MockMetrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil || m.requests == nil {
		return
	}
	route = normalizeLabel(route)
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// IncUnmatched counts a request that fell through to the not-found handler.
func (m *MockMetrics) IncUnmatched(method string) {
	if m == nil || m.unmatched == nil {
		return
	}
	m.unmatched.WithLabelValues(method).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
