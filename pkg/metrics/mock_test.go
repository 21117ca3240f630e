package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestMockMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMockMetrics(reg)
	metrics.ObserveRequest("/accounts/{id}", "GET", 200, 250*time.Millisecond)
	metrics.ObserveRequest("/accounts/{id}", "GET", 404, 10*time.Millisecond)
	metrics.IncUnmatched("PATCH")

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "mock_requests_total", "status", "404"); err != nil {
		t.Fatalf("fetch requests: %v", err)
	} else if got != 1 {
		t.Fatalf("expected requests{status=404}=1, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "mock_unmatched_total", "method", "PATCH"); err != nil {
		t.Fatalf("fetch unmatched: %v", err)
	} else if got != 1 {
		t.Fatalf("expected unmatched=1, got %f", got)
	}

	if got, err := fetchHistogramSum(mfs, "mock_request_duration_seconds", "route", "/accounts/{id}"); err != nil {
		t.Fatalf("fetch duration: %v", err)
	} else if got < 0.25 {
		t.Fatalf("expected duration sum >= 0.25, got %f", got)
	}
}

func TestNilMockMetricsIsSafe(t *testing.T) {
	var metrics *MockMetrics
	metrics.ObserveRequest("", "GET", 200, time.Second)
	metrics.IncUnmatched("GET")

	NewMockMetrics(nil).ObserveRequest("", "GET", 200, time.Second)
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func fetchHistogramSum(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetHistogram().GetSampleSum(), nil
		}
	}
	return 0, fmt.Errorf("histogram %q missing label %s=%s", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
