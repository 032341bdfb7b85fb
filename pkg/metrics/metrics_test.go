package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	// Verify all metrics are initialized
	if r.HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal not initialized")
	}
	if r.HTTPRequestDuration == nil {
		t.Error("HTTPRequestDuration not initialized")
	}
	if r.DetectionsTotal == nil {
		t.Error("DetectionsTotal not initialized")
	}
	if r.DetectionDuration == nil {
		t.Error("DetectionDuration not initialized")
	}
	if r.registry == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestDefaultRegistry(t *testing.T) {
	// Should return the same instance
	r1 := DefaultRegistry()
	r2 := DefaultRegistry()

	if r1 != r2 {
		t.Error("DefaultRegistry() should return the same instance")
	}
}

func counterValue(t *testing.T, vec *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()
	counter, err := vec.GetMetricWithLabelValues(labels...)
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	return metric.Counter.GetValue()
}

func histogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var metric dto.Metric
	if err := h.Write(&metric); err != nil {
		t.Fatalf("Failed to write histogram: %v", err)
	}
	return metric.Histogram.GetSampleCount()
}

func TestRecordHTTPRequest(t *testing.T) {
	r := NewRegistry()

	r.RecordHTTPRequest("POST", "/detect", "200", 100*time.Millisecond)
	r.RecordHTTPRequest("POST", "/detect", "400", 5*time.Millisecond)
	r.RecordHTTPRequest("GET", "/health", "200", time.Millisecond)

	if got := counterValue(t, r.HTTPRequestsTotal, "POST", "/detect", "200"); got != 1 {
		t.Errorf("Counter value = %v, want 1", got)
	}
	if got := counterValue(t, r.HTTPRequestsTotal, "POST", "/detect", "400"); got != 1 {
		t.Errorf("Counter value = %v, want 1", got)
	}
}

func TestRecordDetection(t *testing.T) {
	r := NewRegistry()

	r.RecordDetection(StatusOK, 50*time.Millisecond, 100, 500, 7, 3)
	r.RecordDetection(StatusOK, 20*time.Millisecond, 10, 20, 2, 1)
	r.RecordDetectionFailure(StatusInputError)

	if got := counterValue(t, r.DetectionsTotal, StatusOK); got != 2 {
		t.Errorf("ok detections = %v, want 2", got)
	}
	if got := counterValue(t, r.DetectionsTotal, StatusInputError); got != 1 {
		t.Errorf("input_error detections = %v, want 1", got)
	}

	if got := histogramCount(t, r.DetectionPasses); got != 2 {
		t.Errorf("passes sample count = %v, want 2", got)
	}
}

func TestRecordDetection_FailureSkipsHistograms(t *testing.T) {
	r := NewRegistry()

	r.RecordDetection(StatusComputeError, time.Second, 100, 500, 0, 0)

	if got := histogramCount(t, r.DetectionDuration); got != 0 {
		t.Errorf("duration sample count = %v, want 0", got)
	}
	if got := counterValue(t, r.DetectionsTotal, StatusComputeError); got != 1 {
		t.Errorf("compute_error detections = %v, want 1", got)
	}
}

func TestMetricNames(t *testing.T) {
	r := NewRegistry()
	r.RecordHTTPRequest("GET", "/health", "200", time.Millisecond)

	families, err := r.GetPrometheusRegistry().Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}

	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "leiden_") {
			t.Errorf("metric %q missing leiden_ prefix", mf.GetName())
		}
	}
}
