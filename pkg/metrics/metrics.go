// Package metrics exposes Prometheus instrumentation for the HTTP
// surface and the detection pipeline.
package metrics

import (
	"time"
)

// Detection run statuses
const (
	StatusOK           = "ok"
	StatusInputError   = "input_error"
	StatusComputeError = "compute_error"
)

// RecordHTTPRequest records an HTTP request with its duration
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordDetection records one detection run
func (r *Registry) RecordDetection(status string, duration time.Duration, vertices, edges, communities, passes int) {
	r.DetectionsTotal.WithLabelValues(status).Inc()
	if status != StatusOK {
		return
	}
	r.DetectionDuration.Observe(duration.Seconds())
	r.DetectionPasses.Observe(float64(passes))
	r.DetectionInputVertices.Observe(float64(vertices))
	r.DetectionInputEdges.Observe(float64(edges))
	r.DetectionCommunities.Observe(float64(communities))
}

// RecordDetectionFailure records a failed detection run
func (r *Registry) RecordDetectionFailure(status string) {
	r.DetectionsTotal.WithLabelValues(status).Inc()
}
