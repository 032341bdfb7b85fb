package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initDetectionMetrics() {
	r.DetectionsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "leiden_detections_total",
			Help: "Total number of community detection runs",
		},
		[]string{"status"},
	)

	r.DetectionDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "leiden_detection_duration_seconds",
			Help:    "Community detection latency in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		},
	)

	r.DetectionPasses = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "leiden_detection_passes",
			Help:    "Number of refinement passes per detection run",
			Buckets: prometheus.LinearBuckets(1, 1, 10),
		},
	)

	r.DetectionInputVertices = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "leiden_detection_input_vertices",
			Help:    "Vertex count of the input graph",
			Buckets: prometheus.ExponentialBuckets(10, 10, 7),
		},
	)

	r.DetectionInputEdges = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "leiden_detection_input_edges",
			Help:    "Edge count of the input graph",
			Buckets: prometheus.ExponentialBuckets(10, 10, 7),
		},
	)

	r.DetectionCommunities = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "leiden_detection_communities",
			Help:    "Number of communities found per detection run",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
	)
}
