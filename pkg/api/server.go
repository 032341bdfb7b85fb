// Package api exposes community detection over HTTP: POST /detect runs
// the pipeline on a JSON edge list, GET /health reports liveness, and
// GET /metrics serves Prometheus metrics.
package api

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dd0wney/cluso-leiden/pkg/api/middleware"
	"github.com/dd0wney/cluso-leiden/pkg/leiden"
	"github.com/dd0wney/cluso-leiden/pkg/logging"
	"github.com/dd0wney/cluso-leiden/pkg/metrics"
)

const (
	defaultMaxBodyBytes   = 64 << 20 // 64 MiB
	defaultRequestTimeout = 5 * time.Minute
)

// NewServer creates a new API server
func NewServer(port int, options ...ServerOption) *Server {
	s := &Server{
		opts:           leiden.DefaultOptions(),
		logger:         logging.NewNopLogger(),
		startTime:      time.Now(),
		version:        "1.0.0",
		port:           port,
		maxBodyBytes:   defaultMaxBodyBytes,
		requestTimeout: defaultRequestTimeout,
	}
	for _, opt := range options {
		opt(s)
	}
	if s.metricsRegistry == nil {
		s.metricsRegistry = metrics.NewRegistry()
	}
	return s
}

// Handler builds the full middleware chain and route table
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/detect", s.handleDetect)
	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.HandlerFor(
		s.metricsRegistry.GetPrometheusRegistry(),
		promhttp.HandlerOpts{},
	))

	var handler http.Handler = mux
	handler = middleware.BodySizeLimit(s.maxBodyBytes)(handler)
	handler = s.metricsMiddleware(handler)
	handler = middleware.Logging(s.logger)(handler)
	handler = middleware.PanicRecovery(s.logger)(handler)
	handler = middleware.RequestID()(handler)

	return handler
}
