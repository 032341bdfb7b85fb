package api

import (
	"time"

	"github.com/dd0wney/cluso-leiden/pkg/leiden"
	"github.com/dd0wney/cluso-leiden/pkg/logging"
	"github.com/dd0wney/cluso-leiden/pkg/metrics"
)

// Server represents the HTTP API server
type Server struct {
	opts            leiden.Options
	logger          logging.Logger
	metricsRegistry *metrics.Registry
	startTime       time.Time
	version         string
	port            int
	maxBodyBytes    int64
	requestTimeout  time.Duration
}

// ServerOption configures a Server
type ServerOption func(*Server)

// WithLogger sets the structured logger
func WithLogger(logger logging.Logger) ServerOption {
	return func(s *Server) { s.logger = logger }
}

// WithMetrics sets the metrics registry
func WithMetrics(registry *metrics.Registry) ServerOption {
	return func(s *Server) { s.metricsRegistry = registry }
}

// WithDetectionOptions sets the default detection options applied to
// requests that do not override them.
func WithDetectionOptions(opts leiden.Options) ServerOption {
	return func(s *Server) { s.opts = opts }
}

// WithMaxBodyBytes caps the accepted request body size
func WithMaxBodyBytes(n int64) ServerOption {
	return func(s *Server) { s.maxBodyBytes = n }
}

// WithRequestTimeout bounds the total time spent on one detection request
func WithRequestTimeout(d time.Duration) ServerOption {
	return func(s *Server) { s.requestTimeout = d }
}

// ErrorResponse is the JSON error body
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// HealthResponse is the JSON body of GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}
