package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dd0wney/cluso-leiden/pkg/api/middleware"
	"github.com/dd0wney/cluso-leiden/pkg/envelope"
	"github.com/dd0wney/cluso-leiden/pkg/logging"
	"github.com/dd0wney/cluso-leiden/pkg/metrics"
)

// handleDetect runs community detection on the posted edge list.
// POST /detect
func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	logger := s.logger.With(logging.RequestID(middleware.GetRequestID(r)))

	req, err := envelope.DecodeRequest(r.Body)
	if err != nil {
		s.metricsRegistry.RecordDetectionFailure(metrics.StatusInputError)
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	start := time.Now()

	type outcome struct {
		resp *envelope.Response
		err  error
	}
	done := make(chan outcome, 1)
	go func() {
		resp, err := envelope.Process(req, s.opts)
		done <- outcome{resp, err}
	}()

	timedOut := func() {
		s.metricsRegistry.RecordDetectionFailure(metrics.StatusComputeError)
		logger.Error("detection aborted", logging.Error(ctx.Err()), logging.Edges(len(req.Edges)))
		s.respondError(w, http.StatusServiceUnavailable, "detection timed out")
	}

	// An already-expired deadline wins even when the result is ready
	select {
	case <-ctx.Done():
		timedOut()
		return
	default:
	}

	select {
	case <-ctx.Done():
		timedOut()

	case out := <-done:
		if out.err != nil {
			var inputErr *envelope.InputError
			if errors.As(out.err, &inputErr) {
				s.metricsRegistry.RecordDetectionFailure(metrics.StatusInputError)
				logger.Warn("rejected input", logging.Error(out.err))
				s.respondError(w, http.StatusBadRequest, out.err.Error())
				return
			}
			s.metricsRegistry.RecordDetectionFailure(metrics.StatusComputeError)
			logger.Error("detection failed", logging.Error(out.err))
			s.respondError(w, http.StatusInternalServerError, "community detection failed")
			return
		}

		resp := out.resp
		elapsed := time.Since(start)
		s.metricsRegistry.RecordDetection(metrics.StatusOK, elapsed,
			resp.Stats.VertexCount, resp.Stats.EdgeCount,
			resp.Stats.CommunityCount, resp.Passes)

		logger.Info("detection complete",
			logging.Vertices(resp.Stats.VertexCount),
			logging.Edges(resp.Stats.EdgeCount),
			logging.Communities(resp.Stats.CommunityCount),
			logging.Passes(resp.Passes),
			logging.Float64("quality", resp.Quality),
			logging.Latency(elapsed),
		)

		s.respondJSON(w, http.StatusOK, resp)
	}
}
