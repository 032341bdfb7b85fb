package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-leiden/pkg/envelope"
)

func newTestServer(t *testing.T, options ...ServerOption) *httptest.Server {
	t.Helper()
	srv := NewServer(0, options...)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postDetect(t *testing.T, ts *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(ts.URL+"/detect", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestDetect_TwoTriangles(t *testing.T) {
	ts := newTestServer(t)

	resp := postDetect(t, ts, `{
		"edges": [
			["a","b"], ["b","c"], ["a","c"],
			["d","e"], ["e","f"], ["d","f"],
			["c","d", 0.1]
		]
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result envelope.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	assert.Len(t, result.Communities, 2)
	assert.Equal(t, 6, result.Stats.VertexCount)
	assert.Equal(t, 2, result.Stats.CommunityCount)
	for _, c := range result.Communities {
		assert.Equal(t, 0, c.Level)
	}
}

func TestDetect_EmptyEdges(t *testing.T) {
	ts := newTestServer(t)

	resp := postDetect(t, ts, `{"edges": []}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result envelope.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Empty(t, result.Communities)
}

func TestDetect_InvalidInput(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{broken`},
		{"negative weight", `{"edges": [["a","b",-2]]}`},
		{"bad edge shape", `{"edges": [["a"]]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postDetect(t, ts, tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var errResp ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
			assert.Equal(t, http.StatusBadRequest, errResp.Code)
			assert.NotEmpty(t, errResp.Message)
		})
	}
}

func TestDetect_MethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/detect")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestDetect_BodyTooLarge(t *testing.T) {
	ts := newTestServer(t, WithMaxBodyBytes(16))

	var big bytes.Buffer
	big.WriteString(`{"edges": [`)
	for i := 0; i < 100; i++ {
		if i > 0 {
			big.WriteString(",")
		}
		big.WriteString(`["a","b"]`)
	}
	big.WriteString(`]}`)

	resp := postDetect(t, ts, big.String())
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestDetect_RequestIDEchoed(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest("POST", ts.URL+"/detect", strings.NewReader(`{"edges": [["a","b"]]}`))
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "trace-42")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "trace-42", resp.Header.Get("X-Request-ID"))
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "ok", health.Status)
	assert.NotEmpty(t, health.Version)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	// Generate one detection so counters exist
	postDetect(t, ts, `{"edges": [["a","b"]]}`)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body bytes.Buffer
	_, err = body.ReadFrom(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, body.String(), "leiden_detections_total")
	assert.Contains(t, body.String(), "leiden_http_requests_total")
}

func TestDetect_Timeout(t *testing.T) {
	ts := newTestServer(t, WithRequestTimeout(time.Nanosecond))

	resp := postDetect(t, ts, `{"edges": [["a","b"],["b","c"],["a","c"]]}`)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
