package envelope

import (
	"bytes"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-leiden/pkg/leiden"
)

func decodeString(t *testing.T, s string) *Request {
	t.Helper()
	req, err := DecodeRequest(strings.NewReader(s))
	require.NoError(t, err)
	return req
}

func TestDecodeRequest_InvalidJSON(t *testing.T) {
	_, err := DecodeRequest(strings.NewReader("{not json"))
	require.Error(t, err)

	var inputErr *InputError
	assert.True(t, errors.As(err, &inputErr))
}

func TestProcess_TwoTriangles(t *testing.T) {
	req := decodeString(t, `{
		"edges": [
			["a","b"], ["b","c"], ["a","c"],
			["d","e"], ["e","f"], ["d","f"],
			["c","d", 0.1]
		]
	}`)

	resp, err := Process(req, leiden.DefaultOptions())
	require.NoError(t, err)

	require.Len(t, resp.Communities, 2)
	for _, c := range resp.Communities {
		assert.Equal(t, 0, c.Level)
		assert.Len(t, c.EntityIDs, 3)
	}

	var all []string
	for _, c := range resp.Communities {
		all = append(all, c.EntityIDs...)
	}
	sort.Strings(all)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, all)

	assert.Equal(t, 6, resp.Stats.VertexCount)
	assert.Equal(t, 7, resp.Stats.EdgeCount)
	assert.Equal(t, 2, resp.Stats.CommunityCount)
}

func TestProcess_EmptyEdges(t *testing.T) {
	req := decodeString(t, `{"edges": []}`)

	resp, err := Process(req, leiden.DefaultOptions())
	require.NoError(t, err)

	assert.Empty(t, resp.Communities)
	assert.Equal(t, Stats{}, resp.Stats)
}

func TestProcess_MissingEdgesField(t *testing.T) {
	req := decodeString(t, `{}`)

	resp, err := Process(req, leiden.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, resp.Communities)
}

func TestProcess_SingleEdge(t *testing.T) {
	req := decodeString(t, `{"edges": [["a","b"]]}`)

	resp, err := Process(req, leiden.DefaultOptions())
	require.NoError(t, err)

	require.Len(t, resp.Communities, 1)
	assert.Equal(t, []string{"a", "b"}, resp.Communities[0].EntityIDs)
	assert.Equal(t, 2, resp.Stats.VertexCount)
	assert.Equal(t, 1, resp.Stats.EdgeCount)
}

func TestProcess_NumericAndNullWeights(t *testing.T) {
	// 42 and 42.0 are the same vertex; null weight defaults to 1.0
	req := decodeString(t, `{"edges": [[1, 2, null], [2, 42, 2.5], [42.0, 1]]}`)

	resp, err := Process(req, leiden.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Stats.VertexCount)

	var all []string
	for _, c := range resp.Communities {
		all = append(all, c.EntityIDs...)
	}
	sort.Strings(all)
	assert.Equal(t, []string{"1", "2", "42"}, all)
}

func TestProcess_ResolutionOverride(t *testing.T) {
	// At a low enough resolution the bridged triangles merge.
	body := `{
		"edges": [
			["a","b"], ["b","c"], ["a","c"],
			["d","e"], ["e","f"], ["d","f"],
			["c","d"]
		],
		"resolution": 0.1
	}`
	resp, err := Process(decodeString(t, body), leiden.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Stats.CommunityCount)
}

func TestProcess_IterationBudget(t *testing.T) {
	req := decodeString(t, `{"edges": [["a","b"],["b","c"],["a","c"]], "n_iterations": 1}`)

	resp, err := Process(req, leiden.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Stats.CommunityCount)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative weight", `{"edges": [["a","b",-1]]}`},
		{"nan weight via string", `{"edges": [["a","b","heavy"]]}`},
		{"short edge", `{"edges": [["a"]]}`},
		{"long edge", `{"edges": [["a","b",1,2]]}`},
		{"bool identifier", `{"edges": [[true,"b"]]}`},
		{"object identifier", `{"edges": [[{"id":1},"b"]]}`},
		{"negative resolution", `{"edges": [["a","b"]], "resolution": -0.5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := decodeString(t, tt.body)
			_, err := Process(req, leiden.DefaultOptions())
			require.Error(t, err)

			var inputErr *InputError
			assert.True(t, errors.As(err, &inputErr), "expected InputError, got %T: %v", err, err)
		})
	}
}

func TestEncodeError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeError(&buf, errors.New("boom")))
	assert.JSONEq(t, `{"error":"boom"}`, buf.String())
}

func TestIdentifierString(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"node-1", "node-1"},
		{float64(7), "7"},
		{7.0, "7"},
		{2.5, "2.5"},
		{-3.0, "-3"},
	}
	for _, tt := range tests {
		got, err := identifierString(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
