// Package envelope implements the JSON interface of the detection
// service: an input envelope of weighted edges plus tuning parameters,
// and an output envelope of community groupings with summary statistics.
package envelope

import (
	"encoding/json"
	"fmt"
	"io"
)

// Request is the input envelope. Each edge is a 2-element
// (source, target) or 3-element (source, target, weight) array;
// identifiers may be strings or numbers, and a null or absent weight
// defaults to 1.0.
type Request struct {
	Edges      [][]any  `json:"edges" validate:"omitempty,dive,min=2,max=3"`
	Resolution *float64 `json:"resolution" validate:"omitempty,gte=0"`
	Iterations *int     `json:"n_iterations"`
}

// Community is one detected grouping of original entity identifiers.
// Level is always 0: no hierarchy is exposed.
type Community struct {
	Level     int      `json:"level"`
	EntityIDs []string `json:"entity_ids"`
}

// Stats summarizes the processed graph
type Stats struct {
	VertexCount    int `json:"vertex_count"`
	EdgeCount      int `json:"edge_count"`
	CommunityCount int `json:"community_count"`
}

// Response is the output envelope. Passes and Quality describe the run
// for logging and metrics; they are not part of the wire format.
type Response struct {
	Communities []Community `json:"communities"`
	Stats       Stats       `json:"stats"`

	Passes  int     `json:"-"`
	Quality float64 `json:"-"`
}

// ErrorResponse is the error envelope handed to the collaborator
type ErrorResponse struct {
	Error string `json:"error"`
}

// InputError reports malformed input detected before any computation
// starts. It is never retried.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return e.Reason
}

func inputErrorf(format string, args ...any) error {
	return &InputError{Reason: fmt.Sprintf(format, args...)}
}

// DecodeRequest reads a request envelope from r.
func DecodeRequest(r io.Reader) (*Request, error) {
	var req Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, inputErrorf("invalid JSON input: %v", err)
	}
	return &req, nil
}

// EncodeResponse writes a response envelope to w.
func EncodeResponse(w io.Writer, resp *Response) error {
	return json.NewEncoder(w).Encode(resp)
}

// EncodeError writes an error envelope to w.
func EncodeError(w io.Writer, err error) error {
	return json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
}
