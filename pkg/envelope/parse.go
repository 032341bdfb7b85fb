package envelope

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/dd0wney/cluso-leiden/pkg/graph"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// MaxEdges caps the number of edges accepted in one request
	MaxEdges = 5_000_000
)

func init() {
	validate = validator.New()
}

// Validate checks the envelope shape: struct tags first, then the
// per-edge checks the tags cannot express.
func (req *Request) Validate() error {
	if req == nil {
		return &InputError{Reason: "request cannot be nil"}
	}

	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}

	if len(req.Edges) > MaxEdges {
		return inputErrorf("edges: maximum %d edges allowed, got %d", MaxEdges, len(req.Edges))
	}

	if req.Resolution != nil {
		r := *req.Resolution
		if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
			return inputErrorf("resolution: must be a finite non-negative number, got %v", r)
		}
	}

	for i, e := range req.Edges {
		if len(e) < 2 || len(e) > 3 {
			return inputErrorf("edges[%d]: expected [source, target] or [source, target, weight], got %d elements", i, len(e))
		}
		if _, err := identifierString(e[0]); err != nil {
			return inputErrorf("edges[%d]: source %v", i, err)
		}
		if _, err := identifierString(e[1]); err != nil {
			return inputErrorf("edges[%d]: target %v", i, err)
		}
		if len(e) == 3 {
			if _, err := edgeWeight(e[2]); err != nil {
				return inputErrorf("edges[%d]: %v", i, err)
			}
		}
	}

	return nil
}

// BuildGraph interns the edge identifiers in first-seen order and
// assembles the weighted graph. Validate must have passed.
func (req *Request) BuildGraph() (*graph.Graph, *graph.Interner, error) {
	interner := graph.NewInterner()
	edges := make([]graph.Edge, 0, len(req.Edges))

	for i, e := range req.Edges {
		src, err := identifierString(e[0])
		if err != nil {
			return nil, nil, inputErrorf("edges[%d]: source %v", i, err)
		}
		tgt, err := identifierString(e[1])
		if err != nil {
			return nil, nil, inputErrorf("edges[%d]: target %v", i, err)
		}

		weight := 1.0
		if len(e) == 3 {
			weight, err = edgeWeight(e[2])
			if err != nil {
				return nil, nil, inputErrorf("edges[%d]: %v", i, err)
			}
		}

		edges = append(edges, graph.Edge{
			From:   interner.Intern(src),
			To:     interner.Intern(tgt),
			Weight: weight,
		})
	}

	g, err := graph.NewGraph(interner.Len(), edges)
	if err != nil {
		return nil, nil, &InputError{Reason: err.Error()}
	}
	return g, interner, nil
}

// identifierString canonicalizes an edge endpoint. Strings pass
// through; JSON numbers render without a trailing ".0" when integral,
// so 42 and 42.0 name the same vertex.
func identifierString(v any) (string, error) {
	switch id := v.(type) {
	case string:
		return id, nil
	case float64:
		if id == math.Trunc(id) && !math.IsInf(id, 0) && math.Abs(id) < 1e15 {
			return strconv.FormatInt(int64(id), 10), nil
		}
		return strconv.FormatFloat(id, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("identifier must be a string or number, got %T", v)
	}
}

// edgeWeight parses the optional third edge element. Null means the
// default weight of 1.0.
func edgeWeight(v any) (float64, error) {
	if v == nil {
		return 1.0, nil
	}
	w, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("weight must be a number or null, got %T", v)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, fmt.Errorf("weight must be finite, got %v", w)
	}
	if w < 0 {
		return 0, fmt.Errorf("weight must be non-negative, got %v", w)
	}
	return w, nil
}

// formatValidationError converts validator errors to user-friendly messages
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &InputError{Reason: err.Error()}
	}

	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "min":
			return inputErrorf("%s: must have at least %s elements", field, param)
		case "max":
			return inputErrorf("%s: must not exceed %s elements", field, param)
		case "gte":
			return inputErrorf("%s: must be at least %s", field, param)
		default:
			return inputErrorf("%s: validation failed (%s)", field, tag)
		}
	}

	return &InputError{Reason: err.Error()}
}
