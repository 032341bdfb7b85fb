package envelope

import (
	"github.com/dd0wney/cluso-leiden/pkg/leiden"
)

// Process validates the request, runs detection, and assembles the
// response envelope. The base options supply defaults; resolution and
// n_iterations from the request override them when present.
func Process(req *Request, base leiden.Options) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	g, interner, err := req.BuildGraph()
	if err != nil {
		return nil, err
	}

	opts := base
	if req.Resolution != nil {
		opts.Resolution = *req.Resolution
	}
	if req.Iterations != nil {
		opts.MaxIterations = *req.Iterations
	}

	result, err := leiden.Detect(g, opts)
	if err != nil {
		return nil, err
	}

	communities := make([]Community, 0, len(result.Communities))
	for _, members := range result.Communities {
		ids := make([]string, len(members))
		for i, v := range members {
			ids[i] = interner.Lookup(v)
		}
		communities = append(communities, Community{Level: 0, EntityIDs: ids})
	}

	return &Response{
		Communities: communities,
		Stats: Stats{
			VertexCount:    interner.Len(),
			EdgeCount:      len(req.Edges),
			CommunityCount: len(communities),
		},
		Passes:  result.Passes,
		Quality: result.Quality,
	}, nil
}
