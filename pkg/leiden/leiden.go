// Package leiden implements the Leiden community detection algorithm:
// iterative local moving, refinement, and aggregation passes over a
// weighted undirected graph. Unlike plain Louvain, the refinement phase
// guarantees every returned community is internally connected.
package leiden

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/dd0wney/cluso-leiden/pkg/graph"
)

// Detect runs Leiden community detection on the graph.
// The computation is single-threaded and deterministic for a fixed graph,
// resolution, iteration budget, and seed.
func Detect(g *graph.Graph, opts Options) (*Result, error) {
	if math.IsNaN(opts.Resolution) || math.IsInf(opts.Resolution, 0) || opts.Resolution < 0 {
		return nil, fmt.Errorf("resolution must be a non-negative finite number, got %v", opts.Resolution)
	}

	n := g.VertexCount()
	if n == 0 {
		return &Result{Communities: [][]int{}, Membership: []int{}}, nil
	}

	rng := rand.New(rand.NewSource(opts.RandomSeed))

	// members maps each vertex of the current (possibly aggregated)
	// graph back to the invocation's original vertices; labels holds the
	// local-moving label propagated to the output, per pass.
	members := make([][]int, n)
	for v := 0; v < n; v++ {
		members[v] = []int{v}
	}
	labels := make([]int, n)
	for v := range labels {
		labels[v] = -1
	}

	cur := g
	part := NewSingletonPartition(cur)
	passes := 0

	for {
		passes++
		localMove(cur, part, opts.Resolution)

		for j, vs := range members {
			for _, v := range vs {
				labels[v] = part.Label(j)
			}
		}

		if opts.MaxIterations > 0 && passes >= opts.MaxIterations {
			break
		}

		refined := refine(cur, part, opts.Resolution, rng)
		agg, err := aggregate(cur, refined, part, members)
		if err != nil {
			return nil, err
		}

		// No merging happened: the partition can no longer change.
		if agg.graph.VertexCount() == cur.VertexCount() {
			break
		}

		cur = agg.graph
		members = agg.members
		part = NewPartitionFromLabels(cur, agg.seed)
	}

	for v, c := range labels {
		if c < 0 {
			return nil, fmt.Errorf("%w: vertex %d has no community after final pass", ErrInternal, v)
		}
	}

	final := NewPartitionFromLabels(g, labels)
	groups := final.Communities()

	membership := make([]int, n)
	for i, group := range groups {
		for _, v := range group {
			membership[v] = i
		}
	}

	return &Result{
		Communities: groups,
		Membership:  membership,
		Quality:     final.Quality(opts.Resolution),
		Passes:      passes,
	}, nil
}
