package leiden

import (
	"fmt"
	"sort"

	"github.com/dd0wney/cluso-leiden/pkg/graph"
)

// aggregation is the collapsed graph for the next pass plus the
// bookkeeping needed to expand results back onto original vertices.
type aggregation struct {
	graph   *graph.Graph
	members [][]int // aggregated vertex -> original-invocation vertex indices
	seed    []int   // aggregated vertex -> local-moving label to start the next pass from
}

// aggregate collapses the refined partition into one vertex per
// sub-community. Edge weight between two aggregated vertices sums the
// crossing edge weights; an aggregated self-loop carries the internal
// weight (non-loop edges twice, member self-loops once), which preserves
// strengths and total weight across passes. The local-moving partition
// supplies each aggregated vertex's starting label for the next pass.
func aggregate(g *graph.Graph, refined, local *Partition, members [][]int) (*aggregation, error) {
	n := g.VertexCount()

	// Compact refined labels in first-seen vertex order.
	compact := make(map[int]int, n)
	component := make([]int, n)
	for v := 0; v < n; v++ {
		c, ok := compact[refined.Label(v)]
		if !ok {
			c = len(compact)
			compact[refined.Label(v)] = c
		}
		component[v] = c
	}
	m := len(compact)

	agg := &aggregation{
		members: make([][]int, m),
		seed:    make([]int, m),
	}
	for i := range agg.seed {
		agg.seed[i] = -1
	}

	selfWeight := make([]float64, m)
	type pair struct{ a, b int }
	crossing := make(map[pair]float64)

	for v := 0; v < n; v++ {
		j := component[v]
		agg.members[j] = append(agg.members[j], members[v]...)

		// Refinement only subdivides local-moving communities, so all
		// members of a sub-community must share one local label.
		if agg.seed[j] == -1 {
			agg.seed[j] = local.Label(v)
		} else if agg.seed[j] != local.Label(v) {
			return nil, fmt.Errorf("%w: refined community %d spans local-moving communities %d and %d",
				ErrInternal, j, agg.seed[j], local.Label(v))
		}

		selfWeight[j] += g.SelfWeight(v)
		for _, nb := range g.SortedNeighbors(v) {
			if nb.V <= v {
				continue
			}
			ju := component[nb.V]
			if ju == j {
				selfWeight[j] += 2 * nb.W
				continue
			}
			a, b := j, ju
			if a > b {
				a, b = b, a
			}
			crossing[pair{a, b}] += nb.W
		}
	}

	edges := make([]graph.Edge, 0, len(crossing)+m)
	for j, w := range selfWeight {
		if w > 0 {
			edges = append(edges, graph.Edge{From: j, To: j, Weight: w})
		}
	}
	pairs := make([]pair, 0, len(crossing))
	for pr := range crossing {
		pairs = append(pairs, pr)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].a != pairs[j].a {
			return pairs[i].a < pairs[j].a
		}
		return pairs[i].b < pairs[j].b
	})
	for _, pr := range pairs {
		edges = append(edges, graph.Edge{From: pr.a, To: pr.b, Weight: crossing[pr]})
	}

	collapsed, err := graph.NewGraph(m, edges)
	if err != nil {
		return nil, fmt.Errorf("%w: aggregated graph construction: %v", ErrInternal, err)
	}
	agg.graph = collapsed
	return agg, nil
}
