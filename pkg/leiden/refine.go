package leiden

import (
	"math/rand"
	"sort"

	"github.com/dd0wney/cluso-leiden/pkg/graph"
)

// refine rebuilds each community of p as a set of connected
// sub-communities. Every vertex starts in its own singleton
// sub-community; vertices still in singletons are merged into
// sub-communities of the same parent community, selected at random with
// probability proportional to quality gain among the positive-gain
// candidates. A positive gain requires positive adjacency, so every
// resulting sub-community is connected by construction.
func refine(g *graph.Graph, p *Partition, resolution float64, rng *rand.Rand) *Partition {
	sub := NewSingletonPartition(g)
	tw := g.TotalWeight()
	if tw == 0 {
		return sub
	}

	weights := make(map[int]float64)

	for _, members := range p.Communities() {
		if len(members) < 2 {
			continue
		}

		order := append([]int(nil), members...)
		rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})

		for _, v := range order {
			// Only vertices still alone may initiate a merge; moving a
			// vertex out of a grown sub-community could disconnect it.
			if sub.CommunitySize(sub.Label(v)) > 1 {
				continue
			}

			parent := p.Label(v)
			clear(weights)
			for _, nb := range g.SortedNeighbors(v) {
				if p.Label(nb.V) != parent {
					continue
				}
				if c := sub.Label(nb.V); c != sub.Label(v) {
					weights[c] += nb.W
				}
			}
			if len(weights) == 0 {
				continue
			}

			// Deterministic candidate order for the weighted draw.
			candidates := make([]int, 0, len(weights))
			for c := range weights {
				candidates = append(candidates, c)
			}
			sort.Ints(candidates)

			k := g.Strength(v)
			gains := make([]float64, 0, len(candidates))
			var total float64
			for _, c := range candidates {
				gain := weights[c] - resolution*k*sub.CommunityTotal(c)/tw
				if gain > 0 {
					total += gain
				} else {
					gain = 0
				}
				gains = append(gains, gain)
			}
			if total <= 0 {
				continue
			}

			// Weighted draw; the final positive candidate absorbs any
			// floating-point remainder.
			r := rng.Float64() * total
			chosen := -1
			for i, c := range candidates {
				if gains[i] == 0 {
					continue
				}
				chosen = c
				r -= gains[i]
				if r <= 0 {
					break
				}
			}
			sub.Move(v, chosen)
		}
	}

	return sub
}
