package leiden

import (
	"github.com/dd0wney/cluso-leiden/pkg/graph"
)

// localMove greedily reassigns vertices to their best-gain neighboring
// community until no strictly positive single-vertex move remains.
// Vertices start queued in index order; moving a vertex re-queues its
// settled neighbors, whose best move may have changed. Terminates because
// quality is bounded above and strictly increases on every accepted move.
// Returns the number of accepted moves.
func localMove(g *graph.Graph, p *Partition, resolution float64) int {
	n := g.VertexCount()
	queue := make([]int, n, 2*n)
	queued := make([]bool, n)
	for v := 0; v < n; v++ {
		queue[v] = v
		queued[v] = true
	}

	moves := 0
	weights := make(map[int]float64)

	for head := 0; head < len(queue); head++ {
		v := queue[head]
		queued[v] = false

		cur := p.Label(v)
		clear(weights)
		for _, nb := range g.SortedNeighbors(v) {
			weights[p.Label(nb.V)] += nb.W
		}
		kCur := weights[cur]

		// Candidates are the neighbors' communities; staying put has
		// gain 0. Ties break to the lowest community label.
		best := -1
		bestGain := 0.0
		for c, kvc := range weights {
			if c == cur {
				continue
			}
			gain := p.moveGain(v, c, kvc, kCur, resolution)
			if gain > bestGain || (gain == bestGain && best != -1 && c < best) {
				best = c
				bestGain = gain
			}
		}

		// Splitting off into an empty community is also a candidate.
		// Without it a community whose internal connectivity has eroded
		// could survive convergence.
		if tw := g.TotalWeight(); tw > 0 {
			k := g.Strength(v)
			aCur := p.CommunityTotal(cur) - k
			if splitGain := resolution*k*aCur/tw - kCur; splitGain > bestGain {
				best = p.FreeLabel()
				bestGain = splitGain
			}
		}

		if best == -1 || bestGain <= 0 {
			continue
		}

		p.Move(v, best)
		moves++

		for _, nb := range g.SortedNeighbors(v) {
			if !queued[nb.V] {
				queue = append(queue, nb.V)
				queued[nb.V] = true
			}
		}
	}

	return moves
}
