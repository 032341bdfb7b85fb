package leiden

import (
	"github.com/dd0wney/cluso-leiden/pkg/graph"
)

// Partition is a mutable assignment of vertices to community labels.
// Aggregate community statistics are maintained on every move so gain
// evaluation stays O(degree).
type Partition struct {
	g          *graph.Graph
	membership []int     // vertex -> community label
	commTotal  []float64 // label -> sum of member strengths
	commSize   []int     // label -> member count
	free       []int     // labels with zero members, validated lazily
}

// NewSingletonPartition places every vertex in its own community,
// labeled by its own index.
func NewSingletonPartition(g *graph.Graph) *Partition {
	n := g.VertexCount()
	p := &Partition{
		g:          g,
		membership: make([]int, n),
		commTotal:  make([]float64, n),
		commSize:   make([]int, n),
	}
	for v := 0; v < n; v++ {
		p.membership[v] = v
		p.commTotal[v] = g.Strength(v)
		p.commSize[v] = 1
	}
	return p
}

// NewPartitionFromLabels builds a partition from arbitrary integer
// labels, compacting them to dense labels in first-seen vertex order.
func NewPartitionFromLabels(g *graph.Graph, labels []int) *Partition {
	n := g.VertexCount()
	p := &Partition{
		g:          g,
		membership: make([]int, n),
		commTotal:  make([]float64, n),
		commSize:   make([]int, n),
	}

	compact := make(map[int]int, n)
	for v := 0; v < n; v++ {
		c, ok := compact[labels[v]]
		if !ok {
			c = len(compact)
			compact[labels[v]] = c
		}
		p.membership[v] = c
		p.commTotal[c] += g.Strength(v)
		p.commSize[c]++
	}
	return p
}

// Label returns the community label of a vertex.
func (p *Partition) Label(v int) int {
	return p.membership[v]
}

// CommunityTotal returns the sum of member strengths for a label.
func (p *Partition) CommunityTotal(c int) float64 {
	return p.commTotal[c]
}

// CommunitySize returns the member count for a label.
func (p *Partition) CommunitySize(c int) int {
	return p.commSize[c]
}

// Move reassigns a vertex to a community, updating aggregates in O(1).
func (p *Partition) Move(v, c int) {
	old := p.membership[v]
	if old == c {
		return
	}
	k := p.g.Strength(v)
	p.commTotal[old] -= k
	p.commSize[old]--
	if p.commSize[old] == 0 {
		p.free = append(p.free, old)
	}
	p.commTotal[c] += k
	p.commSize[c]++
	p.membership[v] = c
}

// FreeLabel returns a community label with no members, extending the
// label space when every existing label is occupied.
func (p *Partition) FreeLabel() int {
	for len(p.free) > 0 {
		c := p.free[len(p.free)-1]
		p.free = p.free[:len(p.free)-1]
		if p.commSize[c] == 0 {
			return c
		}
	}
	p.commTotal = append(p.commTotal, 0)
	p.commSize = append(p.commSize, 0)
	return len(p.commSize) - 1
}

// Communities groups vertices by label, ordered by the first vertex seen
// in each community, with members in ascending vertex order.
func (p *Partition) Communities() [][]int {
	order := make(map[int]int)
	var groups [][]int
	for v, c := range p.membership {
		i, ok := order[c]
		if !ok {
			i = len(groups)
			order[c] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], v)
	}
	return groups
}

// CommunityCount returns the number of non-empty communities.
func (p *Partition) CommunityCount() int {
	count := 0
	for _, size := range p.commSize {
		if size > 0 {
			count++
		}
	}
	return count
}
