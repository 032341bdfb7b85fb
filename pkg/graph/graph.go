package graph

import (
	"fmt"
	"math"
	"sort"
)

// Edge is a weighted undirected edge between dense vertex indices.
// From == To is a self-loop.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Neighbor is one aggregated adjacency entry.
type Neighbor struct {
	V int
	W float64
}

// Graph is an immutable weighted undirected graph built once per
// clustering pass. Parallel edges are summed during construction, and
// self-loop weight is tracked per vertex separately from the adjacency.
type Graph struct {
	adjacency []map[int]float64 // vertex -> neighbor -> summed weight, no self entries
	sorted    [][]Neighbor      // adjacency in ascending neighbor order
	selfLoop  []float64         // vertex -> summed self-loop weight
	strength  []float64         // vertex -> sum of incident weights including self-loop
	// totalWeight counts every non-loop edge twice (once per endpoint)
	// and every self-loop once, matching the quality function's 2m term.
	totalWeight float64
	edgePairs   int
}

// NewGraph builds a graph with n vertices from a weighted edge list.
// n = 0 with no edges is valid and yields an empty graph.
func NewGraph(n int, edges []Edge) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("vertex count must be non-negative, got %d", n)
	}

	g := &Graph{
		adjacency: make([]map[int]float64, n),
		selfLoop:  make([]float64, n),
		strength:  make([]float64, n),
	}
	for i := range g.adjacency {
		g.adjacency[i] = make(map[int]float64)
	}

	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("edge (%d, %d) references vertex outside [0, %d)", e.From, e.To, n)
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return nil, fmt.Errorf("edge (%d, %d) has non-finite weight", e.From, e.To)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("edge (%d, %d) has negative weight %v", e.From, e.To, e.Weight)
		}

		if e.From == e.To {
			g.selfLoop[e.From] += e.Weight
			g.strength[e.From] += e.Weight
			g.totalWeight += e.Weight
			continue
		}

		if _, seen := g.adjacency[e.From][e.To]; !seen {
			g.edgePairs++
		}
		g.adjacency[e.From][e.To] += e.Weight
		g.adjacency[e.To][e.From] += e.Weight
		g.strength[e.From] += e.Weight
		g.strength[e.To] += e.Weight
		g.totalWeight += 2 * e.Weight
	}

	g.sorted = make([][]Neighbor, n)
	for v, adj := range g.adjacency {
		list := make([]Neighbor, 0, len(adj))
		for u, w := range adj {
			list = append(list, Neighbor{V: u, W: w})
		}
		sort.Slice(list, func(i, j int) bool { return list[i].V < list[j].V })
		g.sorted[v] = list
	}

	return g, nil
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	return len(g.adjacency)
}

// EdgePairCount returns the number of distinct vertex pairs with at least
// one edge between them (self-loops excluded).
func (g *Graph) EdgePairCount() int {
	return g.edgePairs
}

// TotalWeight returns the graph's total weight with non-loop edges counted
// twice and self-loops counted once. Equals the sum of all strengths.
func (g *Graph) TotalWeight() float64 {
	return g.totalWeight
}

// Strength returns the sum of incident edge weights for a vertex,
// including its self-loop weight.
func (g *Graph) Strength(v int) float64 {
	return g.strength[v]
}

// SelfWeight returns the summed self-loop weight of a vertex.
func (g *Graph) SelfWeight(v int) float64 {
	return g.selfLoop[v]
}

// Neighbors returns the aggregated (neighbor, weight) adjacency of a
// vertex. The returned map is owned by the graph and must not be mutated.
func (g *Graph) Neighbors(v int) map[int]float64 {
	return g.adjacency[v]
}

// SortedNeighbors returns the adjacency of a vertex in ascending
// neighbor order. Accumulating weights in this fixed order keeps
// repeated runs bit-for-bit identical. The returned slice is owned by
// the graph and must not be mutated.
func (g *Graph) SortedNeighbors(v int) []Neighbor {
	return g.sorted[v]
}

// Degree returns the number of distinct neighbors of a vertex.
func (g *Graph) Degree(v int) int {
	return len(g.adjacency[v])
}
