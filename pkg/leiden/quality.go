package leiden

// The objective is the constant-Potts-style quality used by the
// RB-configuration partition:
//
//	Q = Σ_c [ e_c − γ · a_c² / TW ] / TW
//
// where e_c is the internal weight of community c (non-loop internal
// edges counted twice, self-loops once), a_c is the sum of member
// strengths, and TW is the graph's total weight in the same convention.

// moveGain returns the change in (unnormalized) quality from moving a
// vertex out of its current community into a candidate, relative to
// staying put. kTo and kCur are the vertex's summed adjacency into the
// candidate and current communities; self-loops never contribute.
func (p *Partition) moveGain(v, to int, kTo, kCur float64, resolution float64) float64 {
	tw := p.g.TotalWeight()
	if tw == 0 {
		return 0
	}
	k := p.g.Strength(v)
	// v's own strength is excluded from the current community's total,
	// since the move removes it first.
	aCur := p.commTotal[p.membership[v]] - k
	aTo := p.commTotal[to]
	return (kTo - kCur) - resolution*k*(aTo-aCur)/tw
}

// Modularity returns the partition quality at resolution 1, the
// classic modularity score.
func (p *Partition) Modularity() float64 {
	return p.Quality(1.0)
}

// Quality evaluates the partition's quality at the given resolution.
func (p *Partition) Quality(resolution float64) float64 {
	tw := p.g.TotalWeight()
	if tw == 0 {
		return 0
	}

	var internal float64
	for v := 0; v < p.g.VertexCount(); v++ {
		c := p.membership[v]
		for _, nb := range p.g.SortedNeighbors(v) {
			if p.membership[nb.V] == c {
				internal += nb.W // counts each internal edge twice
			}
		}
		internal += p.g.SelfWeight(v)
	}

	var null float64
	for _, total := range p.commTotal {
		null += total * total
	}

	return (internal - resolution*null/tw) / tw
}
