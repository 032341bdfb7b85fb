package leiden

// Options configures Leiden community detection
type Options struct {
	Resolution    float64 // Quality resolution γ; higher favors more, smaller communities
	MaxIterations int     // Driver passes; <= 0 runs to convergence
	RandomSeed    int64   // Seed for the refinement phase RNG
}

// DefaultOptions returns the default Leiden configuration
func DefaultOptions() Options {
	return Options{
		Resolution:    1.0,
		MaxIterations: -1,
		RandomSeed:    1,
	}
}

// Result contains detected communities over dense vertex indices
type Result struct {
	Communities [][]int // Community index -> member vertex indices
	Membership  []int   // Vertex index -> community index
	Quality     float64 // Quality of the final partition at the configured resolution
	Passes      int     // Number of driver passes performed
}
