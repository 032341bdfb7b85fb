package graph

// Interner maps opaque external vertex identifiers to dense integer
// indices in first-seen order. The mapping is a bijection for the
// lifetime of one invocation, so reverse lookups are exact.
type Interner struct {
	indexOf map[string]int
	ids     []string
}

// NewInterner creates an empty interner.
func NewInterner() *Interner {
	return &Interner{
		indexOf: make(map[string]int),
	}
}

// Intern returns the dense index for an identifier, assigning the next
// free index on first sight.
func (in *Interner) Intern(id string) int {
	if idx, ok := in.indexOf[id]; ok {
		return idx
	}
	idx := len(in.ids)
	in.indexOf[id] = idx
	in.ids = append(in.ids, id)
	return idx
}

// Lookup returns the original identifier for a dense index.
func (in *Interner) Lookup(idx int) string {
	return in.ids[idx]
}

// Len returns the number of distinct identifiers seen.
func (in *Interner) Len() int {
	return len(in.ids)
}
