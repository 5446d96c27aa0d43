package arith

// NameRegistry is an immutable, ordered set of names.
// Only membership is meaningful; order is kept for display.
type NameRegistry struct {
	names []string
	index map[string]struct{}
}

// NewNameRegistry builds a registry from names. The input slice is copied.
// Duplicates are kept once, at their first position.
func NewNameRegistry(names ...string) NameRegistry {
	r := NameRegistry{
		names: make([]string, 0, len(names)),
		index: make(map[string]struct{}, len(names)),
	}
	for _, n := range names {
		if _, dup := r.index[n]; dup {
			continue
		}
		r.index[n] = struct{}{}
		r.names = append(r.names, n)
	}
	return r
}

var defaultNames = NewNameRegistry("Ricardo", "Herminia", "Manuel", "Paula")

// DefaultNames returns the process-wide list of valid names.
func DefaultNames() NameRegistry {
	return defaultNames
}

// Contains reports whether name is in the registry. Matching is exact.
func (r NameRegistry) Contains(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Names returns a copy of the names in insertion order.
func (r NameRegistry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of names.
func (r NameRegistry) Len() int {
	return len(r.names)
}
