// File: registry.go
// Role: single bidirectional name <-> VertexID table.
//
// Invariant:
//   - ids[name] == id  <=>  names[id] == name, for every non-empty name.
//   - names has exactly one slot per allocated vertex; "" marks an unnamed vertex.

package core

// Registry keeps the name <-> id mapping of one graph. Both directions are
// updated by the same method, so they cannot drift apart.
//
// The zero value is ready to use.
type Registry struct {
	names []string            // id -> name ("" for unnamed)
	ids   map[string]VertexID // name -> id
}

// newRegistry returns a Registry pre-sized for n vertices.
func newRegistry(n int) Registry {
	return Registry{
		names: make([]string, 0, n),
		ids:   make(map[string]VertexID, n),
	}
}

// Register returns the id bound to name, allocating next if name is new.
// An empty name always allocates. The second result reports whether a new
// slot was allocated.
//
// Complexity: O(1) amortized.
func (r *Registry) Register(name string) (VertexID, bool) {
	if name != "" {
		if id, ok := r.ids[name]; ok {
			return id, false
		}
	}
	if r.ids == nil {
		r.ids = make(map[string]VertexID)
	}

	id := VertexID(len(r.names))
	r.names = append(r.names, name)
	if name != "" {
		r.ids[name] = id
	}

	return id, true
}

// Lookup returns the id registered for name.
func (r *Registry) Lookup(name string) (VertexID, bool) {
	if name == "" {
		return NoVertex, false
	}
	id, ok := r.ids[name]
	if !ok {
		return NoVertex, false
	}

	return id, true
}

// Name returns the name of id, or "" for unnamed or unknown ids.
func (r *Registry) Name(id VertexID) string {
	if id < 0 || int(id) >= len(r.names) {
		return ""
	}

	return r.names[id]
}

// Len returns the number of allocated ids, named or not.
func (r *Registry) Len() int { return len(r.names) }

// Named returns the number of ids that carry a name.
func (r *Registry) Named() int { return len(r.ids) }
