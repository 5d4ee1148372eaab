package domain

// Registry is the request-scoped log of script registrations.
// It holds two append-only collections: resolved library ids and legacy names that
// bypass the catalog. A Registry belongs to exactly one request cycle and is not safe
// for concurrent use.
type Registry struct {
	requests []LibraryID
	legacy   []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Enqueue records a request for a resolved library id.
// Repeated ids are kept; they collapse during resolution.
func (r *Registry) Enqueue(id LibraryID) {
	r.requests = append(r.requests, id)
}

// EnqueueLegacy records a request for a legacy script bundle by name.
func (r *Registry) EnqueueLegacy(name string) {
	r.legacy = append(r.legacy, name)
}

// Requests returns a copy of the resolved-id log in insertion order.
func (r *Registry) Requests() []LibraryID {
	out := make([]LibraryID, len(r.requests))
	copy(out, r.requests)
	return out
}

// DrainLegacy returns the legacy names in first-appearance order, collapsing
// duplicates, and clears them from the registry.
func (r *Registry) DrainLegacy() []string {
	seen := make(map[string]struct{}, len(r.legacy))
	out := make([]string, 0, len(r.legacy))
	for _, name := range r.legacy {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	r.legacy = nil
	return out
}

// Len returns the number of pending registrations of both kinds.
func (r *Registry) Len() int {
	return len(r.requests) + len(r.legacy)
}
