package graph

import "sync"

type registryKey struct {
	label string
	name  string
}

// Registry resolves entity mentions to stable node ids. The pair
// (label, canonicalName) identifies exactly one node; two labels may share a
// canonical name without colliding. The Registry is the sanctioned way for
// application code to create entity nodes; calling Store.AddNode directly
// bypasses deduplication.
//
// Resolution is a pure memoization layer with no update or eviction path:
// once a key maps to a node id, that mapping is permanent for the store's
// lifetime.
type Registry struct {
	mu    sync.Mutex
	ids   map[registryKey]NodeID
	store *Store
}

// NewRegistry creates a Registry resolving into the given store.
func NewRegistry(store *Store) *Registry {
	return &Registry{
		ids:   make(map[registryKey]NodeID),
		store: store,
	}
}

// Resolve returns the node id for (label, canonicalName), creating the node
// on first sight. New nodes carry the given properties plus canonical_name;
// on a hit the existing node is returned untouched and props are ignored.
// The registry's own lock makes the lookup-then-create atomic, so concurrent
// identical misses cannot create two nodes.
func (r *Registry) Resolve(label, canonicalName string, props Properties) NodeID {
	id, _ := r.ResolveCreated(label, canonicalName, props)
	return id
}

// ResolveCreated is Resolve plus an exact report of whether this call created
// the node. The check and the create happen under one lock, so among
// concurrent identical calls exactly one reports true.
func (r *Registry) ResolveCreated(label, canonicalName string, props Properties) (NodeID, bool) {
	key := registryKey{label: label, name: canonicalName}

	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.ids[key]; ok {
		return id, false
	}

	nodeProps := props.Clone()
	nodeProps[CanonicalNameKey] = StringValue(canonicalName)
	id := r.store.AddNode(label, nodeProps)
	r.ids[key] = id
	return id, true
}

// Lookup returns the node id for a key already resolved, without creating
// anything.
func (r *Registry) Lookup(label, canonicalName string) (NodeID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.ids[registryKey{label: label, name: canonicalName}]
	return id, ok
}

// Size returns the number of distinct keys resolved so far.
func (r *Registry) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ids)
}
