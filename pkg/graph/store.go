package graph

import (
	"fmt"
	"sync"
)

// Store is the in-memory owner of all nodes, edges, and the bidirectional
// adjacency index. All structural mutations are serialized behind a writer
// lock; reads run concurrently and never observe a partially applied
// mutation. The store performs no I/O and every operation is bounded by the
// current graph size.
//
// Lookups hand out copies, never references into the arena, so callers cannot
// alias internal state.
type Store struct {
	mu sync.RWMutex

	nodes map[NodeID]*Node
	edges map[EdgeID]*Edge

	// Adjacency sequences keep edge-insertion order. That order decides
	// tie-breaking between equal-length paths in FindPath.
	outgoing map[NodeID][]EdgeID
	incoming map[NodeID][]EdgeID

	nextNodeID NodeID
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		nodes:    make(map[NodeID]*Node),
		edges:    make(map[EdgeID]*Edge),
		outgoing: make(map[NodeID][]EdgeID),
		incoming: make(map[NodeID][]EdgeID),
	}
}

// AddNode allocates the next node id, stores the record, and returns the id.
// It always succeeds and never deduplicates; entity deduplication is the
// Registry's job, layered above.
func (s *Store) AddNode(label string, props Properties) NodeID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextNodeID++
	id := s.nextNodeID
	s.nodes[id] = &Node{
		ID:         id,
		Label:      label,
		Properties: props.Clone(),
	}
	return id
}

// AddEdge inserts a directed edge and appends its id to both adjacency
// sequences. It fails with ErrDanglingReference when either endpoint is
// unknown and with ErrDuplicateID when the edge id is taken. A failed call
// leaves the store exactly as it was.
func (s *Store) AddEdge(id EdgeID, source, target NodeID, label string, props Properties) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.nodes[source]; !ok {
		return fmt.Errorf("add edge %d: source node %d: %w", id, source, ErrDanglingReference)
	}
	if _, ok := s.nodes[target]; !ok {
		return fmt.Errorf("add edge %d: target node %d: %w", id, target, ErrDanglingReference)
	}
	if _, ok := s.edges[id]; ok {
		return fmt.Errorf("add edge %d: %w", id, ErrDuplicateID)
	}

	s.edges[id] = &Edge{
		ID:         id,
		SourceID:   source,
		TargetID:   target,
		Label:      label,
		Properties: props.Clone(),
	}
	s.outgoing[source] = append(s.outgoing[source], id)
	s.incoming[target] = append(s.incoming[target], id)
	return nil
}

// GetNode returns a copy of the node and true, or a zero Node and false when
// the id is unknown. Absence is a normal outcome, not an error.
func (s *Store) GetNode(id NodeID) (Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nodes[id]
	if !ok {
		return Node{}, false
	}
	return Node{ID: n.ID, Label: n.Label, Properties: n.Properties.Clone()}, true
}

// GetEdge returns a copy of the edge and true, or a zero Edge and false when
// the id is unknown.
func (s *Store) GetEdge(id EdgeID) (Edge, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.edges[id]
	if !ok {
		return Edge{}, false
	}
	return Edge{
		ID:         e.ID,
		SourceID:   e.SourceID,
		TargetID:   e.TargetID,
		Label:      e.Label,
		Properties: e.Properties.Clone(),
	}, true
}

// SetNodeProperty updates one property on a stored node. It reports false
// when the node does not exist. Writers are expected to coordinate; the store
// only guarantees the update is atomic with respect to readers.
func (s *Store) SetNodeProperty(id NodeID, key string, value PropertyValue) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.nodes[id]
	if !ok {
		return false
	}
	if n.Properties == nil {
		n.Properties = make(Properties)
	}
	n.Properties[key] = value
	return true
}

// Outgoing returns the edge ids leaving the node in insertion order. Unknown
// nodes and nodes without edges both yield an empty slice.
func (s *Store) Outgoing(id NodeID) []EdgeID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEdgeIDs(s.outgoing[id])
}

// Incoming returns the edge ids entering the node in insertion order.
func (s *Store) Incoming(id NodeID) []EdgeID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEdgeIDs(s.incoming[id])
}

// NodeCount returns the number of stored nodes.
func (s *Store) NodeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}

// EdgeCount returns the number of stored edges.
func (s *Store) EdgeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.edges)
}

func cloneEdgeIDs(ids []EdgeID) []EdgeID {
	out := make([]EdgeID, len(ids))
	copy(out, ids)
	return out
}
