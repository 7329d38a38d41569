package graph

// NodeID identifies a node within a single Store. Ids are assigned
// monotonically by AddNode and never reused.
type NodeID uint64

// EdgeID identifies an edge within a single Store. Edge ids are supplied by
// the caller; the store enforces uniqueness but does not allocate them.
type EdgeID uint64

// CanonicalNameKey is the property the Registry stamps onto every node it
// creates. Callers render path results by reading it back.
const CanonicalNameKey = "canonical_name"

// Node is a vertex in the knowledge graph: an entity category label plus a
// free-form property map. Nodes are created once and never deleted.
type Node struct {
	ID         NodeID     `json:"id"`
	Label      string     `json:"label"`
	Properties Properties `json:"properties,omitempty"`
}

// Edge is a directed, labeled relationship between two nodes. Self-loops are
// permitted. Both endpoints must exist in the store at insertion time.
type Edge struct {
	ID         EdgeID     `json:"id"`
	SourceID   NodeID     `json:"source_id"`
	TargetID   NodeID     `json:"target_id"`
	Label      string     `json:"label"`
	Properties Properties `json:"properties,omitempty"`
}
