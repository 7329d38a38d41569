package common

import "netrca/pkg/graph"

// EntityMention is a raw occurrence of an entity produced by an extraction
// stage, prior to resolution into a stable graph node. Label is the entity
// category (e.g. "INTERFACE", "PROTOCOL_EVENT") and CanonicalName is the
// already-normalized deduplication key; case folding and alias resolution
// happen upstream, never in the graph store.
type EntityMention struct {
	Label         string           `json:"label"`
	CanonicalName string           `json:"canonical_name"`
	Properties    graph.Properties `json:"properties,omitempty"`
}

// RelationshipMention is a directed relationship between two entity mentions,
// identified by their (label, canonicalName) keys. The ingestion layer
// resolves both sides through the Registry before inserting an edge.
type RelationshipMention struct {
	SourceLabel string           `json:"source_label"`
	SourceName  string           `json:"source_name"`
	TargetLabel string           `json:"target_label"`
	TargetName  string           `json:"target_name"`
	Label       string           `json:"label"`
	Properties  graph.Properties `json:"properties,omitempty"`
}

// Unit is a contiguous, token-bounded segment of cleaned document text. Units
// are the extraction granularity: every mention traces back to the unit it
// was found in.
type Unit struct {
	ID         string `json:"id"`
	DocumentID string `json:"document_id"`
	Start      int    `json:"start"`
	End        int    `json:"end"`
	Text       string `json:"text"`
}

// Conditional is one structured if-then statement lifted out of prose:
// a trigger word, the condition it introduces, and the outcome that follows.
// Raw preserves the source sentence for provenance.
type Conditional struct {
	Raw       string `json:"raw"`
	Trigger   string `json:"trigger"`
	Condition string `json:"condition"`
	Outcome   string `json:"outcome"`
}

// Constraint is a negative-knowledge marker found in a unit: a prohibition,
// deprecation, or exception that downstream RCA reasoning must respect.
type Constraint struct {
	Type     string `json:"type"`
	Phrase   string `json:"phrase"`
	Critical bool   `json:"critical"`
}
