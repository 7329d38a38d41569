package graph

import (
	"errors"
	"reflect"
	"testing"
)

func TestAddNodeAssignsMonotonicIDs(t *testing.T) {
	s := NewStore()

	first := s.AddNode("PHYSICAL_EVENT", nil)
	second := s.AddNode("PHYSICAL_EVENT", nil)
	third := s.AddNode("PROTOCOL_EVENT", nil)

	if first >= second || second >= third {
		t.Errorf("ids not monotonic: %d, %d, %d", first, second, third)
	}
	if s.NodeCount() != 3 {
		t.Errorf("NodeCount() = %d, want 3", s.NodeCount())
	}
}

func TestAddNodeNeverDeduplicates(t *testing.T) {
	s := NewStore()
	props := Properties{CanonicalNameKey: StringValue("LINK_FAILURE")}

	a := s.AddNode("PHYSICAL_EVENT", props)
	b := s.AddNode("PHYSICAL_EVENT", props)

	if a == b {
		t.Error("AddNode deduplicated identical records, deduplication belongs to the Registry")
	}
}

func TestGetNodeReturnsCopy(t *testing.T) {
	s := NewStore()
	id := s.AddNode("INTERFACE_STATE", Properties{"state": StringValue("DOWN")})

	n, ok := s.GetNode(id)
	if !ok {
		t.Fatal("GetNode() reported node missing")
	}
	n.Properties["state"] = StringValue("UP")

	again, _ := s.GetNode(id)
	if got, _ := again.Properties["state"].AsString(); got != "DOWN" {
		t.Errorf("mutating a returned node leaked into the store: state = %q", got)
	}
}

func TestGetNodeMissing(t *testing.T) {
	s := NewStore()
	if _, ok := s.GetNode(99); ok {
		t.Error("GetNode() found a node in an empty store")
	}
}

func TestAddEdgeUpdatesAdjacency(t *testing.T) {
	s := NewStore()
	a := s.AddNode("PHYSICAL_EVENT", nil)
	b := s.AddNode("INTERFACE_STATE", nil)
	c := s.AddNode("PROTOCOL_EVENT", nil)

	if err := s.AddEdge(1, a, b, "CAUSES", nil); err != nil {
		t.Fatalf("AddEdge(1) error = %v", err)
	}
	if err := s.AddEdge(2, a, c, "CAUSES", nil); err != nil {
		t.Fatalf("AddEdge(2) error = %v", err)
	}

	if got := s.Outgoing(a); !reflect.DeepEqual(got, []EdgeID{1, 2}) {
		t.Errorf("Outgoing(a) = %v, want [1 2]", got)
	}
	if got := s.Incoming(b); !reflect.DeepEqual(got, []EdgeID{1}) {
		t.Errorf("Incoming(b) = %v, want [1]", got)
	}
	if got := s.Incoming(c); !reflect.DeepEqual(got, []EdgeID{2}) {
		t.Errorf("Incoming(c) = %v, want [2]", got)
	}
	if got := s.Outgoing(b); len(got) != 0 {
		t.Errorf("Outgoing(b) = %v, want empty", got)
	}
}

func TestAddEdgeSelfLoop(t *testing.T) {
	s := NewStore()
	a := s.AddNode("PROTOCOL_EVENT", nil)

	if err := s.AddEdge(1, a, a, "CAUSES", nil); err != nil {
		t.Fatalf("self-loop rejected: %v", err)
	}
	if got := s.Outgoing(a); !reflect.DeepEqual(got, []EdgeID{1}) {
		t.Errorf("Outgoing(a) = %v, want [1]", got)
	}
	if got := s.Incoming(a); !reflect.DeepEqual(got, []EdgeID{1}) {
		t.Errorf("Incoming(a) = %v, want [1]", got)
	}
}

func TestAddEdgeDanglingReference(t *testing.T) {
	s := NewStore()
	a := s.AddNode("PHYSICAL_EVENT", nil)

	tests := []struct {
		name   string
		source NodeID
		target NodeID
	}{
		{name: "missing target", source: a, target: 42},
		{name: "missing source", source: 42, target: a},
		{name: "both missing", source: 41, target: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.AddEdge(1, tt.source, tt.target, "CAUSES", nil)
			if !errors.Is(err, ErrDanglingReference) {
				t.Errorf("AddEdge() error = %v, want ErrDanglingReference", err)
			}
		})
	}
}

func TestAddEdgeDuplicateID(t *testing.T) {
	s := NewStore()
	a := s.AddNode("PHYSICAL_EVENT", nil)
	b := s.AddNode("INTERFACE_STATE", nil)

	if err := s.AddEdge(7, a, b, "CAUSES", nil); err != nil {
		t.Fatalf("AddEdge(7) error = %v", err)
	}
	err := s.AddEdge(7, b, a, "CAUSES", nil)
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("AddEdge() with reused id: error = %v, want ErrDuplicateID", err)
	}

	// The original edge must be untouched.
	e, ok := s.GetEdge(7)
	if !ok || e.SourceID != a || e.TargetID != b {
		t.Errorf("stored edge changed after rejected insert: %+v", e)
	}
}

func TestRejectedAddEdgeIsNonMutating(t *testing.T) {
	s := NewStore()
	a := s.AddNode("PHYSICAL_EVENT", nil)
	b := s.AddNode("INTERFACE_STATE", nil)
	if err := s.AddEdge(1, a, b, "CAUSES", nil); err != nil {
		t.Fatalf("AddEdge(1) error = %v", err)
	}

	nodesBefore, edgesBefore := s.NodeCount(), s.EdgeCount()
	outBefore, inBefore := s.Outgoing(a), s.Incoming(b)

	if err := s.AddEdge(2, a, 99, "CAUSES", nil); !errors.Is(err, ErrDanglingReference) {
		t.Fatalf("expected dangling reference, got %v", err)
	}

	if s.NodeCount() != nodesBefore || s.EdgeCount() != edgesBefore {
		t.Errorf("counts changed after rejected AddEdge: nodes %d->%d edges %d->%d",
			nodesBefore, s.NodeCount(), edgesBefore, s.EdgeCount())
	}
	if !reflect.DeepEqual(s.Outgoing(a), outBefore) {
		t.Errorf("Outgoing(a) changed after rejected AddEdge: %v -> %v", outBefore, s.Outgoing(a))
	}
	if !reflect.DeepEqual(s.Incoming(b), inBefore) {
		t.Errorf("Incoming(b) changed after rejected AddEdge: %v -> %v", inBefore, s.Incoming(b))
	}
	if _, ok := s.GetEdge(2); ok {
		t.Error("rejected edge was stored")
	}
}

func TestAdjacencyConsistency(t *testing.T) {
	s := NewStore()
	var nodes []NodeID
	for i := 0; i < 5; i++ {
		nodes = append(nodes, s.AddNode("CONCEPT", nil))
	}

	inserts := []struct {
		id       EdgeID
		from, to int
	}{
		{1, 0, 1}, {2, 0, 2}, {3, 1, 2}, {4, 2, 3}, {5, 3, 0}, {6, 4, 4},
	}
	for _, in := range inserts {
		if err := s.AddEdge(in.id, nodes[in.from], nodes[in.to], "CAUSES", nil); err != nil {
			t.Fatalf("AddEdge(%d) error = %v", in.id, err)
		}
	}

	// For every node the adjacency sequences must match exactly the set of
	// stored edges referencing it.
	for _, n := range nodes {
		for _, edgeID := range s.Outgoing(n) {
			e, ok := s.GetEdge(edgeID)
			if !ok || e.SourceID != n {
				t.Errorf("outgoing(%d) lists edge %d with source %d", n, edgeID, e.SourceID)
			}
		}
		for _, edgeID := range s.Incoming(n) {
			e, ok := s.GetEdge(edgeID)
			if !ok || e.TargetID != n {
				t.Errorf("incoming(%d) lists edge %d with target %d", n, edgeID, e.TargetID)
			}
		}
	}

	for _, in := range inserts {
		if !containsEdge(s.Outgoing(nodes[in.from]), in.id) {
			t.Errorf("edge %d missing from outgoing(%d)", in.id, nodes[in.from])
		}
		if !containsEdge(s.Incoming(nodes[in.to]), in.id) {
			t.Errorf("edge %d missing from incoming(%d)", in.id, nodes[in.to])
		}
	}
}

func TestSetNodeProperty(t *testing.T) {
	s := NewStore()
	id := s.AddNode("PROTOCOL_EVENT", nil)

	if !s.SetNodeProperty(id, "authority_score", FloatValue(1.0)) {
		t.Fatal("SetNodeProperty() reported node missing")
	}
	if s.SetNodeProperty(99, "authority_score", FloatValue(1.0)) {
		t.Error("SetNodeProperty() succeeded on unknown node")
	}

	n, _ := s.GetNode(id)
	if got, err := n.Properties["authority_score"].AsFloat(); err != nil || got != 1.0 {
		t.Errorf("authority_score = %v, %v", got, err)
	}
}

func containsEdge(ids []EdgeID, want EdgeID) bool {
	for _, id := range ids {
		if id == want {
			return true
		}
	}
	return false
}
