package ingest

import (
	"context"
	"testing"

	"netrca/pkg/graph"
	"netrca/pkg/loader"
)

const failureChainText = "GigabitEthernet1/1 going down triggers %LINK-3-UPDOWN on the switch. " +
	"That alarm %LINK-3-UPDOWN results in %TCP-6-RETRANS spikes."

func newTestPipeline(t *testing.T) (*Pipeline, *graph.Store, *graph.Registry) {
	t.Helper()

	store := graph.NewStore()
	registry := graph.NewRegistry(store)
	pipeline, err := NewPipeline(NewPipelineParams{
		Store:             store,
		Registry:          registry,
		TokenEncoder:      "cl100k_base",
		ParallelDocuments: 2,
		DedupeSeed:        42,
	})
	if err != nil {
		t.Fatalf("NewPipeline() error = %v", err)
	}
	return pipeline, store, registry
}

func textDocument(id, source, text string) loader.Document {
	return loader.NewDocument(loader.NewDocumentParams{
		ID:        id,
		Source:    source,
		MaxTokens: 512,
		Loader:    &loader.BytesLoader{Data: []byte(text)},
	})
}

func TestPipelineProcessBuildsGraph(t *testing.T) {
	pipeline, store, registry := newTestPipeline(t)

	report, err := pipeline.Process(context.Background(), []loader.Document{
		textDocument("doc-1", "Internal KB-77", failureChainText),
	})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if report.Documents != 1 {
		t.Errorf("report.Documents = %d, want 1", report.Documents)
	}
	if report.Units != 1 {
		t.Errorf("report.Units = %d, want 1", report.Units)
	}
	if report.Nodes != 3 {
		t.Errorf("report.Nodes = %d, want 3", report.Nodes)
	}
	if report.Edges != 2 {
		t.Errorf("report.Edges = %d, want 2", report.Edges)
	}

	ifaceID, ok := registry.Lookup(EntityInterface, "GigabitEthernet1/1")
	if !ok {
		t.Fatal("interface node not registered")
	}
	linkID, ok := registry.Lookup(EntityErrorCode, "%LINK-3-UPDOWN")
	if !ok {
		t.Fatal("link alarm node not registered")
	}
	tcpID, ok := registry.Lookup(EntityErrorCode, "%TCP-6-RETRANS")
	if !ok {
		t.Fatal("retransmission node not registered")
	}

	path := store.FindPath(ifaceID, tcpID)
	want := []graph.NodeID{ifaceID, linkID, tcpID}
	if len(path) != len(want) {
		t.Fatalf("FindPath() = %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("FindPath() = %v, want %v", path, want)
		}
	}

	node, ok := store.GetNode(ifaceID)
	if !ok {
		t.Fatal("interface node missing from store")
	}
	score, err := node.Properties["authority_score"].AsFloat()
	if err != nil {
		t.Fatalf("authority_score: %v", err)
	}
	if score != 0.75 {
		t.Errorf("authority_score = %f, want 0.75", score)
	}
}

func TestPipelineSkipsDuplicateUnits(t *testing.T) {
	pipeline, store, _ := newTestPipeline(t)

	report, err := pipeline.Process(context.Background(), []loader.Document{
		textDocument("doc-1", "Internal KB-77", failureChainText),
		textDocument("doc-2", "Internal KB-78", failureChainText),
	})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if report.Units != 2 {
		t.Errorf("report.Units = %d, want 2", report.Units)
	}
	if report.DuplicateUnits != 1 {
		t.Errorf("report.DuplicateUnits = %d, want 1", report.DuplicateUnits)
	}
	if store.NodeCount() != 3 {
		t.Errorf("NodeCount() = %d, want 3", store.NodeCount())
	}
	if store.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d, want 2", store.EdgeCount())
	}
}

func TestPipelineRecordsConstraints(t *testing.T) {
	pipeline, _, _ := newTestPipeline(t)

	report, err := pipeline.Process(context.Background(), []loader.Document{
		textDocument("doc-1", "RFC 4271",
			"A speaker MUST NOT accept updates from unconfigured peers."),
	})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if len(report.Constraints) != 1 {
		t.Fatalf("report.Constraints has %d entries, want 1", len(report.Constraints))
	}
	c := report.Constraints[0]
	if c.Type != ConstraintProhibition || !c.Critical {
		t.Errorf("constraint = %+v, want critical prohibition", c)
	}
}

func TestPipelineResolvesAmbiguousTerms(t *testing.T) {
	pipeline, store, registry := newTestPipeline(t)

	report, err := pipeline.Process(context.Background(), []loader.Document{
		textDocument("doc-1", "Internal KB-77",
			"The session to the neighbor stays Established until the holdtime expires."),
	})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if report.Nodes != 1 {
		t.Fatalf("report.Nodes = %d, want 1", report.Nodes)
	}
	nodeID, ok := registry.Lookup("PROTOCOL_INSTANCE", "SESSION")
	if !ok {
		t.Fatal("disambiguated sense node not registered")
	}
	node, _ := store.GetNode(nodeID)
	confidence, err := node.Properties["confidence"].AsFloat()
	if err != nil {
		t.Fatalf("confidence: %v", err)
	}
	if confidence != 1.0 {
		t.Errorf("confidence = %f, want 1.0", confidence)
	}
}

func TestPipelineSkipsUnresolvedAmbiguousTerms(t *testing.T) {
	pipeline, store, _ := newTestPipeline(t)

	// "session" occurs but no profile keyword does, so no sense node appears.
	report, err := pipeline.Process(context.Background(), []loader.Document{
		textDocument("doc-1", "Internal KB-77", "The session dropped overnight."),
	})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if report.Nodes != 0 || store.NodeCount() != 0 {
		t.Errorf("report.Nodes = %d, NodeCount() = %d, want 0 and 0",
			report.Nodes, store.NodeCount())
	}
}

func TestPipelineExtractsConditionals(t *testing.T) {
	pipeline, _, _ := newTestPipeline(t)

	report, err := pipeline.Process(context.Background(), []loader.Document{
		textDocument("doc-1", "RFC 4271",
			"When the hold timer fires, the router must drop the peering."),
	})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if len(report.Conditionals) != 1 {
		t.Fatalf("report.Conditionals has %d entries, want 1", len(report.Conditionals))
	}
	cond := report.Conditionals[0]
	if cond.Trigger != "when" {
		t.Errorf("Trigger = %q, want when", cond.Trigger)
	}
	if cond.Condition != "the hold timer fires" {
		t.Errorf("Condition = %q", cond.Condition)
	}
	if cond.Outcome != "drop the peering." {
		t.Errorf("Outcome = %q", cond.Outcome)
	}
}

func TestPipelineMarksConstrainedRelationships(t *testing.T) {
	pipeline, store, registry := newTestPipeline(t)

	_, err := pipeline.Process(context.Background(), []loader.Document{
		textDocument("doc-1", "Internal KB-77",
			"Operators MUST NOT disable dampening here. %LINK-3-UPDOWN triggers %TCP-6-RETRANS."),
	})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	linkID, ok := registry.Lookup(EntityErrorCode, "%LINK-3-UPDOWN")
	if !ok {
		t.Fatal("link alarm node not registered")
	}
	out := store.Outgoing(linkID)
	if len(out) != 1 {
		t.Fatalf("Outgoing() = %v, want one edge", out)
	}
	edge, _ := store.GetEdge(out[0])
	marked, err := edge.Properties["critical_constraint"].AsBool()
	if err != nil {
		t.Fatalf("critical_constraint: %v", err)
	}
	if !marked {
		t.Error("critical_constraint = false, want true")
	}
}
