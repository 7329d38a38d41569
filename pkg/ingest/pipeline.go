package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"netrca/pkg/common"
	"netrca/pkg/graph"
	"netrca/pkg/loader"
	"netrca/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Pipeline turns raw documents into graph nodes and edges. It chunks each
// document into units, filters near-duplicates, cleans and normalizes the
// text, extracts entities, disambiguates ambiguous terms, scans constraints
// and conditional logic, finds causal relationships, and resolves everything
// into the shared store through the registry.
//
// A Pipeline should be created using NewPipeline.
type Pipeline struct {
	store    *graph.Store
	registry *graph.Registry

	cleaner       *Cleaner
	normalizer    *Normalizer
	extractor     *Extractor
	disambiguator *Disambiguator
	scanner       *ConstraintScanner
	conditionals  *ConditionalExtractor
	enricher      *Enricher
	temporal      *TemporalAnnotator
	versions      *VersionResolver
	dedupe        *Deduplicator
	relations     *RelationFinder

	tokenEncoder      string
	parallelDocuments int

	nextEdgeID uint64
}

// NewPipelineParams defines the configuration for creating a Pipeline.
//
// Store and Registry must share the same underlying store. TokenEncoder
// specifies the encoding used to bound unit sizes. ParallelDocuments
// controls how many documents are processed concurrently. DedupeSeed fixes
// the near-duplicate hash family.
type NewPipelineParams struct {
	Store             *graph.Store
	Registry          *graph.Registry
	TokenEncoder      string
	ParallelDocuments int
	DedupeSeed        int64
}

// NewPipeline creates and returns a new Pipeline configured with the
// provided parameters.
func NewPipeline(params NewPipelineParams) (*Pipeline, error) {
	if params.Store == nil || params.Registry == nil {
		return nil, fmt.Errorf("pipeline requires a store and a registry")
	}

	parallel := params.ParallelDocuments
	if parallel <= 0 {
		parallel = 2
	}

	p := &Pipeline{
		store:             params.Store,
		registry:          params.Registry,
		cleaner:           NewCleaner(nil),
		normalizer:        NewNormalizer(DefaultDictionaries()),
		extractor:         NewExtractor(),
		disambiguator:     NewDisambiguator(DefaultSenseProfiles()),
		scanner:           NewConstraintScanner(),
		conditionals:      NewConditionalExtractor(),
		enricher:          NewEnricher(DefaultAuthorityRules()),
		temporal:          NewTemporalAnnotator(),
		versions:          NewVersionResolver(),
		dedupe:            NewDeduplicator(params.DedupeSeed),
		relations:         NewRelationFinder(),
		tokenEncoder:      params.TokenEncoder,
		parallelDocuments: parallel,
	}
	return p, nil
}

// Report summarizes one pipeline run.
type Report struct {
	Documents      int                  `json:"documents"`
	Units          int                  `json:"units"`
	DuplicateUnits int                  `json:"duplicate_units"`
	Nodes          int                  `json:"nodes"`
	Edges          int                  `json:"edges"`
	Constraints    []common.Constraint  `json:"constraints,omitempty"`
	Conditionals   []common.Conditional `json:"conditionals,omitempty"`
}

type documentResult struct {
	units          int
	duplicateUnits int
	entities       []common.EntityMention
	relations      []common.RelationshipMention
	constraints    []common.Constraint
	conditionals   []common.Conditional
}

// Process runs the pipeline over the given documents and commits the
// resulting nodes and edges to the store. Documents are processed in
// parallel; commits are serialized.
func (p *Pipeline) Process(ctx context.Context, docs []loader.Document) (*Report, error) {
	logger.Info("[Ingest] Processing", "total_documents", len(docs))

	report := &Report{Documents: len(docs)}
	mergeMu := sync.Mutex{}

	eg, gCtx := errgroup.WithContext(ctx)
	eg.SetLimit(p.parallelDocuments)

	for _, doc := range docs {
		d := doc
		eg.Go(func() error {
			select {
			case <-gCtx.Done():
				return nil
			default:
				result, err := p.processDocument(gCtx, d)
				if err != nil {
					return fmt.Errorf("failed to process document %s:\n%w", d.ID, err)
				}

				mergeMu.Lock()
				defer mergeMu.Unlock()

				report.Units += result.units
				report.DuplicateUnits += result.duplicateUnits
				report.Constraints = append(report.Constraints, result.constraints...)
				report.Conditionals = append(report.Conditionals, result.conditionals...)

				nodes, edges := p.commit(result.entities, result.relations)
				report.Nodes += nodes
				report.Edges += edges
				return nil
			}
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	logger.Info("[Ingest] Completed",
		"units", report.Units,
		"duplicate_units", report.DuplicateUnits,
		"nodes", report.Nodes,
		"edges", report.Edges,
	)
	return report, nil
}

func (p *Pipeline) processDocument(ctx context.Context, doc loader.Document) (*documentResult, error) {
	units, err := UnitsFromDocument(ctx, doc, p.tokenEncoder)
	if err != nil {
		return nil, fmt.Errorf("failed to extract units from input text:\n%w", err)
	}

	meta := p.enricher.Identify(doc.Source)

	result := &documentResult{units: len(units)}
	for _, unit := range units {
		if dupID, dup := p.dedupe.Index(unit.ID, unit.Text); dup {
			logger.Debug("[Ingest] Skipping near-duplicate unit",
				"unit", unit.ID, "duplicate_of", dupID)
			result.duplicateUnits++
			continue
		}

		text := p.normalizer.Normalize(p.cleaner.Clean(unit.Text))

		signal := p.temporal.Annotate(text)
		applicability := p.versions.Resolve(text)

		constraints := p.scanner.Scan(text)
		result.constraints = append(result.constraints, constraints...)
		result.conditionals = append(result.conditionals, p.conditionals.Extract(text)...)

		critical := false
		for _, c := range constraints {
			if c.Critical {
				critical = true
				break
			}
		}

		entities := p.extractor.Extract(text)
		for _, ent := range entities {
			result.entities = append(result.entities, common.EntityMention{
				Label:         ent.Type,
				CanonicalName: ent.Value,
				Properties: graph.Properties{
					"confidence":      graph.FloatValue(ent.Confidence),
					"authority_score": graph.FloatValue(meta.AuthorityScore),
					"stability_score": graph.FloatValue(signal.StabilityScore),
					"source_type":     graph.StringValue(string(meta.Type)),
				},
			})
		}

		for _, sense := range p.disambiguator.ResolveText(text) {
			if sense.Confidence == 0 {
				continue
			}
			result.entities = append(result.entities, common.EntityMention{
				Label:         sense.Sense,
				CanonicalName: strings.ToUpper(sense.Term),
				Properties: graph.Properties{
					"confidence":      graph.FloatValue(sense.Confidence),
					"authority_score": graph.FloatValue(meta.AuthorityScore),
					"stability_score": graph.FloatValue(signal.StabilityScore),
					"source_type":     graph.StringValue(string(meta.Type)),
				},
			})
		}

		for _, rel := range p.relations.Find(text, entities) {
			rel.Properties = graph.Properties{
				"document_id":     graph.StringValue(doc.ID),
				"unit_id":         graph.StringValue(unit.ID),
				"authority_score": graph.FloatValue(meta.AuthorityScore),
			}
			if applicability.RFCNumber != "" {
				rel.Properties["rfc_number"] = graph.StringValue(applicability.RFCNumber)
			}
			if critical {
				rel.Properties["critical_constraint"] = graph.BoolValue(true)
			}
			result.relations = append(result.relations, rel)
		}
	}

	return result, nil
}

// commit resolves entity mentions into nodes and relationship mentions into
// edges. Callers must serialize commits; edge ids come from the pipeline's
// own counter.
func (p *Pipeline) commit(
	entities []common.EntityMention,
	relations []common.RelationshipMention,
) (int, int) {
	before := p.store.NodeCount()
	for _, ent := range entities {
		p.registry.Resolve(ent.Label, ent.CanonicalName, ent.Properties)
	}
	nodes := p.store.NodeCount() - before

	edges := 0
	for _, rel := range relations {
		sourceID, ok := p.registry.Lookup(rel.SourceLabel, rel.SourceName)
		if !ok {
			sourceID = p.registry.Resolve(rel.SourceLabel, rel.SourceName, nil)
		}
		targetID, ok := p.registry.Lookup(rel.TargetLabel, rel.TargetName)
		if !ok {
			targetID = p.registry.Resolve(rel.TargetLabel, rel.TargetName, nil)
		}

		if err := p.addEdge(sourceID, targetID, rel.Label, rel.Properties); err != nil {
			logger.Warn("[Ingest] Dropping relationship",
				"source", rel.SourceName, "target", rel.TargetName, "error", err)
			continue
		}
		edges++
	}
	return nodes, edges
}

func (p *Pipeline) addEdge(
	source, target graph.NodeID,
	label string,
	props graph.Properties,
) error {
	for {
		id := graph.EdgeID(atomic.AddUint64(&p.nextEdgeID, 1))
		err := p.store.AddEdge(id, source, target, label, props)
		if errors.Is(err, graph.ErrDuplicateID) {
			continue
		}
		return err
	}
}

// NextEdgeID hands out an edge id from the pipeline's counter for callers
// that insert edges directly.
func (p *Pipeline) NextEdgeID() graph.EdgeID {
	return graph.EdgeID(atomic.AddUint64(&p.nextEdgeID, 1))
}
