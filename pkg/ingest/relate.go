package ingest

import (
	"regexp"
	"strings"

	"netrca/pkg/common"
)

// RelationLabelCauses marks a directed causal edge from a source condition to
// the failure it produces.
const RelationLabelCauses = "CAUSES"

type causalCue struct {
	pattern *regexp.Regexp
	// reversed cues name the effect first, like "X due to Y".
	reversed bool
}

// RelationFinder detects causal statements between two extracted entities in
// the same unit of text. The connecting phrase decides the edge direction.
type RelationFinder struct {
	cues []causalCue
}

// NewRelationFinder creates a RelationFinder with the built-in causal cues.
func NewRelationFinder() *RelationFinder {
	forward := []string{
		`causes`,
		`leads\s+to`,
		`results\s+in`,
		`triggers`,
		`brings\s+down`,
	}
	reverse := []string{
		`due\s+to`,
		`caused\s+by`,
		`because\s+of`,
		`triggered\s+by`,
	}

	f := &RelationFinder{}
	for _, p := range forward {
		f.cues = append(f.cues, causalCue{
			pattern: regexp.MustCompile(`(?i)\b(?:` + p + `)\b`),
		})
	}
	for _, p := range reverse {
		f.cues = append(f.cues, causalCue{
			pattern:  regexp.MustCompile(`(?i)\b(?:` + p + `)\b`),
			reversed: true,
		})
	}
	return f
}

// Find inspects the text between consecutive entity mentions and emits a
// relationship for each causal cue found. Entities must be sorted by
// position, as returned by Extractor.Extract.
func (f *RelationFinder) Find(text string, entities []ExtractedEntity) []common.RelationshipMention {
	var out []common.RelationshipMention

	for i := 0; i+1 < len(entities); i++ {
		left, right := entities[i], entities[i+1]
		if left.End >= right.Start {
			continue
		}
		between := text[left.End:right.Start]

		cue, ok := f.matchCue(between)
		if !ok {
			continue
		}

		source, target := left, right
		if cue.reversed {
			source, target = right, left
		}

		out = append(out, common.RelationshipMention{
			SourceLabel: source.Type,
			SourceName:  source.Value,
			TargetLabel: target.Type,
			TargetName:  target.Value,
			Label:       RelationLabelCauses,
		})
	}

	return out
}

func (f *RelationFinder) matchCue(between string) (causalCue, bool) {
	// The cue must be the connective of this pair, not part of a later clause.
	if strings.TrimSpace(between) == "" {
		return causalCue{}, false
	}
	for _, cue := range f.cues {
		if cue.pattern.MatchString(between) {
			return cue, true
		}
	}
	return causalCue{}, false
}
