package ingest

import (
	"regexp"

	"netrca/pkg/common"
)

// Constraint categories produced by the ConstraintScanner.
const (
	ConstraintProhibition = "PROHIBITION"
	ConstraintDeprecation = "DEPRECATION"
	ConstraintException   = "EXCEPTION"
)

var (
	reProhibition = regexp.MustCompile(`(?i)\b(MUST NOT|SHOULD NOT|NOT SUPPORTED|NEVER|DO NOT)\b`)
	reDeprecation = regexp.MustCompile(`(?i)\b(DEPRECATED|OBSOLETE|LEGACY|DISCONTINUED)\b`)
	reException   = regexp.MustCompile(`(?i)\b(EXCEPT|UNLESS|NOT APPLICABLE|WITH THE EXCEPTION OF)\b`)
)

// ConstraintScanner finds negative knowledge in technical text: prohibitions
// (MUST NOT, NOT SUPPORTED), deprecations, and exceptions. These markers act
// as guardrails for root-cause reasoning: a causal edge derived from a
// prohibited configuration must not be treated as positive knowledge.
type ConstraintScanner struct{}

// NewConstraintScanner creates a ConstraintScanner.
func NewConstraintScanner() *ConstraintScanner {
	return &ConstraintScanner{}
}

// Scan returns every constraint marker in the text, in category order:
// prohibitions (critical), then deprecations, then exceptions. An empty
// result means the text carries only positive knowledge.
func (s *ConstraintScanner) Scan(text string) []common.Constraint {
	var constraints []common.Constraint

	for _, phrase := range reProhibition.FindAllString(text, -1) {
		constraints = append(constraints, common.Constraint{
			Type:     ConstraintProhibition,
			Phrase:   phrase,
			Critical: true,
		})
	}
	for _, phrase := range reDeprecation.FindAllString(text, -1) {
		constraints = append(constraints, common.Constraint{
			Type:   ConstraintDeprecation,
			Phrase: phrase,
		})
	}
	for _, phrase := range reException.FindAllString(text, -1) {
		constraints = append(constraints, common.Constraint{
			Type:   ConstraintException,
			Phrase: phrase,
		})
	}

	return constraints
}
