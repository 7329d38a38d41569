package ingest

import (
	"regexp"
	"strings"

	"netrca/pkg/common"
)

type conditionTrigger struct {
	word    string
	pattern *regexp.Regexp
}

// ConditionalExtractor lifts if-then logic out of conditional prose. A
// condition opens with a trigger word (if, when, unless, until, once) and runs
// up to the next comma; the outcome is the marked clause after it, or the
// whole remainder of the sentence when no marker matches.
type ConditionalExtractor struct {
	triggers []conditionTrigger
	outcomes []*regexp.Regexp
}

// NewConditionalExtractor creates a ConditionalExtractor with the built-in
// trigger and outcome patterns.
func NewConditionalExtractor() *ConditionalExtractor {
	words := []string{"if", "when", "unless", "until", "once"}

	triggers := make([]conditionTrigger, 0, len(words))
	for _, word := range words {
		triggers = append(triggers, conditionTrigger{
			word:    word,
			pattern: regexp.MustCompile(`(?i)\b` + word + `\s+(.*?),`),
		})
	}

	return &ConditionalExtractor{
		triggers: triggers,
		outcomes: []*regexp.Regexp{
			regexp.MustCompile(`(?i)then\s+(.*)`),
			regexp.MustCompile(`(?i)the\s+speaker\s+shall\s+(.*)`),
			regexp.MustCompile(`(?i)the\s+session\s+will\s+(.*)`),
			regexp.MustCompile(`(?i)must\s+(.*)`),
			regexp.MustCompile(`(?i)results\s+in\s+(.*)`),
		},
	}
}

// Extract returns every conditional statement in the text, one per matching
// sentence. Sentences without a condition trigger are skipped.
func (e *ConditionalExtractor) Extract(text string) []common.Conditional {
	var results []common.Conditional
	for _, sentence := range splitIntoSentences(text) {
		if cond, ok := e.parseSentence(sentence); ok {
			results = append(results, cond)
		}
	}
	return results
}

func (e *ConditionalExtractor) parseSentence(sentence string) (common.Conditional, bool) {
	for _, trigger := range e.triggers {
		loc := trigger.pattern.FindStringSubmatchIndex(sentence)
		if loc == nil {
			continue
		}

		cond := common.Conditional{
			Raw:       sentence,
			Trigger:   trigger.word,
			Condition: strings.TrimSpace(sentence[loc[2]:loc[3]]),
		}

		remainder := strings.TrimSpace(sentence[loc[1]:])
		for _, marker := range e.outcomes {
			if m := marker.FindStringSubmatch(remainder); m != nil {
				cond.Outcome = strings.TrimSpace(m[1])
				break
			}
		}
		if cond.Outcome == "" {
			cond.Outcome = remainder
		}
		return cond, true
	}
	return common.Conditional{}, false
}
