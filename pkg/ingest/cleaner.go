package ingest

import (
	"regexp"
	"sort"
	"strings"
)

var (
	rePageMarker = regexp.MustCompile(`\[Page\s+\d+\]`)
	reRFCLines   = regexp.MustCompile(`RFC\s+\d+.*[12][0-9]{3}|.*Standards Track.*|.*Category:.*|.*Informational.*`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// Cleaner strips RFC boilerplate, collapses whitespace, and expands common
// networking acronyms so downstream stages see uniform text. The acronym map
// is fixed at construction; a Cleaner holds no mutable state and is safe for
// concurrent use.
type Cleaner struct {
	acronyms []acronymRule
}

type acronymRule struct {
	pattern   *regexp.Regexp
	expansion string
}

// DefaultAcronyms returns the expansion map for acronyms common in networking
// documents.
func DefaultAcronyms() map[string]string {
	return map[string]string{
		"BGP": "Border Gateway Protocol",
		"RFC": "Request for Comments",
		"FSM": "Finite State Machine",
		"RIB": "Routing Information Base",
		"MTU": "Maximum Transmission Unit",
		"AS":  "Autonomous System",
	}
}

// NewCleaner creates a Cleaner with the given acronym expansions. Passing nil
// uses DefaultAcronyms.
func NewCleaner(acronyms map[string]string) *Cleaner {
	if acronyms == nil {
		acronyms = DefaultAcronyms()
	}
	keys := make([]string, 0, len(acronyms))
	for acronym := range acronyms {
		keys = append(keys, acronym)
	}
	// Deterministic rule order keeps cleaning reproducible across runs.
	sort.Strings(keys)

	rules := make([]acronymRule, 0, len(keys))
	for _, acronym := range keys {
		rules = append(rules, acronymRule{
			pattern:   regexp.MustCompile(`\b` + regexp.QuoteMeta(acronym) + `\b`),
			expansion: acronyms[acronym],
		})
	}
	return &Cleaner{acronyms: rules}
}

// Clean performs a full cleaning pass on raw technical text: boilerplate
// first, then whitespace, then acronym expansion.
func (c *Cleaner) Clean(raw string) string {
	text := c.stripBoilerplate(raw)
	text = normalizeWhitespace(text)
	return c.expandAcronyms(text)
}

// stripBoilerplate removes RFC page markers and typical header/footer lines
// such as "RFC 4271   BGP-4   January 2006" or "Standards Track" trailers.
func (c *Cleaner) stripBoilerplate(input string) string {
	result := rePageMarker.ReplaceAllString(input, "")
	return reRFCLines.ReplaceAllString(result, "")
}

func (c *Cleaner) expandAcronyms(input string) string {
	result := input
	for _, rule := range c.acronyms {
		result = rule.pattern.ReplaceAllString(result, rule.expansion)
	}
	return result
}

func normalizeWhitespace(input string) string {
	return strings.TrimSpace(reWhitespace.ReplaceAllString(input, " "))
}
