package ingest

import (
	"regexp"
	"sort"
	"strings"
)

// SenseProfile describes one possible sense of an ambiguous term: the label
// assigned when it wins, the context keywords that vote for it, and the
// weight each keyword hit contributes.
type SenseProfile struct {
	Label    string
	Keywords []string
	Weight   float64
}

// ResolvedSense is the outcome of disambiguating one term occurrence.
// Sense is "UNKNOWN" for terms with no profiles and "AMBIGUOUS" when no
// profile keyword appears in the context window.
type ResolvedSense struct {
	Term       string
	Sense      string
	Confidence float64
}

// Disambiguator resolves ambiguous networking terms ("session", "interface",
// "reset") to a specific sense by scoring expert-defined keyword profiles
// against the surrounding context window. Profiles are fixed at construction.
//
// Scoring a context window is linear in its length and needs no model; the
// trade-off is that a sense marker far from the term can be missed.
type Disambiguator struct {
	profiles map[string][]SenseProfile
	terms    []string
	patterns map[string]*regexp.Regexp
}

// DefaultSenseProfiles returns the built-in profiles for common ambiguous
// networking terms.
func DefaultSenseProfiles() map[string][]SenseProfile {
	return map[string][]SenseProfile{
		"session": {
			{
				Label:    "PROTOCOL_INSTANCE",
				Keywords: []string{"bgp", "ospf", "established", "neighbor", "keepalive", "holdtime"},
				Weight:   1.0,
			},
			{
				Label:    "USER_ACCESS",
				Keywords: []string{"terminal", "ssh", "telnet", "login", "vty", "console"},
				Weight:   0.8,
			},
		},
		"interface": {
			{
				Label:    "PHYSICAL_PORT",
				Keywords: []string{"gigabit", "tengig", "optic", "cable", "plugged", "slot"},
				Weight:   1.0,
			},
			{
				Label:    "LOGICAL_CONFIG",
				Keywords: []string{"vlan", "tunnel", "loopback", "subinterface", "virtual"},
				Weight:   0.9,
			},
		},
		"reset": {
			{
				Label:    "PROTOCOL_EVENT",
				Keywords: []string{"notification", "peer", "collision", "fsm", "state"},
				Weight:   1.0,
			},
			{
				Label:    "HARDWARE_ACTION",
				Keywords: []string{"button", "power", "reload", "chassis", "voltage"},
				Weight:   1.1,
			},
		},
	}
}

// NewDisambiguator creates a Disambiguator with the given sense profiles.
// Passing nil uses DefaultSenseProfiles.
func NewDisambiguator(profiles map[string][]SenseProfile) *Disambiguator {
	if profiles == nil {
		profiles = DefaultSenseProfiles()
	}

	terms := make([]string, 0, len(profiles))
	patterns := make(map[string]*regexp.Regexp, len(profiles))
	for term := range profiles {
		terms = append(terms, term)
		patterns[term] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
	}
	// Deterministic term order keeps ResolveText output reproducible.
	sort.Strings(terms)

	return &Disambiguator{profiles: profiles, terms: terms, patterns: patterns}
}

// Resolve determines the sense of term given the words surrounding it.
// Confidence is the winning score normalized into [0, 1].
func (d *Disambiguator) Resolve(term, contextWindow string) ResolvedSense {
	profiles, ok := d.profiles[strings.ToLower(term)]
	if !ok {
		return ResolvedSense{Term: term, Sense: "UNKNOWN"}
	}

	lowerContext := strings.ToLower(contextWindow)

	bestSense := "AMBIGUOUS"
	maxScore := 0.0
	for _, profile := range profiles {
		score := 0.0
		for _, kw := range profile.Keywords {
			if strings.Contains(lowerContext, kw) {
				score += profile.Weight
			}
		}
		if score > maxScore {
			maxScore = score
			bestSense = profile.Label
		}
	}

	confidence := 0.0
	if maxScore > 0 {
		confidence = min(1.0, maxScore/2.0)
	}

	return ResolvedSense{Term: term, Sense: bestSense, Confidence: confidence}
}

// ResolveText finds every profiled term occurring in the text and resolves it
// against the full text as context window. Terms are reported once each, in
// lexical order; terms without profiles never appear.
func (d *Disambiguator) ResolveText(text string) []ResolvedSense {
	var senses []ResolvedSense
	for _, term := range d.terms {
		if !d.patterns[term].MatchString(text) {
			continue
		}
		senses = append(senses, d.Resolve(term, text))
	}
	return senses
}
