package ingest

import (
	"regexp"
	"sort"
)

// Entity categories produced by the deterministic Extractor.
const (
	EntityIPAddress  = "IP_ADDRESS"
	EntityASN        = "ASN"
	EntityInterface  = "INTERFACE"
	EntityErrorCode  = "ERROR_CODE"
	EntityMACAddress = "MAC_ADDRESS"
)

// ExtractedEntity is one deterministic match in a unit of text. Start and End
// are byte offsets into the scanned text; Confidence is always 1.0 for
// rule-based extraction.
type ExtractedEntity struct {
	Type       string
	Value      string
	Confidence float64
	Start      int
	End        int
}

// Extractor is a regex engine for structured networking entities: IPs, ASNs,
// interface names, vendor error codes, and MAC addresses. These follow
// strict, non-ambiguous patterns, so rule-based extraction gives full
// precision at microsecond cost. It cannot catch semantically equivalent
// phrasings ("the first port" vs "Ethernet1/1").
type Extractor struct {
	patterns map[string]*regexp.Regexp
}

// NewExtractor creates an Extractor with the built-in high-precision
// networking patterns.
func NewExtractor() *Extractor {
	return &Extractor{
		patterns: map[string]*regexp.Regexp{
			EntityIPAddress: regexp.MustCompile(
				`\b(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\b`),
			EntityASN: regexp.MustCompile(`(?i)\bAS\d{1,10}\b`),
			EntityInterface: regexp.MustCompile(
				`\b(?:GigabitEthernet|TenGigabitEthernet|FastEthernet|Ethernet|Loopback|Port-Channel)\d+(?:/\d+)*\b`),
			EntityErrorCode:  regexp.MustCompile(`%[A-Z0-9_\-]+-\d+-[A-Z0-9_\-]+`),
			EntityMACAddress: regexp.MustCompile(`\b(?:[0-9A-Fa-f]{2}[:-]){5}(?:[0-9A-Fa-f]{2})\b`),
		},
	}
}

// Extract returns all recognized entities in the text, ordered by position.
// The input is expected to be cleaned and normalized already.
func (e *Extractor) Extract(text string) []ExtractedEntity {
	var results []ExtractedEntity

	for entityType, pattern := range e.patterns {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			results = append(results, ExtractedEntity{
				Type:       entityType,
				Value:      text[loc[0]:loc[1]],
				Confidence: 1.0,
				Start:      loc[0],
				End:        loc[1],
			})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Start != results[j].Start {
			return results[i].Start < results[j].Start
		}
		return results[i].End > results[j].End
	})
	return results
}
