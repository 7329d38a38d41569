package ingest

import "strings"

// SourceType classifies where a document came from, which decides how much
// authority its knowledge carries.
type SourceType string

const (
	SourceRFC       SourceType = "RFC"
	SourceVendorDoc SourceType = "VENDOR_DOC"
	SourceInternal  SourceType = "INTERNAL_SME"
	SourceBlog      SourceType = "PUBLIC_BLOG"
	SourceUnknown   SourceType = "UNKNOWN"
)

// Metadata is the enrichment attached to a document before its knowledge
// enters the graph: source identity, trust score, and domain tags.
type Metadata struct {
	SourceID       string
	Type           SourceType
	AuthorityScore float64
	DomainTags     []string
}

// Enricher assigns source type, authority score, and domain tags to
// documents based on their source name. Scoring rules are fixed at
// construction.
type Enricher struct {
	authority map[SourceType]float64
}

// DefaultAuthorityRules returns the built-in authority scores per source
// type. RFCs are the gold standard; community blogs barely count.
func DefaultAuthorityRules() map[SourceType]float64 {
	return map[SourceType]float64{
		SourceRFC:       1.0,
		SourceVendorDoc: 0.85,
		SourceInternal:  0.75,
		SourceBlog:      0.3,
		SourceUnknown:   0.1,
	}
}

// NewEnricher creates an Enricher with the given authority rules. Passing
// nil uses DefaultAuthorityRules.
func NewEnricher(authority map[SourceType]float64) *Enricher {
	if authority == nil {
		authority = DefaultAuthorityRules()
	}
	return &Enricher{authority: authority}
}

// Identify classifies a source name and returns its metadata.
func (e *Enricher) Identify(sourceName string) Metadata {
	m := Metadata{SourceID: sourceName}

	switch {
	case strings.Contains(sourceName, "RFC"):
		m.Type = SourceRFC
		m.DomainTags = []string{"Standard", "Protocol", "Protocol-Grammar"}
	case strings.Contains(sourceName, "Cisco") || strings.Contains(sourceName, "Juniper"):
		m.Type = SourceVendorDoc
		m.DomainTags = []string{"Hardware", "Implementation", "Vendor-Specific"}
	case strings.Contains(sourceName, "KB") || strings.Contains(sourceName, "Internal"):
		m.Type = SourceInternal
		m.DomainTags = []string{"Troubleshooting", "Experience-Based", "Best-Practice"}
	case strings.Contains(strings.ToLower(sourceName), "blog"):
		m.Type = SourceBlog
		m.DomainTags = []string{"Opinion", "Community-Fix"}
	default:
		m.Type = SourceUnknown
	}

	m.AuthorityScore = e.authority[m.Type]
	return m
}
