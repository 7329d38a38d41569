package ingest

import (
	"regexp"
	"sort"
)

var (
	reRFCNumber = regexp.MustCompile(`(?i)RFC\s*(\d+)`)
	reObsoletes = regexp.MustCompile(`(?i)Obsoletes:\s*RFC\s*(\d+)`)
	reUpdates   = regexp.MustCompile(`(?i)Updates:\s*RFC\s*(\d+)`)
	reOSVersion = regexp.MustCompile(`(?i)(IOS-XR|JunOS|Cisco\s*IOS|NX-OS)\s*(\d+\.\d+(?:\.\d+)*)`)
	reHardware  = regexp.MustCompile(`(?i)\b(Jericho\d*|Trident[+\d]*|NCS-\d+|ASR-\d+|Linecard|ASIC)\b`)
)

// Applicability captures the versioning and compatibility context of a
// document: which RFC it is, what it obsoletes or updates, and which
// software releases and hardware platforms it applies to.
type Applicability struct {
	RFCNumber string
	Obsoletes string
	Updates   string

	OSVersions        []string
	HardwarePlatforms []string
}

// VersionResolver extracts RFC numbers, Obsoletes/Updates links, OS versions
// (IOS-XR, JunOS, NX-OS), and hardware signatures from technical text.
type VersionResolver struct{}

// NewVersionResolver creates a VersionResolver.
func NewVersionResolver() *VersionResolver {
	return &VersionResolver{}
}

// Resolve scans the text and returns its applicability context. List fields
// are sorted and deduplicated.
func (r *VersionResolver) Resolve(text string) Applicability {
	ctx := Applicability{
		RFCNumber: firstGroup(reRFCNumber, text),
		Obsoletes: firstGroup(reObsoletes, text),
		Updates:   firstGroup(reUpdates, text),
	}

	ctx.OSVersions = uniqueMatches(reOSVersion, text)
	ctx.HardwarePlatforms = uniqueMatches(reHardware, text)
	return ctx
}

func firstGroup(pattern *regexp.Regexp, text string) string {
	m := pattern.FindStringSubmatch(text)
	if len(m) > 1 {
		return m[1]
	}
	return ""
}

func uniqueMatches(pattern *regexp.Regexp, text string) []string {
	seen := make(map[string]struct{})
	for _, m := range pattern.FindAllString(text, -1) {
		seen[m] = struct{}{}
	}
	if len(seen) == 0 {
		return nil
	}
	out := make([]string, 0, len(seen))
	for m := range seen {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}
