package ingest

import (
	"regexp"
	"sort"
)

// Normalizer canonicalizes networking aliases (interface short names,
// protocol variations, and state terminology) so the same real-world concept
// always surfaces under one spelling. All dictionaries are fixed at
// construction; a Normalizer is safe for concurrent use.
type Normalizer struct {
	interfaces []rewriteRule
	protocols  []rewriteRule
	states     []rewriteRule
}

type rewriteRule struct {
	pattern *regexp.Regexp
	replace string
}

// NormalizerDictionaries carries the three alias dictionaries a Normalizer is
// built from. Nil maps fall back to the built-in defaults.
type NormalizerDictionaries struct {
	// Interfaces maps vendor short names to canonical interface names,
	// e.g. "Gi" -> "GigabitEthernet" so Gi1/1 becomes GigabitEthernet1/1.
	Interfaces map[string]string
	// Protocols maps protocol variations to one canonical name,
	// e.g. "BGP-4" -> "BGP".
	Protocols map[string]string
	// States maps diverse state terminology to a unified set,
	// e.g. "Established" -> "UP".
	States map[string]string
}

// DefaultDictionaries returns the built-in alias dictionaries for Cisco and
// Juniper style terminology.
func DefaultDictionaries() NormalizerDictionaries {
	return NormalizerDictionaries{
		Interfaces: map[string]string{
			"Gi":  "GigabitEthernet",
			"Te":  "TenGigabitEthernet",
			"Fa":  "FastEthernet",
			"Eth": "Ethernet",
			"Po":  "Port-Channel",
			"Lo":  "Loopback",
		},
		Protocols: map[string]string{
			"BGP-4":                   "BGP",
			"BGPv4":                   "BGP",
			"Border Gateway Protocol": "BGP",
			"OSPFv2":                  "OSPF",
			"OSPFv3":                  "OSPF-v3",
		},
		States: map[string]string{
			"Established": "UP",
			"Down":        "DOWN",
			"Shut":        "SHUTDOWN",
			"Active":      "UP",
			"Idle":        "IDLE",
		},
	}
}

// NewNormalizer creates a Normalizer from the given dictionaries.
func NewNormalizer(dicts NormalizerDictionaries) *Normalizer {
	defaults := DefaultDictionaries()
	if dicts.Interfaces == nil {
		dicts.Interfaces = defaults.Interfaces
	}
	if dicts.Protocols == nil {
		dicts.Protocols = defaults.Protocols
	}
	if dicts.States == nil {
		dicts.States = defaults.States
	}

	n := &Normalizer{}
	for _, alias := range sortedKeys(dicts.Interfaces) {
		// Catches Gi1/1 or Te0/0/1 while leaving the alias alone inside words.
		n.interfaces = append(n.interfaces, rewriteRule{
			pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(alias) + `(\d+(?:/\d+)*)\b`),
			replace: dicts.Interfaces[alias] + "$1",
		})
	}
	for _, variation := range sortedKeys(dicts.Protocols) {
		n.protocols = append(n.protocols, rewriteRule{
			pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(variation) + `\b`),
			replace: dicts.Protocols[variation],
		})
	}
	for _, term := range sortedKeys(dicts.States) {
		n.states = append(n.states, rewriteRule{
			pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`),
			replace: dicts.States[term],
		})
	}
	return n
}

// Normalize performs a full normalization pass: interfaces, then protocols,
// then states.
func (n *Normalizer) Normalize(input string) string {
	text := applyRules(input, n.interfaces)
	text = applyRules(text, n.protocols)
	return applyRules(text, n.states)
}

func applyRules(input string, rules []rewriteRule) string {
	result := input
	for _, rule := range rules {
		result = rule.pattern.ReplaceAllString(result, rule.replace)
	}
	return result
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
