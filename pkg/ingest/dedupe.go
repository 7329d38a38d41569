package ingest

import (
	"hash/fnv"
	"math/rand"
	"strings"
	"sync"
)

const (
	minhashFunctions = 200
	shingleSize      = 5
	lshBands         = 20
	lshRows          = 10

	minhashPrime = 4294967311
)

// Signature is a MinHash sketch of a text's shingle set. Two texts with
// highly overlapping shingles produce signatures that agree in most
// positions.
type Signature [minhashFunctions]uint64

// Deduplicator finds near-duplicate text units using MinHash signatures and
// banded locality-sensitive hashing. A unit whose signature lands in the same
// band bucket as a previously indexed unit is reported as a duplicate.
type Deduplicator struct {
	coeffA [minhashFunctions]uint64
	coeffB [minhashFunctions]uint64

	mu    sync.Mutex
	bands []map[string]string
}

// NewDeduplicator creates a Deduplicator. The seed fixes the hash family, so
// the same seed always yields the same signatures.
func NewDeduplicator(seed int64) *Deduplicator {
	rng := rand.New(rand.NewSource(seed))
	d := &Deduplicator{bands: make([]map[string]string, lshBands)}
	for i := 0; i < minhashFunctions; i++ {
		d.coeffA[i] = uint64(rng.Int63n(minhashPrime-1)) + 1
		d.coeffB[i] = uint64(rng.Int63n(minhashPrime))
	}
	for i := range d.bands {
		d.bands[i] = make(map[string]string)
	}
	return d
}

// Sign computes the MinHash signature of text.
func (d *Deduplicator) Sign(text string) Signature {
	var sig Signature
	for i := range sig {
		sig[i] = ^uint64(0)
	}

	shingles := shingle(text)
	if len(shingles) == 0 {
		return sig
	}
	for sh := range shingles {
		base := hashShingle(sh)
		for i := 0; i < minhashFunctions; i++ {
			h := (d.coeffA[i]*base + d.coeffB[i]) % minhashPrime
			if h < sig[i] {
				sig[i] = h
			}
		}
	}
	return sig
}

// Index registers a unit's signature and returns the id of a previously
// indexed near-duplicate, if any. The first of a duplicate pair is indexed
// normally; only later arrivals are flagged.
func (d *Deduplicator) Index(id, text string) (string, bool) {
	sig := d.Sign(text)

	d.mu.Lock()
	defer d.mu.Unlock()

	dupID := ""
	for b := 0; b < lshBands; b++ {
		key := bandKey(sig, b)
		if prev, ok := d.bands[b][key]; ok && dupID == "" && prev != id {
			dupID = prev
		}
	}
	for b := 0; b < lshBands; b++ {
		key := bandKey(sig, b)
		if _, ok := d.bands[b][key]; !ok {
			d.bands[b][key] = id
		}
	}
	return dupID, dupID != ""
}

// Similarity estimates the Jaccard similarity of two texts from their
// signatures.
func (d *Deduplicator) Similarity(a, b string) float64 {
	sa, sb := d.Sign(a), d.Sign(b)
	agree := 0
	for i := range sa {
		if sa[i] == sb[i] {
			agree++
		}
	}
	return float64(agree) / float64(minhashFunctions)
}

func shingle(text string) map[string]struct{} {
	s := strings.ToLower(text)
	out := make(map[string]struct{})
	runes := []rune(s)
	if len(runes) < shingleSize {
		if len(runes) > 0 {
			out[string(runes)] = struct{}{}
		}
		return out
	}
	for i := 0; i+shingleSize <= len(runes); i++ {
		out[string(runes[i:i+shingleSize])] = struct{}{}
	}
	return out
}

func hashShingle(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64() % minhashPrime
}

func bandKey(sig Signature, band int) string {
	var sb strings.Builder
	start := band * lshRows
	for i := start; i < start+lshRows; i++ {
		sb.WriteByte(byte(sig[i]))
		sb.WriteByte(byte(sig[i] >> 8))
		sb.WriteByte(byte(sig[i] >> 16))
		sb.WriteByte(byte(sig[i] >> 24))
	}
	return sb.String()
}
