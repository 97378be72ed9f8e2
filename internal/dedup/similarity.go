// Package dedup prevents topic and hook repetition within a batch and against
// publish history.
package dedup

import (
	"regexp"
	"strings"
)

// Similarity scores two texts in [0,1]. Implementations must be symmetric and
// reflexive (sim(x,x)=1) so thresholding behaves monotonically.
type Similarity func(a, b string) float64

var tokenRe = regexp.MustCompile(`[\p{L}\p{N}]+`)

// TokenOverlap is the default similarity: Jaccard overlap of lowercased token
// sets. Deterministic and dependency-free; embedding cosine similarity could
// be swapped in behind the same contract.
func TokenOverlap(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 1.0
	}
	if len(setA) == 0 || len(setB) == 0 {
		return 0.0
	}

	intersection := 0
	for token := range setA {
		if setB[token] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range tokenRe.FindAllString(strings.ToLower(text), -1) {
		set[token] = true
	}
	return set
}
