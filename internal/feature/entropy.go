// Package feature computes the windowed statistics of the pipeline: the
// per-window feature vector and the token-entropy measure it includes.
package feature

import (
	"math"
	"regexp"
	"strings"
)

// tokenPattern splits messages on non-word boundaries; tokens are runs of
// letters, digits and underscores.
var tokenPattern = regexp.MustCompile(`\w+`)

// TokenEntropy returns the Shannon entropy, in bits, of the pooled
// lowercased token distribution across all messages. Pure and
// order-invariant; an empty token pool yields 0.0.
func TokenEntropy(messages []string) float64 {
	counts := make(map[string]int)
	total := 0
	for _, msg := range messages {
		for _, tok := range tokenPattern.FindAllString(strings.ToLower(msg), -1) {
			counts[tok]++
			total++
		}
	}
	if total == 0 {
		return 0.0
	}

	var entropy float64
	for _, c := range counts {
		p := float64(c) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return entropy
}
