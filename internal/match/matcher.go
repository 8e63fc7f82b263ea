// Package match scores a claimed name against candidate names extracted
// from a document. Comparison is token-order-insensitive: layout
// extraction reorders name parts often enough that "Smith John" must score
// like "John Smith" without weakening discrimination between genuinely
// different names.
package match

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/Jayakumar-B-23012888/extraction-and-verification-of-information-from-semi-categorized-data/internal/normalize"
)

// ErrMatching marks a similarity backend failure, distinguishable from a
// legitimate zero score.
var ErrMatching = errors.New("name matching failed")

// Metric is the similarity capability: a score in [0,1] for two
// already-normalized strings.
type Metric interface {
	// Name returns the metric name
	Name() string

	// Similarity scores two strings in [0,1]
	Similarity(a, b string) float64
}

// Matcher is the capability the verification engine depends on. Alternate
// backends (remote scorers, different algorithms) implement this.
type Matcher interface {
	// Match returns the best score of the claimed name against the
	// candidates, an integer in [0,100]
	Match(claimed string, candidates []string) (int, error)
}

// NameMatcher is the in-process Matcher: match normalization on both
// sides, token sort, then the configured metric, keeping the best score.
type NameMatcher struct {
	metric Metric
}

// NewNameMatcher creates a matcher over the given similarity metric
func NewNameMatcher(m Metric) *NameMatcher {
	return &NameMatcher{metric: m}
}

// Match scores the claimed name against every candidate and returns the
// maximum. A claimed name that normalizes to empty, or an empty candidate
// set, scores 0: that is a definite "no evidence" outcome, not an error.
func (m *NameMatcher) Match(claimed string, candidates []string) (int, error) {
	input := tokenSort(normalize.Match(claimed))
	if input == "" || len(candidates) == 0 {
		return 0, nil
	}

	best := 0
	for _, candidate := range candidates {
		cand := tokenSort(normalize.Match(candidate))
		score := scale(m.metric.Similarity(input, cand))
		if score > best {
			best = score
		}
	}
	return best, nil
}

// tokenSort sorts the whitespace-separated tokens of a normalized string
func tokenSort(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// scale converts a [0,1] similarity to an integer score in [0,100]
func scale(sim float64) int {
	score := int(math.Round(sim * 100))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
