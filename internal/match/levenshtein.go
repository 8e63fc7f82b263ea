package match

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// LevenshteinMetric scores similarity as 1 - distance/maxLen, the classic
// edit-distance ratio. This is the default metric.
type LevenshteinMetric struct{}

// NewLevenshtein creates the Levenshtein ratio metric
func NewLevenshtein() *LevenshteinMetric {
	return &LevenshteinMetric{}
}

// Name returns the metric name
func (*LevenshteinMetric) Name() string {
	return "levenshtein"
}

// Similarity scores two strings in [0,1]
func (*LevenshteinMetric) Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	if longest == 0 {
		return 1
	}
	distance := levenshtein.ComputeDistance(a, b)
	return 1 - float64(distance)/float64(longest)
}
