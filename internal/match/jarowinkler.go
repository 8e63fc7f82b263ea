package match

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// JaroWinklerMetric scores similarity with Jaro-Winkler, which weights
// shared prefixes. Useful when document names truncate or abbreviate
// trailing parts.
type JaroWinklerMetric struct {
	metric *metrics.JaroWinkler
}

// NewJaroWinkler creates the Jaro-Winkler metric
func NewJaroWinkler() *JaroWinklerMetric {
	return &JaroWinklerMetric{metric: metrics.NewJaroWinkler()}
}

// Name returns the metric name
func (*JaroWinklerMetric) Name() string {
	return "jaro-winkler"
}

// Similarity scores two strings in [0,1]
func (m *JaroWinklerMetric) Similarity(a, b string) float64 {
	return strutil.Similarity(a, b, m.metric)
}
