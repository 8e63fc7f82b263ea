package match

import (
	"fmt"
	"strings"
)

// NewMetric creates a similarity metric by name
func NewMetric(name string) (Metric, error) {
	switch strings.ToLower(name) {
	case "", "levenshtein":
		return NewLevenshtein(), nil

	case "jaro-winkler", "jarowinkler":
		return NewJaroWinkler(), nil

	default:
		return nil, fmt.Errorf("unknown similarity metric: %s (supported: levenshtein, jaro-winkler)", name)
	}
}
