package recognize

import (
	"fmt"
	"strings"

	"github.com/Jayakumar-B-23012888/extraction-and-verification-of-information-from-semi-categorized-data/internal/cache"
	"github.com/Jayakumar-B-23012888/extraction-and-verification-of-information-from-semi-categorized-data/internal/model"
)

// New creates a recognition backend from configuration. The store is only
// used by remote backends and may be nil.
func New(cfg model.RecognizerConfig, store cache.Cache) (Recognizer, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", "prose":
		return NewProse(), nil

	case "openai":
		return NewOpenAI(cfg, store)

	default:
		return nil, fmt.Errorf("unknown recognizer backend: %s (supported: prose, openai)", cfg.Backend)
	}
}
