// Package recognize wraps entity recognition backends behind a single
// capability interface so the verification engine never depends on a
// concrete model. Backends may be local (prose) or remote (openai); test
// doubles implement the same interface.
package recognize

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Jayakumar-B-23012888/extraction-and-verification-of-information-from-semi-categorized-data/internal/model"
)

// ErrRecognition marks a recognition backend failure. Callers must be able
// to tell "the recognizer found nothing" (a normal empty result) apart from
// "the recognizer could not run"; the latter always wraps this sentinel.
var ErrRecognition = errors.New("entity recognition failed")

// Result is one labeled span returned by a recognition backend
type Result struct {
	Label string
	Text  string
}

// Recognizer is the external recognition capability: given text, return a
// sequence of labeled spans. Zero results is a normal outcome, not an error.
type Recognizer interface {
	// Name returns the backend name
	Name() string

	// Recognize extracts labeled spans from the text
	Recognize(ctx context.Context, text string) ([]Result, error)
}

// Adapter filters backend output down to the supported entity categories.
// Spans with any other label are dropped; kept spans are trimmed.
type Adapter struct {
	recognizer Recognizer
}

// NewAdapter creates an adapter around a recognition backend
func NewAdapter(r Recognizer) *Adapter {
	return &Adapter{recognizer: r}
}

// Backend returns the name of the wrapped backend
func (a *Adapter) Backend() string {
	return a.recognizer.Name()
}

// Entities runs the backend over the text and returns the supported
// entities. A backend failure is surfaced, never folded into an empty set.
func (a *Adapter) Entities(ctx context.Context, text string) ([]model.Entity, error) {
	results, err := a.recognizer.Recognize(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: backend %s: %v", ErrRecognition, a.recognizer.Name(), err)
	}

	var entities []model.Entity
	for _, res := range results {
		category := model.Category(res.Label)
		if !category.Valid() {
			continue
		}
		clean := strings.TrimSpace(res.Text)
		if clean == "" {
			continue
		}
		entities = append(entities, model.Entity{Category: category, Text: clean})
	}
	return entities, nil
}
