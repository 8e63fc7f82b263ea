package recognize

import (
	"context"
	"strings"
	"sync"

	"github.com/jdkato/prose/v2"
)

// ProseRecognizer runs entity recognition locally with the prose NLP
// library. prose only emits PERSON and GPE labels; the adapter's category
// filter handles everything else.
type ProseRecognizer struct{}

var (
	proseOnce   sync.Once
	proseShared *ProseRecognizer
)

// NewProse returns the shared prose recognizer. The underlying model data
// is loaded once per process and is read-only afterwards, so one instance
// serves all verification calls concurrently.
func NewProse() *ProseRecognizer {
	proseOnce.Do(func() {
		proseShared = &ProseRecognizer{}
	})
	return proseShared
}

// Name returns the backend name
func (p *ProseRecognizer) Name() string {
	return "prose"
}

// Recognize extracts labeled spans from the text
func (p *ProseRecognizer) Recognize(ctx context.Context, text string) ([]Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, err
	}

	var results []Result
	for _, ent := range doc.Entities() {
		results = append(results, Result{Label: ent.Label, Text: ent.Text})
	}
	return results, nil
}
