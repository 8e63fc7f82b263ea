// Package extract turns document text blocks into a deduplicated entity
// set. It combines a recognition backend with deterministic pattern
// extractors so names survive even the low-context layouts recognizers
// miss.
package extract

import (
	"context"
	"strings"
	"sync"

	"github.com/Jayakumar-B-23012888/extraction-and-verification-of-information-from-semi-categorized-data/internal/model"
	"github.com/Jayakumar-B-23012888/extraction-and-verification-of-information-from-semi-categorized-data/internal/normalize"
	"github.com/Jayakumar-B-23012888/extraction-and-verification-of-information-from-semi-categorized-data/internal/recognize"
)

// Extractor aggregates recognizer output and pattern-extracted names over
// a sequence of text blocks into one EntitySet.
type Extractor struct {
	adapter *recognize.Adapter
	workers int
}

// NewExtractor creates an extractor over the given recognition backend.
// workers bounds concurrent per-block recognition; 1 keeps extraction
// fully sequential.
func NewExtractor(r recognize.Recognizer, workers int) *Extractor {
	if workers <= 0 {
		workers = 1
	}
	return &Extractor{
		adapter: recognize.NewAdapter(r),
		workers: workers,
	}
}

// Extract processes every block and unions the per-block results. Blank
// blocks are skipped without a recognizer call. The merge is a set union,
// so the concurrent path produces exactly the sequential result. Any
// backend failure aborts the pass; partial sets are never returned.
func (x *Extractor) Extract(ctx context.Context, blocks []string) (model.EntitySet, error) {
	set := model.NewEntitySet()

	if x.workers == 1 || len(blocks) < 2 {
		for _, block := range blocks {
			blockSet, err := x.extractBlock(ctx, block)
			if err != nil {
				return nil, err
			}
			set.Union(blockSet)
		}
		return set, nil
	}

	results := make([]model.EntitySet, len(blocks))
	errs := make([]error, len(blocks))
	semaphore := make(chan struct{}, x.workers)

	var wg sync.WaitGroup
	for i, block := range blocks {
		wg.Add(1)
		go func(idx int, b string) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				errs[idx] = ctx.Err()
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			results[idx], errs[idx] = x.extractBlock(ctx, b)
		}(i, block)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	for _, blockSet := range results {
		set.Union(blockSet)
	}
	return set, nil
}

// extractBlock runs one block through recognition and the name fallback
func (x *Extractor) extractBlock(ctx context.Context, block string) (model.EntitySet, error) {
	set := model.NewEntitySet()
	if strings.TrimSpace(block) == "" {
		return set, nil
	}

	entities, err := x.adapter.Entities(ctx, normalize.RecognitionCase(block))
	if err != nil {
		return nil, err
	}
	for _, ent := range entities {
		set.Add(ent.Category, ent.Text)
	}

	// The fallback runs on the raw block, not the normalized form, and
	// only ever contributes PERSON entities.
	for _, name := range NamesByPattern(block) {
		set.Add(model.CategoryPerson, name)
	}
	return set, nil
}
