// Package pipeline wires extraction and verification together and renders
// the resulting report.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Jayakumar-B-23012888/extraction-and-verification-of-information-from-semi-categorized-data/internal/cache"
	"github.com/Jayakumar-B-23012888/extraction-and-verification-of-information-from-semi-categorized-data/internal/extract"
	"github.com/Jayakumar-B-23012888/extraction-and-verification-of-information-from-semi-categorized-data/internal/match"
	"github.com/Jayakumar-B-23012888/extraction-and-verification-of-information-from-semi-categorized-data/internal/model"
	"github.com/Jayakumar-B-23012888/extraction-and-verification-of-information-from-semi-categorized-data/internal/recognize"
	"github.com/Jayakumar-B-23012888/extraction-and-verification-of-information-from-semi-categorized-data/internal/verify"
)

// Pipeline orchestrates the complete verification process
type Pipeline struct {
	extractor *extract.Extractor
	engine    *verify.Engine
	config    *model.Config
}

// New creates a pipeline from configuration
func New(cfg *model.Config) (*Pipeline, error) {
	var store cache.Cache
	if cfg.Cache.Enabled {
		store = cache.NewMemory(cfg.Cache.TTL)
	}

	recognizer, err := recognize.New(cfg.Recognizer, store)
	if err != nil {
		return nil, fmt.Errorf("recognizer: %w", err)
	}

	metric, err := match.NewMetric(cfg.Matcher.Metric)
	if err != nil {
		return nil, fmt.Errorf("matcher: %w", err)
	}

	return &Pipeline{
		extractor: extract.NewExtractor(recognizer, cfg.Concurrency.ExtractionWorkers),
		engine:    verify.NewEngine(match.NewNameMatcher(metric), cfg.Matcher.NameThreshold),
		config:    cfg,
	}, nil
}

// ExtractEntities runs the extraction stage alone
func (p *Pipeline) ExtractEntities(ctx context.Context, blocks []string) (model.EntitySet, error) {
	return p.extractor.Extract(ctx, blocks)
}

// Run verifies a claim against a document given as text blocks. The full
// text used for date and certificate scans is the blocks joined in order.
// A failure in either stage aborts the run; no partial report is produced.
func (p *Pipeline) Run(ctx context.Context, document string, blocks []string, claim model.FormClaim) (*model.Report, error) {
	entities, err := p.extractor.Extract(ctx, blocks)
	if err != nil {
		return nil, fmt.Errorf("extract entities: %w", err)
	}

	fullText := strings.Join(blocks, "\n")
	result, err := p.engine.Verify(claim, entities, fullText)
	if err != nil {
		return nil, fmt.Errorf("verify claim: %w", err)
	}

	listing := make(map[string][]string, len(model.Categories))
	for _, c := range model.Categories {
		listing[string(c)] = entities.Values(c)
	}

	return &model.Report{
		Document:   document,
		VerifiedAt: time.Now().UTC(),
		Claim:      claim.Trimmed(),
		Entities:   listing,
		Issues:     result.Issues,
		Confidence: result.Confidence,
		Supplied:   result.Supplied,
		Status:     model.StatusFor(result),
	}, nil
}
