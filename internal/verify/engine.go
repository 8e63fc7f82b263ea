// Package verify implements the verification engine: it compares
// caller-supplied claim fields against the entities and patterns extracted
// from a document and produces per-field confidence scores and mismatch
// issues.
package verify

import (
	"fmt"

	"github.com/Jayakumar-B-23012888/extraction-and-verification-of-information-from-semi-categorized-data/internal/extract"
	"github.com/Jayakumar-B-23012888/extraction-and-verification-of-information-from-semi-categorized-data/internal/match"
	"github.com/Jayakumar-B-23012888/extraction-and-verification-of-information-from-semi-categorized-data/internal/model"
)

// Issue messages, one per field
const (
	IssueNameMismatch = "Candidate name mismatch or low confidence"
	IssueDOBMismatch  = "Date of birth mismatch or not found"
	IssueCertMismatch = "Certificate number mismatch or not found"
)

// DefaultNameThreshold is the confidence below which a supplied name
// raises an issue
const DefaultNameThreshold = 85

// Engine verifies form claims against an extracted entity set and the
// full document text. One Verify call is a single pass with no retries;
// every field is always evaluated and scored.
type Engine struct {
	matcher   match.Matcher
	threshold int
}

// NewEngine creates an engine over the given name matcher. threshold <= 0
// selects the default.
func NewEngine(matcher match.Matcher, threshold int) *Engine {
	if threshold <= 0 {
		threshold = DefaultNameThreshold
	}
	return &Engine{matcher: matcher, threshold: threshold}
}

// Verify evaluates the three claim fields in order: name, date of birth,
// certificate number.
//
// The name is fuzzy-matched against PERSON entities only; the full text is
// never used as a name fallback. Date of birth and certificate number are
// exact-membership checks against pattern scans of the full text, so the
// claimed strings must appear verbatim, separator style included.
//
// Empty fields score 0 and never raise an issue. A matcher failure aborts
// the call; no partial result is returned.
func (e *Engine) Verify(claim model.FormClaim, entities model.EntitySet, fullText string) (*model.Result, error) {
	claim = claim.Trimmed()

	result := &model.Result{
		Issues:     []string{},
		Confidence: make(map[string]int, len(model.Fields)),
		Supplied:   make(map[string]bool, len(model.Fields)),
	}

	nameConf, err := e.matcher.Match(claim.Name, entities.Values(model.CategoryPerson))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", match.ErrMatching, err)
	}
	result.Confidence[model.FieldName] = nameConf
	result.Supplied[model.FieldName] = claim.Name != ""
	if claim.Name != "" && nameConf < e.threshold {
		result.Issues = append(result.Issues, IssueNameMismatch)
	}

	dobConf := 0
	if claim.DOB != "" && containsString(extract.Dates(fullText), claim.DOB) {
		dobConf = 100
	}
	result.Confidence[model.FieldDOB] = dobConf
	result.Supplied[model.FieldDOB] = claim.DOB != ""
	if claim.DOB != "" && dobConf == 0 {
		result.Issues = append(result.Issues, IssueDOBMismatch)
	}

	certConf := 0
	if claim.CertificateNo != "" && containsString(extract.CertificateNumbers(fullText), claim.CertificateNo) {
		certConf = 100
	}
	result.Confidence[model.FieldCertificate] = certConf
	result.Supplied[model.FieldCertificate] = claim.CertificateNo != ""
	if claim.CertificateNo != "" && certConf == 0 {
		result.Issues = append(result.Issues, IssueCertMismatch)
	}

	return result, nil
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
