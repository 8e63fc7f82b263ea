package extract

import (
	"regexp"
	"strings"

	"github.com/Jayakumar-B-23012888/extraction-and-verification-of-information-from-semi-categorized-data/internal/normalize"
)

// Deterministic pattern extractors. These run directly on raw document
// text, independent of any recognition backend, and are the sole source of
// date and certificate-number candidates.
var (
	// A plausible name line: letters and spaces only, 3-30 characters.
	namePattern = regexp.MustCompile(`^[A-Za-z ]{3,30}$`)

	// Two digits, a separator, two digits, a separator, four digits.
	// Each separator matches independently, so mixed styles within one
	// document are all found.
	datePattern = regexp.MustCompile(`\b\d{2}[/\-.]\d{2}[/\-.]\d{4}\b`)

	// A standalone run of exactly 8 digits. The word boundaries reject
	// substrings of longer digit runs.
	certPattern = regexp.MustCompile(`\b\d{8}\b`)
)

// nameStoplist rejects label-like lines that pass the name pattern.
// Compared against the uppercased candidate.
var nameStoplist = map[string]bool{
	"DATE OF BIRTH": true,
	"DOB":           true,
	"CERTIFICATE":   true,
	"NAME":          true,
}

// NamesByPattern extracts name candidates from a raw text block, one line
// at a time. It exists because recognizers miss names in low-context
// single-line layouts (printed certificates); the rule favors recall, with
// the stoplist absorbing the obvious label false positives. Accepted
// candidates are returned title-cased.
func NamesByPattern(block string) []string {
	var names []string
	for _, line := range strings.Split(block, "\n") {
		clean := strings.TrimSpace(line)
		if !namePattern.MatchString(clean) {
			continue
		}
		if nameStoplist[strings.ToUpper(clean)] {
			continue
		}
		names = append(names, normalize.RecognitionCase(clean))
	}
	return names
}

// Dates returns every date-shaped substring of the full document text, in
// order of appearance, duplicates preserved.
func Dates(text string) []string {
	return datePattern.FindAllString(text, -1)
}

// CertificateNumbers returns every standalone 8-digit run in the full
// document text, in order of appearance, duplicates preserved.
func CertificateNumbers(text string) []string {
	return certPattern.FindAllString(text, -1)
}
