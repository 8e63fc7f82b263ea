// Package normalize provides the two text normalization forms used by the
// extraction and verification pipeline. Recognition normalization reshapes
// inconsistent source casing before entity recognition; match normalization
// canonicalizes names before fuzzy comparison. The two are deliberately
// separate contracts and must not be conflated.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RecognitionCase lowercases the input and then title-cases it: the first
// letter after any non-letter is uppercased, every other letter lowercased.
// Scanned documents often arrive in all caps or mixed case, which degrades
// recognition; this reshapes them into the casing recognizers expect.
func RecognitionCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Match canonicalizes a name for fuzzy comparison: lowercase, strip
// diacritics, map every non-alphanumeric rune to a space, collapse
// whitespace runs and trim. It must be applied identically to the claimed
// name and to every candidate so neither side is biased.
func Match(s string) string {
	s, _, _ = transform.String(stripAccents, strings.ToLower(s))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
