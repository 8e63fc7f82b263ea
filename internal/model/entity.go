package model

import "sort"

// Category classifies an extracted entity
type Category string

const (
	CategoryPerson Category = "PERSON" // Person names
	CategoryOrg    Category = "ORG"    // Organizations, institutions
	CategoryDate   Category = "DATE"   // Calendar dates and date-like phrases
	CategoryGPE    Category = "GPE"    // Geopolitical entities (countries, cities)
)

// Categories lists the supported entity categories in a stable order
var Categories = []Category{CategoryPerson, CategoryOrg, CategoryDate, CategoryGPE}

// Valid reports whether the category is one of the supported labels
func (c Category) Valid() bool {
	switch c {
	case CategoryPerson, CategoryOrg, CategoryDate, CategoryGPE:
		return true
	}
	return false
}

// Entity represents a single (category, text) pair extracted from a document
type Entity struct {
	Category Category `json:"category"`
	Text     string   `json:"text"`
}

// EntitySet holds deduplicated entity texts per category for one document.
// Membership is set-based: inserting an already-present text is a no-op.
type EntitySet map[Category]map[string]bool

// NewEntitySet creates an empty entity set with all supported categories present
func NewEntitySet() EntitySet {
	s := make(EntitySet, len(Categories))
	for _, c := range Categories {
		s[c] = make(map[string]bool)
	}
	return s
}

// Add inserts an entity text into its category set.
// Texts under unsupported categories are discarded.
func (s EntitySet) Add(c Category, text string) {
	if !c.Valid() || text == "" {
		return
	}
	if s[c] == nil {
		s[c] = make(map[string]bool)
	}
	s[c][text] = true
}

// Union merges another entity set into this one
func (s EntitySet) Union(other EntitySet) {
	for c, texts := range other {
		for text := range texts {
			s.Add(c, text)
		}
	}
}

// Values returns the texts of a category sorted lexicographically.
// Sorting gives deterministic output for rendering and tests; set
// membership itself is unordered.
func (s EntitySet) Values(c Category) []string {
	texts := make([]string, 0, len(s[c]))
	for text := range s[c] {
		texts = append(texts, text)
	}
	sort.Strings(texts)
	return texts
}

// Contains reports whether the category set holds the exact text
func (s EntitySet) Contains(c Category, text string) bool {
	return s[c][text]
}

// Len returns the total number of entities across all categories
func (s EntitySet) Len() int {
	n := 0
	for _, texts := range s {
		n += len(texts)
	}
	return n
}
