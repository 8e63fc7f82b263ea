package match

import "testing"

func TestNameMatcher_ExactMatchScores100(t *testing.T) {
	for _, metric := range []Metric{NewLevenshtein(), NewJaroWinkler()} {
		m := NewNameMatcher(metric)

		score, err := m.Match("John Smith", []string{"John Smith"})
		if err != nil {
			t.Fatalf("%s: Match: %v", metric.Name(), err)
		}
		if score != 100 {
			t.Errorf("%s: exact match scored %d, want 100", metric.Name(), score)
		}
	}
}

func TestNameMatcher_TokenOrderInsensitive(t *testing.T) {
	m := NewNameMatcher(NewLevenshtein())

	ordered, err := m.Match("John Smith", []string{"John Smith"})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	reversed, err := m.Match("Smith John", []string{"John Smith"})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if ordered != reversed {
		t.Errorf("token order changed the score: %d vs %d", ordered, reversed)
	}
	if reversed != 100 {
		t.Errorf("reversed name scored %d, want 100", reversed)
	}
}

func TestNameMatcher_NormalizationApplied(t *testing.T) {
	m := NewNameMatcher(NewLevenshtein())

	score, err := m.Match("  JOHN-SMITH  ", []string{"john smith"})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if score != 100 {
		t.Errorf("normalized variants scored %d, want 100", score)
	}
}

func TestNameMatcher_EmptyCases(t *testing.T) {
	m := NewNameMatcher(NewLevenshtein())

	if score, _ := m.Match("John Smith", nil); score != 0 {
		t.Errorf("empty candidates scored %d, want 0", score)
	}
	if score, _ := m.Match("", []string{"John Smith"}); score != 0 {
		t.Errorf("empty claim scored %d, want 0", score)
	}
	// A claim of pure punctuation normalizes to empty.
	if score, _ := m.Match("...", []string{"John Smith"}); score != 0 {
		t.Errorf("punctuation-only claim scored %d, want 0", score)
	}
}

func TestNameMatcher_ScoreBounds(t *testing.T) {
	m := NewNameMatcher(NewLevenshtein())

	candidates := []string{"John Smith", "Acme University", "Zzzz", ""}
	for _, claim := range []string{"John Smith", "Jon Smyth", "Completely Different", "Q"} {
		score, err := m.Match(claim, candidates)
		if err != nil {
			t.Fatalf("Match(%q): %v", claim, err)
		}
		if score < 0 || score > 100 {
			t.Errorf("Match(%q) = %d, out of [0,100]", claim, score)
		}
	}
}

func TestNameMatcher_BestCandidateWins(t *testing.T) {
	m := NewNameMatcher(NewLevenshtein())

	score, err := m.Match("John Smith", []string{"Totally Unrelated", "John Smith", "Jon Smyth"})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if score != 100 {
		t.Errorf("best candidate scored %d, want 100", score)
	}
}

func TestNameMatcher_CloseVariantScoresBelowExact(t *testing.T) {
	m := NewNameMatcher(NewLevenshtein())

	score, err := m.Match("Jon Smyth", []string{"John Smith"})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if score <= 0 || score >= 100 {
		t.Errorf("close variant scored %d, want strictly between 0 and 100", score)
	}
}

func TestNewMetric(t *testing.T) {
	for _, name := range []string{"", "levenshtein", "jaro-winkler", "jarowinkler"} {
		if _, err := NewMetric(name); err != nil {
			t.Errorf("NewMetric(%q): %v", name, err)
		}
	}
	if _, err := NewMetric("soundex"); err == nil {
		t.Error("expected error for unknown metric")
	}
}
