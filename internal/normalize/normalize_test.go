package normalize

import "testing"

func TestRecognitionCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"JOHN SMITH", "John Smith"},
		{"john smith", "John Smith"},
		{"jOhN sMiTh", "John Smith"},
		{"DATE OF BIRTH: 01/02/2020", "Date Of Birth: 01/02/2020"},
		{"o'brien", "O'Brien"},
		{"", ""},
		{"  spaced  out  ", "  Spaced  Out  "},
	}

	for _, tt := range tests {
		if got := RecognitionCase(tt.in); got != tt.want {
			t.Errorf("RecognitionCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"John Smith", "john smith"},
		{"  John   Smith  ", "john smith"},
		{"JOHN-SMITH", "john smith"},
		{"Élodie Dupont", "elodie dupont"},
		{"O'Brien, John", "o brien john"},
		{"...", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Match(tt.in); got != tt.want {
			t.Errorf("Match(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMatchSymmetry(t *testing.T) {
	// The same input must always normalize identically regardless of
	// which side of a comparison it appears on.
	a := Match("José  García-López")
	b := Match("José  García-López")
	if a != b {
		t.Errorf("Match is not deterministic: %q vs %q", a, b)
	}
}
