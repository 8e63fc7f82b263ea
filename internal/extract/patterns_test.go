package extract

import (
	"reflect"
	"testing"
)

func TestNamesByPattern(t *testing.T) {
	block := "JOHN SMITH\nDATE OF BIRTH\n123 Main St"

	got := NamesByPattern(block)
	want := []string{"John Smith"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NamesByPattern(%q) = %v, want %v", block, got, want)
	}
}

func TestNamesByPattern_Rules(t *testing.T) {
	tests := []struct {
		name  string
		block string
		want  []string
	}{
		{"stoplist rejects labels", "NAME\nDOB\nCERTIFICATE\nDATE OF BIRTH", nil},
		{"digits rejected", "John Smith 3rd", nil},
		{"too short", "Jo", nil},
		{"too long", "A Very Long Name That Exceeds The Limit", nil},
		{"punctuation rejected", "Smith, John", nil},
		{"title-cases accepted lines", "mary jane watson", []string{"Mary Jane Watson"}},
		{"multiple candidates kept in order", "JOHN SMITH\nJane Doe", []string{"John Smith", "Jane Doe"}},
		{"surrounding whitespace trimmed", "   JOHN SMITH   ", []string{"John Smith"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NamesByPattern(tt.block)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NamesByPattern(%q) = %v, want %v", tt.block, got, tt.want)
			}
		})
	}
}

func TestDates(t *testing.T) {
	got := Dates("DOB: 01/02/2020 and 03-04-2021.")
	want := []string{"01/02/2020", "03-04-2021"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Dates = %v, want %v", got, want)
	}
}

func TestDates_SeparatorsAndDuplicates(t *testing.T) {
	got := Dates("01.02.2020 then 01/02/2020 then 01.02.2020")
	want := []string{"01.02.2020", "01/02/2020", "01.02.2020"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Dates = %v, want %v", got, want)
	}

	if got := Dates("no dates here, 1/2/2020 is too short"); got != nil {
		t.Errorf("Dates on dateless text = %v, want nil", got)
	}
}

func TestCertificateNumbers(t *testing.T) {
	got := CertificateNumbers("No. 12345678 and 123456789")
	want := []string{"12345678"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CertificateNumbers = %v, want %v", got, want)
	}
}

func TestCertificateNumbers_Boundaries(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"cert 00000001.", []string{"00000001"}},
		// too short
		{"1234567", nil},
		// letter prefix removes the leading word boundary
		{"A12345678", nil},
		// duplicates preserved
		{"12345678 12345678", []string{"12345678", "12345678"}},
	}

	for _, tt := range tests {
		got := CertificateNumbers(tt.text)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("CertificateNumbers(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
