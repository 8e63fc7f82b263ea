package model

import "time"

// Field labels used as keys in the confidence map
const (
	FieldName        = "Name"
	FieldDOB         = "Date of Birth"
	FieldCertificate = "Certificate Number"
)

// Fields lists the verified field labels in evaluation order
var Fields = []string{FieldName, FieldDOB, FieldCertificate}

// Result is the outcome of one verification pass: mismatch issues in field
// evaluation order and a confidence score for every field.
//
// A confidence of 0 covers both "field not supplied" and "field supplied
// but unverifiable"; the two are distinguished by Supplied and by the
// presence of an issue, never by the score alone.
type Result struct {
	Issues     []string        `json:"issues"`
	Confidence map[string]int  `json:"confidence"`
	Supplied   map[string]bool `json:"supplied"`
}

// Verified reports whether verification raised no issues
func (r *Result) Verified() bool {
	return len(r.Issues) == 0
}

// Report is the complete output of a document verification run
type Report struct {
	Document   string    `json:"document,omitempty"`
	VerifiedAt time.Time `json:"verified_at"`

	Claim    FormClaim           `json:"claim"`
	Entities map[string][]string `json:"entities"`

	Issues     []string        `json:"issues"`
	Confidence map[string]int  `json:"confidence"`
	Supplied   map[string]bool `json:"supplied"`

	Status string `json:"status"` // "verified" or "flagged"
}

// StatusFor maps a verification result to a report status
func StatusFor(res *Result) string {
	if res.Verified() {
		return "verified"
	}
	return "flagged"
}
