package model

import "strings"

// FormClaim holds the caller-supplied field values to verify against the
// document. Every field is optional; an empty field is "not supplied" and
// never raises an issue.
type FormClaim struct {
	Name          string `json:"name,omitempty"`
	DOB           string `json:"dob,omitempty"`
	CertificateNo string `json:"certificate_no,omitempty"`
}

// Trimmed returns a copy of the claim with surrounding whitespace removed
// from every field
func (c FormClaim) Trimmed() FormClaim {
	return FormClaim{
		Name:          strings.TrimSpace(c.Name),
		DOB:           strings.TrimSpace(c.DOB),
		CertificateNo: strings.TrimSpace(c.CertificateNo),
	}
}

// Empty reports whether no field was supplied
func (c FormClaim) Empty() bool {
	t := c.Trimmed()
	return t.Name == "" && t.DOB == "" && t.CertificateNo == ""
}
