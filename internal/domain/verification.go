package domain

import "time"

// VerificationResult is the public answer to a certificate lookup. The core
// fields come from the participant's frozen snapshot; the live fields are
// best-effort extra context and stay empty when the training no longer exists.
type VerificationResult struct {
	Verified            bool          `json:"verified"`
	AadhaarNumber       string        `json:"aadhaar_number,omitempty"`
	FullName            string        `json:"full_name,omitempty"`
	Email               string        `json:"email,omitempty"`
	Phone               string        `json:"phone,omitempty"`
	TrainingTitle       string        `json:"training_title,omitempty"`
	TrainingTheme       string        `json:"training_theme,omitempty"`
	TrainingDates       TrainingDates `json:"training_dates,omitempty"`
	Organization        string        `json:"organization,omitempty"`
	CertificateIssued   bool          `json:"certificate_issued"`
	CertificateIssuedAt *time.Time    `json:"certificate_issued_at,omitempty"`

	// Live enrichment from the referenced training, when it still exists.
	TrainingLocation *Location `json:"training_location,omitempty"`
	StartDate        string    `json:"start_date,omitempty"`
	EndDate          string    `json:"end_date,omitempty"`
}
