package domain

import (
	"net/mail"
	"regexp"
	"time"
)

// TrainingDates is the date range frozen onto a participant record.
type TrainingDates struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TrainingSnapshot is the training metadata copied onto a participant at
// write time. It is deliberately decoupled from the live TrainingEvent so
// certificate verification stays stable after the event is edited or deleted.
// Do not replace these fields with a join.
type TrainingSnapshot struct {
	Title        string        `json:"training_title"`
	Theme        string        `json:"training_theme"`
	Dates        TrainingDates `json:"training_dates"`
	Organization string        `json:"organization"`
}

// Participant is a trainee record. TrainingID is a lookup reference only;
// participants outlive the training they point at.
type Participant struct {
	ID                  int32            `json:"id"`
	FullName            string           `json:"full_name"`
	AadhaarNumber       string           `json:"aadhaar_number"`
	Email               string           `json:"email"`
	Phone               string           `json:"phone"`
	TrainingID          int32            `json:"training_id"`
	Training            TrainingSnapshot `json:"training"`
	CertificateIssued   bool             `json:"certificate_issued"`
	CertificateIssuedAt *time.Time       `json:"certificate_issued_at,omitempty"`
	CertificateURL      string           `json:"certificate_url,omitempty"`
	CreatedOn           time.Time        `json:"created_on"`
}

var (
	aadhaarPattern = regexp.MustCompile(`^\d{12}$`)
	phonePattern   = regexp.MustCompile(`^\d{10}$`)
)

// ValidAadhaar reports whether s is exactly 12 digits.
func ValidAadhaar(s string) bool {
	return aadhaarPattern.MatchString(s)
}

// ValidPhone reports whether s is exactly 10 digits.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// ValidEmail reports whether s parses as an RFC 5322 address.
func ValidEmail(s string) bool {
	if s == "" {
		return false
	}
	_, err := mail.ParseAddress(s)
	return err == nil
}
