package model

import "time"

// Identifier prefixes for acknowledgments. The suffix is the epoch-millisecond
// timestamp of the request, so IDs are only distinct within one process.
const (
	ContactIDPrefix = "BWM_"
	CaseIDPrefix    = "LEGAL_"
	InquiryIDPrefix = "CATERING_"
)

const (
	StatusPendingReview = "pending_review"
	StatusPendingQuote  = "pending_quote"
)

// Recognized values of ContactSubmission.ServiceType.
const (
	ServiceLegal    = "legal"
	ServiceCatering = "catering"
)

// Submission kinds, used as log and metric labels.
const (
	KindContact  = "contact"
	KindIntake   = "intake"
	KindCatering = "catering"
)

// ContactSubmission is the body of POST /api/contact. Every field is optional.
type ContactSubmission struct {
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Company     string `json:"company,omitempty"`
	Message     string `json:"message,omitempty"`
	ServiceType string `json:"service_type,omitempty"`
}

// Submission is a free-form form payload (legal intake, catering inquiry).
// It is logged and acknowledged but never inspected.
type Submission map[string]any

// ContactAck is the acknowledgment for a contact submission.
type ContactAck struct {
	Success               bool     `json:"success"`
	Message               string   `json:"message"`
	EstimatedResponseTime string   `json:"estimated_response_time"`
	ContactID             string   `json:"contact_id"`
	Timestamp             string   `json:"timestamp"`
	NextSteps             []string `json:"next_steps"`
}

// IntakeAck is the acknowledgment for a legal intake submission.
type IntakeAck struct {
	Success               bool     `json:"success"`
	Message               string   `json:"message"`
	CaseID                string   `json:"case_id"`
	Status                string   `json:"status"`
	NextSteps             []string `json:"next_steps"`
	EstimatedConsultation string   `json:"estimated_consultation"`
	Timestamp             string   `json:"timestamp"`
}

// CateringAck is the acknowledgment for a catering inquiry.
type CateringAck struct {
	Success        bool     `json:"success"`
	Message        string   `json:"message"`
	InquiryID      string   `json:"inquiry_id"`
	Status         string   `json:"status"`
	NextSteps      []string `json:"next_steps"`
	EstimatedQuote string   `json:"estimated_quote"`
	Timestamp      string   `json:"timestamp"`
}

// TimestampFormat renders UTC instants as ISO-8601 with millisecond precision,
// e.g. 2026-10-19T08:15:30.123Z.
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// Timestamp formats t in UTC using TimestampFormat.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}
