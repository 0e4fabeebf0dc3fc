package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/byword/intake-api/internal/metrics"
	"github.com/byword/intake-api/internal/model"
)

const (
	estimateLegal    = "12 hours"
	estimateCatering = "6 hours"
	estimateDefault  = "24 hours"

	estimatedConsultation = "3-5 business days"
	estimatedQuote        = "24 hours"
)

var intakeNextSteps = []string{
	"Case review by our legal team",
	"Conflict of interest check",
	"Initial consultation scheduling",
	"Engagement letter preparation",
}

var cateringNextSteps = []string{
	"Menu consultation",
	"Custom quote preparation",
	"Tasting appointment scheduling",
	"Event coordination planning",
}

// Options configures NewIntakeService. Zero values select defaults.
type Options struct {
	// Now is the clock used for identifiers and timestamps. Defaults to time.Now.
	Now     func() time.Time
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// intakeServiceImpl is the production implementation of IntakeService.
type intakeServiceImpl struct {
	now     func() time.Time
	log     *slog.Logger
	metrics *metrics.Metrics
}

// NewIntakeService creates an IntakeService.
func NewIntakeService(opts Options) IntakeService {
	s := &intakeServiceImpl{now: opts.Now, log: opts.Logger, metrics: opts.Metrics}
	if s.now == nil {
		s.now = time.Now
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	return s
}

// Contact picks the message and estimate by service type.
func (s *intakeServiceImpl) Contact(ctx context.Context, sub *model.ContactSubmission) (*model.ContactAck, error) {
	if sub == nil {
		sub = &model.ContactSubmission{}
	}
	now := s.now()

	s.log.InfoContext(ctx, "contact submission received",
		"name", sub.Name,
		"email", sub.Email,
		"phone", sub.Phone,
		"company", sub.Company,
		"service_type", sub.ServiceType,
		"message", sub.Message,
	)

	var message, estimate string
	switch sub.ServiceType {
	case model.ServiceLegal:
		message = "Thank you for your legal services inquiry. A member of our legal team will contact you shortly."
		estimate = estimateLegal
	case model.ServiceCatering:
		message = "Thank you for your catering inquiry. Our catering coordinator will reach out with menu options."
		estimate = estimateCatering
	default:
		message = "Thank you for contacting Byword. We have received your message."
		estimate = estimateDefault
	}

	s.metrics.IncSubmission(model.KindContact)
	return &model.ContactAck{
		Success:               true,
		Message:               message,
		EstimatedResponseTime: estimate,
		ContactID:             newID(model.ContactIDPrefix, now),
		Timestamp:             model.Timestamp(now),
		NextSteps: []string{
			"Your inquiry has been received and logged",
			"A specialist will review your request",
			"You will receive a confirmation email shortly",
			fmt.Sprintf("Expect a response within %s", estimate),
		},
	}, nil
}

func (s *intakeServiceImpl) Intake(ctx context.Context, sub model.Submission) (*model.IntakeAck, error) {
	now := s.now()
	s.log.InfoContext(ctx, "legal intake received", "submission", map[string]any(sub))
	s.metrics.IncSubmission(model.KindIntake)

	return &model.IntakeAck{
		Success:               true,
		Message:               "Legal intake submitted successfully",
		CaseID:                newID(model.CaseIDPrefix, now),
		Status:                model.StatusPendingReview,
		NextSteps:             append([]string(nil), intakeNextSteps...),
		EstimatedConsultation: estimatedConsultation,
		Timestamp:             model.Timestamp(now),
	}, nil
}

func (s *intakeServiceImpl) Catering(ctx context.Context, sub model.Submission) (*model.CateringAck, error) {
	now := s.now()
	s.log.InfoContext(ctx, "catering inquiry received", "submission", map[string]any(sub))
	s.metrics.IncSubmission(model.KindCatering)

	return &model.CateringAck{
		Success:        true,
		Message:        "Catering inquiry received successfully",
		InquiryID:      newID(model.InquiryIDPrefix, now),
		Status:         model.StatusPendingQuote,
		NextSteps:      append([]string(nil), cateringNextSteps...),
		EstimatedQuote: estimatedQuote,
		Timestamp:      model.Timestamp(now),
	}, nil
}

// newID concatenates prefix and the epoch-millisecond time. Two requests in
// the same millisecond get the same ID.
func newID(prefix string, t time.Time) string {
	return prefix + strconv.FormatInt(t.UnixMilli(), 10)
}
