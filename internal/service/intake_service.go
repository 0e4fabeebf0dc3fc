package service

import (
	"context"

	"github.com/byword/intake-api/internal/model"
)

// IntakeService synthesizes acknowledgments for form submissions.
// Nothing is delivered or stored downstream; an acknowledgment confirms
// receipt only.
type IntakeService interface {
	// Contact acknowledges a contact form. The response message and the
	// estimated response time depend on sub.ServiceType.
	Contact(ctx context.Context, sub *model.ContactSubmission) (*model.ContactAck, error)

	// Intake acknowledges a legal intake form.
	Intake(ctx context.Context, sub model.Submission) (*model.IntakeAck, error)

	// Catering acknowledges a catering inquiry.
	Catering(ctx context.Context, sub model.Submission) (*model.CateringAck, error)
}
