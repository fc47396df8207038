package contact

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"careergranny/internal/domain"
	appLog "careergranny/internal/log"
	"careergranny/internal/logic"
	"careergranny/internal/ui/services/events"
)

var (
	ErrSubmissionPending = errors.New("a submission is already being sent")
	ErrUnknownReceipt    = errors.New("unknown submission receipt")
)

// Service validates and hands off the contact form. Nothing is persisted:
// a submission only lives until Complete is called for its receipt.
type Service struct {
	state *State
	bus   events.EventBus
	now   func() time.Time
	newID func() string
}

// NewService creates a contact form service
func NewService(bus events.EventBus) *Service {
	return &Service{
		state: &State{},
		bus:   bus,
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

// SetField updates one input of the form
func (s *Service) SetField(field Field, value string) {
	switch field {
	case FieldName:
		s.state.Form.Name = value
	case FieldEmail:
		s.state.Form.Email = value
	case FieldSubject:
		s.state.Form.Subject = value
	case FieldMessage:
		s.state.Form.Message = value
	}
}

// SetForm replaces the whole form
func (s *Service) SetForm(in domain.FormInput) {
	s.state.Form = in
}

// Form returns the current form values
func (s *Service) Form() domain.FormInput {
	return s.state.Form
}

// Submit validates the form. A valid form becomes the pending submission;
// the caller completes it after the hand-off delay.
func (s *Service) Submit() (Submission, error) {
	if s.state.Pending != nil {
		return Submission{}, ErrSubmissionPending
	}

	if err := logic.ValidateForm(s.state.Form); err != nil {
		var verr *logic.ValidationError
		if errors.As(err, &verr) {
			appLog.Info("contact form rejected", "field", verr.Field)
			s.bus.Publish(RejectedEvent{Field: verr.Field, Reason: verr.Reason})
		}
		return Submission{}, err
	}

	sub := Submission{
		ReceiptID:   s.newID(),
		Input:       s.state.Form,
		SubmittedAt: s.now(),
	}
	s.state.Pending = &sub
	appLog.Info("contact form submitted", "receipt", sub.ReceiptID)
	s.bus.Publish(SubmittedEvent{Submission: sub})
	return sub, nil
}

// Complete finishes the pending submission and clears the form
func (s *Service) Complete(receiptID string) error {
	if s.state.Pending == nil || s.state.Pending.ReceiptID != receiptID {
		return fmt.Errorf("%w: %s", ErrUnknownReceipt, receiptID)
	}

	s.state.Pending = nil
	s.state.Last = receiptID
	s.state.Form = domain.FormInput{}
	s.bus.Publish(DeliveredEvent{ReceiptID: receiptID})
	return nil
}

// Pending returns the submission being sent, if any
func (s *Service) Pending() (Submission, bool) {
	if s.state.Pending == nil {
		return Submission{}, false
	}
	return *s.state.Pending, true
}

// LastReceipt returns the receipt of the last delivered submission
func (s *Service) LastReceipt() string {
	return s.state.Last
}

// Reset clears the form unless a submission is in flight
func (s *Service) Reset() {
	if s.state.Pending != nil {
		return
	}
	s.state.Form = domain.FormInput{}
}
