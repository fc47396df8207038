package contact

import (
	"time"

	"careergranny/internal/domain"
)

// Field identifies one input of the contact form
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// Fields lists the form inputs in tab order
func Fields() []Field {
	return []Field{FieldName, FieldEmail, FieldSubject, FieldMessage}
}

// Submission is a validated form waiting for its simulated hand-off
type Submission struct {
	ReceiptID   string
	Input       domain.FormInput
	SubmittedAt time.Time
}

// State holds contact form state
type State struct {
	Form    domain.FormInput
	Pending *Submission
	Last    string // receipt of the last delivered submission
}

// Event types
type SubmittedEvent struct {
	Submission Submission
}

type RejectedEvent struct {
	Field  string
	Reason string
}

type DeliveredEvent struct {
	ReceiptID string
}
