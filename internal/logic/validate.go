package logic

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"careergranny/internal/domain"
)

// ValidationError is a contact form field that failed its check.
// Reason is shown to the user as is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

var (
	ErrEmptyName    = &ValidationError{Field: "name", Reason: "Please enter your name."}
	ErrInvalidEmail = &ValidationError{Field: "email", Reason: "Please enter a valid email address."}
	ErrEmptySubject = &ValidationError{Field: "subject", Reason: "Please enter a subject."}
	ErrEmptyMessage = &ValidationError{Field: "message", Reason: "Please enter your message."}
)

// emailPattern is a shape check only: local@domain.tld with no whitespace
// and a single @. It is not RFC 5322. The excluded whitespace is the
// ECMAScript set: ASCII whitespace including \v, U+FEFF and category Z.
var emailPattern = regexp.MustCompile(`^[^\s\v\x{FEFF}\p{Z}@]+@[^\s\v\x{FEFF}\p{Z}@]+\.[^\s\v\x{FEFF}\p{Z}@]+$`)

// IsValidEmail reports whether email has the local@domain.tld shape
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

type fieldCheck struct {
	value any
	rules []validation.Rule
	err   *ValidationError
}

// ValidateForm checks the fields in display order and returns the first
// failure, or nil when the form can be submitted.
func ValidateForm(in domain.FormInput) error {
	checks := []fieldCheck{
		{strings.TrimSpace(in.Name), []validation.Rule{validation.Required}, ErrEmptyName},
		{strings.TrimSpace(in.Email), []validation.Rule{validation.Required}, ErrInvalidEmail},
		// the shape check runs on the raw value so padded addresses are rejected
		{in.Email, []validation.Rule{validation.Match(emailPattern)}, ErrInvalidEmail},
		{strings.TrimSpace(in.Subject), []validation.Rule{validation.Required}, ErrEmptySubject},
		{strings.TrimSpace(in.Message), []validation.Rule{validation.Required}, ErrEmptyMessage},
	}

	for _, c := range checks {
		if err := validation.Validate(c.value, c.rules...); err != nil {
			return c.err
		}
	}
	return nil
}
