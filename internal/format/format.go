// Package format renders dates and numbers the way the site displays them.
// The site is en-US only.
package format

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"careergranny/internal/domain"
)

// LongDateLayout renders like "Saturday, February 15, 2025"
const LongDateLayout = "Monday, January 2, 2006"

var printer = message.NewPrinter(language.AmericanEnglish)

// EventDate formats an ISO-8601 calendar date for display. The date is
// treated as a calendar day, so the weekday never shifts with the local
// timezone.
func EventDate(iso string) (string, error) {
	day, err := time.Parse(domain.DateLayout, iso)
	if err != nil {
		return "", fmt.Errorf("invalid event date %q: %w", iso, err)
	}
	return day.Format(LongDateLayout), nil
}

// EventDateOrRaw formats iso, falling back to the raw string
func EventDateOrRaw(iso string) string {
	s, err := EventDate(iso)
	if err != nil {
		return iso
	}
	return s
}

// Number adds thousands separators: 2500 -> "2,500"
func Number(n int) string {
	return printer.Sprintf("%d", n)
}
