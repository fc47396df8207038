package input

import (
	"careergranny/internal/domain"
	"careergranny/internal/ui/services/contact"
	"careergranny/internal/ui/services/navigation"
	"careergranny/internal/ui/services/search"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Navigation *navigation.Service
	Search     *search.Service
	Contact    *contact.Service
}

// CurrentSection returns the visible section
func (c *ModelContext) CurrentSection() domain.Section {
	return c.Navigation.Current()
}

// MenuOpen returns true while the section menu is expanded
func (c *ModelContext) MenuOpen() bool {
	return c.Navigation.MenuOpen()
}

// SearchResultCount returns the number of results for the current query
func (c *ModelContext) SearchResultCount() int {
	return c.Search.GetMatchCount()
}

// SubmissionPending returns true while a contact submission is being sent
func (c *ModelContext) SubmissionPending() bool {
	_, pending := c.Contact.Pending()
	return pending
}
