package domain

import "time"

// Category classifies a searchable record
type Category string

const (
	CategoryCareer   Category = "career"
	CategorySkill    Category = "skill"
	CategoryResource Category = "resource"
	CategoryEvent    Category = "event"
)

// Known reports whether c is one of the search categories the site knows about
func (c Category) Known() bool {
	switch c {
	case CategoryCareer, CategorySkill, CategoryResource, CategoryEvent:
		return true
	}
	return false
}

// SearchRecord is one entry of the static search dataset
type SearchRecord struct {
	Title       string   `yaml:"title" json:"title"`
	Category    Category `yaml:"type" json:"type"`
	Description string   `yaml:"description" json:"description"`
}

// EventRecord is one entry of the static event catalog.
// Array order in the catalog is display order.
type EventRecord struct {
	ID          int    `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Date        string `yaml:"date" json:"date"` // ISO-8601 calendar date
	Category    string `yaml:"type" json:"type"`
	Status      string `yaml:"status" json:"status"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"image" json:"image"`
	Link        string `yaml:"link" json:"link"`
}

// DateLayout is the layout of EventRecord.Date
const DateLayout = "2006-01-02"

// Day parses the event date as a calendar day in UTC
func (e EventRecord) Day() (time.Time, error) {
	return time.Parse(DateLayout, e.Date)
}

// FormInput is a single contact form submission attempt
type FormInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Section is one page of the site. Only one is visible at a time.
type Section string

const (
	SectionHome      Section = "home"
	SectionAbout     Section = "about"
	SectionResources Section = "resources"
	SectionEvents    Section = "events"
	SectionStats     Section = "stats"
	SectionContact   Section = "contact"
)

// Sections lists the site sections in menu order
func Sections() []Section {
	return []Section{
		SectionHome,
		SectionAbout,
		SectionResources,
		SectionEvents,
		SectionStats,
		SectionContact,
	}
}

// Stat is an impact counter shown on the stats section
type Stat struct {
	Label  string `yaml:"label" json:"label"`
	Target int    `yaml:"target" json:"target"`
	Suffix string `yaml:"suffix" json:"suffix"`
}
