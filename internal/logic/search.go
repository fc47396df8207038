package logic

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"careergranny/internal/domain"
)

// MinQueryLength is the shortest normalized query that is evaluated at all
const MinQueryLength = 2

// SearchOutcome is the result of evaluating a query against the dataset.
//
// EmptyQuery is set when the query was too short to evaluate; the caller
// should hide the result list rather than show "no results". A non-empty
// query with no matches has EmptyQuery == false and no Records.
type SearchOutcome struct {
	Query      string // normalized query
	EmptyQuery bool
	Records    []domain.SearchRecord
}

// NoMatches reports a real query that matched nothing
func (o SearchOutcome) NoMatches() bool {
	return !o.EmptyQuery && len(o.Records) == 0
}

// fold lower-cases s using the fixed site locale
func fold(s string) string {
	return cases.Lower(language.AmericanEnglish).String(s)
}

// NormalizeQuery trims surrounding whitespace and lower-cases the query
func NormalizeQuery(query string) string {
	return fold(strings.TrimSpace(query))
}

// Search matches query against records with the default minimum length
func Search(query string, records []domain.SearchRecord) SearchOutcome {
	return SearchWithMin(query, records, MinQueryLength)
}

// SearchWithMin matches query against the title, description and category of
// each record. Matching is plain substring containment with no ranking, so
// results keep catalog order.
func SearchWithMin(query string, records []domain.SearchRecord, minLength int) SearchOutcome {
	q := NormalizeQuery(query)
	if utf8.RuneCountInString(q) < minLength {
		return SearchOutcome{Query: q, EmptyQuery: true}
	}

	matches := make([]domain.SearchRecord, 0)
	for _, r := range records {
		if MatchesRecord(q, r) {
			matches = append(matches, r)
		}
	}
	return SearchOutcome{Query: q, Records: matches}
}

// MatchesRecord checks an already normalized query against one record
func MatchesRecord(normalizedQuery string, r domain.SearchRecord) bool {
	return strings.Contains(fold(r.Title), normalizedQuery) ||
		strings.Contains(fold(r.Description), normalizedQuery) ||
		strings.Contains(fold(string(r.Category)), normalizedQuery)
}

// SectionForCategory is the section a chosen search result opens
func SectionForCategory(c domain.Category) domain.Section {
	switch c {
	case domain.CategoryCareer, domain.CategorySkill, domain.CategoryResource:
		return domain.SectionResources
	case domain.CategoryEvent:
		return domain.SectionEvents
	default:
		return domain.SectionHome
	}
}
