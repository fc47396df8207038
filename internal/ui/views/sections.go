package views

import "careergranny/internal/domain"

const tagline = "Helping every generation find meaningful work."

var aboutParagraphs = []string{
	"Career Granny pairs job seekers with mentors who have seen a few decades of working life.",
	"We run workshops, networking nights and webinars, and we raise funds so every one of them stays free.",
	"Whether you are starting out, switching careers or returning to work, there is a seat for you.",
}

// SectionLabel is the menu label of a section
func SectionLabel(s domain.Section) string {
	switch s {
	case domain.SectionHome:
		return "Home"
	case domain.SectionAbout:
		return "About"
	case domain.SectionResources:
		return "Resources"
	case domain.SectionEvents:
		return "Events"
	case domain.SectionStats:
		return "Impact"
	case domain.SectionContact:
		return "Contact"
	default:
		return string(s)
	}
}

// CategoryHeading titles a group of search records on the resources section
func CategoryHeading(c domain.Category) string {
	switch c {
	case domain.CategoryCareer:
		return "Careers"
	case domain.CategorySkill:
		return "Skills"
	case domain.CategoryResource:
		return "Guides & Tools"
	default:
		return string(c)
	}
}
