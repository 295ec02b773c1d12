package domain

import "strings"

// Company is the about-section content: people, governance bodies, history and values.
type Company struct {
	Executives  []Leader    `yaml:"executives" json:"executives"`
	Board       []Leader    `yaml:"board" json:"board"`
	Governance  []Principle `yaml:"governance" json:"governance"`
	Milestones  []Milestone `yaml:"milestones" json:"milestones"`
	Values      []Value     `yaml:"values" json:"values"`
	Commitments []Principle `yaml:"commitments" json:"commitments"`
}

// Principle is a titled paragraph: a committee, an ethical commitment.
type Principle struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

type Milestone struct {
	Year        string `yaml:"year" json:"year"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

type Value struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Principles  []string `yaml:"principles" json:"principles"`
}

// WithCompanyName substitutes the {{company}} placeholder.
func WithCompanyName(text string, loc Locale) string {
	return strings.ReplaceAll(text, companyPlaceholder, CompanyName(loc))
}
