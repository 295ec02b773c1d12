package domain

// Insight is an article on the insights page.
type Insight struct {
	ID       string   `yaml:"id" json:"id"`
	Title    string   `yaml:"title" json:"title"`
	Excerpt  string   `yaml:"excerpt" json:"excerpt"`
	Category Category `yaml:"category" json:"category"`
	Date     string   `yaml:"date" json:"date"`
	ReadTime string   `yaml:"readTime" json:"readTime"`
	Featured bool     `yaml:"featured" json:"featured"`
	Body     string   `yaml:"body,omitempty" json:"-"`
	Related  []string `yaml:"related,omitempty" json:"related,omitempty"`
}

// companyPlaceholder is substituted with the localized company name when rendering Body.
const companyPlaceholder = "{{company}}"

// BodyFor returns the article body with the company name for loc filled in.
func (i Insight) BodyFor(loc Locale) string {
	return WithCompanyName(i.Body, loc)
}

// Inquiry types and compliance documents back the two simulated forms.
type InquiryType struct {
	ID              string `yaml:"id" json:"id"`
	Label           string `yaml:"label" json:"label"`
	Description     string `yaml:"description" json:"description"`
	SubjectTemplate string `yaml:"subjectTemplate" json:"subjectTemplate"`
}

type ComplianceDocument struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Status      string `yaml:"status" json:"status"`
}

type CompliancePurpose struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
}
