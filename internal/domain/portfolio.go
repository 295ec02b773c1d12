package domain

// PortfolioItem is one entry of the portfolio listing.
type PortfolioItem struct {
	ID           string   `yaml:"id" json:"id"`
	Name         string   `yaml:"name" json:"name"`
	Sector       Sector   `yaml:"sector" json:"sector"`
	Description  string   `yaml:"description" json:"description"`
	Status       string   `yaml:"status" json:"status"`
	Confidential bool     `yaml:"confidential" json:"confidential"`
	Metrics      []string `yaml:"metrics" json:"metrics"`
}

// FallbackPortfolioItem stands in for an id the catalog does not know. Its sector is
// empty; callers must not ask it for a label.
func FallbackPortfolioItem(id string) PortfolioItem {
	return PortfolioItem{
		ID:     id,
		Name:   "Portfolio Company",
		Status: "Active Investment",
	}
}

// SectorLabel is the item's sector label, or "Various" for a fallback entry.
func (p PortfolioItem) SectorLabel(loc Locale) string {
	if _, ok := ParseSector(string(p.Sector)); !ok {
		return pick(loc, "Various", "Đa lĩnh vực", "各種")
	}
	return p.Sector.Label(loc)
}

// PortfolioDetail is the body of a portfolio company page.
type PortfolioDetail struct {
	Overview         string         `yaml:"overview" json:"overview"`
	InvestmentThesis string         `yaml:"investmentThesis" json:"investmentThesis"`
	Strategy         []string       `yaml:"strategy" json:"strategy"`
	AtGlance         AtGlance       `yaml:"atGlance" json:"atGlance"`
	Results          []ResultMetric `yaml:"results" json:"results"`
	Leadership       []Leader       `yaml:"leadership" json:"leadership"`
	HighlightChips   []string       `yaml:"highlightChips" json:"highlightChips"`
}

type AtGlance struct {
	BusinessModel string `yaml:"businessModel" json:"businessModel"`
	Stage         string `yaml:"stage" json:"stage"`
	RegionFocus   string `yaml:"regionFocus" json:"regionFocus"`
}

type Leader struct {
	Name           string `yaml:"name" json:"name"`
	Role           string `yaml:"role" json:"role"`
	Responsibility string `yaml:"responsibility" json:"responsibility"`
}

// ValueFormat decides how an animated metric is printed.
type ValueFormat string

const (
	FormatPercent ValueFormat = "percent"
	FormatRank    ValueFormat = "rank"
)

// ResultMetric is a headline figure. Metrics without a numeric target and format are
// rendered from Value as-is and never animate.
type ResultMetric struct {
	Label        string      `yaml:"label" json:"label"`
	Value        string      `yaml:"value" json:"value"`
	Period       string      `yaml:"period" json:"period"`
	Note         string      `yaml:"note" json:"note"`
	NumericValue *int        `yaml:"numericValue,omitempty" json:"numericValue,omitempty"`
	Format       ValueFormat `yaml:"valueFormat,omitempty" json:"valueFormat,omitempty"`
}

// Animated reports whether the metric has both a numeric target and a format.
func (m ResultMetric) Animated() bool {
	return m.NumericValue != nil && (m.Format == FormatPercent || m.Format == FormatRank)
}

// Pillar is an investment pillar landing page.
type Pillar struct {
	Sector     Sector   `yaml:"sector" json:"sector"`
	Title      string   `yaml:"title" json:"title"`
	Summary    string   `yaml:"summary" json:"summary"`
	FocusAreas []string `yaml:"focusAreas" json:"focusAreas"`
}
