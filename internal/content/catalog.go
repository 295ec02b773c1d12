// Package content holds the site's fixed records. The catalog is decoded once from the
// embedded YAML document and never modified afterwards.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/domain"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// ErrInvalidCatalog wraps every validation failure reported by Load.
var ErrInvalidCatalog = errors.New("invalid catalog")

type document struct {
	Portfolio           []domain.PortfolioItem            `yaml:"portfolio"`
	Details             map[string]domain.PortfolioDetail `yaml:"details"`
	Fallback            domain.PortfolioDetail            `yaml:"fallback"`
	Insights            []domain.Insight                  `yaml:"insights"`
	Pillars             []domain.Pillar                   `yaml:"pillars"`
	InquiryTypes        []domain.InquiryType              `yaml:"inquiryTypes"`
	ComplianceDocuments []domain.ComplianceDocument       `yaml:"complianceDocuments"`
	CompliancePurposes  []domain.CompliancePurpose        `yaml:"compliancePurposes"`
	Company             domain.Company                    `yaml:"company"`
}

// Catalog is the immutable record set. Accessors return copies so callers cannot
// reorder or edit the shared slices.
type Catalog struct {
	doc document
}

// Load decodes the embedded catalog.
func Load() (*Catalog, error) {
	return LoadFrom(bytes.NewReader(catalogYAML))
}

// LoadFrom decodes and validates a catalog document.
func LoadFrom(r io.Reader) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := validate(&doc); err != nil {
		return nil, err
	}
	return &Catalog{doc: doc}, nil
}

func validate(doc *document) error {
	seen := make(map[string]struct{}, len(doc.Portfolio))
	for _, p := range doc.Portfolio {
		if p.ID == "" {
			return fmt.Errorf("%w: portfolio item %q has no id", ErrInvalidCatalog, p.Name)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate portfolio id %q", ErrInvalidCatalog, p.ID)
		}
		seen[p.ID] = struct{}{}
		if _, ok := domain.ParseSector(string(p.Sector)); !ok {
			return fmt.Errorf("%w: portfolio %q has unknown sector %q", ErrInvalidCatalog, p.ID, p.Sector)
		}
	}
	for id := range doc.Details {
		if _, ok := seen[id]; !ok {
			return fmt.Errorf("%w: detail for unknown portfolio id %q", ErrInvalidCatalog, id)
		}
	}

	seen = make(map[string]struct{}, len(doc.Insights))
	for _, a := range doc.Insights {
		if a.ID == "" {
			return fmt.Errorf("%w: insight %q has no id", ErrInvalidCatalog, a.Title)
		}
		if _, dup := seen[a.ID]; dup {
			return fmt.Errorf("%w: duplicate insight id %q", ErrInvalidCatalog, a.ID)
		}
		seen[a.ID] = struct{}{}
		if _, ok := domain.ParseCategory(string(a.Category)); !ok {
			return fmt.Errorf("%w: insight %q has unknown category %q", ErrInvalidCatalog, a.ID, a.Category)
		}
		// Unparseable dates are allowed; they sort last.
		if !domain.ParseMonthYear(a.Date).Valid() {
			log.Warn().Str("insight_id", a.ID).Str("date", a.Date).Msg("insight date does not parse, sorting last")
		}
	}
	for _, a := range doc.Insights {
		for _, rel := range a.Related {
			if _, ok := seen[rel]; !ok {
				return fmt.Errorf("%w: insight %q relates to unknown id %q", ErrInvalidCatalog, a.ID, rel)
			}
		}
	}

	for _, p := range doc.Pillars {
		if _, ok := domain.ParseSector(string(p.Sector)); !ok {
			return fmt.Errorf("%w: pillar %q has unknown sector %q", ErrInvalidCatalog, p.Title, p.Sector)
		}
	}
	return nil
}

func (c *Catalog) Portfolio() []domain.PortfolioItem {
	return slices.Clone(c.doc.Portfolio)
}

func (c *Catalog) PortfolioByID(id string) (domain.PortfolioItem, bool) {
	for _, p := range c.doc.Portfolio {
		if p.ID == id {
			return p, true
		}
	}
	return domain.PortfolioItem{}, false
}

// PortfolioDetail returns the detail page body. Unknown ids get the generic fallback
// body with known=false.
func (c *Catalog) PortfolioDetail(id string) (domain.PortfolioDetail, bool) {
	if d, ok := c.doc.Details[id]; ok {
		return d, true
	}
	return c.doc.Fallback, false
}

// PortfolioPage returns what a company page shows. Unknown ids get a generic entry
// carrying the requested id and the fallback body, with known=false.
func (c *Catalog) PortfolioPage(id string) (domain.PortfolioItem, domain.PortfolioDetail, bool) {
	item, ok := c.PortfolioByID(id)
	if !ok {
		return domain.FallbackPortfolioItem(id), c.doc.Fallback, false
	}
	detail, _ := c.PortfolioDetail(id)
	return item, detail, true
}

func (c *Catalog) Insights() []domain.Insight {
	return slices.Clone(c.doc.Insights)
}

func (c *Catalog) InsightByID(id string) (domain.Insight, bool) {
	for _, a := range c.doc.Insights {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Insight{}, false
}

// RelatedInsights resolves the related ids of an article, in declared order.
func (c *Catalog) RelatedInsights(a domain.Insight) []domain.Insight {
	out := make([]domain.Insight, 0, len(a.Related))
	for _, id := range a.Related {
		if rel, ok := c.InsightByID(id); ok {
			out = append(out, rel)
		}
	}
	return out
}

func (c *Catalog) Pillars() []domain.Pillar {
	return slices.Clone(c.doc.Pillars)
}

func (c *Catalog) PillarBySector(s domain.Sector) (domain.Pillar, bool) {
	for _, p := range c.doc.Pillars {
		if p.Sector == s {
			return p, true
		}
	}
	return domain.Pillar{}, false
}

func (c *Catalog) InquiryTypes() []domain.InquiryType {
	return slices.Clone(c.doc.InquiryTypes)
}

func (c *Catalog) InquiryType(id string) (domain.InquiryType, bool) {
	for _, t := range c.doc.InquiryTypes {
		if t.ID == id {
			return t, true
		}
	}
	return domain.InquiryType{}, false
}

func (c *Catalog) ComplianceDocuments() []domain.ComplianceDocument {
	return slices.Clone(c.doc.ComplianceDocuments)
}

func (c *Catalog) CompliancePurposes() []domain.CompliancePurpose {
	return slices.Clone(c.doc.CompliancePurposes)
}

func (c *Catalog) CompliancePurpose(id string) (domain.CompliancePurpose, bool) {
	for _, p := range c.doc.CompliancePurposes {
		if p.ID == id {
			return p, true
		}
	}
	return domain.CompliancePurpose{}, false
}

func (c *Catalog) Company() domain.Company {
	co := c.doc.Company
	co.Executives = slices.Clone(co.Executives)
	co.Board = slices.Clone(co.Board)
	co.Governance = slices.Clone(co.Governance)
	co.Milestones = slices.Clone(co.Milestones)
	co.Values = slices.Clone(co.Values)
	co.Commitments = slices.Clone(co.Commitments)
	return co
}

// Counts reports record totals per collection, for the health dashboard and the CLI.
func (c *Catalog) Counts() map[string]int {
	return map[string]int{
		"portfolio":           len(c.doc.Portfolio),
		"details":             len(c.doc.Details),
		"insights":            len(c.doc.Insights),
		"pillars":             len(c.doc.Pillars),
		"inquiryTypes":        len(c.doc.InquiryTypes),
		"complianceDocuments": len(c.doc.ComplianceDocuments),
		"executives":          len(c.doc.Company.Executives),
	}
}
