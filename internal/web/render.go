// Package web renders the site's HTML pages from embedded templates. Every page is
// executed through the shared layout with the request's locale passed in explicitly.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/domain"
)

//go:embed templates
var templateFS embed.FS

// Page is the data every template receives.
type Page struct {
	Locale  domain.Locale
	Title   string
	Path    string
	Query   url.Values
	TraceID string
	Data    interface{}
}

// InsightCard and PortfolioCard are the inputs of the card partials, which do not see
// the enclosing Page.
type InsightCard struct {
	Locale  domain.Locale
	Article domain.Insight
}

type PortfolioCard struct {
	Locale domain.Locale
	Item   domain.PortfolioItem
}

// Renderer holds one parsed template set per page, each layered on the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the embedded layout, partials and page templates.
func NewRenderer() (*Renderer, error) {
	base, err := template.New("layout").Funcs(funcMap()).ParseFS(templateFS, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	files, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}
	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, f := range files {
		name := strings.TrimSuffix(path.Base(f), ".html")
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(templateFS, f); err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render writes page name wrapped in the layout.
func (r *Renderer) Render(w io.Writer, name string, p Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("web: unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", p)
}

// Pages lists the parsed page names.
func (r *Renderer) Pages() []string {
	out := make([]string, 0, len(r.pages))
	for name := range r.pages {
		out = append(out, name)
	}
	return out
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"t":                T,
		"resultCount":      ResultCount,
		"companyName":      domain.CompanyName,
		"companyNameFull":  domain.CompanyNameFull,
		"companyNameShort": domain.CompanyNameShort,
		"withCompany":      domain.WithCompanyName,
		"sectors":          domain.Sectors,
		"categories":       domain.Categories,
		"locales":          domain.Locales,
		"sectorLabel":      func(loc domain.Locale, s domain.Sector) string { return s.Label(loc) },
		"categoryLabel":    func(loc domain.Locale, c domain.Category) string { return c.Label(loc) },
		"allSectors":       domain.AllSectorsLabel,
		"allCategories":    domain.AllCategoriesLabel,
		"sortLabel":        func(loc domain.Locale, m domain.SortMode) string { return m.Label(loc) },
		"year":             func() int { return time.Now().Year() },
		"langURL":          LangURL,
		"queryURL":         QueryURL,
		"insightCard":      func(loc domain.Locale, a domain.Insight) InsightCard { return InsightCard{Locale: loc, Article: a} },
		"portfolioCard":    func(loc domain.Locale, p domain.PortfolioItem) PortfolioCard { return PortfolioCard{Locale: loc, Item: p} },
		// article bodies come from the embedded catalog only
		"trustedHTML": func(s string) template.HTML { return template.HTML(s) },
	}
}

// LangURL is the current page with lang set to loc, for the language switcher.
func LangURL(p Page, loc domain.Locale) string {
	q := url.Values{}
	for k, v := range p.Query {
		q[k] = v
	}
	q.Set("lang", string(loc))
	return p.Path + "?" + q.Encode()
}

// QueryURL builds base?k1=v1&k2=v2 from alternating key/value pairs, skipping empty values.
func QueryURL(base string, kv ...string) string {
	q := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			q.Set(kv[i], kv[i+1])
		}
	}
	if len(q) == 0 {
		return base
	}
	return base + "?" + q.Encode()
}
