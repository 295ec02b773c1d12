package listing

import (
	"strings"

	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/domain"
)

// PortfolioQuery is the portfolio toolbar state.
type PortfolioQuery struct {
	Sector string
	Search string
}

// Reset returns the default toolbar state.
func (PortfolioQuery) Reset() PortfolioQuery {
	return PortfolioQuery{Sector: All}
}

// Active reports whether the query differs from the reset state.
func (q PortfolioQuery) Active() bool {
	return !SelectSector(q.Sector).All() || strings.TrimSpace(q.Search) != ""
}

// PortfolioResult is the filtered portfolio in collection order.
type PortfolioResult struct {
	Items     []domain.PortfolioItem
	Selection Selection[domain.Sector]
	Search    string
	Total     int
	Active    bool
}

func (r PortfolioResult) Count() int { return len(r.Items) }

// Empty is a zero-match result under active filters; the caller should offer a reset.
func (r PortfolioResult) Empty() bool { return r.Active && len(r.Items) == 0 }

// FilterPortfolio keeps the items matching both the sector selector and the search
// query. Order is the collection order.
func FilterPortfolio(items []domain.PortfolioItem, q PortfolioQuery) PortfolioResult {
	sel := SelectSector(q.Sector)
	search := Normalize(q.Search)
	out := filter(items, func(p domain.PortfolioItem) bool {
		return sel.Matches(p.Sector) && matchesPortfolioSearch(p, search)
	})
	return PortfolioResult{
		Items:     out,
		Selection: sel,
		Search:    search,
		Total:     len(items),
		Active:    q.Active(),
	}
}

func matchesPortfolioSearch(p domain.PortfolioItem, search string) bool {
	if search == "" {
		return true
	}
	metrics := make([]string, len(p.Metrics))
	for i, m := range p.Metrics {
		metrics[i] = Normalize(m)
	}
	return matchesSearch(search,
		p.Name,
		p.Description,
		string(p.Sector),
		sectorLabel(p.Sector),
		strings.Join(metrics, " "),
	)
}

// sectorLabel is the English label; search must not depend on the viewer's locale.
func sectorLabel(s domain.Sector) string {
	if _, ok := domain.ParseSector(string(s)); !ok {
		return ""
	}
	return s.Label(domain.LocaleEN)
}
