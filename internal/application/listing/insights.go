package listing

import (
	"slices"
	"strings"

	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/domain"
)

// InsightQuery is the insights toolbar state.
type InsightQuery struct {
	Category string
	Search   string
	Sort     domain.SortMode
}

func (InsightQuery) Reset() InsightQuery {
	return InsightQuery{Category: All, Sort: domain.SortLatest}
}

// Active ignores the sort mode: sorting never hides records.
func (q InsightQuery) Active() bool {
	return !SelectCategory(q.Category).All() || strings.TrimSpace(q.Search) != ""
}

// InsightResult is the filtered, ordered article list plus its featured / regular split.
type InsightResult struct {
	Items     []domain.Insight
	Featured  []domain.Insight
	Regular   []domain.Insight
	Selection Selection[domain.Category]
	Sort      domain.SortMode
	Search    string
	Total     int
	Active    bool
}

func (r InsightResult) Count() int { return len(r.Items) }

func (r InsightResult) Empty() bool { return r.Active && len(r.Items) == 0 }

// FilterInsights filters by category and search, then orders newest first. With
// SortFeaturedFirst featured articles lead and dates break ties. The sort is stable,
// so equal dates keep collection order.
func FilterInsights(articles []domain.Insight, q InsightQuery) InsightResult {
	sel := SelectCategory(q.Category)
	search := Normalize(q.Search)
	sortMode := domain.ParseSortMode(string(q.Sort))

	kept := filter(articles, func(a domain.Insight) bool {
		return sel.Matches(a.Category) && matchesSearch(search, a.Title, a.Excerpt, string(a.Category))
	})

	type dated struct {
		article domain.Insight
		date    domain.MonthYear
	}
	rows := make([]dated, len(kept))
	for i, a := range kept {
		rows[i] = dated{article: a, date: domain.ParseMonthYear(a.Date)}
	}
	slices.SortStableFunc(rows, func(a, b dated) int {
		if sortMode == domain.SortFeaturedFirst && a.article.Featured != b.article.Featured {
			if a.article.Featured {
				return -1
			}
			return 1
		}
		return a.date.Compare(b.date)
	})

	items := make([]domain.Insight, len(rows))
	for i, r := range rows {
		items[i] = r.article
	}
	featured, regular := Partition(items)
	return InsightResult{
		Items:     items,
		Featured:  featured,
		Regular:   regular,
		Selection: sel,
		Sort:      sortMode,
		Search:    search,
		Total:     len(articles),
		Active:    q.Active(),
	}
}

// Partition splits already-ordered articles into featured and regular, keeping order.
func Partition(items []domain.Insight) (featured, regular []domain.Insight) {
	featured = make([]domain.Insight, 0, len(items))
	regular = make([]domain.Insight, 0, len(items))
	for _, a := range items {
		if a.Featured {
			featured = append(featured, a)
		} else {
			regular = append(regular, a)
		}
	}
	return featured, regular
}
