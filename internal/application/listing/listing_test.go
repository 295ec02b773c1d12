package listing

import (
	"testing"

	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/content"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadCatalog(t *testing.T) *content.Catalog {
	t.Helper()
	c, err := content.Load()
	require.NoError(t, err)
	return c
}

func portfolioIDs(items []domain.PortfolioItem) []string {
	ids := make([]string, len(items))
	for i, p := range items {
		ids[i] = p.ID
	}
	return ids
}

func insightIDs(items []domain.Insight) []string {
	ids := make([]string, len(items))
	for i, a := range items {
		ids[i] = a.ID
	}
	return ids
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "saas platform", Normalize("  SaaS \t\n  Platform "))
	assert.Equal(t, "", Normalize("   "))
}

func TestSelection(t *testing.T) {
	all := SelectSector("")
	assert.True(t, all.All())
	assert.True(t, all.Matches(domain.SectorFashion))

	tech := SelectSector("technology")
	assert.True(t, tech.Recognized())
	assert.True(t, tech.Matches(domain.SectorTechnology))
	assert.False(t, tech.Matches(domain.SectorFashion))

	unknown := SelectCategory("governance")
	assert.False(t, unknown.Recognized())
	assert.False(t, unknown.All())
	for _, c := range domain.Categories() {
		assert.False(t, unknown.Matches(c))
	}
}

func TestFilterPortfolio_TechnologySector(t *testing.T) {
	c := loadCatalog(t)
	res := FilterPortfolio(c.Portfolio(), PortfolioQuery{Sector: "technology"})

	require.Equal(t, 1, res.Count())
	assert.Equal(t, "Portfolio Company A", res.Items[0].Name)
	assert.False(t, res.Items[0].Confidential)
	assert.True(t, res.Active)
	assert.False(t, res.Empty())
	assert.Equal(t, 6, res.Total)
}

func TestFilterPortfolio_SearchFields(t *testing.T) {
	c := loadCatalog(t)
	cases := []struct {
		name   string
		query  string
		expect []string
	}{
		{"name", "company c", []string{"3"}},
		{"description", "  CLOUD-based  ", []string{"1"}},
		{"metric tag", "asia focus", []string{"4"}},
		{"sector label", "import & export", []string{"4"}},
		{"sector id", "real-estate", []string{"3"}},
		{"sector and description", "governance", []string{"6"}},
		{"no match", "zeppelin", []string{}},
		{"whitespace only", "   ", []string{"1", "2", "3", "4", "5", "6"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := FilterPortfolio(c.Portfolio(), PortfolioQuery{Sector: All, Search: tc.query})
			if diff := cmp.Diff(tc.expect, portfolioIDs(res.Items)); diff != "" {
				t.Errorf("ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterPortfolio_AndSemantics(t *testing.T) {
	items := []domain.PortfolioItem{
		{ID: "a", Name: "Alpha Cloud", Sector: domain.SectorFashion, Description: "apparel"},
		{ID: "b", Name: "Beta", Sector: domain.SectorTechnology, Description: "hardware"},
		{ID: "c", Name: "Gamma Cloud", Sector: domain.SectorTechnology, Description: "software"},
	}
	res := FilterPortfolio(items, PortfolioQuery{Sector: "technology", Search: "cloud"})
	// a matches only search, b matches only sector.
	assert.Equal(t, []string{"c"}, portfolioIDs(res.Items))
}

func TestFilterPortfolio_UnknownSectorMatchesNothing(t *testing.T) {
	c := loadCatalog(t)
	res := FilterPortfolio(c.Portfolio(), PortfolioQuery{Sector: "Technology"})
	assert.Empty(t, res.Items)
	assert.NotNil(t, res.Items)
	assert.False(t, res.Selection.Recognized())
	assert.True(t, res.Empty())
}

func TestFilterPortfolio_ResetIsIdempotent(t *testing.T) {
	c := loadCatalog(t)
	full := portfolioIDs(c.Portfolio())
	for _, q := range []PortfolioQuery{
		{Sector: "fashion", Search: "brand"},
		{Sector: "bogus"},
		{Search: "zzz"},
		{},
	} {
		reset := q.Reset()
		assert.False(t, reset.Active())
		res := FilterPortfolio(c.Portfolio(), reset)
		assert.Equal(t, full, portfolioIDs(res.Items))
		assert.Equal(t, reset, reset.Reset())
	}
}

func TestFilterPortfolio_SearchIsMonotone(t *testing.T) {
	c := loadCatalog(t)
	for _, sector := range append([]string{All}, "fashion", "technology", "governance") {
		base := FilterPortfolio(c.Portfolio(), PortfolioQuery{Sector: sector})
		baseSet := map[string]bool{}
		for _, id := range portfolioIDs(base.Items) {
			baseSet[id] = true
		}
		for _, q := range []string{"a", "brand", "governance", "e-commerce", "x"} {
			res := FilterPortfolio(c.Portfolio(), PortfolioQuery{Sector: sector, Search: q})
			for _, id := range portfolioIDs(res.Items) {
				assert.True(t, baseSet[id], "sector %s query %q returned %s outside base", sector, q, id)
			}
		}
	}
}

func TestFilterPortfolio_DoesNotMutateInput(t *testing.T) {
	c := loadCatalog(t)
	items := c.Portfolio()
	before := portfolioIDs(items)
	_ = FilterPortfolio(items, PortfolioQuery{Sector: "marketing", Search: "brand"})
	assert.Equal(t, before, portfolioIDs(items))
}

func TestFilterInsights_LatestIsStable(t *testing.T) {
	articles := []domain.Insight{
		{ID: "m1", Title: "One", Category: domain.CategoryGovernance, Date: "March 2026"},
		{ID: "j", Title: "Two", Category: domain.CategoryGovernance, Date: "January 2026"},
		{ID: "m2", Title: "Three", Category: domain.CategoryGovernance, Date: "March 2026"},
	}
	res := FilterInsights(articles, InsightQuery{Sort: domain.SortLatest})
	if diff := cmp.Diff([]string{"m1", "m2", "j"}, insightIDs(res.Items)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterInsights_FeaturedFirstTieBreak(t *testing.T) {
	articles := []domain.Insight{
		{ID: "old-featured", Category: domain.CategoryMarketUpdates, Date: "November 2025", Featured: true},
		{ID: "new-regular", Category: domain.CategoryMarketUpdates, Date: "March 2026"},
		{ID: "new-featured", Category: domain.CategoryMarketUpdates, Date: "February 2026", Featured: true},
		{ID: "mid-regular", Category: domain.CategoryMarketUpdates, Date: "December 2025"},
	}
	res := FilterInsights(articles, InsightQuery{Sort: domain.SortFeaturedFirst})
	assert.Equal(t, []string{"new-featured", "old-featured", "new-regular", "mid-regular"}, insightIDs(res.Items))

	latest := FilterInsights(articles, InsightQuery{Sort: domain.SortLatest})
	assert.Equal(t, []string{"new-regular", "new-featured", "mid-regular", "old-featured"}, insightIDs(latest.Items))
}

func TestFilterInsights_MalformedDateSortsLast(t *testing.T) {
	articles := []domain.Insight{
		{ID: "bad", Category: domain.CategoryGrowthStrategy, Date: "Blorp 2026"},
		{ID: "empty", Category: domain.CategoryGrowthStrategy, Date: ""},
		{ID: "old", Category: domain.CategoryGrowthStrategy, Date: "January 1999"},
		{ID: "new", Category: domain.CategoryGrowthStrategy, Date: "June 2026"},
	}
	res := FilterInsights(articles, InsightQuery{})
	assert.Equal(t, []string{"new", "old", "bad", "empty"}, insightIDs(res.Items))
	assert.Equal(t, domain.SortLatest, res.Sort)
}

func TestFilterInsights_GovernanceSearch(t *testing.T) {
	c := loadCatalog(t)
	res := FilterInsights(c.Insights(), InsightQuery{Category: All, Search: "governance", Sort: domain.SortLatest})

	require.Equal(t, 1, res.Count())
	assert.Equal(t, domain.CategoryGovernance, res.Items[0].Category)
	assert.Equal(t, "1", res.Items[0].ID)
}

func TestFilterInsights_CategoryIsCaseSensitive(t *testing.T) {
	c := loadCatalog(t)
	res := FilterInsights(c.Insights(), InsightQuery{Category: "governance"})
	assert.Empty(t, res.Items)
	assert.False(t, res.Selection.Recognized())

	res = FilterInsights(c.Insights(), InsightQuery{Category: "Market Updates"})
	assert.Equal(t, []string{"2", "4"}, insightIDs(res.Items))
}

func TestFilterInsights_PartitionPreservesOrder(t *testing.T) {
	c := loadCatalog(t)
	res := FilterInsights(c.Insights(), InsightQuery{Sort: domain.SortLatest})

	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, insightIDs(res.Items))
	assert.Equal(t, []string{"1", "2"}, insightIDs(res.Featured))
	assert.Equal(t, []string{"3", "4", "5", "6"}, insightIDs(res.Regular))
	assert.Equal(t, res.Count(), len(res.Featured)+len(res.Regular))
}

func TestFilterInsights_Deterministic(t *testing.T) {
	c := loadCatalog(t)
	q := InsightQuery{Category: "Investment Philosophy", Search: "risk", Sort: domain.SortFeaturedFirst}
	first := FilterInsights(c.Insights(), q)
	for i := 0; i < 10; i++ {
		again := FilterInsights(c.Insights(), q)
		assert.Equal(t, insightIDs(first.Items), insightIDs(again.Items))
	}
}

func TestFilterInsights_ResetRestoresLatest(t *testing.T) {
	c := loadCatalog(t)
	q := InsightQuery{Category: "Growth Strategy", Search: "scale", Sort: domain.SortFeaturedFirst}
	assert.True(t, q.Active())

	reset := q.Reset()
	assert.Equal(t, InsightQuery{Category: All, Sort: domain.SortLatest}, reset)
	res := FilterInsights(c.Insights(), reset)
	assert.Equal(t, 6, res.Count())
	assert.False(t, res.Active)
	assert.False(t, res.Empty())
}

func TestFilterInsights_SortDoesNotActivateFilters(t *testing.T) {
	q := InsightQuery{Category: All, Sort: domain.SortFeaturedFirst}
	assert.False(t, q.Active())
}
