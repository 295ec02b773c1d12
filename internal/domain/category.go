package domain

import "fmt"

// Category groups insight articles. Ids are the stored, case-sensitive values.
type Category string

const (
	CategoryMarketUpdates        Category = "Market Updates"
	CategoryGovernance           Category = "Governance"
	CategoryGrowthStrategy       Category = "Growth Strategy"
	CategoryInvestmentPhilosophy Category = "Investment Philosophy"
)

func Categories() []Category {
	return []Category{
		CategoryMarketUpdates,
		CategoryGovernance,
		CategoryGrowthStrategy,
		CategoryInvestmentPhilosophy,
	}
}

// ParseCategory matches the id exactly; "governance" is not "Governance".
func ParseCategory(id string) (Category, bool) {
	for _, c := range Categories() {
		if string(c) == id {
			return c, true
		}
	}
	return "", false
}

func (c Category) Label(loc Locale) string {
	switch c {
	case CategoryMarketUpdates:
		return pick(loc, "Market Updates", "Cập nhật thị trường", "市場アップデート")
	case CategoryGovernance:
		return pick(loc, "Governance", "Quản trị", "ガバナンス")
	case CategoryGrowthStrategy:
		return pick(loc, "Growth Strategy", "Chiến lược tăng trưởng", "成長戦略")
	case CategoryInvestmentPhilosophy:
		return pick(loc, "Investment Philosophy", "Triết lý đầu tư", "投資哲学")
	}
	panic(fmt.Sprintf("domain: unknown category %q", string(c)))
}

func AllCategoriesLabel(loc Locale) string {
	return pick(loc, "All", "Tất cả", "すべて")
}

// SortMode orders the insights listing.
type SortMode string

const (
	SortLatest        SortMode = "latest"
	SortFeaturedFirst SortMode = "featured-first"
)

// ParseSortMode falls back to SortLatest for anything it does not recognize.
func ParseSortMode(s string) SortMode {
	if SortMode(s) == SortFeaturedFirst {
		return SortFeaturedFirst
	}
	return SortLatest
}

func (m SortMode) Label(loc Locale) string {
	if m == SortFeaturedFirst {
		return pick(loc, "Featured first", "Nổi bật trước", "注目記事優先")
	}
	return pick(loc, "Latest", "Mới nhất", "最新")
}
