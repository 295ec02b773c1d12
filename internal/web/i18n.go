package web

import (
	"strconv"

	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/domain"
)

// uiStrings holds the UI copy per locale. Keys missing from vi or ja fall back to en.
var uiStrings = map[domain.Locale]map[string]string{
	domain.LocaleEN: {
		"nav.home":               "Home",
		"nav.about":              "About",
		"nav.aboutOverview":      "Company Overview",
		"nav.aboutLeadership":    "Leadership & Governance",
		"nav.aboutValues":        "Values & Ethics",
		"nav.investment":         "Investment Focus",
		"nav.portfolio":          "Portfolio",
		"nav.insights":           "Insights",
		"nav.compliance":         "Compliance",
		"nav.contact":            "Contact",
		"nav.contactUs":          "Contact Us",
		"hero.eyebrow":           "Multi-sector Investment Group",
		"hero.tagline":           "Founded on Absolute Trust",
		"hero.explore":           "Explore our portfolio",
		"home.mission":           "Our Mission",
		"home.pillars":           "Investment Pillars",
		"home.trust":             "Why Partners Trust Us",
		"home.cta":               "Start a conversation with our team",
		"search.label":           "Search",
		"search.submit":          "Apply",
		"portfolio.title":        "Our Portfolio",
		"portfolio.search":       "Search by company name, sector, or metrics...",
		"portfolio.filter":       "Filter by sector",
		"results.label":          "Results",
		"results.showing":        "Showing",
		"noun.investment":        "investment",
		"noun.investments":       "investments",
		"noun.insight":           "insight",
		"noun.insights":          "insights",
		"filters.reset":          "Reset filters",
		"empty.title":            "No matches",
		"empty.portfolio":        "No portfolio companies match the current filters or search. Try a different sector or clear the search to see all investments.",
		"empty.insights":         "No insights match the current filters or search. Try a different category or clear the search to see all articles.",
		"portfolio.confidential": "Confidential",
		"portfolio.nda":          "Detailed information is available to qualified parties under NDA.",
		"portfolio.results":      "Results",
		"portfolio.leadership":   "Leadership",
		"portfolio.strategy":     "Strategy",
		"portfolio.thesis":       "Investment Thesis",
		"portfolio.atGlance":     "At a Glance",
		"portfolio.back":         "Back to portfolio",
		"portfolio.ndaRequired":  "NDA Required",
		"portfolio.requestNDA":   "Request NDA Overview",
		"portfolio.view":         "View details",
		"portfolio.access":       "Request access",
		"insights.title":         "Insights",
		"insights.search":        "Search by title, excerpt, or category...",
		"insights.sort":          "Sort by",
		"insights.featured":      "Featured",
		"insights.all":           "All Articles",
		"insights.related":       "Related Insights",
		"insights.back":          "Back to insights",
		"about.title":            "About Us",
		"about.milestones":       "Milestones",
		"about.executives":       "Executive Leadership",
		"about.board":            "Board of Directors",
		"about.governance":       "Governance Structure",
		"about.values":           "Our Values",
		"about.commitments":      "Our Commitments",
		"investment.title":       "Investment Focus",
		"investment.focus":       "Focus Areas",
		"compliance.title":       "Compliance & Verification",
		"compliance.documents":   "Compliance Documents",
		"compliance.request":     "Request Verification",
		"compliance.requestDoc":  "Request",
		"contact.title":          "Contact Us",
		"contact.types":          "How can we help?",
		"form.name":              "Full name",
		"form.email":             "Email",
		"form.company":           "Company",
		"form.organization":      "Organization",
		"form.inquiryType":       "Inquiry type",
		"form.subject":           "Subject",
		"form.message":           "Message",
		"form.investmentDetail":  "Investment detail",
		"form.mediaOutlet":       "Media outlet",
		"form.consent":           "I agree to the processing of my data for this inquiry.",
		"form.purpose":           "Purpose",
		"form.purposeOther":      "Please specify",
		"form.documents":         "Documents",
		"form.nda":               "I agree to keep the requested documents confidential.",
		"form.submit":            "Submit",
		"form.errors":            "Please correct the highlighted fields.",
		"form.received":          "Thank you. Your request has been received.",
		"form.reference":         "Reference",
		"policy.privacy":         "Privacy Policy",
		"policy.terms":           "Terms of Use",
		"policy.cookies":         "Cookie Policy",
		"footer.rights":          "All rights reserved.",
		"error.title":            "Something went wrong",
		"error.notFound":         "Page not found",
		"error.home":             "Return home",
	},
	domain.LocaleVI: {
		"nav.home":            "Trang chủ",
		"nav.about":           "Về chúng tôi",
		"nav.aboutOverview":   "Tổng quan công ty",
		"nav.aboutLeadership": "Lãnh đạo & Quản trị",
		"nav.aboutValues":     "Giá trị & Đạo đức",
		"nav.investment":      "Lĩnh vực đầu tư",
		"nav.portfolio":       "Danh mục đầu tư",
		"nav.insights":        "Góc nhìn",
		"nav.compliance":      "Tuân thủ",
		"nav.contact":         "Liên hệ",
		"nav.contactUs":       "Liên hệ chúng tôi",
		"search.label":        "Tìm kiếm",
		"search.submit":       "Áp dụng",
		"portfolio.search":    "Tìm kiếm theo tên công ty, lĩnh vực hoặc chỉ số...",
		"portfolio.filter":    "Lọc theo lĩnh vực",
		"results.label":       "Kết quả",
		"results.showing":     "Hiển thị",
		"noun.investment":     "đầu tư",
		"noun.investments":    "đầu tư",
		"noun.insight":        "góc nhìn",
		"noun.insights":       "góc nhìn",
		"filters.reset":       "Đặt lại bộ lọc",
		"insights.title":      "Góc nhìn",
		"insights.search":     "Tìm kiếm theo tiêu đề, mô tả hoặc danh mục...",
		"insights.sort":       "Sắp xếp theo",
		"error.notFound":      "Không tìm thấy trang",
		"error.home":          "Về trang chủ",
	},
	domain.LocaleJA: {
		"nav.home":            "ホーム",
		"nav.about":           "会社概要",
		"nav.aboutOverview":   "会社概要",
		"nav.aboutLeadership": "リーダーシップ・ガバナンス",
		"nav.aboutValues":     "価値観・倫理",
		"nav.investment":      "投資分野",
		"nav.portfolio":       "ポートフォリオ",
		"nav.insights":        "インサイト",
		"nav.compliance":      "コンプライアンス",
		"nav.contact":         "お問い合わせ",
		"nav.contactUs":       "お問い合わせ",
		"search.label":        "検索",
		"search.submit":       "適用",
		"portfolio.search":    "会社名、分野、または指標で検索...",
		"portfolio.filter":    "分野でフィルタリング",
		"results.label":       "結果",
		"results.showing":     "表示中",
		"noun.investment":     "投資",
		"noun.investments":    "投資",
		"noun.insight":        "インサイト",
		"noun.insights":       "インサイト",
		"filters.reset":       "フィルターをリセット",
		"insights.title":      "インサイト",
		"insights.search":     "タイトル、抜粋、またはカテゴリで検索...",
		"insights.sort":       "並び替え",
		"error.notFound":      "ページが見つかりません",
		"error.home":          "ホームへ戻る",
	},
}

// T returns the UI string for key, falling back to English and then to the key itself.
func T(loc domain.Locale, key string) string {
	if s, ok := uiStrings[loc][key]; ok {
		return s
	}
	if s, ok := uiStrings[domain.LocaleEN][key]; ok {
		return s
	}
	return key
}

// ResultCount renders the toolbar count, e.g. "Showing 1 investment". noun is the
// singular key suffix ("investment", "insight").
func ResultCount(loc domain.Locale, n int, noun string) string {
	key := "noun." + noun
	if n != 1 {
		key += "s"
	}
	return T(loc, "results.showing") + " " + strconv.Itoa(n) + " " + T(loc, key)
}
