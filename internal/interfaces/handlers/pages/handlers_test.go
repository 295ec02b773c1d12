package pages

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/application/forms"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/content"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/domain"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/middleware"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/web"

	"github.com/PuerkitoBio/goquery"
	"github.com/gofiber/fiber/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPagesApp(t *testing.T) *fiber.App {
	t.Helper()
	cat, err := content.Load()
	require.NoError(t, err)
	r, err := web.NewRenderer()
	require.NoError(t, err)
	h := &Handlers{
		Catalog:       cat,
		Renderer:      r,
		FrameInterval: 16 * time.Millisecond,
		Forms: &forms.Service{
			Catalog: cat,
			Now:     func() time.Time { return time.UnixMilli(1767225600000) },
		},
	}
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler(nil, h.ErrorPage)})
	app.Use(middleware.Tracing())
	app.Use(middleware.Locale(domain.LocaleEN))
	app.Get("/", h.Home)
	app.Get("/about", h.About)
	app.Get("/about/leadership", h.Leadership)
	app.Get("/about/values", h.Values)
	app.Get("/investment", h.Investment)
	app.Get("/investment/:sector", h.Pillar)
	app.Get("/portfolio", h.Portfolio)
	app.Get("/portfolio/:id", h.PortfolioDetail)
	app.Get("/insights", h.Insights)
	app.Get("/insights/:id", h.InsightDetail)
	app.Get("/contact", h.Contact)
	app.Post("/contact", h.SubmitContact)
	app.Get("/compliance", h.Compliance)
	app.Post("/compliance", h.SubmitCompliance)
	app.Get("/policies/:kind", h.Policy)
	return app
}

func getDoc(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, *goquery.Document) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	return resp, doc
}

func get(t *testing.T, app *fiber.App, target string) (*http.Response, *goquery.Document) {
	t.Helper()
	return getDoc(t, app, httptest.NewRequest("GET", target, nil))
}

func post(t *testing.T, app *fiber.App, target string, form url.Values) (*http.Response, *goquery.Document) {
	t.Helper()
	req := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return getDoc(t, app, req)
}

func cardIDs(doc *goquery.Document, sel string) []string {
	var ids []string
	doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
		ids = append(ids, s.AttrOr("data-id", ""))
	})
	return ids
}

func TestStaticPages_Render(t *testing.T) {
	app := setupPagesApp(t)
	for _, path := range []string{
		"/", "/about", "/about/leadership", "/about/values", "/investment",
		"/investment/fashion", "/policies/privacy", "/policies/terms", "/policies/cookies",
	} {
		t.Run(path, func(t *testing.T) {
			resp, doc := get(t, app, path)
			assert.Equal(t, 200, resp.StatusCode)
			assert.Equal(t, "en", doc.Find("html").AttrOr("lang", ""))
			assert.Contains(t, doc.Find("footer").Text(), "Hang Ky Investment Group Joint Stock Company")
		})
	}
}

func TestHome_LocaleAndLatest(t *testing.T) {
	app := setupPagesApp(t)
	_, doc := get(t, app, "/?lang=vi")
	assert.Equal(t, "vi", doc.Find("html").AttrOr("lang", ""))
	assert.Contains(t, doc.Find("title").Text(), "Hằng Kỷ Investment Group")
	assert.Equal(t, 6, doc.Find(".card.pillar").Length())
	if diff := cmp.Diff([]string{"1", "2", "3"}, cardIDs(doc, ".latest article.insight")); diff != "" {
		t.Errorf("latest insights (-want +got):\n%s", diff)
	}
}

func TestPillar_UnknownSector404(t *testing.T) {
	app := setupPagesApp(t)
	resp, doc := get(t, app, "/investment/shipping")
	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, "404", doc.Find("#error").AttrOr("data-status", ""))
	assert.Contains(t, doc.Find("h1").Text(), "Page not found")
}

func TestPillar_ListsSectorCompanies(t *testing.T) {
	app := setupPagesApp(t)
	_, doc := get(t, app, "/investment/real-estate")
	assert.Equal(t, []string{"3"}, cardIDs(doc, "article.company"))
}

func TestPolicy_Unknown404(t *testing.T) {
	app := setupPagesApp(t)
	resp, _ := get(t, app, "/policies/refunds")
	assert.Equal(t, 404, resp.StatusCode)
}

func TestPortfolio_DefaultShowsAll(t *testing.T) {
	app := setupPagesApp(t)
	resp, doc := get(t, app, "/portfolio")
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "Showing 6 investments", strings.TrimSpace(doc.Find("#result-count").Text()))
	assert.Equal(t, 0, doc.Find("#reset").Length())
	assert.Equal(t, "all", doc.Find(".chips a.active").AttrOr("data-sector", ""))
	assert.Equal(t, "All Sectors", doc.Find("#sector-label").Text())
	if diff := cmp.Diff([]string{"1", "2", "3", "4", "5", "6"}, cardIDs(doc, "#results article")); diff != "" {
		t.Errorf("ids (-want +got):\n%s", diff)
	}
}

func TestPortfolio_SectorAndSearch(t *testing.T) {
	app := setupPagesApp(t)
	_, doc := get(t, app, "/portfolio?sector=technology")
	assert.Equal(t, "Showing 1 investment", strings.TrimSpace(doc.Find("#result-count").Text()))
	assert.Equal(t, []string{"1"}, cardIDs(doc, "#results article"))
	assert.Equal(t, "technology", doc.Find(".chips a.active").AttrOr("data-sector", ""))
	assert.Equal(t, 1, doc.Find("#reset").Length())

	_, doc = get(t, app, "/portfolio?q=%20%20E-COMMERCE%20")
	assert.Equal(t, []string{"2"}, cardIDs(doc, "#results article"))
}

func TestPortfolio_NoMatches(t *testing.T) {
	app := setupPagesApp(t)
	_, doc := get(t, app, "/portfolio?sector=fashion&q=cloud")
	assert.Equal(t, 1, doc.Find("#no-matches").Length())
	assert.Equal(t, 0, doc.Find("#results").Length())
	assert.Equal(t, "Showing 0 investments", strings.TrimSpace(doc.Find("#result-count").Text()))
	assert.Equal(t, "/portfolio", doc.Find("#no-matches a").AttrOr("href", ""))
}

func TestPortfolio_UnrecognizedSectorMatchesNothing(t *testing.T) {
	app := setupPagesApp(t)
	_, doc := get(t, app, "/portfolio?sector=shipping")
	assert.Equal(t, 1, doc.Find("#no-matches").Length())
	assert.Equal(t, 0, doc.Find(".chips a.active").Length())
}

func TestPortfolio_ConfidentialBadge(t *testing.T) {
	app := setupPagesApp(t)
	_, doc := get(t, app, "/portfolio")
	card := doc.Find(`article.company[data-id="3"]`)
	assert.Equal(t, 1, card.Find(".badge.nda").Length())
	assert.Equal(t, "Request access", strings.TrimSpace(card.Find("a").Last().Text()))
	assert.Equal(t, 0, doc.Find(`article.company[data-id="1"] .badge.nda`).Length())
}

func TestPortfolioDetail_ZeroStateMetrics(t *testing.T) {
	app := setupPagesApp(t)
	resp, doc := get(t, app, "/portfolio/1")
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "Portfolio Company A", doc.Find("h1").Text())

	metrics := doc.Find(".metric")
	require.Equal(t, 3, metrics.Length())
	first := metrics.First()
	assert.Equal(t, "0%", first.Find(".value").Text())
	assert.Equal(t, "28%", first.Find(".value").AttrOr("aria-label", ""))
	assert.Equal(t, "28", first.AttrOr("data-target", ""))
	assert.Equal(t, "percent", first.AttrOr("data-format", ""))
	assert.Equal(t, "0", first.AttrOr("data-delay", ""))
	assert.Equal(t, "1600", first.AttrOr("data-duration", ""))
	assert.Contains(t, first.AttrOr("data-keyframes", ""), `"display":"28%"`)
	assert.Equal(t, "180", metrics.Eq(1).AttrOr("data-delay", ""))
	assert.Equal(t, "#0", metrics.Eq(2).Find(".value").Text())
}

func TestPortfolioDetail_UnknownIDFallback(t *testing.T) {
	app := setupPagesApp(t)
	resp, doc := get(t, app, "/portfolio/42")
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "Portfolio Company", doc.Find("h1").Text())
	assert.Equal(t, "Various", doc.Find("p.eyebrow").First().Text())
	assert.Equal(t, "#0", doc.Find(".metric").Eq(2).Find(".value").Text())
}

func TestPortfolioDetail_NDALink(t *testing.T) {
	app := setupPagesApp(t)
	_, doc := get(t, app, "/portfolio/3")
	assert.Equal(t, 1, doc.Find(".status .badge.nda").Length())
	assert.Equal(t, "/contact?subject=NDA", doc.Find(".cta a").AttrOr("href", ""))
}

func TestInsights_DefaultOrder(t *testing.T) {
	app := setupPagesApp(t)
	_, doc := get(t, app, "/insights")
	assert.Equal(t, "Showing 6 insights", strings.TrimSpace(doc.Find("#result-count").Text()))
	assert.Equal(t, []string{"1", "2"}, cardIDs(doc, "#featured article"))
	assert.Equal(t, []string{"3", "4", "5", "6"}, cardIDs(doc, "#all-articles article"))
	assert.Equal(t, "latest", doc.Find("#sort option[selected]").AttrOr("value", ""))
}

func TestInsights_CategoryExactMatch(t *testing.T) {
	app := setupPagesApp(t)
	_, doc := get(t, app, "/insights?category=Investment+Philosophy")
	assert.Equal(t, 0, doc.Find("#featured").Length())
	assert.Equal(t, []string{"3", "6"}, cardIDs(doc, "#all-articles article"))

	_, doc = get(t, app, "/insights?category=governance")
	assert.Equal(t, 1, doc.Find("#no-matches").Length())
}

func TestInsights_FeaturedFirstKeepsSortInLinks(t *testing.T) {
	app := setupPagesApp(t)
	_, doc := get(t, app, "/insights?sort=featured-first&q=market")
	assert.Equal(t, "featured-first", doc.Find("#sort option[selected]").AttrOr("value", ""))
	href := doc.Find(`.chips a[data-category="Governance"]`).AttrOr("href", "")
	assert.Contains(t, href, "sort=featured-first")
	assert.Contains(t, href, "q=market")
}

func TestInsightDetail(t *testing.T) {
	app := setupPagesApp(t)
	_, doc := get(t, app, "/insights/1?lang=vi")
	body := doc.Find(".insight-body .body").Text()
	assert.Contains(t, body, "Hằng Kỷ Investment Group")
	assert.NotContains(t, body, "{{company}}")
	assert.Equal(t, []string{"2", "3"}, cardIDs(doc, "#related article"))

	resp, _ := get(t, app, "/insights/99")
	assert.Equal(t, 404, resp.StatusCode)
}

func TestLanguageSwitcherKeepsQuery(t *testing.T) {
	app := setupPagesApp(t)
	_, doc := get(t, app, "/portfolio?sector=fashion&lang=ja")
	href := doc.Find(`.langs a[hreflang="en"]`).AttrOr("href", "")
	assert.Equal(t, "/portfolio?lang=en&sector=fashion", href)
	assert.Equal(t, "ja", doc.Find(".langs a.active").Text())
}

func TestContact_PrefillFromQuery(t *testing.T) {
	app := setupPagesApp(t)
	_, doc := get(t, app, "/contact?type=media")
	assert.Equal(t, "Media request", doc.Find("#subject").AttrOr("value", ""))
	assert.Equal(t, "media", doc.Find("#inquiryType option[selected]").AttrOr("value", ""))
	assert.Equal(t, 1, doc.Find("#mediaOutlet").Length())

	_, doc = get(t, app, "/contact?subject=NDA")
	assert.Equal(t, "NDA", doc.Find("#subject").AttrOr("value", ""))
}

func TestContact_SubmitValidationErrors(t *testing.T) {
	app := setupPagesApp(t)
	resp, doc := post(t, app, "/contact", url.Values{"name": {"R2-D2"}, "email": {"nope"}})
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, 1, doc.Find(`[role="alert"]`).Length())
	for _, f := range []string{"name", "email", "subject", "message", "consent"} {
		assert.Equal(t, 1, doc.Find(`[data-field="`+f+`"]`).Length(), f)
	}
	assert.Equal(t, "nope", doc.Find("#email").AttrOr("value", ""))
}

func TestContact_SubmitReceipt(t *testing.T) {
	app := setupPagesApp(t)
	resp, doc := post(t, app, "/contact", url.Values{
		"name":        {"Jane Doe"},
		"email":       {"jane@example.com"},
		"inquiryType": {"partnership"},
		"message":     {"Hello"},
		"consent":     {"true"},
	})
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, forms.Reference("MSG", time.UnixMilli(1767225600000)), doc.Find("#reference").Text())
	assert.Contains(t, doc.Find("#receipt").Text(), "Partnership inquiry")
	assert.Equal(t, 0, doc.Find("#contact-form").Length())
}

func TestCompliance_RequestPreselectsDocument(t *testing.T) {
	app := setupPagesApp(t)
	_, doc := get(t, app, "/compliance?request=Company+Profile")
	checked := doc.Find(`input[name="documents"][checked]`)
	require.Equal(t, 1, checked.Length())
	assert.Equal(t, "Company Profile", checked.AttrOr("value", ""))

	_, doc = get(t, app, "/compliance?request=Unknown+Doc")
	assert.Equal(t, 0, doc.Find(`input[name="documents"][checked]`).Length())
}

func TestCompliance_SubmitReceipt(t *testing.T) {
	app := setupPagesApp(t)
	resp, doc := post(t, app, "/compliance", url.Values{
		"name":         {"Jane Doe"},
		"organization": {"Acme Bank"},
		"email":        {"jane@acme.example"},
		"purpose":      {"bank-kyc"},
		"documents":    {"Company Profile", "AML/Compliance Statement"},
		"ndaAgreed":    {"true"},
	})
	assert.Equal(t, 200, resp.StatusCode)
	assert.True(t, strings.HasPrefix(doc.Find("#reference").Text(), "VER-"))
}

func TestCompliance_SubmitErrors(t *testing.T) {
	app := setupPagesApp(t)
	resp, doc := post(t, app, "/compliance", url.Values{
		"name":      {"Jane Doe"},
		"email":     {"jane@acme.example"},
		"purpose":   {"other"},
		"documents": {"Company Profile"},
	})
	assert.Equal(t, 400, resp.StatusCode)
	for _, f := range []string{"organization", "purposeOther", "ndaAgreed"} {
		assert.Equal(t, 1, doc.Find(`[data-field="`+f+`"]`).Length(), f)
	}
	assert.Equal(t, 1, doc.Find(`input[value="Company Profile"][checked]`).Length())
}
