package pages

import (
	"encoding/json"

	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/application/countup"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/application/listing"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/domain"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/middleware"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/web"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type PortfolioView struct {
	Result listing.PortfolioResult
	// Sector is the raw selector, kept so chip and form links round-trip it.
	Sector      string
	Search      string
	SectorLabel string
}

type MetricView struct {
	Metric        domain.ResultMetric
	Track         countup.Track
	KeyframesJSON string
}

type PortfolioDetailView struct {
	Item       domain.PortfolioItem
	Known      bool
	Detail     domain.PortfolioDetail
	Metrics    []MetricView
	DurationMS int64
}

type InsightsView struct {
	Result    listing.InsightResult
	Category  string
	Search    string
	SortModes []domain.SortMode
	// SortParam is empty for the default order so links stay short.
	SortParam string
}

type InsightDetailView struct {
	Article domain.Insight
	Related []domain.Insight
}

func warnUnrecognized(c *fiber.Ctx, param, raw string) {
	log.Warn().
		Str("trace_id", middleware.GetTraceID(c)).
		Str("param", param).
		Str("value", raw).
		Msg("Unrecognized filter selection")
}

// GET /portfolio?sector=&q=
func (h *Handlers) Portfolio(c *fiber.Ctx) error {
	loc := middleware.GetLocale(c)
	q := listing.PortfolioQuery{Sector: c.Query("sector"), Search: c.Query("q")}
	res := listing.FilterPortfolio(h.Catalog.Portfolio(), q)
	if !res.Selection.Recognized() {
		warnUnrecognized(c, "sector", q.Sector)
	}

	label := domain.AllSectorsLabel(loc)
	if !res.Selection.All() {
		if res.Selection.Recognized() {
			label = res.Selection.Value.Label(loc)
		} else {
			label = res.Selection.Raw
		}
	}
	return h.render(c, fiber.StatusOK, "portfolio", web.T(loc, "portfolio.title"), PortfolioView{
		Result:      res,
		Sector:      q.Sector,
		Search:      q.Search,
		SectorLabel: label,
	})
}

// GET /portfolio/:id renders the company page; unknown ids get the generic entry.
func (h *Handlers) PortfolioDetail(c *fiber.Ctx) error {
	item, detail, known := h.Catalog.PortfolioPage(c.Params("id"))
	tracks := countup.Timeline(detail.Results, h.FrameInterval)
	metrics := make([]MetricView, len(detail.Results))
	for i, m := range detail.Results {
		kf, err := json.Marshal(tracks[i].Keyframes)
		if err != nil {
			return err
		}
		metrics[i] = MetricView{Metric: m, Track: tracks[i], KeyframesJSON: string(kf)}
	}
	return h.render(c, fiber.StatusOK, "portfolio_detail", item.Name, PortfolioDetailView{
		Item:       item,
		Known:      known,
		Detail:     detail,
		Metrics:    metrics,
		DurationMS: countup.Duration.Milliseconds(),
	})
}

// GET /insights?category=&q=&sort=
func (h *Handlers) Insights(c *fiber.Ctx) error {
	loc := middleware.GetLocale(c)
	q := listing.InsightQuery{
		Category: c.Query("category"),
		Search:   c.Query("q"),
		Sort:     domain.ParseSortMode(c.Query("sort")),
	}
	res := listing.FilterInsights(h.Catalog.Insights(), q)
	if !res.Selection.Recognized() {
		warnUnrecognized(c, "category", q.Category)
	}
	sortParam := ""
	if res.Sort != domain.SortLatest {
		sortParam = string(res.Sort)
	}
	return h.render(c, fiber.StatusOK, "insights", web.T(loc, "insights.title"), InsightsView{
		Result:    res,
		Category:  q.Category,
		Search:    q.Search,
		SortModes: []domain.SortMode{domain.SortLatest, domain.SortFeaturedFirst},
		SortParam: sortParam,
	})
}

// GET /insights/:id
func (h *Handlers) InsightDetail(c *fiber.Ctx) error {
	a, ok := h.Catalog.InsightByID(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Article not found")
	}
	return h.render(c, fiber.StatusOK, "insight_detail", a.Title, InsightDetailView{
		Article: a,
		Related: h.Catalog.RelatedInsights(a),
	})
}
