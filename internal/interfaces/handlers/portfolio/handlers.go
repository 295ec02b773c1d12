package portfolio

import (
	"time"

	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/application/countup"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/application/listing"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/content"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/domain"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/middleware"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type Handlers struct {
	Catalog       *content.Catalog
	FrameInterval time.Duration
}

// Item is a portfolio entry with its sector label in the request locale.
type Item struct {
	domain.PortfolioItem
	SectorLabel string `json:"sectorLabel"`
}

func itemFor(p domain.PortfolioItem, loc domain.Locale) Item {
	return Item{PortfolioItem: p, SectorLabel: p.SectorLabel(loc)}
}

// GET /api/v1/portfolio?sector=&q=
func (h *Handlers) List(c *fiber.Ctx) error {
	loc := middleware.GetLocale(c)
	q := listing.PortfolioQuery{Sector: c.Query("sector"), Search: c.Query("q")}
	res := listing.FilterPortfolio(h.Catalog.Portfolio(), q)
	if !res.Selection.Recognized() {
		log.Warn().
			Str("trace_id", middleware.GetTraceID(c)).
			Str("sector", q.Sector).
			Msg("Unrecognized sector selection")
	}

	items := make([]Item, len(res.Items))
	for i, p := range res.Items {
		items[i] = itemFor(p, loc)
	}
	return response.Success(c, "Portfolio retrieved", items, fiber.Map{
		"count":      res.Count(),
		"total":      res.Total,
		"active":     res.Active,
		"empty":      res.Empty(),
		"sector":     res.Selection.Raw,
		"recognized": res.Selection.Recognized(),
		"search":     res.Search,
	})
}

// GET /api/v1/portfolio/:id. Unknown ids get the generic entry with metadata.known=false.
func (h *Handlers) Get(c *fiber.Ctx) error {
	item, detail, known := h.Catalog.PortfolioPage(c.Params("id"))
	return response.Success(c, "Portfolio company retrieved", fiber.Map{
		"item":   itemFor(item, middleware.GetLocale(c)),
		"detail": detail,
	}, fiber.Map{"known": known})
}

// GET /api/v1/portfolio/:id/results/timeline returns the precomputed count-up keyframes
// of the company's results section.
func (h *Handlers) Timeline(c *fiber.Ctx) error {
	_, detail, known := h.Catalog.PortfolioPage(c.Params("id"))
	tracks := countup.Timeline(detail.Results, h.FrameInterval)
	return response.Success(c, "Results timeline retrieved", tracks, fiber.Map{
		"known":           known,
		"durationMs":      countup.Duration.Milliseconds(),
		"staggerMs":       countup.Stagger.Milliseconds(),
		"frameIntervalMs": h.FrameInterval.Milliseconds(),
	})
}

// Sector is one filter chip.
type Sector struct {
	ID    domain.Sector `json:"id"`
	Label string        `json:"label"`
}

// GET /api/v1/sectors lists the sector chips, wildcard first.
func (h *Handlers) Sectors(c *fiber.Ctx) error {
	loc := middleware.GetLocale(c)
	out := []Sector{{ID: listing.All, Label: domain.AllSectorsLabel(loc)}}
	for _, s := range domain.Sectors() {
		out = append(out, Sector{ID: s, Label: s.Label(loc)})
	}
	return response.Success(c, "Sectors retrieved", out, fiber.Map{"locale": loc})
}
