package pages

import (
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/application/listing"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/domain"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/middleware"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/web"

	"github.com/gofiber/fiber/v2"
)

// latestOnHome is how many articles the home page previews.
const latestOnHome = 3

type HomeData struct {
	Pillars []domain.Pillar
	Latest  []domain.Insight
}

type PillarData struct {
	Pillar    domain.Pillar
	Companies []domain.PortfolioItem
}

// GET /
func (h *Handlers) Home(c *fiber.Ctx) error {
	latest := listing.FilterInsights(h.Catalog.Insights(), listing.InsightQuery{}.Reset()).Items
	if len(latest) > latestOnHome {
		latest = latest[:latestOnHome]
	}
	return h.render(c, fiber.StatusOK, "home", "", HomeData{
		Pillars: h.Catalog.Pillars(),
		Latest:  latest,
	})
}

// GET /about
func (h *Handlers) About(c *fiber.Ctx) error {
	loc := middleware.GetLocale(c)
	return h.render(c, fiber.StatusOK, "about", web.T(loc, "about.title"), h.Catalog.Company())
}

// GET /about/leadership
func (h *Handlers) Leadership(c *fiber.Ctx) error {
	loc := middleware.GetLocale(c)
	return h.render(c, fiber.StatusOK, "leadership", web.T(loc, "nav.aboutLeadership"), h.Catalog.Company())
}

// GET /about/values
func (h *Handlers) Values(c *fiber.Ctx) error {
	loc := middleware.GetLocale(c)
	return h.render(c, fiber.StatusOK, "values", web.T(loc, "nav.aboutValues"), h.Catalog.Company())
}

// GET /investment
func (h *Handlers) Investment(c *fiber.Ctx) error {
	loc := middleware.GetLocale(c)
	return h.render(c, fiber.StatusOK, "investment", web.T(loc, "investment.title"), h.Catalog.Pillars())
}

// GET /investment/:sector lists the pillar's focus areas and its portfolio companies.
func (h *Handlers) Pillar(c *fiber.Ctx) error {
	sector, ok := domain.ParseSector(c.Params("sector"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Investment pillar not found")
	}
	pillar, ok := h.Catalog.PillarBySector(sector)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Investment pillar not found")
	}
	companies := listing.FilterPortfolio(h.Catalog.Portfolio(), listing.PortfolioQuery{Sector: string(sector)}).Items
	return h.render(c, fiber.StatusOK, "pillar", pillar.Title, PillarData{Pillar: pillar, Companies: companies})
}

var policyTitles = map[string]string{
	"privacy": "policy.privacy",
	"terms":   "policy.terms",
	"cookies": "policy.cookies",
}

// GET /policies/:kind
func (h *Handlers) Policy(c *fiber.Ctx) error {
	kind := c.Params("kind")
	key, ok := policyTitles[kind]
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Policy not found")
	}
	return h.render(c, fiber.StatusOK, kind, web.T(middleware.GetLocale(c), key), nil)
}
