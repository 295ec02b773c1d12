package insights

import (
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/application/listing"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/content"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/domain"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/middleware"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type Handlers struct {
	Catalog *content.Catalog
}

// GET /api/v1/insights?category=&q=&sort=
func (h *Handlers) List(c *fiber.Ctx) error {
	q := listing.InsightQuery{
		Category: c.Query("category"),
		Search:   c.Query("q"),
		Sort:     domain.ParseSortMode(c.Query("sort")),
	}
	res := listing.FilterInsights(h.Catalog.Insights(), q)
	if !res.Selection.Recognized() {
		log.Warn().
			Str("trace_id", middleware.GetTraceID(c)).
			Str("category", q.Category).
			Msg("Unrecognized category selection")
	}
	return response.Success(c, "Insights retrieved", fiber.Map{
		"items":    orEmpty(res.Items),
		"featured": orEmpty(res.Featured),
		"regular":  orEmpty(res.Regular),
	}, fiber.Map{
		"count":      res.Count(),
		"total":      res.Total,
		"active":     res.Active,
		"empty":      res.Empty(),
		"category":   res.Selection.Raw,
		"recognized": res.Selection.Recognized(),
		"sort":       res.Sort,
		"search":     res.Search,
	})
}

func orEmpty(items []domain.Insight) []domain.Insight {
	if items == nil {
		return []domain.Insight{}
	}
	return items
}

// Article is an insight with its body resolved for the request locale.
type Article struct {
	domain.Insight
	Body          string `json:"body"`
	CategoryLabel string `json:"categoryLabel"`
}

// GET /api/v1/insights/:id
func (h *Handlers) Get(c *fiber.Ctx) error {
	a, ok := h.Catalog.InsightByID(c.Params("id"))
	if !ok {
		return response.NotFound(c, "Article not found")
	}
	loc := middleware.GetLocale(c)
	return response.Success(c, "Article retrieved", Article{
		Insight:       a,
		Body:          a.BodyFor(loc),
		CategoryLabel: a.Category.Label(loc),
	}, fiber.Map{"related": orEmpty(h.Catalog.RelatedInsights(a))})
}

// Category is one filter chip.
type Category struct {
	ID    domain.Category `json:"id"`
	Label string          `json:"label"`
}

// GET /api/v1/categories lists the category chips, wildcard first.
func (h *Handlers) Categories(c *fiber.Ctx) error {
	loc := middleware.GetLocale(c)
	out := []Category{{ID: listing.All, Label: domain.AllCategoriesLabel(loc)}}
	for _, cat := range domain.Categories() {
		out = append(out, Category{ID: cat, Label: cat.Label(loc)})
	}
	return response.Success(c, "Categories retrieved", out, fiber.Map{"locale": loc})
}
