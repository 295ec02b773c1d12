package router

import (
	"context"
	"net/http"

	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/application/forms"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/config"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/content"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/infrastructure/cache"
	healthhandler "github.com/Satoshi-Nakamoto68/HangKyGroup/internal/interfaces/handlers/health"
	inqhandler "github.com/Satoshi-Nakamoto68/HangKyGroup/internal/interfaces/handlers/inquiries"
	insighthandler "github.com/Satoshi-Nakamoto68/HangKyGroup/internal/interfaces/handlers/insights"
	pagehandler "github.com/Satoshi-Nakamoto68/HangKyGroup/internal/interfaces/handlers/pages"
	portfoliohandler "github.com/Satoshi-Nakamoto68/HangKyGroup/internal/interfaces/handlers/portfolio"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/middleware"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
)

// CreateApp builds the Fiber app with all global middleware and routes. The returned
// Redis client is nil when REDIS_URL is unset.
func CreateApp(cfg *config.Config) (*fiber.App, *redis.Client, error) {
	cat, err := content.Load()
	if err != nil {
		return nil, nil, err
	}
	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, nil, err
	}
	rdb, err := cache.Open(context.Background(), cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	return newApp(cfg, cat, renderer, rdb), rdb, nil
}

func newApp(cfg *config.Config, cat *content.Catalog, renderer *web.Renderer, rdb *redis.Client) *fiber.App {
	formSvc := &forms.Service{Catalog: cat, Delay: cfg.FormSubmitDelay}
	ph := &pagehandler.Handlers{
		Catalog:       cat,
		Forms:         formSvc,
		Renderer:      renderer,
		FrameInterval: cfg.AnimationFrameInterval,
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler(rdb, ph.ErrorPage),
		EnableTrustedProxyCheck: true,
	})

	app.Use(recover.New(recover.Config{EnableStackTrace: !cfg.IsProduction()}))
	app.Use(middleware.Tracing())
	app.Use(middleware.Locale(cfg.DefaultLocale))
	app.Use(middleware.RouteLogger())
	app.Use(middleware.HealthMarker(rdb))

	hh := &healthhandler.Handlers{
		Rdb:            rdb,
		Catalog:        cat,
		HealthAdminKey: cfg.HealthAdminKey,
	}
	app.Get("/health", hh.Dashboard)
	app.Get("/health/json", hh.JSON)
	app.Get("/health/errors", hh.Errors)
	app.Get("/health/reset", hh.Reset)

	api := app.Group("/api/v1", middleware.CORS(middleware.CORSConfig{
		AllowedSuffix:  cfg.FrontendURLEndsWith,
		AllowLocalhost: !cfg.IsProduction(),
	}))

	porth := &portfoliohandler.Handlers{Catalog: cat, FrameInterval: cfg.AnimationFrameInterval}
	api.Get("/portfolio", porth.List)
	api.Get("/portfolio/:id", porth.Get)
	api.Get("/portfolio/:id/results/timeline", porth.Timeline)
	api.Get("/sectors", porth.Sectors)

	ih := &insighthandler.Handlers{Catalog: cat}
	api.Get("/insights", ih.List)
	api.Get("/insights/:id", ih.Get)
	api.Get("/categories", ih.Categories)

	qh := &inqhandler.Handlers{Forms: formSvc}
	api.Get("/contact/types", qh.InquiryTypes)
	api.Post("/contact", qh.Contact)
	api.Post("/compliance/verification", qh.Compliance)

	app.Get("/", ph.Home)
	app.Get("/about", ph.About)
	app.Get("/about/leadership", ph.Leadership)
	app.Get("/about/values", ph.Values)
	app.Get("/investment", ph.Investment)
	app.Get("/investment/:sector", ph.Pillar)
	app.Get("/portfolio", ph.Portfolio)
	app.Get("/portfolio/:id", ph.PortfolioDetail)
	app.Get("/insights", ph.Insights)
	app.Get("/insights/:id", ph.InsightDetail)
	app.Get("/contact", ph.Contact)
	app.Post("/contact", ph.SubmitContact)
	app.Get("/compliance", ph.Compliance)
	app.Post("/compliance", ph.SubmitCompliance)
	app.Get("/policies/:kind", ph.Policy)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "The page you are looking for does not exist.")
	})
	return app
}

// Handler exposes the app to net/http hosts such as the serverless entry.
func Handler(app *fiber.App) http.Handler {
	return adaptor.FiberApp(app)
}
