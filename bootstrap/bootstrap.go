package bootstrap

import (
	"os"
	"strings"
	"time"

	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/config"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/interfaces/router"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New creates the Fiber app for Vercel serverless (api handler imports this package, not internal).
func New() (*fiber.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	SetupLogger(cfg)
	app, _, err := router.CreateApp(cfg)
	return app, err
}

// SetupLogger configures the global zerolog logger: JSON in production, a console
// writer otherwise. An unknown LOG_LEVEL falls back to info.
func SetupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.LogLevel)))
	if err != nil || cfg.LogLevel == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano
	if cfg.IsProduction() {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Str("service", "hangky-web").Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}
