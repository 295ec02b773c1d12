package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Satoshi-Nakamoto68/HangKyGroup/bootstrap"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/config"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/interfaces/router"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

var rootCmd = &cobra.Command{
	Use:           "hangky",
	Short:         "Hang Ky Investment Group web service",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server (default)",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, catalogCmd, timelineCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	bootstrap.SetupLogger(cfg)
	return cfg, nil
}

// runServe listens until SIGINT or SIGTERM, then drains in-flight requests.
func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	app, rdb, err := router.CreateApp(cfg)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
		log.Info().Msg("Redis connected")
	} else {
		log.Info().Msg("REDIS_URL not set; request stats disabled")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().
			Str("env", cfg.Env).
			Str("port", cfg.Port).
			Msgf("Server running at http://localhost:%s (health: /health/json)", cfg.Port)
		return app.Listen(":" + cfg.Port)
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("Shutting down")
		return app.ShutdownWithTimeout(shutdownTimeout)
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
