package main

import (
	"context"
	"os"

	"github.com/clementfrmd/safeyield/internal/aggregator"
	"github.com/clementfrmd/safeyield/internal/config"
	"github.com/clementfrmd/safeyield/internal/datafetcher"
	"github.com/clementfrmd/safeyield/internal/logger"
	"github.com/clementfrmd/safeyield/internal/state"
	"github.com/clementfrmd/safeyield/internal/web"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// main is the entry point for the SafeYield aggregator.
func main() {
	// --- 1. Initialization Phase ---
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("Warning: .env file not found. Relying on OS environment variables.")
	}

	// Load configuration from environment variables
	if err := config.LoadConfig(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Initialize(os.Getenv("LOG_LEVEL"))
	log.Info().Msg("SafeYield aggregator starting...")

	// --- 2. Build the pipeline with dependency injection ---
	retriever, err := datafetcher.NewPoolRetriever(datafetcher.DefaultConfig())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create pool retriever")
	}

	store := state.NewSnapshotStore()

	agg, err := aggregator.New(aggregator.Config{
		Fetcher: retriever,
		Store:   store,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create aggregator")
	}

	// --- 3. Start Web Server ---
	webServer := web.NewWebServer(config.WebPort, store)
	go func() {
		log.Info().Str("port", config.WebPort).Str("url", "http://localhost:"+config.WebPort).Msg("Starting web dashboard")
		if err := webServer.Start(); err != nil {
			log.Error().Err(err).Msg("Web server failed to start")
		}
	}()

	// --- 4. Start Refresh Loop ---
	log.Info().Str("interval", config.RefreshInterval.String()).Msg("Starting refresh loop")

	ctx := context.Background()

	// Runs indefinitely, one snapshot per interval
	agg.RunLoop(ctx, config.RefreshInterval)
}
