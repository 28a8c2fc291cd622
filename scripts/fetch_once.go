package main

import (
	"context"
	"os"
	"time"

	"github.com/clementfrmd/safeyield/internal/analyzer"
	"github.com/clementfrmd/safeyield/internal/config"
	"github.com/clementfrmd/safeyield/internal/datafetcher"
	"github.com/clementfrmd/safeyield/internal/logger"
	"github.com/clementfrmd/safeyield/internal/state"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// One-shot fetch against the live yields API: runs the full filter and
// scoring pipeline once and prints the resulting pool set. Useful for
// checking filter thresholds without starting the server.
func main() {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "debug"
	}
	logger.Initialize(logLevel)

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, using OS environment")
	}
	if err := config.LoadConfig(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	retriever, err := datafetcher.NewPoolRetriever(datafetcher.DefaultConfig())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create pool retriever")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pools, err := retriever.FetchPools(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Fetch failed")
	}

	pools = analyzer.EnrichPools(pools)
	summary := state.BuildSummary(pools)

	for _, pool := range pools {
		log.Info().
			Str("protocol", pool.Protocol).
			Str("chain", pool.Chain).
			Str("stablecoin", pool.Stablecoin).
			Float64("apy", pool.APY).
			Float64("tvlUSD", pool.TvlUSD).
			Float64("securityScore", pool.SecurityScore).
			Float64("yiieldScore", pool.YiieldScore).
			Msg("Pool")
	}

	log.Info().
		Int("poolCount", summary.PoolCount).
		Int("protocolCount", summary.ProtocolCount).
		Int("chainCount", summary.ChainCount).
		Float64("totalTvlUSD", summary.TotalTvlUSD).
		Float64("avgAPY", summary.AvgAPY).
		Float64("avgSecurityScore", summary.AvgSecurityScore).
		Msg("Fetch complete")
}
