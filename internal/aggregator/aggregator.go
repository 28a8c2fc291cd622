/*

This file contains the refresh cycle runner. On each cycle it fetches the
filtered pool universe, enriches every pool with its bonus-augmented score
and publishes the result as a new snapshot. A failed cycle leaves the
previous snapshot in place.

*/

package aggregator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clementfrmd/safeyield/internal/analyzer"
	"github.com/clementfrmd/safeyield/internal/logger"
	"github.com/clementfrmd/safeyield/internal/state"
	"github.com/clementfrmd/safeyield/internal/types"
)

var ErrAggregatorConfig = errors.New("aggregator configuration error")

// Fetcher retrieves the current filtered pool universe.
type Fetcher interface {
	FetchPools(ctx context.Context) ([]types.Pool, error)
}

// Config holds the aggregator's dependencies.
type Config struct {
	Fetcher Fetcher
	Store   *state.SnapshotStore
}

// Aggregator runs the periodic refresh cycles.
type Aggregator struct {
	fetcher Fetcher
	store   *state.SnapshotStore
}

// New builds an aggregator after validating its dependencies.
func New(cfg Config) (*Aggregator, error) {
	if cfg.Fetcher == nil {
		return nil, fmt.Errorf("%w: fetcher cannot be nil", ErrAggregatorConfig)
	}
	if cfg.Store == nil {
		return nil, fmt.Errorf("%w: snapshot store cannot be nil", ErrAggregatorConfig)
	}
	return &Aggregator{fetcher: cfg.Fetcher, store: cfg.Store}, nil
}

// RunLoop runs an immediate cycle, then one cycle per interval until the
// context is cancelled. Cycle failures are logged and the loop continues.
func (a *Aggregator) RunLoop(ctx context.Context, interval time.Duration) {
	loopLogger := logger.GetForComponent("aggregator")
	loopLogger.Info().
		Dur("interval", interval).
		Msg("Starting refresh loop")

	if err := a.RunCycle(ctx); err != nil {
		loopLogger.Error().Err(err).Msg("Initial refresh cycle failed")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			loopLogger.Info().Msg("Refresh loop stopping")
			return
		case <-ticker.C:
			if err := a.RunCycle(ctx); err != nil {
				loopLogger.Error().Err(err).Msg("Refresh cycle failed, keeping previous snapshot")
			}
		}
	}
}

// RunCycle performs one fetch, enrich and publish pass.
func (a *Aggregator) RunCycle(ctx context.Context) error {
	cycleID := uuid.New().String()
	cycleLogger := logger.GetForComponent("aggregator").With().
		Str("cycleID", cycleID).
		Logger()

	start := time.Now()
	cycleLogger.Info().Msg("Refresh cycle starting")

	pools, err := a.fetcher.FetchPools(ctx)
	if err != nil {
		return fmt.Errorf("pool fetch failed: %w", err)
	}

	pools = analyzer.EnrichPools(pools)
	snapshot := a.store.Publish(cycleID, pools)

	cycleLogger.Info().
		Uint64("cycleNumber", snapshot.CycleNumber).
		Int("poolCount", len(pools)).
		Float64("totalTvlUSD", snapshot.Summary.TotalTvlUSD).
		Dur("elapsed", time.Since(start)).
		Msg("Refresh cycle complete")

	return nil
}
