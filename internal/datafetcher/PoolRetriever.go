/*

This file retrieves the stablecoin pool universe from the DefiLlama yields
API, filters it down to allowed protocols, chains and stablecoins, and
transforms each raw pool into the internal Pool record with its base security
score computed from the protocol's risk facts.

*/

package datafetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/clementfrmd/safeyield/internal/analyzer"
	"github.com/clementfrmd/safeyield/internal/config"
	"github.com/clementfrmd/safeyield/internal/logger"
	"github.com/clementfrmd/safeyield/internal/types"
)

var ErrInvalidPoolData = errors.New("invalid pool data received")
var ErrRetrieverConfig = errors.New("pool retriever configuration error")

const (
	MAX_RETRIES     = 3
	TIMEOUT_SECONDS = 30
)

// Config holds the construction-time settings for a PoolRetriever. There is
// no module-level toggle: the data source and filter thresholds are fixed
// when the retriever is built.
type Config struct {
	BaseURL          string
	MinTVLUSD        float64 // minimum pool TVL to be listed
	MaxAPYPercent    float64 // advertised yields above this are treated as noise
	MinSecurityScore float64 // base-score floor applied after transformation
	MaxPools         int     // size bound on the published set
	Timeout          time.Duration
}

// DefaultConfig returns the retriever settings matching the global
// application configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:          config.YieldsAPIURL,
		MinTVLUSD:        config.MinPoolTVLUSD,
		MaxAPYPercent:    config.MaxAPYPercent,
		MinSecurityScore: config.MinSecurityScore,
		MaxPools:         config.MaxPools,
		Timeout:          TIMEOUT_SECONDS * time.Second,
	}
}

// PoolRetriever fetches and transforms the upstream pool list.
type PoolRetriever struct {
	cfg    Config
	client *http.Client
	logger zerolog.Logger
}

// NewPoolRetriever builds a retriever after validating its configuration.
func NewPoolRetriever(cfg Config) (*PoolRetriever, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: base URL cannot be empty", ErrRetrieverConfig)
	}
	if cfg.MinTVLUSD < 0 {
		return nil, fmt.Errorf("%w: minimum TVL cannot be negative", ErrRetrieverConfig)
	}
	if cfg.MaxAPYPercent <= 0 {
		return nil, fmt.Errorf("%w: maximum APY must be positive", ErrRetrieverConfig)
	}
	if cfg.MaxPools <= 0 {
		return nil, fmt.Errorf("%w: maximum pool count must be positive", ErrRetrieverConfig)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = TIMEOUT_SECONDS * time.Second
	}

	return &PoolRetriever{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger.GetForComponent("pool_retriever"),
	}, nil
}

// llamaPool is the upstream pool shape. Yield fields are pointers because the
// API reports null for markets with no measured rate.
type llamaPool struct {
	Pool       string   `json:"pool"`
	Project    string   `json:"project"`
	Chain      string   `json:"chain"`
	Symbol     string   `json:"symbol"`
	Stablecoin bool     `json:"stablecoin"`
	TvlUsd     float64  `json:"tvlUsd"`
	Apy        *float64 `json:"apy"`
	ApyBase    *float64 `json:"apyBase"`
	ApyReward  *float64 `json:"apyReward"`
}

type llamaResponse struct {
	Status string      `json:"status"`
	Data   []llamaPool `json:"data"`
}

// FetchPools retrieves the upstream pool list, applies the filter chain and
// returns the transformed, scored and ranked pool set.
func (r *PoolRetriever) FetchPools(ctx context.Context) ([]types.Pool, error) {
	raw, err := r.fetchRawPools(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	pools := make([]types.Pool, 0, len(raw))
	for _, candidate := range raw {
		if !r.includePool(candidate) {
			continue
		}
		pools = append(pools, transformPool(candidate, now))
	}

	// Score floor applies to the computed base score, after transformation.
	listed := pools[:0]
	for _, pool := range pools {
		if pool.SecurityScore >= r.cfg.MinSecurityScore {
			listed = append(listed, pool)
		}
	}

	sort.SliceStable(listed, func(i, j int) bool {
		return listed[i].APY > listed[j].APY
	})
	if len(listed) > r.cfg.MaxPools {
		listed = listed[:r.cfg.MaxPools]
	}

	r.logger.Info().
		Int("upstreamPools", len(raw)).
		Int("listedPools", len(listed)).
		Float64("minSecurityScore", r.cfg.MinSecurityScore).
		Msg("Pool universe retrieved and filtered")

	return listed, nil
}

// fetchRawPools performs the HTTP request with bounded retries.
func (r *PoolRetriever) fetchRawPools(ctx context.Context) ([]llamaPool, error) {
	var lastErr error
	for attempt := 1; attempt <= MAX_RETRIES; attempt++ {
		r.logger.Debug().
			Str("url", r.cfg.BaseURL).
			Int("attempt", attempt).
			Int("maxRetries", MAX_RETRIES).
			Msg("Requesting pool data")

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.cfg.BaseURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build pools request: %w", err)
		}

		resp, err := r.client.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("HTTP request failed on attempt %d: %w", attempt, err)
			r.logger.Warn().
				Err(err).
				Int("attempt", attempt).
				Msg("HTTP request failed, will retry if attempts remain")
			if attempt < MAX_RETRIES && ctx.Err() == nil {
				time.Sleep(time.Duration(attempt) * time.Second)
				continue
			}
			break
		}

		raw, err := r.processResponse(resp)
		if err != nil {
			lastErr = err
			if attempt < MAX_RETRIES && ctx.Err() == nil {
				r.logger.Warn().
					Err(err).
					Int("attempt", attempt).
					Msg("API response processing failed, will retry if attempts remain")
				time.Sleep(time.Duration(attempt) * time.Second)
				continue
			}
			break
		}

		return raw, nil
	}

	r.logger.Error().
		Err(lastErr).
		Int("maxRetries", MAX_RETRIES).
		Msg("All retry attempts failed")
	return nil, fmt.Errorf("failed to fetch pool data after %d attempts: %w", MAX_RETRIES, lastErr)
}

// processResponse validates and decodes the API response.
func (r *PoolRetriever) processResponse(resp *http.Response) ([]llamaPool, error) {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: API returned status %d", ErrInvalidPoolData, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty response body", ErrInvalidPoolData)
	}

	var decoded llamaResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to parse pools response: %w", err)
	}

	if len(decoded.Data) == 0 {
		return nil, fmt.Errorf("%w: no pools in response", ErrInvalidPoolData)
	}

	r.logger.Debug().
		Int("poolCount", len(decoded.Data)).
		Str("status", decoded.Status).
		Msg("Upstream pool data received")

	return decoded.Data, nil
}

// includePool applies the listing filter chain to one raw pool.
func (r *PoolRetriever) includePool(raw llamaPool) bool {
	facts, ok := config.AllowedProtocols[raw.Project]
	if !ok {
		return false
	}
	if facts.ExcludedDueToExploit {
		return false
	}
	if !raw.Stablecoin {
		return false
	}
	if !config.IsSupportedChain(raw.Chain) {
		return false
	}
	if detectStablecoin(raw.Symbol) == "" {
		return false
	}
	if raw.TvlUsd < r.cfg.MinTVLUSD {
		return false
	}
	if raw.Apy == nil || *raw.Apy <= 0 || *raw.Apy > r.cfg.MaxAPYPercent {
		return false
	}
	return true
}

// transformPool maps a raw upstream pool to the internal record. The base
// security score is always recomputed here from the protocol's risk facts;
// no upstream score is ever trusted.
func transformPool(raw llamaPool, now time.Time) types.Pool {
	facts := config.AllowedProtocols[raw.Project]

	stablecoin := detectStablecoin(raw.Symbol)
	if stablecoin == "" {
		stablecoin = "USDC"
	}

	protocolAgeDays := (now.Year() - facts.LaunchYear) * 365

	apy := 0.0
	if raw.Apy != nil {
		apy = *raw.Apy
	}
	apyBase := apy
	if raw.ApyBase != nil {
		apyBase = *raw.ApyBase
	}
	apyReward := 0.0
	if raw.ApyReward != nil {
		apyReward = *raw.ApyReward
	}

	return types.Pool{
		ID:              raw.Pool,
		Protocol:        facts.Name,
		ProtocolLogo:    facts.Logo,
		ProtocolType:    string(facts.Type),
		Chain:           raw.Chain,
		ChainLogo:       config.ChainLogos[raw.Chain],
		Symbol:          raw.Symbol,
		Stablecoin:      stablecoin,
		StablecoinLogo:  config.StablecoinLogos[stablecoin],
		Currency:        config.StablecoinCurrency[stablecoin],
		APY:             apy,
		APYBase:         apyBase,
		APYReward:       apyReward,
		TvlUSD:          raw.TvlUsd,
		Audits:          facts.Audits,
		ProtocolAgeDays: protocolAgeDays,
		Exploits:        facts.Exploits,
		SecurityScore:   analyzer.CalculateSecurityScore(facts.Audits, protocolAgeDays, raw.TvlUsd, facts.Exploits),
		PoolURL:         facts.EarnURL,
		LastUpdated:     now,
	}
}

// detectStablecoin maps the first segment of an upstream market symbol to a
// canonical stablecoin. Aliases are checked most specific first so the result
// does not depend on iteration order. Returns "" when no supported
// stablecoin matches.
func detectStablecoin(symbol string) string {
	head := strings.ToUpper(symbol)
	if idx := strings.Index(head, "-"); idx >= 0 {
		head = head[:idx]
	}
	for _, alias := range config.SupportedStablecoins {
		if strings.Contains(head, alias.Fragment) {
			return alias.Coin
		}
	}
	return ""
}
