package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// Application configuration loaded from environment variables.
// These are populated at startup by the LoadConfig function.
var (
	// WebPort is the port the dashboard and API listen on.
	WebPort string
	// LogLevel controls zerolog verbosity ("debug", "info", "warn", "error").
	LogLevel string

	// YieldsAPIURL is the pools endpoint of the upstream yields aggregator.
	YieldsAPIURL string
	// CapAPIBaseURL is the base URL of the Cap lender metrics API, reached
	// through the local proxy route.
	CapAPIBaseURL string

	// RefreshInterval is how often the pool universe is refetched and
	// rescored. The upstream data updates hourly.
	RefreshInterval time.Duration

	// MinSecurityScore is the floor below which ingested pools are dropped.
	MinSecurityScore float64
	// MinPoolTVLUSD is the minimum TVL for a pool to be listed.
	MinPoolTVLUSD float64
	// MaxAPYPercent filters out implausible advertised yields.
	MaxAPYPercent float64
	// MaxPools bounds the size of the published pool set.
	MaxPools int
)

// Defaults match the production deployment; every value can be overridden
// through the environment.
const (
	defaultWebPort          = "8080"
	defaultLogLevel         = "info"
	defaultYieldsAPIURL     = "https://yields.llama.fi/pools"
	defaultCapAPIBaseURL    = "https://api.cap.app/v1"
	defaultRefreshInterval  = time.Hour
	defaultMinSecurityScore = 70.0
	defaultMinPoolTVLUSD    = 100_000.0
	defaultMaxAPYPercent    = 50.0
	defaultMaxPools         = 100
)

// LoadConfig loads configuration from environment variables and sets the
// global config vars. Unset variables fall back to defaults; set but
// malformed values are an error.
func LoadConfig() error {
	log.Info().Msg("Loading application configuration from environment variables...")

	var err error

	WebPort = getEnv("WEB_PORT", defaultWebPort)
	LogLevel = getEnv("LOG_LEVEL", defaultLogLevel)
	YieldsAPIURL = getEnv("YIELDS_API_URL", defaultYieldsAPIURL)
	CapAPIBaseURL = getEnv("CAP_API_BASE_URL", defaultCapAPIBaseURL)

	RefreshInterval, err = getEnvAsDuration("REFRESH_INTERVAL", defaultRefreshInterval)
	if err != nil {
		return err
	}

	MinSecurityScore, err = getEnvAsFloat64("MIN_SECURITY_SCORE", defaultMinSecurityScore)
	if err != nil {
		return err
	}

	MinPoolTVLUSD, err = getEnvAsFloat64("MIN_POOL_TVL_USD", defaultMinPoolTVLUSD)
	if err != nil {
		return err
	}

	MaxAPYPercent, err = getEnvAsFloat64("MAX_APY_PERCENT", defaultMaxAPYPercent)
	if err != nil {
		return err
	}

	MaxPools, err = getEnvAsInt("MAX_POOLS", defaultMaxPools)
	if err != nil {
		return err
	}

	log.Debug().
		Str("WebPort", WebPort).
		Str("YieldsAPIURL", YieldsAPIURL).
		Dur("RefreshInterval", RefreshInterval).
		Float64("MinSecurityScore", MinSecurityScore).
		Int("MaxPools", MaxPools).
		Msg("Configuration loaded successfully.")

	return nil
}

// getEnv retrieves a string environment variable, falling back to the default.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvAsInt retrieves an environment variable as an int. Returns an error
// if set but invalid.
func getEnvAsInt(key string, fallback int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return fallback, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, errors.New("environment variable " + key + " must be a valid int, got: " + valueStr)
	}
	return value, nil
}

// getEnvAsFloat64 retrieves an environment variable as a float64. Returns an
// error if set but invalid.
func getEnvAsFloat64(key string, fallback float64) (float64, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, errors.New("environment variable " + key + " must be a valid float64, got: " + valueStr)
	}
	return value, nil
}

// getEnvAsDuration retrieves an environment variable as a time.Duration
// (e.g. "1h", "30m"). Returns an error if set but invalid.
func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return fallback, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, errors.New("environment variable " + key + " must be a valid duration, got: " + valueStr)
	}
	return value, nil
}
