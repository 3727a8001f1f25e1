// Package config loads service settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/damon-houk/listing-currency-service/internal/domain/entity"
	"github.com/damon-houk/listing-currency-service/internal/domain/registry"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Rate store backends
const (
	StoreBadger = "badger"
	StoreRedis  = "redis"
)

const defaultCacheTTL = "5m"

// Config holds application configuration.
type Config struct {
	Port     string
	LogLevel string

	BaseCurrency        string
	DisplayCurrencies   []string
	SupportedCurrencies []string // empty means the full builtin table

	RateStore        string
	BadgerPath       string
	BadgerSyncWrites bool

	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisNamespace string

	RateCacheTTL     time.Duration // 0 disables the cache; defaults to 0 for redis
	SeedDefaultRates bool
}

// Load reads defaults, then .env if present, then the process environment.
func Load() (*Config, error) {
	// A missing .env file is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "INFO")
	v.SetDefault("BASE_CURRENCY", "USD")
	v.SetDefault("DISPLAY_CURRENCIES", "USD,EUR,ILS")
	v.SetDefault("SUPPORTED_CURRENCIES", "")
	v.SetDefault("RATE_STORE", StoreBadger)
	v.SetDefault("BADGER_PATH", "./data")
	v.SetDefault("BADGER_SYNC_WRITES", true)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_NAMESPACE", "fx")
	v.SetDefault("SEED_DEFAULT_RATES", true)
	v.AutomaticEnv()

	rateStore := strings.ToLower(strings.TrimSpace(v.GetString("RATE_STORE")))

	// Cache invalidation is per process; a shared redis table gets no cache unless asked.
	ttlRaw := v.GetString("RATE_CACHE_TTL")
	if ttlRaw == "" {
		ttlRaw = defaultCacheTTL
		if rateStore == StoreRedis {
			ttlRaw = "0s"
		}
	}
	ttl, err := time.ParseDuration(ttlRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_CACHE_TTL %q: %w", ttlRaw, err)
	}

	cfg := &Config{
		Port:                v.GetString("PORT"),
		LogLevel:            v.GetString("LOG_LEVEL"),
		BaseCurrency:        strings.ToUpper(strings.TrimSpace(v.GetString("BASE_CURRENCY"))),
		DisplayCurrencies:   splitCodes(v.GetString("DISPLAY_CURRENCIES")),
		SupportedCurrencies: splitCodes(v.GetString("SUPPORTED_CURRENCIES")),
		RateStore:           rateStore,
		BadgerPath:          v.GetString("BADGER_PATH"),
		BadgerSyncWrites:    v.GetBool("BADGER_SYNC_WRITES"),
		RedisAddr:           v.GetString("REDIS_ADDR"),
		RedisPassword:       v.GetString("REDIS_PASSWORD"),
		RedisDB:             v.GetInt("REDIS_DB"),
		RedisNamespace:      v.GetString("REDIS_NAMESPACE"),
		RateCacheTTL:        ttl,
		SeedDefaultRates:    v.GetBool("SEED_DEFAULT_RATES"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func splitCodes(raw string) []string {
	var codes []string
	for _, part := range strings.Split(raw, ",") {
		if code := strings.ToUpper(strings.TrimSpace(part)); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

// Validate checks the backend choice and that every configured code is supported.
func (c *Config) Validate() error {
	var errs []error

	if c.RateStore != StoreBadger && c.RateStore != StoreRedis {
		errs = append(errs, fmt.Errorf("RATE_STORE must be %q or %q, got %q", StoreBadger, StoreRedis, c.RateStore))
	}
	if c.RateCacheTTL < 0 {
		errs = append(errs, fmt.Errorf("RATE_CACHE_TTL must not be negative, got %s", c.RateCacheTTL))
	}
	if len(c.DisplayCurrencies) == 0 {
		errs = append(errs, errors.New("DISPLAY_CURRENCIES must name at least one currency"))
	}

	reg, err := c.Registry()
	if err != nil {
		errs = append(errs, fmt.Errorf("SUPPORTED_CURRENCIES: %w", err))
		return errors.Join(errs...)
	}
	if _, err := reg.Parse(c.BaseCurrency); err != nil {
		errs = append(errs, fmt.Errorf("BASE_CURRENCY: %w", err))
	}
	for _, code := range c.DisplayCurrencies {
		if _, err := reg.Parse(code); err != nil {
			errs = append(errs, fmt.Errorf("DISPLAY_CURRENCIES: %w", err))
		}
	}

	return errors.Join(errs...)
}

// Registry returns the currency registry restricted to SupportedCurrencies
func (c *Config) Registry() (*registry.Registry, error) {
	if len(c.SupportedCurrencies) == 0 {
		return registry.Default(), nil
	}
	return registry.Default().Subset(c.SupportedCurrencies)
}

// Base returns the hub currency as a code
func (c *Config) Base() entity.CurrencyCode {
	return entity.CurrencyCode(c.BaseCurrency)
}

// Display returns the display currencies as codes
func (c *Config) Display() []entity.CurrencyCode {
	out := make([]entity.CurrencyCode, 0, len(c.DisplayCurrencies))
	for _, code := range c.DisplayCurrencies {
		out = append(out, entity.CurrencyCode(code))
	}
	return out
}
