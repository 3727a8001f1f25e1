// Package service internal/application/service/conversion_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/damon-houk/listing-currency-service/internal/apperrors"
	"github.com/damon-houk/listing-currency-service/internal/domain/entity"
	"github.com/damon-houk/listing-currency-service/internal/domain/registry"
	"github.com/damon-houk/listing-currency-service/internal/domain/repository"
	"github.com/damon-houk/listing-currency-service/internal/infrastructure/logger"
	"github.com/damon-houk/listing-currency-service/internal/infrastructure/middleware"
	"github.com/shopspring/decimal"
)

// outputPlaces is the rounding applied to converted amounts only.
const outputPlaces = 2

// ConverterStats summarizes the converter's configuration and rate table.
type ConverterStats struct {
	BaseCurrency        entity.CurrencyCode   `json:"base_currency"`
	DisplayCurrencies   []entity.CurrencyCode `json:"display_currencies"`
	SupportedCurrencies int                   `json:"supported_currencies"`
	StoredRates         int                   `json:"stored_rates"`
}

// Converter composes stored rates into direct or base-routed conversions
type Converter struct {
	store    repository.RateStore
	registry *registry.Registry
	base     entity.CurrencyCode
	display  []entity.CurrencyCode
	logger   logger.Logger
}

// NewConverter creates a converter routing through base when no direct rate exists
func NewConverter(store repository.RateStore, reg *registry.Registry, base entity.CurrencyCode, display []entity.CurrencyCode, log logger.Logger) *Converter {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &Converter{
		store:    store,
		registry: reg,
		base:     base,
		display:  append([]entity.CurrencyCode(nil), display...),
		logger:   log,
	}
}

// BaseCurrency returns the hub currency
func (c *Converter) BaseCurrency() entity.CurrencyCode {
	return c.base
}

// DisplayCurrencies returns the default conversion targets
func (c *Converter) DisplayCurrencies() []entity.CurrencyCode {
	return append([]entity.CurrencyCode(nil), c.display...)
}

// Convert turns amount in from into to
func (c *Converter) Convert(ctx context.Context, amount decimal.Decimal, from, to entity.CurrencyCode) (*entity.ConversionResult, error) {
	requestID := middleware.GetRequestID(ctx)

	eff, err := c.GetEffectiveRate(ctx, from, to)
	if err != nil {
		c.logger.Warn("Conversion failed", map[string]interface{}{
			"request_id": requestID,
			"from":       from,
			"to":         to,
			"error":      err.Error(),
		})
		return nil, err
	}

	result := apply(amount, from, to, eff)

	c.logger.Debug("Conversion completed", map[string]interface{}{
		"request_id":       requestID,
		"from":             from,
		"to":               to,
		"path":             result.Path,
		"original_amount":  amount.String(),
		"rate_used":        result.RateUsed.String(),
		"converted_amount": result.ConvertedAmount.String(),
	})

	return result, nil
}

// ConvertBulk resolves the rate path once and applies it to every amount.
// Only an unresolvable path fails the batch.
func (c *Converter) ConvertBulk(ctx context.Context, amounts []decimal.Decimal, from, to entity.CurrencyCode) ([]entity.ConversionResult, error) {
	eff, err := c.GetEffectiveRate(ctx, from, to)
	if err != nil {
		c.logger.Warn("Bulk conversion failed", map[string]interface{}{
			"request_id": middleware.GetRequestID(ctx),
			"from":       from,
			"to":         to,
			"count":      len(amounts),
			"error":      err.Error(),
		})
		return nil, err
	}

	results := make([]entity.ConversionResult, 0, len(amounts))
	for _, amount := range amounts {
		results = append(results, *apply(amount, from, to, eff))
	}

	c.logger.Info("Bulk conversion completed", map[string]interface{}{
		"request_id": middleware.GetRequestID(ctx),
		"from":       from,
		"to":         to,
		"path":       eff.Path,
		"count":      len(results),
	})

	return results, nil
}

// GetEffectiveRate composes the rate for from->to without applying an amount
func (c *Converter) GetEffectiveRate(ctx context.Context, from, to entity.CurrencyCode) (*entity.EffectiveRate, error) {
	if _, err := c.registry.Lookup(from); err != nil {
		return nil, err
	}
	if _, err := c.registry.Lookup(to); err != nil {
		return nil, err
	}

	if from == to {
		return &entity.EffectiveRate{From: from, To: to, Rate: decimal.NewFromInt(1), Path: entity.PathDirect}, nil
	}

	direct, err := c.store.GetRate(ctx, from, to)
	if err == nil {
		return &entity.EffectiveRate{From: from, To: to, Rate: direct.Rate, Path: entity.PathDirect}, nil
	}
	if !errors.Is(err, apperrors.ErrRateNotFound) {
		return nil, fmt.Errorf("failed to get rate %s->%s: %w", from, to, err)
	}

	// A pair touching the base has no second route.
	if from == c.base || to == c.base {
		return nil, &apperrors.MissingRatesError{
			From:    string(from),
			To:      string(to),
			Missing: []apperrors.Pair{{From: string(from), To: string(to)}},
		}
	}

	return c.viaBase(ctx, from, to)
}

func (c *Converter) viaBase(ctx context.Context, from, to entity.CurrencyCode) (*entity.EffectiveRate, error) {
	hops := [2][2]entity.CurrencyCode{{from, c.base}, {c.base, to}}
	composed := decimal.NewFromInt(1)
	var missing []apperrors.Pair

	for _, hop := range hops {
		rate, err := c.store.GetRate(ctx, hop[0], hop[1])
		if errors.Is(err, apperrors.ErrRateNotFound) {
			missing = append(missing, apperrors.Pair{From: string(hop[0]), To: string(hop[1])})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get rate %s->%s: %w", hop[0], hop[1], err)
		}
		composed = composed.Mul(rate.Rate)
	}

	if len(missing) > 0 {
		return nil, &apperrors.MissingRatesError{From: string(from), To: string(to), Missing: missing}
	}

	return &entity.EffectiveRate{From: from, To: to, Rate: composed, Path: entity.PathViaBase}, nil
}

func apply(amount decimal.Decimal, from, to entity.CurrencyCode, eff *entity.EffectiveRate) *entity.ConversionResult {
	converted := amount
	if from != to {
		converted = amount.Mul(eff.Rate).Round(outputPlaces)
	}

	return &entity.ConversionResult{
		OriginalAmount:   amount,
		OriginalCurrency: from,
		TargetCurrency:   to,
		ConvertedAmount:  converted,
		RateUsed:         eff.Rate,
		Path:             eff.Path,
	}
}

// Stats reports the base currency, the display set and the stored rate count
func (c *Converter) Stats(ctx context.Context) (*ConverterStats, error) {
	rates, err := c.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rates: %w", err)
	}

	return &ConverterStats{
		BaseCurrency:        c.base,
		DisplayCurrencies:   c.DisplayCurrencies(),
		SupportedCurrencies: len(c.registry.AllCodes()),
		StoredRates:         len(rates),
	}, nil
}
