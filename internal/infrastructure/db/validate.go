package db

import (
	"context"
	"fmt"
	"time"

	"github.com/damon-houk/listing-currency-service/internal/apperrors"
	"github.com/damon-houk/listing-currency-service/internal/domain/entity"
	"github.com/damon-houk/listing-currency-service/internal/domain/registry"
	"github.com/shopspring/decimal"
)

// pairValidator checks codes and rates at the store boundary. Both backends share it.
type pairValidator struct {
	registry *registry.Registry
}

func (v pairValidator) checkPair(from, to entity.CurrencyCode) error {
	if !v.registry.Has(from) {
		return fmt.Errorf("%w: %q", apperrors.ErrUnknownCurrency, from)
	}
	if !v.registry.Has(to) {
		return fmt.Errorf("%w: %q", apperrors.ErrUnknownCurrency, to)
	}
	return nil
}

func (v pairValidator) checkRate(from, to entity.CurrencyCode, rate decimal.Decimal) error {
	if err := v.checkPair(from, to); err != nil {
		return err
	}
	if from == to {
		return fmt.Errorf("%w: from and to currency codes cannot be the same (%s)", apperrors.ErrInvalidRate, from)
	}
	if !rate.IsPositive() {
		return fmt.Errorf("%w: exchange rate must be positive, got %s", apperrors.ErrInvalidRate, rate)
	}
	return nil
}

// rateKey is the storage key of an ordered pair.
func rateKey(prefix string, from, to entity.CurrencyCode) string {
	return prefix + string(from) + ":" + string(to)
}

type upsertFunc func(ctx context.Context, from, to entity.CurrencyCode, rate decimal.Decimal) (*entity.ExchangeRate, error)

// upsertEach validates and applies updates one by one. A failed item never
// blocks the ones after it.
func upsertEach(ctx context.Context, reg *registry.Registry, updates []entity.RateUpdate, upsert upsertFunc) (*entity.BulkResult, error) {
	result := &entity.BulkResult{
		Updated: make([]entity.ExchangeRate, 0, len(updates)),
		Failed:  []entity.BulkFailure{},
	}

	for i, u := range updates {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		rate, err := parseAndUpsert(ctx, reg, u, upsert)
		if err != nil {
			result.Failed = append(result.Failed, entity.BulkFailure{
				Index: i,
				From:  u.From,
				To:    u.To,
				Rate:  u.Rate,
				Error: err.Error(),
			})
			continue
		}
		result.Updated = append(result.Updated, *rate)
	}

	return result, nil
}

func parseAndUpsert(ctx context.Context, reg *registry.Registry, u entity.RateUpdate, upsert upsertFunc) (*entity.ExchangeRate, error) {
	from, err := reg.Parse(u.From)
	if err != nil {
		return nil, err
	}
	to, err := reg.Parse(u.To)
	if err != nil {
		return nil, err
	}
	return upsert(ctx, from, to, u.Rate)
}

// Clock returns the time stamped on upserted rates.
type Clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}
