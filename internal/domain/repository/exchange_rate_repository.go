// Package repository internal/domain/repository/exchange_rate_repository.go
package repository

import (
	"context"

	"github.com/damon-houk/listing-currency-service/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// RateStore defines persisted access to directional exchange rates.
// Every mutation is durable before the call returns.
type RateStore interface {
	// GetRate returns the exact stored rate for from->to, with no composition
	GetRate(ctx context.Context, from, to entity.CurrencyCode) (*entity.ExchangeRate, error)

	// UpsertRate stores or overwrites a rate, refreshing its timestamp
	UpsertRate(ctx context.Context, from, to entity.CurrencyCode, rate decimal.Decimal) (*entity.ExchangeRate, error)

	// UpsertBulk applies each update independently and reports the rejected ones
	UpsertBulk(ctx context.Context, updates []entity.RateUpdate) (*entity.BulkResult, error)

	// DeleteRate removes a rate; a missing pair is not an error
	DeleteRate(ctx context.Context, from, to entity.CurrencyCode) error

	// ListAll returns every stored rate in no particular order
	ListAll(ctx context.Context) ([]entity.ExchangeRate, error)
}
