package service

import (
	"context"
	"fmt"

	"github.com/damon-houk/listing-currency-service/internal/domain/entity"
	"github.com/damon-houk/listing-currency-service/internal/domain/registry"
	"github.com/damon-houk/listing-currency-service/internal/domain/repository"
	"github.com/damon-houk/listing-currency-service/internal/infrastructure/logger"
	"github.com/shopspring/decimal"
)

// DefaultRates is the USD-hub starter table: every catalog currency into USD,
// plus USD into the non-USD display currencies.
var DefaultRates = []entity.RateUpdate{
	{From: "USD", To: "EUR", Rate: decimal.RequireFromString("0.85")},
	{From: "USD", To: "ILS", Rate: decimal.RequireFromString("3.65")},
	{From: "CNY", To: "USD", Rate: decimal.RequireFromString("0.14")},
	{From: "JPY", To: "USD", Rate: decimal.RequireFromString("0.0067")},
	{From: "KRW", To: "USD", Rate: decimal.RequireFromString("0.00075")},
	{From: "INR", To: "USD", Rate: decimal.RequireFromString("0.012")},
	{From: "THB", To: "USD", Rate: decimal.RequireFromString("0.027")},
	{From: "VND", To: "USD", Rate: decimal.RequireFromString("0.000041")},
	{From: "IDR", To: "USD", Rate: decimal.RequireFromString("0.000065")},
	{From: "PHP", To: "USD", Rate: decimal.RequireFromString("0.018")},
	{From: "MYR", To: "USD", Rate: decimal.RequireFromString("0.21")},
	{From: "SGD", To: "USD", Rate: decimal.RequireFromString("0.74")},
	{From: "HKD", To: "USD", Rate: decimal.RequireFromString("0.13")},
	{From: "TWD", To: "USD", Rate: decimal.RequireFromString("0.031")},
	{From: "AED", To: "USD", Rate: decimal.RequireFromString("0.27")},
	{From: "SAR", To: "USD", Rate: decimal.RequireFromString("0.27")},
	{From: "QAR", To: "USD", Rate: decimal.RequireFromString("0.27")},
	{From: "KWD", To: "USD", Rate: decimal.RequireFromString("3.25")},
	{From: "BHD", To: "USD", Rate: decimal.RequireFromString("2.65")},
	{From: "OMR", To: "USD", Rate: decimal.RequireFromString("2.60")},
	{From: "JOD", To: "USD", Rate: decimal.RequireFromString("1.41")},
	{From: "LBP", To: "USD", Rate: decimal.RequireFromString("0.00066")},
	{From: "ILS", To: "USD", Rate: decimal.RequireFromString("0.27")},
	{From: "TRY", To: "USD", Rate: decimal.RequireFromString("0.033")},
	{From: "EUR", To: "USD", Rate: decimal.RequireFromString("1.18")},
	{From: "GBP", To: "USD", Rate: decimal.RequireFromString("1.27")},
	{From: "CHF", To: "USD", Rate: decimal.RequireFromString("1.12")},
	{From: "SEK", To: "USD", Rate: decimal.RequireFromString("0.11")},
	{From: "NOK", To: "USD", Rate: decimal.RequireFromString("0.11")},
	{From: "DKK", To: "USD", Rate: decimal.RequireFromString("0.16")},
	{From: "PLN", To: "USD", Rate: decimal.RequireFromString("0.25")},
	{From: "CZK", To: "USD", Rate: decimal.RequireFromString("0.044")},
	{From: "HUF", To: "USD", Rate: decimal.RequireFromString("0.0028")},
	{From: "RUB", To: "USD", Rate: decimal.RequireFromString("0.011")},
	{From: "UAH", To: "USD", Rate: decimal.RequireFromString("0.027")},
	{From: "CAD", To: "USD", Rate: decimal.RequireFromString("0.74")},
	{From: "MXN", To: "USD", Rate: decimal.RequireFromString("0.059")},
	{From: "BRL", To: "USD", Rate: decimal.RequireFromString("0.20")},
	{From: "ARS", To: "USD", Rate: decimal.RequireFromString("0.0012")},
	{From: "CLP", To: "USD", Rate: decimal.RequireFromString("0.0011")},
	{From: "COP", To: "USD", Rate: decimal.RequireFromString("0.00025")},
	{From: "PEN", To: "USD", Rate: decimal.RequireFromString("0.27")},
	{From: "ZAR", To: "USD", Rate: decimal.RequireFromString("0.055")},
	{From: "EGP", To: "USD", Rate: decimal.RequireFromString("0.032")},
	{From: "NGN", To: "USD", Rate: decimal.RequireFromString("0.00066")},
	{From: "KES", To: "USD", Rate: decimal.RequireFromString("0.0067")},
	{From: "MAD", To: "USD", Rate: decimal.RequireFromString("0.10")},
	{From: "TND", To: "USD", Rate: decimal.RequireFromString("0.32")},
	{From: "AUD", To: "USD", Rate: decimal.RequireFromString("0.66")},
	{From: "NZD", To: "USD", Rate: decimal.RequireFromString("0.61")},
	{From: "PKR", To: "USD", Rate: decimal.RequireFromString("0.0036")},
	{From: "BDT", To: "USD", Rate: decimal.RequireFromString("0.0091")},
	{From: "LKR", To: "USD", Rate: decimal.RequireFromString("0.0033")},
	{From: "NPR", To: "USD", Rate: decimal.RequireFromString("0.0075")},
	{From: "MMK", To: "USD", Rate: decimal.RequireFromString("0.00048")},
	{From: "KHR", To: "USD", Rate: decimal.RequireFromString("0.00024")},
	{From: "LAK", To: "USD", Rate: decimal.RequireFromString("0.000048")},
	{From: "BND", To: "USD", Rate: decimal.RequireFromString("0.74")},
	{From: "MOP", To: "USD", Rate: decimal.RequireFromString("0.12")},
	{From: "MNT", To: "USD", Rate: decimal.RequireFromString("0.00029")},
	{From: "KZT", To: "USD", Rate: decimal.RequireFromString("0.0022")},
	{From: "UZS", To: "USD", Rate: decimal.RequireFromString("0.000082")},
	{From: "KGS", To: "USD", Rate: decimal.RequireFromString("0.011")},
	{From: "TJS", To: "USD", Rate: decimal.RequireFromString("0.091")},
	{From: "AFN", To: "USD", Rate: decimal.RequireFromString("0.014")},
	{From: "IRR", To: "USD", Rate: decimal.RequireFromString("0.000024")},
	{From: "IQD", To: "USD", Rate: decimal.RequireFromString("0.00068")},
	{From: "SYP", To: "USD", Rate: decimal.RequireFromString("0.00040")},
	{From: "YER", To: "USD", Rate: decimal.RequireFromString("0.0040")},
}

// SeedDefaultRates loads DefaultRates into an empty store. Rates involving
// currencies outside reg are skipped. It returns the number of rates written.
func SeedDefaultRates(ctx context.Context, store repository.RateStore, reg *registry.Registry, log logger.Logger) (int, error) {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	existing, err := store.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to inspect rate store: %w", err)
	}
	if len(existing) > 0 {
		log.Info("Rate store already populated, skipping seed", map[string]interface{}{
			"stored_rates": len(existing),
		})
		return 0, nil
	}

	updates := make([]entity.RateUpdate, 0, len(DefaultRates))
	for _, u := range DefaultRates {
		if reg.Has(entity.CurrencyCode(u.From)) && reg.Has(entity.CurrencyCode(u.To)) {
			updates = append(updates, u)
		}
	}

	result, err := store.UpsertBulk(ctx, updates)
	if err != nil {
		return 0, fmt.Errorf("failed to seed rates: %w", err)
	}

	for _, f := range result.Failed {
		log.Warn("Seed rate rejected", map[string]interface{}{
			"from":  f.From,
			"to":    f.To,
			"error": f.Error,
		})
	}

	log.Info("Seeded default rates", map[string]interface{}{
		"seeded":  len(result.Updated),
		"skipped": len(DefaultRates) - len(updates),
	})

	return len(result.Updated), nil
}
