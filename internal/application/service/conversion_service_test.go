// internal/application/service/conversion_service_test.go
package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/damon-houk/listing-currency-service/internal/apperrors"
	"github.com/damon-houk/listing-currency-service/internal/domain/entity"
	"github.com/damon-houk/listing-currency-service/internal/domain/registry"
	"github.com/damon-houk/listing-currency-service/internal/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var displayCurrencies = []entity.CurrencyCode{"USD", "EUR", "ILS"}

func storedRate(from, to entity.CurrencyCode, rate string) *entity.ExchangeRate {
	return &entity.ExchangeRate{
		From:      from,
		To:        to,
		Rate:      decimal.RequireFromString(rate),
		UpdatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func rateMissing(from, to entity.CurrencyCode) error {
	return fmt.Errorf("%w: %s->%s", apperrors.ErrRateNotFound, from, to)
}

func newTestConverter(store *mocks.MockRateStore) *Converter {
	return NewConverter(store, registry.Default(), "USD", displayCurrencies, mocks.NewQuietLogger())
}

func TestConvert(t *testing.T) {
	ctx := context.Background()

	t.Run("Direct rate", func(t *testing.T) {
		store := new(mocks.MockRateStore)
		store.On("GetRate", mock.Anything, entity.CurrencyCode("CNY"), entity.CurrencyCode("USD")).
			Return(storedRate("CNY", "USD", "0.14"), nil).Once()

		result, err := newTestConverter(store).Convert(ctx, decimal.NewFromInt(100), "CNY", "USD")

		require.NoError(t, err)
		assert.Equal(t, "14.00", result.ConvertedAmount.StringFixed(2))
		assert.Equal(t, "0.14", result.RateUsed.String())
		assert.Equal(t, entity.PathDirect, result.Path)
		assert.Equal(t, entity.CurrencyCode("CNY"), result.OriginalCurrency)
		assert.Equal(t, entity.CurrencyCode("USD"), result.TargetCurrency)
		assert.True(t, result.OriginalAmount.Equal(decimal.NewFromInt(100)))
		store.AssertExpectations(t)
	})

	t.Run("Two hops through the base", func(t *testing.T) {
		store := new(mocks.MockRateStore)
		store.On("GetRate", mock.Anything, entity.CurrencyCode("INR"), entity.CurrencyCode("ILS")).
			Return(nil, rateMissing("INR", "ILS")).Once()
		store.On("GetRate", mock.Anything, entity.CurrencyCode("INR"), entity.CurrencyCode("USD")).
			Return(storedRate("INR", "USD", "0.012"), nil).Once()
		store.On("GetRate", mock.Anything, entity.CurrencyCode("USD"), entity.CurrencyCode("ILS")).
			Return(storedRate("USD", "ILS", "3.65"), nil).Once()

		result, err := newTestConverter(store).Convert(ctx, decimal.NewFromInt(1000), "INR", "ILS")

		require.NoError(t, err)
		assert.Equal(t, "43.80", result.ConvertedAmount.StringFixed(2))
		assert.Equal(t, "0.0438", result.RateUsed.String())
		assert.Equal(t, entity.PathViaBase, result.Path)
		store.AssertExpectations(t)
	})

	t.Run("Hop math keeps full precision", func(t *testing.T) {
		store := new(mocks.MockRateStore)
		store.On("GetRate", mock.Anything, entity.CurrencyCode("INR"), entity.CurrencyCode("ILS")).
			Return(nil, rateMissing("INR", "ILS"))
		store.On("GetRate", mock.Anything, entity.CurrencyCode("INR"), entity.CurrencyCode("USD")).
			Return(storedRate("INR", "USD", "0.012"), nil)
		store.On("GetRate", mock.Anything, entity.CurrencyCode("USD"), entity.CurrencyCode("ILS")).
			Return(storedRate("USD", "ILS", "3.65"), nil)

		result, err := newTestConverter(store).Convert(ctx, decimal.NewFromInt(333), "INR", "ILS")

		// 333 * 0.012 = 3.996; rounding that hop to 4.00 would yield 14.60
		require.NoError(t, err)
		assert.Equal(t, "14.59", result.ConvertedAmount.StringFixed(2))
	})

	t.Run("Tiny rates compose exactly", func(t *testing.T) {
		store := new(mocks.MockRateStore)
		store.On("GetRate", mock.Anything, entity.CurrencyCode("VND"), entity.CurrencyCode("EUR")).
			Return(nil, rateMissing("VND", "EUR"))
		store.On("GetRate", mock.Anything, entity.CurrencyCode("VND"), entity.CurrencyCode("USD")).
			Return(storedRate("VND", "USD", "0.000041"), nil)
		store.On("GetRate", mock.Anything, entity.CurrencyCode("USD"), entity.CurrencyCode("EUR")).
			Return(storedRate("USD", "EUR", "0.85"), nil)

		result, err := newTestConverter(store).Convert(ctx, decimal.NewFromInt(1_000_000), "VND", "EUR")

		require.NoError(t, err)
		assert.Equal(t, "34.85", result.ConvertedAmount.StringFixed(2))
		assert.Equal(t, "0.00003485", result.RateUsed.String())
	})

	t.Run("Direct rate wins over two hops", func(t *testing.T) {
		store := new(mocks.MockRateStore)
		store.On("GetRate", mock.Anything, entity.CurrencyCode("CNY"), entity.CurrencyCode("EUR")).
			Return(storedRate("CNY", "EUR", "0.13"), nil).Once()

		result, err := newTestConverter(store).Convert(ctx, decimal.NewFromInt(100), "CNY", "EUR")

		require.NoError(t, err)
		assert.Equal(t, "13.00", result.ConvertedAmount.StringFixed(2))
		assert.Equal(t, entity.PathDirect, result.Path)
		store.AssertNotCalled(t, "GetRate", mock.Anything, entity.CurrencyCode("CNY"), entity.CurrencyCode("USD"))
		store.AssertNotCalled(t, "GetRate", mock.Anything, entity.CurrencyCode("USD"), entity.CurrencyCode("EUR"))
	})

	t.Run("Identity conversion is exact", func(t *testing.T) {
		store := new(mocks.MockRateStore)
		amount := decimal.RequireFromString("12.3456")

		result, err := newTestConverter(store).Convert(ctx, amount, "THB", "THB")

		require.NoError(t, err)
		assert.True(t, result.ConvertedAmount.Equal(amount))
		assert.True(t, result.RateUsed.Equal(decimal.NewFromInt(1)))
		assert.Equal(t, entity.PathDirect, result.Path)
		store.AssertNotCalled(t, "GetRate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Every missing hop is named", func(t *testing.T) {
		store := new(mocks.MockRateStore)
		store.On("GetRate", mock.Anything, entity.CurrencyCode("THB"), entity.CurrencyCode("ILS")).
			Return(nil, rateMissing("THB", "ILS"))
		store.On("GetRate", mock.Anything, entity.CurrencyCode("THB"), entity.CurrencyCode("USD")).
			Return(nil, rateMissing("THB", "USD"))
		store.On("GetRate", mock.Anything, entity.CurrencyCode("USD"), entity.CurrencyCode("ILS")).
			Return(nil, rateMissing("USD", "ILS"))

		result, err := newTestConverter(store).Convert(ctx, decimal.NewFromInt(10), "THB", "ILS")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, apperrors.ErrRateNotFound)

		var missing *apperrors.MissingRatesError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, []apperrors.Pair{{From: "THB", To: "USD"}, {From: "USD", To: "ILS"}}, missing.Missing)
		assert.Contains(t, err.Error(), "THB->USD")
		assert.Contains(t, err.Error(), "USD->ILS")
	})

	t.Run("Only the missing hop is named", func(t *testing.T) {
		store := new(mocks.MockRateStore)
		store.On("GetRate", mock.Anything, entity.CurrencyCode("THB"), entity.CurrencyCode("EUR")).
			Return(nil, rateMissing("THB", "EUR"))
		store.On("GetRate", mock.Anything, entity.CurrencyCode("THB"), entity.CurrencyCode("USD")).
			Return(storedRate("THB", "USD", "0.027"), nil)
		store.On("GetRate", mock.Anything, entity.CurrencyCode("USD"), entity.CurrencyCode("EUR")).
			Return(nil, rateMissing("USD", "EUR"))

		_, err := newTestConverter(store).Convert(ctx, decimal.NewFromInt(10), "THB", "EUR")

		var missing *apperrors.MissingRatesError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, []apperrors.Pair{{From: "USD", To: "EUR"}}, missing.Missing)
	})

	t.Run("Stored rates are not inverted", func(t *testing.T) {
		store := new(mocks.MockRateStore)
		store.On("GetRate", mock.Anything, entity.CurrencyCode("USD"), entity.CurrencyCode("CNY")).
			Return(nil, rateMissing("USD", "CNY")).Once()

		_, err := newTestConverter(store).Convert(ctx, decimal.NewFromInt(10), "USD", "CNY")

		var missing *apperrors.MissingRatesError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, []apperrors.Pair{{From: "USD", To: "CNY"}}, missing.Missing)
		store.AssertExpectations(t)
	})

	t.Run("Unknown currency", func(t *testing.T) {
		store := new(mocks.MockRateStore)

		_, err := newTestConverter(store).Convert(ctx, decimal.NewFromInt(10), "USD", "XYZ")

		assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)
		assert.NotErrorIs(t, err, apperrors.ErrRateNotFound)
		store.AssertNotCalled(t, "GetRate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Backend failure is surfaced", func(t *testing.T) {
		store := new(mocks.MockRateStore)
		store.On("GetRate", mock.Anything, entity.CurrencyCode("CNY"), entity.CurrencyCode("USD")).
			Return(nil, errors.New("connection refused"))

		_, err := newTestConverter(store).Convert(ctx, decimal.NewFromInt(10), "CNY", "USD")

		require.Error(t, err)
		assert.NotErrorIs(t, err, apperrors.ErrRateNotFound)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("Half rounds away from zero", func(t *testing.T) {
		store := new(mocks.MockRateStore)
		store.On("GetRate", mock.Anything, entity.CurrencyCode("EUR"), entity.CurrencyCode("USD")).
			Return(storedRate("EUR", "USD", "0.125"), nil)

		conv := newTestConverter(store)
		up, err := conv.Convert(ctx, decimal.NewFromInt(1), "EUR", "USD")
		require.NoError(t, err)
		down, err := conv.Convert(ctx, decimal.NewFromInt(-1), "EUR", "USD")
		require.NoError(t, err)

		assert.Equal(t, "0.13", up.ConvertedAmount.StringFixed(2))
		assert.Equal(t, "-0.13", down.ConvertedAmount.StringFixed(2))
	})
}

func TestConvertBulk(t *testing.T) {
	ctx := context.Background()

	t.Run("Resolves the path once", func(t *testing.T) {
		store := new(mocks.MockRateStore)
		store.On("GetRate", mock.Anything, entity.CurrencyCode("CNY"), entity.CurrencyCode("USD")).
			Return(storedRate("CNY", "USD", "0.14"), nil).Once()

		amounts := []decimal.Decimal{
			decimal.NewFromInt(100),
			decimal.RequireFromString("9.99"),
			decimal.Zero,
		}
		results, err := newTestConverter(store).ConvertBulk(ctx, amounts, "CNY", "USD")

		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "14.00", results[0].ConvertedAmount.StringFixed(2))
		assert.Equal(t, "1.40", results[1].ConvertedAmount.StringFixed(2))
		assert.Equal(t, "0.00", results[2].ConvertedAmount.StringFixed(2))
		store.AssertNumberOfCalls(t, "GetRate", 1)
	})

	t.Run("Unresolved path fails the batch", func(t *testing.T) {
		store := new(mocks.MockRateStore)
		store.On("GetRate", mock.Anything, entity.CurrencyCode("KRW"), entity.CurrencyCode("USD")).
			Return(nil, rateMissing("KRW", "USD"))

		results, err := newTestConverter(store).ConvertBulk(ctx, []decimal.Decimal{decimal.NewFromInt(1)}, "KRW", "USD")

		assert.Nil(t, results)
		assert.ErrorIs(t, err, apperrors.ErrRateNotFound)
	})

	t.Run("Empty batch still checks the path", func(t *testing.T) {
		store := new(mocks.MockRateStore)
		store.On("GetRate", mock.Anything, entity.CurrencyCode("CNY"), entity.CurrencyCode("USD")).
			Return(storedRate("CNY", "USD", "0.14"), nil)

		results, err := newTestConverter(store).ConvertBulk(ctx, nil, "CNY", "USD")

		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestGetEffectiveRate(t *testing.T) {
	ctx := context.Background()
	store := new(mocks.MockRateStore)
	store.On("GetRate", mock.Anything, entity.CurrencyCode("MYR"), entity.CurrencyCode("EUR")).
		Return(nil, rateMissing("MYR", "EUR"))
	store.On("GetRate", mock.Anything, entity.CurrencyCode("MYR"), entity.CurrencyCode("USD")).
		Return(storedRate("MYR", "USD", "0.21"), nil)
	store.On("GetRate", mock.Anything, entity.CurrencyCode("USD"), entity.CurrencyCode("EUR")).
		Return(storedRate("USD", "EUR", "0.85"), nil)

	eff, err := newTestConverter(store).GetEffectiveRate(ctx, "MYR", "EUR")

	require.NoError(t, err)
	assert.Equal(t, "0.1785", eff.Rate.String())
	assert.Equal(t, entity.PathViaBase, eff.Path)
	assert.Equal(t, entity.CurrencyCode("MYR"), eff.From)
	assert.Equal(t, entity.CurrencyCode("EUR"), eff.To)
}

func TestConverterStats(t *testing.T) {
	store := new(mocks.MockRateStore)
	store.On("ListAll", mock.Anything).Return([]entity.ExchangeRate{
		*storedRate("CNY", "USD", "0.14"),
		*storedRate("USD", "EUR", "0.85"),
	}, nil)

	stats, err := newTestConverter(store).Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entity.CurrencyCode("USD"), stats.BaseCurrency)
	assert.Equal(t, displayCurrencies, stats.DisplayCurrencies)
	assert.Equal(t, 2, stats.StoredRates)
	assert.Equal(t, len(registry.Default().AllCodes()), stats.SupportedCurrencies)
}
