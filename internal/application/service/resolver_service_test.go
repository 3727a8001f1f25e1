// internal/application/service/resolver_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/damon-houk/listing-currency-service/internal/apperrors"
	"github.com/damon-houk/listing-currency-service/internal/domain/entity"
	"github.com/damon-houk/listing-currency-service/internal/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestResolver(store *mocks.MockRateStore) *ProductResolver {
	return NewProductResolver(newTestDetector(), newTestConverter(store), mocks.NewQuietLogger())
}

func usdHubStore() *mocks.MockRateStore {
	store := new(mocks.MockRateStore)
	store.On("GetRate", mock.Anything, entity.CurrencyCode("CNY"), entity.CurrencyCode("USD")).
		Return(storedRate("CNY", "USD", "0.14"), nil)
	store.On("GetRate", mock.Anything, entity.CurrencyCode("CNY"), entity.CurrencyCode("EUR")).
		Return(nil, rateMissing("CNY", "EUR"))
	store.On("GetRate", mock.Anything, entity.CurrencyCode("CNY"), entity.CurrencyCode("ILS")).
		Return(nil, rateMissing("CNY", "ILS"))
	store.On("GetRate", mock.Anything, entity.CurrencyCode("USD"), entity.CurrencyCode("EUR")).
		Return(storedRate("USD", "EUR", "0.85"), nil)
	store.On("GetRate", mock.Anything, entity.CurrencyCode("USD"), entity.CurrencyCode("ILS")).
		Return(storedRate("USD", "ILS", "3.65"), nil)
	return store
}

var chineseListing = entity.ProductRecord{
	"sale_price":    "¥100",
	"product_title": "Chinese green tea gift box",
	"shop_name":     "Hangzhou Tea House",
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("Detected price is converted", func(t *testing.T) {
		price, err := newTestResolver(usdHubStore()).Resolve(ctx, chineseListing, "USD")

		require.NoError(t, err)
		assert.Equal(t, entity.CurrencyCode("CNY"), price.OriginalCurrency)
		assert.True(t, price.OriginalAmount.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, "14.00", price.ConvertedAmount.StringFixed(2))
		assert.Equal(t, entity.PathDirect, price.Path)
		assert.Equal(t, entity.MethodCombined, price.DetectionMethod)
		assert.Equal(t, entity.ConfidenceHigh, price.DetectionConfidence)
	})

	t.Run("Currency without amount is unresolved", func(t *testing.T) {
		store := new(mocks.MockRateStore)

		_, err := newTestResolver(store).Resolve(ctx, entity.ProductRecord{"product_title": "Made in Japan"}, "USD")

		assert.ErrorIs(t, err, apperrors.ErrUnresolvedCurrency)
		store.AssertNotCalled(t, "GetRate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("No currency is unresolved", func(t *testing.T) {
		_, err := newTestResolver(new(mocks.MockRateStore)).Resolve(ctx, entity.ProductRecord{"price": "49"}, "USD")
		assert.ErrorIs(t, err, apperrors.ErrUnresolvedCurrency)
	})

	t.Run("Invalid record is passed through", func(t *testing.T) {
		_, err := newTestResolver(new(mocks.MockRateStore)).Resolve(ctx, entity.ProductRecord{}, "USD")
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Missing rate is surfaced", func(t *testing.T) {
		store := new(mocks.MockRateStore)
		store.On("GetRate", mock.Anything, entity.CurrencyCode("THB"), entity.CurrencyCode("USD")).
			Return(nil, rateMissing("THB", "USD"))

		_, err := newTestResolver(store).Resolve(ctx, entity.ProductRecord{"price": "฿350"}, "USD")
		assert.ErrorIs(t, err, apperrors.ErrRateNotFound)
	})
}

func TestResolveAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults to the display currencies", func(t *testing.T) {
		prices, err := newTestResolver(usdHubStore()).ResolveAll(ctx, chineseListing, nil)

		require.NoError(t, err)
		require.Len(t, prices, 3)

		got := map[entity.CurrencyCode]string{}
		for _, p := range prices {
			got[p.TargetCurrency] = p.ConvertedAmount.StringFixed(2)
		}
		assert.Equal(t, map[entity.CurrencyCode]string{
			"USD": "14.00",
			"EUR": "11.90",
			"ILS": "51.10",
		}, got)
		assert.Equal(t, entity.PathViaBase, prices[1].Path)
	})

	t.Run("Explicit targets", func(t *testing.T) {
		prices, err := newTestResolver(usdHubStore()).ResolveAll(ctx, chineseListing, []entity.CurrencyCode{"CNY", "EUR"})

		require.NoError(t, err)
		require.Len(t, prices, 2)
		assert.Equal(t, "100.00", prices[0].ConvertedAmount.StringFixed(2))
		assert.Equal(t, "11.90", prices[1].ConvertedAmount.StringFixed(2))
	})

	t.Run("Fails on the first unconvertible target", func(t *testing.T) {
		store := usdHubStore()
		store.On("GetRate", mock.Anything, entity.CurrencyCode("CNY"), entity.CurrencyCode("GBP")).
			Return(nil, rateMissing("CNY", "GBP"))
		store.On("GetRate", mock.Anything, entity.CurrencyCode("USD"), entity.CurrencyCode("GBP")).
			Return(nil, rateMissing("USD", "GBP"))

		_, err := newTestResolver(store).ResolveAll(ctx, chineseListing, []entity.CurrencyCode{"USD", "GBP"})
		assert.ErrorIs(t, err, apperrors.ErrRateNotFound)
	})
}
