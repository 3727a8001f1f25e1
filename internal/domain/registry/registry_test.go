package registry

import (
	"errors"
	"testing"

	"github.com/damon-houk/listing-currency-service/internal/apperrors"
	"github.com/damon-houk/listing-currency-service/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	reg := Default()

	t.Run("Lookup known code", func(t *testing.T) {
		meta, err := reg.Lookup("ILS")
		require.NoError(t, err)
		assert.Equal(t, "Israeli Shekel", meta.Name)
		assert.Contains(t, meta.Symbols, "₪")
		assert.Equal(t, entity.RegionMiddleEast, meta.Region)
	})

	t.Run("Lookup unknown code", func(t *testing.T) {
		_, err := reg.Lookup("XYZ")
		assert.True(t, errors.Is(err, apperrors.ErrUnknownCurrency))
	})

	t.Run("Parse normalizes case and space", func(t *testing.T) {
		code, err := reg.Parse("  cny ")
		require.NoError(t, err)
		assert.Equal(t, entity.CurrencyCode("CNY"), code)

		_, err = reg.Parse("dollars")
		assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)
	})

	t.Run("Display currencies lead the table", func(t *testing.T) {
		codes := reg.AllCodes()
		require.GreaterOrEqual(t, len(codes), 3)
		assert.Equal(t, []entity.CurrencyCode{"USD", "EUR", "ILS"}, codes[:3])
	})

	t.Run("Ambiguous symbols list the most common code first", func(t *testing.T) {
		idx := reg.SymbolsIndex()
		assert.Equal(t, entity.CurrencyCode("USD"), idx["$"][0])
		assert.Contains(t, idx["$"], entity.CurrencyCode("CAD"))
		assert.Contains(t, idx["$"], entity.CurrencyCode("AUD"))
		assert.Equal(t, []entity.CurrencyCode{"CNY", "JPY"}, idx["¥"])
		assert.Equal(t, []entity.CurrencyCode{"HKD"}, idx["HK$"])
	})

	t.Run("Country alias index", func(t *testing.T) {
		idx := reg.CountryAliasIndex()
		assert.Equal(t, entity.CurrencyCode("JPY"), idx["japan"])
		assert.Equal(t, entity.CurrencyCode("CNY"), idx["chinese"])
		assert.Equal(t, entity.CurrencyCode("THB"), idx["thai"])
		assert.Equal(t, entity.CurrencyCode("AED"), idx["united arab emirates"])
		assert.Equal(t, 3, reg.MaxAliasWords())
	})

	t.Run("Returned indexes are copies", func(t *testing.T) {
		idx := reg.SymbolsIndex()
		idx["$"][0] = "XXX"
		assert.Equal(t, entity.CurrencyCode("USD"), reg.SymbolsIndex()["$"][0])

		meta, err := reg.Lookup("USD")
		require.NoError(t, err)
		meta.Symbols[0] = "changed"
		again, _ := reg.Lookup("USD")
		assert.Equal(t, "US$", again.Symbols[0])
	})
}

func TestNew(t *testing.T) {
	t.Run("Rejects malformed codes", func(t *testing.T) {
		_, err := New([]entity.CurrencyMeta{{Code: "usd"}})
		assert.Error(t, err)
	})

	t.Run("Rejects duplicates", func(t *testing.T) {
		_, err := New([]entity.CurrencyMeta{{Code: "USD"}, {Code: "USD"}})
		assert.Error(t, err)
	})

	t.Run("First alias owner wins", func(t *testing.T) {
		reg, err := New([]entity.CurrencyMeta{
			{Code: "AAA", Aliases: []string{"Shared"}},
			{Code: "BBB", Aliases: []string{"shared"}},
		})
		require.NoError(t, err)
		assert.Equal(t, entity.CurrencyCode("AAA"), reg.CountryAliasIndex()["shared"])
	})
}

func TestSubset(t *testing.T) {
	sub, err := Default().Subset([]string{"eur", "USD"})
	require.NoError(t, err)
	assert.Equal(t, []entity.CurrencyCode{"USD", "EUR"}, sub.AllCodes())
	assert.False(t, sub.Has("ILS"))

	_, err = Default().Subset([]string{"USD", "XYZ"})
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Made in JAPAN!", "made in japan"},
		{"  Côte d'Ivoire ", "cote d ivoire"},
		{"Hong-Kong", "hong kong"},
		{"STRASSE", "strasse"},
		{"", ""},
		{"***", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeText(tt.in))
		})
	}
}
