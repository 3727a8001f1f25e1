package db

import (
	"context"
	"os"
	"testing"

	"github.com/damon-houk/listing-currency-service/internal/apperrors"
	"github.com/damon-houk/listing-currency-service/internal/domain/entity"
	"github.com/damon-houk/listing-currency-service/internal/domain/registry"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real server; set REDIS_ADDR to enable.
func TestRedisRateRepository(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	namespace := "fx-test-" + uuid.NewString()
	repo := NewRedisRateRepository(client, namespace, registry.Default())
	require.NoError(t, repo.Ping(ctx))

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, namespace+":*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
	})

	_, err := repo.UpsertRate(ctx, "CNY", "USD", decimal.RequireFromString("0.14"))
	require.NoError(t, err)

	got, err := repo.GetRate(ctx, "CNY", "USD")
	require.NoError(t, err)
	assert.Equal(t, "0.14", got.Rate.String())

	_, err = repo.GetRate(ctx, "USD", "CNY")
	assert.ErrorIs(t, err, apperrors.ErrRateNotFound)

	_, err = repo.GetRate(ctx, "USD", "XYZ")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)

	result, err := repo.UpsertBulk(ctx, []entity.RateUpdate{
		{From: "USD", To: "EUR", Rate: decimal.RequireFromString("0.85")},
		{From: "USD", To: "ILS", Rate: decimal.Zero},
	})
	require.NoError(t, err)
	assert.Len(t, result.Updated, 1)
	assert.Len(t, result.Failed, 1)

	rates, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, rates, 2)

	require.NoError(t, repo.DeleteRate(ctx, "CNY", "USD"))
	require.NoError(t, repo.DeleteRate(ctx, "CNY", "USD"))
	_, err = repo.GetRate(ctx, "CNY", "USD")
	assert.ErrorIs(t, err, apperrors.ErrRateNotFound)
}
