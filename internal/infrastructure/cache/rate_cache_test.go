package cache

import (
	"context"
	"testing"
	"time"

	"github.com/damon-houk/listing-currency-service/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func put(c *RateCache, rate entity.ExchangeRate) {
	c.PutIfCurrent(rate, c.Generation(rate.From, rate.To))
}

func cnyUSDRate() entity.ExchangeRate {
	return entity.ExchangeRate{
		From:      "CNY",
		To:        "USD",
		Rate:      decimal.RequireFromString("0.14"),
		UpdatedAt: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestRateCache(t *testing.T) {
	cache := NewRateCache(time.Hour)

	// Test initial state
	assert.Equal(t, 0, cache.Size())

	rate := cnyUSDRate()
	put(cache, rate)
	assert.Equal(t, 1, cache.Size())

	// Test retrieval
	retrieved := cache.Get("CNY", "USD")
	require.NotNil(t, retrieved)
	assert.True(t, rate.Rate.Equal(retrieved.Rate))

	// Pairs are directional
	assert.Nil(t, cache.Get("USD", "CNY"))

	// Callers get a copy
	retrieved.Rate = decimal.NewFromInt(99)
	assert.Equal(t, "0.14", cache.Get("CNY", "USD").Rate.String())

	// Test invalidation
	cache.Invalidate("CNY", "USD")
	assert.Nil(t, cache.Get("CNY", "USD"))

	// Test clearing
	put(cache, rate)
	assert.Equal(t, 1, cache.Size())
	cache.Clear()
	assert.Equal(t, 0, cache.Size())
}

func TestRateCacheExpiration(t *testing.T) {
	cache := NewRateCache(10 * time.Millisecond)
	put(cache, cnyUSDRate())

	time.Sleep(20 * time.Millisecond)
	assert.Nil(t, cache.Get("CNY", "USD"))

	// Test cleaning expired entries
	count := cache.CleanExpired()
	assert.Equal(t, 1, count)
	assert.Equal(t, 0, cache.Size())
}

func TestRateCacheGenerations(t *testing.T) {
	t.Run("Stale after invalidate", func(t *testing.T) {
		cache := NewRateCache(time.Hour)
		gen := cache.Generation("CNY", "USD")

		cache.Invalidate("CNY", "USD")

		assert.False(t, cache.PutIfCurrent(cnyUSDRate(), gen))
		assert.Nil(t, cache.Get("CNY", "USD"))
	})

	t.Run("Stale after clear", func(t *testing.T) {
		cache := NewRateCache(time.Hour)
		gen := cache.Generation("CNY", "USD")

		cache.Clear()

		assert.False(t, cache.PutIfCurrent(cnyUSDRate(), gen))
	})

	t.Run("Other pairs are unaffected", func(t *testing.T) {
		cache := NewRateCache(time.Hour)
		gen := cache.Generation("CNY", "USD")

		cache.Invalidate("INR", "USD")

		assert.True(t, cache.PutIfCurrent(cnyUSDRate(), gen))
		assert.NotNil(t, cache.Get("CNY", "USD"))
	})
}

func TestRunCleanup(t *testing.T) {
	cache := NewRateCache(5 * time.Millisecond)
	put(cache, cnyUSDRate())

	ctx, cancel := context.WithCancel(context.Background())
	evicted := make(chan int, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		cache.RunCleanup(ctx, 10*time.Millisecond, func(n int) {
			select {
			case evicted <- n:
			default:
			}
		})
	}()

	select {
	case n := <-evicted:
		assert.Equal(t, 1, n)
	case <-time.After(time.Second):
		t.Fatal("expired entry was never cleaned")
	}
	assert.Equal(t, 0, cache.Size())

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup did not stop after cancel")
	}
}
