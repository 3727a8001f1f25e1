package cache

import (
	"context"
	"sync"
	"time"

	"github.com/damon-houk/listing-currency-service/internal/domain/entity"
)

// CacheEntry represents a cached exchange rate with expiration
type CacheEntry struct {
	Rate      entity.ExchangeRate
	Timestamp time.Time
}

// Generation identifies the state of one pair at the moment a backend read began.
// Any mutation of the pair, or a Clear, moves it forward.
type Generation struct {
	epoch uint64
	pair  uint64
}

// RateCache provides a thread-safe in-memory cache of directional rates keyed by pair
type RateCache struct {
	cache      map[string]CacheEntry
	gens       map[string]uint64
	epoch      uint64
	expiration time.Duration
	mutex      sync.RWMutex
}

// NewRateCache creates a rate cache whose entries live for ttl
func NewRateCache(ttl time.Duration) *RateCache {
	return &RateCache{
		cache:      make(map[string]CacheEntry),
		gens:       make(map[string]uint64),
		expiration: ttl,
	}
}

func pairKey(from, to entity.CurrencyCode) string {
	return string(from) + ":" + string(to)
}

// Get returns a copy of the cached rate, or nil when absent or expired
func (c *RateCache) Get(from, to entity.CurrencyCode) *entity.ExchangeRate {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entry, exists := c.cache[pairKey(from, to)]
	if !exists || time.Since(entry.Timestamp) > c.expiration {
		return nil
	}

	rate := entry.Rate
	return &rate
}

// Generation returns the current generation of a pair. Take it before reading
// the backend and hand it to PutIfCurrent afterwards.
func (c *RateCache) Generation(from, to entity.CurrencyCode) Generation {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return Generation{epoch: c.epoch, pair: c.gens[pairKey(from, to)]}
}

// PutIfCurrent stores rate only if its pair has not been mutated since gen was
// taken. It reports whether the rate was stored.
func (c *RateCache) PutIfCurrent(rate entity.ExchangeRate, gen Generation) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	key := pairKey(rate.From, rate.To)
	if c.epoch != gen.epoch || c.gens[key] != gen.pair {
		return false
	}

	c.cache[key] = CacheEntry{
		Rate:      rate,
		Timestamp: time.Now(),
	}
	return true
}

// Invalidate drops a single pair and advances its generation
func (c *RateCache) Invalidate(from, to entity.CurrencyCode) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	key := pairKey(from, to)
	delete(c.cache, key)
	c.gens[key]++
}

// Clear clears all entries from the cache and advances every generation
func (c *RateCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.cache = make(map[string]CacheEntry)
	c.gens = make(map[string]uint64)
	c.epoch++
}

// Size returns the number of items in the cache, expired ones included
func (c *RateCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.cache)
}

// CleanExpired removes expired entries from the cache
func (c *RateCache) CleanExpired() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	count := 0
	now := time.Now()

	for key, entry := range c.cache {
		if now.Sub(entry.Timestamp) > c.expiration {
			delete(c.cache, key)
			count++
		}
	}

	return count
}

// RunCleanup calls CleanExpired every interval until ctx is done.
// onClean, if set, receives each non-zero eviction count.
func (c *RateCache) RunCleanup(ctx context.Context, interval time.Duration, onClean func(evicted int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := c.CleanExpired(); n > 0 && onClean != nil {
				onClean(n)
			}
		}
	}
}
