package cache

import (
	"context"

	"github.com/damon-houk/listing-currency-service/internal/domain/entity"
	"github.com/damon-houk/listing-currency-service/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// CachedRateStore is a read-through cache in front of a RateStore.
// Only successful lookups are cached; a miss always reaches the backend.
// Invalidation is local to the process, so a backend shared by several
// writers (redis) can serve another writer's stale rate until the TTL runs out.
type CachedRateStore struct {
	next  repository.RateStore
	cache *RateCache
}

// NewCachedRateStore wraps next with cache
func NewCachedRateStore(next repository.RateStore, cache *RateCache) *CachedRateStore {
	return &CachedRateStore{next: next, cache: cache}
}

// GetRate serves from the cache when it can
func (s *CachedRateStore) GetRate(ctx context.Context, from, to entity.CurrencyCode) (*entity.ExchangeRate, error) {
	if rate := s.cache.Get(from, to); rate != nil {
		return rate, nil
	}

	gen := s.cache.Generation(from, to)
	rate, err := s.next.GetRate(ctx, from, to)
	if err != nil {
		return nil, err
	}

	// A write that landed while the backend was read wins.
	s.cache.PutIfCurrent(*rate, gen)
	return rate, nil
}

// UpsertRate writes through and evicts the pair; the next read refills it
func (s *CachedRateStore) UpsertRate(ctx context.Context, from, to entity.CurrencyCode, rate decimal.Decimal) (*entity.ExchangeRate, error) {
	defer s.cache.Invalidate(from, to)
	return s.next.UpsertRate(ctx, from, to, rate)
}

// UpsertBulk writes through and drops the whole cache
func (s *CachedRateStore) UpsertBulk(ctx context.Context, updates []entity.RateUpdate) (*entity.BulkResult, error) {
	defer s.cache.Clear()
	return s.next.UpsertBulk(ctx, updates)
}

// DeleteRate writes through and evicts the pair
func (s *CachedRateStore) DeleteRate(ctx context.Context, from, to entity.CurrencyCode) error {
	defer s.cache.Invalidate(from, to)
	return s.next.DeleteRate(ctx, from, to)
}

// ListAll always reads the backend
func (s *CachedRateStore) ListAll(ctx context.Context) ([]entity.ExchangeRate, error) {
	return s.next.ListAll(ctx)
}
