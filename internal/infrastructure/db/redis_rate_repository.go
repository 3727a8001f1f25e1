package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/damon-houk/listing-currency-service/internal/apperrors"
	"github.com/damon-houk/listing-currency-service/internal/domain/entity"
	"github.com/damon-houk/listing-currency-service/internal/domain/registry"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const scanBatch = 200

// RedisRateRepository stores rates as JSON strings under "<namespace>:rate:FROM:TO".
// A single SET is atomic; durability follows the server's appendfsync setting.
type RedisRateRepository struct {
	client redis.UniversalClient
	prefix string
	check  pairValidator
	now    Clock
}

// NewRedisRateRepository creates a rate repository backed by a redis client
func NewRedisRateRepository(client redis.UniversalClient, namespace string, reg *registry.Registry) *RedisRateRepository {
	if namespace == "" {
		namespace = "fx"
	}
	return &RedisRateRepository{
		client: client,
		prefix: namespace + ":rate:",
		check:  pairValidator{registry: reg},
		now:    utcNow,
	}
}

// GetRate retrieves the stored rate for an ordered pair
func (r *RedisRateRepository) GetRate(ctx context.Context, from, to entity.CurrencyCode) (*entity.ExchangeRate, error) {
	if err := r.check.checkPair(from, to); err != nil {
		return nil, err
	}

	val, err := r.client.Get(ctx, rateKey(r.prefix, from, to)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s->%s", apperrors.ErrRateNotFound, from, to)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve rate %s->%s: %w", from, to, err)
	}

	var rate entity.ExchangeRate
	if err := json.Unmarshal(val, &rate); err != nil {
		return nil, fmt.Errorf("failed to decode rate %s->%s: %w", from, to, err)
	}
	return &rate, nil
}

// UpsertRate validates and stores a rate, overwriting any previous value
func (r *RedisRateRepository) UpsertRate(ctx context.Context, from, to entity.CurrencyCode, rate decimal.Decimal) (*entity.ExchangeRate, error) {
	if err := r.check.checkRate(from, to, rate); err != nil {
		return nil, err
	}

	stored := &entity.ExchangeRate{
		From:      from,
		To:        to,
		Rate:      rate,
		UpdatedAt: r.now(),
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rate: %w", err)
	}

	if err := r.client.Set(ctx, rateKey(r.prefix, from, to), data, 0).Err(); err != nil {
		return nil, fmt.Errorf("failed to store rate %s->%s: %w", from, to, err)
	}
	return stored, nil
}

// UpsertBulk applies each update with its own SET
func (r *RedisRateRepository) UpsertBulk(ctx context.Context, updates []entity.RateUpdate) (*entity.BulkResult, error) {
	return upsertEach(ctx, r.check.registry, updates, r.UpsertRate)
}

// DeleteRate removes a pair. Deleting an absent pair succeeds.
func (r *RedisRateRepository) DeleteRate(ctx context.Context, from, to entity.CurrencyCode) error {
	if err := r.check.checkPair(from, to); err != nil {
		return err
	}
	if err := r.client.Del(ctx, rateKey(r.prefix, from, to)).Err(); err != nil {
		return fmt.Errorf("failed to delete rate %s->%s: %w", from, to, err)
	}
	return nil
}

// ListAll scans the namespace and returns every stored rate
func (r *RedisRateRepository) ListAll(ctx context.Context) ([]entity.ExchangeRate, error) {
	keys, err := r.scanKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan rates: %w", err)
	}

	rates := make([]entity.ExchangeRate, 0, len(keys))
	if len(keys) == 0 {
		return rates, nil
	}

	// Pipelined GETs instead of MGET so keys may live on different cluster slots.
	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, 0, len(keys))
	for _, key := range keys {
		cmds = append(cmds, pipe.Get(ctx, key))
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to load rates: %w", err)
	}

	for _, cmd := range cmds {
		val, err := cmd.Bytes()
		if errors.Is(err, redis.Nil) {
			// deleted between SCAN and GET
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load rate %s: %w", cmd.Args()[1], err)
		}
		var rate entity.ExchangeRate
		if err := json.Unmarshal(val, &rate); err != nil {
			return nil, fmt.Errorf("failed to decode rate: %w", err)
		}
		rates = append(rates, rate)
	}
	return rates, nil
}

// scanKeys collects the namespace keys, visiting every master on a cluster.
func (r *RedisRateRepository) scanKeys(ctx context.Context) ([]string, error) {
	scan := func(ctx context.Context, c redis.Cmdable) ([]string, error) {
		var keys []string
		iter := c.Scan(ctx, 0, r.prefix+"*", scanBatch).Iterator()
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		return keys, iter.Err()
	}

	cluster, ok := r.client.(*redis.ClusterClient)
	if !ok {
		return scan(ctx, r.client)
	}

	var (
		mu   sync.Mutex
		keys []string
	)
	err := cluster.ForEachMaster(ctx, func(ctx context.Context, c *redis.Client) error {
		found, err := scan(ctx, c)
		if err != nil {
			return err
		}
		mu.Lock()
		keys = append(keys, found...)
		mu.Unlock()
		return nil
	})
	return keys, err
}

// Ping checks the connection
func (r *RedisRateRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
