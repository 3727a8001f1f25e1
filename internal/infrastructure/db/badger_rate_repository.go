package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/damon-houk/listing-currency-service/internal/apperrors"
	"github.com/damon-houk/listing-currency-service/internal/domain/entity"
	"github.com/damon-houk/listing-currency-service/internal/domain/registry"
	"github.com/dgraph-io/badger/v3"
	"github.com/shopspring/decimal"
)

const badgerRatePrefix = "rate:"

// BadgerRateRepository implements the rate store interface using BadgerDB.
// Each upsert runs in its own transaction, so readers never see a partial row.
type BadgerRateRepository struct {
	db    *badger.DB
	check pairValidator
	now   Clock
}

// NewBadgerRateRepository creates a new BadgerDB rate repository
func NewBadgerRateRepository(db *badger.DB, reg *registry.Registry) *BadgerRateRepository {
	return &BadgerRateRepository{
		db:    db,
		check: pairValidator{registry: reg},
		now:   utcNow,
	}
}

// WithClock replaces the timestamp source, for tests.
func (r *BadgerRateRepository) WithClock(now Clock) *BadgerRateRepository {
	r.now = now
	return r
}

// GetRate retrieves the stored rate for an ordered pair
func (r *BadgerRateRepository) GetRate(ctx context.Context, from, to entity.CurrencyCode) (*entity.ExchangeRate, error) {
	if err := r.check.checkPair(from, to); err != nil {
		return nil, err
	}

	var rate entity.ExchangeRate
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(rateKey(badgerRatePrefix, from, to)))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rate)
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s->%s", apperrors.ErrRateNotFound, from, to)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to retrieve rate %s->%s: %w", from, to, err)
	}

	return &rate, nil
}

// UpsertRate validates and stores a rate, overwriting any previous value
func (r *BadgerRateRepository) UpsertRate(ctx context.Context, from, to entity.CurrencyCode, rate decimal.Decimal) (*entity.ExchangeRate, error) {
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

	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(rateKey(badgerRatePrefix, from, to)), data)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store rate %s->%s: %w", from, to, err)
	}

	return stored, nil
}

// UpsertBulk applies each update in its own transaction
func (r *BadgerRateRepository) UpsertBulk(ctx context.Context, updates []entity.RateUpdate) (*entity.BulkResult, error) {
	return upsertEach(ctx, r.check.registry, updates, r.UpsertRate)
}

// DeleteRate removes a pair. Deleting an absent pair succeeds.
func (r *BadgerRateRepository) DeleteRate(ctx context.Context, from, to entity.CurrencyCode) error {
	if err := r.check.checkPair(from, to); err != nil {
		return err
	}

	err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(rateKey(badgerRatePrefix, from, to)))
	})
	if err != nil {
		return fmt.Errorf("failed to delete rate %s->%s: %w", from, to, err)
	}
	return nil
}

// ListAll returns every stored rate
func (r *BadgerRateRepository) ListAll(ctx context.Context) ([]entity.ExchangeRate, error) {
	rates := []entity.ExchangeRate{}

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(badgerRatePrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var rate entity.ExchangeRate
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rate)
			})
			if err != nil {
				return err
			}
			rates = append(rates, rate)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list rates: %w", err)
	}

	return rates, nil
}
