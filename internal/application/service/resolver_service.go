// Package service internal/application/service/resolver_service.go
package service

import (
	"context"
	"fmt"

	"github.com/damon-houk/listing-currency-service/internal/apperrors"
	"github.com/damon-houk/listing-currency-service/internal/domain/entity"
	"github.com/damon-houk/listing-currency-service/internal/infrastructure/logger"
	"github.com/damon-houk/listing-currency-service/internal/infrastructure/middleware"
)

// ProductResolver turns a raw product record into converted prices
type ProductResolver struct {
	detector  *Detector
	converter *Converter
	logger    logger.Logger
}

// NewProductResolver creates a resolver over detector and converter
func NewProductResolver(detector *Detector, converter *Converter, log logger.Logger) *ProductResolver {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &ProductResolver{
		detector:  detector,
		converter: converter,
		logger:    log,
	}
}

// Resolve detects the record's currency and amount and converts it to target.
// A record without both fails with ErrUnresolvedCurrency.
func (r *ProductResolver) Resolve(ctx context.Context, record entity.ProductRecord, target entity.CurrencyCode) (*entity.ResolvedPrice, error) {
	detection, err := r.detect(ctx, record)
	if err != nil {
		return nil, err
	}
	return r.convert(ctx, detection, target)
}

// ResolveAll converts the record into each target; no targets means the display currencies.
// It stops at the first failing target.
func (r *ProductResolver) ResolveAll(ctx context.Context, record entity.ProductRecord, targets []entity.CurrencyCode) ([]entity.ResolvedPrice, error) {
	if len(targets) == 0 {
		targets = r.converter.DisplayCurrencies()
	}

	detection, err := r.detect(ctx, record)
	if err != nil {
		return nil, err
	}

	prices := make([]entity.ResolvedPrice, 0, len(targets))
	for _, target := range targets {
		price, err := r.convert(ctx, detection, target)
		if err != nil {
			return nil, err
		}
		prices = append(prices, *price)
	}
	return prices, nil
}

func (r *ProductResolver) detect(ctx context.Context, record entity.ProductRecord) (entity.DetectionResult, error) {
	detection, err := r.detector.DetectFromProductRecord(record)
	if err != nil {
		return detection, err
	}

	if detection.CurrencyCode == nil || detection.Amount == nil {
		r.logger.Info("Product currency unresolved", map[string]interface{}{
			"request_id": middleware.GetRequestID(ctx),
			"currency":   detection.Code(),
			"has_amount": detection.Amount != nil,
			"confidence": detection.Confidence,
		})
		return detection, fmt.Errorf("%w: currency %q, amount found: %t",
			apperrors.ErrUnresolvedCurrency, detection.Code(), detection.Amount != nil)
	}
	return detection, nil
}

func (r *ProductResolver) convert(ctx context.Context, detection entity.DetectionResult, target entity.CurrencyCode) (*entity.ResolvedPrice, error) {
	result, err := r.converter.Convert(ctx, *detection.Amount, *detection.CurrencyCode, target)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Product price resolved", map[string]interface{}{
		"request_id": middleware.GetRequestID(ctx),
		"from":       result.OriginalCurrency,
		"to":         result.TargetCurrency,
		"method":     detection.Method,
		"confidence": detection.Confidence,
	})

	return &entity.ResolvedPrice{
		ConversionResult:    *result,
		DetectionMethod:     detection.Method,
		DetectionConfidence: detection.Confidence,
	}, nil
}
