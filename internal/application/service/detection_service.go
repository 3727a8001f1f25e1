// Package service internal/application/service/detection_service.go
package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/damon-houk/listing-currency-service/internal/apperrors"
	"github.com/damon-houk/listing-currency-service/internal/domain/entity"
	"github.com/damon-houk/listing-currency-service/internal/domain/registry"
	"github.com/damon-houk/listing-currency-service/internal/infrastructure/logger"
	"github.com/shopspring/decimal"
)

// Detector infers a currency, and where possible an amount, from listing text.
// It holds only read-only tables and is safe for concurrent use.
type Detector struct {
	registry *registry.Registry
	patterns []pattern
	aliases  map[string]entity.CurrencyCode
	maxWords int
	logger   logger.Logger
}

// NewDetector builds the pattern and alias tables from reg
func NewDetector(reg *registry.Registry, log logger.Logger) *Detector {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &Detector{
		registry: reg,
		patterns: buildPatterns(reg),
		aliases:  reg.CountryAliasIndex(),
		maxWords: reg.MaxAliasWords(),
		logger:   log,
	}
}

func checkText(text string) error {
	if !utf8.ValidString(text) {
		return fmt.Errorf("%w: text is not valid UTF-8", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: text is empty", apperrors.ErrInvalidInput)
	}
	return nil
}

func notFound(method entity.DetectionMethod) entity.DetectionResult {
	return entity.DetectionResult{Confidence: entity.ConfidenceNone, Method: method}
}

func found(code entity.CurrencyCode, amount *decimal.Decimal, conf entity.Confidence, method entity.DetectionMethod) entity.DetectionResult {
	return entity.DetectionResult{CurrencyCode: &code, Amount: amount, Confidence: conf, Method: method}
}

// DetectFromPriceText looks for currency symbols, ISO codes and currency names
// next to an amount. Finding nothing is not an error.
func (d *Detector) DetectFromPriceText(text string) (entity.DetectionResult, error) {
	if err := checkText(text); err != nil {
		return entity.DetectionResult{}, err
	}

	result := d.detectPrice(text, d.contextCodes(text))
	d.logger.Debug("Detected from price text", map[string]interface{}{
		"text":       text,
		"currency":   result.Code(),
		"confidence": result.Confidence,
	})
	return result, nil
}

// DetectFromCountryText maps the first country, demonym or brand alias in text
// to its currency. It never yields an amount.
func (d *Detector) DetectFromCountryText(text string) (entity.DetectionResult, error) {
	if err := checkText(text); err != nil {
		return entity.DetectionResult{}, err
	}

	codes := d.scanAliases(text, 1)
	if len(codes) == 0 {
		return notFound(entity.MethodCountryName), nil
	}
	return found(codes[0], nil, entity.ConfidenceMedium, entity.MethodCountryName), nil
}

// DetectFromText tries price text first and falls back to country text
func (d *Detector) DetectFromText(text string) (entity.DetectionResult, error) {
	result, err := d.DetectFromPriceText(text)
	if err != nil || result.Found() {
		return result, err
	}
	return d.DetectFromCountryText(text)
}

// DetectFromProductRecord applies a fixed precedence: a price field with an
// explicit currency, then a bare price paired with a currency-code field or a
// country signal, then a country signal alone.
func (d *Detector) DetectFromProductRecord(record entity.ProductRecord) (entity.DetectionResult, error) {
	if err := checkRecord(record); err != nil {
		return entity.DetectionResult{}, err
	}

	countryText := joinFields(record, entity.CountryFields)
	fieldCode, hasFieldCode := d.currencyFieldCode(record)

	hints := d.contextCodes(countryText)
	if hasFieldCode {
		hints[fieldCode] = true
	}

	var bareAmount string
	for _, field := range entity.PriceFields {
		text := record[field]
		if strings.TrimSpace(text) == "" || !utf8.ValidString(text) {
			continue
		}
		for code := range d.contextCodes(text) {
			hints[code] = true
		}

		if result := d.detectPrice(text, hints); result.Found() {
			return result, nil
		}
		if bareAmount == "" {
			bareAmount = numberRe.FindString(text)
		}
	}

	if hasFieldCode {
		return found(fieldCode, d.amountFor(bareAmount, fieldCode), entity.ConfidenceHigh, entity.MethodCombined), nil
	}

	for _, field := range entity.CountryFields {
		text := record[field]
		if !utf8.ValidString(text) {
			continue
		}
		codes := d.scanAliases(text, 1)
		if len(codes) == 0 {
			continue
		}
		if amount := d.amountFor(bareAmount, codes[0]); amount != nil {
			return found(codes[0], amount, entity.ConfidenceMedium, entity.MethodCombined), nil
		}
		return found(codes[0], nil, entity.ConfidenceMedium, entity.MethodCountryName), nil
	}

	return notFound(entity.MethodSymbolPattern), nil
}

func checkRecord(record entity.ProductRecord) error {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return nil
		}
	}
	return fmt.Errorf("%w: product record has no text fields", apperrors.ErrInvalidInput)
}

func joinFields(record entity.ProductRecord, fields []string) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if v := record[f]; utf8.ValidString(v) && strings.TrimSpace(v) != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

func (d *Detector) currencyFieldCode(record entity.ProductRecord) (entity.CurrencyCode, bool) {
	for _, field := range entity.CurrencyFields {
		if code, err := d.registry.Parse(record[field]); err == nil {
			return code, true
		}
	}
	return "", false
}

// amountFor parses raw in code's convention; nil when raw is empty or malformed.
func (d *Detector) amountFor(raw string, code entity.CurrencyCode) *decimal.Decimal {
	if raw == "" {
		return nil
	}
	minor := 2
	if meta, err := d.registry.Lookup(code); err == nil {
		minor = meta.MinorUnits
	}
	amount, err := parseAmount(raw, minor)
	if err != nil {
		return nil
	}
	return &amount
}

// contextCodes collects every currency named by a country alias in text.
func (d *Detector) contextCodes(text string) map[entity.CurrencyCode]bool {
	out := map[entity.CurrencyCode]bool{}
	for _, code := range d.scanAliases(text, -1) {
		out[code] = true
	}
	return out
}

// scanAliases walks the normalized tokens of text, trying the longest n-gram
// first at each position. limit < 0 means no limit.
func (d *Detector) scanAliases(text string, limit int) []entity.CurrencyCode {
	tokens := strings.Fields(registry.NormalizeText(text))
	var codes []entity.CurrencyCode

	for i := 0; i < len(tokens); {
		matched := 0
		for n := min(d.maxWords, len(tokens)-i); n > 0; n-- {
			if code, ok := d.aliases[strings.Join(tokens[i:i+n], " ")]; ok {
				codes = append(codes, code)
				matched = n
				break
			}
		}
		if limit > 0 && len(codes) >= limit {
			break
		}
		if matched == 0 {
			matched = 1
		}
		i += matched
	}
	return codes
}

// resolvedHit is a hit with its ambiguity settled.
type resolvedHit struct {
	hit
	code       entity.CurrencyCode
	contextual bool
}

// detectPrice resolves every pattern hit in text. Ambiguous symbols prefer a
// candidate named elsewhere (an unambiguous hit or a hint), else the first candidate.
// A text whose hits carry no amount is never more than medium confidence.
func (d *Detector) detectPrice(text string, hints map[entity.CurrencyCode]bool) entity.DetectionResult {
	hits := scan(d.patterns, text)
	if len(hits) == 0 {
		return notFound(entity.MethodSymbolPattern)
	}

	explicit := map[entity.CurrencyCode]bool{}
	for _, h := range hits {
		if !h.pattern.ambiguous() {
			explicit[h.pattern.candidates[0]] = true
		}
	}

	resolved := make([]resolvedHit, 0, len(hits))
	for _, h := range hits {
		resolved = append(resolved, resolveHit(h, explicit, hints))
	}

	first := resolved[0]
	agree := true
	for _, r := range resolved[1:] {
		if r.code != first.code {
			agree = false
			break
		}
	}

	amount := d.firstAmount(resolved, first.code)
	if !agree {
		return found(first.code, amount, entity.ConfidenceLow, entity.MethodSymbolPattern)
	}

	conf, method := entity.ConfidenceMedium, entity.MethodSymbolPattern
	switch {
	case len(explicit) > 0:
		conf = entity.ConfidenceHigh
	case first.contextual:
		conf, method = entity.ConfidenceHigh, entity.MethodCombined
	}
	if amount == nil {
		conf = entity.ConfidenceMedium
	}
	return found(first.code, amount, conf, method)
}

func resolveHit(h hit, explicit, hints map[entity.CurrencyCode]bool) resolvedHit {
	if !h.pattern.ambiguous() {
		return resolvedHit{hit: h, code: h.pattern.candidates[0]}
	}
	for _, code := range h.pattern.candidates {
		if explicit[code] {
			return resolvedHit{hit: h, code: code}
		}
	}
	for _, code := range h.pattern.candidates {
		if hints[code] {
			return resolvedHit{hit: h, code: code, contextual: true}
		}
	}
	return resolvedHit{hit: h, code: h.pattern.candidates[0]}
}

func (d *Detector) firstAmount(resolved []resolvedHit, code entity.CurrencyCode) *decimal.Decimal {
	for _, r := range resolved {
		if r.code == code && r.hasAmount {
			if amount := d.amountFor(r.rawAmount, code); amount != nil {
				return amount
			}
		}
	}
	return nil
}
