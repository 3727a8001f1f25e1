package entity

import "github.com/shopspring/decimal"

// ConversionPath tells whether a conversion used a stored pair or routed through the base currency
type ConversionPath string

const (
	PathDirect  ConversionPath = "direct"
	PathViaBase ConversionPath = "via-base"
)

// ConversionResult is produced fresh for every conversion.
type ConversionResult struct {
	OriginalAmount   decimal.Decimal `json:"original_amount"`
	OriginalCurrency CurrencyCode    `json:"original_currency"`
	TargetCurrency   CurrencyCode    `json:"target_currency"`
	ConvertedAmount  decimal.Decimal `json:"converted_amount"`
	RateUsed         decimal.Decimal `json:"rate_used"`
	Path             ConversionPath  `json:"path"`
}

// EffectiveRate is the composed rate between two currencies without an amount applied.
type EffectiveRate struct {
	From CurrencyCode    `json:"from_currency"`
	To   CurrencyCode    `json:"to_currency"`
	Rate decimal.Decimal `json:"rate"`
	Path ConversionPath  `json:"path"`
}
