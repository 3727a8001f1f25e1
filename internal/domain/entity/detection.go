package entity

import "github.com/shopspring/decimal"

// Confidence is the qualitative strength of a detection
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
	ConfidenceNone   Confidence = "none"
)

// DetectionMethod is the signal that produced a detection
type DetectionMethod string

const (
	MethodSymbolPattern DetectionMethod = "symbol-pattern"
	MethodCountryName   DetectionMethod = "country-name"
	MethodCombined      DetectionMethod = "combined"
)

// DetectionResult is produced fresh per call. A nil CurrencyCode means nothing was found.
type DetectionResult struct {
	CurrencyCode *CurrencyCode    `json:"currency_code"`
	Amount       *decimal.Decimal `json:"amount"`
	Confidence   Confidence       `json:"confidence"`
	Method       DetectionMethod  `json:"method"`
}

// Found reports whether a currency was detected.
func (r DetectionResult) Found() bool {
	return r.CurrencyCode != nil
}

// Code returns the detected code or "" when nothing was found.
func (r DetectionResult) Code() CurrencyCode {
	if r.CurrencyCode == nil {
		return ""
	}
	return *r.CurrencyCode
}
