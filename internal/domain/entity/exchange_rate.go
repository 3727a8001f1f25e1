package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a stored directional rate: 1 From = Rate To.
// The inverse pair is a separate row.
type ExchangeRate struct {
	From      CurrencyCode    `json:"from_currency"`
	To        CurrencyCode    `json:"to_currency"`
	Rate      decimal.Decimal `json:"rate"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// RateUpdate is one item of an upsert request.
type RateUpdate struct {
	From string          `json:"from_currency"`
	To   string          `json:"to_currency"`
	Rate decimal.Decimal `json:"rate"`
}

// BulkFailure reports a rejected bulk upsert item.
type BulkFailure struct {
	Index int             `json:"index"`
	From  string          `json:"from_currency"`
	To    string          `json:"to_currency"`
	Rate  decimal.Decimal `json:"rate"`
	Error string          `json:"error"`
}

// BulkResult is the outcome of a bulk upsert. Items are applied independently.
type BulkResult struct {
	Updated []ExchangeRate `json:"updated"`
	Failed  []BulkFailure  `json:"failed"`
}
