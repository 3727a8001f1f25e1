package handler

import (
	"github.com/damon-houk/listing-currency-service/internal/application/service"
	"github.com/damon-houk/listing-currency-service/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// UpsertRateRequest is the body of PUT /rates/{from}/{to}
type UpsertRateRequest struct {
	Rate decimal.Decimal `json:"rate"`
}

// BulkUpsertRequest is the body of POST /rates/bulk
type BulkUpsertRequest struct {
	Rates []entity.RateUpdate `json:"rates"`
}

// SeedResponse reports how many default rates were written; 0 when the store already had rates
type SeedResponse struct {
	Seeded int `json:"seeded"`
}

// RatesResponse lists every stored rate
type RatesResponse struct {
	Rates []entity.ExchangeRate   `json:"rates"`
	Stats *service.ConverterStats `json:"stats"`
}

// ConvertRequest is the body of POST /convert
type ConvertRequest struct {
	Amount decimal.Decimal `json:"amount"`
	From   string          `json:"from_currency"`
	To     string          `json:"to_currency"`
}

// ConvertBulkRequest is the body of POST /convert/bulk
type ConvertBulkRequest struct {
	Amounts []decimal.Decimal `json:"amounts"`
	From    string            `json:"from_currency"`
	To      string            `json:"to_currency"`
}

// ConvertBulkResponse carries one result per requested amount, in order
type ConvertBulkResponse struct {
	Results []entity.ConversionResult `json:"results"`
}

// DetectTextRequest is the body of the text detection endpoints
type DetectTextRequest struct {
	Text string `json:"text"`
}

// DetectProductRequest is the body of POST /detect/product
type DetectProductRequest struct {
	Record entity.ProductRecord `json:"record"`
}

// ResolveProductRequest is the body of POST /products/resolve. No targets means the display currencies.
type ResolveProductRequest struct {
	Record  entity.ProductRecord `json:"record"`
	Targets []string             `json:"targets,omitempty"`
}

// ResolveProductResponse carries one price per target currency
type ResolveProductResponse struct {
	Prices []entity.ResolvedPrice `json:"prices"`
}
