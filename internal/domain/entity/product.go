package entity

// ProductRecord is a raw catalog listing: named text fields as supplied by ingestion.
type ProductRecord map[string]string

// Field names read by the detector.
const (
	FieldSalePrice             = "sale_price"
	FieldOriginalPrice         = "original_price"
	FieldPrice                 = "price"
	FieldCost                  = "cost"
	FieldSalePriceCurrency     = "sale_price_currency"
	FieldOriginalPriceCurrency = "original_price_currency"
	FieldCurrency              = "currency"
	FieldProductTitle          = "product_title"
	FieldTitle                 = "title"
	FieldShopTitle             = "shop_title"
	FieldShopName              = "shop_name"
	FieldShopCountry           = "shop_country"
	FieldCountry               = "country"
)

// PriceFields are scanned first, in order, for an explicit currency symbol.
var PriceFields = []string{FieldSalePrice, FieldOriginalPrice, FieldPrice, FieldCost}

// CurrencyFields may hold a bare ISO code for the price fields.
var CurrencyFields = []string{FieldSalePriceCurrency, FieldOriginalPriceCurrency, FieldCurrency}

// CountryFields are scanned for country signals when no price symbol is present.
var CountryFields = []string{FieldProductTitle, FieldTitle, FieldShopTitle, FieldShopName, FieldShopCountry, FieldCountry}

// ResolvedPrice is a conversion annotated with how its source currency was detected.
type ResolvedPrice struct {
	ConversionResult
	DetectionMethod     DetectionMethod `json:"detection_method"`
	DetectionConfidence Confidence      `json:"detection_confidence"`
}
