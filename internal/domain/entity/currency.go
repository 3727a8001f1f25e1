package entity

// CurrencyCode is a 3-letter upper-case ISO 4217 style identifier
type CurrencyCode string

func (c CurrencyCode) String() string {
	return string(c)
}

// CurrencyMeta describes a supported currency. Values are immutable once the
// registry is built.
type CurrencyMeta struct {
	Code CurrencyCode `json:"code"`
	// Symbols are the literal glyphs written next to amounts, e.g. "$" or "HK$".
	// A symbol may be shared by several currencies.
	Symbols []string `json:"symbols"`
	Name    string   `json:"name"`
	Region  string   `json:"region"`
	// Aliases are country names, demonyms and brand descriptors pointing at this currency.
	Aliases []string `json:"aliases,omitempty"`
	// Words are currency names ("yuan", "shekel") matched as whole words in price text.
	Words []string `json:"words,omitempty"`
	// MinorUnits is the number of fractional digits normally written for the currency.
	MinorUnits int `json:"minor_units"`
}

// Region tags
const (
	RegionAsia       = "asia"
	RegionMiddleEast = "middle-east"
	RegionEurope     = "europe"
	RegionAmericas   = "americas"
	RegionAfrica     = "africa"
	RegionOceania    = "oceania"
)
