// Package registry holds the static currency metadata table and its derived
// symbol and country-alias indexes. A Registry never changes after New returns,
// so it is safe for concurrent reads without locking.
package registry

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/damon-houk/listing-currency-service/internal/apperrors"
	"github.com/damon-houk/listing-currency-service/internal/domain/entity"
)

var codePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Registry is the read-only set of supported currencies
type Registry struct {
	order         []entity.CurrencyCode
	metas         map[entity.CurrencyCode]entity.CurrencyMeta
	symbols       map[string][]entity.CurrencyCode
	aliases       map[string]entity.CurrencyCode
	maxAliasWords int
}

// New builds a registry from metas. Table order is significant: for a shared
// symbol or alias the earlier currency ranks first.
func New(metas []entity.CurrencyMeta) (*Registry, error) {
	r := &Registry{
		metas:   make(map[entity.CurrencyCode]entity.CurrencyMeta, len(metas)),
		symbols: make(map[string][]entity.CurrencyCode),
		aliases: make(map[string]entity.CurrencyCode),
	}

	for _, m := range metas {
		if !codePattern.MatchString(string(m.Code)) {
			return nil, fmt.Errorf("invalid currency code %q: must be 3 upper-case letters", m.Code)
		}
		if _, dup := r.metas[m.Code]; dup {
			return nil, fmt.Errorf("duplicate currency code %q", m.Code)
		}

		m = cloneMeta(m)
		r.metas[m.Code] = m
		r.order = append(r.order, m.Code)

		for _, sym := range m.Symbols {
			r.symbols[sym] = append(r.symbols[sym], m.Code)
		}
		for _, alias := range m.Aliases {
			key := NormalizeText(alias)
			if key == "" {
				continue
			}
			if _, taken := r.aliases[key]; taken {
				continue
			}
			r.aliases[key] = m.Code
			if n := len(strings.Fields(key)); n > r.maxAliasWords {
				r.maxAliasWords = n
			}
		}
	}

	return r, nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry built from the builtin table.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := New(builtin)
		if err != nil {
			panic(fmt.Sprintf("registry: builtin table is invalid: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Builtin returns a copy of the builtin currency table.
func Builtin() []entity.CurrencyMeta {
	out := make([]entity.CurrencyMeta, 0, len(builtin))
	for _, m := range builtin {
		out = append(out, cloneMeta(m))
	}
	return out
}

// Subset returns a new registry restricted to codes, keeping table order.
func (r *Registry) Subset(codes []string) (*Registry, error) {
	want := make(map[entity.CurrencyCode]bool, len(codes))
	for _, raw := range codes {
		code, err := r.Parse(raw)
		if err != nil {
			return nil, err
		}
		want[code] = true
	}

	metas := make([]entity.CurrencyMeta, 0, len(want))
	for _, code := range r.order {
		if want[code] {
			metas = append(metas, r.metas[code])
		}
	}
	return New(metas)
}

// Lookup returns the metadata for code.
func (r *Registry) Lookup(code entity.CurrencyCode) (entity.CurrencyMeta, error) {
	m, ok := r.metas[code]
	if !ok {
		return entity.CurrencyMeta{}, fmt.Errorf("%w: %q", apperrors.ErrUnknownCurrency, code)
	}
	return cloneMeta(m), nil
}

// Parse normalizes a raw code (trim, upper-case) and checks it is registered.
func (r *Registry) Parse(raw string) (entity.CurrencyCode, error) {
	code := entity.CurrencyCode(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := r.metas[code]; !ok {
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownCurrency, raw)
	}
	return code, nil
}

// Has reports whether code is registered.
func (r *Registry) Has(code entity.CurrencyCode) bool {
	_, ok := r.metas[code]
	return ok
}

// AllCodes returns every registered code in table order.
func (r *Registry) AllCodes() []entity.CurrencyCode {
	return slices.Clone(r.order)
}

// SymbolsIndex maps each literal symbol to its candidate codes, most common first.
func (r *Registry) SymbolsIndex() map[string][]entity.CurrencyCode {
	out := make(map[string][]entity.CurrencyCode, len(r.symbols))
	for sym, codes := range r.symbols {
		out[sym] = slices.Clone(codes)
	}
	return out
}

// CountryAliasIndex maps normalized country, demonym and brand tokens to a code.
func (r *Registry) CountryAliasIndex() map[string]entity.CurrencyCode {
	out := make(map[string]entity.CurrencyCode, len(r.aliases))
	for k, v := range r.aliases {
		out[k] = v
	}
	return out
}

// MaxAliasWords is the word count of the longest alias.
func (r *Registry) MaxAliasWords() int {
	return r.maxAliasWords
}

func cloneMeta(m entity.CurrencyMeta) entity.CurrencyMeta {
	m.Symbols = slices.Clone(m.Symbols)
	m.Aliases = slices.Clone(m.Aliases)
	m.Words = slices.Clone(m.Words)
	return m
}
