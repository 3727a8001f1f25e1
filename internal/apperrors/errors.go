// Package apperrors defines the error taxonomy shared by the rate store,
// the converter, the detector and the product resolver.
package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCurrency indicates a currency code outside the registry.
var ErrUnknownCurrency = errors.New("unknown currency")

// ErrInvalidRate indicates a non-positive or reflexive rate on upsert.
var ErrInvalidRate = errors.New("invalid rate")

// ErrRateNotFound indicates that no stored rate, direct or base-routed, covers a pair.
var ErrRateNotFound = errors.New("rate not found")

// ErrInvalidInput indicates empty or malformed detection input.
var ErrInvalidInput = errors.New("invalid input")

// ErrUnresolvedCurrency indicates that a product record yielded no currency or no amount.
var ErrUnresolvedCurrency = errors.New("unresolved currency")

// Pair is an ordered (from, to) currency pair named in an error.
type Pair struct {
	From string `json:"from_currency"`
	To   string `json:"to_currency"`
}

func (p Pair) String() string {
	return p.From + "->" + p.To
}

// MissingRatesError lists every ordered pair a conversion needed but could not find.
type MissingRatesError struct {
	From    string
	To      string
	Missing []Pair
}

func (e *MissingRatesError) Error() string {
	names := make([]string, 0, len(e.Missing))
	for _, p := range e.Missing {
		names = append(names, p.String())
	}
	return fmt.Sprintf("%s: no conversion path from %s to %s, missing %s",
		ErrRateNotFound, e.From, e.To, strings.Join(names, ", "))
}

// Is lets errors.Is(err, ErrRateNotFound) match.
func (e *MissingRatesError) Is(target error) bool {
	return target == ErrRateNotFound
}
