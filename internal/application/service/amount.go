package service

import (
	"fmt"
	"strings"

	"github.com/damon-houk/listing-currency-service/internal/apperrors"
	"github.com/shopspring/decimal"
)

// parseAmount reads a matched number using the currency's minor units to
// settle whether a lone separator marks thousands or decimals:
//
//	"1,234.56" -> 1234.56   (last of mixed separators is the decimal one)
//	"1.234.567" -> 1234567  (a repeated separator groups thousands)
//	"50.000"   -> 50000     (three trailing digits group thousands...)
//	"1.500"    -> 1.5       (...unless the currency writes three minor digits)
//	"10,5"     -> 10.5
func parseAmount(raw string, minorUnits int) (decimal.Decimal, error) {
	s := strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "").Replace(strings.TrimSpace(raw))

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")

	switch {
	case lastDot >= 0 && lastComma >= 0:
		decimalSep, groupSep := ".", ","
		if lastComma > lastDot {
			decimalSep, groupSep = ",", "."
		}
		s = strings.ReplaceAll(s, groupSep, "")
		s = strings.Replace(s, decimalSep, ".", 1)

	case lastDot >= 0 || lastComma >= 0:
		sep := "."
		if lastComma >= 0 {
			sep = ","
		}
		if isThousandsGrouping(s, sep, minorUnits) {
			s = strings.ReplaceAll(s, sep, "")
		} else {
			s = strings.Replace(s, sep, ".", 1)
		}
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: malformed amount %q", apperrors.ErrInvalidInput, raw)
	}
	return amount, nil
}

func isThousandsGrouping(s, sep string, minorUnits int) bool {
	if strings.Count(s, sep) > 1 {
		return true
	}
	intPart, frac, _ := strings.Cut(s, sep)
	if len(frac) != 3 || intPart == "0" {
		return false
	}
	return minorUnits != 3
}
