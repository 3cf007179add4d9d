// Package currencyutils converts locale-formatted amount cells into fixed
// precision decimals. Amounts are never accumulated as floats: repeated
// aggregation of currency values must not drift.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Separators describes how a statement locale prints numbers.
type Separators struct {
	Decimal   string   // Decimal separator, e.g. "," on French statements
	Thousands string   // Thousands separator, e.g. "."
	Currency  []string // Currency symbols/codes stripped before parsing
}

// FrenchSeparators matches CIC statements: "1.234,56" with an optional
// trailing euro sign.
var FrenchSeparators = Separators{
	Decimal:   ",",
	Thousands: ".",
	Currency:  []string{"€", "EUR"},
}

// Standardize rewrites a locale-formatted amount into the canonical form
// accepted by decimal.NewFromString: separators stripped, "." as decimal
// point, no currency symbols, no spaces.
func Standardize(amountStr string, sep Separators) string {
	s := strings.TrimSpace(amountStr)
	for _, cur := range sep.Currency {
		s = strings.ReplaceAll(s, cur, "")
	}
	// Non-breaking and regular spaces show up as group separators in PDFs.
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")

	if sep.Thousands != "" {
		s = strings.ReplaceAll(s, sep.Thousands, "")
	}
	if sep.Decimal != "" && sep.Decimal != "." {
		s = strings.ReplaceAll(s, sep.Decimal, ".")
	}
	return s
}

// ParseAmount parses a locale-formatted amount cell into a decimal rounded
// to two fractional digits. The empty string is an error: presence of a
// value is decided by the caller, not here.
func ParseAmount(amountStr string, sep Separators) (decimal.Decimal, error) {
	standardized := Standardize(amountStr, sep)
	if standardized == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount.Round(2), nil
}

// FormatEUR renders a decimal for terminal display, e.g. "1234.56 €".
func FormatEUR(amount decimal.Decimal) string {
	return amount.StringFixed(2) + " €"
}
