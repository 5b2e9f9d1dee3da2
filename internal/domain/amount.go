package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// MaxAmountScale is the number of decimal places an amount may carry
	MaxAmountScale = 2
	// MaxAmountIntegerDigits bounds the digits left of the decimal point
	MaxAmountIntegerDigits = 15

	// Inputs with a smaller exponent are refused before any rescaling happens.
	minAmountExponent = -18
)

// ParseAmount parses user input into a decimal amount.
// Blank or malformed input yields ErrInvalidAmount, as does input with more than
// MaxAmountScale significant decimal places or more than MaxAmountIntegerDigits
// integer digits. The sign is not checked here; the ledger operations reject
// non-positive amounts themselves.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, ErrInvalidAmount
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}

	// "0e9999999" keeps its exponent; normalize so later arithmetic stays cheap
	if amount.IsZero() {
		return decimal.Zero, nil
	}

	exp := amount.Exponent()
	if exp < minAmountExponent {
		return decimal.Zero, fmt.Errorf("%w: too many decimal places: %q", ErrInvalidAmount, raw)
	}
	if int64(amount.NumDigits())+int64(exp) > MaxAmountIntegerDigits {
		return decimal.Zero, fmt.Errorf("%w: too large: %q", ErrInvalidAmount, raw)
	}
	if exp < -MaxAmountScale && !amount.Equal(amount.Truncate(MaxAmountScale)) {
		return decimal.Zero, fmt.Errorf("%w: too many decimal places: %q", ErrInvalidAmount, raw)
	}

	return amount, nil
}
