package inventory

import (
	"strings"

	"github.com/farmstore/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// quantityScale is the fixed-point scale for stored quantities.
const quantityScale = 3

// ParseQuantity validates and normalizes a draft-line quantity string for a
// product. Weight-based products accept up to 3 decimal places (kilograms);
// discrete products require whole units. Values never pass through binary
// floats.
func ParseQuantity(raw string, isWeightBased bool) (decimal.Decimal, error) {
	qty, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, shared.NewDomainError("INVALID_INPUT", "Quantity is not a valid number")
	}
	return CheckQuantity(qty, isWeightBased)
}

// CheckQuantity applies the positivity and scale rules to an already-decimal
// quantity.
func CheckQuantity(qty decimal.Decimal, isWeightBased bool) (decimal.Decimal, error) {
	if !qty.IsPositive() {
		return decimal.Decimal{}, shared.NewDomainError("INVALID_INPUT", "Quantity must be positive")
	}
	if !isWeightBased {
		if !qty.Equal(qty.Truncate(0)) {
			return decimal.Decimal{}, shared.NewDomainError("INVALID_INPUT", "Quantity must be a whole number for unit products")
		}
		return qty.Truncate(0), nil
	}
	if qty.Exponent() < -quantityScale {
		return decimal.Decimal{}, shared.NewDomainError("INVALID_INPUT", "Quantity supports at most 3 decimal places")
	}
	return qty, nil
}

// FormatQuantity renders a stored quantity for display. Weight-based values
// show up to 3 decimals with trailing zeros trimmed (2.500 -> "2.5",
// 2.000 -> "2"); discrete values show the integer part only.
func FormatQuantity(qty decimal.Decimal, isWeightBased bool) string {
	if !isWeightBased {
		return qty.Truncate(0).String()
	}
	s := qty.Round(quantityScale).String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
