package ledgers

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ValidateAmount checks that amount is a positive decimal number.
// The caller keeps sending the original string so the server sees exactly
// what was typed.
func ValidateAmount(amount string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(amount)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: not a decimal number", amount)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("invalid amount %q: must be greater than zero", amount)
	}
	return d, nil
}

// FormatAmount renders amount with asset for display.
// Example: FormatAmount("10", "NZD") → "10.00 NZD"
func FormatAmount(amount, asset string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return amount + " " + asset + " (invalid)"
	}

	// Keep at least 2 decimal places, more when present
	places := int32(2)
	if exp := -d.Exponent(); exp > places {
		places = exp
	}
	return fmt.Sprintf("%s %s", d.StringFixed(places), asset)
}
