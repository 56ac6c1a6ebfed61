// Package money provides the minor-unit monetary type shared across the
// pricing core.
package money

import (
	"fmt"
	"strconv"
	"strings"
)

// Money represents a monetary value stored in minor units (cents).
type Money = int64

// Parse converts a decimal amount such as "1.50" into minor units.
// At most two fractional digits are accepted.
func Parse(value string) (Money, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, fmt.Errorf("empty amount")
	}
	negative := false
	if strings.HasPrefix(trimmed, "-") {
		negative = true
		trimmed = trimmed[1:]
	}
	whole, frac, _ := strings.Cut(trimmed, ".")
	if whole == "" {
		whole = "0"
	}
	if !allDigits(whole) {
		return 0, fmt.Errorf("parse amount %q: not a decimal number", value)
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", value, err)
	}
	var cents int64
	if frac != "" {
		if len(frac) > 2 {
			return 0, fmt.Errorf("parse amount %q: more than two decimal places", value)
		}
		if !allDigits(frac) {
			return 0, fmt.Errorf("parse amount %q: not a decimal number", value)
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse amount %q: %w", value, err)
		}
		if len(frac) == 1 {
			cents *= 10
		}
	}
	total := units*100 + cents
	if negative {
		total = -total
	}
	return total, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Format renders the amount with two decimal places, e.g. 150 -> "1.50".
func Format(amount Money) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%02d", sign, amount/100, amount%100)
}
