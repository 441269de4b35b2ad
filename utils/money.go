package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney formats an amount as a string like "$6,010.00".
// Rounds half away from zero to cents and uses comma as thousands separator.
func FormatMoney(amount decimal.Decimal) string {
	s := amount.Abs().StringFixed(2)
	intPart, frac := s[:len(s)-3], s[len(s)-3:]

	var b strings.Builder
	// Pre-allocate: digits + separators + sign + $
	b.Grow(len(s) + len(intPart)/3 + 2)
	if amount.Round(2).IsNegative() {
		b.WriteString("-$")
	} else {
		b.WriteString("$")
	}

	// Insert separators from the left.
	rem := len(intPart) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(intPart[:rem])
	for i := rem; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	b.WriteString(frac)

	return b.String()
}
